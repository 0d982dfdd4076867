package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/cloudforge-dev/cloudforge/internal/models"
	"github.com/cloudforge-dev/cloudforge/internal/store"
	"github.com/cloudforge-dev/cloudforge/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// Handler bundles the HTTP handlers around a single Store so tests can run
// the full surface against the in-memory implementation.
type Handler struct {
	store store.Store
}

func New(s store.Store) *Handler {
	return &Handler{store: s}
}

func parseIDParam(ctx *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid %s", name)
	}
	return uint(id), nil
}

func parseLimitQuery(ctx *gin.Context) int {
	limit, err := strconv.Atoi(ctx.DefaultQuery("limit", "10"))
	if err != nil || limit <= 0 {
		return store.DefaultActivityLimit
	}
	return limit
}

// validationError turns a binding failure into a 400 payload with one
// field/message pair per violation.
func validationError(err error) gin.H {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		details := make([]gin.H, 0, len(verrs))
		for _, fe := range verrs {
			details = append(details, gin.H{
				"field":   fe.Field(),
				"message": fmt.Sprintf("failed %q validation", fe.Tag()),
			})
		}
		return gin.H{"error": "Validation failed", "details": details}
	}
	return gin.H{"error": "Invalid request"}
}

// ownedProject resolves a project and enforces ownership: 404 when the id
// does not exist, 403 when it belongs to another user. Not-found takes
// precedence over forbidden. Returns nil after writing the error response.
func (h *Handler) ownedProject(ctx *gin.Context, projectID uint, userID uint) *models.Project {
	project, err := h.store.GetProject(ctx.Request.Context(), projectID)

	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		} else {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve project"})
		}
		return nil
	}

	if project.UserID != userID {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return nil
	}

	return project
}

// ownedService resolves a service and applies the ownership check
// transitively through its parent project.
func (h *Handler) ownedService(ctx *gin.Context, serviceID uint, userID uint) *models.Service {
	service, err := h.store.GetService(ctx.Request.Context(), serviceID)

	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Service not found"})
		} else {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve service"})
		}
		return nil
	}

	if h.ownedProject(ctx, service.ProjectID, userID) == nil {
		return nil
	}

	return service
}

func currentUserID(ctx *gin.Context) (uint, bool) {
	userID, err := utils.GetCurrentUserID(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return 0, false
	}
	return userID, true
}
