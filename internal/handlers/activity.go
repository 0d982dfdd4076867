package handlers

import (
	"log"
	"net/http"

	"github.com/cloudforge-dev/cloudforge/internal/store"
	"github.com/gin-gonic/gin"
)

type CreateActivityRequest struct {
	Type      string `json:"type" binding:"required"`
	Message   string `json:"message" binding:"required"`
	ProjectID *uint  `json:"projectId"`
	ServiceID *uint  `json:"serviceId"`
}

func (h *Handler) ListActivities(ctx *gin.Context) {
	activities, err := h.store.GetActivities(ctx.Request.Context(), parseLimitQuery(ctx))

	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve activities"})
		return
	}

	ctx.JSON(http.StatusOK, activities)
}

func (h *Handler) ListUserActivities(ctx *gin.Context) {
	currentID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	userID, err := parseIDParam(ctx, "userId")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Users may only read their own activity trail.
	if userID != currentID {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return
	}

	activities, err := h.store.GetActivitiesByUser(ctx.Request.Context(), userID, parseLimitQuery(ctx))

	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve activities"})
		return
	}

	ctx.JSON(http.StatusOK, activities)
}

func (h *Handler) ListProjectActivities(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	projectID, err := parseIDParam(ctx, "id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if h.ownedProject(ctx, projectID, userID) == nil {
		return
	}

	activities, err := h.store.GetActivitiesByProject(ctx.Request.Context(), projectID, parseLimitQuery(ctx))

	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve activities"})
		return
	}

	ctx.JSON(http.StatusOK, activities)
}

func (h *Handler) CreateActivity(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var req CreateActivityRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, validationError(err))
		return
	}

	// Referenced project and service must belong to the caller.
	if req.ProjectID != nil {
		if h.ownedProject(ctx, *req.ProjectID, userID) == nil {
			return
		}
	}

	if req.ServiceID != nil {
		if h.ownedService(ctx, *req.ServiceID, userID) == nil {
			return
		}
	}

	activity, err := h.store.CreateActivity(ctx.Request.Context(), store.NewActivity{
		Type:      req.Type,
		Message:   req.Message,
		UserID:    &userID,
		ProjectID: req.ProjectID,
		ServiceID: req.ServiceID,
	})

	if err != nil {
		log.Printf("Failed to create activity: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create activity"})
		return
	}

	if req.ProjectID != nil {
		BroadcastActivity(*req.ProjectID, activity)
	}

	ctx.JSON(http.StatusCreated, activity)
}
