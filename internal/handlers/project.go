package handlers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/cloudforge-dev/cloudforge/internal/store"
	"github.com/gin-gonic/gin"
)

type CreateProjectRequest struct {
	Name         string  `json:"name" binding:"required"`
	Status       string  `json:"status" binding:"omitempty,oneof=development staging production"`
	CostPerMonth float64 `json:"costPerMonth" binding:"omitempty,gte=0"`
}

type UpdateProjectRequest struct {
	Name         *string  `json:"name" binding:"omitempty,min=1"`
	Status       *string  `json:"status" binding:"omitempty,oneof=development staging production"`
	CostPerMonth *float64 `json:"costPerMonth" binding:"omitempty,gte=0"`
}

func (h *Handler) ListProjects(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	projects, err := h.store.GetProjects(ctx.Request.Context(), userID)

	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve projects"})
		return
	}

	ctx.JSON(http.StatusOK, projects)
}

func (h *Handler) GetProject(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	id, err := parseIDParam(ctx, "id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	project := h.ownedProject(ctx, id, userID)
	if project == nil {
		return
	}

	ctx.JSON(http.StatusOK, project)
}

func (h *Handler) CreateProject(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var req CreateProjectRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, validationError(err))
		return
	}

	project, err := h.store.CreateProject(ctx.Request.Context(), store.NewProject{
		Name:         req.Name,
		Status:       req.Status,
		CostPerMonth: req.CostPerMonth,
		UserID:       userID,
	})

	if err != nil {
		log.Printf("Failed to create project: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create project"})
		return
	}

	h.recordActivity(ctx, store.NewActivity{
		Type:      "project_created",
		Message:   fmt.Sprintf("%s project created", project.Name),
		UserID:    &userID,
		ProjectID: &project.ID,
	})

	ctx.JSON(http.StatusCreated, project)
}

func (h *Handler) UpdateProject(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	id, err := parseIDParam(ctx, "id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var req UpdateProjectRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, validationError(err))
		return
	}

	if h.ownedProject(ctx, id, userID) == nil {
		return
	}

	project, err := h.store.UpdateProject(ctx.Request.Context(), id, store.ProjectUpdate{
		Name:         req.Name,
		Status:       req.Status,
		CostPerMonth: req.CostPerMonth,
	})

	if err != nil {
		log.Printf("Failed to update project %d: %v", id, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update project"})
		return
	}

	ctx.JSON(http.StatusOK, project)
}

func (h *Handler) DeleteProject(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	id, err := parseIDParam(ctx, "id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if h.ownedProject(ctx, id, userID) == nil {
		return
	}

	if err := h.store.DeleteProject(ctx.Request.Context(), id); err != nil {
		log.Printf("Failed to delete project %d: %v", id, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete project"})
		return
	}

	ctx.Status(http.StatusNoContent)
}

// recordActivity appends an audit entry as a side effect of a mutation.
// Failures are logged, not surfaced; the mutation itself already succeeded.
func (h *Handler) recordActivity(ctx *gin.Context, input store.NewActivity) {
	activity, err := h.store.CreateActivity(ctx.Request.Context(), input)
	if err != nil {
		log.Printf("Failed to record %s activity: %v", input.Type, err)
		return
	}

	if input.ProjectID != nil {
		BroadcastActivity(*input.ProjectID, activity)
	}
}
