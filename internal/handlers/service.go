package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/cloudforge-dev/cloudforge/internal/store"
	"github.com/cloudforge-dev/cloudforge/internal/types"
	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
)

type CreateServiceRequest struct {
	Name      string          `json:"name" binding:"required"`
	Type      string          `json:"type" binding:"required"`
	Status    string          `json:"status" binding:"omitempty,oneof=active stopped error"`
	ProjectID uint            `json:"projectId" binding:"required"`
	Config    json.RawMessage `json:"config"`
}

type UpdateServiceRequest struct {
	Name   *string         `json:"name" binding:"omitempty,min=1"`
	Type   *string         `json:"type"`
	Status *string         `json:"status" binding:"omitempty,oneof=active stopped error"`
	Config json.RawMessage `json:"config"`
}

func (h *Handler) ListServices(ctx *gin.Context) {
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

	services, err := h.store.GetServices(ctx.Request.Context(), projectID)

	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve services"})
		return
	}

	ctx.JSON(http.StatusOK, services)
}

func (h *Handler) GetService(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	id, err := parseIDParam(ctx, "id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	service := h.ownedService(ctx, id, userID)
	if service == nil {
		return
	}

	ctx.JSON(http.StatusOK, service)
}

func (h *Handler) CreateService(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var req CreateServiceRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, validationError(err))
		return
	}

	if err := types.ValidateServiceConfig(req.Type, req.Config); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Validation failed",
			"details": []gin.H{{"field": "config", "message": err.Error()}},
		})
		return
	}

	// Creating a service against a missing project is 404, never a
	// silently orphaned row.
	if h.ownedProject(ctx, req.ProjectID, userID) == nil {
		return
	}

	service, err := h.store.CreateService(ctx.Request.Context(), store.NewService{
		Name:      req.Name,
		Type:      req.Type,
		Status:    req.Status,
		ProjectID: req.ProjectID,
		Config:    datatypes.JSON(req.Config),
	})

	if err != nil {
		log.Printf("Failed to create service: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create service"})
		return
	}

	h.recordActivity(ctx, store.NewActivity{
		Type:      "service_created",
		Message:   fmt.Sprintf("%s service created", service.Name),
		UserID:    &userID,
		ProjectID: &service.ProjectID,
		ServiceID: &service.ID,
	})

	ctx.JSON(http.StatusCreated, service)
}

func (h *Handler) UpdateService(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	id, err := parseIDParam(ctx, "id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var req UpdateServiceRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, validationError(err))
		return
	}

	existing := h.ownedService(ctx, id, userID)
	if existing == nil {
		return
	}

	// Config documents are validated against the type the service will
	// have after the update.
	effectiveType := existing.Type
	if req.Type != nil {
		effectiveType = *req.Type
	}

	if req.Type != nil && !types.KnownServiceType(effectiveType) {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Validation failed",
			"details": []gin.H{{"field": "type", "message": fmt.Sprintf("unknown service type %q", effectiveType)}},
		})
		return
	}

	if req.Config != nil {
		if err := types.ValidateServiceConfig(effectiveType, req.Config); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{
				"error":   "Validation failed",
				"details": []gin.H{{"field": "config", "message": err.Error()}},
			})
			return
		}
	} else if req.Type != nil {
		// A type change without a new config document must leave the stored
		// config valid under the new type.
		if err := types.ValidateServiceConfig(effectiveType, []byte(existing.Config)); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{
				"error":   "Validation failed",
				"details": []gin.H{{"field": "type", "message": fmt.Sprintf("existing config is not valid for type %q: %v", effectiveType, err)}},
			})
			return
		}
	}

	service, err := h.store.UpdateService(ctx.Request.Context(), id, store.ServiceUpdate{
		Name:   req.Name,
		Type:   req.Type,
		Status: req.Status,
		Config: datatypes.JSON(req.Config),
	})

	if err != nil {
		log.Printf("Failed to update service %d: %v", id, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update service"})
		return
	}

	ctx.JSON(http.StatusOK, service)
}

func (h *Handler) DeleteService(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	id, err := parseIDParam(ctx, "id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if h.ownedService(ctx, id, userID) == nil {
		return
	}

	if err := h.store.DeleteService(ctx.Request.Context(), id); err != nil {
		log.Printf("Failed to delete service %d: %v", id, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete service"})
		return
	}

	ctx.Status(http.StatusNoContent)
}
