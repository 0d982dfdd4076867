package handlers

import (
	"log"
	"net/http"

	"github.com/cloudforge-dev/cloudforge/internal/store"
	"github.com/gin-gonic/gin"
)

type CreateResourceUsageRequest struct {
	ServiceID    uint    `json:"serviceId" binding:"required"`
	CpuUsage     float64 `json:"cpuUsage" binding:"omitempty,gte=0,lte=100"`
	MemoryUsage  float64 `json:"memoryUsage" binding:"omitempty,gte=0,lte=100"`
	StorageUsage float64 `json:"storageUsage" binding:"omitempty,gte=0,lte=100"`
	NetworkUsage float64 `json:"networkUsage" binding:"omitempty,gte=0,lte=100"`
}

// GetServiceUsage returns a service's usage samples, newest first.
func (h *Handler) GetServiceUsage(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	serviceID, err := parseIDParam(ctx, "id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if h.ownedService(ctx, serviceID, userID) == nil {
		return
	}

	usages, err := h.store.GetResourceUsage(ctx.Request.Context(), serviceID)

	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve resource usage"})
		return
	}

	ctx.JSON(http.StatusOK, usages)
}

// CreateResourceUsage appends a usage sample. Samples against a nonexistent
// service are rejected with 404 rather than stored as orphans.
func (h *Handler) CreateResourceUsage(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var req CreateResourceUsageRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, validationError(err))
		return
	}

	if h.ownedService(ctx, req.ServiceID, userID) == nil {
		return
	}

	usage, err := h.store.CreateResourceUsage(ctx.Request.Context(), store.NewResourceUsage{
		ServiceID:    req.ServiceID,
		CpuUsage:     req.CpuUsage,
		MemoryUsage:  req.MemoryUsage,
		StorageUsage: req.StorageUsage,
		NetworkUsage: req.NetworkUsage,
	})

	if err != nil {
		log.Printf("Failed to create resource usage: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create resource usage"})
		return
	}

	ctx.JSON(http.StatusCreated, usage)
}
