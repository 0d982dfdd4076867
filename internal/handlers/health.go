package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/cloudforge-dev/cloudforge/internal/store"
	"github.com/gin-gonic/gin"
)

type UpsertServiceHealthRequest struct {
	Status string  `json:"status" binding:"required,oneof=operational degraded outage"`
	Uptime float64 `json:"uptime" binding:"omitempty,gte=0,lte=100"`
}

func HealthCheck(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) ListServiceHealth(ctx *gin.Context) {
	statuses, err := h.store.GetServiceHealthStatuses(ctx.Request.Context())

	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve service health"})
		return
	}

	ctx.JSON(http.StatusOK, statuses)
}

func (h *Handler) GetServiceHealth(ctx *gin.Context) {
	serviceType := ctx.Param("type")

	status, err := h.store.GetServiceHealthStatus(ctx.Request.Context(), serviceType)

	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Service health status not found"})
		} else {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve service health"})
		}
		return
	}

	ctx.JSON(http.StatusOK, status)
}

// UpsertServiceHealth writes the board row for a service type: first write
// creates it, later writes replace status and uptime in place.
func (h *Handler) UpsertServiceHealth(ctx *gin.Context) {
	serviceType := ctx.Param("type")

	var req UpsertServiceHealthRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, validationError(err))
		return
	}

	status, err := h.store.UpsertServiceHealthStatus(ctx.Request.Context(), store.HealthUpsert{
		ServiceType: serviceType,
		Status:      req.Status,
		Uptime:      req.Uptime,
	})

	if err != nil {
		log.Printf("Failed to upsert service health for %s: %v", serviceType, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update service health"})
		return
	}

	ctx.JSON(http.StatusOK, status)
}
