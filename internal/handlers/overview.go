package handlers

import (
	"log"
	"math"
	"net/http"

	"github.com/cloudforge-dev/cloudforge/internal/models"
	"github.com/gin-gonic/gin"
)

const overviewActivityLimit = 4

type DeploymentsSummary struct {
	Total   int `json:"total"`
	Healthy int `json:"healthy"`
}

type ResourcesSummary struct {
	Compute     int                `json:"compute"`
	Databases   int                `json:"databases"`
	Storage     int                `json:"storage"`
	Functions   int                `json:"functions"`
	Network     int                `json:"network"`
	Web3        int                `json:"web3"`
	Spatial     int                `json:"spatial"`
	Amp3d       int                `json:"amp3d"`
	Deployments DeploymentsSummary `json:"deployments"`
}

type UsageSummary struct {
	Cpu     int `json:"cpu"`
	Memory  int `json:"memory"`
	Storage int `json:"storage"`
	Network int `json:"network"`
}

type OverviewResponse struct {
	Resources        ResourcesSummary             `json:"resources"`
	Usage            UsageSummary                 `json:"usage"`
	ServiceHealth    []models.ServiceHealthStatus `json:"serviceHealth"`
	RecentActivities []models.Activity            `json:"recentActivities"`
	Projects         []models.Project             `json:"projects"`
	Degraded         bool                         `json:"degraded"`
}

// GetOverview assembles the point-in-time dashboard summary for the caller.
// Reads are best-effort: a failing slice degrades to zero/empty and flips
// the Degraded flag instead of failing the whole response, so the endpoint
// always answers 200.
func (h *Handler) GetOverview(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	reqCtx := ctx.Request.Context()
	degraded := false

	projects, err := h.store.GetProjects(reqCtx, userID)
	if err != nil {
		log.Printf("Overview: failed to list projects for user %d: %v", userID, err)
		projects = nil
		degraded = true
	}

	var resources ResourcesSummary
	var cpuTotal, memoryTotal, storageTotal, networkTotal float64
	var usageCount int

	for _, project := range projects {
		services, err := h.store.GetServices(reqCtx, project.ID)
		if err != nil {
			log.Printf("Overview: failed to list services for project %d: %v", project.ID, err)
			degraded = true
			continue
		}

		for _, service := range services {
			switch service.Type {
			case "compute":
				resources.Compute++
			case "database":
				resources.Databases++
			case "storage":
				resources.Storage++
			case "function":
				resources.Functions++
			case "network":
				resources.Network++
			case "web3":
				resources.Web3++
			case "spatial":
				resources.Spatial++
			case "3d_amp":
				resources.Amp3d++
			}

			usages, err := h.store.GetResourceUsage(reqCtx, service.ID)
			if err != nil {
				log.Printf("Overview: failed to read usage for service %d: %v", service.ID, err)
				degraded = true
				continue
			}

			if len(usages) > 0 {
				latest := usages[0] // newest first
				cpuTotal += latest.CpuUsage
				memoryTotal += latest.MemoryUsage
				storageTotal += latest.StorageUsage
				networkTotal += latest.NetworkUsage
				usageCount++
			}
		}
	}

	resources.Deployments = DeploymentsSummary{
		Total:   len(projects),
		Healthy: len(projects),
	}

	var usage UsageSummary
	if usageCount > 0 {
		usage = UsageSummary{
			Cpu:     int(math.Round(cpuTotal / float64(usageCount))),
			Memory:  int(math.Round(memoryTotal / float64(usageCount))),
			Storage: int(math.Round(storageTotal / float64(usageCount))),
			Network: int(math.Round(networkTotal / float64(usageCount))),
		}
	}

	health, err := h.store.GetServiceHealthStatuses(reqCtx)
	if err != nil {
		log.Printf("Overview: failed to read service health: %v", err)
		health = nil
		degraded = true
	}

	activities, err := h.store.GetActivities(reqCtx, overviewActivityLimit)
	if err != nil {
		log.Printf("Overview: failed to read activities: %v", err)
		activities = nil
		degraded = true
	}

	ctx.JSON(http.StatusOK, OverviewResponse{
		Resources:        resources,
		Usage:            usage,
		ServiceHealth:    health,
		RecentActivities: activities,
		Projects:         projects,
		Degraded:         degraded,
	})
}
