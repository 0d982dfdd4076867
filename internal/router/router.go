package router

import (
	"time"

	"github.com/cloudforge-dev/cloudforge/internal/handlers"
	"github.com/cloudforge-dev/cloudforge/internal/metrics"
	"github.com/cloudforge-dev/cloudforge/internal/middleware"
	"github.com/cloudforge-dev/cloudforge/internal/store"
	"github.com/cloudforge-dev/cloudforge/internal/types"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter(s store.Store) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     types.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.Use(metrics.Middleware())
	r.GET("/metrics", metrics.Handler())

	h := handlers.New(s)

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)

		auth := api.Group("/auth")
		{
			auth.POST("/register", h.Register)
			auth.POST("/login", h.Login)
			auth.GET("/me", middleware.AuthMiddleware(s), h.Me)
		}

		authed := api.Group("", middleware.AuthMiddleware(s))
		{
			authed.GET("/ws/:project_id", h.ActivityFeed)

			authed.GET("/user/:id", h.GetUser)

			authed.GET("/projects", h.ListProjects)
			authed.POST("/projects", h.CreateProject)
			authed.GET("/projects/:id", h.GetProject)
			authed.PUT("/projects/:id", h.UpdateProject)
			authed.DELETE("/projects/:id", h.DeleteProject)

			// Gin requires consistent param names per path prefix, so the
			// nested routes live under a literal distinct from ":id".
			authed.GET("/projects/:id/services", h.ListServices)
			authed.GET("/projects/:id/activities", h.ListProjectActivities)

			authed.GET("/services/:id", h.GetService)
			authed.POST("/services", h.CreateService)
			authed.PUT("/services/:id", h.UpdateService)
			authed.DELETE("/services/:id", h.DeleteService)
			authed.GET("/services/:id/usage", h.GetServiceUsage)

			authed.POST("/resource-usage", h.CreateResourceUsage)

			authed.GET("/activities", h.ListActivities)
			authed.POST("/activities", h.CreateActivity)
			authed.GET("/users/:userId/activities", h.ListUserActivities)

			authed.GET("/service-health", h.ListServiceHealth)
			authed.GET("/service-health/:type", h.GetServiceHealth)
			authed.PUT("/service-health/:type", h.UpsertServiceHealth)

			authed.GET("/overview", h.GetOverview)
		}
	}

	return r
}
