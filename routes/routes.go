package routes

import (
	"net/http"
	"time"

	"taskweave/handlers"
	"taskweave/middleware"
	"taskweave/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle aggregates the handlers the router needs.
type HandlerBundle struct {
	Availability *handlers.AvailabilityHandler
	Schedule     *handlers.ScheduleHandler
	Group        *handlers.GroupHandler
}

// RegisterAvailabilityRoutes registers the weekly free-time grid endpoints.
func RegisterAvailabilityRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/availability")
	{
		api.Use(middleware.SessionMiddleware())
		api.GET("", hb.Availability.GetAvailabilityHandler)
		api.PUT("", hb.Availability.SaveAvailabilityHandler)
		api.POST("/toggle", hb.Availability.ToggleAvailabilityHandler)
	}
}

// RegisterScheduleRoutes registers the allocation and calendar endpoints.
func RegisterScheduleRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/schedule")
	{
		api.Use(middleware.SessionMiddleware())
		api.GET("/tasks", hb.Schedule.GetTasksHandler)
		api.POST("/build", hb.Schedule.BuildScheduleHandler)
		api.GET("/current", hb.Schedule.CurrentScheduleHandler)
		api.POST("/refresh", hb.Schedule.RefreshScheduleHandler)
		api.DELETE("/cache", hb.Schedule.InvalidateScheduleHandler)
	}
}

// RegisterGroupRoutes registers group task distribution endpoints.
func RegisterGroupRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/groups")
	{
		api.Use(middleware.SessionMiddleware())
		api.POST("/:groupId/distribute", hb.Group.DistributeGroupTasksHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes wires global middleware and all route groups.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAvailabilityRoutes(r, hb)
	RegisterScheduleRoutes(r, hb)
	RegisterGroupRoutes(r, hb)
	RegisterHealthRoute(r)
}
