// File: taskweave/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"taskweave/config"
	snapshotRepo "taskweave/database/repository/snapshot"
	"taskweave/handlers"
	"taskweave/middleware"
	"taskweave/routes"
	"taskweave/services/availability"
	"taskweave/services/group"
	"taskweave/services/schedule"
	"taskweave/upstream"
	"taskweave/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	utils.InitCache()
	utils.StartHealthMonitor(utils.GetCacheClient(), config.AppConfig.UpstreamAPIURL)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Repositories and the upstream client.
	api := upstream.NewHTTPClient()
	snapshotStore := snapshotRepo.NewRedisSnapshotStore(utils.GetCacheClient())

	// Services.
	availabilityService := &availability.DefaultAvailabilityService{API: api}
	scheduleCache := &schedule.DefaultScheduleCache{Local: snapshotStore, API: api}
	allocationClient := &schedule.DefaultAllocationClient{API: api, Cache: scheduleCache}
	taskGatherer := &schedule.DefaultTaskGatherer{API: api}
	groupService := &group.DefaultGroupService{API: api}

	// Assemble the handler bundle.
	handlerBundle := &routes.HandlerBundle{
		Availability: handlers.NewAvailabilityHandler(availabilityService),
		Schedule: handlers.NewScheduleHandler(
			availabilityService,
			allocationClient,
			scheduleCache,
			schedule.DefaultProjector{},
			taskGatherer,
		),
		Group: handlers.NewGroupHandler(groupService),
	}

	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
