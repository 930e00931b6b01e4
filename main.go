// File: slotwise/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"slotwise/config"
	"slotwise/database"
	shopRepo "slotwise/database/repository/shop"
	"slotwise/handlers"
	"slotwise/middleware"
	"slotwise/models"
	"slotwise/routes"
	"slotwise/services/schedule"
	"slotwise/services/session"
	"slotwise/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitSessionCache()
	utils.InitScheduleCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	scheduleRepo := shopRepo.NewMongoShopScheduleRepo()
	if idx, ok := scheduleRepo.(interface{ EnsureIndexes() error }); ok {
		if err := idx.EnsureIndexes(); err != nil {
			logger.Sugar().Warnf("main: failed to ensure schedule indexes: %v", err)
		}
	}

	// services.
	sessionTTL := time.Duration(config.AppConfig.EditSessionTTLMin) * time.Minute
	sessionService := &session.DefaultEditSessionService{
		Repo:  scheduleRepo,
		Store: session.NewRedisSessionStore(sessionTTL),
	}
	scheduleService := &schedule.DefaultScheduleService{
		Repo: scheduleRepo,
	}

	// Display labels are opaque to the engine; a deployment swaps these for
	// its own translations.
	labels := models.Labels{
		string(models.RangeHoliday): "Holiday",
		string(models.RangeSpecial): "Special event",
		string(models.RangePromo):   "Promotion",
	}

	sessionHandler := handlers.NewEditSessionHandler(sessionService)
	scheduleHandler := handlers.NewScheduleHandler(scheduleService, labels)

	// Register routes.
	routes.RegisterRoutes(router, sessionHandler, scheduleHandler)

	utils.StartHealthMonitor(map[string]*redis.Client{
		"sessions": utils.GetSessionCacheClient(),
		"schedule": utils.GetScheduleCacheClient(),
	}, database.MongoClient)

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
