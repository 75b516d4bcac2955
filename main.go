package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ricardopjr1/petshop-backend/config"
	"github.com/ricardopjr1/petshop-backend/database"
	appointmentRepo "github.com/ricardopjr1/petshop-backend/database/repository/appointment"
	operatingHoursRepo "github.com/ricardopjr1/petshop-backend/database/repository/operatinghours"
	serviceRepo "github.com/ricardopjr1/petshop-backend/database/repository/service"
	staffRepo "github.com/ricardopjr1/petshop-backend/database/repository/staff"
	"github.com/ricardopjr1/petshop-backend/handlers"
	"github.com/ricardopjr1/petshop-backend/middleware"
	"github.com/ricardopjr1/petshop-backend/routes"
	"github.com/ricardopjr1/petshop-backend/services/availability"
	"github.com/ricardopjr1/petshop-backend/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	zone, err := time.LoadLocation(config.AppConfig.BusinessTimezone)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to load business timezone %q: %v", config.AppConfig.BusinessTimezone, err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	hoursRepo := operatingHoursRepo.NewMongoOperatingHoursRepo()
	svcRepo := serviceRepo.NewMongoServiceRepo()
	stfRepo := staffRepo.NewMongoStaffRepo()
	apptRepo := appointmentRepo.NewMongoAppointmentRepo()

	// availability engine.
	resolver := availability.NewRoleResolver(availability.DefaultCapabilityRules())
	engine := availability.NewDefaultAvailabilityEngine(
		resolver,
		zone,
		time.Duration(config.AppConfig.SlotGranularityMinutes)*time.Minute,
	)

	availabilityHandler := handlers.NewAvailabilityHandler(
		engine,
		hoursRepo,
		svcRepo,
		stfRepo,
		apptRepo,
		utils.GetCacheClient(),
		zone,
		time.Duration(config.AppConfig.AvailabilityCacheTTLSecs)*time.Second,
	)

	routes.RegisterRoutes(router, availabilityHandler)

	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

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
