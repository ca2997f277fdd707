package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"

	"clinic-api/internal/config"
	"clinic-api/internal/handler"
	appointmentHandler "clinic-api/internal/handler/appointment"
	checkupHandler "clinic-api/internal/handler/checkup"
	dashboardHandler "clinic-api/internal/handler/dashboard"
	patientHandler "clinic-api/internal/handler/patient"
	"clinic-api/internal/middleware"
	"clinic-api/internal/repository/jsonfile"
	"clinic-api/internal/router"
	appointmentService "clinic-api/internal/service/appointment"
	checkupService "clinic-api/internal/service/checkup"
	dashboardService "clinic-api/internal/service/dashboard"
	patientService "clinic-api/internal/service/patient"
	"clinic-api/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		zlog.Fatal().Err(err).Msg("failed to load configuration")
	}

	zerolog.SetGlobalLevel(logger.ParseLevel(cfg.Log.Level))
	appLog := logger.NewLogger(&logger.Config{
		Level:      logger.ParseLevel(cfg.Log.Level),
		TimeFormat: time.RFC3339,
		Output:     os.Stdout,
	})

	// Initialize the snapshot store
	store, err := jsonfile.NewStore(cfg.Storage.Path,
		jsonfile.WithResetOnCorrupt(cfg.Storage.ResetOnCorrupt),
	)
	if err != nil {
		appLog.Fatal(err, "failed to open snapshot store")
	}

	// Initialize repositories
	patientRepo := jsonfile.NewPatientRepository(store)
	appointmentRepo := jsonfile.NewAppointmentRepository(store)
	checkupRepo := jsonfile.NewCheckupRepository(store)
	dashboardRepo := jsonfile.NewDashboardRepository(store)

	// Initialize services
	patientSvc := patientService.NewService(patientRepo)
	appointmentSvc := appointmentService.NewService(appointmentRepo)
	checkupSvc := checkupService.NewService(checkupRepo)
	dashboardSvc := dashboardService.NewService(dashboardRepo)

	// Setup router
	r := router.NewRouter(
		router.Config{
			RateLimitRPS:  cfg.Server.RateLimitRPS,
			RateBurst:     cfg.Server.RateBurst,
			Timeout:       time.Duration(cfg.Server.TimeoutSeconds) * time.Second,
			CORS:          middleware.DefaultCORSConfig(),
			MetricsPrefix: "clinic_api",
		},
		handler.NewHandler(store.Path()),
		patientHandler.NewHandler(patientSvc),
		appointmentHandler.NewHandler(appointmentSvc),
		checkupHandler.NewHandler(checkupSvc),
		dashboardHandler.NewHandler(dashboardSvc),
	)
	r.Setup()

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: r.Engine(),
	}

	go func() {
		appLog.Info("starting server", "port", cfg.Server.Port, "snapshot", store.Path())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLog.Fatal(err, "failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLog.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLog.Fatal(err, "server forced to shutdown")
	}

	appLog.Info("server exited properly")
}
