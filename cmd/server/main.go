package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"
	"os"

	httpapi "umbrella-fleet-backend/internal/api/http"
	"umbrella-fleet-backend/internal/config"
	"umbrella-fleet-backend/internal/logger"
	"umbrella-fleet-backend/internal/repository/postgres"
	"umbrella-fleet-backend/internal/service"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	_ "github.com/lib/pq"
)

func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting umbrella fleet backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Connectivity failure is fatal at startup; there is no retry.
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		os.Exit(1)
	}
	logger.Info("Database connection established")

	store := postgres.NewStore(db)

	stationSvc := service.NewStationService(store.StationRepository)
	umbrellaSvc := service.NewUmbrellaService(store.UmbrellaRepository)
	accountSvc := service.NewAccountService(store.AccountRepository)
	paymentSvc := service.NewPaymentMethodService(store.PaymentMethodRepository)
	maintainerSvc := service.NewMaintainerService(store.MaintainerRepository)
	maintenanceSvc := service.NewMaintenanceHistoryService(store.MaintenanceHistoryRepository)
	rentalSvc := service.NewRentalHistoryService(store.RentalHistoryRepository)

	router := httpapi.NewRouter(store, stationSvc, umbrellaSvc, accountSvc, paymentSvc, maintainerSvc, maintenanceSvc, rentalSvc)

	if cfg.Metrics.Enabled {
		logger.Info("Metrics endpoint enabled", "path", cfg.Metrics.Path)
		router.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
	}

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		os.Exit(1)
	}
}
