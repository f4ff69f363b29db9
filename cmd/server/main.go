package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"
	"time"

	_ "github.com/lib/pq"

	httpapi "rentline-backend/internal/api/http"
	"rentline-backend/internal/config"
	"rentline-backend/internal/extension"
	"rentline-backend/internal/jobs"
	"rentline-backend/internal/logger"
	"rentline-backend/internal/metrics"
	"rentline-backend/internal/repository/postgres"
	"rentline-backend/internal/scheduler"
	"rentline-backend/internal/security"
	"rentline-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Rentline Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Metrics
	metrics.Register()

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)

	// Initialize dialog session store
	sessions := extension.NewSessionStore(time.Duration(cfg.Dialog.SessionTimeoutMinutes) * time.Minute)

	// Initialize Services
	emailSvc := service.NewEmailService(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName)
	authSvc := service.NewAuthService(store.UserRepository, tokenManager)
	rentalSvc := service.NewRentalService(
		store.RentalRepository,
		store.ItemRepository,
		store.UserRepository,
		store.AuditRepository,
	)
	extensionSvc := service.NewExtensionService(
		store.RentalRepository,
		store.BookingRepository,
		store.ItemRepository,
		store.PaymentRepository,
		store.UserRepository,
		store.AuditRepository,
		emailSvc,
		sessions,
	)
	stockSvc := service.NewStockService(store.ItemRepository, store.AuditRepository)
	paymentSvc := service.NewPaymentService(store.PaymentRepository)
	auditSvc := service.NewAuditService(store.AuditRepository)

	// Initialize Scheduler
	jobRunner := jobs.NewJobRunner(db, store, emailSvc, sessions, cfg)
	cronScheduler := scheduler.NewScheduler(jobRunner)
	cronScheduler.Start()
	defer cronScheduler.Stop()

	// Set up HTTP server
	router := httpapi.NewRouter(httpapi.RouterDeps{
		DB:           db,
		Tokens:       tokenManager,
		AuthSvc:      authSvc,
		RentalSvc:    rentalSvc,
		ExtensionSvc: extensionSvc,
		StockSvc:     stockSvc,
		PaymentSvc:   paymentSvc,
		AuditSvc:     auditSvc,
	})

	server := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := server.ListenAndServe(); err != nil {
		logger.Error("Failed to serve HTTP", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
