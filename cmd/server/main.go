package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"net/http"
	"time"

	_ "github.com/lib/pq"

	httpapi "declarations-backend/internal/api/http"
	"declarations-backend/internal/config"
	"declarations-backend/internal/jobs"
	"declarations-backend/internal/logger"
	"declarations-backend/internal/render"
	"declarations-backend/internal/repository/postgres"
	"declarations-backend/internal/scheduler"
	"declarations-backend/internal/security"
	"declarations-backend/internal/service"
	"declarations-backend/internal/storage"
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
	logger.Info("Starting Declarations Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
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

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	verifier := security.NewTokenVerifier(cfg.JWT.Secret)

	// Initialize Storage Service
	var storageService storage.Storage
	var filesHandler *httpapi.FilesHandler
	switch cfg.Storage.Type {
	case "", "mock":
		logger.Info("Using mock storage (local filesystem)", "upload_dir", cfg.Storage.UploadDir)
		mockStorage, err := storage.NewMockStorageService(cfg.Storage.BaseURL, cfg.Storage.UploadDir)
		if err != nil {
			logger.Error("Failed to initialize mock storage", "error", err)
			log.Fatalf("Failed to initialize mock storage: %v", err)
		}
		storageService = mockStorage
		filesHandler = httpapi.NewFilesHandler(mockStorage)
	case "firebase":
		logger.Info("Using Firebase storage", "bucket", cfg.Storage.Bucket)
		firebaseStorage, err := storage.NewFirebaseStorageService(context.Background(), cfg.Storage.Bucket, cfg.Storage.CredentialsFile)
		if err != nil {
			logger.Error("Failed to initialize Firebase storage", "error", err)
			log.Fatalf("Failed to initialize Firebase storage: %v", err)
		}
		storageService = firebaseStorage
	default:
		logger.Error("Unsupported storage type", "type", cfg.Storage.Type)
		log.Fatalf("Storage type '%s' not supported", cfg.Storage.Type)
	}

	// Initialize PDF generator
	pdfGen := render.NewPDFGenerator(cfg.Organization.Letterhead, cfg.Organization.ContactEmail)

	// Initialize Services
	emailSvc := service.NewEmailService(cfg.Email.SendGridAPIKey, cfg.Email.FromEmail, cfg.Email.FromName)
	requestSvc := service.NewRequestService(
		store.RequestRepository,
		store.UserRepository,
		store.DeclarationRepository,
		storageService,
		pdfGen,
		emailSvc,
		cfg.Generation.Bucket,
		cfg.Generation.TmpDir,
		time.Duration(cfg.Generation.ItemTimeoutSeconds)*time.Second,
	)
	analyticsSvc := service.NewAnalyticsService(store.RequestRepository, store.UserRepository)

	// Initialize Scheduler
	jobRunner := jobs.NewJobRunner(store.UserRepository, analyticsSvc, emailSvc, cfg)
	cronScheduler := scheduler.NewScheduler(jobRunner)
	cronScheduler.Start()
	defer cronScheduler.Stop()

	// Initialize HTTP handlers
	requestHandler := httpapi.NewRequestHandler(requestSvc)
	analyticsHandler := httpapi.NewAnalyticsHandler(analyticsSvc)
	router := httpapi.NewRouter(verifier, requestHandler, analyticsHandler, filesHandler)

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
