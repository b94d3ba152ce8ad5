package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"net/http"
	"time"

	_ "github.com/lib/pq"

	api "ukm-registry-backend/internal/api/http"
	"ukm-registry-backend/internal/config"
	"ukm-registry-backend/internal/jobs"
	"ukm-registry-backend/internal/logger"
	"ukm-registry-backend/internal/repository/postgres"
	"ukm-registry-backend/internal/scheduler"
	"ukm-registry-backend/internal/security"
	"ukm-registry-backend/internal/service"
	"ukm-registry-backend/internal/storage"
)

func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting UKM Registry Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database)

	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	store := postgres.NewStore(db)

	tokenManager := security.NewTokenManager(cfg.JWT.Secret)

	docStorage, err := storage.NewLocalStorage(cfg.Storage.UploadDir)
	if err != nil {
		log.Fatalf("Failed to initialize document storage: %v", err)
	}

	var emailSvc service.EmailService
	if cfg.Email.APIKey != "" {
		emailSvc = service.NewEmailService(cfg.Email.APIKey, cfg.Email.FromEmail, cfg.Email.FromName)
	} else {
		logger.Warn("Email service disabled, no SendGrid API key configured")
	}

	var pushSvc service.PushService
	if cfg.Firebase.Enabled {
		pushSvc, err = service.NewPushService(context.Background(), cfg.Firebase.CredentialsFile)
		if err != nil {
			log.Fatalf("Failed to initialize push service: %v", err)
		}
	}

	decisionSvc := service.NewIdempotentDecisionService(service.NewDecisionService(
		store.RegistrationRepository,
		store.MembershipRepository,
		store.OrganizationRepository,
		store.UserRepository,
		store.DecisionStore,
		emailSvc,
		pushSvc,
		time.Duration(cfg.Decision.TimeoutSeconds)*time.Second,
	))
	regSvc := service.NewRegistrationService(store.RegistrationRepository, store.MembershipRepository, store.OrganizationRepository)
	noteSvc := service.NewNotificationService(store.NotificationRepository)
	orgSvc := service.NewOrganizationService(store.OrganizationRepository, store.MembershipRepository)

	if emailSvc != nil && cfg.Scheduler.PendingReminder != "" {
		jobRunner := jobs.NewJobRunner(db, store, emailSvc, cfg)
		sched := scheduler.NewScheduler(jobRunner)
		sched.Start()
		defer sched.Stop()
	}

	router := api.NewRouter(api.Handlers{
		Decision:     api.NewDecisionHandler(decisionSvc),
		Registration: api.NewRegistrationHandler(regSvc),
		Notification: api.NewNotificationHandler(noteSvc),
		Organization: api.NewOrganizationHandler(orgSvc),
		Upload:       api.NewUploadHandler(docStorage, cfg.Storage.MaxFileSizeMB),
		Auth:         api.NewAuthMiddleware(tokenManager),
	})

	server := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := server.ListenAndServe(); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
