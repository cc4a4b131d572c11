package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"
	"time"

	_ "github.com/lib/pq"

	api "clubelect-backend/internal/api/http"
	"clubelect-backend/internal/config"
	"clubelect-backend/internal/logger"
	"clubelect-backend/internal/repository/postgres"
	"clubelect-backend/internal/security"
	"clubelect-backend/internal/service"
)

func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting clubelect backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	store := postgres.NewStore(db)

	tokens := security.NewTokenManager(cfg.JWT.Secret, time.Duration(cfg.JWT.AccessTokenExpiry)*time.Minute)

	authSvc := service.NewAuthService(store.UserRepository, tokens)
	userSvc := service.NewUserService(store.UserRepository, store.ClubRepository)
	clubSvc := service.NewClubService(store.ClubRepository, store.UserRepository)
	nomSvc := service.NewNominationService(store.NominationRepository, store.ClubRepository, nil)
	appSvc := service.NewApplicationService(store.ApplicationRepository, store.NominationRepository,
		store.ClubRepository, store.NotificationRepository, nil)
	electionSvc := service.NewElectionService(store.EventRepository, store.VoteRepository,
		store.ApplicationRepository, store.ClubRepository, store.NotificationRepository, nil)
	noteSvc := service.NewNotificationService(store.NotificationRepository)

	router := api.NewRouter(tokens, authSvc, userSvc, clubSvc, nomSvc, appSvc, electionSvc, noteSvc)

	addr := cfg.GetServerAddress()
	logger.Info("HTTP server listening", "address", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		logger.Error("HTTP server stopped", "error", err)
		log.Fatalf("HTTP server stopped: %v", err)
	}
}
