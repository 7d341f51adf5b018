package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/Priyanshukr985/SHE-SAFE-EMERGENCY/internal/api"
	"github.com/Priyanshukr985/SHE-SAFE-EMERGENCY/internal/app"
	"github.com/Priyanshukr985/SHE-SAFE-EMERGENCY/internal/config"
	"github.com/Priyanshukr985/SHE-SAFE-EMERGENCY/internal/store"
	"github.com/Priyanshukr985/SHE-SAFE-EMERGENCY/pkg/rabbitmq"
	"github.com/Priyanshukr985/SHE-SAFE-EMERGENCY/pkg/twilioclient"
)

func main() {
	// Load .env file for local development. In production, env vars are set directly.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("cannot load config: %v", err)
	}

	// If a platform-provided PORT is set, prefer it
	if port := os.Getenv("PORT"); port != "" {
		cfg.ServerPort = port
	}
	if cfg.ServerPort == "" {
		cfg.ServerPort = "8080"
	}
	if cfg.SessionSecret == "" {
		log.Fatal("SESSION_SECRET must be set")
	}

	// Establish database connection pool
	dbConfig, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Unable to parse database URL: %v\n", err)
	}
	dbConfig.MaxConns = 10
	dbConfig.MinConns = 2
	dbConfig.MaxConnLifetime = 30 * time.Minute
	dbConfig.MaxConnIdleTime = 5 * time.Minute

	dbpool, err := pgxpool.NewWithConfig(context.Background(), dbConfig)
	if err != nil {
		log.Fatalf("Unable to connect to database: %v\n", err)
	}
	defer dbpool.Close()
	log.Println("Database connection established")

	// Ensure required tables exist (idempotent)
	if _, err := dbpool.Exec(context.Background(), `
        CREATE TABLE IF NOT EXISTS users (
            username TEXT PRIMARY KEY,
            password_hash TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        );
        CREATE TABLE IF NOT EXISTS alerts (
            id UUID PRIMARY KEY,
            username TEXT NOT NULL,
            phone TEXT NOT NULL,
            latitude TEXT NOT NULL,
            longitude TEXT NOT NULL,
            location TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        );
    `); err != nil {
		log.Fatalf("Failed ensuring tables: %v", err)
	}

	// Load the immutable scheme catalog
	catalog, err := store.LoadCatalog(cfg.SchemesPath)
	if err != nil {
		log.Fatalf("Unable to load scheme catalog: %v", err)
	}
	log.Printf("Loaded %d welfare schemes from %s", len(catalog), cfg.SchemesPath)

	// Set up RabbitMQ producer; fall back to a no-op publisher on failure
	var producer rabbitmq.Publisher
	if p, err := rabbitmq.NewEventProducer(cfg.RabbitMQURL); err != nil {
		log.Printf("WARNING: Failed to connect to RabbitMQ at startup: %v. Continuing without MQ.", err)
		producer = &rabbitmq.NoopPublisher{}
	} else {
		producer = p
		defer producer.Close()
		log.Println("RabbitMQ producer connected")
	}

	// Set up repositories and services
	userRepo := store.NewPostgresUserRepository(dbpool)
	alertRepo := store.NewPostgresAlertRepository(dbpool)
	notifier := twilioclient.NewClient(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioPhoneNumber)
	sosService := app.NewSOSService(notifier, alertRepo, producer)

	sessions := api.NewSessionManager(cfg.SessionSecret)
	authHandler := api.NewAuthHandler(userRepo, sessions)
	sosHandler := api.NewSOSHandler(sosService, alertRepo)
	exploreHandler := api.NewExploreHandler(catalog)

	server := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: api.Routes(sessions, authHandler, sosHandler, exploreHandler),
	}

	go func() {
		log.Printf("Server starting on port %s", cfg.ServerPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Could not start server: %s\n", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}

	log.Println("Server gracefully stopped")
}
