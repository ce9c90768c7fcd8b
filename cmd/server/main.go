package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"
	"time"

	_ "github.com/lib/pq"

	api "vidly-backend/internal/api/http"
	"vidly-backend/internal/config"
	"vidly-backend/internal/logger"
	"vidly-backend/internal/repository/postgres"
	"vidly-backend/internal/security"
	"vidly-backend/internal/service"
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
	logger.Info("Starting Vidly Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
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
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, time.Duration(cfg.JWT.TokenExpiryMinutes)*time.Minute)
	authMiddleware := api.NewAuthMiddleware(tokenManager)

	// Initialize Services
	emailSvc := service.NewEmailService(
		cfg.SendGrid.APIKey,
		cfg.SendGrid.FromEmail,
		cfg.SendGrid.FromName,
		cfg.SendGrid.AdminEmail,
	)
	authSvc := service.NewAuthService(store.UserRepository, tokenManager)
	genreSvc := service.NewGenreService(store.GenreRepository)
	movieSvc := service.NewMovieService(store.MovieRepository, store.GenreRepository)
	customerSvc := service.NewCustomerService(store.CustomerRepository)
	rentalSvc := service.NewRentalService(store.RentalRepository, store.MovieRepository, store.CustomerRepository)
	returnSvc := service.NewReturnService(store.RentalRepository, store.MovieRepository, store.StockAdjustmentRepository, emailSvc)

	// Initialize HTTP handlers
	handlers := &api.Handlers{
		Auth:      api.NewAuthHandler(authSvc),
		Genres:    api.NewGenreHandler(genreSvc),
		Movies:    api.NewMovieHandler(movieSvc),
		Customers: api.NewCustomerHandler(customerSvc),
		Rentals:   api.NewRentalHandler(rentalSvc),
		Returns:   api.NewReturnsHandler(returnSvc),
	}

	router := api.NewRouter(authMiddleware, handlers)

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("Failed to serve HTTP", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
