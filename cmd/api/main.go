package main

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/amirhossein-jamali/bankcards/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/bankcards/internal/domain/port/core"
	"github.com/amirhossein-jamali/bankcards/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/bankcards/internal/domain/usecase/auth"
	"github.com/amirhossein-jamali/bankcards/internal/domain/usecase/card"
	"github.com/amirhossein-jamali/bankcards/internal/domain/usecase/transfer"
	"github.com/amirhossein-jamali/bankcards/internal/domain/usecase/user"

	"github.com/amirhossein-jamali/bankcards/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/bankcards/internal/infrastructure/adapter/api/httperr"
	"github.com/amirhossein-jamali/bankcards/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/bankcards/internal/infrastructure/adapter/api/validation"
	"github.com/amirhossein-jamali/bankcards/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/bankcards/internal/infrastructure/adapter/database/migration"
	"github.com/amirhossein-jamali/bankcards/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/bankcards/internal/infrastructure/adapter/security"
	timeProvider "github.com/amirhossein-jamali/bankcards/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/bankcards/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

const minJWTSecretBytes = 32

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate essential configuration
	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger := logger.NewZapLogger(logger.Options{
		Production: cfg.Logger.Format == "json" || cfg.Environment == config.Production,
		Level:      cfg.Logger.Level,
		Output:     cfg.Logger.Output,
		CallerInfo: cfg.Logger.CallerInfo,
	})
	defer func() { _ = appLogger.Flush() }()

	tp := timeProvider.NewRealTimeProvider()
	ctx := context.Background()

	// Connect to the database
	dbManager := database.NewManager(database.FromAppConfig(cfg), appLogger, tp)
	if _, err := dbManager.Connect(ctx); err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer func() { _ = dbManager.Close() }()

	if cfg.Database.Migrate {
		if err := dbManager.Migrate(ctx); err != nil {
			appLogger.Error("Failed to run migrations", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}

	// Security adapters
	signer, err := security.NewJWTSigner(cfg.Auth.JWTSecret, tp)
	if err != nil {
		appLogger.Error("Failed to initialize token signer", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	hasher := security.NewBcryptHasher(cfg.Auth.BcryptCost)
	generator := security.NewRandomCardNumberGenerator()

	// Use cases
	uow := dbManager.CreateUnitOfWork()
	userService := user.NewUserUseCase(uow, hasher, tp, appLogger)
	tokenService := auth.NewTokenService(uow, signer, tp, appLogger, cfg.Auth.TokenExpiration)
	authService := auth.NewService(userService, tokenService, hasher, appLogger)
	accountStore := card.NewAccountStore(uow, appLogger)
	cardService := card.NewService(uow, accountStore, generator, tp, appLogger, card.Config{
		ValidityYears:   cfg.Card.ValidityYears,
		DefaultCurrency: cfg.Card.DefaultCurrency,
	})
	transferEngine := transfer.NewEngine(uow, accountStore, tp, appLogger)

	// Seed the default admin
	err = migration.SeedDefaultAdmin(ctx, userService, usecase.CreateUserRequest{
		Username:  cfg.Admin.Username,
		Email:     cfg.Admin.Email,
		Password:  cfg.Admin.Password,
		FirstName: cfg.Admin.FirstName,
		LastName:  cfg.Admin.LastName,
		Role:      entity.RoleAdmin,
	}, appLogger)
	if err != nil {
		appLogger.Error("Failed to seed default admin", map[string]any{
			"error": err.Error(),
		})
	}

	// HTTP layer
	if err := validation.RegisterWithGin(); err != nil {
		appLogger.Error("Failed to register request validators", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	renderer := httperr.NewRenderer(appLogger, tp)

	router := gin.New()
	routes.SetupMiddlewares(router, tokenService, renderer, appLogger, tp, cfg.Server.AllowedOrigins)
	routes.SetupRoutes(router, routes.Handlers{
		Auth:     handler.NewAuthHandler(authService, renderer, appLogger),
		Card:     handler.NewCardHandler(cardService, renderer, appLogger),
		Transfer: handler.NewTransferHandler(transferEngine, cardService, renderer, appLogger),
		User:     handler.NewUserHandler(userService, renderer, appLogger),
		Health:   handler.NewHealthHandler(dbManager, tp, appLogger),
	}, renderer)

	// Create HTTP server with configurable timeout values
	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"addr": server.Addr,
			"env":  cfg.Environment,
		})

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Wait for interrupt signal or a listener failure
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-quit:
	case err := <-serverErr:
		appLogger.Error("Failed to start server", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Shutting down server...", nil)

	shutdownCtx, cancel := tp.WithTimeout(context.Background(), coreport.Duration(cfg.Server.ShutdownTimeout))
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missingConfigs []string

	// Validate server configuration
	if cfg.Server.Port == 0 {
		missingConfigs = append(missingConfigs, "server.port")
	}
	if cfg.Server.ReadTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.readTimeout")
	}
	if cfg.Server.WriteTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.writeTimeout")
	}
	if cfg.Server.ShutdownTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.shutdownTimeout")
	}

	// Validate database configuration
	required := []struct {
		value string
		name  string
		env   string
	}{
		{cfg.Database.Host, "database.host", "BC_DB_HOST"},
		{cfg.Database.Port, "database.port", "BC_DB_PORT"},
		{cfg.Database.Username, "database.username", "BC_DB_USERNAME"},
		{cfg.Database.Password, "database.password", "BC_DB_PASSWORD"},
		{cfg.Database.Database, "database.database", "BC_DB_NAME"},
	}
	for _, r := range required {
		if r.value == "" {
			missingConfigs = append(missingConfigs, fmt.Sprintf("%s (or %s environment variable)", r.name, r.env))
		}
	}
	if cfg.Database.QueryTimeout == 0 {
		missingConfigs = append(missingConfigs, "database.queryTimeout")
	}

	// Auth configuration
	if cfg.Auth.JWTSecret == "" {
		missingConfigs = append(missingConfigs, "auth.jwtSecret (or BC_JWT_SECRET environment variable)")
	}

	// Environment should be set with a valid value
	if cfg.Environment == "" {
		missingConfigs = append(missingConfigs, "environment")
	} else if cfg.Environment != config.Development &&
		cfg.Environment != config.Production &&
		cfg.Environment != config.Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	if cfg.Logger.Level == "" {
		missingConfigs = append(missingConfigs, "logger.level")
	}

	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configurations: %v", missingConfigs)
	}

	secret, err := base64.StdEncoding.DecodeString(cfg.Auth.JWTSecret)
	if err != nil {
		return fmt.Errorf("auth.jwtSecret must be base64 encoded: %w", err)
	}
	if len(secret) < minJWTSecretBytes {
		return fmt.Errorf("auth.jwtSecret must decode to at least %d bytes, got %d", minJWTSecretBytes, len(secret))
	}

	if cfg.Card.DefaultCurrency != "" {
		if _, err := entity.NormalizeCurrency(cfg.Card.DefaultCurrency); err != nil {
			return fmt.Errorf("card.defaultCurrency: %w", err)
		}
	}

	if cfg.Admin.Username != "" && cfg.Admin.Password == "" {
		return errors.New("admin.password is required when admin.username is set")
	}

	// If we're in production, do additional validation for sensitive settings
	if cfg.Environment == config.Production {
		var warnings []string

		sslMode := strings.ToLower(cfg.Database.SSLMode)
		if sslMode != "require" && sslMode != "verify-ca" && sslMode != "verify-full" {
			warnings = append(warnings, "database.sslMode should be set to 'require', 'verify-ca', or 'verify-full' in production")
		}
		if cfg.Server.ReadTimeout < 5*time.Second {
			warnings = append(warnings, "server.readTimeout is too low for production")
		}
		if cfg.Server.WriteTimeout < 5*time.Second {
			warnings = append(warnings, "server.writeTimeout is too low for production")
		}

		if len(warnings) > 0 {
			log.Printf("Warning: potential security issues in production configuration: %v", warnings)
		}
	}

	return nil
}
