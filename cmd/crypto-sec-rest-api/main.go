// cmd/crypto-sec-rest-api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	v1 "github.com/Criscape/security-crypto-lab/internal/api/rest/v1"
	"github.com/Criscape/security-crypto-lab/internal/app"
	"github.com/Criscape/security-crypto-lab/internal/domain/users"
	"github.com/Criscape/security-crypto-lab/internal/infrastructure/persistence"
	"github.com/Criscape/security-crypto-lab/internal/pkg/config"
	"github.com/Criscape/security-crypto-lab/internal/pkg/logger"
	"github.com/gin-contrib/cors"

	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 15 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "../../configs/rest-app.yaml"
	}

	restConfig, err := config.InitializeRestConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	if err := logger.InitLogger(&restConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	deps, err := initializeDependencies(restConfig, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	defer func() {
		if err := deps.closeStore(); err != nil {
			log.Warn("Failed to close user store: ", err)
		}
	}()

	return startServerWithGracefulShutdown(restConfig, deps, log)
}

// appDependencies holds all initialized application components
type appDependencies struct {
	hashService users.HashService
	crypto      *app.CryptoServices
	closeStore  func() error
}

// initializeDependencies connects the user store and builds the operation services
func initializeDependencies(cfg *config.RestConfig, log logger.Logger) (*appDependencies, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Crypto.StoreTimeout)
	defer cancel()

	userRepo, closeStore, err := persistence.OpenUserRepository(ctx, cfg.Database, log)
	if err != nil {
		return nil, fmt.Errorf("failed to open user store: %w", err)
	}
	log.Info("User store ready: ", cfg.Database.Type)

	cryptoServices, err := app.NewCryptoServices(&cfg.Crypto, log)
	if err != nil {
		_ = closeStore()
		return nil, fmt.Errorf("failed to initialize crypto services: %w", err)
	}

	hashService, err := app.NewHashService(userRepo, cryptoServices.HashProcessor, cfg.Crypto.StoreTimeout, log)
	if err != nil {
		_ = closeStore()
		return nil, fmt.Errorf("failed to create hash service: %w", err)
	}

	log.Info("Application services initialized successfully")
	return &appDependencies{
		hashService: hashService,
		crypto:      cryptoServices,
		closeStore:  closeStore,
	}, nil
}

// startServerWithGracefulShutdown starts the HTTP server and handles graceful shutdown
func startServerWithGracefulShutdown(cfg *config.RestConfig, deps *appDependencies, log logger.Logger) error {
	r := gin.New()
	r.Use(gin.Recovery(), v1.RequestID(), v1.RequestLogger(log))

	r.Use(cors.New(cors.Config{
		AllowOrigins:  cfg.CORS.AllowOrigins,
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Accept-Language", v1.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", "Content-Type", v1.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}))

	v1.SetupRoutes(r,
		deps.hashService,
		deps.crypto.Symmetric,
		deps.crypto.Asymmetric,
		deps.crypto.EC,
		deps.crypto.Signature,
	)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrors := make(chan error, 1)

	go func() {
		log.Info("Starting server on port ", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return err
	case sig := <-quit:
		log.Info("Received signal ", sig, ", initiating graceful shutdown")
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	log.Info("Shutting down server...")
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}
