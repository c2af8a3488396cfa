package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/ADITHIYAN008/backend/internal/api/http"
	"github.com/ADITHIYAN008/backend/internal/api/http/handlers"
	"github.com/ADITHIYAN008/backend/internal/auth"
	"github.com/ADITHIYAN008/backend/internal/config"
	"github.com/ADITHIYAN008/backend/internal/observability"
	"github.com/ADITHIYAN008/backend/internal/repository"
	"github.com/ADITHIYAN008/backend/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	metrics := observability.NewMetrics()

	credentials := repository.NewCredentialStore()
	batches := repository.NewBatchStore()
	employees := repository.NewEmployeeStore()

	authService := service.NewAuthService(*cfg, credentials)
	batchService := service.NewBatchService(batches)
	employeeService := service.NewEmployeeService(employees)

	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager())

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.CORS)

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version),
		Auth:           handlers.NewAuthHandler(authService),
		Batches:        handlers.NewBatchesHandler(batchService),
		Employees:      handlers.NewEmployeesHandler(employeeService),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		logger.Info("listening", zap.String("addr", cfg.App.Addr()))
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
