package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"finledger/internal/config"
	"finledger/internal/database"
	"finledger/internal/handlers"
	custommw "finledger/internal/middleware"
	"finledger/internal/repositories"
	"finledger/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// .env is optional; deployments set the environment directly
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := config.Load()

	db, err := database.New(&cfg.Database)
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	sqlDB, err := db.DB.DB()
	if err != nil {
		logger.Error("Failed to access underlying sql.DB", "error", err)
		os.Exit(1)
	}

	runner := database.NewMigrationRunner(sqlDB, cfg.Database.Driver)
	if err := runner.WaitForDatabase(); err != nil {
		logger.Error("Database never became ready", "error", err)
		os.Exit(1)
	}
	if err := database.RunMigrationsIfEnabled(sqlDB, cfg.Database.Driver); err != nil {
		logger.Error("Migrations failed", "error", err)
		os.Exit(1)
	}
	if err := runner.LoadSeeds(); err != nil {
		logger.Warn("Seed loading failed", "error", err)
	}

	categoryRepo := repositories.NewCategoryRepository(db.DB)
	subcategoryRepo := repositories.NewSubcategoryRepository(db.DB)
	operationRepo := repositories.NewOperationRepository(db.DB)

	metrics := services.NewPrometheusMetrics()
	store := services.NewLedgerStore(categoryRepo, subcategoryRepo, operationRepo, metrics, logger)
	aggregation := services.NewAggregationService(metrics)

	// Populate the in-memory ledger up front. A failed initial load leaves
	// the store in its not-ready state; clients can trigger a retry via
	// POST /api/v1/ledger/refresh.
	if err := store.LoadAll(); err != nil {
		logger.Error("Initial ledger load failed", "error", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = custommw.CustomHTTPErrorHandler

	e.Use(custommw.RequestID())
	e.Use(custommw.PanicRecovery())
	e.Use(custommw.SecurityHeaders())
	e.Use(custommw.RateLimiterWithConfig(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitBurst))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
	}))

	healthHandler := handlers.NewHealthCheckHandler(db.DB)
	ledgerHandler := handlers.NewLedgerHandler(store)
	categoryHandler := handlers.NewCategoryHandler(store)
	subcategoryHandler := handlers.NewSubcategoryHandler(store)
	operationHandler := handlers.NewOperationHandler(store, aggregation)

	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1")

	api.GET("/ledger", ledgerHandler.GetLedger)
	api.POST("/ledger/refresh", ledgerHandler.Refresh)

	api.GET("/categories", categoryHandler.ListCategories)
	api.POST("/categories", categoryHandler.CreateCategory)
	api.PUT("/categories/:id", categoryHandler.UpdateCategory)
	api.DELETE("/categories/:id", categoryHandler.RemoveCategory)
	api.GET("/categories/:id/subcategories", categoryHandler.ListSubcategoriesOf)

	api.GET("/subcategories", subcategoryHandler.ListSubcategories)
	api.POST("/subcategories", subcategoryHandler.CreateSubcategory)
	api.PUT("/subcategories/:id", subcategoryHandler.UpdateSubcategory)
	api.DELETE("/subcategories/:id", subcategoryHandler.RemoveSubcategory)
	api.GET("/subcategories/:id/operations", subcategoryHandler.ListOperationsOf)

	api.GET("/operations", operationHandler.ListOperations)
	api.POST("/operations", operationHandler.CreateOperation)
	api.PUT("/operations/:id", operationHandler.UpdateOperation)
	api.DELETE("/operations/:id", operationHandler.RemoveOperation)
	api.GET("/operations/summary", operationHandler.GetSummary)

	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout
	e.Server.IdleTimeout = 60 * time.Second

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		logger.Info("Shutdown signal received", "signal", sig.String())

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := e.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server shutdown error", "error", err)
		}
		cancel()
	}()

	address := cfg.Server.Host + ":" + cfg.Server.Port
	logger.Info("Starting ledger server", "address", address, "driver", cfg.Database.Driver)
	if err := e.Start(address); err != nil && err != http.ErrServerClosed {
		logger.Error("Server error", "error", err)
		os.Exit(1)
	}

	<-ctx.Done()
	logger.Info("Server stopped gracefully")
}
