package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/rfadhilah/vendor-catalog-service/config"
	"github.com/rfadhilah/vendor-catalog-service/pkg/database/postgres"
	"github.com/rfadhilah/vendor-catalog-service/pkg/logger"

	catH "github.com/rfadhilah/vendor-catalog-service/internal/category/handler"
	catRepoPkg "github.com/rfadhilah/vendor-catalog-service/internal/category/repository"
	catUCPkg "github.com/rfadhilah/vendor-catalog-service/internal/category/usecase"

	prodH "github.com/rfadhilah/vendor-catalog-service/internal/product/handler"
	prodRepoPkg "github.com/rfadhilah/vendor-catalog-service/internal/product/repository"
	prodUCPkg "github.com/rfadhilah/vendor-catalog-service/internal/product/usecase"

	ingestClientPkg "github.com/rfadhilah/vendor-catalog-service/internal/ingest/client"
	ingestH "github.com/rfadhilah/vendor-catalog-service/internal/ingest/handler"
	ingestUCPkg "github.com/rfadhilah/vendor-catalog-service/internal/ingest/usecase"

	exportH "github.com/rfadhilah/vendor-catalog-service/internal/export/handler"
	exportUCPkg "github.com/rfadhilah/vendor-catalog-service/internal/export/usecase"
)

func main() {
	// 1. Load Configuration
	_ = godotenv.Load() // Load .env file if it exists
	cfg := config.LoadEnv()

	// 2. Initialize Logger
	logConfig := &logger.ZapLoggerConfig{
		IsDevelopment:     false,
		Encoding:          "json",
		Level:             "info",
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
	}
	if cfg.Server.AppEnv == "dev" || cfg.Server.AppEnv == "development" {
		logConfig.IsDevelopment = true
		logConfig.Encoding = cfg.Logger.Encoding
		logConfig.Level = cfg.Logger.Level
	}

	appLogger := logger.NewZapLogger(logConfig)
	defer appLogger.Sync()

	// 3. Connect to Database
	db, err := postgres.NewPostgres(&postgres.Config{
		Host:            cfg.Postgres.Host,
		Port:            cfg.Postgres.Port,
		User:            cfg.Postgres.User,
		Password:        cfg.Postgres.Password,
		DBName:          cfg.Postgres.DBName,
		SSLMode:         cfg.Postgres.SSLMode,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Postgres.ConnMaxLifetime) * time.Second,
		ConnMaxIdleTime: time.Duration(cfg.Postgres.ConnMaxIdleTime) * time.Second,
	})
	if err != nil {
		appLogger.Fatal("could not connect to database", zap.Error(err))
	}
	defer db.Close()
	appLogger.Info("connected to PostgreSQL database", zap.String("db_name", cfg.Postgres.DBName))

	// 4. Initialize Repositories
	catRepo := catRepoPkg.NewPGRepository(db)
	prodRepo := prodRepoPkg.NewPGRepository(db)

	// 5. Initialize Vendor Client
	vendorClient := ingestClientPkg.NewClient(cfg.Vendor.BaseURL, &http.Client{
		Timeout: time.Duration(cfg.Vendor.RequestTimeout) * time.Second,
	})

	// 6. Initialize UseCases
	catUC := catUCPkg.NewCategoryUseCase(catRepo, appLogger)
	prodUC := prodUCPkg.NewProductUseCase(prodRepo, appLogger)
	ingestUC := ingestUCPkg.NewIngestUseCase(vendorClient, catRepo, prodRepo, appLogger)
	exportUC := exportUCPkg.NewExportUseCase(prodRepo, appLogger)

	// 7. Initialize Handlers
	catHandler := catH.NewCategoryHandler(catUC, appLogger)
	prodHandler := prodH.NewProductHandler(prodUC, appLogger)
	ingestHandler := ingestH.NewIngestHandler(ingestUC, appLogger)
	exportHandler := exportH.NewExportHandler(exportUC, appLogger)

	// 8. Build Router
	if cfg.Server.AppEnv != "dev" && cfg.Server.AppEnv != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(appLogger))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.GET("/fetch-data/:remoteId", ingestHandler.FetchData)

	router.GET("/categories", catHandler.List)
	router.GET("/categories/:id", catHandler.Get)

	router.GET("/products", prodHandler.List)
	router.POST("/products", prodHandler.Create)
	router.GET("/products/:id", prodHandler.Get)
	router.PUT("/products/:id", prodHandler.Update)
	router.DELETE("/products/:id", prodHandler.Delete)

	router.GET("/export/xml", exportHandler.XML)
	router.GET("/export/xlsx", exportHandler.Spreadsheet)

	// 9. Start HTTP Server
	port := cfg.Server.HTTPPort
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	srv := &http.Server{
		Addr:    port,
		Handler: router,
	}

	go func() {
		appLogger.Info("starting HTTP server", zap.String("port", port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal("failed to serve", zap.Error(err))
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Error("forced shutdown", zap.Error(err))
	}
	appLogger.Info("server stopped")
}

func requestLogger(log logger.ZapLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
		)
	}
}
