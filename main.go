package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/EivorRrz/restro/api/audit"
	"github.com/EivorRrz/restro/api/config"
	"github.com/EivorRrz/restro/api/controller"
	"github.com/EivorRrz/restro/api/dao"
	"github.com/EivorRrz/restro/api/db"
	logger "github.com/EivorRrz/restro/api/logging"
	"github.com/EivorRrz/restro/api/metrics"
	"github.com/EivorRrz/restro/api/middleware"
	"github.com/EivorRrz/restro/api/router"
	"github.com/EivorRrz/restro/api/service"
	"github.com/EivorRrz/restro/api/util"
)

func main() {
	// Initialize configuration
	if err := config.InitConfig(); err != nil {
		log.Fatalf("Failed to initialize config: %v", err)
	}
	cfg := config.GetConfig()

	// Initialize logger
	logger.InitLogger(cfg.Log.Dir)
	logger.SetLevel(cfg.Log.Level)
	defer logger.Sync()

	if cfg.Auth.JWTSecret == "" {
		logger.Fatal("auth.jwtSecret must be set")
	}

	// Initialize Neo4j
	if err := db.InitNeo4j(cfg.Neo4j); err != nil {
		logger.Fatal("Failed to initialize Neo4j", zap.Error(err))
	}
	defer db.CloseNeo4j()

	schemaCtx, cancelSchema := context.WithTimeout(context.Background(), 30*time.Second)
	if err := dao.EnsureSchema(schemaCtx, db.Neo4jDriver); err != nil {
		cancelSchema()
		logger.Fatal("Failed to ensure Neo4j schema", zap.Error(err))
	}
	cancelSchema()

	// Initialize the cache store
	store, err := db.NewStore(cfg)
	if err != nil {
		logger.Fatal("Failed to initialize cache store", zap.Error(err))
	}
	defer store.Close()

	// Audit trail
	var auditRepository audit.Repository = audit.NoopRepository{}
	if cfg.Elasticsearch.Enabled {
		esRepository, err := audit.NewElasticsearchRepository(cfg.Elasticsearch.URL, cfg.Elasticsearch.AuditIndex)
		if err != nil {
			logger.Fatal("Failed to initialize Elasticsearch audit repository", zap.Error(err))
		}
		auditRepository = esRepository
	}
	auditService := audit.NewService(auditRepository)

	// Initialize EventBus
	eventBus := util.NewEventBus()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	eventBus.Start(ctx)

	// Initialize utilities
	appMetrics := metrics.New()
	cacheService := util.NewCacheService(store,
		util.WithTTLPolicy(util.TTLPolicyFromConfig(cfg.Cache.TTL)),
		util.WithOpTimeout(cfg.Cache.OpTimeout),
		util.WithMetrics(appMetrics),
	)
	utilities := service.Utilities{
		Cache:        cacheService,
		Tokens:       util.NewTokenUtil(cfg.Auth.JWTSecret, cfg.Auth.Issuer, cfg.Auth.TokenLifetime),
		Passwords:    util.NewPasswordUtil(0),
		Validation:   util.NewValidationUtil(),
		Notification: util.NewNotificationService(),
		EventBus:     eventBus,
		Metrics:      appMetrics,
	}
	rateLimiter := util.NewRateLimiter(cacheService, cfg.RateLimit.Requests, cfg.RateLimit.Window, appMetrics)

	// Initialize services
	services, err := service.InitializeServices(db.Neo4jDriver, auditService, utilities)
	if err != nil {
		logger.Fatal("Failed to initialize services", zap.Error(err))
	}

	// Initialize controllers
	health := controller.NewHealthController(map[string]controller.Pinger{
		"cache": cacheService,
		"neo4j": controller.PingFunc(db.Neo4jDriver.VerifyConnectivity),
	}, appMetrics.Handler())
	controllers := controller.InitializeControllers(services, cacheService, health)

	// Set up Gin
	gin.SetMode(gin.ReleaseMode)
	mw := router.RouteGuards(middleware.Auth(services.Auth), middleware.RateLimiter(rateLimiter))
	engine := router.SetupRouter(controllers, mw)

	// Set up the server
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: engine,
	}

	// Start the server in a goroutine
	go func() {
		logger.Info("Starting server", zap.String("port", cfg.Server.Port), zap.String("cache", cfg.Cache.Type))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancelShutdown()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}
	if err := eventBus.Drain(shutdownCtx); err != nil {
		logger.Warn("Event handlers still running at shutdown", zap.Error(err))
	}

	logger.Info("Server exiting")
}
