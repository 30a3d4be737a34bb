// internal/app/server.go
package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"thelook-service/internal/cache"
	"thelook-service/internal/config"
	"thelook-service/internal/db"
	metricsHandler "thelook-service/internal/handlers/metrics"
	tablesHandler "thelook-service/internal/handlers/tables"
	"thelook-service/internal/middleware"
	"thelook-service/internal/repository/postgres"
)

type Server struct {
	cfg    *config.AppConfig
	engine *gin.Engine
	logger *zap.Logger
	http   *http.Server
}

func NewServer(cfg *config.AppConfig, logger *zap.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	return &Server{cfg: cfg, engine: engine, logger: logger}
}

func (s *Server) Start() error {
	ctx := context.Background()

	// ----- PostgreSQL -----
	pool, err := db.ConnectDB(ctx, s.cfg.PostgresDSN)
	if err != nil {
		return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}

	// ----- Redis -----
	redisClient, err := db.NewRedisClient(db.RedisConfig{
		Addr:     s.cfg.RedisAddr,
		Password: s.cfg.RedisPass,
		DB:       s.cfg.RedisDB,
		PoolSize: 10,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}
	s.logger.Info("data sources connected")

	// ----- Repositories -----
	metricsRepo := postgres.NewMetricsRepository(pool)
	tablesRepo := postgres.NewTablesRepository(pool)
	metricsCache := cache.NewMetricsCache(redisClient, s.cfg.CacheTTL)

	// ----- Handlers -----
	handlers := &Handlers{
		Metrics: metricsHandler.NewMetricsHandler(metricsCache, metricsRepo),
		Tables:  tablesHandler.NewTablesHandler(tablesRepo),
	}

	s.engine.Use(middleware.Recovery(s.logger))
	s.engine.Use(middleware.RequestLogger(s.logger))
	SetupRouter(s.engine, handlers)

	s.http = &http.Server{
		Addr:              s.cfg.HTTPAddr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	s.logger.Info("http server listening", zap.String("addr", s.cfg.HTTPAddr))
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server failed: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests up to the context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}
