package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/localate/localate/internal/cache"
	"github.com/localate/localate/internal/config"
	dbpkg "github.com/localate/localate/internal/db"
	"github.com/localate/localate/internal/logger"
	"github.com/localate/localate/internal/middleware"
	"github.com/localate/localate/internal/routes"
)

func main() {

	cfg := config.Load()

	zlog, err := logger.Init(cfg.LogLevel, cfg.Env)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer zlog.Sync()

	db := dbpkg.NewDB(cfg)
	store := cache.New(cfg.RedisAddr)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestLogger(zlog))
	r.Use(middleware.Metrics())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", middleware.PrometheusHandler())

	routes.RegisterRoutes(r, db, cfg, zlog, store)

	zlog.Info("server running",
		zap.String("addr", cfg.Addr()),
		zap.Bool("cache_enabled", store.Enabled()),
	)
	if err := r.Run(cfg.Addr()); err != nil {
		zlog.Fatal("failed to start server", zap.Error(err))
	}
}
