package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"internhub/core/cache"
	"internhub/core/config"
	"internhub/core/database"
	"internhub/core/logger"
	appmiddleware "internhub/core/middleware"
	"internhub/core/storage"
	"internhub/core/tasks"
	"internhub/modules/auth"
	"internhub/modules/booking"
	"internhub/modules/company"
	"internhub/modules/event"
	"internhub/modules/notification"
	"internhub/modules/offer"
	"internhub/modules/student"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// Run loads configuration, connects the infrastructure, wires every module
// and serves until SIGINT/SIGTERM.
func Run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger.Init(cfg.Server.LogLevel)

	db, err := database.InitDB(database.DatabaseConfig{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.DBName,
		SSLMode:  cfg.Database.SSLMode,
	})
	if err != nil {
		return err
	}

	redisCache, err := cache.NewRedisCache(cache.RedisConfig{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		return fmt.Errorf("connect redis: %w", err)
	}
	defer redisCache.Close()

	tasksClient := tasks.NewClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	defer tasksClient.Close()

	taskServer, taskMux := tasks.NewServer(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	go func() {
		if err := taskServer.Run(taskMux); err != nil {
			logger.Error("task server stopped", err)
		}
	}()

	store := storage.NewS3Storage(cfg.S3)
	mw := appmiddleware.NewMiddleware(redisCache)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.CORS())

	e.GET("/swagger/*", echoSwagger.WrapHandler)
	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	idb := database.IDatabase(&db)

	notifications := notification.Init(e.Group("/api/v1/private"), idb, mw)
	company.Init(e, idb, store, notifications, mw)
	auth.Init(e, idb, redisCache, tasksClient, mw)
	student.Init(e, idb, store, mw)
	event.Init(e, idb, mw)
	offer.Init(e, idb, mw)
	booking.Init(e, idb, notifications, tasksClient, mw)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	go func() {
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Error("http server stopped", err)
		}
	}()
	logger.Info("server started", "addr", addr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down...")
	taskServer.Shutdown()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(ctx)
}
