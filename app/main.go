package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"maintenance-console/internal/listeners"
	"maintenance-console/internal/repositories"
	"maintenance-console/internal/routes"
	"maintenance-console/internal/view"
	"maintenance-console/pkg/apiclient"
	"maintenance-console/pkg/config"
	apperrors "maintenance-console/pkg/errors"
	"maintenance-console/pkg/eventbus"
	"maintenance-console/pkg/i18n"
	applogger "maintenance-console/pkg/logger"
	"maintenance-console/pkg/middleware"
	"maintenance-console/pkg/utils"
	"maintenance-console/pkg/validation"
)

func main() {
	// 1. Config and logger
	cfg, err := config.New()
	if err != nil {
		panic(err)
	}
	logger := applogger.NewLogger(cfg.LogLevel)
	defer logger.Sync() //nolint:errcheck

	e := echo.New()
	e.HideBanner = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	// 2. Middleware
	e.Use(echomw.RecoverWithConfig(echomw.RecoverConfig{
		DisableStackAll: true,
		StackSize:       1 << 10,
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			logger.Error("panic recovered",
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
				zap.Error(err),
				zap.String("stack", string(stack)),
			)
			if !c.Response().Committed {
				httpErr := apperrors.NewHttpError(http.StatusInternalServerError, "", err, nil)
				_ = utils.ErrorResponse(c, httpErr, i18n.ErrGet, logger)
			}
			return err
		},
	}))
	e.Use(middleware.InjectLogger(logger))
	e.Use(middleware.Session())
	e.Use(middleware.Locale(cfg.Lang))
	e.Static("/static", cfg.Server.StaticDir)

	// 3. Validator and templates
	e.Validator = validation.New()
	renderer, err := view.New()
	if err != nil {
		logger.Fatal("failed to parse templates", zap.Error(err))
	}
	e.Renderer = renderer

	// 4. Flash store: Redis when configured, process memory otherwise
	var cache repositories.CacheRepositoryInterface
	if cfg.Redis.Address != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()
		if _, err := redisClient.Ping(context.Background()).Result(); err != nil {
			logger.Fatal("failed to connect to Redis", zap.Error(err), zap.String("address", cfg.Redis.Address))
		}
		cache = repositories.NewRedisCacheRepository(redisClient)
	} else {
		logger.Info("REDIS_ADDRESS not set, flash messages kept in memory")
		cache = repositories.NewMemoryCacheRepository()
	}

	// 5. Backend client, event bus, routes
	loggers := &routes.Loggers{
		Main:    logger,
		Backend: logger.Named("backend"),
	}
	client := apiclient.New(cfg.Backend.URL, cfg.Backend.Timeout, loggers.Backend)

	bus := eventbus.New(logger)
	listeners.NewAuditListener(logger).Register(bus)

	routes.InitRouter(e, client, cache, bus, loggers, cfg)

	// 6. Serve until interrupted
	go func() {
		logger.Info("server started", zap.String("port", cfg.Server.Port), zap.String("backend", client.BaseURL()))
		if err := e.Start(":" + cfg.Server.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("shutdown failed", zap.Error(err))
	}
	bus.Wait()
	logger.Info("server stopped")
}
