package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"project-hub/internal/ai"
	"project-hub/internal/cache"
	"project-hub/internal/config"
	"project-hub/internal/database"
	"project-hub/internal/handler/auth"
	"project-hub/internal/logger"
	appmw "project-hub/internal/middleware"
	"project-hub/internal/router"
	"project-hub/internal/service"
	"project-hub/internal/validation"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	_ "project-hub/docs" // 引入 swag 產出的 docs

	echoSwagger "github.com/swaggo/echo-swagger"
)

// aiClient 是 run 需要的 AI 用戶端，*ai.GeminiClient 直接實作
type aiClient interface {
	ai.Client
	Close() error
}

// 測試時可覆寫
var (
	loadConfig      = config.Load
	initLogger      = logger.Init
	newPgxPool      = database.NewPgxPool
	newRedisClient  = cache.NewRedisClient
	runMigrationsFn = database.RunMigrations
	rollbackFn      = database.RollbackAll
	newAIClient     = func(ctx context.Context, cfg config.GeminiConfig) (aiClient, error) {
		return ai.NewGeminiClient(ctx, cfg.APIKey, cfg.Model)
	}
	startServer = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	exitFunc    = os.Exit
)

func run(ctx context.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("設定載入失敗: %w", err)
	}
	if _, err := initLogger(cfg.Log); err != nil {
		return fmt.Errorf("logger 初始化失敗: %w", err)
	}

	db, err := newPgxPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("DB 連線失敗: %w", err)
	}
	defer db.Close()

	rdb, err := newRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		return fmt.Errorf("Redis 連線失敗: %w", err)
	}
	defer rdb.Close()

	if err := runMigrationsFn(cfg.DatabaseURL); err != nil {
		return fmt.Errorf("Migration 執行失敗: %w", err)
	}

	gemini, err := newAIClient(ctx, cfg.Gemini)
	if err != nil {
		return fmt.Errorf("AI client 建立失敗: %w", err)
	}
	defer gemini.Close()

	tokens := service.NewTokenService(cfg.JWT.Secret, cfg.JWT.TTL, rdb)
	assistant := service.NewAssistant(gemini, cfg.Gemini.Timeout)

	e := newServer(db, rdb, tokens, assistant, auth.CookieConfig{Secure: cfg.CookieSecure})

	addr := ":" + cfg.Port
	slog.Info("starting server", "addr", addr)
	return startServer(e, addr)
}

// newServer 組裝 echo 實例：validator、中介層、路由與 swagger
func newServer(db database.DB, rdb cache.Cache, tokens *service.TokenService, assistant *service.Assistant, cookie auth.CookieConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = validation.New()

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(appmw.RequestContext)
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{
				"request_id", v.RequestID,
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
			}
			if v.Error != nil {
				attrs = append(attrs, "error", v.Error)
			}
			slog.Info("request", attrs...)
			return nil
		},
	}))
	e.Use(middleware.Recover())

	router.Setup(e, db, rdb, tokens, assistant, cookie)

	e.GET("/swagger/*", echoSwagger.WrapHandler)
	return e
}

// migrate 只需要資料庫設定，不建立其他連線
func migrate(step func(string) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("設定載入失敗: %w", err)
	}
	if _, err := initLogger(cfg.Log); err != nil {
		return fmt.Errorf("logger 初始化失敗: %w", err)
	}
	if err := step(cfg.DatabaseURL); err != nil {
		return fmt.Errorf("Migration 執行失敗: %w", err)
	}
	slog.Info("migration finished")
	return nil
}
