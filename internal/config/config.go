// Package config 從環境變數（與選用的 .env 檔）載入服務設定
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"project-hub/internal/logger"

	"github.com/joho/godotenv"
)

type Config struct {
	Port         string
	DatabaseURL  string
	Redis        RedisConfig
	JWT          JWTConfig
	CookieSecure bool
	Gemini       GeminiConfig
	Log          logger.Config
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret string
	TTL    time.Duration
}

type GeminiConfig struct {
	APIKey  string
	Model   string
	Timeout time.Duration
}

// 測試時可覆寫
var godotenvLoad = godotenv.Load

// Load 讀取設定；必填值缺少或數值格式錯誤時回傳錯誤
func Load() (*Config, error) {
	// .env 不存在時忽略
	_ = godotenvLoad()

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		Redis: RedisConfig{
			Addr:     os.Getenv("REDIS_ADDR"),
			Password: os.Getenv("REDIS_PASSWORD"),
		},
		JWT: JWTConfig{
			Secret: os.Getenv("JWT_SECRET"),
		},
		Gemini: GeminiConfig{
			APIKey: os.Getenv("GEMINI_API_KEY"),
			Model:  getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		},
	}

	for key, val := range map[string]string{
		"DATABASE_URL":   cfg.DatabaseURL,
		"REDIS_ADDR":     cfg.Redis.Addr,
		"JWT_SECRET":     cfg.JWT.Secret,
		"GEMINI_API_KEY": cfg.Gemini.APIKey,
	} {
		if val == "" {
			return nil, fmt.Errorf("%s not set", key)
		}
	}

	var err error
	if cfg.Redis.DB, err = getInt("REDIS_DB", 0); err != nil {
		return nil, err
	}
	if cfg.JWT.TTL, err = getDuration("JWT_TTL", 7*24*time.Hour); err != nil {
		return nil, err
	}
	if cfg.Gemini.Timeout, err = getDuration("AI_TIMEOUT", 30*time.Second); err != nil {
		return nil, err
	}
	if cfg.CookieSecure, err = getBool("COOKIE_SECURE", false); err != nil {
		return nil, err
	}

	log := logger.DefaultConfig()
	log.Level = getEnv("LOG_LEVEL", log.Level)
	log.Format = getEnv("LOG_FORMAT", log.Format)
	log.Output = getEnv("LOG_OUTPUT", log.Output)
	log.FilePath = getEnv("LOG_FILE", log.FilePath)
	if log.MaxSize, err = getInt("LOG_MAX_SIZE", log.MaxSize); err != nil {
		return nil, err
	}
	if log.MaxBackups, err = getInt("LOG_MAX_BACKUPS", log.MaxBackups); err != nil {
		return nil, err
	}
	if log.MaxAge, err = getInt("LOG_MAX_AGE", log.MaxAge); err != nil {
		return nil, err
	}
	cfg.Log = log

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getInt(key string, defaultValue int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func getBool(key string, defaultValue bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return b, nil
}

func getDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s: must be positive", key)
	}
	return d, nil
}
