package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/hub")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("GEMINI_API_KEY", "key")
}

func noDotenv(t *testing.T) {
	godotenvLoad = func(...string) error { return os.ErrNotExist }
	t.Cleanup(func() { godotenvLoad = godotenv.Load })
}

func TestLoadDefaults(t *testing.T) {
	noDotenv(t)
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, 0, cfg.Redis.DB)
	require.Equal(t, 7*24*time.Hour, cfg.JWT.TTL)
	require.Equal(t, "gemini-2.5-flash", cfg.Gemini.Model)
	require.Equal(t, 30*time.Second, cfg.Gemini.Timeout)
	require.False(t, cfg.CookieSecure)
	require.Equal(t, "info", cfg.Log.Level)
	require.Equal(t, 100, cfg.Log.MaxSize)
}

func TestLoadOverrides(t *testing.T) {
	noDotenv(t)
	setRequired(t)
	t.Setenv("PORT", "9000")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("JWT_TTL", "1h")
	t.Setenv("AI_TIMEOUT", "5s")
	t.Setenv("COOKIE_SECURE", "true")
	t.Setenv("GEMINI_MODEL", "gemini-pro")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_MAX_AGE", "7")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "9000", cfg.Port)
	require.Equal(t, 2, cfg.Redis.DB)
	require.Equal(t, time.Hour, cfg.JWT.TTL)
	require.Equal(t, 5*time.Second, cfg.Gemini.Timeout)
	require.True(t, cfg.CookieSecure)
	require.Equal(t, "gemini-pro", cfg.Gemini.Model)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, 7, cfg.Log.MaxAge)
}

func TestLoadMissingRequired(t *testing.T) {
	noDotenv(t)
	for _, key := range []string{"DATABASE_URL", "REDIS_ADDR", "JWT_SECRET", "GEMINI_API_KEY"} {
		t.Run(key, func(t *testing.T) {
			setRequired(t)
			t.Setenv(key, "")
			_, err := Load()
			require.EqualError(t, err, key+" not set")
		})
	}
}

func TestLoadInvalidValues(t *testing.T) {
	noDotenv(t)
	cases := map[string]string{
		"REDIS_DB":        "x",
		"JWT_TTL":         "forever",
		"AI_TIMEOUT":      "-1s",
		"COOKIE_SECURE":   "maybe",
		"LOG_MAX_SIZE":    "big",
		"LOG_MAX_BACKUPS": "many",
		"LOG_MAX_AGE":     "old",
	}
	for key, val := range cases {
		t.Run(key, func(t *testing.T) {
			setRequired(t)
			t.Setenv(key, val)
			_, err := Load()
			require.ErrorContains(t, err, key)
		})
	}
}

func TestLoadDotenv(t *testing.T) {
	setRequired(t)
	t.Setenv("PORT", "")
	os.Unsetenv("PORT")
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("PORT=7070\n"), 0o600))
	godotenvLoad = func(...string) error { return godotenv.Load(path) }
	t.Cleanup(func() { godotenvLoad = godotenv.Load })

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "7070", cfg.Port)
}
