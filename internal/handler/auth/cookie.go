package auth

import (
	"net/http"
	"time"

	"project-hub/internal/middleware"

	"github.com/labstack/echo/v4"
)

// CookieConfig 控制 auth_token cookie 的屬性
type CookieConfig struct {
	Secure bool
}

func setAuthCookie(c echo.Context, cfg CookieConfig, token string, expiresAt time.Time) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.AuthCookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		MaxAge:   int(time.Until(expiresAt).Seconds()),
		HttpOnly: true,
		Secure:   cfg.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearAuthCookie 讓瀏覽器刪除 auth_token
func ClearAuthCookie(c echo.Context, cfg CookieConfig) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.AuthCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   cfg.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}
