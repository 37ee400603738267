package middleware

import (
	"context"
	"net/http"
	"strings"

	"project-hub/internal/logger"
	"project-hub/internal/service"

	"github.com/labstack/echo/v4"
)

const (
	ContextUserKey = "user"
	AuthCookieName = "auth_token"
)

// TokenVerifier 由 *service.TokenService 實作
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*service.Claims, error)
}

// extractToken 先讀 Authorization: Bearer，沒有時改讀 auth_token cookie
func extractToken(c echo.Context) (string, bool) {
	if authHeader := c.Request().Header.Get(echo.HeaderAuthorization); authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
			return "", false
		}
		return parts[1], true
	}
	if cookie, err := c.Cookie(AuthCookieName); err == nil && cookie.Value != "" {
		return cookie.Value, true
	}
	return "", false
}

// RequireAuth 驗證 token 並把 claims 放進 context；失敗一律回 401
func RequireAuth(tokens TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tokenString, ok := extractToken(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
			}
			claims, err := tokens.Verify(c.Request().Context(), tokenString)
			if err != nil {
				logger.FromContext(c.Request().Context()).Debug("token rejected", "error", err)
				return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
			}
			c.Set(ContextUserKey, claims)
			return next(c)
		}
	}
}

// CallerFrom 取出 RequireAuth 放入的 claims，未驗證時回傳 nil
func CallerFrom(c echo.Context) *service.Claims {
	claims, _ := c.Get(ContextUserKey).(*service.Claims)
	return claims
}

// RequestContext 把 echo 產生的 request ID 放進 request context，供 logger.FromContext 使用
func RequestContext(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		id := c.Response().Header().Get(echo.HeaderXRequestID)
		if id == "" {
			id = c.Request().Header.Get(echo.HeaderXRequestID)
		}
		if id != "" {
			ctx := logger.ContextWithRequestID(c.Request().Context(), id)
			c.SetRequest(c.Request().WithContext(ctx))
		}
		return next(c)
	}
}
