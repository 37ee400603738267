package handler

import (
	"errors"

	"project-hub/internal/api"
	"project-hub/internal/apperr"
	"project-hub/internal/dto"
	"project-hub/internal/logger"
	"project-hub/internal/store"

	"github.com/labstack/echo/v4"
)

// RespondError 依 apperr.Kind 寫出錯誤回應；內部細節只寫入 log
func RespondError(c echo.Context, err error) error {
	e := apperr.As(err)
	status := e.Kind.Status()

	log := logger.FromContext(c.Request().Context()).With(
		"method", c.Request().Method,
		"path", c.Path(),
		"status", status,
	)
	if status >= 500 {
		log.Error("request failed", "kind", e.Kind.String(), "error", err)
	} else {
		log.Debug("request rejected", "kind", e.Kind.String(), "message", e.Message)
	}

	return c.JSON(status, dto.HTTPError{Message: e.Message})
}

// Bind 解析並驗證 request body
func Bind(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return apperr.InvalidBody(err)
	}
	if n, ok := req.(api.Normalizer); ok {
		n.Normalize()
	}
	if err := c.Validate(req); err != nil {
		var e *apperr.Error
		if errors.As(err, &e) {
			return e
		}
		return apperr.Internal(err)
	}
	return nil
}

// StoreError 將 store.ErrNotFound 轉為 resource 的 NotFound，其餘視為內部錯誤
func StoreError(resource string, err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return apperr.NotFound(resource)
	}
	return apperr.Internal(err)
}
