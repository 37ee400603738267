// File: internal/handler/users/delete_me.go
package users

import (
	"net/http"

	"project-hub/internal/apperr"
	"project-hub/internal/database"
	"project-hub/internal/dto"
	"project-hub/internal/handler"
	"project-hub/internal/handler/auth"
	"project-hub/internal/logger"
	"project-hub/internal/middleware"
	"project-hub/internal/service"
	"project-hub/internal/store"

	"github.com/labstack/echo/v4"
)

// DeleteMeHandler 刪除當前使用者帳號
// @Summary     Delete current user
// @Description 刪除當前使用者帳號，其專案與任務一併刪除，並撤銷目前的 token
// @Tags        users
// @Produce     json
// @Success     200 {object} dto.SuccessResponse
// @Failure     401 {object} dto.HTTPError
// @Failure     404 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /users/me [delete]
func DeleteMeHandler(db database.DB, tokens *service.TokenService, cookie auth.CookieConfig) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims := middleware.CallerFrom(c)
		if claims == nil {
			return handler.RespondError(c, apperr.Unauthorized())
		}

		ctx := c.Request().Context()
		if err := store.DeleteUser(ctx, db, claims.UserID); err != nil {
			return handler.RespondError(c, handler.StoreError("User", err))
		}

		// 帳號已刪除，撤銷失敗不影響結果
		if err := tokens.Revoke(ctx, claims); err != nil {
			logger.FromContext(ctx).Warn("revoke token after account deletion", "error", err)
		}
		auth.ClearAuthCookie(c, cookie)
		return c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
	}
}
