// File: internal/handler/auth/login.go
package auth

import (
	"errors"
	"net/http"

	"project-hub/internal/api"
	"project-hub/internal/apperr"
	"project-hub/internal/database"
	"project-hub/internal/handler"
	"project-hub/internal/service"
	"project-hub/internal/store"

	"github.com/labstack/echo/v4"
)

// LoginHandler 使用 Email/Password 驗證並回傳 JWT
// @Summary     登入使用者
// @Description 使用 Email 與 Password 進行驗證，回傳存取令牌與到期時間，並設定 auth_token cookie
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body     api.LoginRequest true "登入資料"
// @Success     200  {object} dto.AuthResponse
// @Failure     400  {object} dto.HTTPError
// @Failure     401  {object} dto.HTTPError
// @Failure     500  {object} dto.HTTPError
// @Router      /auth/login [post]
func LoginHandler(db database.DB, tokens *service.TokenService, cookie CookieConfig) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginRequest
		if err := handler.Bind(c, &req); err != nil {
			return handler.RespondError(c, err)
		}

		// 撈使用者資料
		user, err := store.GetUserByEmail(c.Request().Context(), db, req.Email)
		if errors.Is(err, store.ErrNotFound) {
			return handler.RespondError(c, apperr.InvalidCredentials())
		}
		if err != nil {
			return handler.RespondError(c, apperr.Internal(err))
		}

		// 驗證密碼
		if err := service.AuthenticateUser(*user, req.Password); err != nil {
			return handler.RespondError(c, apperr.InvalidCredentials())
		}

		return respondWithToken(c, tokens, cookie, *user, http.StatusOK)
	}
}
