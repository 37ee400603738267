package auth

import (
	"net/http"

	"project-hub/internal/apperr"
	"project-hub/internal/dto"
	"project-hub/internal/handler"
	"project-hub/internal/middleware"
	"project-hub/internal/service"

	"github.com/labstack/echo/v4"
)

// LogoutHandler 撤銷目前的存取令牌並清除 cookie
// @Summary     登出
// @Description 將目前 token 加入撤銷清單直到原本的到期時間，並清除 auth_token cookie
// @Tags        auth
// @Produce     json
// @Success     200 {object} dto.SuccessResponse
// @Failure     401 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /auth/logout [post]
func LogoutHandler(tokens *service.TokenService, cookie CookieConfig) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims := middleware.CallerFrom(c)
		if claims == nil {
			return handler.RespondError(c, apperr.Unauthorized())
		}
		if err := tokens.Revoke(c.Request().Context(), claims); err != nil {
			return handler.RespondError(c, apperr.Internal(err))
		}
		ClearAuthCookie(c, cookie)
		return c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
	}
}
