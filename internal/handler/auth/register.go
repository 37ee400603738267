package auth

import (
	"errors"
	"net/http"

	"project-hub/internal/api"
	"project-hub/internal/apperr"
	"project-hub/internal/database"
	"project-hub/internal/dto"
	"project-hub/internal/handler"
	"project-hub/internal/model"
	"project-hub/internal/service"
	"project-hub/internal/store"

	"github.com/labstack/echo/v4"
)

// RegisterHandler 建立一般會員帳號並直接登入
// @Summary     註冊使用者
// @Description 建立 member 帳號，回傳使用者資料與存取令牌，並設定 auth_token cookie
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body     api.RegisterRequest true "註冊資料"
// @Success     201  {object} dto.AuthResponse
// @Failure     400  {object} dto.HTTPError
// @Failure     500  {object} dto.HTTPError
// @Router      /auth/register [post]
func RegisterHandler(db database.DB, tokens *service.TokenService, cookie CookieConfig) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.RegisterRequest
		if err := handler.Bind(c, &req); err != nil {
			return handler.RespondError(c, err)
		}

		hash, err := service.HashPassword(req.Password)
		if err != nil {
			return handler.RespondError(c, apperr.Internal(err))
		}

		user, err := store.CreateUser(c.Request().Context(), db, &model.User{
			Name:         req.Name,
			Email:        req.Email,
			PasswordHash: hash,
			Role:         model.RoleMember,
		})
		if errors.Is(err, store.ErrDuplicateEmail) {
			return handler.RespondError(c, apperr.Validation("email", "already exists"))
		}
		if err != nil {
			return handler.RespondError(c, apperr.Internal(err))
		}

		return respondWithToken(c, tokens, cookie, *user, http.StatusCreated)
	}
}

func respondWithToken(c echo.Context, tokens *service.TokenService, cookie CookieConfig, user model.User, status int) error {
	token, claims, err := tokens.Issue(user)
	if err != nil {
		return handler.RespondError(c, apperr.Internal(err))
	}
	setAuthCookie(c, cookie, token, claims.ExpiresAt.Time)

	return c.JSON(status, dto.AuthResponse{
		Success:   true,
		User:      dto.NewUserResponse(user),
		Token:     token,
		ExpiresAt: claims.ExpiresAt.Time,
	})
}
