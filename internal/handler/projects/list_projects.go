package projects

import (
	"net/http"

	"project-hub/internal/apperr"
	"project-hub/internal/database"
	"project-hub/internal/dto"
	"project-hub/internal/handler"
	"project-hub/internal/middleware"
	"project-hub/internal/store"

	"github.com/labstack/echo/v4"
)

// ListProjectsHandler 列出目前使用者建立的專案
// @Summary     List projects
// @Description 只回傳呼叫者自己建立的專案，依建立時間由新到舊
// @Tags        projects
// @Produce     json
// @Success     200 {object} dto.ProjectListResponse
// @Failure     401 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /projects [get]
func ListProjectsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims := middleware.CallerFrom(c)
		if claims == nil {
			return handler.RespondError(c, apperr.Unauthorized())
		}

		projects, err := store.ListProjectsByOwner(c.Request().Context(), db, claims.UserID)
		if err != nil {
			return handler.RespondError(c, apperr.Internal(err))
		}
		return c.JSON(http.StatusOK, dto.ProjectListResponse{Projects: projects})
	}
}
