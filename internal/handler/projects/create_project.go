package projects

import (
	"net/http"

	"project-hub/internal/api"
	"project-hub/internal/apperr"
	"project-hub/internal/database"
	"project-hub/internal/dto"
	"project-hub/internal/handler"
	"project-hub/internal/middleware"
	"project-hub/internal/model"
	"project-hub/internal/store"

	"github.com/labstack/echo/v4"
)

// CreateProjectHandler 建立專案，建立者為目前使用者
// @Summary     Create project
// @Tags        projects
// @Accept      json
// @Produce     json
// @Param       body body     api.CreateProjectRequest true "專案資料"
// @Success     201  {object} dto.ProjectResponse
// @Failure     400  {object} dto.HTTPError
// @Failure     401  {object} dto.HTTPError
// @Failure     500  {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /projects [post]
func CreateProjectHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims := middleware.CallerFrom(c)
		if claims == nil {
			return handler.RespondError(c, apperr.Unauthorized())
		}

		var req api.CreateProjectRequest
		if err := handler.Bind(c, &req); err != nil {
			return handler.RespondError(c, err)
		}

		project := model.Project{
			Title:       req.Title,
			Description: req.Description,
			CreatedBy:   claims.UserID,
			CreatorName: claims.Name,
		}
		if err := store.CreateProject(c.Request().Context(), db, &project); err != nil {
			return handler.RespondError(c, apperr.Internal(err))
		}
		return c.JSON(http.StatusCreated, dto.ProjectResponse{Project: project})
	}
}
