package projects

import (
	"net/http"

	"project-hub/internal/api"
	"project-hub/internal/apperr"
	"project-hub/internal/database"
	"project-hub/internal/dto"
	"project-hub/internal/guard"
	"project-hub/internal/handler"
	"project-hub/internal/middleware"
	"project-hub/internal/store"
	"project-hub/internal/validation"

	"github.com/labstack/echo/v4"
)

// UpdateProjectHandler 部分更新專案，只有建立者可以修改
// @Summary     Update project
// @Description 未提供的欄位保持不變
// @Tags        projects
// @Accept      json
// @Produce     json
// @Param       id   path     string                   true "Project ID"
// @Param       body body     api.UpdateProjectRequest true "更新欄位"
// @Success     200  {object} dto.ProjectResponse
// @Failure     400  {object} dto.HTTPError
// @Failure     401  {object} dto.HTTPError
// @Failure     403  {object} dto.HTTPError
// @Failure     404  {object} dto.HTTPError
// @Failure     500  {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /projects/{id} [put]
func UpdateProjectHandler(db database.DB, g *guard.Guard) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims := middleware.CallerFrom(c)
		if claims == nil {
			return handler.RespondError(c, apperr.Unauthorized())
		}

		id, err := validation.ParseUUID("id", c.Param("id"))
		if err != nil {
			return handler.RespondError(c, err)
		}
		var req api.UpdateProjectRequest
		if err := handler.Bind(c, &req); err != nil {
			return handler.RespondError(c, err)
		}

		ctx := c.Request().Context()
		project, err := g.AuthorizeProject(ctx, claims, id)
		if err != nil {
			return handler.RespondError(c, err)
		}

		req.Patch().Apply(project)
		if err := store.UpdateProject(ctx, db, project); err != nil {
			return handler.RespondError(c, handler.StoreError("Project", err))
		}
		return c.JSON(http.StatusOK, dto.ProjectResponse{Project: *project})
	}
}
