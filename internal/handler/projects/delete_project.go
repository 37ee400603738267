package projects

import (
	"net/http"

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

// DeleteProjectHandler 刪除專案及其任務
// @Summary     Delete project
// @Tags        projects
// @Produce     json
// @Param       id  path     string true "Project ID"
// @Success     200 {object} dto.SuccessResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     401 {object} dto.HTTPError
// @Failure     403 {object} dto.HTTPError
// @Failure     404 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /projects/{id} [delete]
func DeleteProjectHandler(db database.DB, g *guard.Guard) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims := middleware.CallerFrom(c)
		if claims == nil {
			return handler.RespondError(c, apperr.Unauthorized())
		}

		id, err := validation.ParseUUID("id", c.Param("id"))
		if err != nil {
			return handler.RespondError(c, err)
		}

		ctx := c.Request().Context()
		if err := g.CheckOwnership(ctx, claims, guard.ResourceProject, id); err != nil {
			return handler.RespondError(c, err)
		}
		if err := store.DeleteProject(ctx, db, id); err != nil {
			return handler.RespondError(c, handler.StoreError("Project", err))
		}
		return c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
	}
}
