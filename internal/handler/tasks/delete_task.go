package tasks

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

// DeleteTaskHandler 刪除任務
// @Summary     Delete task
// @Tags        tasks
// @Produce     json
// @Param       id  path     string true "Task ID"
// @Success     200 {object} dto.SuccessResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     401 {object} dto.HTTPError
// @Failure     403 {object} dto.HTTPError
// @Failure     404 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /tasks/{id} [delete]
func DeleteTaskHandler(db database.DB, g *guard.Guard) echo.HandlerFunc {
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
		if err := g.CheckOwnership(ctx, claims, guard.ResourceTask, id); err != nil {
			return handler.RespondError(c, err)
		}
		if err := store.DeleteTask(ctx, db, id); err != nil {
			return handler.RespondError(c, handler.StoreError("Task", err))
		}
		return c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
	}
}
