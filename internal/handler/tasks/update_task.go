package tasks

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

// UpdateTaskHandler 部分更新任務；estimated_hours 傳 null 會清除估計時數
// @Summary     Update task
// @Tags        tasks
// @Accept      json
// @Produce     json
// @Param       id   path     string                true "Task ID"
// @Param       body body     api.UpdateTaskRequest true "更新欄位"
// @Success     200  {object} dto.TaskResponse
// @Failure     400  {object} dto.HTTPError
// @Failure     401  {object} dto.HTTPError
// @Failure     403  {object} dto.HTTPError
// @Failure     404  {object} dto.HTTPError
// @Failure     500  {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /tasks/{id} [put]
func UpdateTaskHandler(db database.DB, g *guard.Guard) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims := middleware.CallerFrom(c)
		if claims == nil {
			return handler.RespondError(c, apperr.Unauthorized())
		}

		id, err := validation.ParseUUID("id", c.Param("id"))
		if err != nil {
			return handler.RespondError(c, err)
		}
		var req api.UpdateTaskRequest
		if err := handler.Bind(c, &req); err != nil {
			return handler.RespondError(c, err)
		}

		ctx := c.Request().Context()
		task, err := g.AuthorizeTask(ctx, claims, id)
		if err != nil {
			return handler.RespondError(c, err)
		}

		req.Patch().Apply(task)
		if err := store.UpdateTask(ctx, db, task); err != nil {
			return handler.RespondError(c, handler.StoreError("Task", err))
		}
		return c.JSON(http.StatusOK, dto.TaskResponse{Task: *task})
	}
}
