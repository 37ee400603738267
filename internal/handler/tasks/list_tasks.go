package tasks

import (
	"net/http"

	"project-hub/internal/apperr"
	"project-hub/internal/database"
	"project-hub/internal/dto"
	"project-hub/internal/handler"
	"project-hub/internal/middleware"
	"project-hub/internal/store"
	"project-hub/internal/validation"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ListTasksHandler 列出目前使用者建立的任務，可依 project_id 過濾
// @Summary     List tasks
// @Description 只回傳呼叫者自己建立的任務，依建立時間由新到舊
// @Tags        tasks
// @Produce     json
// @Param       project_id query    string false "Project ID"
// @Success     200        {object} dto.TaskListResponse
// @Failure     400        {object} dto.HTTPError
// @Failure     401        {object} dto.HTTPError
// @Failure     500        {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /tasks [get]
func ListTasksHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims := middleware.CallerFrom(c)
		if claims == nil {
			return handler.RespondError(c, apperr.Unauthorized())
		}

		var projectID *uuid.UUID
		if raw := c.QueryParam("project_id"); raw != "" {
			id, err := validation.ParseUUID("project_id", raw)
			if err != nil {
				return handler.RespondError(c, err)
			}
			projectID = &id
		}

		tasks, err := store.ListTasksByOwnerAndProject(c.Request().Context(), db, claims.UserID, projectID)
		if err != nil {
			return handler.RespondError(c, apperr.Internal(err))
		}
		return c.JSON(http.StatusOK, dto.TaskListResponse{Tasks: tasks})
	}
}
