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
	"project-hub/internal/model"
	"project-hub/internal/store"
	"project-hub/internal/validation"

	"github.com/labstack/echo/v4"
)

// CreateTaskHandler 在自己的專案下建立任務
// @Summary     Create task
// @Description project_id 必須是呼叫者擁有的專案；status 預設 todo，priority 預設 medium
// @Tags        tasks
// @Accept      json
// @Produce     json
// @Param       body body     api.CreateTaskRequest true "任務資料"
// @Success     201  {object} dto.TaskResponse
// @Failure     400  {object} dto.HTTPError
// @Failure     401  {object} dto.HTTPError
// @Failure     403  {object} dto.HTTPError
// @Failure     404  {object} dto.HTTPError
// @Failure     500  {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /tasks [post]
func CreateTaskHandler(db database.DB, g *guard.Guard) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims := middleware.CallerFrom(c)
		if claims == nil {
			return handler.RespondError(c, apperr.Unauthorized())
		}

		var req api.CreateTaskRequest
		if err := handler.Bind(c, &req); err != nil {
			return handler.RespondError(c, err)
		}
		projectID, err := validation.ParseUUID("project_id", req.ProjectID)
		if err != nil {
			return handler.RespondError(c, err)
		}

		ctx := c.Request().Context()
		if err := g.CheckOwnership(ctx, claims, guard.ResourceProject, projectID); err != nil {
			return handler.RespondError(c, err)
		}

		task := model.Task{
			Title:          req.Title,
			Description:    req.Description,
			Status:         req.Status,
			Priority:       req.Priority,
			EstimatedHours: req.EstimatedHours,
			ProjectID:      projectID,
			CreatedBy:      claims.UserID,
			CreatorName:    claims.Name,
		}
		if err := store.CreateTask(ctx, db, &task); err != nil {
			return handler.RespondError(c, apperr.Internal(err))
		}
		return c.JSON(http.StatusCreated, dto.TaskResponse{Task: task})
	}
}
