package assistant

import (
	"net/http"

	"project-hub/internal/api"
	"project-hub/internal/apperr"
	"project-hub/internal/database"
	"project-hub/internal/dto"
	"project-hub/internal/handler"
	"project-hub/internal/middleware"
	"project-hub/internal/service"
	"project-hub/internal/store"
	"project-hub/internal/validation"

	"github.com/labstack/echo/v4"
)

// AnalyzeHandler 分析專案進度；AI 無法使用時回傳依任務狀態計算的結果
// @Summary     Analyze project
// @Tags        ai
// @Accept      json
// @Produce     json
// @Param       body body     api.AIProjectRequest true "專案"
// @Success     200  {object} dto.AnalysisResponse
// @Failure     400  {object} dto.HTTPError
// @Failure     401  {object} dto.HTTPError
// @Failure     404  {object} dto.HTTPError
// @Failure     500  {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /ai/analyze [post]
func AnalyzeHandler(db database.DB, assistant *service.Assistant) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims := middleware.CallerFrom(c)
		if claims == nil {
			return handler.RespondError(c, apperr.Unauthorized())
		}

		var req api.AIProjectRequest
		if err := handler.Bind(c, &req); err != nil {
			return handler.RespondError(c, err)
		}
		projectID, err := validation.ParseUUID("project_id", req.ProjectID)
		if err != nil {
			return handler.RespondError(c, err)
		}

		ctx := c.Request().Context()
		project, err := store.GetOwnedProject(ctx, db, projectID, claims.UserID)
		if err != nil {
			return handler.RespondError(c, handler.StoreError("Project", err))
		}
		tasks, err := store.ListTasksByOwnerAndProject(ctx, db, claims.UserID, &project.ID)
		if err != nil {
			return handler.RespondError(c, apperr.Internal(err))
		}

		result := assistant.Analyze(ctx, *project, tasks)
		return c.JSON(http.StatusOK, dto.AnalysisResponse{Analysis: result})
	}
}
