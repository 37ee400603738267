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

// SuggestionsHandler 請 AI 為專案建議新任務
// @Summary     Suggest tasks
// @Description 依專案標題與描述產生 5 到 7 個任務建議；AI 失敗時回傳 500，不提供備援
// @Tags        ai
// @Accept      json
// @Produce     json
// @Param       body body     api.AIProjectRequest true "專案"
// @Success     200  {object} dto.SuggestionsResponse
// @Failure     400  {object} dto.HTTPError
// @Failure     401  {object} dto.HTTPError
// @Failure     404  {object} dto.HTTPError
// @Failure     500  {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /ai/suggestions [post]
func SuggestionsHandler(db database.DB, assistant *service.Assistant) echo.HandlerFunc {
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

		suggestions, err := assistant.Suggest(ctx, *project)
		if err != nil {
			return handler.RespondError(c, err)
		}
		return c.JSON(http.StatusOK, dto.SuggestionsResponse{Suggestions: suggestions})
	}
}
