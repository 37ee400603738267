package service

import (
	"context"
	"errors"
	"time"

	"project-hub/internal/ai"
	"project-hub/internal/analysis"
	"project-hub/internal/apperr"
	"project-hub/internal/logger"
	"project-hub/internal/model"
)

const defaultAITimeout = 30 * time.Second

var errNoAIClient = errors.New("ai client not configured")

// Assistant 以逾時包住 AI 呼叫；分析失敗時改用 analysis.Fallback
type Assistant struct {
	AI      ai.Client
	Timeout time.Duration
}

func NewAssistant(client ai.Client, timeout time.Duration) *Assistant {
	return &Assistant{AI: client, Timeout: timeout}
}

func (a *Assistant) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	timeout := a.Timeout
	if timeout <= 0 {
		timeout = defaultAITimeout
	}
	return context.WithTimeout(ctx, timeout)
}

// Suggest 回傳 AI 建議的任務；任何失敗都回傳 ExternalService 錯誤
func (a *Assistant) Suggest(ctx context.Context, project model.Project) ([]ai.Suggestion, error) {
	if a.AI == nil {
		return nil, apperr.ExternalService(errNoAIClient)
	}

	callCtx, cancel := a.withTimeout(ctx)
	defer cancel()

	suggestions, err := a.AI.SuggestTasks(callCtx, project.Title, project.Description)
	if err != nil {
		logger.FromContext(ctx).Error("task suggestion failed",
			"project_id", project.ID,
			"error", err,
		)
		return nil, apperr.ExternalService(err)
	}
	return suggestions, nil
}

// Analyze 回傳專案分析，AI 失敗（含逾時與解析錯誤）時改用備援結果，不回傳錯誤
func (a *Assistant) Analyze(ctx context.Context, project model.Project, tasks []model.Task) analysis.Analysis {
	if a.AI == nil {
		return analysis.Fallback(tasks)
	}

	callCtx, cancel := a.withTimeout(ctx)
	defer cancel()

	result, err := a.AI.Analyze(callCtx, project.Title, tasks)
	if err != nil {
		var perr *ai.ParseError
		logger.FromContext(ctx).Warn("project analysis fell back",
			"project_id", project.ID,
			"parse_error", errors.As(err, &perr),
			"error", err,
		)
		return analysis.Fallback(tasks)
	}
	return result
}
