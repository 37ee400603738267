// Package ai wraps the generative model used for task suggestions and
// project analysis. Any error from Client means no usable result.
package ai

import (
	"context"
	"fmt"

	"project-hub/internal/analysis"
	"project-hub/internal/model"
)

// Suggestion 為 AI 建議的任務
type Suggestion struct {
	Title          string  `json:"title"`
	Description    string  `json:"description"`
	Priority       string  `json:"priority"`
	EstimatedHours float64 `json:"estimatedHours"`
}

type Client interface {
	SuggestTasks(ctx context.Context, title, description string) ([]Suggestion, error)
	Analyze(ctx context.Context, title string, tasks []model.Task) (analysis.Analysis, error)
}

// ParseError reports model output that could not be turned into a result.
type ParseError struct {
	Raw string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse model response: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// FakeClient 測試用，未設定的方法會 panic
type FakeClient struct {
	SuggestTasksFn func(ctx context.Context, title, description string) ([]Suggestion, error)
	AnalyzeFn      func(ctx context.Context, title string, tasks []model.Task) (analysis.Analysis, error)
}

func (f *FakeClient) SuggestTasks(ctx context.Context, title, description string) ([]Suggestion, error) {
	if f.SuggestTasksFn != nil {
		return f.SuggestTasksFn(ctx, title, description)
	}
	panic("unexpected SuggestTasks")
}

func (f *FakeClient) Analyze(ctx context.Context, title string, tasks []model.Task) (analysis.Analysis, error) {
	if f.AnalyzeFn != nil {
		return f.AnalyzeFn(ctx, title, tasks)
	}
	panic("unexpected Analyze")
}
