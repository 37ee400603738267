package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"project-hub/internal/ai"
	"project-hub/internal/analysis"
	"project-hub/internal/apperr"
	"project-hub/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestAssistantSuggest(t *testing.T) {
	project := model.Project{ID: uuid.New(), Title: "Site", Description: "Launch"}

	t.Run("success", func(t *testing.T) {
		var gotDeadline bool
		client := &ai.FakeClient{SuggestTasksFn: func(ctx context.Context, title, description string) ([]ai.Suggestion, error) {
			_, gotDeadline = ctx.Deadline()
			require.Equal(t, "Site", title)
			require.Equal(t, "Launch", description)
			return []ai.Suggestion{{Title: "Design"}}, nil
		}}
		out, err := NewAssistant(client, time.Second).Suggest(context.Background(), project)
		require.NoError(t, err)
		require.Len(t, out, 1)
		require.True(t, gotDeadline)
	})

	t.Run("failure is external service", func(t *testing.T) {
		client := &ai.FakeClient{SuggestTasksFn: func(context.Context, string, string) ([]ai.Suggestion, error) {
			return nil, &ai.ParseError{Err: errors.New("bad json")}
		}}
		_, err := NewAssistant(client, time.Second).Suggest(context.Background(), project)
		require.Equal(t, apperr.KindExternalService, apperr.KindOf(err))
		require.Equal(t, "Failed to generate suggestions", apperr.As(err).Message)
	})

	t.Run("no client", func(t *testing.T) {
		_, err := (&Assistant{}).Suggest(context.Background(), project)
		require.Equal(t, apperr.KindExternalService, apperr.KindOf(err))
	})
}

func TestAssistantAnalyze(t *testing.T) {
	project := model.Project{ID: uuid.New(), Title: "Site"}
	tasks := []model.Task{
		{Status: model.StatusCompleted},
		{Status: model.StatusTodo},
		{Status: model.StatusTodo},
	}

	t.Run("ai result", func(t *testing.T) {
		want := analysis.Analysis{Progress: 90, Insights: []string{"i"}, Recommendations: []string{"r"}}
		client := &ai.FakeClient{AnalyzeFn: func(_ context.Context, _ string, got []model.Task) (analysis.Analysis, error) {
			require.Len(t, got, 3)
			return want, nil
		}}
		require.Equal(t, want, NewAssistant(client, time.Second).Analyze(context.Background(), project, tasks))
	})

	t.Run("error falls back", func(t *testing.T) {
		client := &ai.FakeClient{AnalyzeFn: func(context.Context, string, []model.Task) (analysis.Analysis, error) {
			return analysis.Analysis{}, errors.New("503")
		}}
		got := NewAssistant(client, time.Second).Analyze(context.Background(), project, tasks)
		require.Equal(t, analysis.Fallback(tasks), got)
		require.Equal(t, 33, got.Progress)
	})

	t.Run("parse error falls back", func(t *testing.T) {
		client := &ai.FakeClient{AnalyzeFn: func(context.Context, string, []model.Task) (analysis.Analysis, error) {
			return analysis.Analysis{}, &ai.ParseError{Err: errors.New("bad")}
		}}
		got := NewAssistant(client, time.Second).Analyze(context.Background(), project, nil)
		require.Equal(t, 0, got.Progress)
		require.Equal(t, "0 of 0 tasks completed", got.Insights[0])
	})

	t.Run("timeout falls back", func(t *testing.T) {
		client := &ai.FakeClient{AnalyzeFn: func(ctx context.Context, _ string, _ []model.Task) (analysis.Analysis, error) {
			<-ctx.Done()
			return analysis.Analysis{}, ctx.Err()
		}}
		got := NewAssistant(client, 10*time.Millisecond).Analyze(context.Background(), project, tasks)
		require.Equal(t, analysis.Fallback(tasks), got)
	})

	t.Run("no client", func(t *testing.T) {
		got := (&Assistant{}).Analyze(context.Background(), project, tasks)
		require.Equal(t, analysis.Fallback(tasks), got)
	})
}
