package dto

import (
	"project-hub/internal/ai"
	"project-hub/internal/analysis"
	"project-hub/internal/model"
)

// swagger:model dto.SuccessResponse
type SuccessResponse struct {
	Success bool `json:"success" example:"true"`
}

// swagger:model dto.ProjectResponse
type ProjectResponse struct {
	Project model.Project `json:"project"`
}

// swagger:model dto.ProjectListResponse
type ProjectListResponse struct {
	Projects []model.Project `json:"projects"`
}

// swagger:model dto.TaskResponse
type TaskResponse struct {
	Task model.Task `json:"task"`
}

// swagger:model dto.TaskListResponse
type TaskListResponse struct {
	Tasks []model.Task `json:"tasks"`
}

// swagger:model dto.SuggestionsResponse
type SuggestionsResponse struct {
	Suggestions []ai.Suggestion `json:"suggestions"`
}

// swagger:model dto.AnalysisResponse
type AnalysisResponse struct {
	Analysis analysis.Analysis `json:"analysis"`
}
