package api

import "project-hub/internal/model"

// swagger:model api.CreateTaskRequest
type CreateTaskRequest struct {
	Title          string   `json:"title" validate:"required,max=255" example:"Draft sitemap"`
	Description    string   `json:"description" example:"List every page of the new site"`
	Status         string   `json:"status" validate:"omitempty,oneof=todo in-progress completed" example:"todo"`
	Priority       string   `json:"priority" validate:"omitempty,oneof=low medium high" example:"medium"`
	EstimatedHours *float64 `json:"estimated_hours" validate:"omitempty,gt=0,min=0.01" example:"4"`
	ProjectID      string   `json:"project_id" validate:"required,uuid" example:"7f9c2a4e-3b1d-4c5e-9f0a-1b2c3d4e5f60"`
}

// UpdateTaskRequest 未出現的欄位保持不變；estimated_hours 為 null 時清除
// swagger:model api.UpdateTaskRequest
type UpdateTaskRequest struct {
	Title          *string             `json:"title" validate:"omitempty,min=1,max=255" example:"Draft sitemap"`
	Description    *string             `json:"description" example:"List every page"`
	Status         *string             `json:"status" validate:"omitempty,oneof=todo in-progress completed" example:"in-progress"`
	Priority       *string             `json:"priority" validate:"omitempty,oneof=low medium high" example:"high"`
	EstimatedHours model.OptionalHours `json:"estimated_hours" validate:"omitempty,gt=0,min=0.01" swaggertype:"number" example:"2.5"`
}

func (r UpdateTaskRequest) Patch() model.TaskPatch {
	return model.TaskPatch{
		Title:          r.Title,
		Description:    r.Description,
		Status:         r.Status,
		Priority:       r.Priority,
		EstimatedHours: r.EstimatedHours,
	}
}
