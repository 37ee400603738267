package api

import "project-hub/internal/model"

// swagger:model api.CreateProjectRequest
type CreateProjectRequest struct {
	Title       string `json:"title" validate:"required,max=255" example:"Website relaunch"`
	Description string `json:"description" validate:"required" example:"Rebuild the marketing site"`
}

// UpdateProjectRequest 未出現的欄位保持不變
// swagger:model api.UpdateProjectRequest
type UpdateProjectRequest struct {
	Title       *string `json:"title" validate:"omitempty,min=1,max=255" example:"Website relaunch v2"`
	Description *string `json:"description" example:"Rebuild and translate the marketing site"`
}

func (r UpdateProjectRequest) Patch() model.ProjectPatch {
	return model.ProjectPatch{Title: r.Title, Description: r.Description}
}
