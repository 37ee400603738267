package api

// swagger:model api.AIProjectRequest
type AIProjectRequest struct {
	ProjectID string `json:"project_id" validate:"required,uuid" example:"7f9c2a4e-3b1d-4c5e-9f0a-1b2c3d4e5f60"`
}
