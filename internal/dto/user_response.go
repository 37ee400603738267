// File: internal/dto/user_response.go
package dto

import (
	"time"

	"project-hub/internal/model"

	"github.com/google/uuid"
)

// swagger:model dto.UserResponse
type UserResponse struct {
	ID        uuid.UUID `json:"id" example:"3d6f0a52-8c1e-4b6a-9d3e-2f1a0b9c8d7e"`
	Name      string    `json:"name" example:"Alice"`
	Email     string    `json:"email" example:"alice@example.com"`
	Role      string    `json:"role" example:"member"`
	CreatedAt time.Time `json:"created_at" example:"2025-05-01T15:04:05Z"`
}

func NewUserResponse(u model.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

// AuthResponse 註冊與登入成功時回傳；token 同時寫入 auth_token cookie
// swagger:model dto.AuthResponse
type AuthResponse struct {
	Success   bool         `json:"success" example:"true"`
	User      UserResponse `json:"user"`
	Token     string       `json:"token" example:"eyJhbGciOi..."`
	ExpiresAt time.Time    `json:"expires_at" example:"2025-05-08T15:04:05Z"`
}
