// File: internal/dto/http_error.go
package dto

// HTTPError 所有錯誤回應的格式；訊息依錯誤種類固定，不含內部細節
// swagger:model dto.HTTPError
type HTTPError struct {
	// 例如 "Unauthorized"、"Project not found"、"title: is required"
	Message string `json:"message" example:"Project not found"`
}
