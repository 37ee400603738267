package api

import "strings"

// Normalizer 由 handler.Bind 在驗證前呼叫，讓規則檢查的是實際會寫入的值
type Normalizer interface {
	Normalize()
}

func normalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func trimPtr(s *string) {
	if s != nil {
		*s = strings.TrimSpace(*s)
	}
}

func (r *RegisterRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = normalizeEmail(r.Email)
}

func (r *LoginRequest) Normalize() {
	r.Email = normalizeEmail(r.Email)
}

func (r *CreateProjectRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
}

func (r *UpdateProjectRequest) Normalize() {
	trimPtr(r.Title)
}

func (r *CreateTaskRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
}

func (r *UpdateTaskRequest) Normalize() {
	trimPtr(r.Title)
}
