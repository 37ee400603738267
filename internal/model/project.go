package model

import (
	"time"

	"github.com/google/uuid"
)

type Project struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Description string    `db:"description" json:"description"`
	CreatedBy   uuid.UUID `db:"created_by" json:"created_by"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`

	// CreatorName is only filled by list queries that join users.
	CreatorName string `db:"creator_name" json:"creator_name,omitempty"`
}

// ProjectPatch holds the fields of a partial update; nil means unchanged.
type ProjectPatch struct {
	Title       *string
	Description *string
}

// Apply overwrites the fields present in the patch.
func (p ProjectPatch) Apply(project *Project) {
	if p.Title != nil {
		project.Title = *p.Title
	}
	if p.Description != nil {
		project.Description = *p.Description
	}
}
