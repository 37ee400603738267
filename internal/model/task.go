package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

const (
	StatusTodo       = "todo"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"

	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

type Task struct {
	ID             uuid.UUID `db:"id" json:"id"`
	Title          string    `db:"title" json:"title"`
	Description    string    `db:"description" json:"description"`
	Status         string    `db:"status" json:"status"`
	Priority       string    `db:"priority" json:"priority"`
	EstimatedHours *float64  `db:"estimated_hours" json:"estimated_hours"`
	ProjectID      uuid.UUID `db:"project_id" json:"project_id"`
	CreatedBy      uuid.UUID `db:"created_by" json:"created_by"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`

	CreatorName string `db:"creator_name" json:"creator_name,omitempty"`
}

// OptionalHours distinguishes a JSON field that is absent (Set == false)
// from one that is explicitly null (Set == true, Value == nil).
type OptionalHours struct {
	Set   bool     `json:"-"`
	Value *float64 `json:"-"`
}

func (o *OptionalHours) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Value = nil
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	o.Value = &v
	return nil
}

// TaskPatch holds the fields of a partial task update; nil means unchanged.
type TaskPatch struct {
	Title          *string
	Description    *string
	Status         *string
	Priority       *string
	EstimatedHours OptionalHours
}

// Apply overwrites the fields present in the patch.
func (p TaskPatch) Apply(task *Task) {
	if p.Title != nil {
		task.Title = *p.Title
	}
	if p.Description != nil {
		task.Description = *p.Description
	}
	if p.Status != nil {
		task.Status = *p.Status
	}
	if p.Priority != nil {
		task.Priority = *p.Priority
	}
	if p.EstimatedHours.Set {
		task.EstimatedHours = p.EstimatedHours.Value
	}
}
