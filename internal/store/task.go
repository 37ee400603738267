package store

import (
	"context"

	"project-hub/internal/database"
	"project-hub/internal/model"

	"github.com/google/uuid"
)

const taskColumns = `t.id, t.title, t.description, t.status, t.priority, t.estimated_hours,
	t.project_id, t.created_by, t.created_at, t.updated_at`

func scanTask(row interface{ Scan(...any) error }, withCreator bool) (*model.Task, error) {
	t := &model.Task{}
	dest := []any{
		&t.ID,
		&t.Title,
		&t.Description,
		&t.Status,
		&t.Priority,
		&t.EstimatedHours,
		&t.ProjectID,
		&t.CreatedBy,
		&t.CreatedAt,
		&t.UpdatedAt,
	}
	if withCreator {
		dest = append(dest, &t.CreatorName)
	}
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	return t, nil
}

func GetTaskByID(ctx context.Context, db database.DB, id uuid.UUID) (*model.Task, error) {
	row := db.QueryRow(ctx,
		`SELECT `+taskColumns+`
		 FROM tasks t WHERE t.id = $1`,
		id,
	)
	t, err := scanTask(row, false)
	if err != nil {
		return nil, wrapErr("GetTaskByID", err)
	}
	return t, nil
}

// ListTasksByOwnerAndProject 列出 ownerID 建立的任務；projectID 非 nil 時再依專案過濾
func ListTasksByOwnerAndProject(ctx context.Context, db database.DB, ownerID uuid.UUID, projectID *uuid.UUID) ([]model.Task, error) {
	query := `SELECT ` + taskColumns + `, u.name
		 FROM tasks t
		 JOIN users u ON u.id = t.created_by
		 WHERE t.created_by = $1`
	args := []any{ownerID}
	if projectID != nil {
		query += ` AND t.project_id = $2`
		args = append(args, *projectID)
	}
	query += ` ORDER BY t.created_at DESC`

	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, wrapErr("ListTasksByOwnerAndProject", err)
	}
	defer rows.Close()

	tasks := []model.Task{}
	for rows.Next() {
		t, err := scanTask(rows, true)
		if err != nil {
			return nil, wrapErr("ListTasksByOwnerAndProject", err)
		}
		tasks = append(tasks, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr("ListTasksByOwnerAndProject", err)
	}
	return tasks, nil
}

// CreateTask 寫入任務；空的 status/priority 套用預設值
func CreateTask(ctx context.Context, db database.DB, t *model.Task) error {
	t.ID = newID()
	if t.Status == "" {
		t.Status = model.StatusTodo
	}
	if t.Priority == "" {
		t.Priority = model.PriorityMedium
	}
	row := db.QueryRow(ctx,
		`INSERT INTO tasks (id, title, description, status, priority, estimated_hours, project_id, created_by)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING created_at, updated_at`,
		t.ID,
		t.Title,
		t.Description,
		t.Status,
		t.Priority,
		t.EstimatedHours,
		t.ProjectID,
		t.CreatedBy,
	)
	if err := row.Scan(&t.CreatedAt, &t.UpdatedAt); err != nil {
		return wrapErr("CreateTask", err)
	}
	return nil
}

func UpdateTask(ctx context.Context, db database.DB, t *model.Task) error {
	row := db.QueryRow(ctx,
		`UPDATE tasks
		 SET title = $1, description = $2, status = $3, priority = $4,
		     estimated_hours = $5, updated_at = now()
		 WHERE id = $6
		 RETURNING updated_at`,
		t.Title,
		t.Description,
		t.Status,
		t.Priority,
		t.EstimatedHours,
		t.ID,
	)
	if err := row.Scan(&t.UpdatedAt); err != nil {
		return wrapErr("UpdateTask", err)
	}
	return nil
}

func DeleteTask(ctx context.Context, db database.DB, id uuid.UUID) error {
	tag, err := db.Exec(ctx,
		`DELETE FROM tasks WHERE id = $1`,
		id,
	)
	if err != nil {
		return wrapErr("DeleteTask", err)
	}
	return requireAffected("DeleteTask", tag)
}
