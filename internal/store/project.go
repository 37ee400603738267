package store

import (
	"context"

	"project-hub/internal/database"
	"project-hub/internal/model"

	"github.com/google/uuid"
)

const projectColumns = `p.id, p.title, p.description, p.created_by, p.created_at, p.updated_at`

func scanProject(row interface{ Scan(...any) error }, withCreator bool) (*model.Project, error) {
	p := &model.Project{}
	dest := []any{
		&p.ID,
		&p.Title,
		&p.Description,
		&p.CreatedBy,
		&p.CreatedAt,
		&p.UpdatedAt,
	}
	if withCreator {
		dest = append(dest, &p.CreatorName)
	}
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	return p, nil
}

func GetProjectByID(ctx context.Context, db database.DB, id uuid.UUID) (*model.Project, error) {
	row := db.QueryRow(ctx,
		`SELECT `+projectColumns+`
		 FROM projects p WHERE p.id = $1`,
		id,
	)
	p, err := scanProject(row, false)
	if err != nil {
		return nil, wrapErr("GetProjectByID", err)
	}
	return p, nil
}

// GetOwnedProject 只回傳屬於 ownerID 的專案，他人的專案視為不存在
func GetOwnedProject(ctx context.Context, db database.DB, id, ownerID uuid.UUID) (*model.Project, error) {
	row := db.QueryRow(ctx,
		`SELECT `+projectColumns+`
		 FROM projects p WHERE p.id = $1 AND p.created_by = $2`,
		id,
		ownerID,
	)
	p, err := scanProject(row, false)
	if err != nil {
		return nil, wrapErr("GetOwnedProject", err)
	}
	return p, nil
}

// ListProjectsByOwner 依建立時間新到舊列出，並帶出建立者名稱
func ListProjectsByOwner(ctx context.Context, db database.DB, ownerID uuid.UUID) ([]model.Project, error) {
	rows, err := db.Query(ctx,
		`SELECT `+projectColumns+`, u.name
		 FROM projects p
		 JOIN users u ON u.id = p.created_by
		 WHERE p.created_by = $1
		 ORDER BY p.created_at DESC`,
		ownerID,
	)
	if err != nil {
		return nil, wrapErr("ListProjectsByOwner", err)
	}
	defer rows.Close()

	projects := []model.Project{}
	for rows.Next() {
		p, err := scanProject(rows, true)
		if err != nil {
			return nil, wrapErr("ListProjectsByOwner", err)
		}
		projects = append(projects, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr("ListProjectsByOwner", err)
	}
	return projects, nil
}

func CreateProject(ctx context.Context, db database.DB, p *model.Project) error {
	p.ID = newID()
	row := db.QueryRow(ctx,
		`INSERT INTO projects (id, title, description, created_by)
		 VALUES ($1, $2, $3, $4)
		 RETURNING created_at, updated_at`,
		p.ID,
		p.Title,
		p.Description,
		p.CreatedBy,
	)
	if err := row.Scan(&p.CreatedAt, &p.UpdatedAt); err != nil {
		return wrapErr("CreateProject", err)
	}
	return nil
}

// UpdateProject 寫回所有可編輯欄位並更新 updated_at
func UpdateProject(ctx context.Context, db database.DB, p *model.Project) error {
	row := db.QueryRow(ctx,
		`UPDATE projects
		 SET title = $1, description = $2, updated_at = now()
		 WHERE id = $3
		 RETURNING updated_at`,
		p.Title,
		p.Description,
		p.ID,
	)
	if err := row.Scan(&p.UpdatedAt); err != nil {
		return wrapErr("UpdateProject", err)
	}
	return nil
}

func DeleteProject(ctx context.Context, db database.DB, id uuid.UUID) error {
	tag, err := db.Exec(ctx,
		`DELETE FROM projects WHERE id = $1`,
		id,
	)
	if err != nil {
		return wrapErr("DeleteProject", err)
	}
	return requireAffected("DeleteProject", tag)
}
