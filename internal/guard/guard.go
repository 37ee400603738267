// Package guard decides whether a caller may act on a project or task.
//
// The order of checks is fixed: a missing caller is Unauthorized before any
// storage access, a missing resource is NotFound, and a resource created by
// someone else is Forbidden. Collection reads do not go through the guard;
// they are scoped by owner in SQL.
package guard

import (
	"context"
	"errors"
	"fmt"

	"project-hub/internal/apperr"
	"project-hub/internal/database"
	"project-hub/internal/model"
	"project-hub/internal/service"
	"project-hub/internal/store"

	"github.com/google/uuid"
)

type ResourceKind int

const (
	ResourceProject ResourceKind = iota
	ResourceTask
)

func (k ResourceKind) String() string {
	switch k {
	case ResourceProject:
		return "Project"
	case ResourceTask:
		return "Task"
	default:
		return fmt.Sprintf("ResourceKind(%d)", int(k))
	}
}

type Guard struct {
	db database.DB
}

func New(db database.DB) *Guard {
	return &Guard{db: db}
}

// CheckOwnership 回傳 nil 代表 caller 擁有該資源
func (g *Guard) CheckOwnership(ctx context.Context, caller *service.Claims, kind ResourceKind, id uuid.UUID) error {
	if !authenticated(caller) {
		return apperr.Unauthorized()
	}
	switch kind {
	case ResourceProject:
		_, err := g.AuthorizeProject(ctx, caller, id)
		return err
	case ResourceTask:
		_, err := g.AuthorizeTask(ctx, caller, id)
		return err
	default:
		return apperr.Internal(fmt.Errorf("CheckOwnership: unknown resource kind %v", kind))
	}
}

// AuthorizeProject 與 CheckOwnership 相同，但一併回傳專案供後續更新使用
func (g *Guard) AuthorizeProject(ctx context.Context, caller *service.Claims, id uuid.UUID) (*model.Project, error) {
	if !authenticated(caller) {
		return nil, apperr.Unauthorized()
	}
	p, err := store.GetProjectByID(ctx, g.db, id)
	if err != nil {
		return nil, lookupErr(ResourceProject, err)
	}
	if p.CreatedBy != caller.UserID {
		return nil, apperr.Forbidden()
	}
	return p, nil
}

// AuthorizeTask 與 CheckOwnership 相同，但一併回傳任務
func (g *Guard) AuthorizeTask(ctx context.Context, caller *service.Claims, id uuid.UUID) (*model.Task, error) {
	if !authenticated(caller) {
		return nil, apperr.Unauthorized()
	}
	t, err := store.GetTaskByID(ctx, g.db, id)
	if err != nil {
		return nil, lookupErr(ResourceTask, err)
	}
	if t.CreatedBy != caller.UserID {
		return nil, apperr.Forbidden()
	}
	return t, nil
}

func authenticated(caller *service.Claims) bool {
	return caller != nil && caller.UserID != uuid.Nil
}

func lookupErr(kind ResourceKind, err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return apperr.NotFound(kind.String())
	}
	return apperr.Internal(err)
}
