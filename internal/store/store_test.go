package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"project-hub/internal/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

// fixedID 讓 newID 回傳固定值，測試結束後還原
func fixedID(t *testing.T, id uuid.UUID) {
	t.Helper()
	newID = func() uuid.UUID { return id }
	t.Cleanup(func() { newID = uuid.New })
}

func rowFn(row pgx.Row) func(context.Context, string, ...any) pgx.Row {
	return func(context.Context, string, ...any) pgx.Row { return row }
}

func TestWrapErr(t *testing.T) {
	err := wrapErr("Op", pgx.ErrNoRows)
	require.ErrorIs(t, err, ErrNotFound)
	require.Contains(t, err.Error(), "Op:")

	err = wrapErr("Op", &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})
	require.ErrorIs(t, err, ErrDuplicateEmail)

	err = wrapErr("Op", &pgconn.PgError{Code: "23505", ConstraintName: "other"})
	require.NotErrorIs(t, err, ErrDuplicateEmail)

	boom := errors.New("boom")
	require.ErrorIs(t, wrapErr("Op", boom), boom)
}

func TestRequireAffected(t *testing.T) {
	require.ErrorIs(t, requireAffected("Op", pgconn.NewCommandTag("DELETE 0")), ErrNotFound)
	require.NoError(t, requireAffected("Op", pgconn.NewCommandTag("DELETE 1")))
}

var sampleTime = time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

func execTag(tag string, err error) func(context.Context, string, ...any) (pgconn.CommandTag, error) {
	return func(context.Context, string, ...any) (pgconn.CommandTag, error) {
		return pgconn.NewCommandTag(tag), err
	}
}

var _ database.DB = (*database.FakeDB)(nil)
