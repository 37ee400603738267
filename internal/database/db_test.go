package database

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func TestFakeDB(t *testing.T) {
	db := &FakeDB{}
	require.Panics(t, func() { db.Exec(context.Background(), "", nil) })
	require.Panics(t, func() { db.Query(context.Background(), "") })
	require.Panics(t, func() { db.QueryRow(context.Background(), "") })
	require.Panics(t, func() { db.Ping(context.Background()) })
	db.Close()

	execCalled := false
	queryCalled := false
	rowCalled := false
	pingCalled := false
	closeCalled := false

	db.ExecFn = func(ctx context.Context, s string, args ...any) (pgconn.CommandTag, error) {
		execCalled = true
		return pgconn.CommandTag{}, errors.New("e")
	}
	db.QueryFn = func(ctx context.Context, s string, args ...any) (pgx.Rows, error) {
		queryCalled = true
		return &FakeRows{}, nil
	}
	db.QueryRowFn = func(ctx context.Context, s string, args ...any) pgx.Row {
		rowCalled = true
		return FakeRow{}
	}
	db.PingFn = func(ctx context.Context) error { pingCalled = true; return nil }
	db.CloseFn = func() { closeCalled = true }

	_, err := db.Exec(context.Background(), "sql")
	require.Error(t, err)
	_, err = db.Query(context.Background(), "sql")
	require.NoError(t, err)
	_ = db.QueryRow(context.Background(), "sql")
	require.NoError(t, db.Ping(context.Background()))
	db.Close()
	require.True(t, execCalled)
	require.True(t, queryCalled)
	require.True(t, rowCalled)
	require.True(t, pingCalled)
	require.True(t, closeCalled)
}

func TestFakeRowScan(t *testing.T) {
	var (
		name  string
		hours *float64
		n     int
	)
	h := 1.5
	require.NoError(t, FakeRow{Values: []any{"a", &h, 3}}.Scan(&name, &hours, &n))
	require.Equal(t, "a", name)
	require.Equal(t, 1.5, *hours)
	require.Equal(t, 3, n)

	require.NoError(t, FakeRow{Values: []any{"b", nil, 4}}.Scan(&name, &hours, &n))
	require.Nil(t, hours)

	require.Error(t, FakeRow{Values: []any{"a"}}.Scan(&name, &n))
	require.EqualError(t, FakeRow{Err: pgx.ErrNoRows}.Scan(&name), pgx.ErrNoRows.Error())
}

func TestFakeRows(t *testing.T) {
	rows := &FakeRows{Data: [][]any{{"x"}, {"y"}}}
	var got []string
	for rows.Next() {
		var s string
		require.NoError(t, rows.Scan(&s))
		got = append(got, s)
	}
	rows.Close()
	require.Equal(t, []string{"x", "y"}, got)
	require.True(t, rows.Closed())
	require.NoError(t, rows.Err())

	bad := &FakeRows{Data: [][]any{{"x"}}, ScanErr: errors.New("scan")}
	require.True(t, bad.Next())
	var s string
	require.Error(t, bad.Scan(&s))
}
