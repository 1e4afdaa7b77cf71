//go:build unit

package repository_test

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type stubDBTX struct{}

func (m *stubDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *stubDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *stubDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	panic("stubDBTX.QueryRow was called unexpectedly. Use sqlc mock instead.")
}
