package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier est la surface commune à *pgxpool.Pool et pgx.Tx : les adaptateurs de ce
// package fonctionnent indifféremment sur le pool (lectures simples) ou dans une
// transaction (opérations du ledger).
type Querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}
