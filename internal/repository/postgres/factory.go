package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	repo "github.com/baharkarakas/point-ledger/internal/repository"
)

// DBTX is the part of *pgxpool.Pool the repositories use.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type Repositories struct {
	Balances  repo.Balances
	Histories repo.Histories
}

func NewRepositories(db DBTX) Repositories {
	return Repositories{
		Balances:  &balancesRepo{db},
		Histories: &historiesRepo{db},
	}
}
