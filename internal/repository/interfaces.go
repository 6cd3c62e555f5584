package repository

import (
	"context"
	"time"

	"github.com/baharkarakas/point-ledger/internal/models"
)

// Balances is the Balance Store.
type Balances interface {
	// Read returns models.EmptyBalance for unknown users and must not create a row.
	Read(ctx context.Context, userID int64) (models.Balance, error)
	// Write upserts the point total and returns the persisted record with its update time.
	Write(ctx context.Context, userID, points int64) (models.Balance, error)
}

// Histories is the append-only History Store.
type Histories interface {
	Append(ctx context.Context, userID, amount int64, typ models.TransactionType, at time.Time) (models.HistoryRecord, error)
	// ListByUser returns records in insertion order, oldest first.
	ListByUser(ctx context.Context, userID int64) ([]models.HistoryRecord, error)
}
