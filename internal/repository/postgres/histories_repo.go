package postgres

import (
	"context"
	"time"

	"github.com/baharkarakas/point-ledger/internal/models"
)

type historiesRepo struct{ db DBTX }

func (r *historiesRepo) Append(ctx context.Context, userID, amount int64, typ models.TransactionType, at time.Time) (models.HistoryRecord, error) {
	rec := models.HistoryRecord{
		UserID:    userID,
		Amount:    amount,
		Type:      typ,
		Timestamp: at,
	}
	err := r.db.QueryRow(ctx,
		`INSERT INTO point_histories (user_id, amount, type, created_at)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		userID, amount, string(typ), at,
	).Scan(&rec.ID)
	return rec, err
}

func (r *historiesRepo) ListByUser(ctx context.Context, userID int64) ([]models.HistoryRecord, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, amount, type, created_at
		   FROM point_histories
		  WHERE user_id = $1
		  ORDER BY id ASC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.HistoryRecord{}
	for rows.Next() {
		var (
			rec models.HistoryRecord
			typ string
		)
		if err := rows.Scan(&rec.ID, &rec.UserID, &rec.Amount, &typ, &rec.Timestamp); err != nil {
			return nil, err
		}
		rec.Type = models.TransactionType(typ)
		out = append(out, rec)
	}
	return out, rows.Err()
}
