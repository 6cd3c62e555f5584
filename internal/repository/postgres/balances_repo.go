package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/baharkarakas/point-ledger/internal/models"
)

type balancesRepo struct{ db DBTX }

func (r *balancesRepo) Read(ctx context.Context, userID int64) (models.Balance, error) {
	var b models.Balance
	err := r.db.QueryRow(ctx,
		`SELECT user_id, points, updated_at
		   FROM user_points
		  WHERE user_id = $1`,
		userID,
	).Scan(&b.UserID, &b.Points, &b.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.EmptyBalance(userID), nil
	}
	return b, err
}

func (r *balancesRepo) Write(ctx context.Context, userID, points int64) (models.Balance, error) {
	var b models.Balance
	err := r.db.QueryRow(ctx,
		`INSERT INTO user_points (user_id, points, updated_at)
		 VALUES ($1, $2, now())
		 ON CONFLICT (user_id) DO UPDATE
		    SET points = EXCLUDED.points,
		        updated_at = EXCLUDED.updated_at
		 RETURNING user_id, points, updated_at`,
		userID, points,
	).Scan(&b.UserID, &b.Points, &b.UpdatedAt)
	return b, err
}
