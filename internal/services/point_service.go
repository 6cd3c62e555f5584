package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/baharkarakas/point-ledger/internal/models"
	repo "github.com/baharkarakas/point-ledger/internal/repository"
)

// Rejection reasons reported to the Observer.
const (
	ReasonInvalidAmount      = "invalid_amount"
	ReasonInsufficientPoints = "insufficient_points"
	ReasonOverflow           = "overflow"
	ReasonStoreError         = "store_error"
)

// Observer is told about every mutation outcome.
type Observer interface {
	Committed(typ models.TransactionType, amount int64)
	Rejected(typ models.TransactionType, reason string)
}

type nopObserver struct{}

func (nopObserver) Committed(models.TransactionType, int64) {}
func (nopObserver) Rejected(models.TransactionType, string) {}

type Option func(*PointService)

// WithLocker replaces the per-user lock registry.
func WithLocker(l Locker) Option {
	return func(s *PointService) { s.locks = l }
}

func WithObserver(o Observer) Option {
	return func(s *PointService) { s.obs = o }
}

func WithLogger(l *slog.Logger) Option {
	return func(s *PointService) { s.log = l }
}

// PointService is the ledger engine. Charge and Use for the same user run one
// at a time; reads never take the user lock.
type PointService struct {
	bal   repo.Balances
	hist  repo.Histories
	locks Locker
	obs   Observer
	log   *slog.Logger
}

func NewPointService(b repo.Balances, h repo.Histories, opts ...Option) *PointService {
	s := &PointService{
		bal:   b,
		hist:  h,
		locks: NewUserLocks(),
		obs:   nopObserver{},
		log:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Locks exposes the lock registry the service was built with.
func (s *PointService) Locks() Locker { return s.locks }

func (s *PointService) Charge(ctx context.Context, userID, amount int64) (models.Balance, error) {
	return s.mutate(ctx, userID, amount, models.TxnCharge, func(current int64) (int64, error) {
		if current > math.MaxInt64-amount {
			return 0, fmt.Errorf("%w: user %d has %d, charge %d", ErrPointsOverflow, userID, current, amount)
		}
		return current + amount, nil
	})
}

func (s *PointService) Use(ctx context.Context, userID, amount int64) (models.Balance, error) {
	return s.mutate(ctx, userID, amount, models.TxnUse, func(current int64) (int64, error) {
		if current-amount < 0 {
			return 0, &InsufficientBalanceError{Required: amount, Current: current}
		}
		return current - amount, nil
	})
}

// Balance returns the stored balance, or a zero balance for unknown users.
func (s *PointService) Balance(ctx context.Context, userID int64) (models.Balance, error) {
	b, err := s.bal.Read(ctx, userID)
	if err != nil {
		return models.Balance{}, fmt.Errorf("read balance for user %d: %w", userID, err)
	}
	return b, nil
}

// History returns the user's committed mutations, oldest first.
func (s *PointService) History(ctx context.Context, userID int64) ([]models.HistoryRecord, error) {
	recs, err := s.hist.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list history for user %d: %w", userID, err)
	}
	if recs == nil {
		recs = []models.HistoryRecord{}
	}
	return recs, nil
}

// mutate runs read, compute, write and append as one unit under the user's lock.
func (s *PointService) mutate(ctx context.Context, userID, amount int64, typ models.TransactionType, apply func(current int64) (int64, error)) (models.Balance, error) {
	if amount <= 0 {
		s.obs.Rejected(typ, ReasonInvalidAmount)
		return models.Balance{}, &InvalidAmountError{Amount: amount}
	}

	unlock := s.locks.Lock(userID)
	defer unlock()

	cur, err := s.bal.Read(ctx, userID)
	if err != nil {
		s.obs.Rejected(typ, ReasonStoreError)
		return models.Balance{}, fmt.Errorf("read balance for user %d: %w", userID, err)
	}

	points, err := apply(cur.Points)
	if err != nil {
		s.obs.Rejected(typ, rejectReason(err))
		return models.Balance{}, err
	}

	next, err := s.bal.Write(ctx, userID, points)
	if err != nil {
		s.obs.Rejected(typ, ReasonStoreError)
		return models.Balance{}, fmt.Errorf("write balance for user %d: %w", userID, err)
	}

	if _, err := s.hist.Append(ctx, userID, amount, typ, next.UpdatedAt); err != nil {
		s.obs.Rejected(typ, ReasonStoreError)
		return models.Balance{}, s.restore(ctx, cur, typ, fmt.Errorf("append %s history for user %d: %w", typ, userID, err))
	}

	s.obs.Committed(typ, amount)
	return next, nil
}

// restore puts back the balance read at the start of a mutation whose history
// append failed. The user lock is still held, so nothing else wrote in between.
func (s *PointService) restore(ctx context.Context, prev models.Balance, typ models.TransactionType, cause error) error {
	if _, err := s.bal.Write(context.WithoutCancel(ctx), prev.UserID, prev.Points); err != nil {
		s.log.Error("balance restore failed, balance and history diverge",
			"user_id", prev.UserID, "type", typ, "points", prev.Points, "err", err, "cause", cause)
		return errors.Join(cause, fmt.Errorf("restore balance for user %d: %w", prev.UserID, err))
	}
	s.log.Warn("history append failed, balance restored",
		"user_id", prev.UserID, "type", typ, "points", prev.Points, "err", cause)
	return cause
}

func rejectReason(err error) string {
	switch {
	case errors.Is(err, ErrInsufficientBalance):
		return ReasonInsufficientPoints
	case errors.Is(err, ErrPointsOverflow):
		return ReasonOverflow
	default:
		return ReasonStoreError
	}
}
