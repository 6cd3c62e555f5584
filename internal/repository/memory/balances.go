package memory

import (
	"context"
	"sync"
	"time"

	"github.com/baharkarakas/point-ledger/internal/models"
	"github.com/baharkarakas/point-ledger/internal/repository"
)

// Option configures the in-memory stores.
type Option func(*options)

type options struct {
	now     func() time.Time
	latency time.Duration
}

// WithClock replaces time.Now as the source of update timestamps.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithLatency delays every store call, which widens the window between a read
// and the following write. Tests use it to make lost updates reproducible.
func WithLatency(d time.Duration) Option {
	return func(o *options) { o.latency = d }
}

func newOptions(opts []Option) options {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o options) sleep(ctx context.Context) error {
	if o.latency <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(o.latency)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

type Balances struct {
	mu   sync.RWMutex
	rows map[int64]models.Balance
	opts options
}

func NewBalances(opts ...Option) *Balances {
	return &Balances{
		rows: make(map[int64]models.Balance),
		opts: newOptions(opts),
	}
}

func (s *Balances) Read(ctx context.Context, userID int64) (models.Balance, error) {
	if err := s.opts.sleep(ctx); err != nil {
		return models.Balance{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	if b, ok := s.rows[userID]; ok {
		return b, nil
	}
	return models.EmptyBalance(userID), nil
}

func (s *Balances) Write(ctx context.Context, userID, points int64) (models.Balance, error) {
	if err := s.opts.sleep(ctx); err != nil {
		return models.Balance{}, err
	}
	b := models.Balance{UserID: userID, Points: points, UpdatedAt: s.opts.now()}

	s.mu.Lock()
	s.rows[userID] = b
	s.mu.Unlock()
	return b, nil
}

var _ repository.Balances = (*Balances)(nil)
