package memory

import (
	"context"
	"sync"
	"time"

	"github.com/baharkarakas/point-ledger/internal/models"
	"github.com/baharkarakas/point-ledger/internal/repository"
)

type Histories struct {
	mu     sync.RWMutex
	seq    int64
	byUser map[int64][]models.HistoryRecord
	opts   options
}

func NewHistories(opts ...Option) *Histories {
	return &Histories{
		byUser: make(map[int64][]models.HistoryRecord),
		opts:   newOptions(opts),
	}
}

func (s *Histories) Append(ctx context.Context, userID, amount int64, typ models.TransactionType, at time.Time) (models.HistoryRecord, error) {
	if err := s.opts.sleep(ctx); err != nil {
		return models.HistoryRecord{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	rec := models.HistoryRecord{
		ID:        s.seq,
		UserID:    userID,
		Amount:    amount,
		Type:      typ,
		Timestamp: at,
	}
	s.byUser[userID] = append(s.byUser[userID], rec)
	return rec, nil
}

func (s *Histories) ListByUser(ctx context.Context, userID int64) ([]models.HistoryRecord, error) {
	if err := s.opts.sleep(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	recs := s.byUser[userID]
	out := make([]models.HistoryRecord, len(recs))
	copy(out, recs)
	return out, nil
}

var _ repository.Histories = (*Histories)(nil)
