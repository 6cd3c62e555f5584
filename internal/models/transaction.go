package models

import "time"

type TransactionType string

const (
	TxnCharge TransactionType = "CHARGE"
	TxnUse    TransactionType = "USE"
)

func (t TransactionType) Valid() bool {
	return t == TxnCharge || t == TxnUse
}

// HistoryRecord is one committed mutation. ID is the store's insertion sequence.
type HistoryRecord struct {
	ID        int64           `json:"id"`
	UserID    int64           `json:"user_id"`
	Amount    int64           `json:"amount"`
	Type      TransactionType `json:"type"`
	Timestamp time.Time       `json:"timestamp"`
}

// Signed returns the amount as a balance delta.
func (h HistoryRecord) Signed() int64 {
	if h.Type == TxnUse {
		return -h.Amount
	}
	return h.Amount
}

// Replay folds records, oldest first, onto a zero balance.
func Replay(records []HistoryRecord) int64 {
	var total int64
	for _, r := range records {
		total += r.Signed()
	}
	return total
}
