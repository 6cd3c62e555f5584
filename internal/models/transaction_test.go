package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransactionTypeValid(t *testing.T) {
	assert.True(t, TxnCharge.Valid())
	assert.True(t, TxnUse.Valid())
	assert.False(t, TransactionType("credit").Valid())
}

func TestReplay(t *testing.T) {
	records := []HistoryRecord{
		{Amount: 1000, Type: TxnCharge},
		{Amount: 500, Type: TxnUse},
		{Amount: 200, Type: TxnCharge},
	}
	assert.Equal(t, int64(700), Replay(records))
	assert.Equal(t, int64(0), Replay(nil))
}
