package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewTransferPair(t *testing.T) {
	ts := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

	debit, credit := NewTransferPair(1, 2, 2000, ts)

	assert.Equal(t, TransferTypeDebit, debit.Type)
	assert.Equal(t, TransferTypeCredit, credit.Type)

	// Both halves describe the same logical transfer.
	assert.Equal(t, debit.SenderID, credit.SenderID)
	assert.Equal(t, debit.RecipientID, credit.RecipientID)
	assert.Equal(t, debit.Amount, credit.Amount)
	assert.Equal(t, debit.Timestamp, credit.Timestamp)

	assert.Equal(t, uint(1), debit.SenderID)
	assert.Equal(t, uint(2), debit.RecipientID)
	assert.Equal(t, float64(2000), debit.Amount)
	assert.Equal(t, ts, debit.Timestamp)
}

func TestDepositTerminal(t *testing.T) {
	tests := []struct {
		status   string
		terminal bool
	}{
		{DepositStatusPending, false},
		{DepositStatusCompleted, true},
		{DepositStatusFailed, true},
	}

	for _, tt := range tests {
		d := DepositTransaction{Status: tt.status}
		assert.Equal(t, tt.terminal, d.Terminal(), tt.status)
	}
}
