package models

import "time"

// Transfer row types. A logical transfer always produces one row of each.
const (
	TransferTypeDebit  = "Debit"
	TransferTypeCredit = "Credit"
)

// TransferTransaction is one half of a wallet-to-wallet transfer: the Debit
// row belongs to the sender, the Credit row to the recipient. Rows are
// append-only audit records and are never updated or deleted.
type TransferTransaction struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	SenderID    uint      `gorm:"index;not null" json:"sender_id"`
	RecipientID uint      `gorm:"index;not null" json:"recipient_id"`
	Amount      float64   `gorm:"not null" json:"amount"`
	Timestamp   time.Time `gorm:"index" json:"timestamp"`
	Type        string    `gorm:"not null" json:"type"`
}

// NewTransferPair builds the Debit and Credit rows for a single transfer.
// It is the only constructor for transfer rows, so the two halves always
// share sender, recipient, amount and timestamp.
func NewTransferPair(senderID, recipientID uint, amount float64, ts time.Time) (debit, credit TransferTransaction) {
	debit = TransferTransaction{
		SenderID:    senderID,
		RecipientID: recipientID,
		Amount:      amount,
		Timestamp:   ts,
		Type:        TransferTypeDebit,
	}
	credit = TransferTransaction{
		SenderID:    senderID,
		RecipientID: recipientID,
		Amount:      amount,
		Timestamp:   ts,
		Type:        TransferTypeCredit,
	}
	return debit, credit
}
