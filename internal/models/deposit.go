package models

import "time"

// Deposit statuses. Pending is the only non-terminal state; once a deposit is
// Completed or Failed it never transitions again.
const (
	DepositStatusPending   = "Pending"
	DepositStatusCompleted = "Completed"
	DepositStatusFailed    = "Failed"
)

// DepositTransaction records one gateway-funded deposit. Reference holds the
// encrypted gateway reference; ReferenceHash is its fingerprint, indexed so a
// verify call can find the row without a decrypt-and-compare scan.
type DepositTransaction struct {
	ID            uint      `gorm:"primarykey" json:"id"`
	UserID        uint      `gorm:"index;not null" json:"user_id"`
	Amount        float64   `gorm:"not null" json:"amount"`
	Timestamp     time.Time `gorm:"index" json:"timestamp"`
	Status        string    `gorm:"not null;default:'Pending'" json:"status"`
	Reference     string    `json:"-"`
	ReferenceHash string    `gorm:"index" json:"-"`
	Type          string    `gorm:"not null;default:'Deposit'" json:"type"`
}

// DepositResponse is the owner-facing view of a deposit row, carrying the
// decrypted reference.
type DepositResponse struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"user_id"`
	Amount    float64   `json:"amount"`
	Timestamp time.Time `json:"timestamp"`
	Status    string    `json:"status"`
	Reference string    `json:"reference"`
}

// Terminal reports whether the deposit has reached a final status.
func (d *DepositTransaction) Terminal() bool {
	return d.Status == DepositStatusCompleted || d.Status == DepositStatusFailed
}
