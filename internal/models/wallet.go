package models

import (
	"time"

	"gorm.io/gorm"
)

// Wallet holds a user's funds. Exactly one wallet exists per user and its
// balance is only ever mutated by the ledger service inside a database
// transaction.
type Wallet struct {
	ID        uint    `gorm:"primarykey" json:"id"`
	UserID    uint    `gorm:"uniqueIndex;not null" json:"user_id"`
	Balance   float64 `gorm:"default:0" json:"balance"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (w *Wallet) BeforeCreate(tx *gorm.DB) error {
	// New wallets always start empty
	w.Balance = 0
	return nil
}
