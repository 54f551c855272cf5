package ledger

import (
	"context"

	"kora/internal/models"
)

// Service is the wallet ledger engine. It is the only component that mutates
// balances.
type Service interface {
	// InitiateDeposit opens a payment with the gateway and records a Pending
	// deposit. The returned reference is handed to the caller once and is
	// never re-derivable except by decrypting the stored row.
	InitiateDeposit(ctx context.Context, userID uint, amount float64) (*DepositIntent, error)

	// VerifyDeposit reconciles a caller-supplied reference against stored
	// state and, on gateway-confirmed success, credits the wallet exactly
	// once. Re-verifying a terminal deposit is a no-op.
	VerifyDeposit(ctx context.Context, ref string, userID uint) (DepositResult, error)

	// Transfer moves funds between two wallets. Retries carrying the same
	// idempotency key are applied at most once.
	Transfer(ctx context.Context, senderID, recipientID uint, amount float64, idempotencyKey string) (TransferResult, error)

	// Read-only projections, newest first.
	DepositHistory(ctx context.Context, userID uint) ([]models.DepositResponse, error)
	DebitHistory(ctx context.Context, userID uint) ([]models.TransferTransaction, error)
	CreditHistory(ctx context.Context, userID uint) ([]models.TransferTransaction, error)
}
