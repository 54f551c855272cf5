package ledger

import "errors"

// Service errors
var (
	ErrInvalidAmount         = errors.New("invalid amount")
	ErrUserNotFound          = errors.New("user not found")
	ErrMissingIdempotencyKey = errors.New("idempotency key is required")
)
