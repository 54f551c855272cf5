package ledger

import "time"

const (
	// recentDepositWindow bounds the hash-match search to the user's newest
	// deposit rows. Trades a miss on very old pending rows for lookup speed.
	recentDepositWindow = 10

	// idempotencyKeyTTL covers the client retry window without letting
	// markers accumulate.
	idempotencyKeyTTL = 30 * time.Second

	processedMarker = "processed"
)
