// Package gateway wraps the external payment provider behind an
// initialize/verify interface. The provider is untrusted: anything other
// than an explicit success status is reported as not successful.
package gateway

import "context"

// StatusSuccess is the status a verified, settled payment reports.
const StatusSuccess = "success"

// InitializeResult is what the provider hands back when a payment is opened:
// a URL the payer completes checkout on, and the reference that later
// identifies the payment for verification.
type InitializeResult struct {
	AuthorizationURL string
	Reference        string
}

// Client is the payment gateway boundary used by the ledger service.
type Client interface {
	Initialize(ctx context.Context, amount float64, email string) (*InitializeResult, error)
	// Verify returns the provider's status for a reference, normalized to
	// StatusSuccess when the payment settled.
	Verify(ctx context.Context, reference string) (string, error)
}
