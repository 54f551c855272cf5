package repositories

import (
	"context"
	"errors"

	"kora/internal/models"
)

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrWalletNotFound  = errors.New("wallet not found")
	ErrDepositNotFound = errors.New("deposit not found")
)

// LedgerRepository defines the persistence operations used by the ledger
// service. Balance mutations only happen through this interface, inside
// ExecuteInTransaction.
type LedgerRepository interface {
	// Wallet operations
	GetWalletByUserID(ctx context.Context, userID uint) (*models.Wallet, error)
	// GetWalletByUserIDForUpdate locks the wallet row until the surrounding
	// transaction commits. Only meaningful inside ExecuteInTransaction.
	GetWalletByUserIDForUpdate(ctx context.Context, userID uint) (*models.Wallet, error)
	UpdateWalletBalance(ctx context.Context, wallet *models.Wallet) error

	// Deposit operations
	CreateDeposit(ctx context.Context, deposit *models.DepositTransaction) error
	// RecentDepositsByUser returns up to limit of the user's newest deposit rows.
	RecentDepositsByUser(ctx context.Context, userID uint, limit int) ([]models.DepositTransaction, error)
	// CompareAndSwapDepositStatus transitions a deposit from one status to
	// another only if it is still in the expected status. It reports whether
	// the swap happened.
	CompareAndSwapDepositStatus(ctx context.Context, depositID uint, from, to string) (bool, error)
	DepositsByUser(ctx context.Context, userID uint) ([]models.DepositTransaction, error)

	// Transfer row operations
	CreateTransferPair(ctx context.Context, debit, credit *models.TransferTransaction) error
	DebitsBySender(ctx context.Context, userID uint) ([]models.TransferTransaction, error)
	CreditsByRecipient(ctx context.Context, userID uint) ([]models.TransferTransaction, error)

	// ExecuteInTransaction runs fn against a repository bound to a database
	// transaction. Everything fn does commits or rolls back as one unit.
	ExecuteInTransaction(fn func(LedgerRepository) error) error
}
