// Package ledger implements the wallet ledger engine: deposit lifecycle,
// wallet-to-wallet transfers and their read-only projections.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"time"

	"kora/internal/models"
	"kora/internal/repositories"
	"kora/internal/services/gateway"
	"kora/internal/services/reference"
)

// errRolledBack aborts a repository transaction after the outcome has already
// been recorded in the result variable.
var errRolledBack = errors.New("ledger: rolled back")

type service struct {
	repo      repositories.LedgerRepository
	users     repositories.UserRepository
	idem      repositories.IdempotencyStore
	gateway   gateway.Client
	protector *reference.Protector
}

// NewService creates the ledger engine.
func NewService(
	repo repositories.LedgerRepository,
	users repositories.UserRepository,
	idem repositories.IdempotencyStore,
	gw gateway.Client,
	protector *reference.Protector,
) Service {
	if repo == nil {
		panic("ledger repository is required")
	}
	if users == nil {
		panic("user repository is required")
	}
	if idem == nil {
		panic("idempotency store is required")
	}
	if gw == nil {
		panic("gateway client is required")
	}
	if protector == nil {
		panic("reference protector is required")
	}

	return &service{
		repo:      repo,
		users:     users,
		idem:      idem,
		gateway:   gw,
		protector: protector,
	}
}

// validAmount accepts positive whole-currency-unit amounts only.
func validAmount(amount float64) bool {
	return amount > 0 && amount == math.Trunc(amount)
}

func (s *service) InitiateDeposit(ctx context.Context, userID uint, amount float64) (*DepositIntent, error) {
	if !validAmount(amount) {
		return nil, ErrInvalidAmount
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	init, err := s.gateway.Initialize(ctx, amount, user.Email)
	if err != nil {
		return nil, fmt.Errorf("gateway initialize: %w", err)
	}

	deposit := &models.DepositTransaction{
		UserID:        userID,
		Amount:        amount,
		Timestamp:     time.Now().UTC(),
		Status:        models.DepositStatusPending,
		Reference:     s.protector.Protect(init.Reference),
		ReferenceHash: s.protector.Fingerprint(init.Reference),
		Type:          "Deposit",
	}
	if err := s.repo.CreateDeposit(ctx, deposit); err != nil {
		return nil, fmt.Errorf("failed to record deposit: %w", err)
	}

	return &DepositIntent{
		AuthorizationURL: init.AuthorizationURL,
		Reference:        init.Reference,
	}, nil
}

func (s *service) VerifyDeposit(ctx context.Context, ref string, userID uint) (DepositResult, error) {
	hash := s.protector.Fingerprint(ref)

	recent, err := s.repo.RecentDepositsByUser(ctx, userID, recentDepositWindow)
	if err != nil {
		return DepositUnknownError, err
	}

	var deposit *models.DepositTransaction
	for i := range recent {
		if recent[i].ReferenceHash == hash {
			deposit = &recent[i]
			break
		}
	}
	if deposit == nil {
		return DepositTransactionNotFound, nil
	}

	// The fingerprint is an index, not proof. Confirm against the decrypted
	// reference and fail closed on a collision.
	if s.protector.Unprotect(deposit.Reference) != ref {
		return DepositTransactionNotFound, nil
	}

	// Terminal rows short-circuit: re-verification repeats the outcome and
	// never credits twice.
	switch deposit.Status {
	case models.DepositStatusCompleted:
		return DepositSuccess, nil
	case models.DepositStatusFailed:
		return DepositPaymentFailed, nil
	}

	status, err := s.gateway.Verify(ctx, ref)
	if err != nil {
		return DepositUnknownError, fmt.Errorf("gateway verify: %w", err)
	}

	if status != gateway.StatusSuccess {
		if _, err := s.repo.CompareAndSwapDepositStatus(ctx, deposit.ID, models.DepositStatusPending, models.DepositStatusFailed); err != nil {
			return DepositUnknownError, err
		}
		return DepositPaymentFailed, nil
	}

	err = s.repo.ExecuteInTransaction(func(tx repositories.LedgerRepository) error {
		swapped, err := tx.CompareAndSwapDepositStatus(ctx, deposit.ID, models.DepositStatusPending, models.DepositStatusCompleted)
		if err != nil {
			return err
		}
		if !swapped {
			// A concurrent verification won the swap and applied the credit.
			return nil
		}

		wallet, err := tx.GetWalletByUserIDForUpdate(ctx, deposit.UserID)
		if err != nil {
			return err
		}
		wallet.Balance += deposit.Amount
		return tx.UpdateWalletBalance(ctx, wallet)
	})
	if err != nil {
		if errors.Is(err, repositories.ErrWalletNotFound) {
			return DepositUserNotFound, nil
		}
		return DepositUnknownError, err
	}

	return DepositSuccess, nil
}

func (s *service) Transfer(ctx context.Context, senderID, recipientID uint, amount float64, idempotencyKey string) (TransferResult, error) {
	if idempotencyKey == "" {
		return TransferUnknownError, ErrMissingIdempotencyKey
	}

	// Fast path: a marked key means the transfer already applied.
	if _, err := s.idem.Get(ctx, idempotencyKey); err == nil {
		return TransferAlreadyProcessed, nil
	} else if !errors.Is(err, repositories.ErrKeyNotFound) {
		return TransferUnknownError, err
	}

	result := TransferUnknownError
	keyMarked := false

	err := s.repo.ExecuteInTransaction(func(tx repositories.LedgerRepository) error {
		if _, err := tx.GetWalletByUserID(ctx, senderID); err != nil {
			if errors.Is(err, repositories.ErrWalletNotFound) {
				result = TransferSenderNotFound
				return errRolledBack
			}
			return err
		}
		if _, err := tx.GetWalletByUserID(ctx, recipientID); err != nil {
			if errors.Is(err, repositories.ErrWalletNotFound) {
				result = TransferRecipientNotFound
				return errRolledBack
			}
			return err
		}
		if senderID == recipientID {
			result = TransferSameWalletTransfer
			return errRolledBack
		}
		// Amount validity is reported before balance sufficiency.
		if !validAmount(amount) {
			result = TransferInvalidAmount
			return errRolledBack
		}

		// Lock both wallets in ascending user-ID order so two opposing
		// transfers cannot deadlock.
		first, second := senderID, recipientID
		if second < first {
			first, second = second, first
		}
		locked := make(map[uint]*models.Wallet, 2)
		for _, id := range []uint{first, second} {
			w, err := tx.GetWalletByUserIDForUpdate(ctx, id)
			if err != nil {
				return err
			}
			locked[id] = w
		}
		senderWallet, recipientWallet := locked[senderID], locked[recipientID]

		if senderWallet.Balance < amount {
			result = TransferInsufficientFunds
			return errRolledBack
		}

		senderWallet.Balance -= amount
		recipientWallet.Balance += amount
		if err := tx.UpdateWalletBalance(ctx, senderWallet); err != nil {
			return err
		}
		if err := tx.UpdateWalletBalance(ctx, recipientWallet); err != nil {
			return err
		}

		debit, credit := models.NewTransferPair(senderID, recipientID, amount, time.Now().UTC())
		if err := tx.CreateTransferPair(ctx, &debit, &credit); err != nil {
			return err
		}

		ok, err := s.idem.SetIfAbsent(ctx, idempotencyKey, processedMarker, idempotencyKeyTTL)
		if err != nil {
			return err
		}
		if !ok {
			// A concurrent retry marked the key between our check and now.
			result = TransferAlreadyProcessed
			return errRolledBack
		}
		keyMarked = true

		result = TransferSuccess
		return nil
	})
	if err != nil {
		if errors.Is(err, errRolledBack) {
			return result, nil
		}
		// The marker must not outlive a failed commit, or the client's retry
		// would be swallowed.
		if keyMarked {
			if delErr := s.idem.Delete(ctx, idempotencyKey); delErr != nil {
				log.Printf("failed to release idempotency key %q: %v", idempotencyKey, delErr)
			}
		}
		return TransferUnknownError, err
	}

	return result, nil
}

func (s *service) DepositHistory(ctx context.Context, userID uint) ([]models.DepositResponse, error) {
	deposits, err := s.repo.DepositsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	responses := make([]models.DepositResponse, 0, len(deposits))
	for _, d := range deposits {
		responses = append(responses, models.DepositResponse{
			ID:        d.ID,
			UserID:    d.UserID,
			Amount:    d.Amount,
			Timestamp: d.Timestamp,
			Status:    d.Status,
			Reference: s.protector.Unprotect(d.Reference),
		})
	}
	return responses, nil
}

func (s *service) DebitHistory(ctx context.Context, userID uint) ([]models.TransferTransaction, error) {
	return s.repo.DebitsBySender(ctx, userID)
}

func (s *service) CreditHistory(ctx context.Context, userID uint) ([]models.TransferTransaction, error) {
	return s.repo.CreditsByRecipient(ctx, userID)
}
