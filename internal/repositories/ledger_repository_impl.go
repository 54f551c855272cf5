package repositories

import (
	"context"
	"errors"
	"fmt"

	"kora/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ledgerRepository struct {
	db *gorm.DB
}

func NewLedgerRepository(db *gorm.DB) LedgerRepository {
	return &ledgerRepository{db: db}
}

func (r *ledgerRepository) GetWalletByUserID(ctx context.Context, userID uint) (*models.Wallet, error) {
	var wallet models.Wallet
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&wallet).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWalletNotFound
		}
		return nil, fmt.Errorf("failed to get wallet: %w", err)
	}
	return &wallet, nil
}

func (r *ledgerRepository) GetWalletByUserIDForUpdate(ctx context.Context, userID uint) (*models.Wallet, error) {
	var wallet models.Wallet
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ?", userID).
		First(&wallet).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWalletNotFound
		}
		return nil, fmt.Errorf("failed to lock wallet: %w", err)
	}
	return &wallet, nil
}

func (r *ledgerRepository) UpdateWalletBalance(ctx context.Context, wallet *models.Wallet) error {
	result := r.db.WithContext(ctx).
		Model(&models.Wallet{}).
		Where("id = ?", wallet.ID).
		Update("balance", wallet.Balance)
	if result.Error != nil {
		return fmt.Errorf("failed to update wallet balance: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrWalletNotFound
	}
	return nil
}

func (r *ledgerRepository) CreateDeposit(ctx context.Context, deposit *models.DepositTransaction) error {
	if err := r.db.WithContext(ctx).Create(deposit).Error; err != nil {
		return fmt.Errorf("failed to create deposit: %w", err)
	}
	return nil
}

func (r *ledgerRepository) RecentDepositsByUser(ctx context.Context, userID uint, limit int) ([]models.DepositTransaction, error) {
	var deposits []models.DepositTransaction
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("timestamp DESC").
		Limit(limit).
		Find(&deposits).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get recent deposits: %w", err)
	}
	return deposits, nil
}

func (r *ledgerRepository) CompareAndSwapDepositStatus(ctx context.Context, depositID uint, from, to string) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&models.DepositTransaction{}).
		Where("id = ? AND status = ?", depositID, from).
		Update("status", to)
	if result.Error != nil {
		return false, fmt.Errorf("failed to update deposit status: %w", result.Error)
	}
	return result.RowsAffected == 1, nil
}

func (r *ledgerRepository) DepositsByUser(ctx context.Context, userID uint) ([]models.DepositTransaction, error) {
	var deposits []models.DepositTransaction
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("timestamp DESC").
		Find(&deposits).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get deposits: %w", err)
	}
	return deposits, nil
}

func (r *ledgerRepository) CreateTransferPair(ctx context.Context, debit, credit *models.TransferTransaction) error {
	if err := r.db.WithContext(ctx).Create(debit).Error; err != nil {
		return fmt.Errorf("failed to create debit row: %w", err)
	}
	if err := r.db.WithContext(ctx).Create(credit).Error; err != nil {
		return fmt.Errorf("failed to create credit row: %w", err)
	}
	return nil
}

func (r *ledgerRepository) DebitsBySender(ctx context.Context, userID uint) ([]models.TransferTransaction, error) {
	var rows []models.TransferTransaction
	err := r.db.WithContext(ctx).
		Where("sender_id = ? AND type = ?", userID, models.TransferTypeDebit).
		Order("timestamp DESC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get debit transactions: %w", err)
	}
	return rows, nil
}

func (r *ledgerRepository) CreditsByRecipient(ctx context.Context, userID uint) ([]models.TransferTransaction, error) {
	var rows []models.TransferTransaction
	err := r.db.WithContext(ctx).
		Where("recipient_id = ? AND type = ?", userID, models.TransferTypeCredit).
		Order("timestamp DESC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get credit transactions: %w", err)
	}
	return rows, nil
}

func (r *ledgerRepository) ExecuteInTransaction(fn func(LedgerRepository) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(&ledgerRepository{db: tx})
	})
}
