package repositories

import (
	"context"

	"kora/internal/models"
)

// UserRepository defines user persistence. CreateWithWallet is the only way a
// user comes into existence, so every user has a wallet before any financial
// operation can reference them.
type UserRepository interface {
	CreateWithWallet(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	Delete(ctx context.Context, id uint) error
}
