package user

import (
	"context"
	"testing"

	"kora/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) CreateWithWallet(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepo) GetByID(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepo) List(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepo) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestCreate(t *testing.T) {
	t.Run("hashes the password and creates user with wallet", func(t *testing.T) {
		repo := new(MockUserRepo)
		repo.On("GetByUsername", mock.Anything, "alice").Return(nil, ErrUserNotFound)
		repo.On("GetByEmail", mock.Anything, "alice@example.com").Return(nil, ErrUserNotFound)

		var created *models.User
		repo.On("CreateWithWallet", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) {
				created = args.Get(1).(*models.User)
			}).
			Return(nil)

		svc := NewService(repo)
		_, err := svc.Create(context.Background(), &models.CreateUserInput{
			Username: "alice",
			Email:    "alice@example.com",
			Password: "s3cret!",
		})

		require.NoError(t, err)
		require.NotNil(t, created)
		assert.NotEqual(t, "s3cret!", created.Password)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("s3cret!")))
	})

	t.Run("rejects duplicate username", func(t *testing.T) {
		repo := new(MockUserRepo)
		repo.On("GetByUsername", mock.Anything, "alice").Return(&models.User{Username: "alice"}, nil)

		svc := NewService(repo)
		_, err := svc.Create(context.Background(), &models.CreateUserInput{
			Username: "alice",
			Email:    "other@example.com",
			Password: "s3cret!",
		})

		assert.ErrorIs(t, err, ErrUsernameTaken)
		repo.AssertNotCalled(t, "CreateWithWallet", mock.Anything, mock.Anything)
	})

	t.Run("rejects missing fields", func(t *testing.T) {
		svc := NewService(new(MockUserRepo))
		_, err := svc.Create(context.Background(), &models.CreateUserInput{Username: "alice"})
		assert.Error(t, err)
	})
}
