package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fairshare/fairshare/internal/logger"
	"github.com/fairshare/fairshare/internal/store"
	"github.com/fairshare/fairshare/internal/utils"
	"github.com/fairshare/fairshare/internal/validators"
	"github.com/fairshare/fairshare/models"
)

func TestUserService_Register_Success(t *testing.T) {
	var inserted models.User

	repo := &mockUserRepository{
		getByUsernameFn: func(ctx context.Context, username string) (models.User, error) {
			return models.User{}, store.ErrUserNotFound
		},
		createFn: func(ctx context.Context, user models.User) (models.User, error) {
			inserted = user
			user.UserID = 1
			return user, nil
		},
	}
	svc := NewUserService(repo, logger.Nop())

	created, err := svc.Register(context.Background(), "john", "Correct-h0rse!")
	require.NoError(t, err)

	assert.Equal(t, int64(1), created.UserID)
	assert.Equal(t, "john", created.Username)
	assert.Nil(t, created.Household)
	assert.False(t, created.Administrator)

	// Stored password must be a verifiable bcrypt hash, never plain text.
	assert.NotEqual(t, "Correct-h0rse!", inserted.Password)
	assert.True(t, utils.ComparePasswords("Correct-h0rse!", inserted.Password))
}

func TestUserService_Register_PasswordPolicy(t *testing.T) {
	svc := NewUserService(&mockUserRepository{}, logger.Nop())

	tests := []struct {
		name     string
		password string
		wantMsg  string
	}{
		{name: "too short", password: "Sh0rt!", wantMsg: "Password must be longer than 8 characters"},
		{name: "no special character", password: "Longenough1", wantMsg: "Password must contain 1 upper case, lower case, number and special character"},
		{name: "edge spaces", password: " Correct-h0rse! ", wantMsg: "Password must not start or end with empty spaces"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), "john", tt.password)
			require.Error(t, err)

			var validationErr *validators.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.wantMsg, validationErr.Message)
		})
	}
}

func TestUserService_Register_UsernameTaken(t *testing.T) {
	repo := &mockUserRepository{
		getByUsernameFn: func(ctx context.Context, username string) (models.User, error) {
			return models.User{UserID: 1, Username: username}, nil
		},
	}
	svc := NewUserService(repo, logger.Nop())

	_, err := svc.Register(context.Background(), "john", "Correct-h0rse!")
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestUserService_Register_UniqueViolationRace(t *testing.T) {
	// The pre-check passes but the insert hits the unique index.
	repo := &mockUserRepository{
		getByUsernameFn: func(ctx context.Context, username string) (models.User, error) {
			return models.User{}, store.ErrUserNotFound
		},
		createFn: func(ctx context.Context, user models.User) (models.User, error) {
			return models.User{}, store.ErrUsernameAlreadyExists
		},
	}
	svc := NewUserService(repo, logger.Nop())

	_, err := svc.Register(context.Background(), "john", "Correct-h0rse!")
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestUserService_Register_EmptyInput(t *testing.T) {
	svc := NewUserService(&mockUserRepository{}, logger.Nop())

	_, err := svc.Register(context.Background(), "", "Correct-h0rse!")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.Register(context.Background(), "john", "")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestUserService_GetUser_NotFound(t *testing.T) {
	svc := NewUserService(&mockUserRepository{}, logger.Nop())

	_, err := svc.GetUser(context.Background(), 404)
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestUserService_GetAllUsers_RepositoryError(t *testing.T) {
	repo := &mockUserRepository{
		getAllFn: func(ctx context.Context) ([]models.User, error) {
			return nil, errors.New("db down")
		},
	}
	svc := NewUserService(repo, logger.Nop())

	_, err := svc.GetAllUsers(context.Background())
	assert.Error(t, err)
}

func TestUserService_UpdateUser_PassesThroughSentinels(t *testing.T) {
	repo := &mockUserRepository{
		updateFn: func(ctx context.Context, userID int64, updates map[string]any) error {
			return store.ErrForeignKeyViolation
		},
	}
	svc := NewUserService(repo, logger.Nop())

	err := svc.UpdateUser(context.Background(), 1, map[string]any{"userhousehold": int64(99)})
	assert.ErrorIs(t, err, store.ErrForeignKeyViolation)
}

func TestUserService_DeleteUser_NotFound(t *testing.T) {
	repo := &mockUserRepository{
		deleteFn: func(ctx context.Context, userID int64) error {
			return store.ErrUserNotFound
		},
	}
	svc := NewUserService(repo, logger.Nop())

	err := svc.DeleteUser(context.Background(), 404)
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}
