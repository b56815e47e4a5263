package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/fairshare/fairshare/internal/logger"
	"github.com/fairshare/fairshare/internal/store"
	"github.com/fairshare/fairshare/internal/utils"
	"github.com/fairshare/fairshare/internal/validators"
	"github.com/fairshare/fairshare/models"
)

// userService is the concrete implementation of UserService.
type userService struct {
	userRepository store.UserRepository
	logger         *logger.Logger
}

// NewUserService constructs a UserService wired to the given UserRepository.
func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// Register creates a new user account.
//
// The password is checked against the account password policy, the username
// is checked for uniqueness, and the password is bcrypt-hashed before the
// record is persisted. New accounts start without a household and without
// the administrator flag.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - a *validators.ValidationError describing the violated password rule;
//   - ErrUsernameTaken when the username already belongs to an account;
//   - a wrapped storage error for any other repository failure.
func (s *userService) Register(ctx context.Context, username, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if username == "" || password == "" {
		return models.User{}, ErrInvalidDataProvided
	}

	if err := validators.ValidatePassword(password); err != nil {
		return models.User{}, err
	}

	// The unique index is the real guard; this pre-check only produces a
	// friendlier error for the common case.
	_, err := s.userRepository.GetUserByUsername(ctx, username)
	if err == nil {
		return models.User{}, ErrUsernameTaken
	}
	if !errors.Is(err, store.ErrUserNotFound) {
		log.Err(err).Str("username", username).Msg("username uniqueness check failed")
		return models.User{}, fmt.Errorf("username uniqueness check failed: %w", err)
	}

	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	created, err := s.userRepository.CreateUser(ctx, models.User{
		Username: username,
		Password: hashedPassword,
	})
	if err != nil {
		if errors.Is(err, store.ErrUsernameAlreadyExists) {
			return models.User{}, ErrUsernameTaken
		}
		log.Err(err).Str("username", username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return created, nil
}

// GetAllUsers returns every registered user.
func (s *userService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.userRepository.GetAllUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing users failed: %w", err)
	}

	return users, nil
}

// GetUser returns a single user by id. Passes through
// store.ErrUserNotFound for unknown ids.
func (s *userService) GetUser(ctx context.Context, userID int64) (models.User, error) {
	return s.userRepository.GetUserByID(ctx, userID)
}

// UpdateUser applies a validated partial update to a user record. Passes
// through store.ErrUserNotFound and store.ErrForeignKeyViolation.
func (s *userService) UpdateUser(ctx context.Context, userID int64, updates map[string]any) error {
	return s.userRepository.UpdateUser(ctx, userID, updates)
}

// DeleteUser removes a user account. Passes through store.ErrUserNotFound.
func (s *userService) DeleteUser(ctx context.Context, userID int64) error {
	return s.userRepository.DeleteUser(ctx, userID)
}
