package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fairshare/fairshare/internal/logger"
	"github.com/fairshare/fairshare/models"
)

// userRepository is the SQL-backed implementation of [UserRepository].
// It handles user account creation and lookup against the "fs_users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns the fully populated
// [models.User] with the server-assigned UserID.
//
// Error handling:
//   - unique constraint violation → [ErrUsernameAlreadyExists].
//   - foreign key violation (unknown household) → [ErrForeignKeyViolation].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser, user.Username, user.Password, user.Household, user.Administrator)

	var created models.User
	if err := row.Scan(&created.UserID, &created.Username, &created.Password, &created.Household, &created.Administrator); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")

		switch r.db.constraint(err) {
		case ConstraintUnique:
			return models.User{}, ErrUsernameAlreadyExists
		case ConstraintForeignKey:
			return models.User{}, ErrForeignKeyViolation
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return created, nil
}

// GetAllUsers returns every user record ordered by userid.
func (r *userRepository) GetAllUsers(ctx context.Context) ([]models.User, error) {
	return r.queryUsers(ctx, getAllUsers)
}

// GetUserByID retrieves a single user record by its primary key.
// Returns [ErrUserNotFound] when no row matches.
func (r *userRepository) GetUserByID(ctx context.Context, userID int64) (models.User, error) {
	return r.scanUserRow(ctx, getUserByID, userID)
}

// GetUserByUsername retrieves a single user record by its unique username.
// Returns [ErrUserNotFound] when no row matches.
func (r *userRepository) GetUserByUsername(ctx context.Context, username string) (models.User, error) {
	return r.scanUserRow(ctx, getUserByUsername, username)
}

// GetUsersByHousehold returns all users that belong to the given household,
// ordered by userid.
func (r *userRepository) GetUsersByHousehold(ctx context.Context, householdID int64) ([]models.User, error) {
	return r.queryUsers(ctx, getUsersByHousehold, householdID)
}

// UpdateUser applies a partial update built from the validated column/value
// map. Returns [ErrUserNotFound] when the target row does not exist and
// [ErrForeignKeyViolation] when the update references an unknown household.
func (r *userRepository) UpdateUser(ctx context.Context, userID int64, updates map[string]any) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateQuery(models.User{}.TableName(), "userid", userID, updates)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUser").Msg("error building update query")
		return err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUser").Msg("error executing update")

		switch r.db.constraint(err) {
		case ConstraintUnique:
			return ErrUsernameAlreadyExists
		case ConstraintForeignKey:
			return ErrForeignKeyViolation
		default:
			return fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrUserNotFound
	}

	return nil
}

// DeleteUser removes a user record by its primary key.
// Returns [ErrUserNotFound] when the target row does not exist.
func (r *userRepository) DeleteUser(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteUser, userID)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Msg("error executing delete")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrUserNotFound
	}

	return nil
}

func (r *userRepository) scanUserRow(ctx context.Context, query string, arg any) (models.User, error) {
	log := logger.FromContext(ctx)

	var user models.User
	row := r.db.QueryRowContext(ctx, query, arg)

	if err := row.Scan(&user.UserID, &user.Username, &user.Password, &user.Household, &user.Administrator); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Str("func", "*userRepository.scanUserRow").Msg("error scanning user row")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return user, nil
}

func (r *userRepository) queryUsers(ctx context.Context, query string, args ...any) ([]models.User, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.queryUsers").Msg("error executing query")
		return nil, errors.Join(ErrExecutingQuery, err)
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		var user models.User
		if err := rows.Scan(&user.UserID, &user.Username, &user.Password, &user.Household, &user.Administrator); err != nil {
			log.Err(err).Str("func", "*userRepository.queryUsers").Msg("error scanning user rows")
			return nil, errors.Join(ErrScanningRows, err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Join(ErrScanningRows, err)
	}

	return users, nil
}
