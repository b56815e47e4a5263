package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fairshare/fairshare/internal/logger"
	"github.com/fairshare/fairshare/models"
)

// choreRepository is the SQL-backed implementation of [ChoreRepository] over
// the "fs_chores" table.
type choreRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewChoreRepository constructs a [ChoreRepository] backed by the provided
// database connection and logger.
func NewChoreRepository(db *DB, logger *logger.Logger) ChoreRepository {
	logger.Debug().Msg("creating chore repository")
	return &choreRepository{
		db:     db,
		logger: logger,
	}
}

// CreateChore persists a new chore record and returns it with the
// server-assigned ChoreID.
//
// Error handling:
//   - foreign key violation (unknown household or user) → [ErrForeignKeyViolation].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *choreRepository) CreateChore(ctx context.Context, chore models.Chore) (models.Chore, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createChore, chore.Name, chore.Household, chore.AssignedUser)

	var created models.Chore
	if err := row.Scan(&created.ChoreID, &created.Name, &created.Household, &created.AssignedUser); err != nil {
		log.Err(err).Str("func", "*choreRepository.CreateChore").Msg("error inserting chore")

		if r.db.constraint(err) == ConstraintForeignKey {
			return models.Chore{}, ErrForeignKeyViolation
		}
		return models.Chore{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// GetAllChores returns every chore record ordered by choreid.
func (r *choreRepository) GetAllChores(ctx context.Context) ([]models.Chore, error) {
	return r.queryChores(ctx, getAllChores)
}

// GetChoreByID retrieves a single chore record by its primary key.
// Returns [ErrChoreNotFound] when no row matches.
func (r *choreRepository) GetChoreByID(ctx context.Context, choreID int64) (models.Chore, error) {
	log := logger.FromContext(ctx)

	var chore models.Chore
	row := r.db.QueryRowContext(ctx, getChoreByID, choreID)

	if err := row.Scan(&chore.ChoreID, &chore.Name, &chore.Household, &chore.AssignedUser); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Chore{}, ErrChoreNotFound
		}
		log.Err(err).Str("func", "*choreRepository.GetChoreByID").Msg("error scanning chore row")
		return models.Chore{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return chore, nil
}

// GetChoresByHousehold returns all chores that belong to the given household,
// ordered by choreid.
func (r *choreRepository) GetChoresByHousehold(ctx context.Context, householdID int64) ([]models.Chore, error) {
	return r.queryChores(ctx, getChoresByHousehold, householdID)
}

// UpdateChore applies a partial update built from the validated column/value
// map. Returns [ErrChoreNotFound] when the target row does not exist and
// [ErrForeignKeyViolation] when the update references an unknown household
// or user.
func (r *choreRepository) UpdateChore(ctx context.Context, choreID int64, updates map[string]any) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateQuery(models.Chore{}.TableName(), "choreid", choreID, updates)
	if err != nil {
		log.Err(err).Str("func", "*choreRepository.UpdateChore").Msg("error building update query")
		return err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*choreRepository.UpdateChore").Msg("error executing update")

		if r.db.constraint(err) == ConstraintForeignKey {
			return ErrForeignKeyViolation
		}
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrChoreNotFound
	}

	return nil
}

// DeleteChore removes a chore record by its primary key.
// Returns [ErrChoreNotFound] when the target row does not exist.
func (r *choreRepository) DeleteChore(ctx context.Context, choreID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteChore, choreID)
	if err != nil {
		log.Err(err).Str("func", "*choreRepository.DeleteChore").Msg("error executing delete")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrChoreNotFound
	}

	return nil
}

func (r *choreRepository) queryChores(ctx context.Context, query string, args ...any) ([]models.Chore, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*choreRepository.queryChores").Msg("error executing query")
		return nil, errors.Join(ErrExecutingQuery, err)
	}
	defer rows.Close()

	chores := make([]models.Chore, 0)
	for rows.Next() {
		var chore models.Chore
		if err := rows.Scan(&chore.ChoreID, &chore.Name, &chore.Household, &chore.AssignedUser); err != nil {
			log.Err(err).Str("func", "*choreRepository.queryChores").Msg("error scanning chore rows")
			return nil, errors.Join(ErrScanningRows, err)
		}
		chores = append(chores, chore)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Join(ErrScanningRows, err)
	}

	return chores, nil
}
