package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fairshare/fairshare/internal/logger"
	"github.com/fairshare/fairshare/models"
)

// householdRepository is the SQL-backed implementation of
// [HouseholdRepository] over the "fs_households" table.
type householdRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewHouseholdRepository constructs a [HouseholdRepository] backed by the
// provided database connection and logger.
func NewHouseholdRepository(db *DB, logger *logger.Logger) HouseholdRepository {
	logger.Debug().Msg("creating household repository")
	return &householdRepository{
		db:     db,
		logger: logger,
	}
}

// CreateHousehold persists a new household record and returns it with the
// server-assigned HouseholdID.
func (r *householdRepository) CreateHousehold(ctx context.Context, household models.Household) (models.Household, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createHousehold, household.Name)

	var created models.Household
	if err := row.Scan(&created.HouseholdID, &created.Name); err != nil {
		log.Err(err).Str("func", "*householdRepository.CreateHousehold").Msg("error inserting household")
		return models.Household{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// GetAllHouseholds returns every household record ordered by householdid.
func (r *householdRepository) GetAllHouseholds(ctx context.Context) ([]models.Household, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, getAllHouseholds)
	if err != nil {
		log.Err(err).Str("func", "*householdRepository.GetAllHouseholds").Msg("error executing query")
		return nil, errors.Join(ErrExecutingQuery, err)
	}
	defer rows.Close()

	households := make([]models.Household, 0)
	for rows.Next() {
		var household models.Household
		if err := rows.Scan(&household.HouseholdID, &household.Name); err != nil {
			log.Err(err).Str("func", "*householdRepository.GetAllHouseholds").Msg("error scanning household rows")
			return nil, errors.Join(ErrScanningRows, err)
		}
		households = append(households, household)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Join(ErrScanningRows, err)
	}

	return households, nil
}

// GetHouseholdByID retrieves a single household record by its primary key.
// Returns [ErrHouseholdNotFound] when no row matches.
func (r *householdRepository) GetHouseholdByID(ctx context.Context, householdID int64) (models.Household, error) {
	log := logger.FromContext(ctx)

	var household models.Household
	row := r.db.QueryRowContext(ctx, getHouseholdByID, householdID)

	if err := row.Scan(&household.HouseholdID, &household.Name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Household{}, ErrHouseholdNotFound
		}
		log.Err(err).Str("func", "*householdRepository.GetHouseholdByID").Msg("error scanning household row")
		return models.Household{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return household, nil
}

// UpdateHousehold applies a partial update built from the validated
// column/value map. Returns [ErrHouseholdNotFound] when the target row does
// not exist.
func (r *householdRepository) UpdateHousehold(ctx context.Context, householdID int64, updates map[string]any) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateQuery(models.Household{}.TableName(), "householdid", householdID, updates)
	if err != nil {
		log.Err(err).Str("func", "*householdRepository.UpdateHousehold").Msg("error building update query")
		return err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*householdRepository.UpdateHousehold").Msg("error executing update")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrHouseholdNotFound
	}

	return nil
}

// DeleteHousehold removes a household record by its primary key. Chores of
// the household are removed and member users detached by the schema's
// referential actions. Returns [ErrHouseholdNotFound] when the target row
// does not exist.
func (r *householdRepository) DeleteHousehold(ctx context.Context, householdID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteHousehold, householdID)
	if err != nil {
		log.Err(err).Str("func", "*householdRepository.DeleteHousehold").Msg("error executing delete")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrHouseholdNotFound
	}

	return nil
}
