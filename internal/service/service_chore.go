package service

import (
	"context"
	"fmt"

	"github.com/fairshare/fairshare/internal/logger"
	"github.com/fairshare/fairshare/internal/store"
	"github.com/fairshare/fairshare/models"
)

// choreService is the concrete implementation of ChoreService.
type choreService struct {
	choreRepository store.ChoreRepository
	logger          *logger.Logger
}

// NewChoreService constructs a ChoreService wired to the given
// ChoreRepository.
func NewChoreService(choreRepository store.ChoreRepository, logger *logger.Logger) ChoreService {
	return &choreService{
		choreRepository: choreRepository,
		logger:          logger,
	}
}

// CreateChore persists a new chore. Passes through
// store.ErrForeignKeyViolation when the household or assignee is unknown.
func (s *choreService) CreateChore(ctx context.Context, chore models.Chore) (models.Chore, error) {
	log := logger.FromContext(ctx)

	if chore.Name == "" || chore.Household == 0 {
		return models.Chore{}, ErrInvalidDataProvided
	}

	created, err := s.choreRepository.CreateChore(ctx, chore)
	if err != nil {
		log.Err(err).Str("chorename", chore.Name).Int64("chorehousehold", chore.Household).Msg("chore creation ended with error")
		return models.Chore{}, fmt.Errorf("chore creation ended with error: %w", err)
	}

	return created, nil
}

// GetAllChores returns every chore.
func (s *choreService) GetAllChores(ctx context.Context) ([]models.Chore, error) {
	chores, err := s.choreRepository.GetAllChores(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing chores failed: %w", err)
	}

	return chores, nil
}

// GetChore returns a single chore by id. Passes through
// store.ErrChoreNotFound for unknown ids.
func (s *choreService) GetChore(ctx context.Context, choreID int64) (models.Chore, error) {
	return s.choreRepository.GetChoreByID(ctx, choreID)
}

// UpdateChore applies a validated partial update to a chore record. Passes
// through store.ErrChoreNotFound and store.ErrForeignKeyViolation.
func (s *choreService) UpdateChore(ctx context.Context, choreID int64, updates map[string]any) error {
	return s.choreRepository.UpdateChore(ctx, choreID, updates)
}

// DeleteChore removes a chore. Passes through store.ErrChoreNotFound.
func (s *choreService) DeleteChore(ctx context.Context, choreID int64) error {
	return s.choreRepository.DeleteChore(ctx, choreID)
}
