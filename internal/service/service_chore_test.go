package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fairshare/fairshare/internal/logger"
	"github.com/fairshare/fairshare/internal/store"
	"github.com/fairshare/fairshare/models"
)

func TestChoreService_CreateChore_Success(t *testing.T) {
	repo := &mockChoreRepository{
		createFn: func(ctx context.Context, chore models.Chore) (models.Chore, error) {
			chore.ChoreID = 1
			return chore, nil
		},
	}
	svc := NewChoreService(repo, logger.Nop())

	created, err := svc.CreateChore(context.Background(), models.Chore{Name: "Dishes", Household: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ChoreID)
	assert.Nil(t, created.AssignedUser)
}

func TestChoreService_CreateChore_MissingFields(t *testing.T) {
	svc := NewChoreService(&mockChoreRepository{}, logger.Nop())

	_, err := svc.CreateChore(context.Background(), models.Chore{Household: 2})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.CreateChore(context.Background(), models.Chore{Name: "Dishes"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestChoreService_CreateChore_UnknownHousehold(t *testing.T) {
	repo := &mockChoreRepository{
		createFn: func(ctx context.Context, chore models.Chore) (models.Chore, error) {
			return models.Chore{}, store.ErrForeignKeyViolation
		},
	}
	svc := NewChoreService(repo, logger.Nop())

	_, err := svc.CreateChore(context.Background(), models.Chore{Name: "Dishes", Household: 404})
	assert.ErrorIs(t, err, store.ErrForeignKeyViolation)
}

func TestChoreService_GetChore_NotFound(t *testing.T) {
	svc := NewChoreService(&mockChoreRepository{}, logger.Nop())

	_, err := svc.GetChore(context.Background(), 404)
	assert.ErrorIs(t, err, store.ErrChoreNotFound)
}

func TestChoreService_UpdateChore_PassesThroughSentinels(t *testing.T) {
	repo := &mockChoreRepository{
		updateFn: func(ctx context.Context, choreID int64, updates map[string]any) error {
			return store.ErrForeignKeyViolation
		},
	}
	svc := NewChoreService(repo, logger.Nop())

	err := svc.UpdateChore(context.Background(), 1, map[string]any{"choreuser": int64(404)})
	assert.ErrorIs(t, err, store.ErrForeignKeyViolation)
}

func TestChoreService_DeleteChore_NotFound(t *testing.T) {
	repo := &mockChoreRepository{
		deleteFn: func(ctx context.Context, choreID int64) error {
			return store.ErrChoreNotFound
		},
	}
	svc := NewChoreService(repo, logger.Nop())

	err := svc.DeleteChore(context.Background(), 404)
	assert.ErrorIs(t, err, store.ErrChoreNotFound)
}
