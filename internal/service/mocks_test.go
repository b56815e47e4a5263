package service

import (
	"context"

	"github.com/fairshare/fairshare/internal/store"
	"github.com/fairshare/fairshare/models"
)

// ─────────────────────────────────────────────
// Mock: store.UserRepository
// ─────────────────────────────────────────────

type mockUserRepository struct {
	createFn         func(ctx context.Context, user models.User) (models.User, error)
	getAllFn         func(ctx context.Context) ([]models.User, error)
	getByIDFn        func(ctx context.Context, userID int64) (models.User, error)
	getByUsernameFn  func(ctx context.Context, username string) (models.User, error)
	getByHouseholdFn func(ctx context.Context, householdID int64) ([]models.User, error)
	updateFn         func(ctx context.Context, userID int64, updates map[string]any) error
	deleteFn         func(ctx context.Context, userID int64) error
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	return user, nil
}

func (m *mockUserRepository) GetAllUsers(ctx context.Context) ([]models.User, error) {
	if m.getAllFn != nil {
		return m.getAllFn(ctx)
	}
	return nil, nil
}

func (m *mockUserRepository) GetUserByID(ctx context.Context, userID int64) (models.User, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, userID)
	}
	return models.User{}, store.ErrUserNotFound
}

func (m *mockUserRepository) GetUserByUsername(ctx context.Context, username string) (models.User, error) {
	if m.getByUsernameFn != nil {
		return m.getByUsernameFn(ctx, username)
	}
	return models.User{}, store.ErrUserNotFound
}

func (m *mockUserRepository) GetUsersByHousehold(ctx context.Context, householdID int64) ([]models.User, error) {
	if m.getByHouseholdFn != nil {
		return m.getByHouseholdFn(ctx, householdID)
	}
	return nil, nil
}

func (m *mockUserRepository) UpdateUser(ctx context.Context, userID int64, updates map[string]any) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, userID, updates)
	}
	return nil
}

func (m *mockUserRepository) DeleteUser(ctx context.Context, userID int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, userID)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock: store.HouseholdRepository
// ─────────────────────────────────────────────

type mockHouseholdRepository struct {
	createFn  func(ctx context.Context, household models.Household) (models.Household, error)
	getAllFn  func(ctx context.Context) ([]models.Household, error)
	getByIDFn func(ctx context.Context, householdID int64) (models.Household, error)
	updateFn  func(ctx context.Context, householdID int64, updates map[string]any) error
	deleteFn  func(ctx context.Context, householdID int64) error
}

func (m *mockHouseholdRepository) CreateHousehold(ctx context.Context, household models.Household) (models.Household, error) {
	if m.createFn != nil {
		return m.createFn(ctx, household)
	}
	return household, nil
}

func (m *mockHouseholdRepository) GetAllHouseholds(ctx context.Context) ([]models.Household, error) {
	if m.getAllFn != nil {
		return m.getAllFn(ctx)
	}
	return nil, nil
}

func (m *mockHouseholdRepository) GetHouseholdByID(ctx context.Context, householdID int64) (models.Household, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, householdID)
	}
	return models.Household{}, store.ErrHouseholdNotFound
}

func (m *mockHouseholdRepository) UpdateHousehold(ctx context.Context, householdID int64, updates map[string]any) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, householdID, updates)
	}
	return nil
}

func (m *mockHouseholdRepository) DeleteHousehold(ctx context.Context, householdID int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, householdID)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock: store.ChoreRepository
// ─────────────────────────────────────────────

type mockChoreRepository struct {
	createFn         func(ctx context.Context, chore models.Chore) (models.Chore, error)
	getAllFn         func(ctx context.Context) ([]models.Chore, error)
	getByIDFn        func(ctx context.Context, choreID int64) (models.Chore, error)
	getByHouseholdFn func(ctx context.Context, householdID int64) ([]models.Chore, error)
	updateFn         func(ctx context.Context, choreID int64, updates map[string]any) error
	deleteFn         func(ctx context.Context, choreID int64) error
}

func (m *mockChoreRepository) CreateChore(ctx context.Context, chore models.Chore) (models.Chore, error) {
	if m.createFn != nil {
		return m.createFn(ctx, chore)
	}
	return chore, nil
}

func (m *mockChoreRepository) GetAllChores(ctx context.Context) ([]models.Chore, error) {
	if m.getAllFn != nil {
		return m.getAllFn(ctx)
	}
	return nil, nil
}

func (m *mockChoreRepository) GetChoreByID(ctx context.Context, choreID int64) (models.Chore, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, choreID)
	}
	return models.Chore{}, store.ErrChoreNotFound
}

func (m *mockChoreRepository) GetChoresByHousehold(ctx context.Context, householdID int64) ([]models.Chore, error) {
	if m.getByHouseholdFn != nil {
		return m.getByHouseholdFn(ctx, householdID)
	}
	return nil, nil
}

func (m *mockChoreRepository) UpdateChore(ctx context.Context, choreID int64, updates map[string]any) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, choreID, updates)
	}
	return nil
}

func (m *mockChoreRepository) DeleteChore(ctx context.Context, choreID int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, choreID)
	}
	return nil
}
