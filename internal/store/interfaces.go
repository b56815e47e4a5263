package store

import (
	"context"

	"github.com/fairshare/fairshare/models"
)

// UserRepository provides persistence operations for the fs_users table.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	GetAllUsers(ctx context.Context) ([]models.User, error)
	GetUserByID(ctx context.Context, userID int64) (models.User, error)
	GetUserByUsername(ctx context.Context, username string) (models.User, error)
	GetUsersByHousehold(ctx context.Context, householdID int64) ([]models.User, error)
	UpdateUser(ctx context.Context, userID int64, updates map[string]any) error
	DeleteUser(ctx context.Context, userID int64) error
}

// HouseholdRepository provides persistence operations for the fs_households
// table.
type HouseholdRepository interface {
	CreateHousehold(ctx context.Context, household models.Household) (models.Household, error)
	GetAllHouseholds(ctx context.Context) ([]models.Household, error)
	GetHouseholdByID(ctx context.Context, householdID int64) (models.Household, error)
	UpdateHousehold(ctx context.Context, householdID int64, updates map[string]any) error
	DeleteHousehold(ctx context.Context, householdID int64) error
}

// ChoreRepository provides persistence operations for the fs_chores table.
type ChoreRepository interface {
	CreateChore(ctx context.Context, chore models.Chore) (models.Chore, error)
	GetAllChores(ctx context.Context) ([]models.Chore, error)
	GetChoreByID(ctx context.Context, choreID int64) (models.Chore, error)
	GetChoresByHousehold(ctx context.Context, householdID int64) ([]models.Chore, error)
	UpdateChore(ctx context.Context, choreID int64, updates map[string]any) error
	DeleteChore(ctx context.Context, choreID int64) error
}
