package service

import (
	"context"

	"github.com/fairshare/fairshare/models"
)

// AuthService handles credential verification and the JWT token lifecycle.
type AuthService interface {
	Login(ctx context.Context, username, password string) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	ResolveUser(ctx context.Context, token models.Token) (models.User, error)
}

// UserService manages user accounts.
type UserService interface {
	Register(ctx context.Context, username, password string) (models.User, error)
	GetAllUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, userID int64) (models.User, error)
	UpdateUser(ctx context.Context, userID int64, updates map[string]any) error
	DeleteUser(ctx context.Context, userID int64) error
}

// HouseholdService manages households and their associations.
type HouseholdService interface {
	CreateHousehold(ctx context.Context, household models.Household) (models.Household, error)
	GetAllHouseholds(ctx context.Context) ([]models.Household, error)
	GetHousehold(ctx context.Context, householdID int64) (models.Household, error)
	GetHouseholdUsers(ctx context.Context, householdID int64) ([]models.User, error)
	GetHouseholdChores(ctx context.Context, householdID int64) ([]models.Chore, error)
	UpdateHousehold(ctx context.Context, householdID int64, updates map[string]any) error
	DeleteHousehold(ctx context.Context, householdID int64) error
}

// ChoreService manages chores.
type ChoreService interface {
	CreateChore(ctx context.Context, chore models.Chore) (models.Chore, error)
	GetAllChores(ctx context.Context) ([]models.Chore, error)
	GetChore(ctx context.Context, choreID int64) (models.Chore, error)
	UpdateChore(ctx context.Context, choreID int64, updates map[string]any) error
	DeleteChore(ctx context.Context, choreID int64) error
}
