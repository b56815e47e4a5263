package service

import (
	"github.com/fairshare/fairshare/internal/config"
	"github.com/fairshare/fairshare/internal/logger"
	"github.com/fairshare/fairshare/internal/store"
)

// Services bundles all business-logic interfaces behind a single value that
// the transport layer receives at startup.
type Services struct {
	AuthService      AuthService
	UserService      UserService
	HouseholdService HouseholdService
	ChoreService     ChoreService
}

// NewServices constructs the full service set on top of the repository set.
func NewServices(repositories *store.Repositories, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:      NewAuthService(repositories.UserRepository, cfg.Auth, logger),
		UserService:      NewUserService(repositories.UserRepository, logger),
		HouseholdService: NewHouseholdService(repositories.HouseholdRepository, repositories.UserRepository, repositories.ChoreRepository, logger),
		ChoreService:     NewChoreService(repositories.ChoreRepository, logger),
	}
}
