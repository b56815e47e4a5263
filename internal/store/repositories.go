package store

import (
	"github.com/fairshare/fairshare/internal/logger"
)

// Repositories bundles all persistence interfaces behind a single value that
// the service layer receives at startup.
type Repositories struct {
	UserRepository      UserRepository
	HouseholdRepository HouseholdRepository
	ChoreRepository     ChoreRepository
}

// NewRepositories constructs the full repository set backed by db.
func NewRepositories(db *DB, log *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository:      NewUserRepository(db, log),
		HouseholdRepository: NewHouseholdRepository(db, log),
		ChoreRepository:     NewChoreRepository(db, log),
	}
}
