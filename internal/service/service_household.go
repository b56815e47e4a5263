package service

import (
	"context"
	"fmt"

	"github.com/fairshare/fairshare/internal/logger"
	"github.com/fairshare/fairshare/internal/store"
	"github.com/fairshare/fairshare/models"
)

// householdService is the concrete implementation of HouseholdService. It
// coordinates the household repository with the user and chore repositories
// for the household membership listings.
type householdService struct {
	householdRepository store.HouseholdRepository
	userRepository      store.UserRepository
	choreRepository     store.ChoreRepository
	logger              *logger.Logger
}

// NewHouseholdService constructs a HouseholdService wired to the given
// repositories.
func NewHouseholdService(
	householdRepository store.HouseholdRepository,
	userRepository store.UserRepository,
	choreRepository store.ChoreRepository,
	logger *logger.Logger,
) HouseholdService {
	return &householdService{
		householdRepository: householdRepository,
		userRepository:      userRepository,
		choreRepository:     choreRepository,
		logger:              logger,
	}
}

// CreateHousehold persists a new household.
func (s *householdService) CreateHousehold(ctx context.Context, household models.Household) (models.Household, error) {
	log := logger.FromContext(ctx)

	if household.Name == "" {
		return models.Household{}, ErrInvalidDataProvided
	}

	created, err := s.householdRepository.CreateHousehold(ctx, household)
	if err != nil {
		log.Err(err).Str("householdname", household.Name).Msg("household creation ended with error")
		return models.Household{}, fmt.Errorf("household creation ended with error: %w", err)
	}

	return created, nil
}

// GetAllHouseholds returns every household.
func (s *householdService) GetAllHouseholds(ctx context.Context) ([]models.Household, error) {
	households, err := s.householdRepository.GetAllHouseholds(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing households failed: %w", err)
	}

	return households, nil
}

// GetHousehold returns a single household by id. Passes through
// store.ErrHouseholdNotFound for unknown ids.
func (s *householdService) GetHousehold(ctx context.Context, householdID int64) (models.Household, error) {
	return s.householdRepository.GetHouseholdByID(ctx, householdID)
}

// GetHouseholdUsers returns the members of a household. The household must
// already be known to exist; an unknown id simply yields an empty list.
func (s *householdService) GetHouseholdUsers(ctx context.Context, householdID int64) ([]models.User, error) {
	users, err := s.userRepository.GetUsersByHousehold(ctx, householdID)
	if err != nil {
		return nil, fmt.Errorf("listing household users failed: %w", err)
	}

	return users, nil
}

// GetHouseholdChores returns the chores of a household. The household must
// already be known to exist; an unknown id simply yields an empty list.
func (s *householdService) GetHouseholdChores(ctx context.Context, householdID int64) ([]models.Chore, error) {
	chores, err := s.choreRepository.GetChoresByHousehold(ctx, householdID)
	if err != nil {
		return nil, fmt.Errorf("listing household chores failed: %w", err)
	}

	return chores, nil
}

// UpdateHousehold applies a validated partial update to a household record.
// Passes through store.ErrHouseholdNotFound.
func (s *householdService) UpdateHousehold(ctx context.Context, householdID int64, updates map[string]any) error {
	return s.householdRepository.UpdateHousehold(ctx, householdID, updates)
}

// DeleteHousehold removes a household. The schema's referential actions
// delete its chores and detach its members. Passes through
// store.ErrHouseholdNotFound.
func (s *householdService) DeleteHousehold(ctx context.Context, householdID int64) error {
	return s.householdRepository.DeleteHousehold(ctx, householdID)
}
