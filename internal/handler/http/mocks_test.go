package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fairshare/fairshare/internal/config"
	"github.com/fairshare/fairshare/internal/logger"
	"github.com/fairshare/fairshare/internal/service"
	"github.com/fairshare/fairshare/internal/store"
	"github.com/fairshare/fairshare/models"
)

// ─────────────────────────────────────────────
// Mock AuthService
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	loginFn       func(ctx context.Context, username, password string) (models.User, error)
	createTokenFn func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn  func(ctx context.Context, tokenString string) (models.Token, error)
	resolveUserFn func(ctx context.Context, token models.Token) (models.User, error)
}

func (m *mockAuthService) Login(ctx context.Context, username, password string) (models.User, error) {
	return m.loginFn(ctx, username, password)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if m.parseTokenFn == nil {
		return models.Token{}, service.ErrTokenIsExpiredOrInvalid
	}
	return m.parseTokenFn(ctx, tokenString)
}

func (m *mockAuthService) ResolveUser(ctx context.Context, token models.Token) (models.User, error) {
	if m.resolveUserFn == nil {
		return models.User{}, service.ErrTokenIsExpiredOrInvalid
	}
	return m.resolveUserFn(ctx, token)
}

// ─────────────────────────────────────────────
// Mock UserService
// ─────────────────────────────────────────────

type mockUserService struct {
	registerFn    func(ctx context.Context, username, password string) (models.User, error)
	getAllUsersFn func(ctx context.Context) ([]models.User, error)
	getUserFn     func(ctx context.Context, userID int64) (models.User, error)
	updateUserFn  func(ctx context.Context, userID int64, updates map[string]any) error
	deleteUserFn  func(ctx context.Context, userID int64) error
}

func (m *mockUserService) Register(ctx context.Context, username, password string) (models.User, error) {
	return m.registerFn(ctx, username, password)
}

func (m *mockUserService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	return m.getAllUsersFn(ctx)
}

func (m *mockUserService) GetUser(ctx context.Context, userID int64) (models.User, error) {
	if m.getUserFn == nil {
		return models.User{}, store.ErrUserNotFound
	}
	return m.getUserFn(ctx, userID)
}

func (m *mockUserService) UpdateUser(ctx context.Context, userID int64, updates map[string]any) error {
	return m.updateUserFn(ctx, userID, updates)
}

func (m *mockUserService) DeleteUser(ctx context.Context, userID int64) error {
	return m.deleteUserFn(ctx, userID)
}

// ─────────────────────────────────────────────
// Mock HouseholdService
// ─────────────────────────────────────────────

type mockHouseholdService struct {
	createHouseholdFn    func(ctx context.Context, household models.Household) (models.Household, error)
	getAllHouseholdsFn   func(ctx context.Context) ([]models.Household, error)
	getHouseholdFn       func(ctx context.Context, householdID int64) (models.Household, error)
	getHouseholdUsersFn  func(ctx context.Context, householdID int64) ([]models.User, error)
	getHouseholdChoresFn func(ctx context.Context, householdID int64) ([]models.Chore, error)
	updateHouseholdFn    func(ctx context.Context, householdID int64, updates map[string]any) error
	deleteHouseholdFn    func(ctx context.Context, householdID int64) error
}

func (m *mockHouseholdService) CreateHousehold(ctx context.Context, household models.Household) (models.Household, error) {
	return m.createHouseholdFn(ctx, household)
}

func (m *mockHouseholdService) GetAllHouseholds(ctx context.Context) ([]models.Household, error) {
	return m.getAllHouseholdsFn(ctx)
}

func (m *mockHouseholdService) GetHousehold(ctx context.Context, householdID int64) (models.Household, error) {
	if m.getHouseholdFn == nil {
		return models.Household{}, store.ErrHouseholdNotFound
	}
	return m.getHouseholdFn(ctx, householdID)
}

func (m *mockHouseholdService) GetHouseholdUsers(ctx context.Context, householdID int64) ([]models.User, error) {
	return m.getHouseholdUsersFn(ctx, householdID)
}

func (m *mockHouseholdService) GetHouseholdChores(ctx context.Context, householdID int64) ([]models.Chore, error) {
	return m.getHouseholdChoresFn(ctx, householdID)
}

func (m *mockHouseholdService) UpdateHousehold(ctx context.Context, householdID int64, updates map[string]any) error {
	return m.updateHouseholdFn(ctx, householdID, updates)
}

func (m *mockHouseholdService) DeleteHousehold(ctx context.Context, householdID int64) error {
	return m.deleteHouseholdFn(ctx, householdID)
}

// ─────────────────────────────────────────────
// Mock ChoreService
// ─────────────────────────────────────────────

type mockChoreService struct {
	createChoreFn  func(ctx context.Context, chore models.Chore) (models.Chore, error)
	getAllChoresFn func(ctx context.Context) ([]models.Chore, error)
	getChoreFn     func(ctx context.Context, choreID int64) (models.Chore, error)
	updateChoreFn  func(ctx context.Context, choreID int64, updates map[string]any) error
	deleteChoreFn  func(ctx context.Context, choreID int64) error
}

func (m *mockChoreService) CreateChore(ctx context.Context, chore models.Chore) (models.Chore, error) {
	return m.createChoreFn(ctx, chore)
}

func (m *mockChoreService) GetAllChores(ctx context.Context) ([]models.Chore, error) {
	return m.getAllChoresFn(ctx)
}

func (m *mockChoreService) GetChore(ctx context.Context, choreID int64) (models.Chore, error) {
	if m.getChoreFn == nil {
		return models.Chore{}, store.ErrChoreNotFound
	}
	return m.getChoreFn(ctx, choreID)
}

func (m *mockChoreService) UpdateChore(ctx context.Context, choreID int64, updates map[string]any) error {
	return m.updateChoreFn(ctx, choreID, updates)
}

func (m *mockChoreService) DeleteChore(ctx context.Context, choreID int64) error {
	return m.deleteChoreFn(ctx, choreID)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestHandler builds a Handler over the provided service mocks. Nil mocks
// are replaced with empty ones so unrelated routes still resolve.
func newTestHandler(t *testing.T, svcs *service.Services) *Handler {
	t.Helper()
	if svcs == nil {
		svcs = &service.Services{}
	}
	if svcs.AuthService == nil {
		svcs.AuthService = &mockAuthService{}
	}
	if svcs.UserService == nil {
		svcs.UserService = &mockUserService{}
	}
	if svcs.HouseholdService == nil {
		svcs.HouseholdService = &mockHouseholdService{}
	}
	if svcs.ChoreService == nil {
		svcs.ChoreService = &mockChoreService{}
	}
	return NewHandler(svcs, config.App{Environment: config.EnvDevelopment}, logger.Nop())
}

// jsonRequest builds an httptest request with a JSON body.
func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

// intPtr is a fixture helper for nullable id columns.
func intPtr(v int64) *int64 {
	return &v
}
