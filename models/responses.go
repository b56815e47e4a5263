package models

import "github.com/fairshare/fairshare/internal/sanitize"

// Response shapes returned by the HTTP layer. Serialization is where
// output encoding happens: user-supplied text fields are sanitized here so
// that stored XSS payloads are neutralised on the way out while the stored
// data keeps its original form.

// UserResponse is the public representation of a user. The password hash
// is deliberately absent.
type UserResponse struct {
	UserID        int64  `json:"userid"`
	Username      string `json:"username"`
	Household     *int64 `json:"userhousehold"`
	Administrator bool   `json:"administrator"`
}

// SerializeUser converts a stored user into its sanitized public form.
func SerializeUser(u User) UserResponse {
	return UserResponse{
		UserID:        u.UserID,
		Username:      sanitize.String(u.Username),
		Household:     u.Household,
		Administrator: u.Administrator,
	}
}

// HouseholdResponse is the public representation of a household.
type HouseholdResponse struct {
	HouseholdID int64  `json:"householdid"`
	Name        string `json:"householdname"`
}

// SerializeHousehold converts a stored household into its sanitized public form.
func SerializeHousehold(h Household) HouseholdResponse {
	return HouseholdResponse{
		HouseholdID: h.HouseholdID,
		Name:        sanitize.String(h.Name),
	}
}

// ChoreResponse is the public representation of a chore.
type ChoreResponse struct {
	ChoreID      int64  `json:"choreid"`
	Name         string `json:"chorename"`
	Household    int64  `json:"chorehousehold"`
	AssignedUser *int64 `json:"choreuser"`
}

// SerializeChore converts a stored chore into its sanitized public form.
func SerializeChore(c Chore) ChoreResponse {
	return ChoreResponse{
		ChoreID:      c.ChoreID,
		Name:         sanitize.String(c.Name),
		Household:    c.Household,
		AssignedUser: c.AssignedUser,
	}
}

// LoginUser is the subset of account fields returned by a successful login.
type LoginUser struct {
	UserID    int64  `json:"userid"`
	Username  string `json:"username"`
	Household *int64 `json:"userhousehold"`
}

// LoginResponse is the body of a successful POST /api/auth/login.
type LoginResponse struct {
	User      LoginUser `json:"user"`
	AuthToken string    `json:"authToken"`
}

// ErrorResponse is the uniform error body returned by every failing route.
type ErrorResponse struct {
	Error string `json:"error"`
}
