// Package apiclient is a Go client for the fair-share REST API.
//
// The client wraps a resty HTTP client, handles JSON serialisation and the
// bearer token lifecycle, and maps error responses to the sentinel values in
// errors.go so callers can use [errors.Is] instead of inspecting status codes.
package apiclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/fairshare/fairshare/models"
)

// Config carries the connection settings of a [Client].
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client talks to one fair-share server. It is safe for concurrent use; the
// bearer token captured by Login is shared by all subsequent requests.
type Client struct {
	client *resty.Client

	mu    sync.RWMutex
	token string
}

// New builds a client for the server at cfg.BaseURL.
func New(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8000"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &Client{client: cli}
}

// SetToken stores the bearer token attached to all subsequent authenticated
// requests. Login calls it automatically.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = strings.TrimSpace(token)
}

// Token returns the stored bearer token, or "" before any login.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// Register creates a new account. It does not log the account in.
func (c *Client) Register(ctx context.Context, username, password string) (models.UserResponse, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"username": username, "password": password}).
		Post("/api/users")
	if err != nil {
		return models.UserResponse{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserResponse{}, err
	}

	var user models.UserResponse
	if err = json.Unmarshal(resp.Body(), &user); err != nil {
		return models.UserResponse{}, fmt.Errorf("decode register response: %w", err)
	}
	return user, nil
}

// Login authenticates and stores the returned bearer token on the client.
func (c *Client) Login(ctx context.Context, username, password string) (models.LoginResponse, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"username": username, "password": password}).
		Post("/api/auth/login")
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResponse{}, err
	}

	var login models.LoginResponse
	if err = json.Unmarshal(resp.Body(), &login); err != nil {
		return models.LoginResponse{}, fmt.Errorf("decode login response: %w", err)
	}

	c.SetToken(login.AuthToken)
	return login, nil
}

// ─── users ───

func (c *Client) ListUsers(ctx context.Context) ([]models.UserResponse, error) {
	var users []models.UserResponse
	return users, c.getJSON(ctx, "/api/users", &users)
}

func (c *Client) GetUser(ctx context.Context, userID int64) (models.UserResponse, error) {
	var user models.UserResponse
	return user, c.getJSON(ctx, fmt.Sprintf("/api/users/%d", userID), &user)
}

func (c *Client) UpdateUser(ctx context.Context, userID int64, updates map[string]any) error {
	return c.patch(ctx, fmt.Sprintf("/api/users/%d", userID), updates)
}

func (c *Client) DeleteUser(ctx context.Context, userID int64) error {
	return c.delete(ctx, fmt.Sprintf("/api/users/%d", userID))
}

// ─── households ───

func (c *Client) CreateHousehold(ctx context.Context, name string) (models.HouseholdResponse, error) {
	var household models.HouseholdResponse
	return household, c.postJSON(ctx, "/api/households", map[string]string{"householdname": name}, &household)
}

func (c *Client) ListHouseholds(ctx context.Context) ([]models.HouseholdResponse, error) {
	var households []models.HouseholdResponse
	return households, c.getJSON(ctx, "/api/households", &households)
}

func (c *Client) GetHousehold(ctx context.Context, householdID int64) (models.HouseholdResponse, error) {
	var household models.HouseholdResponse
	return household, c.getJSON(ctx, fmt.Sprintf("/api/households/%d", householdID), &household)
}

func (c *Client) UpdateHousehold(ctx context.Context, householdID int64, updates map[string]any) error {
	return c.patch(ctx, fmt.Sprintf("/api/households/%d", householdID), updates)
}

func (c *Client) DeleteHousehold(ctx context.Context, householdID int64) error {
	return c.delete(ctx, fmt.Sprintf("/api/households/%d", householdID))
}

// HouseholdUsers lists the members of one household.
func (c *Client) HouseholdUsers(ctx context.Context, householdID int64) ([]models.UserResponse, error) {
	var users []models.UserResponse
	return users, c.getJSON(ctx, fmt.Sprintf("/api/households/%d/users", householdID), &users)
}

// HouseholdChores lists the chores of one household.
func (c *Client) HouseholdChores(ctx context.Context, householdID int64) ([]models.ChoreResponse, error) {
	var chores []models.ChoreResponse
	return chores, c.getJSON(ctx, fmt.Sprintf("/api/households/%d/chores", householdID), &chores)
}

// ─── chores ───

// CreateChore adds a chore to a household; assignee may be nil.
func (c *Client) CreateChore(ctx context.Context, name string, householdID int64, assignee *int64) (models.ChoreResponse, error) {
	body := map[string]any{"chorename": name, "chorehousehold": householdID}
	if assignee != nil {
		body["choreuser"] = *assignee
	}

	var chore models.ChoreResponse
	return chore, c.postJSON(ctx, "/api/chores", body, &chore)
}

func (c *Client) ListChores(ctx context.Context) ([]models.ChoreResponse, error) {
	var chores []models.ChoreResponse
	return chores, c.getJSON(ctx, "/api/chores", &chores)
}

func (c *Client) GetChore(ctx context.Context, choreID int64) (models.ChoreResponse, error) {
	var chore models.ChoreResponse
	return chore, c.getJSON(ctx, fmt.Sprintf("/api/chores/%d", choreID), &chore)
}

func (c *Client) UpdateChore(ctx context.Context, choreID int64, updates map[string]any) error {
	return c.patch(ctx, fmt.Sprintf("/api/chores/%d", choreID), updates)
}

func (c *Client) DeleteChore(ctx context.Context, choreID int64) error {
	return c.delete(ctx, fmt.Sprintf("/api/chores/%d", choreID))
}

// ─── request plumbing ───

func (c *Client) authedRequest(ctx context.Context) *resty.Request {
	req := c.client.R().SetContext(ctx)
	if token := c.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	resp, err := c.authedRequest(ctx).Get(path)
	if err != nil {
		return fmt.Errorf("get %s: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}
	if err = json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}

func (c *Client) postJSON(ctx context.Context, path string, body, out any) error {
	resp, err := c.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(path)
	if err != nil {
		return fmt.Errorf("post %s: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}
	if err = json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}

func (c *Client) patch(ctx context.Context, path string, updates map[string]any) error {
	resp, err := c.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(updates).
		Patch(path)
	if err != nil {
		return fmt.Errorf("patch %s: %w", path, err)
	}
	return mapHTTPError(resp)
}

func (c *Client) delete(ctx context.Context, path string) error {
	resp, err := c.authedRequest(ctx).Delete(path)
	if err != nil {
		return fmt.Errorf("delete %s: %w", path, err)
	}
	return mapHTTPError(resp)
}

// mapHTTPError converts a non-2xx response into a sentinel or a descriptive
// error carrying the server's error message.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	var body models.ErrorResponse
	_ = json.Unmarshal(resp.Body(), &body)
	message := body.Error
	if message == "" {
		message = http.StatusText(resp.StatusCode())
	}

	switch resp.StatusCode() {
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, message)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, message)
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, message)
	default:
		return fmt.Errorf("http %d: %s", resp.StatusCode(), message)
	}
}
