package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fairshare/fairshare/internal/apiclient"
	"github.com/fairshare/fairshare/internal/service"
	"github.com/fairshare/fairshare/models"
)

// newTestServer starts an httptest server over the full route tree, with the
// auth mock accepting the token "stub-token" as user 7.
func newTestServer(t *testing.T, svcs *service.Services) *httptest.Server {
	t.Helper()

	if svcs == nil {
		svcs = &service.Services{}
	}
	if svcs.AuthService == nil {
		svcs.AuthService = &mockAuthService{
			parseTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
				if tokenString != "stub-token" {
					return models.Token{}, service.ErrTokenIsExpiredOrInvalid
				}
				return models.Token{SignedString: tokenString, UserID: 7, Subject: "alice"}, nil
			},
			resolveUserFn: func(_ context.Context, token models.Token) (models.User, error) {
				return models.User{UserID: token.UserID, Username: token.Subject}, nil
			},
		}
	}

	h := newTestHandler(t, svcs)
	srv := httptest.NewServer(h.Init())
	t.Cleanup(srv.Close)
	return srv
}

// Every API route behind the auth group must reject a request that carries no
// token, a token in the wrong scheme, or an unknown token, always with the
// same generic body.
func TestRoutes_ProtectedRoutesRejectBadAuth(t *testing.T) {
	srv := newTestServer(t, nil)

	headers := []struct {
		name  string
		value string
	}{
		{name: "no header", value: ""},
		{name: "wrong scheme", value: "Token abc"},
		{name: "empty bearer", value: "Bearer "},
		{name: "unknown token", value: "Bearer forged-token"},
	}

	paths := []string{
		"/api/users",
		"/api/users/7",
		"/api/households",
		"/api/chores",
	}

	for _, header := range headers {
		for _, path := range paths {
			t.Run(header.name+" "+path, func(t *testing.T) {
				req, err := http.NewRequest(http.MethodGet, srv.URL+path, nil)
				require.NoError(t, err)
				if header.value != "" {
					req.Header.Set("Authorization", header.value)
				}

				resp, err := srv.Client().Do(req)
				require.NoError(t, err)
				defer resp.Body.Close()

				assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
			})
		}
	}
}

func TestRoutes_HealthIsPublic(t *testing.T) {
	srv := newTestServer(t, nil)

	resp, err := srv.Client().Get(srv.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Trace-ID"))
}

// Round trip through the full middleware chain using the API client.
func TestRoutes_ClientRoundTrip(t *testing.T) {
	users := &mockUserService{
		registerFn: func(_ context.Context, username, _ string) (models.User, error) {
			return models.User{UserID: 7, Username: username}, nil
		},
		getAllUsersFn: func(_ context.Context) ([]models.User, error) {
			return []models.User{{UserID: 7, Username: "alice"}}, nil
		},
		getUserFn: func(_ context.Context, userID int64) (models.User, error) {
			return models.User{UserID: userID, Username: "alice"}, nil
		},
		updateUserFn: func(_ context.Context, _ int64, _ map[string]any) error {
			return nil
		},
	}
	auth := &mockAuthService{
		loginFn: func(_ context.Context, username, _ string) (models.User, error) {
			return models.User{UserID: 7, Username: username}, nil
		},
		createTokenFn: func(_ context.Context, user models.User) (models.Token, error) {
			return models.Token{SignedString: "stub-token", UserID: user.UserID}, nil
		},
		parseTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
			if tokenString != "stub-token" {
				return models.Token{}, service.ErrTokenIsExpiredOrInvalid
			}
			return models.Token{SignedString: tokenString, UserID: 7, Subject: "alice"}, nil
		},
		resolveUserFn: func(_ context.Context, token models.Token) (models.User, error) {
			return models.User{UserID: token.UserID, Username: token.Subject}, nil
		},
	}

	srv := newTestServer(t, &service.Services{AuthService: auth, UserService: users})
	client := apiclient.New(apiclient.Config{BaseURL: srv.URL})
	ctx := context.Background()

	// before login, protected routes map to ErrUnauthorized
	_, err := client.ListUsers(ctx)
	require.ErrorIs(t, err, apiclient.ErrUnauthorized)

	registered, err := client.Register(ctx, "alice", "Str0ng!Pass")
	require.NoError(t, err)
	assert.Equal(t, int64(7), registered.UserID)

	login, err := client.Login(ctx, "alice", "Str0ng!Pass")
	require.NoError(t, err)
	assert.Equal(t, "stub-token", client.Token())
	assert.Equal(t, "alice", login.User.Username)

	listed, err := client.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "alice", listed[0].Username)

	fetched, err := client.GetUser(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), fetched.UserID)

	require.NoError(t, client.UpdateUser(ctx, 7, map[string]any{"username": "bob"}))
}

// Unknown records surface as ErrNotFound through the client.
func TestRoutes_ClientNotFound(t *testing.T) {
	srv := newTestServer(t, nil)
	client := apiclient.New(apiclient.Config{BaseURL: srv.URL})
	client.SetToken("stub-token")

	_, err := client.GetUser(context.Background(), 42)
	require.ErrorIs(t, err, apiclient.ErrNotFound)
	assert.ErrorContains(t, err, "User does not exist")
}
