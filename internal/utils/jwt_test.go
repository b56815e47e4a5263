package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fairshare/fairshare/models"
)

const (
	testIssuer  = "fairshare-test"
	testSignKey = "test-sign-key"
)

func TestGenerateJWTToken_RoundTrip(t *testing.T) {
	issued, err := GenerateJWTToken(testIssuer, "u1", 42, time.Hour, testSignKey)
	require.NoError(t, err)
	require.NotEmpty(t, issued.SignedString)

	parsed, err := ValidateAndParseJWTToken(issued.SignedString, testSignKey, testIssuer)
	require.NoError(t, err)
	assert.Equal(t, int64(42), parsed.UserID)
	assert.Equal(t, "u1", parsed.Subject)
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		subject  string
		duration time.Duration
		signKey  string
	}{
		{name: "empty issuer", subject: "u1", duration: time.Hour, signKey: testSignKey},
		{name: "empty subject", issuer: testIssuer, duration: time.Hour, signKey: testSignKey},
		{name: "zero duration", issuer: testIssuer, subject: "u1", signKey: testSignKey},
		{name: "empty sign key", issuer: testIssuer, subject: "u1", duration: time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, tt.subject, 42, tt.duration, tt.signKey)
			assert.Error(t, err)
		})
	}
}

func TestValidateAndParseJWTToken_Failures(t *testing.T) {
	issued, err := GenerateJWTToken(testIssuer, "u1", 42, time.Hour, testSignKey)
	require.NoError(t, err)

	t.Run("wrong sign key", func(t *testing.T) {
		_, err := ValidateAndParseJWTToken(issued.SignedString, "other-key", testIssuer)
		assert.Error(t, err)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		_, err := ValidateAndParseJWTToken(issued.SignedString, testSignKey, "someone-else")
		assert.Error(t, err)
	})

	t.Run("malformed token", func(t *testing.T) {
		_, err := ValidateAndParseJWTToken("not.a.jwt", testSignKey, testIssuer)
		assert.Error(t, err)
	})

	t.Run("expired token", func(t *testing.T) {
		expired, err := GenerateJWTToken(testIssuer, "u1", 42, -time.Minute, testSignKey)
		require.NoError(t, err)

		_, err = ValidateAndParseJWTToken(expired.SignedString, testSignKey, testIssuer)
		assert.Error(t, err)
	})

	t.Run("algorithm other than HS256 rejected", func(t *testing.T) {
		claims := &models.TokenClaims{
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    testIssuer,
				Subject:   "u1",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
			UserID: 42,
		}
		token := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
		signed, err := token.SignedString([]byte(testSignKey))
		require.NoError(t, err)

		_, err = ValidateAndParseJWTToken(signed, testSignKey, testIssuer)
		assert.Error(t, err)
	})

	t.Run("missing userid claim rejected", func(t *testing.T) {
		claims := &jwt.RegisteredClaims{
			Issuer:    testIssuer,
			Subject:   "u1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
		signed, err := token.SignedString([]byte(testSignKey))
		require.NoError(t, err)

		_, err = ValidateAndParseJWTToken(signed, testSignKey, testIssuer)
		assert.Error(t, err)
	})
}

func TestParseBearerToken_TableTest(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		wantToken string
		wantErr   bool
	}{
		{name: "standard bearer header", header: "Bearer abc.def.ghi", wantToken: "abc.def.ghi"},
		{name: "lower-case scheme accepted", header: "bearer tok", wantToken: "tok"},
		{name: "mixed-case scheme accepted", header: "BeArEr tok", wantToken: "tok"},
		{name: "wrong scheme rejected", header: "Token abc", wantErr: true},
		{name: "basic scheme rejected", header: "Basic dXNlcjpwYXNz", wantErr: true},
		{name: "empty header rejected", header: "", wantErr: true},
		{name: "scheme without token rejected", header: "Bearer ", wantErr: true},
		{name: "no space after scheme rejected", header: "Bearertok", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := ParseBearerToken(tt.header)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}
