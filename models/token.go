package models

import "github.com/golang-jwt/jwt/v5"

// TokenClaims is the JWT claim set carried by every issued token.
//
// It embeds [jwt.RegisteredClaims] for the standard claims (iss, sub, iat,
// exp) and adds the custom "userid" claim so that the auth middleware can
// resolve the account without a username lookup. The subject claim holds
// the username.
type TokenClaims struct {
	jwt.RegisteredClaims

	// UserID is the internal identifier of the user the token was issued for.
	UserID int64 `json:"userid"`
}

// Token wraps a JWT token with convenience accessors for authentication flows.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted in HTTP headers.
// UserID and Subject are parsed copies of the corresponding claims,
// populated during issuance or verification.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	// Excluded from JSON serialization because only the compact string form
	// is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// UserID is the owner identifier extracted from the "userid" claim.
	UserID int64 `json:"-"`

	// Subject is the username extracted from the "sub" claim.
	Subject string `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
