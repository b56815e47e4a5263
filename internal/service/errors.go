package service

import "errors"

var (
	// ErrInvalidDataProvided is returned when a service method receives
	// arguments that fail basic validation (e.g. empty username).
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials is returned by Login when the username is
	// unknown or the password does not match. Both cases collapse into one
	// error so callers cannot distinguish them.
	ErrInvalidCredentials = errors.New("incorrect user name or password")

	// ErrUsernameTaken is returned by Register when the requested username
	// already belongs to another account.
	ErrUsernameTaken = errors.New("username already taken")

	// ErrTokenCreationFailed is returned when signing a new JWT fails.
	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrTokenIsExpiredOrInvalid is the normalised error for every JWT
	// validation failure (expired, wrong issuer, malformed, bad signature).
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
)
