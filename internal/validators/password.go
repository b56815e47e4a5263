// Package validators holds the pure request-validation logic of the API:
// the password policy applied at registration and the per-resource field
// schemas used by the HTTP handlers to check request bodies.
package validators

import (
	"strings"
	"unicode"
)

// passwordSpecials is the fixed set of characters accepted as the
// "special character" class by the password policy.
const passwordSpecials = "!@#$%^&"

// Password policy messages. Each rule has a fixed message so that clients
// can present the first violated rule verbatim.
const (
	msgPasswordTooShort    = "Password must be longer than 8 characters"
	msgPasswordTooLong     = "Password must be less than 72 characters"
	msgPasswordEdgeSpaces  = "Password must not start or end with empty spaces"
	msgPasswordComposition = "Password must contain 1 upper case, lower case, number and special character"
)

// ValidatePassword checks a candidate password against the registration
// policy. Rules are applied in order and the first failure wins:
//
//  1. at least 8 characters;
//  2. at most 72 characters (the bcrypt input limit);
//  3. no leading or trailing space;
//  4. at least one lower-case letter, one upper-case letter, one digit and
//     one of "!@#$%^&", with no whitespace anywhere in the string.
//
// Returns nil when the password satisfies every rule, otherwise a
// [ValidationError] carrying the message of the violated rule. The
// function is pure: no I/O, no logging, and the password never escapes.
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return &ValidationError{Message: msgPasswordTooShort}
	}
	if len(password) > 72 {
		return &ValidationError{Message: msgPasswordTooLong}
	}
	if strings.HasPrefix(password, " ") || strings.HasSuffix(password, " ") {
		return &ValidationError{Message: msgPasswordEdgeSpaces}
	}
	if !hasRequiredComposition(password) {
		return &ValidationError{Message: msgPasswordComposition}
	}

	return nil
}

// hasRequiredComposition reports whether the password contains every
// required character class and no whitespace at all.
func hasRequiredComposition(password string) bool {
	var lower, upper, digit, special bool

	for _, r := range password {
		switch {
		case unicode.IsSpace(r):
			return false
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		case strings.ContainsRune(passwordSpecials, r):
			special = true
		}
	}

	return lower && upper && digit && special
}
