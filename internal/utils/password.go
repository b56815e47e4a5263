package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// bcryptCost is the fixed work factor used for every stored password hash.
const bcryptCost = 12

// HashPassword derives a salted bcrypt hash from a plaintext password.
// The plaintext never leaves this function: it is not logged and not
// included in the returned error.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// ComparePasswords reports whether the plaintext password matches the
// stored bcrypt hash. bcrypt performs the comparison in constant time
// with respect to the password content.
func ComparePasswords(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
