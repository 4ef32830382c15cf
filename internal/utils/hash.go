package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword derives a bcrypt hash from the given plaintext password
// using the library's default cost factor.
//
// Returns the encoded hash string ready for storage, or a wrapped error if
// hashing fails (e.g. the password exceeds bcrypt's 72-byte limit).
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// CheckPassword compares a stored bcrypt hash against a candidate plaintext
// password.
//
// Returns true only when the password matches the hash. Any comparison
// failure (mismatch, malformed hash) yields false; callers treat all
// failures identically and must not distinguish between them.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
