package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword hashes a plain-text password with bcrypt using the default
// cost. bcrypt generates a fresh random salt on every call, so hashing the
// same password twice yields two different hash strings; both verify
// correctly via [VerifyPassword].
//
// The returned string is the standard bcrypt encoding ($2a$...) and fits
// the password_hash column.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// VerifyPassword reports whether password is the plaintext that produced
// hash. A malformed or legacy stored hash is treated as a mismatch, never
// as an error: corrupted data must not turn a login attempt into a crash.
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
