// Package auth holds the credential type threaded through every store
// operation and the password hashing helpers behind local profiles.
package auth

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// ErrUnauthorized is returned when login fails. Callers surface it as a
// login prompt, never as a distinct "wrong password" vs "no such user"
// message.
var ErrUnauthorized = errors.New("unauthorized")

// MinPasswordLength is the minimum accepted password length.
const MinPasswordLength = 8

// Credentials identify the authenticated user. Every deck and card
// operation takes Credentials explicitly; there is no ambient auth
// context or global current-user lookup.
type Credentials struct {
	UserID uuid.UUID
}

// ValidatePassword checks password policy before hashing.
func ValidatePassword(password string) error {
	if len(password) < MinPasswordLength {
		return fmt.Errorf("password must be at least %d characters", MinPasswordLength)
	}
	return nil
}

// HashPassword returns the bcrypt hash of a password.
func HashPassword(password string) (string, error) {
	if err := ValidatePassword(password); err != nil {
		return "", err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword compares a stored hash with a login attempt. Returns
// ErrUnauthorized on mismatch.
func CheckPassword(hash, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return ErrUnauthorized
	}
	return nil
}
