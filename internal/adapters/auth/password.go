// Package auth implements password hashing and bearer tokens for accounts.
package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/jsamuelsen/quotevault/internal/domain"
	"github.com/jsamuelsen/quotevault/internal/ports"
)

// DefaultCost is the bcrypt work factor for new digests.
const DefaultCost = 10

// BcryptHasher implements ports.PasswordHasher.
type BcryptHasher struct {
	cost int
}

var _ ports.PasswordHasher = (*BcryptHasher)(nil)

// NewBcryptHasher returns a hasher using cost, or DefaultCost when cost is
// outside bcrypt's accepted range.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}

	return &BcryptHasher{cost: cost}
}

// Hash digests password. Passwords over bcrypt's 72 byte limit are a
// validation error.
func (h *BcryptHasher) Hash(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", domain.NewValidationError("password", "must be at most 72 bytes")
	}

	if err != nil {
		return "", fmt.Errorf("bcrypt: %w", err)
	}

	return string(digest), nil
}

// Verify reports whether password matches hash. Malformed digests never match.
func (h *BcryptHasher) Verify(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
