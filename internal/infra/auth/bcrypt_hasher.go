// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/sha256"
	"encoding/hex"

	"harvest/config"
	"harvest/internal/domain/service"

	"golang.org/x/crypto/bcrypt"
)

// bcryptHasher is a concrete implementation of the TokenHasher interface using bcrypt.
// Tokens are digested with SHA-256 first because bcrypt only reads 72 bytes of input
// and a signed JWT is far longer.
type bcryptHasher struct {
	cost int
}

// NewBcryptHasher is the constructor for bcryptHasher.
// It returns the implementation as a service.TokenHasher interface.
func NewBcryptHasher(cfg *config.Config) service.TokenHasher {
	cost := bcrypt.DefaultCost
	if cfg != nil && cfg.Auth != nil && cfg.Auth.BcryptCost >= bcrypt.MinCost && cfg.Auth.BcryptCost <= bcrypt.MaxCost {
		cost = cfg.Auth.BcryptCost
	}

	return &bcryptHasher{cost: cost}
}

// Hash generates a salted hash of the token digest.
func (h *bcryptHasher) Hash(token string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword(digest(token), h.cost)

	return string(bytes), err
}

// Check compares a plaintext token with a stored hash.
func (h *bcryptHasher) Check(token, hash string) bool {
	if token == "" || hash == "" {
		return false
	}

	return bcrypt.CompareHashAndPassword([]byte(hash), digest(token)) == nil
}

func digest(token string) []byte {
	sum := sha256.Sum256([]byte(token))

	return []byte(hex.EncodeToString(sum[:]))
}
