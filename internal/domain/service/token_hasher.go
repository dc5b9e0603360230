// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// TokenHasher hashes long-lived secrets such as refresh tokens before they are stored.
type TokenHasher interface {
	// Hash generates a salted hash of the token.
	Hash(token string) (string, error)

	// Check compares a plaintext token with a stored hash.
	Check(token, hash string) bool
}
