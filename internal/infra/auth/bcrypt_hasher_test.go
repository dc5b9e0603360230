package auth

import (
	"strings"
	"testing"

	"harvest/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestHasher() *bcryptHasher {
	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost}}

	return NewBcryptHasher(cfg).(*bcryptHasher)
}

func TestBcryptHasher_Hash(t *testing.T) {
	hasher := newTestHasher()

	token := "refresh-token-value"
	hash, err := hasher.Hash(token)
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, token, hash)

	assert.True(t, hasher.Check(token, hash))
}

func TestBcryptHasher_HashLongToken(t *testing.T) {
	hasher := newTestHasher()

	// Signed JWTs are several hundred bytes, beyond bcrypt's 72 byte limit.
	long := strings.Repeat("a", 500)
	hash, err := hasher.Hash(long)
	require.NoError(t, err)

	assert.True(t, hasher.Check(long, hash))
	// Differs only after byte 72; must not collide.
	assert.False(t, hasher.Check(strings.Repeat("a", 499)+"b", hash))
}

func TestBcryptHasher_Check(t *testing.T) {
	hasher := newTestHasher()
	token := "refresh-token-value"

	hash, err := hasher.Hash(token)
	require.NoError(t, err)

	assert.True(t, hasher.Check(token, hash))
	assert.False(t, hasher.Check("another-token", hash))
	assert.False(t, hasher.Check("", hash))
	assert.False(t, hasher.Check(token, ""))
	assert.False(t, hasher.Check(token, "invalid_hash"))
}

func TestNewBcryptHasher_Cost(t *testing.T) {
	tests := []struct {
		name string
		cfg  *config.Config
		want int
	}{
		{name: "nil config", cfg: nil, want: bcrypt.DefaultCost},
		{name: "configured", cfg: &config.Config{Auth: &config.AuthConfig{BcryptCost: 12}}, want: 12},
		{name: "out of range", cfg: &config.Config{Auth: &config.AuthConfig{BcryptCost: 99}}, want: bcrypt.DefaultCost},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hasher := NewBcryptHasher(tt.cfg).(*bcryptHasher)
			assert.Equal(t, tt.want, hasher.cost)
		})
	}
}
