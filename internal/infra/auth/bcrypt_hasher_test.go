package auth

import (
	"context"
	"strings"
	"testing"

	"wardrobe/config"
	"wardrobe/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestHasher() *bcryptHasher {
	return NewBcryptHasherWithCost(bcrypt.MinCost, 2).(*bcryptHasher)
}

func TestBcryptHasher_Hash(t *testing.T) {
	hasher := newTestHasher()
	ctx := context.Background()

	password := "password123"
	hash, err := hasher.Hash(ctx, password)
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	assert.True(t, hasher.Check(ctx, password, hash))
}

func TestBcryptHasher_ByteLimit(t *testing.T) {
	hasher := newTestHasher()
	ctx := context.Background()

	atLimit := strings.Repeat("é", service.MaxPasswordBytes/2)
	require.Len(t, atLimit, service.MaxPasswordBytes)

	hash, err := hasher.Hash(ctx, atLimit)
	require.NoError(t, err)
	assert.True(t, hasher.Check(ctx, atLimit, hash))

	_, err = hasher.Hash(ctx, atLimit+"a")
	assert.Error(t, err)
}

func TestBcryptHasher_HashIsSalted(t *testing.T) {
	hasher := newTestHasher()
	ctx := context.Background()

	first, err := hasher.Hash(ctx, "same-input")
	require.NoError(t, err)
	second, err := hasher.Hash(ctx, "same-input")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check(ctx, "same-input", first))
	assert.True(t, hasher.Check(ctx, "same-input", second))
}

func TestBcryptHasher_Check(t *testing.T) {
	hasher := newTestHasher()
	ctx := context.Background()

	hash, err := hasher.Hash(ctx, "correct horse")
	require.NoError(t, err)

	tests := []struct {
		name     string
		password string
		hash     string
		want     bool
	}{
		{name: "correct password", password: "correct horse", hash: hash, want: true},
		{name: "different password", password: "battery staple", hash: hash, want: false},
		{name: "empty password", password: "", hash: hash, want: false},
		{name: "malformed hash", password: "correct horse", hash: "invalid_hash", want: false},
		{name: "empty hash", password: "correct horse", hash: "", want: false},
		{name: "plaintext as hash", password: "correct horse", hash: "correct horse", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, hasher.Check(ctx, tt.password, tt.hash))
		})
	}
}

func TestBcryptHasher_CancelledContext(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost, 1).(*bcryptHasher)

	// Occupy the only slot so callers have to wait.
	require.NoError(t, hasher.slots.Acquire(context.Background(), 1))
	defer hasher.slots.Release(1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := hasher.Hash(ctx, "password123")
	assert.Error(t, err)
	assert.False(t, hasher.Check(ctx, "password123", "$2a$04$abcdefghijklmnopqrstuv"))
}

func TestBcryptHasher_Cost(t *testing.T) {
	t.Run("custom cost", func(t *testing.T) {
		hasher := NewBcryptHasherWithCost(6, 1)

		hash, err := hasher.Hash(context.Background(), "password123")
		require.NoError(t, err)

		cost, err := bcrypt.Cost([]byte(hash))
		require.NoError(t, err)
		assert.Equal(t, 6, cost)
	})

	t.Run("out of range cost falls back to default", func(t *testing.T) {
		hasher := NewBcryptHasherWithCost(99, 1).(*bcryptHasher)
		assert.Equal(t, bcrypt.DefaultCost, hasher.cost)
	})

	t.Run("from config", func(t *testing.T) {
		cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: 5, HashConcurrency: 3}}
		hasher := NewBcryptHasher(cfg).(*bcryptHasher)
		assert.Equal(t, 5, hasher.cost)
	})
}
