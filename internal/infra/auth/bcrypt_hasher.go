// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"context"
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/semaphore"

	"wardrobe/config"
	"wardrobe/internal/domain/service"
)

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
// Hashing is CPU bound, so a weighted semaphore caps how many run at once.
type bcryptHasher struct {
	cost  int
	slots *semaphore.Weighted
}

// NewBcryptHasher is the constructor for bcryptHasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost, concurrency := bcrypt.DefaultCost, 0
	if cfg != nil && cfg.Auth != nil {
		cost = cfg.Auth.BcryptCost
		concurrency = cfg.Auth.HashConcurrency
	}

	return NewBcryptHasherWithCost(cost, concurrency)
}

// NewBcryptHasherWithCost builds a hasher with an explicit cost and concurrency limit.
// Out-of-range costs fall back to bcrypt.DefaultCost; a non-positive limit means GOMAXPROCS.
func NewBcryptHasherWithCost(cost, concurrency int) service.PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	if concurrency <= 0 {
		concurrency = runtime.GOMAXPROCS(0)
	}

	return &bcryptHasher{
		cost:  cost,
		slots: semaphore.NewWeighted(int64(concurrency)),
	}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// bcrypt automatically handles salt generation.
func (h *bcryptHasher) Hash(ctx context.Context, password string) (string, error) {
	if err := h.slots.Acquire(ctx, 1); err != nil {
		return "", errors.Wrap(err, "waiting for hashing slot")
	}
	defer h.slots.Release(1)

	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", errors.Wrap(err, "bcrypt.GenerateFromPassword")
	}

	return string(bytes), nil
}

// Check compares a plaintext password with a bcrypt hash.
// CompareHashAndPassword compares digests in constant time.
func (h *bcryptHasher) Check(ctx context.Context, password, hash string) bool {
	if err := h.slots.Acquire(ctx, 1); err != nil {
		return false
	}
	defer h.slots.Release(1)

	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
