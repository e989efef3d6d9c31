// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"wardrobe/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAccountNotFound is a domain-specific error returned when an account is not found.
var ErrAccountNotFound = errors.New("account not found")

// ErrAccountConflict is returned by Create when the email is already taken.
// Callers decide whether that means "duplicate registration" or "lost a race".
var ErrAccountConflict = errors.New("account email already exists")

// AccountRepository defines the standard operations for account persistence.
type AccountRepository interface {
	// FindByID retrieves a single account by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindByEmail retrieves a single account by its email address.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)

	// FindByEmailPrimary is FindByEmail forced onto the primary database,
	// for reads that must observe a row another request just committed.
	FindByEmailPrimary(ctx context.Context, email string) (*entity.Account, error)

	// Create persists a new account and fills in its generated ID and timestamps.
	// The unique email index is the final arbiter: a collision returns ErrAccountConflict.
	Create(ctx context.Context, account *entity.Account) error

	// Update modifies an existing account in place.
	Update(ctx context.Context, account *entity.Account) error
}
