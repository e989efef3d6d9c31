package repository

import (
	"context"
	"errors"

	"wardrobe/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrBiometricProfileNotFound is returned when an account has not submitted a profile yet.
var ErrBiometricProfileNotFound = errors.New("biometric profile not found")

// ErrBiometricProfileConflict is returned by Create when the account already owns a profile.
var ErrBiometricProfileConflict = errors.New("biometric profile already exists")

// BiometricRepository defines persistence for the one-to-one account profile.
type BiometricRepository interface {
	// FindByAccountID retrieves the profile owned by accountID.
	FindByAccountID(ctx context.Context, accountID uuid.UUID) (*entity.BiometricProfile, error)

	// Create persists a first profile for its account.
	Create(ctx context.Context, profile *entity.BiometricProfile) error

	// Update overwrites the stored profile with the given snapshot.
	Update(ctx context.Context, profile *entity.BiometricProfile) error
}
