package usecase

import (
	"context"

	"wardrobe/internal/domain/entity"

	"github.com/google/uuid"
)

// BiometricUsecase reads and partially updates an account's biometric profile.
type BiometricUsecase interface {
	GetProfile(ctx context.Context, accountID uuid.UUID) (*entity.BiometricProfile, error)

	// UpsertProfile creates the profile on first submission, otherwise merges
	// only the supplied fields into the stored one.
	UpsertProfile(ctx context.Context, accountID uuid.UUID, update entity.BiometricUpdate) (*entity.BiometricProfile, error)
}

// RecommendationUsecase derives style guidance from the stored profile.
type RecommendationUsecase interface {
	GetRecommendations(ctx context.Context, accountID uuid.UUID) (*entity.Recommendation, error)
}
