package impl

import (
	"context"

	"wardrobe/internal/domain/entity"
	domainerrors "wardrobe/internal/domain/errors"
	"wardrobe/internal/domain/recommendation"
	"wardrobe/internal/domain/repository"
	"wardrobe/internal/infra/metrics"
	"wardrobe/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// recommendationService implements the RecommendationUsecase interface.
type recommendationService struct {
	biometricRepo repository.BiometricRepository
}

// RecommendationServiceParams holds dependencies for RecommendationService, injected by Fx.
type RecommendationServiceParams struct {
	fx.In

	BiometricRepo repository.BiometricRepository
}

// NewRecommendationService is the constructor for recommendationService.
func NewRecommendationService(params RecommendationServiceParams) usecase.RecommendationUsecase {
	return &recommendationService{biometricRepo: params.BiometricRepo}
}

// GetRecommendations recomputes guidance from the current profile snapshot.
func (srv *recommendationService) GetRecommendations(ctx context.Context, accountID uuid.UUID) (*entity.Recommendation, error) {
	profile, err := srv.biometricRepo.FindByAccountID(ctx, accountID)
	if errors.Is(err, repository.ErrBiometricProfileNotFound) {
		return nil, domainerrors.ErrProfileNotFound.WithDetails("Please complete analysis first.")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find biometric profile")
	}

	result := recommendation.Recommend(profile)
	metrics.RecommendationsServed.Inc()

	return &result, nil
}
