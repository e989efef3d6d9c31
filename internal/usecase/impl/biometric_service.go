package impl

import (
	"context"
	"log/slog"

	deliverycontext "wardrobe/internal/delivery/context"
	"wardrobe/internal/domain/entity"
	domainerrors "wardrobe/internal/domain/errors"
	"wardrobe/internal/domain/repository"
	"wardrobe/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// biometricService implements the BiometricUsecase interface.
type biometricService struct {
	txManager     repository.TransactionManager
	biometricRepo repository.BiometricRepository
	logger        *slog.Logger
}

// BiometricServiceParams holds dependencies for BiometricService, injected by Fx.
type BiometricServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	BiometricRepo repository.BiometricRepository
	Logger        *slog.Logger
}

// NewBiometricService is the constructor for biometricService.
func NewBiometricService(params BiometricServiceParams) usecase.BiometricUsecase {
	return &biometricService{
		txManager:     params.TxManager,
		biometricRepo: params.BiometricRepo,
		logger:        params.Logger,
	}
}

func (srv *biometricService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *biometricService) GetProfile(ctx context.Context, accountID uuid.UUID) (*entity.BiometricProfile, error) {
	profile, err := srv.biometricRepo.FindByAccountID(ctx, accountID)
	if errors.Is(err, repository.ErrBiometricProfileNotFound) {
		return nil, domainerrors.ErrProfileNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find biometric profile")
	}

	return profile, nil
}

// UpsertProfile runs the read-merge-write inside one transaction. If a
// concurrent first submission inserted the row in the meantime, the whole
// transaction is replayed once so the update merges into that row.
func (srv *biometricService) UpsertProfile(ctx context.Context, accountID uuid.UUID, update entity.BiometricUpdate) (*entity.BiometricProfile, error) {
	profile, err := srv.upsert(ctx, accountID, update)
	if errors.Is(err, repository.ErrBiometricProfileConflict) {
		srv.log(ctx).Debug("Biometric profile created concurrently, retrying as update",
			slog.String("accountID", accountID.String()))
		profile, err = srv.upsert(ctx, accountID, update)
	}
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to save biometric profile")
	}

	return profile, nil
}

func (srv *biometricService) upsert(ctx context.Context, accountID uuid.UUID, update entity.BiometricUpdate) (*entity.BiometricProfile, error) {
	var saved *entity.BiometricProfile

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		biometricRepo := repoFactory.BiometricRepo()

		existing, err := biometricRepo.FindByAccountID(ctx, accountID)
		switch {
		case errors.Is(err, repository.ErrBiometricProfileNotFound):
			profile := entity.NewBiometricProfile(accountID, update)
			if err := biometricRepo.Create(ctx, profile); err != nil {
				return err
			}
			saved = profile

			return nil
		case err != nil:
			return err
		}

		merged := entity.Merge(existing, update)
		if err := biometricRepo.Update(ctx, merged); err != nil {
			return err
		}
		saved = merged

		return nil
	})
	if err != nil {
		return nil, err
	}

	return saved, nil
}
