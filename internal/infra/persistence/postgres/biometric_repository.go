package postgres

import (
	"context"

	"wardrobe/internal/domain/entity"
	domainerrors "wardrobe/internal/domain/errors"
	"wardrobe/internal/domain/repository"
	"wardrobe/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// biometricRepository implements repository.BiometricRepository using GORM.
type biometricRepository struct {
	db *gorm.DB
}

// NewBiometricRepository is the constructor for biometricRepository.
func NewBiometricRepository(db *gorm.DB) repository.BiometricRepository {
	return &biometricRepository{db: db}
}

func (repo *biometricRepository) FindByAccountID(ctx context.Context, accountID uuid.UUID) (*entity.BiometricProfile, error) {
	var profileM model.BiometricProfileModel
	err := repo.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		First(&profileM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBiometricProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find biometric profile by account id")
	}

	return toBiometricDomain(&profileM), nil
}

func (repo *biometricRepository) Create(ctx context.Context, profile *entity.BiometricProfile) error {
	profileM := fromBiometricDomain(profile)

	if err := repo.db.WithContext(ctx).Omit("Account").Create(profileM).Error; err != nil {
		return translateBiometricError(err, "failed to create biometric profile")
	}

	profile.ID = profileM.ID
	profile.CreatedAt = profileM.CreatedAt
	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

// Update writes every column of profile, so callers pass a fully merged snapshot.
func (repo *biometricRepository) Update(ctx context.Context, profile *entity.BiometricProfile) error {
	profileM := fromBiometricDomain(profile)

	if err := repo.db.WithContext(ctx).Omit("Account").Save(profileM).Error; err != nil {
		return translateBiometricError(err, "failed to update biometric profile")
	}

	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

func translateBiometricError(err error, details string) error {
	switch {
	case isUniqueConstraintViolation(err):
		return repository.ErrBiometricProfileConflict
	case isForeignKeyConstraintViolation(err):
		return repository.ErrAccountNotFound
	case isCheckConstraintViolation(err):
		return domainerrors.ErrValidationFailed.WrapMessage(details)
	default:
		return domainerrors.NewDatabaseExecuteError(err, details)
	}
}

// --- Mapper Functions ---

// toBiometricDomain converts a GORM BiometricProfileModel to a domain BiometricProfile.
func toBiometricDomain(data *model.BiometricProfileModel) *entity.BiometricProfile {
	if data == nil {
		return nil
	}

	return &entity.BiometricProfile{
		ID:        data.ID,
		AccountID: data.AccountID,
		FaceShape: data.FaceShape,
		SkinTone:  data.SkinTone,
		Undertone: data.Undertone,
		BodyShape: data.BodyShape,
		HeightCM:  data.HeightCM,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromBiometricDomain converts a domain BiometricProfile to a GORM BiometricProfileModel.
func fromBiometricDomain(data *entity.BiometricProfile) *model.BiometricProfileModel {
	if data == nil {
		return nil
	}

	return &model.BiometricProfileModel{
		ID:        data.ID,
		AccountID: data.AccountID,
		FaceShape: data.FaceShape,
		SkinTone:  data.SkinTone,
		Undertone: data.Undertone,
		BodyShape: data.BodyShape,
		HeightCM:  data.HeightCM,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
