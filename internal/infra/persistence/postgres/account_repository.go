// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
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
	"gorm.io/plugin/dbresolver"
)

// accountRepository implements the repository.AccountRepository interface using GORM.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository is the constructor for accountRepository.
// It returns the repository as a repository.AccountRepository interface, adhering to dependency inversion.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

// FindByID retrieves a single account by its unique ID, preloading its biometric profile.
func (repo *accountRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	var accountM model.AccountModel
	err := repo.db.WithContext(ctx).
		Preload("BiometricProfile").
		Where("id = ?", id).
		First(&accountM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by id")
	}

	return toAccountDomain(&accountM), nil
}

// FindByEmail retrieves a single account by its exact email address.
func (repo *accountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	return repo.findByEmail(repo.db.WithContext(ctx), email)
}

// FindByEmailPrimary reads from the primary so a row committed by a concurrent
// request is visible even when replicas lag behind.
func (repo *accountRepository) FindByEmailPrimary(ctx context.Context, email string) (*entity.Account, error) {
	return repo.findByEmail(repo.db.WithContext(ctx).Clauses(dbresolver.Write), email)
}

func (repo *accountRepository) findByEmail(db *gorm.DB, email string) (*entity.Account, error) {
	var accountM model.AccountModel
	err := db.Where("email = ?", email).First(&accountM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by email")
	}

	return toAccountDomain(&accountM), nil
}

// Create persists a new account. The unique email index decides between
// concurrent inserts; the loser gets repository.ErrAccountConflict.
func (repo *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	accountM := fromAccountDomain(account)

	if err := repo.db.WithContext(ctx).Omit("BiometricProfile").Create(accountM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return errors.Wrap(repository.ErrAccountConflict, account.Email)
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrAccountCreationFailed.WrapMessage("missing required account information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create account")
	}

	account.ID = accountM.ID
	account.CreatedAt = accountM.CreatedAt
	account.UpdatedAt = accountM.UpdatedAt

	return nil
}

// Update modifies an existing account's own columns. The biometric profile is
// owned by BiometricRepository and is not touched here.
func (repo *accountRepository) Update(ctx context.Context, account *entity.Account) error {
	accountM := fromAccountDomain(account)

	if err := repo.db.WithContext(ctx).Omit("BiometricProfile").Save(accountM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return errors.Wrap(repository.ErrAccountConflict, account.Email)
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update account")
	}

	account.UpdatedAt = accountM.UpdatedAt

	return nil
}

// --- Mapper Functions ---

// toAccountDomain converts a GORM AccountModel to a domain Account entity.
func toAccountDomain(data *model.AccountModel) *entity.Account {
	if data == nil {
		return nil
	}

	var passwordHash string
	if data.PasswordHash != nil {
		passwordHash = *data.PasswordHash
	}

	return &entity.Account{
		ID:               data.ID,
		Email:            data.Email,
		PasswordHash:     passwordHash,
		FullName:         data.FullName,
		IsActive:         data.IsActive,
		Provider:         entity.ProviderType(data.Provider),
		BiometricProfile: toBiometricDomain(data.BiometricProfile),
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}

// fromAccountDomain converts a domain Account entity to a GORM AccountModel.
// An empty hash is stored as NULL.
func fromAccountDomain(data *entity.Account) *model.AccountModel {
	if data == nil {
		return nil
	}

	var passwordHash *string
	if data.PasswordHash != "" {
		hash := data.PasswordHash
		passwordHash = &hash
	}

	provider := data.Provider
	if provider == "" {
		provider = entity.ProviderTypeEmail
	}

	return &model.AccountModel{
		ID:           data.ID,
		Email:        data.Email,
		PasswordHash: passwordHash,
		FullName:     data.FullName,
		IsActive:     data.IsActive,
		Provider:     provider.String(),
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
