package impl

import (
	"context"
	"testing"

	"wardrobe/internal/domain/entity"
	domainerrors "wardrobe/internal/domain/errors"
	"wardrobe/internal/domain/repository"
	mockRepo "wardrobe/internal/mocks/repository"
	"wardrobe/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type biometricServiceFixtures struct {
	service       usecase.BiometricUsecase
	txManager     *mockRepo.MockTransactionManager
	repoFactory   *mockRepo.MockRepositoryFactory
	biometricRepo *mockRepo.MockBiometricRepository
}

func createTestBiometricService(t *testing.T) biometricServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	repoFactory := mockRepo.NewMockRepositoryFactory(t)
	biometricRepo := mockRepo.NewMockBiometricRepository(t)

	service := NewBiometricService(BiometricServiceParams{
		TxManager:     txManager,
		BiometricRepo: biometricRepo,
		Logger:        newDiscardLogger(),
	})

	return biometricServiceFixtures{
		service:       service,
		txManager:     txManager,
		repoFactory:   repoFactory,
		biometricRepo: biometricRepo,
	}
}

// expectTransaction runs the callback against the mocked factory, the way the
// real manager would, and returns whatever the callback returns.
func (fx biometricServiceFixtures) expectTransaction(ctx context.Context, times int) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(fx.repoFactory)
		}).
		Times(times)
	fx.repoFactory.EXPECT().BiometricRepo().Return(fx.biometricRepo).Times(times)
}

func TestBiometricService_GetProfile(t *testing.T) {
	accountID := uuid.New()

	t.Run("found", func(t *testing.T) {
		fx := createTestBiometricService(t)
		profile := &entity.BiometricProfile{AccountID: accountID, Undertone: strPtr("Warm")}
		fx.biometricRepo.EXPECT().FindByAccountID(mock.Anything, accountID).Return(profile, nil)

		got, err := fx.service.GetProfile(context.Background(), accountID)
		require.NoError(t, err)
		assert.Same(t, profile, got)
	})

	t.Run("missing", func(t *testing.T) {
		fx := createTestBiometricService(t)
		fx.biometricRepo.EXPECT().FindByAccountID(mock.Anything, accountID).
			Return(nil, repository.ErrBiometricProfileNotFound)

		_, err := fx.service.GetProfile(context.Background(), accountID)
		assert.True(t, errors.Is(err, domainerrors.ErrProfileNotFound))
	})
}

func TestBiometricService_UpsertProfile_Create(t *testing.T) {
	fx := createTestBiometricService(t)
	ctx := context.Background()
	accountID := uuid.New()

	fx.expectTransaction(ctx, 1)
	fx.biometricRepo.EXPECT().FindByAccountID(ctx, accountID).Return(nil, repository.ErrBiometricProfileNotFound)
	fx.biometricRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.BiometricProfile")).
		Run(func(_ context.Context, profile *entity.BiometricProfile) {
			profile.ID = uuid.New()
		}).
		Return(nil)

	got, err := fx.service.UpsertProfile(ctx, accountID, entity.BiometricUpdate{
		Undertone: strPtr("Cool"),
		BodyShape: strPtr("Hourglass"),
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, got.ID)
	assert.Equal(t, accountID, got.AccountID)
	assert.Equal(t, "Cool", *got.Undertone)
	assert.Equal(t, "Hourglass", *got.BodyShape)
	assert.Nil(t, got.FaceShape)
}

func TestBiometricService_UpsertProfile_MergesSuppliedFieldsOnly(t *testing.T) {
	fx := createTestBiometricService(t)
	ctx := context.Background()
	accountID := uuid.New()
	height := 165.0

	existing := &entity.BiometricProfile{
		ID:        uuid.New(),
		AccountID: accountID,
		FaceShape: strPtr("Oval"),
		Undertone: strPtr("Warm"),
		HeightCM:  &height,
	}

	var saved *entity.BiometricProfile
	fx.expectTransaction(ctx, 1)
	fx.biometricRepo.EXPECT().FindByAccountID(ctx, accountID).Return(existing, nil)
	fx.biometricRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.BiometricProfile")).
		Run(func(_ context.Context, profile *entity.BiometricProfile) {
			saved = profile
		}).
		Return(nil)

	got, err := fx.service.UpsertProfile(ctx, accountID, entity.BiometricUpdate{Undertone: strPtr("Cool")})

	require.NoError(t, err)
	assert.Same(t, saved, got)
	assert.Equal(t, existing.ID, got.ID)
	assert.Equal(t, "Cool", *got.Undertone)
	assert.Equal(t, "Oval", *got.FaceShape)
	assert.Equal(t, 165.0, *got.HeightCM)
	assert.Equal(t, "Warm", *existing.Undertone)
}

func TestBiometricService_UpsertProfile_RetriesAfterConcurrentCreate(t *testing.T) {
	fx := createTestBiometricService(t)
	ctx := context.Background()
	accountID := uuid.New()

	existing := &entity.BiometricProfile{ID: uuid.New(), AccountID: accountID, FaceShape: strPtr("Square")}

	fx.expectTransaction(ctx, 2)
	fx.biometricRepo.EXPECT().FindByAccountID(ctx, accountID).
		Return(nil, repository.ErrBiometricProfileNotFound).Once()
	fx.biometricRepo.EXPECT().Create(ctx, mock.Anything).
		Return(repository.ErrBiometricProfileConflict).Once()
	fx.biometricRepo.EXPECT().FindByAccountID(ctx, accountID).Return(existing, nil).Once()
	fx.biometricRepo.EXPECT().Update(ctx, mock.Anything).Return(nil).Once()

	got, err := fx.service.UpsertProfile(ctx, accountID, entity.BiometricUpdate{Undertone: strPtr("Warm")})

	require.NoError(t, err)
	assert.Equal(t, "Square", *got.FaceShape)
	assert.Equal(t, "Warm", *got.Undertone)
}

func TestBiometricService_UpsertProfile_UnknownAccount(t *testing.T) {
	fx := createTestBiometricService(t)
	ctx := context.Background()
	accountID := uuid.New()

	fx.expectTransaction(ctx, 1)
	fx.biometricRepo.EXPECT().FindByAccountID(ctx, accountID).Return(nil, repository.ErrBiometricProfileNotFound)
	fx.biometricRepo.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrAccountNotFound)

	_, err := fx.service.UpsertProfile(ctx, accountID, entity.BiometricUpdate{})
	assert.True(t, errors.Is(err, domainerrors.ErrAccountNotFound))
}
