package handler

import (
	"context"
	"net/http"
	"testing"

	"wardrobe/internal/domain/entity"
	domainerrors "wardrobe/internal/domain/errors"
	mockUsecase "wardrobe/internal/mocks/usecase"
	"wardrobe/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newBiometricEcho(uc usecase.BiometricUsecase, account *entity.Account) *echo.Echo {
	e := newTestEcho()
	h := NewBiometricHandler(uc)
	e.GET("/biometrics/me", h.GetMine, asAccount(account))
	e.POST("/biometrics/me", h.UpsertMine, asAccount(account))

	return e
}

func TestBiometricHandler_GetMine(t *testing.T) {
	account := &entity.Account{ID: uuid.New(), Email: "jane@example.com", IsActive: true}

	t.Run("found", func(t *testing.T) {
		uc := mockUsecase.NewMockBiometricUsecase(t)
		uc.EXPECT().GetProfile(mock.Anything, account.ID).Return(&entity.BiometricProfile{
			ID:        uuid.New(),
			AccountID: account.ID,
			Undertone: strPtr("Warm"),
		}, nil).Once()

		rec := serve(newBiometricEcho(uc, account), http.MethodGet, "/biometrics/me", "", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		body := decodeJSON[map[string]any](t, rec)
		assert.Equal(t, account.ID.String(), body["account_id"])
		assert.Equal(t, "Warm", body["undertone"])
		assert.Contains(t, body, "face_shape")
		assert.Nil(t, body["face_shape"])
		assert.Nil(t, body["height_cm"])
	})

	t.Run("not found", func(t *testing.T) {
		uc := mockUsecase.NewMockBiometricUsecase(t)
		uc.EXPECT().GetProfile(mock.Anything, account.ID).Return(nil, domainerrors.ErrProfileNotFound).Once()

		rec := serve(newBiometricEcho(uc, account), http.MethodGet, "/biometrics/me", "", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "PROFILE_NOT_FOUND", decodeError(t, rec).Error.Code)
	})

	t.Run("no account on context", func(t *testing.T) {
		uc := mockUsecase.NewMockBiometricUsecase(t)
		e := newTestEcho()
		e.GET("/biometrics/me", NewBiometricHandler(uc).GetMine)

		rec := serve(e, http.MethodGet, "/biometrics/me", "", "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Bearer", rec.Header().Get(echo.HeaderWWWAuthenticate))
	})
}

func TestBiometricHandler_UpsertMine(t *testing.T) {
	account := &entity.Account{ID: uuid.New(), Email: "jane@example.com", IsActive: true}
	height := 170.5

	t.Run("partial update passes only supplied fields", func(t *testing.T) {
		uc := mockUsecase.NewMockBiometricUsecase(t)
		uc.EXPECT().UpsertProfile(mock.Anything, account.ID, mock.Anything).
			RunAndReturn(func(_ context.Context, accountID uuid.UUID, update entity.BiometricUpdate) (*entity.BiometricProfile, error) {
				require.NotNil(t, update.Undertone)
				assert.Equal(t, "Cool", *update.Undertone)
				require.NotNil(t, update.HeightCM)
				assert.Equal(t, height, *update.HeightCM)
				assert.Nil(t, update.FaceShape)
				assert.Nil(t, update.SkinTone)
				assert.Nil(t, update.BodyShape)

				return entity.NewBiometricProfile(accountID, update), nil
			}).Once()

		rec := serve(newBiometricEcho(uc, account), http.MethodPost, "/biometrics/me",
			echo.MIMEApplicationJSON, `{"undertone":"Cool","height_cm":170.5,"face_shape":null}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		body := decodeJSON[map[string]any](t, rec)
		assert.Equal(t, "Cool", body["undertone"])
		assert.Equal(t, height, body["height_cm"])
	})

	t.Run("invalid height", func(t *testing.T) {
		uc := mockUsecase.NewMockBiometricUsecase(t)

		rec := serve(newBiometricEcho(uc, account), http.MethodPost, "/biometrics/me",
			echo.MIMEApplicationJSON, `{"height_cm":-3}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeError(t, rec)
		assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
		assert.Equal(t, "height_cm must be greater than 0", body.Error.Details)
	})

	t.Run("wrong type", func(t *testing.T) {
		uc := mockUsecase.NewMockBiometricUsecase(t)

		rec := serve(newBiometricEcho(uc, account), http.MethodPost, "/biometrics/me",
			echo.MIMEApplicationJSON, `{"height_cm":"tall"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
