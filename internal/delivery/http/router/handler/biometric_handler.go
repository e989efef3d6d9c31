package handler

import (
	"net/http"
	"time"

	"wardrobe/internal/domain/entity"
	"wardrobe/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// BiometricHandler serves the authenticated account's biometric profile.
type BiometricHandler struct {
	uc usecase.BiometricUsecase
}

// NewBiometricHandler is the constructor for BiometricHandler, injected by Fx.
func NewBiometricHandler(uc usecase.BiometricUsecase) *BiometricHandler {
	return &BiometricHandler{uc: uc}
}

// biometricRequest is a partial submission. Omitted or null fields keep their stored value.
type biometricRequest struct {
	FaceShape *string  `json:"face_shape" validate:"omitempty,max=50"`
	SkinTone  *string  `json:"skin_tone" validate:"omitempty,max=50"`
	Undertone *string  `json:"undertone" validate:"omitempty,max=50"`
	BodyShape *string  `json:"body_shape" validate:"omitempty,max=50"`
	HeightCM  *float64 `json:"height_cm" validate:"omitempty,gt=0"`
}

type biometricResponse struct {
	ID        uuid.UUID `json:"id"`
	AccountID uuid.UUID `json:"account_id"`
	FaceShape *string   `json:"face_shape"`
	SkinTone  *string   `json:"skin_tone"`
	Undertone *string   `json:"undertone"`
	BodyShape *string   `json:"body_shape"`
	HeightCM  *float64  `json:"height_cm"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toBiometricResponse(profile *entity.BiometricProfile) biometricResponse {
	return biometricResponse{
		ID:        profile.ID,
		AccountID: profile.AccountID,
		FaceShape: profile.FaceShape,
		SkinTone:  profile.SkinTone,
		Undertone: profile.Undertone,
		BodyShape: profile.BodyShape,
		HeightCM:  profile.HeightCM,
		UpdatedAt: profile.UpdatedAt,
	}
}

// GetMine handles GET /biometrics/me.
func (h *BiometricHandler) GetMine(c echo.Context) error {
	account, err := currentAccount(c)
	if err != nil {
		return err
	}

	profile, err := h.uc.GetProfile(c.Request().Context(), account.ID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toBiometricResponse(profile))
}

// UpsertMine handles POST /biometrics/me.
func (h *BiometricHandler) UpsertMine(c echo.Context) error {
	account, err := currentAccount(c)
	if err != nil {
		return err
	}

	var req biometricRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	profile, err := h.uc.UpsertProfile(c.Request().Context(), account.ID, entity.BiometricUpdate{
		FaceShape: req.FaceShape,
		SkinTone:  req.SkinTone,
		Undertone: req.Undertone,
		BodyShape: req.BodyShape,
		HeightCM:  req.HeightCM,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toBiometricResponse(profile))
}
