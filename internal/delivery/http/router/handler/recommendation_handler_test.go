package handler

import (
	"net/http"
	"testing"

	"wardrobe/internal/domain/entity"
	domainerrors "wardrobe/internal/domain/errors"
	mockUsecase "wardrobe/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestRecommendationHandler_GetMine(t *testing.T) {
	account := &entity.Account{ID: uuid.New(), Email: "jane@example.com", IsActive: true}

	tests := []struct {
		name      string
		result    *entity.Recommendation
		err       error
		status    int
		wantBody  map[string][]string
		errDetail string
	}{
		{
			name: "recommendations",
			result: &entity.Recommendation{
				Colors: []string{"Olive Green", "Mustard"},
				Styles: []string{"Wrap Dresses"},
				Tips:   []string{"Gold jewelry will complement your skin tone."},
			},
			status: http.StatusOK,
			wantBody: map[string][]string{
				"colors": {"Olive Green", "Mustard"},
				"styles": {"Wrap Dresses"},
				"tips":   {"Gold jewelry will complement your skin tone."},
			},
		},
		{
			name:     "empty profile serializes empty lists",
			result:   &entity.Recommendation{},
			status:   http.StatusOK,
			wantBody: map[string][]string{"colors": {}, "styles": {}, "tips": {}},
		},
		{
			name:      "no profile",
			err:       domainerrors.ErrProfileNotFound.WithDetails("Please complete analysis first."),
			status:    http.StatusNotFound,
			errDetail: "Please complete analysis first.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := mockUsecase.NewMockRecommendationUsecase(t)
			uc.EXPECT().GetRecommendations(mock.Anything, account.ID).Return(tt.result, tt.err).Once()

			e := newTestEcho()
			e.GET("/recommendations/me", NewRecommendationHandler(uc).GetMine, asAccount(account))

			rec := serve(e, http.MethodGet, "/recommendations/me", "", "")

			assert.Equal(t, tt.status, rec.Code)
			if tt.errDetail != "" {
				assert.Equal(t, tt.errDetail, decodeError(t, rec).Error.Details)

				return
			}
			assert.Equal(t, tt.wantBody, decodeJSON[map[string][]string](t, rec))
		})
	}
}
