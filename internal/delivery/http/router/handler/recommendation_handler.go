package handler

import (
	"net/http"

	"wardrobe/internal/usecase"

	"github.com/labstack/echo/v4"
)

// RecommendationHandler serves style guidance for the authenticated account.
type RecommendationHandler struct {
	uc usecase.RecommendationUsecase
}

// NewRecommendationHandler is the constructor for RecommendationHandler, injected by Fx.
func NewRecommendationHandler(uc usecase.RecommendationUsecase) *RecommendationHandler {
	return &RecommendationHandler{uc: uc}
}

type recommendationResponse struct {
	Colors []string `json:"colors"`
	Styles []string `json:"styles"`
	Tips   []string `json:"tips"`
}

// GetMine handles GET /recommendations/me.
func (h *RecommendationHandler) GetMine(c echo.Context) error {
	account, err := currentAccount(c)
	if err != nil {
		return err
	}

	rec, err := h.uc.GetRecommendations(c.Request().Context(), account.ID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, recommendationResponse{
		Colors: nonNil(rec.Colors),
		Styles: nonNil(rec.Styles),
		Tips:   nonNil(rec.Tips),
	})
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}

	return s
}
