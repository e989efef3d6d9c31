package handler

import (
	"net/http"

	domainerrors "wardrobe/internal/domain/errors"
	"wardrobe/internal/usecase"

	"github.com/labstack/echo/v4"
)

// OAuthHandler serves the Google authorization-code flow.
type OAuthHandler struct {
	uc usecase.OAuthUsecase
}

// NewOAuthHandler is the constructor for OAuthHandler, injected by Fx.
func NewOAuthHandler(uc usecase.OAuthUsecase) *OAuthHandler {
	return &OAuthHandler{uc: uc}
}

type loginURLResponse struct {
	URL string `json:"url"`
}

// callbackRequest carries what Google appends to the redirect URI: a code on
// consent, an error when the user declines.
type callbackRequest struct {
	Code             string `query:"code"`
	Error            string `query:"error"`
	ErrorDescription string `query:"error_description"`
}

// Login handles GET /google/login.
func (h *OAuthHandler) Login(c echo.Context) error {
	return c.JSON(http.StatusOK, loginURLResponse{URL: h.uc.LoginURL()})
}

// Callback handles GET /google/callback and redirects the browser to the
// frontend with the issued token.
func (h *OAuthHandler) Callback(c echo.Context) error {
	var req callbackRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed callback")
	}

	if req.Error != "" {
		return domainerrors.NewOAuthExchangeError(req.Error, req.ErrorDescription)
	}
	if req.Code == "" {
		return domainerrors.ErrValidationFailed.WithDetails("code is required")
	}

	redirectURL, err := h.uc.HandleCallback(c.Request().Context(), req.Code)
	if err != nil {
		return err
	}

	return c.Redirect(http.StatusTemporaryRedirect, redirectURL)
}
