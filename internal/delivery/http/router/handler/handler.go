// Package handler contains the HTTP handlers for the application.
package handler

import (
	deliverycontext "wardrobe/internal/delivery/context"
	"wardrobe/internal/domain/entity"
	domainerrors "wardrobe/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// bindAndValidate binds the request into req and runs its validate tags.
// Malformed bodies are reported as validation failures.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request")
	}

	return c.Validate(req)
}

// currentAccount returns the account stored by the auth middleware.
func currentAccount(c echo.Context) (*entity.Account, error) {
	account, ok := deliverycontext.GetAccount(c)
	if !ok {
		return nil, domainerrors.ErrInvalidToken
	}

	return account, nil
}
