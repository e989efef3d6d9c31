package middleware

import (
	"strings"

	deliverycontext "wardrobe/internal/delivery/context"
	domainerrors "wardrobe/internal/domain/errors"
	"wardrobe/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware resolves bearer tokens to accounts.
type AuthMiddleware struct {
	authUsecase usecase.AuthUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(authUsecase usecase.AuthUsecase) *AuthMiddleware {
	return &AuthMiddleware{authUsecase: authUsecase}
}

// Authenticate rejects the request unless it carries a bearer token of an
// existing, active account, which is then available via deliverycontext.GetAccount.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
		if !ok {
			return domainerrors.ErrInvalidToken.WithDetails("Not authenticated")
		}

		account, err := m.authUsecase.CurrentAccount(c.Request().Context(), token)
		if err != nil {
			return err
		}

		deliverycontext.SetAccount(c, account)

		return next(c)
	}
}

// bearerToken extracts the credentials of an "Authorization: Bearer <token>"
// header. The scheme is case-insensitive.
func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}

	token = strings.TrimSpace(token)

	return token, token != ""
}
