package usecase

import "context"

// OAuthUsecase drives the server-side authorization-code flow of one provider.
type OAuthUsecase interface {
	// LoginURL returns the provider consent URL the browser should visit.
	LoginURL() string

	// HandleCallback exchanges code, resolves or creates the local account and
	// returns the frontend URL carrying the issued token.
	HandleCallback(ctx context.Context, code string) (string, error)
}
