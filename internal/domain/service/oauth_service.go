package service

import (
	"context"

	"wardrobe/internal/domain/entity"
)

// OAuthUser represents user information from OAuth providers
type OAuthUser struct {
	ID            string              // Provider-specific user ID
	Email         string              // User's email address
	Name          string              // User's display name
	Provider      entity.ProviderType // The OAuth provider
	AvatarURL     string              // URL to user's profile picture
	EmailVerified bool                // Whether the email is verified by the provider
}

// OAuthService is the server-side authorization-code client of one identity provider.
type OAuthService interface {
	// BuildAuthorizationURL returns the provider consent URL. No network call is made.
	BuildAuthorizationURL() string

	// ExchangeCodeForToken trades a one-time authorization code for the provider's access token.
	ExchangeCodeForToken(ctx context.Context, code string) (string, error)

	// GetUserInfo fetches the identity behind a provider access token.
	GetUserInfo(ctx context.Context, accessToken string) (*OAuthUser, error)

	// GetProvider returns the OAuth provider type
	GetProvider() entity.ProviderType
}
