// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"wardrobe/internal/domain/entity"
)

// TokenTypeBearer is the only token type handed out.
const TokenTypeBearer = "bearer"

// --- Input DTOs ---

// RegisterInput defines the data required to register a local account.
type RegisterInput struct {
	Email    string
	Password string
	FullName string
}

// LoginInput defines the credentials of a password login.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// TokenOutput is a freshly issued bearer token.
type TokenOutput struct {
	AccessToken string
	TokenType   string
}

// AuthUsecase defines local registration, password login and token resolution.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*entity.Account, error)
	Login(ctx context.Context, input *LoginInput) (*TokenOutput, error)

	// CurrentAccount resolves a bearer token to an existing, active account.
	CurrentAccount(ctx context.Context, token string) (*entity.Account, error)
}
