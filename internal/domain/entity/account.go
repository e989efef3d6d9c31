// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account is the identity record. Email is the unique, case-sensitive login key.
type Account struct {
	ID               uuid.UUID         // The Global Unique Identifier (GUID) for the account.
	Email            string            // Unique login identifier and token subject.
	PasswordHash     string            // bcrypt hash; empty when the account has no local password.
	FullName         string            // The account's display name.
	IsActive         bool              // Inactive accounts can neither log in nor authorize requests.
	Provider         ProviderType      // How the account was created.
	BiometricProfile *BiometricProfile // Nil until the owner submits a profile.
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// NewLocalAccount builds an active email/password account.
func NewLocalAccount(email, passwordHash, fullName string) *Account {
	return &Account{
		Email:        email,
		PasswordHash: passwordHash,
		FullName:     fullName,
		IsActive:     true,
		Provider:     ProviderTypeEmail,
	}
}

// NewFederatedAccount builds an active account vouched for by an external
// provider. It carries no password hash, so the password path can never match it.
func NewFederatedAccount(email, fullName string, provider ProviderType) *Account {
	return &Account{
		Email:    email,
		FullName: fullName,
		IsActive: true,
		Provider: provider,
	}
}

// HasLocalPassword reports whether the password login path applies to this account.
func (a *Account) HasLocalPassword() bool {
	return a.Provider == ProviderTypeEmail && a.PasswordHash != ""
}
