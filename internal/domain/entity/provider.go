package entity

// ProviderType identifies how an account proves its identity.
type ProviderType string

const (
	// ProviderTypeEmail is a local email/password account.
	ProviderTypeEmail ProviderType = "email"
	// ProviderTypeGoogle is an account created through Google federation.
	ProviderTypeGoogle ProviderType = "google"
)

// String returns the string representation of the ProviderType.
func (p ProviderType) String() string {
	return string(p)
}

// IsValid checks if the ProviderType is a valid value.
func (p ProviderType) IsValid() bool {
	switch p {
	case ProviderTypeEmail, ProviderTypeGoogle:
		return true
	default:
		return false
	}
}
