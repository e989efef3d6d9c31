package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestMerge_OnlySuppliedFieldsOverwrite(t *testing.T) {
	height := 170.5
	existing := &BiometricProfile{
		ID:        uuid.New(),
		AccountID: uuid.New(),
		FaceShape: strPtr("Oval"),
		SkinTone:  strPtr("#F5D0C5"),
		Undertone: strPtr("Warm"),
		HeightCM:  &height,
	}

	merged := Merge(existing, BiometricUpdate{
		Undertone: strPtr("Cool"),
		BodyShape: strPtr("Rectangle"),
	})

	require.NotNil(t, merged)
	assert.Equal(t, existing.ID, merged.ID)
	assert.Equal(t, existing.AccountID, merged.AccountID)
	assert.Equal(t, "Oval", *merged.FaceShape)
	assert.Equal(t, "#F5D0C5", *merged.SkinTone)
	assert.Equal(t, "Cool", *merged.Undertone)
	assert.Equal(t, "Rectangle", *merged.BodyShape)
	assert.InDelta(t, 170.5, *merged.HeightCM, 0.0001)

	// The original record is left untouched.
	assert.Equal(t, "Warm", *existing.Undertone)
	assert.Nil(t, existing.BodyShape)
}

func TestMerge_EmptyUpdateKeepsEverything(t *testing.T) {
	existing := &BiometricProfile{FaceShape: strPtr("Square")}

	merged := Merge(existing, BiometricUpdate{})

	assert.Equal(t, existing, merged)
	assert.NotSame(t, existing, merged)
}

func TestMerge_DoesNotAliasUpdatePointers(t *testing.T) {
	shape := "Oval"
	merged := Merge(&BiometricProfile{}, BiometricUpdate{FaceShape: &shape})

	shape = "Square"
	assert.Equal(t, "Oval", *merged.FaceShape)
}

func TestNewBiometricProfile(t *testing.T) {
	accountID := uuid.New()

	profile := NewBiometricProfile(accountID, BiometricUpdate{Undertone: strPtr("Neutral")})

	assert.Equal(t, accountID, profile.AccountID)
	assert.Equal(t, "Neutral", *profile.Undertone)
	assert.Nil(t, profile.FaceShape)
	assert.Nil(t, profile.HeightCM)
}

func TestAccount_HasLocalPassword(t *testing.T) {
	assert.True(t, NewLocalAccount("a@example.com", "$2a$hash", "A").HasLocalPassword())
	assert.False(t, NewLocalAccount("a@example.com", "", "A").HasLocalPassword())
	assert.False(t, NewFederatedAccount("a@example.com", "", ProviderTypeGoogle).HasLocalPassword())

	federatedWithHash := NewFederatedAccount("a@example.com", "", ProviderTypeGoogle)
	federatedWithHash.PasswordHash = "$2a$hash"
	assert.False(t, federatedWithHash.HasLocalPassword())
}
