package entity

import (
	"time"

	"github.com/google/uuid"
)

// BiometricProfile holds the owner's analyzed attributes. Every attribute is
// optional; nil means "not measured yet".
type BiometricProfile struct {
	ID        uuid.UUID
	AccountID uuid.UUID // Owning account; at most one profile per account.
	FaceShape *string   // e.g. Oval, Square, Heart
	SkinTone  *string   // Hex code or category
	Undertone *string   // Warm, Cool, Neutral
	BodyShape *string   // e.g. Hourglass, Rectangle, Triangle
	HeightCM  *float64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// BiometricUpdate is a partial submission. Only non-nil fields are applied.
type BiometricUpdate struct {
	FaceShape *string
	SkinTone  *string
	Undertone *string
	BodyShape *string
	HeightCM  *float64
}

// NewBiometricProfile creates a profile for accountID from a first submission.
func NewBiometricProfile(accountID uuid.UUID, update BiometricUpdate) *BiometricProfile {
	return Merge(&BiometricProfile{AccountID: accountID}, update)
}

// Merge returns a copy of existing with only the supplied fields of update
// overwritten. existing is not modified.
func Merge(existing *BiometricProfile, update BiometricUpdate) *BiometricProfile {
	merged := *existing

	if update.FaceShape != nil {
		merged.FaceShape = cloneString(update.FaceShape)
	}
	if update.SkinTone != nil {
		merged.SkinTone = cloneString(update.SkinTone)
	}
	if update.Undertone != nil {
		merged.Undertone = cloneString(update.Undertone)
	}
	if update.BodyShape != nil {
		merged.BodyShape = cloneString(update.BodyShape)
	}
	if update.HeightCM != nil {
		height := *update.HeightCM
		merged.HeightCM = &height
	}

	return &merged
}

func cloneString(s *string) *string {
	v := *s

	return &v
}
