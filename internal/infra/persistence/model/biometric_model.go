package model

import (
	"time"

	"github.com/google/uuid"
)

// BiometricProfileModel mirrors the 'biometric_profiles' table.
// AccountID is unique, which makes the relation one-to-one.
type BiometricProfileModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	AccountID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_biometric_profiles_account_id"`
	FaceShape *string   `gorm:"type:varchar(50)"`
	SkinTone  *string   `gorm:"type:varchar(50)"`
	Undertone *string   `gorm:"type:varchar(50)"`
	BodyShape *string   `gorm:"type:varchar(50)"`
	HeightCM  *float64  `gorm:"column:height_cm"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Account *AccountModel `gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (BiometricProfileModel) TableName() string {
	return "biometric_profiles"
}
