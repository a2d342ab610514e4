package entity

import "time"

// RegistrationState is the server-side "currently identified expositor" of
// the multi-step registration flow, keyed by the authenticated identity's
// email. One row per identity; replaced on Begin, removed on Clear.
type RegistrationState struct {
	IdentityEmail string    `gorm:"primaryKey;column:identity_email"`
	ExpositorID   string    `gorm:"column:expositor_id;not null"`
	Cuit          string    `gorm:"column:cuit;not null"`
	RazonSocial   string    `gorm:"column:razon_social;not null"`
	CreatedAt     time.Time `gorm:"column:created_at;not null"`
}

func (RegistrationState) TableName() string {
	return "registration_states"
}
