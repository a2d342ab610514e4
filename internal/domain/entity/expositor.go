package entity

import "time"

// Expositor is the registering party that owns animals entered into the show.
//
// Email, when present, links the row to an external identity (the login
// email); it is the join key used by the ownership checks.
type Expositor struct {
	ID           string  `gorm:"primaryKey;column:id"`
	Cuit         string  `gorm:"column:cuit;not null;uniqueIndex"`
	RazonSocial  string  `gorm:"column:razon_social;not null"`
	NombreCabana string  `gorm:"column:nombre_cabana;not null"`
	Email        *string `gorm:"column:email;uniqueIndex"`
	Telefono     *string `gorm:"column:telefono"`
	Provincia    *string `gorm:"column:provincia"`
	Localidad    *string `gorm:"column:localidad"`
	Departamento *string `gorm:"column:departamento"`

	CreatedAt time.Time `gorm:"column:created_at;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null;autoUpdateTime:false"`
}

func (Expositor) TableName() string {
	return "expositores"
}
