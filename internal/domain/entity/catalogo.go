package entity

// Reference lookups for the registration forms. Small, rarely-changing sets
// managed by administrators.

type Especie struct {
	ID     int    `gorm:"primaryKey;column:id"`
	Nombre string `gorm:"column:nombre;not null;uniqueIndex"`
}

func (Especie) TableName() string {
	return "especies"
}

// Raza belongs to exactly one Especie.
type Raza struct {
	ID        int    `gorm:"primaryKey;column:id"`
	Nombre    string `gorm:"column:nombre;not null"`
	EspecieID int    `gorm:"column:especie_id;not null"`

	Especie Especie `gorm:"foreignKey:EspecieID;references:ID"`
}

func (Raza) TableName() string {
	return "razas"
}

// TipoInscripcion decides which optional animal fields the registration form
// shows (e.g. "Pedigree" asks for registry codes). Display concern only.
type TipoInscripcion struct {
	ID     int    `gorm:"primaryKey;column:id"`
	Nombre string `gorm:"column:nombre;not null;uniqueIndex"`
}

func (TipoInscripcion) TableName() string {
	return "tipos_inscripcion"
}
