package entity

import "time"

// Animal is a single registered animal. Every optional column exists on every
// row regardless of inscription type; which fields are relevant is a display
// concern of the registration forms, not storage polymorphism.
//
// RP is unique within the (expositor, raza) pair; the composite unique index
// is the only concurrency-correctness mechanism for duplicate registrations.
type Animal struct {
	ID                string `gorm:"primaryKey;column:id"`
	ExpositorID       string `gorm:"column:expositor_id;not null;index;uniqueIndex:uq_animales_expositor_raza_rp,priority:1"`
	RazaID            int    `gorm:"column:raza_id;not null;uniqueIndex:uq_animales_expositor_raza_rp,priority:2"`
	TipoInscripcionID int    `gorm:"column:tipo_inscripcion_id;not null"`

	RP              string  `gorm:"column:rp;not null;uniqueIndex:uq_animales_expositor_raza_rp,priority:3"`
	NombreAnimal    *string `gorm:"column:nombre_animal"`
	Sexo            string  `gorm:"column:sexo;not null"`
	FechaNacimiento *string `gorm:"column:fecha_nacimiento"`

	LoteNro        *int `gorm:"column:lote_nro"`
	OrdenCatalogo  *int `gorm:"column:orden_catalogo"`
	Venta          bool `gorm:"column:venta;not null;default:false"`
	AceptaTerminos bool `gorm:"column:acepta_terminos;not null;default:true"`

	RegistroAsociacion *string `gorm:"column:registro_asociacion"`
	RegistroPadre      *string `gorm:"column:registro_padre"`
	RegistroMadre      *string `gorm:"column:registro_madre"`
	FechaServicio      *string `gorm:"column:fecha_servicio"`

	Categoria        *string `gorm:"column:categoria"`
	ReemplazanteTipo *string `gorm:"column:reemplazante_tipo"`

	PesoNacimiento         *float64 `gorm:"column:peso_nacimiento"`
	PesoActual             *float64 `gorm:"column:peso_actual"`
	CircunferenciaEscrotal *float64 `gorm:"column:circunferencia_escrotal"`

	Observaciones *string `gorm:"column:observaciones"`

	CreatedAt time.Time `gorm:"column:created_at;not null"`

	// Relations, preloaded on read paths for denormalized display names
	Expositor       Expositor       `gorm:"foreignKey:ExpositorID;references:ID"`
	Raza            Raza            `gorm:"foreignKey:RazaID;references:ID"`
	TipoInscripcion TipoInscripcion `gorm:"foreignKey:TipoInscripcionID;references:ID"`
}

func (Animal) TableName() string {
	return "animales"
}
