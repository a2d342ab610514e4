package contract

// Sexo and reemplazanteTipo are closed enumerations; the literals match the
// values the registration forms submit.
const (
	SexoMacho  = "Macho"
	SexoHembra = "Hembra"
)

// CreateAnimalRequest carries the external (camelCase) field names. The `col`
// tags are the storage column mapping consumed by fieldmap.ToColumns; pointer
// fields are optional and omitted from the write when absent.
//
// ExpositorID is optional on purpose: when the caller's identity resolves to
// an expositor profile, that profile silently owns the new animal and a
// conflicting explicit id is rejected. Administrative callers (no linked
// profile) must supply it.
type CreateAnimalRequest struct {
	ExpositorID       *string `json:"expositorId" col:"expositor_id" validate:"omitempty,uuid"`
	RazaID            int     `json:"razaId" col:"raza_id" validate:"required,min=1"`
	TipoInscripcionID int     `json:"tipoInscripcionId" col:"tipo_inscripcion_id" validate:"required,min=1"`

	RP              string  `json:"rp" col:"rp" validate:"required,rp"`
	Nombre          *string `json:"nombre" col:"nombre_animal" validate:"omitempty,max=100"`
	Sexo            string  `json:"sexo" col:"sexo" validate:"required,oneof=Macho Hembra"`
	FechaNacimiento *string `json:"fechaNacimiento" col:"fecha_nacimiento" validate:"omitempty,datetime=2006-01-02"`

	LoteNro        *int  `json:"loteNro" col:"lote_nro" validate:"omitempty,min=0"`
	OrdenCatalogo  *int  `json:"ordenCatalogo" col:"orden_catalogo" validate:"omitempty,min=0"`
	Venta          *bool `json:"venta" col:"venta"`
	AceptaTerminos *bool `json:"aceptaTerminos" col:"acepta_terminos"`

	// Category-dependent fields; all columns exist on every row, the
	// inscription type only decides which ones the form shows.
	RegistroAsociacion *string `json:"registroAsociacion" col:"registro_asociacion" validate:"omitempty,max=100"`
	RegistroPadre      *string `json:"registroPadre" col:"registro_padre" validate:"omitempty,max=100"`
	RegistroMadre      *string `json:"registroMadre" col:"registro_madre" validate:"omitempty,max=100"`
	FechaServicio      *string `json:"fechaServicio" col:"fecha_servicio" validate:"omitempty,datetime=2006-01-02"`
	Categoria          *string `json:"categoria" col:"categoria" validate:"omitempty,max=100"`
	ReemplazanteTipo   *string `json:"reemplazanteTipo" col:"reemplazante_tipo" validate:"omitempty,oneof=Titular Suplente"`

	PesoNacimiento         *float64 `json:"pesoNacimiento" col:"peso_nacimiento" validate:"omitempty,min=0"`
	PesoActual             *float64 `json:"pesoActual" col:"peso_actual" validate:"omitempty,min=0"`
	CircunferenciaEscrotal *float64 `json:"circunferenciaEscrotal" col:"circunferencia_escrotal" validate:"omitempty,min=0"`

	Observaciones *string `json:"observaciones" col:"observaciones" validate:"omitempty,max=1000"`
}

// UpdateAnimalRequest is the PATCH body: every field optional, absent keys
// never reach storage. A body that maps to zero columns short-circuits to a
// plain read.
type UpdateAnimalRequest struct {
	ExpositorID       *string `json:"expositorId" col:"expositor_id" validate:"omitempty,uuid"`
	RazaID            *int    `json:"razaId" col:"raza_id" validate:"omitempty,min=1"`
	TipoInscripcionID *int    `json:"tipoInscripcionId" col:"tipo_inscripcion_id" validate:"omitempty,min=1"`

	RP              *string `json:"rp" col:"rp" validate:"omitempty,rp"`
	Nombre          *string `json:"nombre" col:"nombre_animal" validate:"omitempty,max=100"`
	Sexo            *string `json:"sexo" col:"sexo" validate:"omitempty,oneof=Macho Hembra"`
	FechaNacimiento *string `json:"fechaNacimiento" col:"fecha_nacimiento" validate:"omitempty,datetime=2006-01-02"`

	LoteNro        *int  `json:"loteNro" col:"lote_nro" validate:"omitempty,min=0"`
	OrdenCatalogo  *int  `json:"ordenCatalogo" col:"orden_catalogo" validate:"omitempty,min=0"`
	Venta          *bool `json:"venta" col:"venta"`
	AceptaTerminos *bool `json:"aceptaTerminos" col:"acepta_terminos"`

	RegistroAsociacion *string `json:"registroAsociacion" col:"registro_asociacion" validate:"omitempty,max=100"`
	RegistroPadre      *string `json:"registroPadre" col:"registro_padre" validate:"omitempty,max=100"`
	RegistroMadre      *string `json:"registroMadre" col:"registro_madre" validate:"omitempty,max=100"`
	FechaServicio      *string `json:"fechaServicio" col:"fecha_servicio" validate:"omitempty,datetime=2006-01-02"`
	Categoria          *string `json:"categoria" col:"categoria" validate:"omitempty,max=100"`
	ReemplazanteTipo   *string `json:"reemplazanteTipo" col:"reemplazante_tipo" validate:"omitempty,oneof=Titular Suplente"`

	PesoNacimiento         *float64 `json:"pesoNacimiento" col:"peso_nacimiento" validate:"omitempty,min=0"`
	PesoActual             *float64 `json:"pesoActual" col:"peso_actual" validate:"omitempty,min=0"`
	CircunferenciaEscrotal *float64 `json:"circunferenciaEscrotal" col:"circunferencia_escrotal" validate:"omitempty,min=0"`

	Observaciones *string `json:"observaciones" col:"observaciones" validate:"omitempty,max=1000"`
}

// AnimalResponse flattens the joined row: breed (and via it, species),
// inscription type and expositor display names are denormalized for lists
// and the jury report.
type AnimalResponse struct {
	ID                string `json:"id"`
	ExpositorID       string `json:"expositorId"`
	RazaID            int    `json:"razaId"`
	TipoInscripcionID int    `json:"tipoInscripcionId"`

	RP              string  `json:"rp"`
	Nombre          *string `json:"nombre,omitempty"`
	Sexo            string  `json:"sexo"`
	FechaNacimiento *string `json:"fechaNacimiento,omitempty"`

	LoteNro        *int `json:"loteNro,omitempty"`
	OrdenCatalogo  *int `json:"ordenCatalogo,omitempty"`
	Venta          bool `json:"venta"`
	AceptaTerminos bool `json:"aceptaTerminos"`

	RegistroAsociacion *string `json:"registroAsociacion,omitempty"`
	RegistroPadre      *string `json:"registroPadre,omitempty"`
	RegistroMadre      *string `json:"registroMadre,omitempty"`
	FechaServicio      *string `json:"fechaServicio,omitempty"`
	Categoria          *string `json:"categoria,omitempty"`
	ReemplazanteTipo   *string `json:"reemplazanteTipo,omitempty"`

	PesoNacimiento         *float64 `json:"pesoNacimiento,omitempty"`
	PesoActual             *float64 `json:"pesoActual,omitempty"`
	CircunferenciaEscrotal *float64 `json:"circunferenciaEscrotal,omitempty"`

	Observaciones *string `json:"observaciones,omitempty"`

	RazaNombre            string `json:"razaNombre"`
	EspecieNombre         string `json:"especieNombre"`
	TipoInscripcionNombre string `json:"tipoInscripcionNombre"`
	ExpositorRazonSocial  string `json:"expositorRazonSocial"`
	ExpositorNombreCabana string `json:"expositorNombreCabana"`

	CreatedAt string `json:"createdAt"`
}
