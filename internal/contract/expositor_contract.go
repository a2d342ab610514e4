package contract

type CreateExpositorRequest struct {
	Cuit         string  `json:"cuit" col:"cuit" validate:"required,cuit"`
	RazonSocial  string  `json:"razonSocial" col:"razon_social" validate:"required,max=200"`
	NombreCabana string  `json:"nombreCabana" col:"nombre_cabana" validate:"required,max=200"`
	Email        *string `json:"email" col:"email" validate:"omitempty,email"`
	Telefono     *string `json:"telefono" col:"telefono" validate:"omitempty,max=50"`
	Provincia    *string `json:"provincia" col:"provincia" validate:"omitempty,max=100"`
	Localidad    *string `json:"localidad" col:"localidad" validate:"omitempty,max=100"`
	Departamento *string `json:"departamento" col:"departamento" validate:"omitempty,max=100"`
}

// UpdateExpositorRequest deliberately has no cuit field: the tax id is the
// expositor's natural key and never changes after creation.
type UpdateExpositorRequest struct {
	RazonSocial  *string `json:"razonSocial" col:"razon_social" validate:"omitempty,max=200"`
	NombreCabana *string `json:"nombreCabana" col:"nombre_cabana" validate:"omitempty,max=200"`
	Email        *string `json:"email" col:"email" validate:"omitempty,email"`
	Telefono     *string `json:"telefono" col:"telefono" validate:"omitempty,max=50"`
	Provincia    *string `json:"provincia" col:"provincia" validate:"omitempty,max=100"`
	Localidad    *string `json:"localidad" col:"localidad" validate:"omitempty,max=100"`
	Departamento *string `json:"departamento" col:"departamento" validate:"omitempty,max=100"`
}

type ExpositorResponse struct {
	ID           string  `json:"id"`
	Cuit         string  `json:"cuit"`
	RazonSocial  string  `json:"razonSocial"`
	NombreCabana string  `json:"nombreCabana"`
	Email        *string `json:"email,omitempty"`
	Telefono     *string `json:"telefono,omitempty"`
	Provincia    *string `json:"provincia,omitempty"`
	Localidad    *string `json:"localidad,omitempty"`
	Departamento *string `json:"departamento,omitempty"`
	CreatedAt    string  `json:"createdAt"`
	UpdatedAt    string  `json:"updatedAt"`
}
