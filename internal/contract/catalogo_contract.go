package contract

type EspecieRequest struct {
	Nombre string `json:"nombre" validate:"required,max=100"`
}

type RazaRequest struct {
	Nombre    string `json:"nombre" validate:"required,max=100"`
	EspecieID int    `json:"especieId" validate:"required,min=1"`
}

type TipoInscripcionRequest struct {
	Nombre string `json:"nombre" validate:"required,max=100"`
}

type EspecieResponse struct {
	ID     int    `json:"id"`
	Nombre string `json:"nombre"`
}

type RazaResponse struct {
	ID            int    `json:"id"`
	Nombre        string `json:"nombre"`
	EspecieID     int    `json:"especieId"`
	EspecieNombre string `json:"especieNombre"`
}

type TipoInscripcionResponse struct {
	ID     int    `json:"id"`
	Nombre string `json:"nombre"`
}
