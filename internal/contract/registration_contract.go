package contract

// BeginRegistrationRequest starts the multi-step registration flow by
// identifying the expositor the following animal entries belong to.
type BeginRegistrationRequest struct {
	Cuit string `json:"cuit" validate:"required,cuit"`
}

type RegistrationStateResponse struct {
	ExpositorID string `json:"expositorId"`
	Cuit        string `json:"cuit"`
	RazonSocial string `json:"razonSocial"`
	StartedAt   string `json:"startedAt"`
}
