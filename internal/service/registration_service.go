package service

import (
	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"

	"github.com/MauriicioRibotta/RuralJMSolution/internal/contract"
	"github.com/MauriicioRibotta/RuralJMSolution/internal/domain/entity"
	"github.com/MauriicioRibotta/RuralJMSolution/internal/infrastructure/idp"
	"github.com/MauriicioRibotta/RuralJMSolution/internal/utils"
	"github.com/MauriicioRibotta/RuralJMSolution/internal/utils/apierror"
)

type RegistrationStateRepository interface {
	FindByEmail(email string) (*entity.RegistrationState, error)
	Save(state *entity.RegistrationState) error
	DeleteByEmail(email string) error
}

// DefaultRegistrationService holds the "currently identified expositor" of
// the multi-step registration flow as an explicit per-identity state with a
// begin/clear lifecycle, instead of ambient client-side storage.
type DefaultRegistrationService struct {
	RegistrationRepo RegistrationStateRepository
	ExpositorRepo    ExpositorRepository
	Validate         *validator.Validate
}

func NewRegistrationService(
	registrationRepo RegistrationStateRepository,
	expositorRepo ExpositorRepository,
	validate *validator.Validate,
) *DefaultRegistrationService {
	return &DefaultRegistrationService{
		RegistrationRepo: registrationRepo,
		ExpositorRepo:    expositorRepo,
		Validate:         validate,
	}
}

// Begin identifies the expositor the flow registers animals for. Restarting
// the flow with another CUIT simply replaces the previous state.
func (s *DefaultRegistrationService) Begin(ident *idp.Identity, req *contract.BeginRegistrationRequest) (*contract.RegistrationStateResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if err := s.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	expositor, err := s.ExpositorRepo.FindByCuit(req.Cuit)
	if err != nil {
		log.Errorf("failed to resolve cuit %s: %v", req.Cuit, err)
		return nil, apierror.InternalServerError
	}
	if expositor == nil {
		return nil, apierror.UnknownCuitError
	}

	state := &entity.RegistrationState{
		IdentityEmail: ident.Email,
		ExpositorID:   expositor.ID,
		Cuit:          expositor.Cuit,
		RazonSocial:   expositor.RazonSocial,
		CreatedAt:     utils.NowUTC(),
	}
	if err := s.RegistrationRepo.Save(state); err != nil {
		log.Errorf("failed to save registration state for %s: %v", ident.Email, err)
		return nil, apierror.InternalServerError
	}
	return toRegistrationStateResponse(state), nil
}

func (s *DefaultRegistrationService) Current(ident *idp.Identity) (*contract.RegistrationStateResponse, apierror.ErrorResponse) {
	state, err := s.RegistrationRepo.FindByEmail(ident.Email)
	if err != nil {
		log.Errorf("failed to fetch registration state for %s: %v", ident.Email, err)
		return nil, apierror.InternalServerError
	}

	if state == nil {
		return nil, apierror.NoActiveFlowError
	}
	return toRegistrationStateResponse(state), nil
}

// Clear ends the flow. Clearing an already-clear flow is a no-op success.
func (s *DefaultRegistrationService) Clear(ident *idp.Identity) apierror.ErrorResponse {
	if err := s.RegistrationRepo.DeleteByEmail(ident.Email); err != nil {
		log.Errorf("failed to clear registration state for %s: %v", ident.Email, err)
		return apierror.InternalServerError
	}
	return nil
}

func toRegistrationStateResponse(state *entity.RegistrationState) *contract.RegistrationStateResponse {
	return &contract.RegistrationStateResponse{
		ExpositorID: state.ExpositorID,
		Cuit:        state.Cuit,
		RazonSocial: state.RazonSocial,
		StartedAt:   utils.FormatTime(state.CreatedAt),
	}
}
