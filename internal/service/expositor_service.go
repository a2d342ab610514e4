package service

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/gommon/log"
	"gorm.io/gorm"

	"github.com/MauriicioRibotta/RuralJMSolution/internal/contract"
	"github.com/MauriicioRibotta/RuralJMSolution/internal/domain/entity"
	"github.com/MauriicioRibotta/RuralJMSolution/internal/domain/fieldmap"
	"github.com/MauriicioRibotta/RuralJMSolution/internal/infrastructure/idp"
	"github.com/MauriicioRibotta/RuralJMSolution/internal/utils"
	"github.com/MauriicioRibotta/RuralJMSolution/internal/utils/apierror"
)

type ExpositorRepository interface {
	FindAll() ([]*entity.Expositor, error)
	FindByID(id string) (*entity.Expositor, error)
	FindByCuit(cuit string) (*entity.Expositor, error)
	FindByEmail(email string) (*entity.Expositor, error)
	Insert(fields map[string]any) error
	UpdateFields(id string, fields map[string]any) error
}

type DefaultExpositorService struct {
	ExpositorRepo ExpositorRepository
	Validate      *validator.Validate
}

func NewExpositorService(expositorRepo ExpositorRepository, validate *validator.Validate) *DefaultExpositorService {
	return &DefaultExpositorService{
		ExpositorRepo: expositorRepo,
		Validate:      validate,
	}
}

// CreateExpositor pre-checks the CUIT before inserting; the unique index
// still backstops concurrent submissions of the same CUIT.
func (s *DefaultExpositorService) CreateExpositor(req *contract.CreateExpositorRequest) (*contract.ExpositorResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if err := s.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	existing, err := s.ExpositorRepo.FindByCuit(req.Cuit)
	if err != nil {
		log.Errorf("failed to check cuit %s: %v", req.Cuit, err)
		return nil, apierror.InternalServerError
	}
	if existing != nil {
		return nil, apierror.DuplicateCuitError
	}

	now := utils.NowUTC()
	fields := fieldmap.ToColumns(req)
	fields["id"] = uuid.NewString()
	fields["created_at"] = now
	fields["updated_at"] = now

	if err := s.ExpositorRepo.Insert(fields); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apierror.DuplicateCuitError
		}
		log.Errorf("failed to create expositor: %v", err)
		return nil, apierror.InternalServerError
	}

	created, err := s.ExpositorRepo.FindByID(fields["id"].(string))
	if err != nil || created == nil {
		log.Errorf("failed to fetch created expositor %s: %v", fields["id"], err)
		return nil, apierror.InternalServerError
	}
	return toExpositorResponse(created), nil
}

func (s *DefaultExpositorService) GetExpositores() ([]*contract.ExpositorResponse, apierror.ErrorResponse) {
	expositores, err := s.ExpositorRepo.FindAll()
	if err != nil {
		log.Errorf("failed to fetch expositores: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*contract.ExpositorResponse, len(expositores))
	for i, expositor := range expositores {
		resp[i] = toExpositorResponse(expositor)
	}
	return resp, nil
}

func (s *DefaultExpositorService) GetExpositor(id string) (*contract.ExpositorResponse, apierror.ErrorResponse) {
	expositor, err := s.ExpositorRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch expositor %s: %v", id, err)
		return nil, apierror.InternalServerError
	}

	if expositor == nil {
		return nil, apierror.NotFoundError
	}
	return toExpositorResponse(expositor), nil
}

// GetExpositorByCuit is an existence probe: a miss returns (nil, nil) so the
// registration forms can tell "new expositor" apart from a failure.
func (s *DefaultExpositorService) GetExpositorByCuit(cuit string) (*contract.ExpositorResponse, apierror.ErrorResponse) {
	expositor, err := s.ExpositorRepo.FindByCuit(cuit)
	if err != nil {
		log.Errorf("failed to fetch expositor by cuit %s: %v", cuit, err)
		return nil, apierror.InternalServerError
	}

	if expositor == nil {
		return nil, nil
	}
	return toExpositorResponse(expositor), nil
}

// GetProfile resolves the authenticated identity to its expositor record.
// Having no profile yet is a valid state for a fresh account, reported as 404.
func (s *DefaultExpositorService) GetProfile(ident *idp.Identity) (*contract.ExpositorResponse, apierror.ErrorResponse) {
	if ident == nil || ident.Email == "" {
		return nil, apierror.UnauthorizedError
	}

	expositor, err := s.ExpositorRepo.FindByEmail(ident.Email)
	if err != nil {
		log.Errorf("failed to fetch profile for %s: %v", ident.Email, err)
		return nil, apierror.InternalServerError
	}

	if expositor == nil {
		return nil, apierror.ProfileNotFoundError
	}
	return toExpositorResponse(expositor), nil
}

// UpdateExpositor maps only the supplied fields and always stamps updated_at,
// even when the payload carries nothing else.
func (s *DefaultExpositorService) UpdateExpositor(id string, req *contract.UpdateExpositorRequest) (*contract.ExpositorResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if err := s.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	existing, err := s.ExpositorRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch expositor %s: %v", id, err)
		return nil, apierror.InternalServerError
	}
	if existing == nil {
		return nil, apierror.NotFoundError
	}

	fields := fieldmap.ToColumns(req)
	fields["updated_at"] = utils.NowUTC()

	if err := s.ExpositorRepo.UpdateFields(id, fields); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apierror.NewSimple(409, "Another expositor already uses this email")
		}
		log.Errorf("failed to update expositor %s: %v", id, err)
		return nil, apierror.InternalServerError
	}

	updated, err := s.ExpositorRepo.FindByID(id)
	if err != nil || updated == nil {
		log.Errorf("failed to fetch updated expositor %s: %v", id, err)
		return nil, apierror.InternalServerError
	}
	return toExpositorResponse(updated), nil
}

func toExpositorResponse(expositor *entity.Expositor) *contract.ExpositorResponse {
	return &contract.ExpositorResponse{
		ID:           expositor.ID,
		Cuit:         expositor.Cuit,
		RazonSocial:  expositor.RazonSocial,
		NombreCabana: expositor.NombreCabana,
		Email:        expositor.Email,
		Telefono:     expositor.Telefono,
		Provincia:    expositor.Provincia,
		Localidad:    expositor.Localidad,
		Departamento: expositor.Departamento,
		CreatedAt:    utils.FormatTime(expositor.CreatedAt),
		UpdatedAt:    utils.FormatTime(expositor.UpdatedAt),
	}
}
