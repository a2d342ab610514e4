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

type AnimalRepository interface {
	FindAll(expositorID string) ([]*entity.Animal, error)
	FindByID(id string) (*entity.Animal, error)
	Insert(fields map[string]any) error
	UpdateFields(id string, fields map[string]any) error
	Delete(animal *entity.Animal) error
}

type DefaultAnimalService struct {
	AnimalRepo    AnimalRepository
	ExpositorRepo ExpositorRepository
	Validate      *validator.Validate
}

func NewAnimalService(animalRepo AnimalRepository, expositorRepo ExpositorRepository, validate *validator.Validate) *DefaultAnimalService {
	return &DefaultAnimalService{
		AnimalRepo:    animalRepo,
		ExpositorRepo: expositorRepo,
		Validate:      validate,
	}
}

// CreateAnimal registers a new animal. When the caller's identity resolves to
// an expositor profile, that profile owns the animal no matter what the
// payload says; an explicit conflicting expositorId is rejected outright.
// Callers without a profile (administrative) must name the owner.
func (s *DefaultAnimalService) CreateAnimal(ident *idp.Identity, req *contract.CreateAnimalRequest) (*contract.AnimalResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if err := s.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	owner, apierr := s.resolveOwner(ident)
	if apierr != nil {
		return nil, apierr
	}

	var expositorID string
	switch {
	case owner != nil && req.ExpositorID != nil && *req.ExpositorID != owner.ID:
		return nil, apierror.OwnershipError
	case owner != nil:
		expositorID = owner.ID
	case req.ExpositorID != nil:
		expositorID = *req.ExpositorID
	default:
		return nil, apierror.MissingExpositorIDError
	}

	fields := fieldmap.ToColumns(req)
	fields["expositor_id"] = expositorID
	fields["id"] = uuid.NewString()
	fields["created_at"] = utils.NowUTC()

	if err := s.AnimalRepo.Insert(fields); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apierror.DuplicateRPError
		}
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, apierror.NewSimple(400, "Referenced expositor, raza or tipo de inscripcion does not exist")
		}
		log.Errorf("failed to create animal: %v", err)
		return nil, apierror.InternalServerError
	}

	created, err := s.AnimalRepo.FindByID(fields["id"].(string))
	if err != nil || created == nil {
		log.Errorf("failed to fetch created animal %s: %v", fields["id"], err)
		return nil, apierror.InternalServerError
	}
	return toAnimalResponse(created), nil
}

// ListAnimals applies the two-tier scoping rule: an identity with an
// expositor profile only ever sees its own animals (any CUIT filter is
// ignored); an administrative caller may filter by CUIT, and an unresolvable
// CUIT yields an empty list, not an error.
func (s *DefaultAnimalService) ListAnimals(ident *idp.Identity, cuitFilter string) ([]*contract.AnimalResponse, apierror.ErrorResponse) {
	owner, apierr := s.resolveOwner(ident)
	if apierr != nil {
		return nil, apierr
	}

	var scope string
	switch {
	case owner != nil:
		scope = owner.ID
	case cuitFilter != "":
		filterExpositor, err := s.ExpositorRepo.FindByCuit(cuitFilter)
		if err != nil {
			log.Errorf("failed to resolve cuit filter %s: %v", cuitFilter, err)
			return nil, apierror.InternalServerError
		}
		if filterExpositor == nil {
			return []*contract.AnimalResponse{}, nil
		}
		scope = filterExpositor.ID
	}

	animals, err := s.AnimalRepo.FindAll(scope)
	if err != nil {
		log.Errorf("failed to fetch animals: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*contract.AnimalResponse, len(animals))
	for i, animal := range animals {
		resp[i] = toAnimalResponse(animal)
	}
	return resp, nil
}

func (s *DefaultAnimalService) GetAnimal(id string) (*contract.AnimalResponse, apierror.ErrorResponse) {
	animal, err := s.AnimalRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch animal %s: %v", id, err)
		return nil, apierror.InternalServerError
	}

	if animal == nil {
		return nil, apierror.NotFoundError
	}
	return toAnimalResponse(animal), nil
}

// UpdateAnimal maps only the supplied fields. A payload that maps to zero
// columns is served as a plain read; no write is issued. Ownership is not
// re-validated here: updates are reachable from the administrative screens
// only, and the owning expositor id itself stays immutable in practice.
func (s *DefaultAnimalService) UpdateAnimal(id string, req *contract.UpdateAnimalRequest) (*contract.AnimalResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if err := s.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	existing, err := s.AnimalRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch animal %s: %v", id, err)
		return nil, apierror.InternalServerError
	}
	if existing == nil {
		return nil, apierror.NotFoundError
	}

	fields := fieldmap.ToColumns(req)
	if len(fields) == 0 {
		return toAnimalResponse(existing), nil
	}

	if err := s.AnimalRepo.UpdateFields(id, fields); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apierror.DuplicateRPError
		}
		log.Errorf("failed to update animal %s: %v", id, err)
		return nil, apierror.InternalServerError
	}

	updated, err := s.AnimalRepo.FindByID(id)
	if err != nil || updated == nil {
		log.Errorf("failed to fetch updated animal %s: %v", id, err)
		return nil, apierror.InternalServerError
	}
	return toAnimalResponse(updated), nil
}

// DeleteAnimal is a hard delete. A missing row is NotFound, mirroring Get;
// the delete itself is then unconditional.
func (s *DefaultAnimalService) DeleteAnimal(id string) apierror.ErrorResponse {
	animal, err := s.AnimalRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch animal %s: %v", id, err)
		return apierror.InternalServerError
	}

	if animal == nil {
		return apierror.NotFoundError
	}

	if err := s.AnimalRepo.Delete(animal); err != nil {
		log.Errorf("failed to delete animal %s: %v", id, err)
		return apierror.InternalServerError
	}
	return nil
}

// resolveOwner maps the request identity to its expositor profile, if any.
// A caller without a linked profile is administrative: (nil, nil).
func (s *DefaultAnimalService) resolveOwner(ident *idp.Identity) (*entity.Expositor, apierror.ErrorResponse) {
	if ident == nil || ident.Email == "" {
		return nil, nil
	}

	owner, err := s.ExpositorRepo.FindByEmail(ident.Email)
	if err != nil {
		log.Errorf("failed to resolve expositor for %s: %v", ident.Email, err)
		return nil, apierror.InternalServerError
	}
	return owner, nil
}

func toAnimalResponse(animal *entity.Animal) *contract.AnimalResponse {
	return &contract.AnimalResponse{
		ID:                animal.ID,
		ExpositorID:       animal.ExpositorID,
		RazaID:            animal.RazaID,
		TipoInscripcionID: animal.TipoInscripcionID,

		RP:              animal.RP,
		Nombre:          animal.NombreAnimal,
		Sexo:            animal.Sexo,
		FechaNacimiento: animal.FechaNacimiento,

		LoteNro:        animal.LoteNro,
		OrdenCatalogo:  animal.OrdenCatalogo,
		Venta:          animal.Venta,
		AceptaTerminos: animal.AceptaTerminos,

		RegistroAsociacion: animal.RegistroAsociacion,
		RegistroPadre:      animal.RegistroPadre,
		RegistroMadre:      animal.RegistroMadre,
		FechaServicio:      animal.FechaServicio,
		Categoria:          animal.Categoria,
		ReemplazanteTipo:   animal.ReemplazanteTipo,

		PesoNacimiento:         animal.PesoNacimiento,
		PesoActual:             animal.PesoActual,
		CircunferenciaEscrotal: animal.CircunferenciaEscrotal,

		Observaciones: animal.Observaciones,

		RazaNombre:            animal.Raza.Nombre,
		EspecieNombre:         animal.Raza.Especie.Nombre,
		TipoInscripcionNombre: animal.TipoInscripcion.Nombre,
		ExpositorRazonSocial:  animal.Expositor.RazonSocial,
		ExpositorNombreCabana: animal.Expositor.NombreCabana,

		CreatedAt: utils.FormatTime(animal.CreatedAt),
	}
}
