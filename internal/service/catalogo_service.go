package service

import (
	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"

	"github.com/MauriicioRibotta/RuralJMSolution/internal/contract"
	"github.com/MauriicioRibotta/RuralJMSolution/internal/domain/entity"
	"github.com/MauriicioRibotta/RuralJMSolution/internal/utils"
	"github.com/MauriicioRibotta/RuralJMSolution/internal/utils/apierror"
)

type CatalogoRepository interface {
	FindAllEspecies() ([]*entity.Especie, error)
	FindAllRazas() ([]*entity.Raza, error)
	FindAllTiposInscripcion() ([]*entity.TipoInscripcion, error)
	SaveEspecie(especie *entity.Especie) error
	DeleteEspecie(id int) error
	SaveRaza(raza *entity.Raza) error
	DeleteRaza(id int) error
	SaveTipoInscripcion(tipo *entity.TipoInscripcion) error
	DeleteTipoInscripcion(id int) error
}

// DefaultCatalogoService serves the three reference tables. Reads are open;
// the mutating operations back the administrative catalog screens.
type DefaultCatalogoService struct {
	CatalogoRepo CatalogoRepository
	Validate     *validator.Validate
}

func NewCatalogoService(catalogoRepo CatalogoRepository, validate *validator.Validate) *DefaultCatalogoService {
	return &DefaultCatalogoService{
		CatalogoRepo: catalogoRepo,
		Validate:     validate,
	}
}

func (s *DefaultCatalogoService) GetEspecies() ([]*contract.EspecieResponse, apierror.ErrorResponse) {
	especies, err := s.CatalogoRepo.FindAllEspecies()
	if err != nil {
		log.Errorf("failed to fetch especies: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*contract.EspecieResponse, len(especies))
	for i, especie := range especies {
		resp[i] = &contract.EspecieResponse{ID: especie.ID, Nombre: especie.Nombre}
	}
	return resp, nil
}

func (s *DefaultCatalogoService) GetRazas() ([]*contract.RazaResponse, apierror.ErrorResponse) {
	razas, err := s.CatalogoRepo.FindAllRazas()
	if err != nil {
		log.Errorf("failed to fetch razas: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*contract.RazaResponse, len(razas))
	for i, raza := range razas {
		resp[i] = &contract.RazaResponse{
			ID:            raza.ID,
			Nombre:        raza.Nombre,
			EspecieID:     raza.EspecieID,
			EspecieNombre: raza.Especie.Nombre,
		}
	}
	return resp, nil
}

func (s *DefaultCatalogoService) GetTiposInscripcion() ([]*contract.TipoInscripcionResponse, apierror.ErrorResponse) {
	tipos, err := s.CatalogoRepo.FindAllTiposInscripcion()
	if err != nil {
		log.Errorf("failed to fetch tipos de inscripcion: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*contract.TipoInscripcionResponse, len(tipos))
	for i, tipo := range tipos {
		resp[i] = &contract.TipoInscripcionResponse{ID: tipo.ID, Nombre: tipo.Nombre}
	}
	return resp, nil
}

func (s *DefaultCatalogoService) SaveEspecie(id int, req *contract.EspecieRequest) (*contract.EspecieResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if err := s.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	especie := &entity.Especie{ID: id, Nombre: req.Nombre}
	if err := s.CatalogoRepo.SaveEspecie(especie); err != nil {
		log.Errorf("failed to save especie: %v", err)
		return nil, apierror.InternalServerError
	}
	return &contract.EspecieResponse{ID: especie.ID, Nombre: especie.Nombre}, nil
}

func (s *DefaultCatalogoService) DeleteEspecie(id int) apierror.ErrorResponse {
	if err := s.CatalogoRepo.DeleteEspecie(id); err != nil {
		log.Errorf("failed to delete especie %d: %v", id, err)
		return apierror.InternalServerError
	}
	return nil
}

func (s *DefaultCatalogoService) SaveRaza(id int, req *contract.RazaRequest) (*contract.RazaResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if err := s.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	raza := &entity.Raza{ID: id, Nombre: req.Nombre, EspecieID: req.EspecieID}
	if err := s.CatalogoRepo.SaveRaza(raza); err != nil {
		log.Errorf("failed to save raza: %v", err)
		return nil, apierror.InternalServerError
	}
	return &contract.RazaResponse{ID: raza.ID, Nombre: raza.Nombre, EspecieID: raza.EspecieID}, nil
}

func (s *DefaultCatalogoService) DeleteRaza(id int) apierror.ErrorResponse {
	if err := s.CatalogoRepo.DeleteRaza(id); err != nil {
		log.Errorf("failed to delete raza %d: %v", id, err)
		return apierror.InternalServerError
	}
	return nil
}

func (s *DefaultCatalogoService) SaveTipoInscripcion(id int, req *contract.TipoInscripcionRequest) (*contract.TipoInscripcionResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if err := s.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	tipo := &entity.TipoInscripcion{ID: id, Nombre: req.Nombre}
	if err := s.CatalogoRepo.SaveTipoInscripcion(tipo); err != nil {
		log.Errorf("failed to save tipo de inscripcion: %v", err)
		return nil, apierror.InternalServerError
	}
	return &contract.TipoInscripcionResponse{ID: tipo.ID, Nombre: tipo.Nombre}, nil
}

func (s *DefaultCatalogoService) DeleteTipoInscripcion(id int) apierror.ErrorResponse {
	if err := s.CatalogoRepo.DeleteTipoInscripcion(id); err != nil {
		log.Errorf("failed to delete tipo de inscripcion %d: %v", id, err)
		return apierror.InternalServerError
	}
	return nil
}
