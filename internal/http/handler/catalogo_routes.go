package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/MauriicioRibotta/RuralJMSolution/internal/contract"
	"github.com/MauriicioRibotta/RuralJMSolution/internal/utils/apierror"
)

type CatalogoService interface {
	GetEspecies() ([]*contract.EspecieResponse, apierror.ErrorResponse)
	GetRazas() ([]*contract.RazaResponse, apierror.ErrorResponse)
	GetTiposInscripcion() ([]*contract.TipoInscripcionResponse, apierror.ErrorResponse)
	SaveEspecie(id int, req *contract.EspecieRequest) (*contract.EspecieResponse, apierror.ErrorResponse)
	DeleteEspecie(id int) apierror.ErrorResponse
	SaveRaza(id int, req *contract.RazaRequest) (*contract.RazaResponse, apierror.ErrorResponse)
	DeleteRaza(id int) apierror.ErrorResponse
	SaveTipoInscripcion(id int, req *contract.TipoInscripcionRequest) (*contract.TipoInscripcionResponse, apierror.ErrorResponse)
	DeleteTipoInscripcion(id int) apierror.ErrorResponse
}

type DefaultCatalogoRoute struct {
	CatalogoService CatalogoService
}

func NewCatalogoDefault(catalogoService CatalogoService) *DefaultCatalogoRoute {
	return &DefaultCatalogoRoute{CatalogoService: catalogoService}
}

func (r *DefaultCatalogoRoute) GetEspecies(c echo.Context) error {
	especies, apierr := r.CatalogoService.GetEspecies()
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, especies)
}

func (r *DefaultCatalogoRoute) GetRazas(c echo.Context) error {
	razas, apierr := r.CatalogoService.GetRazas()
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, razas)
}

func (r *DefaultCatalogoRoute) GetTiposInscripcion(c echo.Context) error {
	tipos, apierr := r.CatalogoService.GetTiposInscripcion()
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, tipos)
}

func (r *DefaultCatalogoRoute) CreateEspecie(c echo.Context) error {
	var req contract.EspecieRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	especie, apierr := r.CatalogoService.SaveEspecie(0, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, especie)
}

func (r *DefaultCatalogoRoute) UpdateEspecie(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("id", "int"))
	}

	var req contract.EspecieRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	especie, apierr := r.CatalogoService.SaveEspecie(id, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, especie)
}

func (r *DefaultCatalogoRoute) DeleteEspecie(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("id", "int"))
	}

	if apierr := r.CatalogoService.DeleteEspecie(id); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusOK)
}

func (r *DefaultCatalogoRoute) CreateRaza(c echo.Context) error {
	var req contract.RazaRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	raza, apierr := r.CatalogoService.SaveRaza(0, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, raza)
}

func (r *DefaultCatalogoRoute) UpdateRaza(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("id", "int"))
	}

	var req contract.RazaRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	raza, apierr := r.CatalogoService.SaveRaza(id, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, raza)
}

func (r *DefaultCatalogoRoute) DeleteRaza(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("id", "int"))
	}

	if apierr := r.CatalogoService.DeleteRaza(id); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusOK)
}

func (r *DefaultCatalogoRoute) CreateTipoInscripcion(c echo.Context) error {
	var req contract.TipoInscripcionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	tipo, apierr := r.CatalogoService.SaveTipoInscripcion(0, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, tipo)
}

func (r *DefaultCatalogoRoute) UpdateTipoInscripcion(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("id", "int"))
	}

	var req contract.TipoInscripcionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	tipo, apierr := r.CatalogoService.SaveTipoInscripcion(id, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, tipo)
}

func (r *DefaultCatalogoRoute) DeleteTipoInscripcion(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("id", "int"))
	}

	if apierr := r.CatalogoService.DeleteTipoInscripcion(id); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusOK)
}
