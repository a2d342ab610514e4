package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/MauriicioRibotta/RuralJMSolution/internal/contract"
	"github.com/MauriicioRibotta/RuralJMSolution/internal/infrastructure/idp"
	"github.com/MauriicioRibotta/RuralJMSolution/internal/utils"
	"github.com/MauriicioRibotta/RuralJMSolution/internal/utils/apierror"
)

type ExpositorService interface {
	CreateExpositor(req *contract.CreateExpositorRequest) (*contract.ExpositorResponse, apierror.ErrorResponse)
	GetExpositores() ([]*contract.ExpositorResponse, apierror.ErrorResponse)
	GetExpositor(id string) (*contract.ExpositorResponse, apierror.ErrorResponse)
	GetExpositorByCuit(cuit string) (*contract.ExpositorResponse, apierror.ErrorResponse)
	GetProfile(ident *idp.Identity) (*contract.ExpositorResponse, apierror.ErrorResponse)
	UpdateExpositor(id string, req *contract.UpdateExpositorRequest) (*contract.ExpositorResponse, apierror.ErrorResponse)
}

type DefaultExpositorRoute struct {
	ExpositorService ExpositorService
}

func NewExpositorDefault(expositorService ExpositorService) *DefaultExpositorRoute {
	return &DefaultExpositorRoute{ExpositorService: expositorService}
}

func (e *DefaultExpositorRoute) CreateExpositor(c echo.Context) error {
	var req contract.CreateExpositorRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	expositor, apierr := e.ExpositorService.CreateExpositor(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, expositor)
}

func (e *DefaultExpositorRoute) GetExpositores(c echo.Context) error {
	expositores, apierr := e.ExpositorService.GetExpositores()
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, expositores)
}

func (e *DefaultExpositorRoute) GetProfile(c echo.Context) error {
	ident, cerr := utils.GetIdentityFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	profile, apierr := e.ExpositorService.GetProfile(ident)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, profile)
}

// GetExpositorByCuit is a probe for the registration forms: an unknown CUIT
// answers 200 with a null body, not 404.
func (e *DefaultExpositorRoute) GetExpositorByCuit(c echo.Context) error {
	cuit := strings.TrimSpace(c.Param("cuit"))
	if cuit == "" {
		return c.JSON(http.StatusBadRequest, apierror.NewMissingParamError("cuit"))
	}

	expositor, apierr := e.ExpositorService.GetExpositorByCuit(cuit)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, expositor)
}

func (e *DefaultExpositorRoute) GetExpositor(c echo.Context) error {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return c.JSON(http.StatusBadRequest, apierror.NewMissingParamError("id"))
	}

	expositor, apierr := e.ExpositorService.GetExpositor(id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, expositor)
}

func (e *DefaultExpositorRoute) UpdateExpositor(c echo.Context) error {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return c.JSON(http.StatusBadRequest, apierror.NewMissingParamError("id"))
	}

	var req contract.UpdateExpositorRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	expositor, apierr := e.ExpositorService.UpdateExpositor(id, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, expositor)
}
