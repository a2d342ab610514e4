package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/MauriicioRibotta/RuralJMSolution/internal/contract"
	"github.com/MauriicioRibotta/RuralJMSolution/internal/infrastructure/idp"
	"github.com/MauriicioRibotta/RuralJMSolution/internal/utils"
	"github.com/MauriicioRibotta/RuralJMSolution/internal/utils/apierror"
)

type RegistrationService interface {
	Begin(ident *idp.Identity, req *contract.BeginRegistrationRequest) (*contract.RegistrationStateResponse, apierror.ErrorResponse)
	Current(ident *idp.Identity) (*contract.RegistrationStateResponse, apierror.ErrorResponse)
	Clear(ident *idp.Identity) apierror.ErrorResponse
}

type DefaultRegistrationRoute struct {
	RegistrationService RegistrationService
}

func NewRegistrationDefault(registrationService RegistrationService) *DefaultRegistrationRoute {
	return &DefaultRegistrationRoute{RegistrationService: registrationService}
}

func (r *DefaultRegistrationRoute) BeginRegistration(c echo.Context) error {
	ident, cerr := utils.GetIdentityFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	var req contract.BeginRegistrationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	state, apierr := r.RegistrationService.Begin(ident, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, state)
}

func (r *DefaultRegistrationRoute) GetRegistration(c echo.Context) error {
	ident, cerr := utils.GetIdentityFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	state, apierr := r.RegistrationService.Current(ident)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, state)
}

func (r *DefaultRegistrationRoute) ClearRegistration(c echo.Context) error {
	ident, cerr := utils.GetIdentityFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	if apierr := r.RegistrationService.Clear(ident); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusOK)
}
