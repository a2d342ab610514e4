package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/MauriicioRibotta/RuralJMSolution/internal/contract"
	"github.com/MauriicioRibotta/RuralJMSolution/internal/infrastructure/idp"
	"github.com/MauriicioRibotta/RuralJMSolution/internal/service"
	"github.com/MauriicioRibotta/RuralJMSolution/internal/utils"
	"github.com/MauriicioRibotta/RuralJMSolution/internal/utils/apierror"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type AnimalService interface {
	CreateAnimal(ident *idp.Identity, req *contract.CreateAnimalRequest) (*contract.AnimalResponse, apierror.ErrorResponse)
	ListAnimals(ident *idp.Identity, cuitFilter string) ([]*contract.AnimalResponse, apierror.ErrorResponse)
	GetAnimal(id string) (*contract.AnimalResponse, apierror.ErrorResponse)
	UpdateAnimal(id string, req *contract.UpdateAnimalRequest) (*contract.AnimalResponse, apierror.ErrorResponse)
	DeleteAnimal(id string) apierror.ErrorResponse
}

type ReportService interface {
	GenerateJuryReport(animals []*contract.AnimalResponse) ([]byte, apierror.ErrorResponse)
}

type DefaultAnimalRoute struct {
	AnimalService AnimalService
	ReportService ReportService
}

func NewAnimalDefault(animalService AnimalService, reportService ReportService) *DefaultAnimalRoute {
	return &DefaultAnimalRoute{
		AnimalService: animalService,
		ReportService: reportService,
	}
}

func (a *DefaultAnimalRoute) CreateAnimal(c echo.Context) error {
	ident, cerr := utils.GetIdentityFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	var req contract.CreateAnimalRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	animal, apierr := a.AnimalService.CreateAnimal(ident, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, animal)
}

func (a *DefaultAnimalRoute) GetAnimals(c echo.Context) error {
	ident, cerr := utils.GetIdentityFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	cuit := strings.TrimSpace(c.QueryParam("cuit"))
	animals, apierr := a.AnimalService.ListAnimals(ident, cuit)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, animals)
}

// ExportAnimals streams the jury report. The listing that feeds it goes
// through the same ownership scoping as GetAnimals, so an expositor exports
// their own animals and an administrator exports everything.
func (a *DefaultAnimalRoute) ExportAnimals(c echo.Context) error {
	ident, cerr := utils.GetIdentityFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	animals, apierr := a.AnimalService.ListAnimals(ident, "")
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	data, apierr := a.ReportService.GenerateJuryReport(animals)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, "attachment; filename="+service.ReportFileName)
	return c.Blob(http.StatusOK, xlsxContentType, data)
}

func (a *DefaultAnimalRoute) GetAnimal(c echo.Context) error {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return c.JSON(http.StatusBadRequest, apierror.NewMissingParamError("id"))
	}

	animal, apierr := a.AnimalService.GetAnimal(id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, animal)
}

func (a *DefaultAnimalRoute) UpdateAnimal(c echo.Context) error {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return c.JSON(http.StatusBadRequest, apierror.NewMissingParamError("id"))
	}

	var req contract.UpdateAnimalRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	animal, apierr := a.AnimalService.UpdateAnimal(id, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, animal)
}

func (a *DefaultAnimalRoute) DeleteAnimal(c echo.Context) error {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return c.JSON(http.StatusBadRequest, apierror.NewMissingParamError("id"))
	}

	if apierr := a.AnimalService.DeleteAnimal(id); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusOK)
}
