package handler

import (
	"github.com/deppfellow/geotemp/internal/model"
	"github.com/deppfellow/geotemp/internal/schema"
	"github.com/deppfellow/geotemp/internal/server"
	"github.com/deppfellow/geotemp/internal/service"
	"github.com/deppfellow/geotemp/internal/validation"
	"github.com/labstack/echo/v4"
)

type CreateCountryRequest struct {
	bodyRequest
	Input model.CountryInput
}

func (r *CreateCountryRequest) Bind(c echo.Context) error {
	return r.bindBody(c)
}

func (r *CreateCountryRequest) Validate() error {
	if err := validation.CheckPayload(r.payload, schema.MustLookup(schema.Country, schema.Create)); err != nil {
		return err
	}
	r.Input = countryInput(r.payload)
	return nil
}

type UpdateCountryRequest struct {
	updateRequest
	Input model.CountryInput
}

func (r *UpdateCountryRequest) Bind(c echo.Context) error {
	return r.bindUpdate(c)
}

func (r *UpdateCountryRequest) Validate() error {
	if err := r.checkUpdate(schema.Country); err != nil {
		return err
	}
	r.Input = countryInput(r.payload)
	return nil
}

func countryInput(p validation.Payload) model.CountryInput {
	return model.CountryInput{
		Name: p.String("name"),
		Lat:  p.Float64("lat"),
		Lon:  p.Float64("lon"),
	}
}

type CountryHandler struct {
	Handler
	countryService *service.CountryService
}

func NewCountryHandler(s *server.Server, countryService *service.CountryService) *CountryHandler {
	return &CountryHandler{
		Handler:        NewHandler(s),
		countryService: countryService,
	}
}

func (h *CountryHandler) ListCountries(c echo.Context, _ *EmptyRequest) ([]model.Country, error) {
	countries, err := h.countryService.List(c.Request().Context())
	return nonNil(countries), err
}

func (h *CountryHandler) CreateCountry(c echo.Context, req *CreateCountryRequest) (model.CreatedResponse, error) {
	id, err := h.countryService.Create(c.Request().Context(), req.Input)
	if err != nil {
		return model.CreatedResponse{}, err
	}
	return model.CreatedResponse{ID: id}, nil
}

func (h *CountryHandler) UpdateCountry(c echo.Context, req *UpdateCountryRequest) (string, error) {
	if err := h.countryService.Update(c.Request().Context(), req.ID, req.Input); err != nil {
		return "", err
	}
	return "DB updated with new country info", nil
}

func (h *CountryHandler) DeleteCountry(c echo.Context, req *IDRequest) (string, error) {
	if err := h.countryService.Delete(c.Request().Context(), req.ID); err != nil {
		return "", err
	}
	return "DB updated with country of given id deleted", nil
}

// nonNil keeps empty reads encoded as [] rather than null.
func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
