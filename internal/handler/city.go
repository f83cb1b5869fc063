package handler

import (
	"github.com/deppfellow/geotemp/internal/model"
	"github.com/deppfellow/geotemp/internal/schema"
	"github.com/deppfellow/geotemp/internal/server"
	"github.com/deppfellow/geotemp/internal/service"
	"github.com/deppfellow/geotemp/internal/validation"
	"github.com/labstack/echo/v4"
)

type CreateCityRequest struct {
	bodyRequest
	Input model.CityInput
}

func (r *CreateCityRequest) Bind(c echo.Context) error {
	return r.bindBody(c)
}

func (r *CreateCityRequest) Validate() error {
	if err := validation.CheckPayload(r.payload, schema.MustLookup(schema.City, schema.Create)); err != nil {
		return err
	}
	r.Input = cityInput(r.payload)
	return nil
}

type UpdateCityRequest struct {
	updateRequest
	Input model.CityInput
}

func (r *UpdateCityRequest) Bind(c echo.Context) error {
	return r.bindUpdate(c)
}

func (r *UpdateCityRequest) Validate() error {
	if err := r.checkUpdate(schema.City); err != nil {
		return err
	}
	r.Input = cityInput(r.payload)
	return nil
}

func cityInput(p validation.Payload) model.CityInput {
	return model.CityInput{
		CountryID: p.Int64("country_id"),
		Name:      p.String("name"),
		Lat:       p.Float64("lat"),
		Lon:       p.Float64("lon"),
	}
}

type CityHandler struct {
	Handler
	cityService *service.CityService
}

func NewCityHandler(s *server.Server, cityService *service.CityService) *CityHandler {
	return &CityHandler{
		Handler:     NewHandler(s),
		cityService: cityService,
	}
}

func (h *CityHandler) ListCities(c echo.Context, _ *EmptyRequest) ([]model.City, error) {
	cities, err := h.cityService.List(c.Request().Context())
	return nonNil(cities), err
}

func (h *CityHandler) ListCitiesByCountry(c echo.Context, req *IDRequest) ([]model.City, error) {
	cities, err := h.cityService.ListByCountry(c.Request().Context(), req.ID)
	return nonNil(cities), err
}

func (h *CityHandler) CreateCity(c echo.Context, req *CreateCityRequest) (model.CreatedResponse, error) {
	id, err := h.cityService.Create(c.Request().Context(), req.Input)
	if err != nil {
		return model.CreatedResponse{}, err
	}
	return model.CreatedResponse{ID: id}, nil
}

func (h *CityHandler) UpdateCity(c echo.Context, req *UpdateCityRequest) (string, error) {
	if err := h.cityService.Update(c.Request().Context(), req.ID, req.Input); err != nil {
		return "", err
	}
	return "DB updated with new city info", nil
}

func (h *CityHandler) DeleteCity(c echo.Context, req *IDRequest) (string, error) {
	if err := h.cityService.Delete(c.Request().Context(), req.ID); err != nil {
		return "", err
	}
	return "DB updated with city deleted", nil
}
