package handler

import (
	"github.com/deppfellow/geotemp/internal/model"
	"github.com/deppfellow/geotemp/internal/repository"
	"github.com/deppfellow/geotemp/internal/schema"
	"github.com/deppfellow/geotemp/internal/server"
	"github.com/deppfellow/geotemp/internal/service"
	"github.com/deppfellow/geotemp/internal/validation"
	"github.com/labstack/echo/v4"
)

type CreateTemperatureRequest struct {
	bodyRequest
	Input model.TemperatureInput
}

func (r *CreateTemperatureRequest) Bind(c echo.Context) error {
	return r.bindBody(c)
}

func (r *CreateTemperatureRequest) Validate() error {
	if err := validation.CheckPayload(r.payload, schema.MustLookup(schema.Temperature, schema.Create)); err != nil {
		return err
	}
	r.Input = temperatureInput(r.payload)
	return nil
}

type UpdateTemperatureRequest struct {
	updateRequest
	Input model.TemperatureInput
}

func (r *UpdateTemperatureRequest) Bind(c echo.Context) error {
	return r.bindUpdate(c)
}

func (r *UpdateTemperatureRequest) Validate() error {
	if err := r.checkUpdate(schema.Temperature); err != nil {
		return err
	}
	r.Input = temperatureInput(r.payload)
	return nil
}

func temperatureInput(p validation.Payload) model.TemperatureInput {
	return model.TemperatureInput{
		CityID: p.Int64("city_id"),
		Value:  p.Float64("value"),
	}
}

// TemperatureQueryRequest filters all readings by geography and time.
type TemperatureQueryRequest struct {
	dateRange
	rawLat string
	rawLon string

	Filter repository.TemperatureFilter
}

func (r *TemperatureQueryRequest) Bind(c echo.Context) error {
	r.bindDates(c)
	r.rawLat = c.QueryParam("lat")
	r.rawLon = c.QueryParam("lon")
	return nil
}

// Validate reports date errors before coordinate errors.
func (r *TemperatureQueryRequest) Validate() error {
	if err := r.applyDates(&r.Filter); err != nil {
		return err
	}

	lat, err := validation.ParseCoordinate("lat", r.rawLat)
	if err != nil {
		return err
	}
	lon, err := validation.ParseCoordinate("lon", r.rawLon)
	if err != nil {
		return err
	}

	r.Filter.Lat = lat
	r.Filter.Lon = lon
	return nil
}

// ScopedTemperatureRequest filters the readings of one city or one
// country by time.
type ScopedTemperatureRequest struct {
	dateRange
	Filter repository.TemperatureFilter
}

func (r *ScopedTemperatureRequest) bindScope(c echo.Context, kind repository.ScopeKind) error {
	id, err := validation.PathID(c, "id")
	if err != nil {
		return err
	}
	r.Filter.Scope = repository.Scope{Kind: kind, ID: id}
	r.bindDates(c)
	return nil
}

func (r *ScopedTemperatureRequest) Validate() error {
	return r.applyDates(&r.Filter)
}

type CityTemperatureRequest struct {
	ScopedTemperatureRequest
}

func (r *CityTemperatureRequest) Bind(c echo.Context) error {
	return r.bindScope(c, repository.ScopeCity)
}

type CountryTemperatureRequest struct {
	ScopedTemperatureRequest
}

func (r *CountryTemperatureRequest) Bind(c echo.Context) error {
	return r.bindScope(c, repository.ScopeCountry)
}

type TemperatureHandler struct {
	Handler
	temperatureService *service.TemperatureService
}

func NewTemperatureHandler(s *server.Server, temperatureService *service.TemperatureService) *TemperatureHandler {
	return &TemperatureHandler{
		Handler:            NewHandler(s),
		temperatureService: temperatureService,
	}
}

func (h *TemperatureHandler) find(c echo.Context, filter repository.TemperatureFilter) ([]model.Temperature, error) {
	temperatures, err := h.temperatureService.Find(c.Request().Context(), filter)
	return nonNil(temperatures), err
}

func (h *TemperatureHandler) ListTemperatures(c echo.Context, req *TemperatureQueryRequest) ([]model.Temperature, error) {
	return h.find(c, req.Filter)
}

func (h *TemperatureHandler) ListCityTemperatures(c echo.Context, req *CityTemperatureRequest) ([]model.Temperature, error) {
	return h.find(c, req.Filter)
}

func (h *TemperatureHandler) ListCountryTemperatures(c echo.Context, req *CountryTemperatureRequest) ([]model.Temperature, error) {
	return h.find(c, req.Filter)
}

func (h *TemperatureHandler) CreateTemperature(c echo.Context, req *CreateTemperatureRequest) (model.CreatedResponse, error) {
	id, err := h.temperatureService.Create(c.Request().Context(), req.Input)
	if err != nil {
		return model.CreatedResponse{}, err
	}
	return model.CreatedResponse{ID: id}, nil
}

func (h *TemperatureHandler) UpdateTemperature(c echo.Context, req *UpdateTemperatureRequest) (string, error) {
	if err := h.temperatureService.Update(c.Request().Context(), req.ID, req.Input); err != nil {
		return "", err
	}
	return "DB updated with new temp info", nil
}

func (h *TemperatureHandler) DeleteTemperature(c echo.Context, req *IDRequest) (string, error) {
	if err := h.temperatureService.Delete(c.Request().Context(), req.ID); err != nil {
		return "", err
	}
	return "DB updated with temp deleted", nil
}
