package handler

import (
	"github.com/deppfellow/geotemp/internal/server"
	"github.com/deppfellow/geotemp/internal/service"
)

// Handlers is a container that groups all HTTP handlers.
type Handlers struct {
	Health      *HealthHandler
	OpenAPI     *OpenAPIHandler
	Country     *CountryHandler
	City        *CityHandler
	Temperature *TemperatureHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:      NewHealthHandler(s),
		OpenAPI:     NewOpenAPIHandler(s),
		Country:     NewCountryHandler(s, services.Country),
		City:        NewCityHandler(s, services.City),
		Temperature: NewTemperatureHandler(s, services.Temperature),
	}
}
