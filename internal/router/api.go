package router

import (
	"net/http"

	"github.com/deppfellow/geotemp/internal/handler"
	"github.com/labstack/echo/v4"
)

func registerCountryRoutes(api *echo.Group, h *handler.Handlers) {
	countries := api.Group("/countries")

	countries.GET("", handler.Handle(h.Country.Handler, h.Country.ListCountries, http.StatusOK))
	countries.POST("", handler.Handle(h.Country.Handler, h.Country.CreateCountry, http.StatusCreated))
	countries.PUT("/:id", handler.HandleText(h.Country.Handler, h.Country.UpdateCountry, http.StatusOK))
	countries.DELETE("/:id", handler.HandleText(h.Country.Handler, h.Country.DeleteCountry, http.StatusOK))
}

func registerCityRoutes(api *echo.Group, h *handler.Handlers) {
	cities := api.Group("/cities")

	cities.GET("", handler.Handle(h.City.Handler, h.City.ListCities, http.StatusOK))
	cities.POST("", handler.Handle(h.City.Handler, h.City.CreateCity, http.StatusCreated))
	cities.GET("/country/:id", handler.Handle(h.City.Handler, h.City.ListCitiesByCountry, http.StatusOK))
	cities.PUT("/:id", handler.HandleText(h.City.Handler, h.City.UpdateCity, http.StatusOK))
	cities.DELETE("/:id", handler.HandleText(h.City.Handler, h.City.DeleteCity, http.StatusOK))
}

func registerTemperatureRoutes(api *echo.Group, h *handler.Handlers) {
	temperatures := api.Group("/temperatures")

	temperatures.GET("", handler.Handle(h.Temperature.Handler, h.Temperature.ListTemperatures, http.StatusOK))
	temperatures.POST("", handler.Handle(h.Temperature.Handler, h.Temperature.CreateTemperature, http.StatusCreated))
	temperatures.GET("/cities/:id", handler.Handle(h.Temperature.Handler, h.Temperature.ListCityTemperatures, http.StatusOK))
	temperatures.GET("/countries/:id", handler.Handle(h.Temperature.Handler, h.Temperature.ListCountryTemperatures, http.StatusOK))
	temperatures.PUT("/:id", handler.HandleText(h.Temperature.Handler, h.Temperature.UpdateTemperature, http.StatusOK))
	temperatures.DELETE("/:id", handler.HandleText(h.Temperature.Handler, h.Temperature.DeleteTemperature, http.StatusOK))
}
