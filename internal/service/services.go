package service

import (
	"github.com/deppfellow/geotemp/internal/repository"
)

type Services struct {
	Country     *CountryService
	City        *CityService
	Temperature *TemperatureService
}

func NewServices(repos *repository.Repositories) *Services {
	return &Services{
		Country:     NewCountryService(repos.Country, repos.Integrity),
		City:        NewCityService(repos.City, repos.Integrity),
		Temperature: NewTemperatureService(repos.Temperature, repos.Integrity),
	}
}
