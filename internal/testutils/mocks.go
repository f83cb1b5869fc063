package testutils

import (
	"context"

	"github.com/deppfellow/geotemp/internal/model"
	"github.com/deppfellow/geotemp/internal/repository"
	"github.com/deppfellow/geotemp/internal/schema"
	"github.com/stretchr/testify/mock"
)

type MockIntegrity struct {
	mock.Mock
}

func (m *MockIntegrity) ExistsByID(ctx context.Context, resource schema.Resource, id int64) (bool, error) {
	args := m.Called(ctx, resource, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockIntegrity) UniqueNameAvailable(ctx context.Context, name string, excludeID int64) (bool, error) {
	args := m.Called(ctx, name, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockIntegrity) UniquePairAvailable(ctx context.Context, countryID int64, name string, excludeID int64) (bool, error) {
	args := m.Called(ctx, countryID, name, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockIntegrity) ForeignKeyValid(ctx context.Context, parent schema.Resource, parentID int64) (bool, error) {
	args := m.Called(ctx, parent, parentID)
	return args.Bool(0), args.Error(1)
}

func (m *MockIntegrity) HasChildren(ctx context.Context, parent schema.Resource, parentID int64) (bool, error) {
	args := m.Called(ctx, parent, parentID)
	return args.Bool(0), args.Error(1)
}

type MockCountryRepository struct {
	mock.Mock
}

func (m *MockCountryRepository) List(ctx context.Context) ([]model.Country, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Country), args.Error(1)
}

func (m *MockCountryRepository) Create(ctx context.Context, in model.CountryInput) (int64, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCountryRepository) Update(ctx context.Context, id int64, in model.CountryInput) error {
	args := m.Called(ctx, id, in)
	return args.Error(0)
}

func (m *MockCountryRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockCityRepository struct {
	mock.Mock
}

func (m *MockCityRepository) List(ctx context.Context) ([]model.City, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.City), args.Error(1)
}

func (m *MockCityRepository) ListByCountry(ctx context.Context, countryID int64) ([]model.City, error) {
	args := m.Called(ctx, countryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.City), args.Error(1)
}

func (m *MockCityRepository) Create(ctx context.Context, in model.CityInput) (int64, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCityRepository) Update(ctx context.Context, id int64, in model.CityInput) error {
	args := m.Called(ctx, id, in)
	return args.Error(0)
}

func (m *MockCityRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockTemperatureRepository struct {
	mock.Mock
}

func (m *MockTemperatureRepository) Find(ctx context.Context, filter repository.TemperatureFilter) ([]model.Temperature, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Temperature), args.Error(1)
}

func (m *MockTemperatureRepository) Create(ctx context.Context, in model.TemperatureInput) (int64, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTemperatureRepository) Update(ctx context.Context, id int64, in model.TemperatureInput) error {
	args := m.Called(ctx, id, in)
	return args.Error(0)
}

func (m *MockTemperatureRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
