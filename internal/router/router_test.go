package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/deppfellow/geotemp/internal/config"
	"github.com/deppfellow/geotemp/internal/handler"
	"github.com/deppfellow/geotemp/internal/model"
	"github.com/deppfellow/geotemp/internal/repository"
	"github.com/deppfellow/geotemp/internal/schema"
	"github.com/deppfellow/geotemp/internal/server"
	"github.com/deppfellow/geotemp/internal/service"
	"github.com/deppfellow/geotemp/internal/testutils"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testApp struct {
	router      *echo.Echo
	integrity   *testutils.MockIntegrity
	countries   *testutils.MockCountryRepository
	cities      *testutils.MockCityRepository
	temperature *testutils.MockTemperatureRepository
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	logger := zerolog.Nop()
	s := &server.Server{
		Config: &config.Config{
			Primary: config.Primary{Env: "test"},
			Server:  config.ServerConfig{CORSAllowedOrigins: []string{"*"}},
		},
		Logger: &logger,
	}

	app := &testApp{
		integrity:   &testutils.MockIntegrity{},
		countries:   &testutils.MockCountryRepository{},
		cities:      &testutils.MockCityRepository{},
		temperature: &testutils.MockTemperatureRepository{},
	}

	services := &service.Services{
		Country:     service.NewCountryService(app.countries, app.integrity),
		City:        service.NewCityService(app.cities, app.integrity),
		Temperature: service.NewTemperatureService(app.temperature, app.integrity),
	}

	app.router = NewRouter(s, handler.NewHandlers(s, services))
	return app
}

func (a *testApp) do(method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

func TestCountryRoutes(t *testing.T) {
	t.Run("create returns the new id", func(t *testing.T) {
		app := newTestApp(t)
		in := model.CountryInput{Name: "Romania", Lat: 45.9, Lon: 24.9}

		app.integrity.On("UniqueNameAvailable", mock.Anything, "Romania", int64(0)).Return(true, nil)
		app.countries.On("Create", mock.Anything, in).Return(int64(7), nil)

		rec := app.do(http.MethodPost, "/api/countries", `{"name":"Romania","lat":45.9,"lon":24.9}`)

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.JSONEq(t, `{"id":7}`, rec.Body.String())
	})

	t.Run("missing field is a schema violation", func(t *testing.T) {
		app := newTestApp(t)

		rec := app.do(http.MethodPost, "/api/countries", `{"name":"Romania","lat":45.9}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "SCHEMA_VIOLATION")
		app.integrity.AssertNotCalled(t, "UniqueNameAvailable", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("string where a number belongs", func(t *testing.T) {
		app := newTestApp(t)

		rec := app.do(http.MethodPost, "/api/countries", `{"name":"Romania","lat":"45.9","lon":24.9}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "TYPE_MISMATCH")
	})

	t.Run("empty body is malformed", func(t *testing.T) {
		app := newTestApp(t)

		rec := app.do(http.MethodPost, "/api/countries", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "MALFORMED_REQUEST")
	})

	t.Run("update with mismatched ids never checks integrity", func(t *testing.T) {
		app := newTestApp(t)

		rec := app.do(http.MethodPut, "/api/countries/1", `{"id":2,"name":"Romania","lat":45.9,"lon":24.9}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "PATH_BODY_ID_MISMATCH")
		app.integrity.AssertNotCalled(t, "ExistsByID", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("update answers with plain text", func(t *testing.T) {
		app := newTestApp(t)
		in := model.CountryInput{Name: "Romania", Lat: 45.9, Lon: 24.9}

		app.integrity.On("ExistsByID", mock.Anything, schema.Country, int64(1)).Return(true, nil)
		app.integrity.On("UniqueNameAvailable", mock.Anything, "Romania", int64(1)).Return(true, nil)
		app.countries.On("Update", mock.Anything, int64(1), in).Return(nil)

		rec := app.do(http.MethodPut, "/api/countries/1", `{"id":1,"name":"Romania","lat":45.9,"lon":24.9}`)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "DB updated with new country info", rec.Body.String())
	})

	t.Run("delete of an unknown id", func(t *testing.T) {
		app := newTestApp(t)

		app.integrity.On("ExistsByID", mock.Anything, schema.Country, int64(9)).Return(false, nil)

		rec := app.do(http.MethodDelete, "/api/countries/9", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "Requested id for country not found")
		app.countries.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("non numeric id is an unknown route", func(t *testing.T) {
		app := newTestApp(t)

		rec := app.do(http.MethodDelete, "/api/countries/abc", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "Route not found")
	})

	t.Run("empty list renders as an array", func(t *testing.T) {
		app := newTestApp(t)

		app.countries.On("List", mock.Anything).Return(nil, nil)

		rec := app.do(http.MethodGet, "/api/countries", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})
}

func TestCityRoutes(t *testing.T) {
	t.Run("unknown country on create", func(t *testing.T) {
		app := newTestApp(t)

		app.integrity.On("ForeignKeyValid", mock.Anything, schema.Country, int64(3)).Return(false, nil)

		rec := app.do(http.MethodPost, "/api/cities", `{"country_id":3,"name":"Cluj","lat":46.7,"lon":23.6}`)

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Contains(t, rec.Body.String(), "FOREIGN_KEY_VIOLATION")
		app.cities.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("list by country", func(t *testing.T) {
		app := newTestApp(t)

		app.cities.On("ListByCountry", mock.Anything, int64(1)).Return([]model.City{
			{ID: 2, CountryID: 1, Name: "Cluj", Lat: 46.7, Lon: 23.6},
		}, nil)

		rec := app.do(http.MethodGet, "/api/cities/country/1", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[{"id":2,"country_id":1,"name":"Cluj","lat":46.7,"lon":23.6}]`, rec.Body.String())
	})

	t.Run("delete with readings attached", func(t *testing.T) {
		app := newTestApp(t)

		app.integrity.On("ExistsByID", mock.Anything, schema.City, int64(2)).Return(true, nil)
		app.integrity.On("HasChildren", mock.Anything, schema.City, int64(2)).Return(true, nil)

		rec := app.do(http.MethodDelete, "/api/cities/2", "")

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Contains(t, rec.Body.String(), "REFERENCED_BY_CHILDREN")
		app.cities.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestTemperatureRoutes(t *testing.T) {
	t.Run("filters by coordinates and dates", func(t *testing.T) {
		app := newTestApp(t)

		app.temperature.On("Find", mock.Anything, mock.MatchedBy(func(f repository.TemperatureFilter) bool {
			return f.Scope.Kind == repository.ScopeAll &&
				f.Lat.Set && f.Lat.Value == 46.7 &&
				f.Lon.Set && f.Lon.Value == 23.6 &&
				f.From.Set && f.From.String() == "2024-01-01" &&
				!f.Until.Set
		})).Return([]model.Temperature{{ID: 1, Value: 12.5, Timestamp: "2024-01-02"}}, nil)

		rec := app.do(http.MethodGet, "/api/temperatures?lat=46.7&lon=23.6&from=2024-01-01", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[{"id":1,"value":12.5,"timestamp":"2024-01-02"}]`, rec.Body.String())
	})

	t.Run("malformed date", func(t *testing.T) {
		app := newTestApp(t)

		rec := app.do(http.MethodGet, "/api/temperatures?from=2024/01/01", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "MALFORMED_DATE")
		app.temperature.AssertNotCalled(t, "Find", mock.Anything, mock.Anything)
	})

	t.Run("impossible calendar day", func(t *testing.T) {
		app := newTestApp(t)

		rec := app.do(http.MethodGet, "/api/temperatures/cities/1?until=2023-02-30", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "INVALID_CALENDAR_DATE")
	})

	t.Run("date errors win over coordinate errors", func(t *testing.T) {
		app := newTestApp(t)

		rec := app.do(http.MethodGet, "/api/temperatures?lat=north&from=bad", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "MALFORMED_DATE")
	})

	t.Run("coordinate that is not a number", func(t *testing.T) {
		app := newTestApp(t)

		rec := app.do(http.MethodGet, "/api/temperatures?lat=north", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "INVALID_COORDINATE")
	})

	t.Run("country scope", func(t *testing.T) {
		app := newTestApp(t)

		app.temperature.On("Find", mock.Anything, mock.MatchedBy(func(f repository.TemperatureFilter) bool {
			return f.Scope == repository.Scope{Kind: repository.ScopeCountry, ID: 4}
		})).Return(nil, nil)

		rec := app.do(http.MethodGet, "/api/temperatures/countries/4", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})

	t.Run("create checks the city", func(t *testing.T) {
		app := newTestApp(t)
		in := model.TemperatureInput{CityID: 2, Value: 21.5}

		app.integrity.On("ForeignKeyValid", mock.Anything, schema.City, int64(2)).Return(true, nil)
		app.temperature.On("Create", mock.Anything, in).Return(int64(11), nil)

		rec := app.do(http.MethodPost, "/api/temperatures", `{"city_id":2,"value":21.5}`)

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.JSONEq(t, `{"id":11}`, rec.Body.String())
	})

	t.Run("delete answers with plain text", func(t *testing.T) {
		app := newTestApp(t)

		app.integrity.On("ExistsByID", mock.Anything, schema.Temperature, int64(11)).Return(true, nil)
		app.temperature.On("Delete", mock.Anything, int64(11)).Return(nil)

		rec := app.do(http.MethodDelete, "/api/temperatures/11", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "DB updated with temp deleted", rec.Body.String())
	})
}

func TestSystemRoutes(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(http.MethodGet, "/status", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"healthy"`)

	rec = app.do(http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "geotemp_http_requests_total")
}
