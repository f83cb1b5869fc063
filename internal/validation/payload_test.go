package validation

import (
	"errors"
	"strings"
	"testing"

	"github.com/deppfellow/geotemp/internal/errs"
	"github.com/deppfellow/geotemp/internal/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, body string) Payload {
	t.Helper()
	p, err := DecodePayload(strings.NewReader(body))
	require.NoError(t, err)
	return p
}

func TestDecodePayload_Malformed(t *testing.T) {
	bodies := map[string]string{
		"empty":       "",
		"not json":    "nume=Romania",
		"array":       `[{"name": "Romania"}]`,
		"null":        "null",
		"scalar":      "42",
		"two objects": `{"a": 1} {"b": 2}`,
	}

	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			_, err := DecodePayload(strings.NewReader(body))
			assert.ErrorIs(t, err, errs.ErrMalformedRequest)
		})
	}

	_, err := DecodePayload(nil)
	assert.ErrorIs(t, err, errs.ErrMalformedRequest)
}

func TestCheckPayload_Shape(t *testing.T) {
	s := schema.MustLookup(schema.Country, schema.Create)

	t.Run("exact match", func(t *testing.T) {
		p := decode(t, `{"name": "Romania", "lat": 45.9, "lon": 24.97}`)
		assert.NoError(t, CheckPayload(p, s))
	})

	t.Run("missing field", func(t *testing.T) {
		p := decode(t, `{"name": "Romania", "lat": 45.9}`)
		err := CheckPayload(p, s)
		require.ErrorIs(t, err, errs.ErrSchemaViolation)

		var httpErr *errs.HTTPError
		require.True(t, errors.As(err, &httpErr))
		assert.Equal(t, []errs.FieldError{{Field: "lon", Error: "is required"}}, httpErr.Errors)
	})

	t.Run("extra field", func(t *testing.T) {
		p := decode(t, `{"name": "Romania", "lat": 45.9, "lon": 24.97, "population": 19}`)
		err := CheckPayload(p, s)
		require.ErrorIs(t, err, errs.ErrSchemaViolation)

		var httpErr *errs.HTTPError
		require.True(t, errors.As(err, &httpErr))
		assert.Equal(t, []errs.FieldError{{Field: "population", Error: "is not allowed"}}, httpErr.Errors)
	})

	t.Run("empty object", func(t *testing.T) {
		err := CheckPayload(decode(t, `{}`), s)
		assert.ErrorIs(t, err, errs.ErrSchemaViolation)
	})

	t.Run("shape is checked before kinds", func(t *testing.T) {
		p := decode(t, `{"name": 7, "lat": "x"}`)
		assert.ErrorIs(t, CheckPayload(p, s), errs.ErrSchemaViolation)
	})
}

func TestCheckPayload_Kinds(t *testing.T) {
	tests := []struct {
		name     string
		resource schema.Resource
		verb     schema.Verb
		body     string
		field    string // empty when the payload is valid
	}{
		{"real accepts integer", schema.Country, schema.Create, `{"name": "Chile", "lat": -35, "lon": -71}`, ""},
		{"real accepts real", schema.Country, schema.Create, `{"name": "Chile", "lat": -35.67, "lon": -71.54}`, ""},
		{"real accepts exponent", schema.Temperature, schema.Create, `{"city_id": 1, "value": 2.5e1}`, ""},
		{"string rejects number", schema.Country, schema.Create, `{"name": 12, "lat": 1, "lon": 2}`, "name"},
		{"real rejects string", schema.Country, schema.Create, `{"name": "Chile", "lat": "-35", "lon": -71}`, "lat"},
		{"real rejects bool", schema.Country, schema.Create, `{"name": "Chile", "lat": true, "lon": -71}`, "lat"},
		{"real rejects null", schema.Country, schema.Create, `{"name": "Chile", "lat": -35, "lon": null}`, "lon"},
		{"integer rejects real", schema.City, schema.Create, `{"country_id": 1.0, "name": "Iasi", "lat": 47.1, "lon": 27.6}`, "country_id"},
		{"integer rejects exponent", schema.Temperature, schema.Create, `{"city_id": 1e2, "value": 3}`, "city_id"},
		{"integer rejects overflow", schema.Temperature, schema.Create, `{"city_id": 99999999999999999999, "value": 3}`, "city_id"},
		{"integer rejects string", schema.Temperature, schema.Update, `{"id": "4", "city_id": 1, "value": 3}`, "id"},
		{"first mismatch in declared order", schema.City, schema.Update, `{"id": 1, "country_id": "x", "name": 5, "lat": 1, "lon": 1}`, "country_id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckPayload(decode(t, tt.body), schema.MustLookup(tt.resource, tt.verb))
			if tt.field == "" {
				assert.NoError(t, err)
				return
			}

			require.ErrorIs(t, err, errs.ErrTypeMismatch)
			var httpErr *errs.HTTPError
			require.True(t, errors.As(err, &httpErr))
			require.Len(t, httpErr.Errors, 1)
			assert.Equal(t, tt.field, httpErr.Errors[0].Field)
		})
	}
}

func TestPayload_Accessors(t *testing.T) {
	p := decode(t, `{"id": 12, "name": "Cluj", "lat": 46, "lon": 23.59}`)

	assert.Equal(t, int64(12), p.Int64("id"))
	assert.Equal(t, "Cluj", p.String("name"))
	assert.Equal(t, 46.0, p.Float64("lat"))
	assert.Equal(t, 23.59, p.Float64("lon"))
}
