package service

import (
	"context"
	"errors"
	"testing"

	"github.com/deppfellow/geotemp/internal/errs"
	"github.com/deppfellow/geotemp/internal/model"
	"github.com/deppfellow/geotemp/internal/schema"
	"github.com/deppfellow/geotemp/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCityService_Create(t *testing.T) {
	in := model.CityInput{CountryID: 1, Name: "Bucharest", Lat: 44.4, Lon: 26.1}

	t.Run("creates a new pair", func(t *testing.T) {
		ctx := context.Background()
		repo := &testutils.MockCityRepository{}
		integrity := &testutils.MockIntegrity{}

		integrity.On("ForeignKeyValid", mock.Anything, schema.Country, int64(1)).Return(true, nil)
		integrity.On("UniquePairAvailable", mock.Anything, int64(1), "Bucharest", int64(0)).Return(true, nil)
		repo.On("Create", mock.Anything, in).Return(int64(9), nil)

		id, err := NewCityService(repo, integrity).Create(ctx, in)

		require.NoError(t, err)
		assert.Equal(t, int64(9), id)
		repo.AssertExpectations(t)
	})

	t.Run("unknown country wins over a duplicate pair", func(t *testing.T) {
		ctx := context.Background()
		repo := &testutils.MockCityRepository{}
		integrity := &testutils.MockIntegrity{}

		integrity.On("ForeignKeyValid", mock.Anything, schema.Country, int64(1)).Return(false, nil)

		_, err := NewCityService(repo, integrity).Create(ctx, in)

		assert.True(t, errors.Is(err, errs.ErrForeignKeyViolation))
		integrity.AssertNotCalled(t, "UniquePairAvailable", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("duplicate pair", func(t *testing.T) {
		ctx := context.Background()
		repo := &testutils.MockCityRepository{}
		integrity := &testutils.MockIntegrity{}

		integrity.On("ForeignKeyValid", mock.Anything, schema.Country, int64(1)).Return(true, nil)
		integrity.On("UniquePairAvailable", mock.Anything, int64(1), "Bucharest", int64(0)).Return(false, nil)

		_, err := NewCityService(repo, integrity).Create(ctx, in)

		assert.True(t, errors.Is(err, errs.ErrUniqueConstraintViolation))
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestCityService_Update(t *testing.T) {
	in := model.CityInput{CountryID: 1, Name: "Bucharest", Lat: 44.4, Lon: 26.1}

	t.Run("excludes itself from the pair check", func(t *testing.T) {
		ctx := context.Background()
		repo := &testutils.MockCityRepository{}
		integrity := &testutils.MockIntegrity{}

		integrity.On("ExistsByID", mock.Anything, schema.City, int64(3)).Return(true, nil)
		integrity.On("ForeignKeyValid", mock.Anything, schema.Country, int64(1)).Return(true, nil)
		integrity.On("UniquePairAvailable", mock.Anything, int64(1), "Bucharest", int64(3)).Return(true, nil)
		repo.On("Update", mock.Anything, int64(3), in).Return(nil)

		require.NoError(t, NewCityService(repo, integrity).Update(ctx, 3, in))
		repo.AssertExpectations(t)
		integrity.AssertExpectations(t)
	})

	t.Run("missing city", func(t *testing.T) {
		ctx := context.Background()
		repo := &testutils.MockCityRepository{}
		integrity := &testutils.MockIntegrity{}

		integrity.On("ExistsByID", mock.Anything, schema.City, int64(3)).Return(false, nil)

		err := NewCityService(repo, integrity).Update(ctx, 3, in)

		assert.True(t, errors.Is(err, errs.ErrNotFound))
		assert.Equal(t, "Requested id for city not found", err.Error())
	})
}

func TestCityService_Delete(t *testing.T) {
	ctx := context.Background()
	repo := &testutils.MockCityRepository{}
	integrity := &testutils.MockIntegrity{}

	integrity.On("ExistsByID", mock.Anything, schema.City, int64(3)).Return(true, nil)
	integrity.On("HasChildren", mock.Anything, schema.City, int64(3)).Return(true, nil)

	err := NewCityService(repo, integrity).Delete(ctx, 3)

	assert.True(t, errors.Is(err, errs.ErrReferencedByChildren))
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestCityService_ListByCountry(t *testing.T) {
	ctx := context.Background()
	repo := &testutils.MockCityRepository{}
	integrity := &testutils.MockIntegrity{}

	want := []model.City{{ID: 1, CountryID: 2, Name: "Cluj", Lat: 46.7, Lon: 23.6}}
	repo.On("ListByCountry", mock.Anything, int64(2)).Return(want, nil)

	got, err := NewCityService(repo, integrity).ListByCountry(ctx, 2)

	require.NoError(t, err)
	assert.Equal(t, want, got)
}
