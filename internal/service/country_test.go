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

func TestCountryService_Create(t *testing.T) {
	in := model.CountryInput{Name: "Romania", Lat: 45.9, Lon: 24.9}

	t.Run("creates when name is free", func(t *testing.T) {
		ctx := context.Background()
		repo := &testutils.MockCountryRepository{}
		integrity := &testutils.MockIntegrity{}

		integrity.On("UniqueNameAvailable", mock.Anything, "Romania", int64(0)).Return(true, nil)
		repo.On("Create", mock.Anything, in).Return(int64(1), nil)

		id, err := NewCountryService(repo, integrity).Create(ctx, in)

		require.NoError(t, err)
		assert.Equal(t, int64(1), id)
		repo.AssertExpectations(t)
		integrity.AssertExpectations(t)
	})

	t.Run("duplicate name never reaches the store", func(t *testing.T) {
		ctx := context.Background()
		repo := &testutils.MockCountryRepository{}
		integrity := &testutils.MockIntegrity{}

		integrity.On("UniqueNameAvailable", mock.Anything, "Romania", int64(0)).Return(false, nil)

		_, err := NewCountryService(repo, integrity).Create(ctx, in)

		assert.True(t, errors.Is(err, errs.ErrUniqueConstraintViolation))
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("lookup failure propagates", func(t *testing.T) {
		ctx := context.Background()
		repo := &testutils.MockCountryRepository{}
		integrity := &testutils.MockIntegrity{}

		boom := errors.New("connection refused")
		integrity.On("UniqueNameAvailable", mock.Anything, "Romania", int64(0)).Return(false, boom)

		_, err := NewCountryService(repo, integrity).Create(ctx, in)

		assert.ErrorIs(t, err, boom)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestCountryService_Update(t *testing.T) {
	in := model.CountryInput{Name: "Romania", Lat: 46, Lon: 25}

	t.Run("keeps its own name", func(t *testing.T) {
		ctx := context.Background()
		repo := &testutils.MockCountryRepository{}
		integrity := &testutils.MockIntegrity{}

		integrity.On("ExistsByID", mock.Anything, schema.Country, int64(4)).Return(true, nil)
		integrity.On("UniqueNameAvailable", mock.Anything, "Romania", int64(4)).Return(true, nil)
		repo.On("Update", mock.Anything, int64(4), in).Return(nil)

		err := NewCountryService(repo, integrity).Update(ctx, 4, in)

		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("missing id is not found before any uniqueness check", func(t *testing.T) {
		ctx := context.Background()
		repo := &testutils.MockCountryRepository{}
		integrity := &testutils.MockIntegrity{}

		integrity.On("ExistsByID", mock.Anything, schema.Country, int64(4)).Return(false, nil)

		err := NewCountryService(repo, integrity).Update(ctx, 4, in)

		assert.True(t, errors.Is(err, errs.ErrNotFound))
		integrity.AssertNotCalled(t, "UniqueNameAvailable", mock.Anything, mock.Anything, mock.Anything)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("name taken by another country", func(t *testing.T) {
		ctx := context.Background()
		repo := &testutils.MockCountryRepository{}
		integrity := &testutils.MockIntegrity{}

		integrity.On("ExistsByID", mock.Anything, schema.Country, int64(4)).Return(true, nil)
		integrity.On("UniqueNameAvailable", mock.Anything, "Romania", int64(4)).Return(false, nil)

		err := NewCountryService(repo, integrity).Update(ctx, 4, in)

		assert.True(t, errors.Is(err, errs.ErrUniqueConstraintViolation))
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestCountryService_Delete(t *testing.T) {
	t.Run("deletes a childless country", func(t *testing.T) {
		ctx := context.Background()
		repo := &testutils.MockCountryRepository{}
		integrity := &testutils.MockIntegrity{}

		integrity.On("ExistsByID", mock.Anything, schema.Country, int64(2)).Return(true, nil)
		integrity.On("HasChildren", mock.Anything, schema.Country, int64(2)).Return(false, nil)
		repo.On("Delete", mock.Anything, int64(2)).Return(nil)

		require.NoError(t, NewCountryService(repo, integrity).Delete(ctx, 2))
		repo.AssertExpectations(t)
	})

	t.Run("missing id performs no mutation", func(t *testing.T) {
		ctx := context.Background()
		repo := &testutils.MockCountryRepository{}
		integrity := &testutils.MockIntegrity{}

		integrity.On("ExistsByID", mock.Anything, schema.Country, int64(2)).Return(false, nil)

		err := NewCountryService(repo, integrity).Delete(ctx, 2)

		assert.True(t, errors.Is(err, errs.ErrNotFound))
		repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("country with cities is refused", func(t *testing.T) {
		ctx := context.Background()
		repo := &testutils.MockCountryRepository{}
		integrity := &testutils.MockIntegrity{}

		integrity.On("ExistsByID", mock.Anything, schema.Country, int64(2)).Return(true, nil)
		integrity.On("HasChildren", mock.Anything, schema.Country, int64(2)).Return(true, nil)

		err := NewCountryService(repo, integrity).Delete(ctx, 2)

		assert.True(t, errors.Is(err, errs.ErrReferencedByChildren))
		repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}
