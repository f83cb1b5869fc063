// Package service contains the business logic.
//
// It sits between the handler and repository layers.
// It receives validated data from the handler, runs the integrity
// checks each write needs in a fixed order, and then issues exactly one
// repository call. Checks and the write are separate statements; a
// concurrent writer can still slip between them, in which case the
// store's constraints reject the write.
package service

import (
	"context"
	"strings"

	"github.com/deppfellow/geotemp/internal/errs"
	"github.com/deppfellow/geotemp/internal/metrics"
	"github.com/deppfellow/geotemp/internal/model"
	"github.com/deppfellow/geotemp/internal/repository"
	"github.com/deppfellow/geotemp/internal/schema"
	"github.com/rs/zerolog"
)

// IntegrityChecker answers the existence and uniqueness questions asked
// before a write.
type IntegrityChecker interface {
	ExistsByID(ctx context.Context, resource schema.Resource, id int64) (bool, error)
	UniqueNameAvailable(ctx context.Context, name string, excludeID int64) (bool, error)
	UniquePairAvailable(ctx context.Context, countryID int64, name string, excludeID int64) (bool, error)
	ForeignKeyValid(ctx context.Context, parent schema.Resource, parentID int64) (bool, error)
	HasChildren(ctx context.Context, parent schema.Resource, parentID int64) (bool, error)
}

type CountryRepository interface {
	List(ctx context.Context) ([]model.Country, error)
	Create(ctx context.Context, in model.CountryInput) (int64, error)
	Update(ctx context.Context, id int64, in model.CountryInput) error
	Delete(ctx context.Context, id int64) error
}

type CityRepository interface {
	List(ctx context.Context) ([]model.City, error)
	ListByCountry(ctx context.Context, countryID int64) ([]model.City, error)
	Create(ctx context.Context, in model.CityInput) (int64, error)
	Update(ctx context.Context, id int64, in model.CityInput) error
	Delete(ctx context.Context, id int64) error
}

type TemperatureRepository interface {
	Find(ctx context.Context, filter repository.TemperatureFilter) ([]model.Temperature, error)
	Create(ctx context.Context, in model.TemperatureInput) (int64, error)
	Update(ctx context.Context, id int64, in model.TemperatureInput) error
	Delete(ctx context.Context, id int64) error
}

// reject records an integrity rejection and returns it.
func reject(ctx context.Context, resource schema.Resource, err *errs.HTTPError) error {
	metrics.IntegrityRejectionsTotal.WithLabelValues(string(resource), strings.ToLower(err.Code)).Inc()

	zerolog.Ctx(ctx).Debug().
		Str("resource", string(resource)).
		Str("error_code", err.Code).
		Msg(err.Message)

	return err
}

// requireExists rejects with NOT_FOUND when resource has no row with id.
func requireExists(ctx context.Context, integrity IntegrityChecker, resource schema.Resource, id int64) error {
	found, err := integrity.ExistsByID(ctx, resource, id)
	if err != nil {
		return err
	}
	if !found {
		return reject(ctx, resource, errs.NotFound(string(resource)))
	}
	return nil
}

// requireParent rejects with FOREIGN_KEY_VIOLATION when parentID names no parent row.
func requireParent(ctx context.Context, integrity IntegrityChecker, resource, parent schema.Resource, parentID int64) error {
	valid, err := integrity.ForeignKeyValid(ctx, parent, parentID)
	if err != nil {
		return err
	}
	if !valid {
		return reject(ctx, resource, errs.ForeignKeyViolation("Error: FOREIGN KEY violation - unknown "+string(parent)+" id"))
	}
	return nil
}

// requireNoChildren rejects with REFERENCED_BY_CHILDREN when rows still reference the parent.
func requireNoChildren(ctx context.Context, integrity IntegrityChecker, parent schema.Resource, id int64) error {
	referenced, err := integrity.HasChildren(ctx, parent, id)
	if err != nil {
		return err
	}
	if referenced {
		return reject(ctx, parent, errs.ReferencedByChildren("Error: "+string(parent)+" is still referenced by other records"))
	}
	return nil
}

func logWrite(ctx context.Context, resource schema.Resource, action string, id int64) {
	zerolog.Ctx(ctx).Info().
		Str("resource", string(resource)).
		Int64("id", id).
		Msg(string(resource) + " " + action)
}
