package service

import (
	"context"

	"github.com/deppfellow/geotemp/internal/errs"
	"github.com/deppfellow/geotemp/internal/model"
	"github.com/deppfellow/geotemp/internal/schema"
)

type CountryService struct {
	repo      CountryRepository
	integrity IntegrityChecker
}

func NewCountryService(repo CountryRepository, integrity IntegrityChecker) *CountryService {
	return &CountryService{repo: repo, integrity: integrity}
}

func (s *CountryService) List(ctx context.Context) ([]model.Country, error) {
	return s.repo.List(ctx)
}

func (s *CountryService) requireNameAvailable(ctx context.Context, name string, excludeID int64) error {
	available, err := s.integrity.UniqueNameAvailable(ctx, name, excludeID)
	if err != nil {
		return err
	}
	if !available {
		return reject(ctx, schema.Country, errs.UniqueConstraintViolation("Error: country name unique constraint violated"))
	}
	return nil
}

func (s *CountryService) Create(ctx context.Context, in model.CountryInput) (int64, error) {
	if err := s.requireNameAvailable(ctx, in.Name, 0); err != nil {
		return 0, err
	}

	id, err := s.repo.Create(ctx, in)
	if err != nil {
		return 0, err
	}

	logWrite(ctx, schema.Country, "created", id)
	return id, nil
}

// Update replaces the country. Keeping its own name is not a conflict.
func (s *CountryService) Update(ctx context.Context, id int64, in model.CountryInput) error {
	if err := requireExists(ctx, s.integrity, schema.Country, id); err != nil {
		return err
	}
	if err := s.requireNameAvailable(ctx, in.Name, id); err != nil {
		return err
	}

	if err := s.repo.Update(ctx, id, in); err != nil {
		return err
	}

	logWrite(ctx, schema.Country, "updated", id)
	return nil
}

// Delete refuses to remove a country that still has cities.
func (s *CountryService) Delete(ctx context.Context, id int64) error {
	if err := requireExists(ctx, s.integrity, schema.Country, id); err != nil {
		return err
	}
	if err := requireNoChildren(ctx, s.integrity, schema.Country, id); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	logWrite(ctx, schema.Country, "deleted", id)
	return nil
}
