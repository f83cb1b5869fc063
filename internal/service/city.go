package service

import (
	"context"

	"github.com/deppfellow/geotemp/internal/errs"
	"github.com/deppfellow/geotemp/internal/model"
	"github.com/deppfellow/geotemp/internal/schema"
)

type CityService struct {
	repo      CityRepository
	integrity IntegrityChecker
}

func NewCityService(repo CityRepository, integrity IntegrityChecker) *CityService {
	return &CityService{repo: repo, integrity: integrity}
}

func (s *CityService) List(ctx context.Context) ([]model.City, error) {
	return s.repo.List(ctx)
}

func (s *CityService) ListByCountry(ctx context.Context, countryID int64) ([]model.City, error) {
	return s.repo.ListByCountry(ctx, countryID)
}

// checkWrite runs the checks shared by create and update. The foreign key
// is checked first so an unknown country is reported even when the pair
// would also collide.
func (s *CityService) checkWrite(ctx context.Context, in model.CityInput, excludeID int64) error {
	if err := requireParent(ctx, s.integrity, schema.City, schema.Country, in.CountryID); err != nil {
		return err
	}

	available, err := s.integrity.UniquePairAvailable(ctx, in.CountryID, in.Name, excludeID)
	if err != nil {
		return err
	}
	if !available {
		return reject(ctx, schema.City, errs.UniqueConstraintViolation("Error: (country_id, name) unique constraint violated"))
	}
	return nil
}

func (s *CityService) Create(ctx context.Context, in model.CityInput) (int64, error) {
	if err := s.checkWrite(ctx, in, 0); err != nil {
		return 0, err
	}

	id, err := s.repo.Create(ctx, in)
	if err != nil {
		return 0, err
	}

	logWrite(ctx, schema.City, "created", id)
	return id, nil
}

func (s *CityService) Update(ctx context.Context, id int64, in model.CityInput) error {
	if err := requireExists(ctx, s.integrity, schema.City, id); err != nil {
		return err
	}
	if err := s.checkWrite(ctx, in, id); err != nil {
		return err
	}

	if err := s.repo.Update(ctx, id, in); err != nil {
		return err
	}

	logWrite(ctx, schema.City, "updated", id)
	return nil
}

// Delete refuses to remove a city that still has readings.
func (s *CityService) Delete(ctx context.Context, id int64) error {
	if err := requireExists(ctx, s.integrity, schema.City, id); err != nil {
		return err
	}
	if err := requireNoChildren(ctx, s.integrity, schema.City, id); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	logWrite(ctx, schema.City, "deleted", id)
	return nil
}
