package service

import (
	"context"

	"github.com/deppfellow/geotemp/internal/model"
	"github.com/deppfellow/geotemp/internal/repository"
	"github.com/deppfellow/geotemp/internal/schema"
)

type TemperatureService struct {
	repo      TemperatureRepository
	integrity IntegrityChecker
}

func NewTemperatureService(repo TemperatureRepository, integrity IntegrityChecker) *TemperatureService {
	return &TemperatureService{repo: repo, integrity: integrity}
}

// Find returns the readings matching filter. Scoping to a city or country
// that does not exist yields an empty list, not an error.
func (s *TemperatureService) Find(ctx context.Context, filter repository.TemperatureFilter) ([]model.Temperature, error) {
	return s.repo.Find(ctx, filter)
}

func (s *TemperatureService) Create(ctx context.Context, in model.TemperatureInput) (int64, error) {
	if err := requireParent(ctx, s.integrity, schema.Temperature, schema.City, in.CityID); err != nil {
		return 0, err
	}

	id, err := s.repo.Create(ctx, in)
	if err != nil {
		return 0, err
	}

	logWrite(ctx, schema.Temperature, "created", id)
	return id, nil
}

func (s *TemperatureService) Update(ctx context.Context, id int64, in model.TemperatureInput) error {
	if err := requireExists(ctx, s.integrity, schema.Temperature, id); err != nil {
		return err
	}
	if err := requireParent(ctx, s.integrity, schema.Temperature, schema.City, in.CityID); err != nil {
		return err
	}

	if err := s.repo.Update(ctx, id, in); err != nil {
		return err
	}

	logWrite(ctx, schema.Temperature, "updated", id)
	return nil
}

func (s *TemperatureService) Delete(ctx context.Context, id int64) error {
	if err := requireExists(ctx, s.integrity, schema.Temperature, id); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	logWrite(ctx, schema.Temperature, "deleted", id)
	return nil
}
