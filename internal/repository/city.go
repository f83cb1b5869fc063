package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/geotemp/internal/model"
	"github.com/jackc/pgx/v5"
)

const cityColumns = `id, country_id, name, lat, lon`

type CityRepository struct {
	db DBTX
}

func NewCityRepository(db DBTX) *CityRepository {
	return &CityRepository{db: db}
}

func (r *CityRepository) collect(ctx context.Context, query string, args ...any) ([]model.City, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing cities: %w", err)
	}

	cities, err := pgx.CollectRows(rows, pgx.RowToStructByPos[model.City])
	if err != nil {
		return nil, fmt.Errorf("scanning cities: %w", err)
	}
	return cities, nil
}

func (r *CityRepository) List(ctx context.Context) ([]model.City, error) {
	return r.collect(ctx, `SELECT `+cityColumns+` FROM cities ORDER BY id`)
}

// ListByCountry returns the cities of one country. An unknown country
// simply has no cities.
func (r *CityRepository) ListByCountry(ctx context.Context, countryID int64) ([]model.City, error) {
	return r.collect(ctx, `SELECT `+cityColumns+` FROM cities WHERE country_id = $1 ORDER BY id`, countryID)
}

func (r *CityRepository) Create(ctx context.Context, in model.CityInput) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx,
		`INSERT INTO cities (country_id, name, lat, lon) VALUES ($1, $2, $3, $4) RETURNING id`,
		in.CountryID, in.Name, in.Lat, in.Lon,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("inserting city: %w", err)
	}
	return id, nil
}

func (r *CityRepository) Update(ctx context.Context, id int64, in model.CityInput) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE cities SET country_id = $1, name = $2, lat = $3, lon = $4 WHERE id = $5`,
		in.CountryID, in.Name, in.Lat, in.Lon, id,
	)
	if err != nil {
		return fmt.Errorf("updating city %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("table:cities: %w", pgx.ErrNoRows)
	}
	return nil
}

func (r *CityRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM cities WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting city %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("table:cities: %w", pgx.ErrNoRows)
	}
	return nil
}
