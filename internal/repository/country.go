package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/geotemp/internal/model"
	"github.com/jackc/pgx/v5"
)

type CountryRepository struct {
	db DBTX
}

func NewCountryRepository(db DBTX) *CountryRepository {
	return &CountryRepository{db: db}
}

func (r *CountryRepository) List(ctx context.Context) ([]model.Country, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, lat, lon FROM countries ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("listing countries: %w", err)
	}

	countries, err := pgx.CollectRows(rows, pgx.RowToStructByPos[model.Country])
	if err != nil {
		return nil, fmt.Errorf("scanning countries: %w", err)
	}
	return countries, nil
}

func (r *CountryRepository) Create(ctx context.Context, in model.CountryInput) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx,
		`INSERT INTO countries (name, lat, lon) VALUES ($1, $2, $3) RETURNING id`,
		in.Name, in.Lat, in.Lon,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("inserting country: %w", err)
	}
	return id, nil
}

// Update overwrites every column of the country. A missing row yields a
// wrapped pgx.ErrNoRows.
func (r *CountryRepository) Update(ctx context.Context, id int64, in model.CountryInput) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE countries SET name = $1, lat = $2, lon = $3 WHERE id = $4`,
		in.Name, in.Lat, in.Lon, id,
	)
	if err != nil {
		return fmt.Errorf("updating country %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("table:countries: %w", pgx.ErrNoRows)
	}
	return nil
}

func (r *CountryRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM countries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting country %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("table:countries: %w", pgx.ErrNoRows)
	}
	return nil
}
