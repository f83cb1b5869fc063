package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/geotemp/internal/model"
	"github.com/jackc/pgx/v5"
)

type TemperatureRepository struct {
	db DBTX
}

func NewTemperatureRepository(db DBTX) *TemperatureRepository {
	return &TemperatureRepository{db: db}
}

// Find returns the readings matching filter, oldest id first.
func (r *TemperatureRepository) Find(ctx context.Context, filter TemperatureFilter) ([]model.Temperature, error) {
	query := `SELECT id, value, TO_CHAR(recorded_on, 'YYYY-MM-DD') FROM temperatures`

	where, args := filter.Build()
	if where != "" {
		query += " WHERE " + where
	}
	query += " ORDER BY id"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing temperatures: %w", err)
	}

	temperatures, err := pgx.CollectRows(rows, pgx.RowToStructByPos[model.Temperature])
	if err != nil {
		return nil, fmt.Errorf("scanning temperatures: %w", err)
	}
	return temperatures, nil
}

// Create stores a reading stamped with the store's current date.
func (r *TemperatureRepository) Create(ctx context.Context, in model.TemperatureInput) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx,
		`INSERT INTO temperatures (city_id, value) VALUES ($1, $2) RETURNING id`,
		in.CityID, in.Value,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("inserting temperature: %w", err)
	}
	return id, nil
}

// Update changes city and value. The recorded date is kept.
func (r *TemperatureRepository) Update(ctx context.Context, id int64, in model.TemperatureInput) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE temperatures SET city_id = $1, value = $2 WHERE id = $3`,
		in.CityID, in.Value, id,
	)
	if err != nil {
		return fmt.Errorf("updating temperature %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("table:temperatures: %w", pgx.ErrNoRows)
	}
	return nil
}

func (r *TemperatureRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM temperatures WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting temperature %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("table:temperatures: %w", pgx.ErrNoRows)
	}
	return nil
}
