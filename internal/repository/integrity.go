package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/geotemp/internal/schema"
)

// tables maps each resource onto its table. Table names never come from input.
var tables = map[schema.Resource]string{
	schema.Country:     "countries",
	schema.City:        "cities",
	schema.Temperature: "temperatures",
}

type childRef struct {
	table  string
	column string
}

// children names the rows that reference a parent resource.
var children = map[schema.Resource]childRef{
	schema.Country: {table: "cities", column: "country_id"},
	schema.City:    {table: "temperatures", column: "city_id"},
}

func tableFor(resource schema.Resource) (string, error) {
	table, ok := tables[resource]
	if !ok {
		return "", fmt.Errorf("unknown resource %q", resource)
	}
	return table, nil
}

// IntegrityRepository answers point-in-time existence and uniqueness
// questions. Nothing is locked between a check and the write that follows
// it; the schema's own constraints catch whatever slips through.
type IntegrityRepository struct {
	db DBTX
}

func NewIntegrityRepository(db DBTX) *IntegrityRepository {
	return &IntegrityRepository{db: db}
}

func (r *IntegrityRepository) exists(ctx context.Context, query string, args ...any) (bool, error) {
	var found bool
	if err := r.db.QueryRow(ctx, query, args...).Scan(&found); err != nil {
		return false, err
	}
	return found, nil
}

// ExistsByID reports whether resource has a row with id.
func (r *IntegrityRepository) ExistsByID(ctx context.Context, resource schema.Resource, id int64) (bool, error) {
	table, err := tableFor(resource)
	if err != nil {
		return false, err
	}

	found, err := r.exists(ctx, `SELECT EXISTS (SELECT 1 FROM `+table+` WHERE id = $1)`, id)
	if err != nil {
		return false, fmt.Errorf("checking %s %d exists: %w", resource, id, err)
	}
	return found, nil
}

// UniqueNameAvailable reports whether no country other than excludeID uses name.
// Pass excludeID 0 on create.
func (r *IntegrityRepository) UniqueNameAvailable(ctx context.Context, name string, excludeID int64) (bool, error) {
	taken, err := r.exists(ctx,
		`SELECT EXISTS (SELECT 1 FROM countries WHERE name = $1 AND id <> $2)`,
		name, excludeID,
	)
	if err != nil {
		return false, fmt.Errorf("checking country name: %w", err)
	}
	return !taken, nil
}

// UniquePairAvailable reports whether no city other than excludeID has the
// (countryID, name) pair.
func (r *IntegrityRepository) UniquePairAvailable(ctx context.Context, countryID int64, name string, excludeID int64) (bool, error) {
	taken, err := r.exists(ctx,
		`SELECT EXISTS (SELECT 1 FROM cities WHERE country_id = $1 AND name = $2 AND id <> $3)`,
		countryID, name, excludeID,
	)
	if err != nil {
		return false, fmt.Errorf("checking city name: %w", err)
	}
	return !taken, nil
}

// ForeignKeyValid reports whether parentID names an existing parent row.
func (r *IntegrityRepository) ForeignKeyValid(ctx context.Context, parent schema.Resource, parentID int64) (bool, error) {
	return r.ExistsByID(ctx, parent, parentID)
}

// HasChildren reports whether any row still references the parent.
func (r *IntegrityRepository) HasChildren(ctx context.Context, parent schema.Resource, parentID int64) (bool, error) {
	ref, ok := children[parent]
	if !ok {
		return false, nil
	}

	found, err := r.exists(ctx,
		`SELECT EXISTS (SELECT 1 FROM `+ref.table+` WHERE `+ref.column+` = $1)`,
		parentID,
	)
	if err != nil {
		return false, fmt.Errorf("checking %s %d children: %w", parent, parentID, err)
	}
	return found, nil
}
