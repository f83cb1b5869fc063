// Package repository handles all interactions with the database.
//
// It contains raw SQL queries and methods to fetch, persist,
// or update data, abstracting SQL logic away from the service layer.
// Every value reaches the store as a bound parameter.
package repository

import (
	"context"

	"github.com/deppfellow/geotemp/internal/server"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is the subset of *pgxpool.Pool the repositories use.
// Each call acquires a pooled connection and releases it on return.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Repositories is a container for all repository instances.
type Repositories struct {
	Country     *CountryRepository
	City        *CityRepository
	Temperature *TemperatureRepository
	Integrity   *IntegrityRepository
}

// NewRepositories builds every repository over the server's pool.
func NewRepositories(s *server.Server) *Repositories {
	return newRepositories(s.DB.Pool)
}

func newRepositories(db DBTX) *Repositories {
	return &Repositories{
		Country:     NewCountryRepository(db),
		City:        NewCityRepository(db),
		Temperature: NewTemperatureRepository(db),
		Integrity:   NewIntegrityRepository(db),
	}
}
