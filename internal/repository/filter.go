package repository

import (
	"strconv"
	"strings"

	"github.com/deppfellow/geotemp/internal/validation"
)

// CoordinateTolerance is the largest lat/lon distance still treated as a match.
// Coordinates are stored as doubles, so exact equality is meaningless.
const CoordinateTolerance = 0.001

// ScopeKind selects which temperatures a read starts from.
type ScopeKind int

const (
	ScopeAll ScopeKind = iota
	ScopeCity
	ScopeCountry
)

// Scope pre-restricts a temperature read to one city or one country.
type Scope struct {
	Kind ScopeKind
	ID   int64
}

// TemperatureFilter holds the optional constraints of a temperature read.
//
// Lat and Lon form the geography group, From and Until the time group.
// Conditions inside a group are ANDed, and so are the groups themselves.
type TemperatureFilter struct {
	Scope Scope
	Lat   validation.Coordinate
	Lon   validation.Coordinate
	From  validation.Date
	Until validation.Date
}

type predicate struct {
	conds []string
	args  []any
}

// arg binds v and returns its placeholder.
func (p *predicate) arg(v any) string {
	p.args = append(p.args, v)
	return "$" + strconv.Itoa(len(p.args))
}

// Build renders the filter as a WHERE clause (without the keyword) and its
// arguments. An empty clause means the read is unfiltered.
//
// The geography group is resolved in two stages: a subquery selects the
// matching city ids, and readings are restricted to that set.
func (f TemperatureFilter) Build() (string, []any) {
	p := &predicate{}

	switch f.Scope.Kind {
	case ScopeCity:
		p.conds = append(p.conds, "city_id = "+p.arg(f.Scope.ID))
	case ScopeCountry:
		p.conds = append(p.conds, "city_id IN (SELECT id FROM cities WHERE country_id = "+p.arg(f.Scope.ID)+")")
	}

	var geo []string
	tolerance := ""
	if f.Lat.Set {
		value := p.arg(f.Lat.Value)
		tolerance = p.arg(CoordinateTolerance)
		geo = append(geo, "ABS(lat - "+value+") <= "+tolerance)
	}
	if f.Lon.Set {
		value := p.arg(f.Lon.Value)
		if tolerance == "" {
			tolerance = p.arg(CoordinateTolerance)
		}
		geo = append(geo, "ABS(lon - "+value+") <= "+tolerance)
	}
	if len(geo) > 0 {
		p.conds = append(p.conds, "city_id IN (SELECT id FROM cities WHERE "+strings.Join(geo, " AND ")+")")
	}

	if f.From.Set {
		p.conds = append(p.conds, "recorded_on >= "+p.arg(f.From.Day))
	}
	if f.Until.Set {
		p.conds = append(p.conds, "recorded_on <= "+p.arg(f.Until.Day))
	}

	return strings.Join(p.conds, " AND "), p.args
}
