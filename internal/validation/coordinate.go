package validation

import (
	"math"
	"strconv"

	"github.com/deppfellow/geotemp/internal/errs"
)

// Coordinate is an optional latitude or longitude filter value.
// Presence is tracked explicitly so 0.0 is a usable filter.
type Coordinate struct {
	Value float64
	Set   bool
}

// ParseCoordinate parses the query value of param. An empty value is unspecified.
func ParseCoordinate(param, raw string) (Coordinate, error) {
	if raw == "" {
		return Coordinate{}, nil
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return Coordinate{}, errs.InvalidCoordinate(param)
	}
	return Coordinate{Value: v, Set: true}, nil
}
