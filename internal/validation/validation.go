// Package validation checks inbound requests before any store access.
//
// It decodes JSON bodies keeping the literal kind of every number, matches
// them against the schema registry (exact field set, per-field kind), and
// parses the optional date and coordinate query parameters used to filter
// temperature reads.
package validation

import (
	"strconv"

	"github.com/deppfellow/geotemp/internal/errs"
	"github.com/labstack/echo/v4"
)

// Validatable is implemented by request types that know how to validate themselves.
type Validatable interface {
	Validate() error
}

// Request is a request payload that binds itself from the echo context
// (path, query, body) and then validates what it bound.
type Request interface {
	Validatable
	Bind(c echo.Context) error
}

// BindAndValidate binds request data into payload and validates it.
//
// Both steps return *errs.HTTPError values so the global error handler can
// render them unchanged.
func BindAndValidate(c echo.Context, payload Request) error {
	if err := payload.Bind(c); err != nil {
		return err
	}
	return payload.Validate()
}

// PathID parses the named path parameter as a non-negative integer id.
//
// A value that is not an id does not address any route, so it is reported
// the same way an unknown route is.
func PathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id < 0 {
		return 0, errs.NewNotFoundError("Route not found", false, nil)
	}
	return id, nil
}
