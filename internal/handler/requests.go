package handler

import (
	"github.com/deppfellow/geotemp/internal/errs"
	"github.com/deppfellow/geotemp/internal/repository"
	"github.com/deppfellow/geotemp/internal/schema"
	"github.com/deppfellow/geotemp/internal/validation"
	"github.com/labstack/echo/v4"
)

// EmptyRequest is used by routes that take no input.
type EmptyRequest struct{}

func (r *EmptyRequest) Bind(c echo.Context) error { return nil }

func (r *EmptyRequest) Validate() error { return nil }

// IDRequest carries only the :id path parameter.
type IDRequest struct {
	ID int64
}

func (r *IDRequest) Bind(c echo.Context) error {
	id, err := validation.PathID(c, "id")
	if err != nil {
		return err
	}
	r.ID = id
	return nil
}

func (r *IDRequest) Validate() error { return nil }

// bodyRequest decodes a JSON object body and checks it against a schema.
type bodyRequest struct {
	payload validation.Payload
}

func (r *bodyRequest) bindBody(c echo.Context) error {
	payload, err := validation.DecodePayload(c.Request().Body)
	if err != nil {
		return err
	}
	r.payload = payload
	return nil
}

// updateRequest is a body request addressed by :id. The body repeats the id.
type updateRequest struct {
	bodyRequest
	ID int64
}

func (r *updateRequest) bindUpdate(c echo.Context) error {
	id, err := validation.PathID(c, "id")
	if err != nil {
		return err
	}
	r.ID = id
	return r.bindBody(c)
}

// checkUpdate validates shape and kinds, then requires the body id to
// equal the path id.
func (r *updateRequest) checkUpdate(resource schema.Resource) error {
	if err := validation.CheckPayload(r.payload, schema.MustLookup(resource, schema.Update)); err != nil {
		return err
	}
	if r.payload.Int64("id") != r.ID {
		return errs.PathBodyIDMismatch()
	}
	return nil
}

// dateRange holds the raw from/until query values.
type dateRange struct {
	rawFrom  string
	rawUntil string
}

func (d *dateRange) bindDates(c echo.Context) {
	d.rawFrom = c.QueryParam("from")
	d.rawUntil = c.QueryParam("until")
}

func (d *dateRange) applyDates(filter *repository.TemperatureFilter) error {
	from, until, err := validation.ParseDateRange(d.rawFrom, d.rawUntil)
	if err != nil {
		return err
	}
	filter.From = from
	filter.Until = until
	return nil
}
