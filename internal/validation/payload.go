package validation

import (
	"encoding/json"
	"errors"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/deppfellow/geotemp/internal/errs"
	"github.com/deppfellow/geotemp/internal/schema"
)

// Payload is a decoded JSON object. Numbers are kept as json.Number so an
// integer literal can be told apart from a real one.
type Payload map[string]any

// DecodePayload decodes a single JSON object from r.
func DecodePayload(r io.Reader) (Payload, error) {
	if r == nil {
		return nil, errs.MalformedRequest("Error: No JSON format detected")
	}

	dec := json.NewDecoder(r)
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errs.MalformedRequest("Error: No JSON format detected")
		}
		return nil, errs.MalformedRequest("Error: request body is not valid JSON")
	}
	if dec.More() {
		return nil, errs.MalformedRequest("Error: request body holds more than one JSON value")
	}

	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, errs.MalformedRequest("Error: request body must be a JSON object")
	}
	return Payload(obj), nil
}

// CheckPayload verifies that p carries exactly the fields of s and that each
// value has the declared kind.
//
// The field-set comparison runs first and reports every missing and every
// unexpected field. Kinds are then checked in declared order and the first
// mismatch is returned.
func CheckPayload(p Payload, s schema.Schema) error {
	var fields []errs.FieldError

	for _, f := range s {
		if _, ok := p[f.Name]; !ok {
			fields = append(fields, errs.FieldError{Field: f.Name, Error: "is required"})
		}
	}

	var extra []string
	for name := range p {
		if !s.Has(name) {
			extra = append(extra, name)
		}
	}
	sort.Strings(extra)
	for _, name := range extra {
		fields = append(fields, errs.FieldError{Field: name, Error: "is not allowed"})
	}

	if len(fields) > 0 {
		return errs.SchemaViolation(
			"Error: please provide exactly "+strings.Join(s.Names(), ", "),
			fields,
		)
	}

	for _, f := range s {
		if !matchesKind(p[f.Name], f.Kind) {
			return errs.TypeMismatch(f.Name, "must be "+article(f.Kind)+" "+f.Kind.String())
		}
	}

	return nil
}

func article(k schema.Kind) string {
	if k == schema.Integer {
		return "an"
	}
	return "a"
}

func matchesKind(v any, kind schema.Kind) bool {
	switch kind {
	case schema.String:
		_, ok := v.(string)
		return ok
	case schema.Integer:
		n, ok := v.(json.Number)
		if !ok || !isIntegerLiteral(n) {
			return false
		}
		_, err := n.Int64()
		return err == nil
	case schema.Real:
		n, ok := v.(json.Number)
		if !ok {
			return false
		}
		f, err := n.Float64()
		return err == nil && !math.IsInf(f, 0)
	default:
		return false
	}
}

// isIntegerLiteral reports whether n was written without a fraction or exponent.
func isIntegerLiteral(n json.Number) bool {
	return !strings.ContainsAny(n.String(), ".eE")
}

// String returns the string field name. The payload must have been checked.
func (p Payload) String(name string) string {
	s, _ := p[name].(string)
	return s
}

// Int64 returns the integer field name. The payload must have been checked.
func (p Payload) Int64(name string) int64 {
	n, _ := p[name].(json.Number)
	v, _ := strconv.ParseInt(n.String(), 10, 64)
	return v
}

// Float64 returns the numeric field name. The payload must have been checked.
func (p Payload) Float64(name string) float64 {
	n, _ := p[name].(json.Number)
	v, _ := n.Float64()
	return v
}
