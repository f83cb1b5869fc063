// Package errs defines the error shape returned to API clients.
//
// Every failure that reaches the HTTP layer is an *HTTPError carrying a
// stable machine-readable Code, a human message and the HTTP status. The
// domain taxonomy (schema violations, bad dates, not-found, uniqueness and
// referential conflicts) lives in codes.go.
package errs
