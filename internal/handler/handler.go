// Package handler is the first layer. The first entry point
// for business logic after the router.
//
// It binds requests (path id, query values, JSON body), validates them
// through the validation package, and calls the appropriate service.
// Reads answer with JSON arrays, creates with the new id, updates and
// deletes with a plain text confirmation.
package handler
