package errs

// Stable error codes of the request validation and integrity layer.
const (
	CodeMalformedRequest          = "MALFORMED_REQUEST"
	CodeSchemaViolation           = "SCHEMA_VIOLATION"
	CodeTypeMismatch              = "TYPE_MISMATCH"
	CodePathBodyIDMismatch        = "PATH_BODY_ID_MISMATCH"
	CodeMalformedDate             = "MALFORMED_DATE"
	CodeInvalidCalendarDate       = "INVALID_CALENDAR_DATE"
	CodeInvalidCoordinate         = "INVALID_COORDINATE"
	CodeNotFound                  = "NOT_FOUND"
	CodeUniqueConstraintViolation = "UNIQUE_CONSTRAINT_VIOLATION"
	CodeForeignKeyViolation       = "FOREIGN_KEY_VIOLATION"
	CodeReferencedByChildren      = "REFERENCED_BY_CHILDREN"
)

// Sentinels for errors.Is; they match any *HTTPError with the same Code.
var (
	ErrMalformedRequest          = &HTTPError{Code: CodeMalformedRequest}
	ErrSchemaViolation           = &HTTPError{Code: CodeSchemaViolation}
	ErrTypeMismatch              = &HTTPError{Code: CodeTypeMismatch}
	ErrPathBodyIDMismatch        = &HTTPError{Code: CodePathBodyIDMismatch}
	ErrMalformedDate             = &HTTPError{Code: CodeMalformedDate}
	ErrInvalidCalendarDate       = &HTTPError{Code: CodeInvalidCalendarDate}
	ErrInvalidCoordinate         = &HTTPError{Code: CodeInvalidCoordinate}
	ErrNotFound                  = &HTTPError{Code: CodeNotFound}
	ErrUniqueConstraintViolation = &HTTPError{Code: CodeUniqueConstraintViolation}
	ErrForeignKeyViolation       = &HTTPError{Code: CodeForeignKeyViolation}
	ErrReferencedByChildren      = &HTTPError{Code: CodeReferencedByChildren}
)

func code(c string) *string { return &c }

// MalformedRequest reports an absent or undecodable request body.
func MalformedRequest(message string) *HTTPError {
	return NewBadRequestError(message, true, code(CodeMalformedRequest), nil, nil)
}

// SchemaViolation reports a payload whose field set differs from the required one.
func SchemaViolation(message string, fields []FieldError) *HTTPError {
	return NewBadRequestError(message, true, code(CodeSchemaViolation), fields, nil)
}

// TypeMismatch reports a field whose value has the wrong kind.
func TypeMismatch(field, message string) *HTTPError {
	return NewBadRequestError("Invalid data type detected for field", true, code(CodeTypeMismatch),
		[]FieldError{{Field: field, Error: message}}, nil)
}

// PathBodyIDMismatch reports an update whose URL id differs from the body id.
func PathBodyIDMismatch() *HTTPError {
	return NewBadRequestError("body and URL id don't match", true, code(CodePathBodyIDMismatch), nil, nil)
}

// MalformedDate reports a date parameter that is not shaped YYYY-MM-DD.
func MalformedDate(param string) *HTTPError {
	return NewBadRequestError("invalid date format, please use YYYY-MM-DD", true, code(CodeMalformedDate),
		[]FieldError{{Field: param, Error: "must match YYYY-MM-DD"}}, nil)
}

// InvalidCalendarDate reports a well-shaped date that does not exist.
func InvalidCalendarDate(param string) *HTTPError {
	return NewBadRequestError("invalid date, please pass a correct day", true, code(CodeInvalidCalendarDate),
		[]FieldError{{Field: param, Error: "is not a calendar date"}}, nil)
}

// InvalidCoordinate reports a lat/lon query parameter that is not a number.
func InvalidCoordinate(param string) *HTTPError {
	return NewBadRequestError("invalid coordinate, please pass a number", true, code(CodeInvalidCoordinate),
		[]FieldError{{Field: param, Error: "must be a number"}}, nil)
}

// NotFound reports that the addressed id does not exist.
func NotFound(entity string) *HTTPError {
	return NewNotFoundError("Requested id for "+entity+" not found", true, code(CodeNotFound))
}

// UniqueConstraintViolation reports a duplicate unique key.
func UniqueConstraintViolation(message string) *HTTPError {
	return NewConflictError(message, true, code(CodeUniqueConstraintViolation))
}

// ForeignKeyViolation reports a reference to a parent that does not exist.
func ForeignKeyViolation(message string) *HTTPError {
	return NewConflictError(message, true, code(CodeForeignKeyViolation))
}

// ReferencedByChildren reports a delete of a parent that still has children.
func ReferencedByChildren(message string) *HTTPError {
	return NewConflictError(message, true, code(CodeReferencedByChildren))
}
