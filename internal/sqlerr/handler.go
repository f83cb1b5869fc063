package sqlerr

import (
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/deppfellow/geotemp/internal/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var uniqueKeyPattern = regexp.MustCompile(`_([^_]+)_(?:key|ukey)$`)

// ErrCode reports the mapped Code for err, or Other when err carries no *Error.
func ErrCode(err error) Code {
	var pgerr *Error
	if errors.As(err, &pgerr) {
		return pgerr.Code
	}
	return Other
}

// ConvertPgError converts a raw Postgres error into an *Error.
func ConvertPgError(src *pgconn.PgError) *Error {
	return &Error{
		Code:           MapCode(src.Code),
		Severity:       MapSeverity(src.Severity),
		DatabaseCode:   src.Code,
		Message:        src.Message,
		SchemaName:     src.SchemaName,
		TableName:      src.TableName,
		ColumnName:     src.ColumnName,
		DataTypeName:   src.DataTypeName,
		ConstraintName: src.ConstraintName,
		driverErr:      src,
	}
}

// isRestrictViolation reports whether a foreign key error was raised by
// deleting a parent row that is still referenced, rather than by inserting
// a child that points at a missing parent. Postgres reports both as 23503
// and only the message tells them apart.
func isRestrictViolation(sqlErr *Error) bool {
	return strings.HasPrefix(sqlErr.Message, "update or delete on table")
}

// formatUserFriendlyMessage produces the client-facing message for a
// constraint failure. Log output keeps the raw driver message.
func formatUserFriendlyMessage(sqlErr *Error) string {
	switch sqlErr.Code {
	case ForeignKeyViolation:
		if isRestrictViolation(sqlErr) {
			return fmt.Sprintf("Record is still referenced by %s entries", getEntityName(sqlErr.TableName, ""))
		}
		return fmt.Sprintf("The referenced %s does not exist", referencedEntity(sqlErr))

	case UniqueViolation:
		entityName := getEntityName(sqlErr.TableName, "")
		if column := extractColumnForUniqueViolation(sqlErr.ConstraintName); column != "" {
			return fmt.Sprintf("A %s with this %s already exists", entityName, humanizeText(column))
		}
		return fmt.Sprintf("A %s with this identifier already exists", entityName)

	case NotNullViolation:
		fieldName := humanizeText(sqlErr.ColumnName)
		if fieldName == "" {
			fieldName = "field"
		}
		return fmt.Sprintf("The %s is required", fieldName)

	case CheckViolation:
		if fieldName := humanizeText(sqlErr.ColumnName); fieldName != "" {
			return fmt.Sprintf("The %s value does not meet required conditions", fieldName)
		}
		return "One or more values do not meet required conditions"

	default:
		return "An error occurred while processing your request"
	}
}

// referencedEntity derives the parent entity from an "fk_<table>_<column>_id"
// or "<table>_<column>_id_fkey" constraint name.
func referencedEntity(sqlErr *Error) string {
	if sqlErr.ColumnName != "" {
		return getEntityName("", sqlErr.ColumnName)
	}

	name := strings.TrimSuffix(strings.TrimPrefix(sqlErr.ConstraintName, "fk_"), "_fkey")
	name = strings.TrimPrefix(name, sqlErr.TableName+"_")
	if strings.HasSuffix(name, "_id") {
		return getEntityName("", name)
	}
	return "record"
}

// getEntityName infers an entity name: a "*_id" column wins, then the
// singularized table name, then "record".
func getEntityName(tableName, columnName string) string {
	if columnName != "" && strings.HasSuffix(strings.ToLower(columnName), "_id") {
		entity := strings.TrimSuffix(strings.ToLower(columnName), "_id")
		return humanizeText(entity)
	}

	if tableName != "" {
		return humanizeText(singularize(tableName))
	}

	return "record"
}

func singularize(table string) string {
	switch {
	case strings.HasSuffix(table, "ies") && len(table) > 3:
		return table[:len(table)-3] + "y"
	case strings.HasSuffix(table, "s") && len(table) > 1:
		return table[:len(table)-1]
	default:
		return table
	}
}

// humanizeText converts snake_case into Title Case ("country_id" -> "Country Id").
func humanizeText(text string) string {
	if text == "" {
		return ""
	}
	return cases.Title(language.English).String(strings.ReplaceAll(text, "_", " "))
}

// extractColumnForUniqueViolation infers the column from a unique constraint
// named "unique_<table>_<column>" or "<table>_<column>_key".
func extractColumnForUniqueViolation(constraintName string) string {
	if constraintName == "" {
		return ""
	}

	if strings.HasPrefix(constraintName, "unique_") {
		parts := strings.Split(constraintName, "_")
		if len(parts) >= 3 {
			return parts[len(parts)-1]
		}
	}

	matches := uniqueKeyPattern.FindStringSubmatch(constraintName)
	if len(matches) > 1 {
		return matches[1]
	}

	return ""
}

// HandleError converts a low-level database error into an *errs.HTTPError.
//
//   - *errs.HTTPError is returned unchanged
//   - unique violations become 409 UNIQUE_CONSTRAINT_VIOLATION
//   - foreign key violations become 409 FOREIGN_KEY_VIOLATION, or
//     409 REFERENCED_BY_CHILDREN when a referenced parent was deleted
//   - not-null and check violations become 400
//   - ErrNoRows becomes 404 NOT_FOUND
//   - anything else becomes 500
func HandleError(err error) error {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return err
	}

	var pgerr *pgconn.PgError
	if errors.As(err, &pgerr) {
		sqlErr := ConvertPgError(pgerr)
		userMessage := formatUserFriendlyMessage(sqlErr)

		switch sqlErr.Code {
		case ForeignKeyViolation:
			if isRestrictViolation(sqlErr) {
				return errs.ReferencedByChildren(userMessage)
			}
			return errs.ForeignKeyViolation(userMessage)

		case UniqueViolation:
			return errs.UniqueConstraintViolation(userMessage)

		case NotNullViolation:
			fieldErrors := []errs.FieldError{
				{
					Field: strings.ToLower(sqlErr.ColumnName),
					Error: "is required",
				},
			}
			return errs.NewBadRequestError(userMessage, true, nil, fieldErrors, nil)

		case CheckViolation:
			return errs.NewBadRequestError(userMessage, true, nil, nil, nil)

		default:
			return errs.NewInternalServerError()
		}
	}

	switch {
	case errors.Is(err, pgx.ErrNoRows), errors.Is(err, sql.ErrNoRows):
		// Repositories wrap ErrNoRows as "table:<name>: ..." to name the entity.
		errMsg := err.Error()
		tablePrefix := "table:"
		if strings.Contains(errMsg, tablePrefix) {
			table := strings.Split(strings.Split(errMsg, tablePrefix)[1], ":")[0]
			return errs.NotFound(strings.ToLower(getEntityName(table, "")))
		}
		return errs.NotFound("record")
	}

	return errs.NewInternalServerError()
}
