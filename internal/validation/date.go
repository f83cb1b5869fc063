package validation

import (
	"errors"
	"regexp"
	"strconv"
	"time"

	"github.com/deppfellow/geotemp/internal/errs"
)

// DateLayout is the only accepted calendar date format.
const DateLayout = "2006-01-02"

var (
	// ErrMalformedDate is returned for strings not shaped YYYY-MM-DD.
	ErrMalformedDate = errors.New("date must match YYYY-MM-DD")
	// ErrInvalidCalendarDate is returned for well-shaped strings naming no real day.
	ErrInvalidCalendarDate = errors.New("date is not a calendar day")
)

var dateShape = regexp.MustCompile(`^[0-9]{4}-[0-9]{2}-[0-9]{2}$`)

// Date is an optional calendar day. The zero value is Unspecified.
type Date struct {
	Day time.Time
	Set bool
}

// String renders the day as YYYY-MM-DD, or "" when unspecified.
func (d Date) String() string {
	if !d.Set {
		return ""
	}
	return d.Day.Format(DateLayout)
}

// ParseDate validates raw. An empty string is Unspecified.
func ParseDate(raw string) (Date, error) {
	if raw == "" {
		return Date{}, nil
	}
	if !dateShape.MatchString(raw) {
		return Date{}, ErrMalformedDate
	}

	year, _ := strconv.Atoi(raw[0:4])
	month, _ := strconv.Atoi(raw[5:7])
	day, _ := strconv.Atoi(raw[8:10])

	if year < 1 || month < 1 || month > 12 || day < 1 {
		return Date{}, ErrInvalidCalendarDate
	}

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes overflow (Feb 30 -> Mar 2); a changed month means the day did not exist.
	if t.Month() != time.Month(month) || t.Day() != day {
		return Date{}, ErrInvalidCalendarDate
	}

	return Date{Day: t, Set: true}, nil
}

// ParseDateRange parses the from/until query values. Both are checked for
// shape before either is checked for calendar validity.
func ParseDateRange(from, until string) (Date, Date, error) {
	f, fromErr := ParseDate(from)
	u, untilErr := ParseDate(until)

	switch {
	case errors.Is(fromErr, ErrMalformedDate):
		return Date{}, Date{}, errs.MalformedDate("from")
	case errors.Is(untilErr, ErrMalformedDate):
		return Date{}, Date{}, errs.MalformedDate("until")
	case errors.Is(fromErr, ErrInvalidCalendarDate):
		return Date{}, Date{}, errs.InvalidCalendarDate("from")
	case errors.Is(untilErr, ErrInvalidCalendarDate):
		return Date{}, Date{}, errs.InvalidCalendarDate("until")
	}

	return f, u, nil
}
