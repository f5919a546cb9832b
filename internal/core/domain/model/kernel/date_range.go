package kernel

import (
	"fmt"
	"time"

	"shipledger/internal/pkg/errs"
)

// ErrDateRangeIsNotConstructed is returned when validating a zero-value DateRange.
var ErrDateRangeIsNotConstructed = errs.NewValidationError("DateRange must be created via NewDateRange")

// DateRange is an inclusive date range at day granularity. The constructor
// normalizes the start to 00:00:00.000 and the end to 23:59:59.999 of the
// given calendar days, so both endpoint days are fully covered.
//
// The zero value is invalid; construct via NewDateRange.
type DateRange struct {
	start time.Time
	end   time.Time

	isConstructed bool
}

// NewDateRange creates an inclusive day-granularity range from the calendar
// days of start and end. Returns a ValidationError if end is an earlier day
// than start.
func NewDateRange(start, end time.Time) (DateRange, error) {
	s := StartOfDay(start)
	e := EndOfDay(end)

	if e.Before(s) {
		return DateRange{}, errs.NewValidationError(
			fmt.Sprintf("end date %s is before start date %s",
				end.Format("2006-01-02"), start.Format("2006-01-02")),
		)
	}

	return DateRange{start: s, end: e, isConstructed: true}, nil
}

// Validate ensures the range was created via NewDateRange.
func (r DateRange) Validate() error {
	if !r.isConstructed {
		return ErrDateRangeIsNotConstructed
	}
	return nil
}

// Start returns the inclusive lower bound (00:00:00.000 of the start day).
func (r DateRange) Start() time.Time {
	return r.start
}

// End returns the inclusive upper bound (23:59:59.999 of the end day).
func (r DateRange) End() time.Time {
	return r.end
}

// Contains reports whether t falls within the range, endpoints included.
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.start) && !t.After(r.end)
}

// StartOfDay truncates t to 00:00:00.000 in its location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay advances t to 23:59:59.999 in its location.
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999000000, t.Location())
}
