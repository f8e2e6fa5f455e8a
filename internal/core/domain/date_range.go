package domain

import (
	"fmt"
	"time"

	"github.com/SscSPs/budget_engine/internal/apperrors"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// DateRange is an inclusive range of calendar dates.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// NewDateRange normalises both bounds to calendar dates and validates start <= end.
func NewDateRange(start, end time.Time) (DateRange, error) {
	r := DateRange{Start: DateOnly(start), End: DateOnly(end)}
	if err := r.Validate(); err != nil {
		return DateRange{}, err
	}
	return r, nil
}

// ParseDateRange parses two YYYY-MM-DD strings into a validated range.
func ParseDateRange(start, end string) (DateRange, error) {
	s, err := time.Parse(DateLayout, start)
	if err != nil {
		return DateRange{}, fmt.Errorf("%w: invalid start date %q", apperrors.ErrValidation, start)
	}
	e, err := time.Parse(DateLayout, end)
	if err != nil {
		return DateRange{}, fmt.Errorf("%w: invalid end date %q", apperrors.ErrValidation, end)
	}
	return NewDateRange(s, e)
}

// Validate rejects ranges whose start falls after their end.
func (r DateRange) Validate() error {
	if DateOnly(r.Start).After(DateOnly(r.End)) {
		return fmt.Errorf("%w: start date %s is after end date %s",
			apperrors.ErrValidation, r.Start.Format(DateLayout), r.End.Format(DateLayout))
	}
	return nil
}

// Contains reports whether t falls on or between the range bounds. Only the calendar date
// of t is considered.
func (r DateRange) Contains(t time.Time) bool {
	d := DateOnly(t)
	return !d.Before(DateOnly(r.Start)) && !d.After(DateOnly(r.End))
}

// DateOnly drops the time-of-day and location, keeping the calendar date as seen in t's
// own location.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
