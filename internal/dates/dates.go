// Package dates resolves YYYY-MM-DD query parameters into half-open
// UTC instant intervals used by the listing and trend queries.
package dates

import (
	"errors"
	"fmt"
	"regexp"
	"time"
)

const dayLayout = "2006-01-02"

// Matches four-digit year, two-digit month, two-digit day. Anything
// else is rejected before business logic runs.
var dayPattern = regexp.MustCompile(`^\d{4}-[01]\d-[0-3]\d$`)

// ErrAmbiguousParams is returned when a caller combines a single date
// with a range, or supplies only one end of a range.
var ErrAmbiguousParams = errors.New("provide either `date`, or both `start` and `end` (YYYY-MM-DD)")

// Range is a half-open UTC interval [Start, End).
type Range struct {
	Start time.Time
	End   time.Time
}

// ParseDay validates and parses a YYYY-MM-DD calendar date as UTC midnight.
func ParseDay(s string) (time.Time, error) {
	if !dayPattern.MatchString(s) {
		return time.Time{}, fmt.Errorf("expected date in YYYY-MM-DD format, got %q", s)
	}
	t, err := time.ParseInLocation(dayLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

// SingleDay resolves a calendar date D to [UTC-midnight(D), +1 day).
func SingleDay(date string) (Range, error) {
	day, err := ParseDay(date)
	if err != nil {
		return Range{}, err
	}
	return Range{Start: day, End: day.AddDate(0, 0, 1)}, nil
}

// Span resolves an inclusive calendar range [S, E] to
// [UTC-midnight(S), UTC-midnight(E) + 1 day). Start must not be after
// end.
func Span(start, end string) (Range, error) {
	s, err := ParseDay(start)
	if err != nil {
		return Range{}, err
	}
	e, err := ParseDay(end)
	if err != nil {
		return Range{}, err
	}
	if s.After(e) {
		return Range{}, fmt.Errorf("start date %s is after end date %s", start, end)
	}
	return Range{Start: s, End: e.AddDate(0, 0, 1)}, nil
}

// Today returns the UTC calendar-day interval containing now.
func Today(now time.Time) Range {
	y, m, d := now.UTC().Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return Range{Start: day, End: day.AddDate(0, 0, 1)}
}

// OptionalSpan resolves the trend-endpoint date parameters: either
// both start and end are given, or neither (nil means no filter,
// all-time).
func OptionalSpan(start, end string) (*Range, error) {
	if start == "" && end == "" {
		return nil, nil
	}
	if start == "" || end == "" {
		return nil, errors.New("provide both `start` and `end` or neither (YYYY-MM-DD)")
	}
	r, err := Span(start, end)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// DayOrSpan resolves the question date-listing parameters: exactly one
// of a single date or a (start, end) pair must be given.
func DayOrSpan(date, start, end string) (Range, error) {
	switch {
	case date != "" && start == "" && end == "":
		return SingleDay(date)
	case date == "" && start != "" && end != "":
		return Span(start, end)
	default:
		return Range{}, ErrAmbiguousParams
	}
}
