// Package timeutil provides minute-of-day arithmetic for roster times.
//
// All shift times are local wall-clock "HH:MM" strings. Parsing converts them
// to minutes since midnight so interval tests and duration maths are plain
// integer comparisons.
package timeutil

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// MinutesPerDay is the number of minutes in a calendar day.
const MinutesPerDay = 24 * 60

// ErrInvalidTimeFormat indicates a time string that is not a valid 24h "HH:MM".
var ErrInvalidTimeFormat = errors.New("invalid time format")

// ToMinutes parses a 24h "HH:MM" string into minutes since midnight, in [0, 1440).
// Returns ErrInvalidTimeFormat (wrapped with the offending value) for anything else.
func ToMinutes(t string) (int, error) {
	hh, mm, ok := strings.Cut(t, ":")
	if !ok || len(hh) != 2 || len(mm) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, t)
	}

	hours, err := strconv.Atoi(hh)
	if err != nil || hours < 0 || hours > 23 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, t)
	}

	minutes, err := strconv.Atoi(mm)
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, t)
	}

	return hours*60 + minutes, nil
}

// Overlaps reports whether the half-open minute intervals [aStart, aEnd) and
// [bStart, bEnd) intersect. Both intervals must be on the same calendar day;
// cross-midnight comparisons are computed by callers in absolute minutes.
func Overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && bStart < aEnd
}

// EffectiveMinutes returns the paid duration of a shift in minutes:
// end minus start minus the unpaid break. A negative result is returned as-is;
// it signals an end time before the start time without overnight semantics and
// is the caller's data-quality problem to surface, not ours to repair.
func EffectiveMinutes(startMinutes, endMinutes, breakMinutes int) int {
	return endMinutes - startMinutes - breakMinutes
}

// EffectiveHours is EffectiveMinutes expressed in fractional hours.
func EffectiveHours(startMinutes, endMinutes, breakMinutes int) float64 {
	return float64(EffectiveMinutes(startMinutes, endMinutes, breakMinutes)) / 60.0
}

// RestGap returns the rest period in minutes between a shift ending at
// prevEndMinutes on one day and a shift starting at nextStartMinutes on the
// following day, wrapping across midnight.
func RestGap(prevEndMinutes, nextStartMinutes int) int {
	return (MinutesPerDay - prevEndMinutes) + nextStartMinutes
}
