package conflicts

import (
	"fmt"

	"github.com/webdeveloper7191-del/time-trail-guide-sub014/pkg/core/roster"
	"github.com/webdeveloper7191-del/time-trail-guide-sub014/pkg/core/timeutil"
)

// RestRule checks the rest gap between the candidate and the staff member's
// nearest shift on the calendar day before and the day after, wrapping across
// midnight. Each adjacent day is checked independently, so one candidate can
// raise up to two conflicts. The gap to the previous day uses that day's
// latest-ending shift; the gap to the next day uses its earliest start.
type RestRule struct{}

func (RestRule) Type() ConflictType {
	return TypeInsufficientRest
}

func (RestRule) Evaluate(candidate roster.Shift, env *Environment) ([]Conflict, error) {
	start, end, err := shiftWindow(candidate)
	if err != nil {
		return nil, err
	}

	minRestMinutes := int(env.Staff.MinRestHours() * 60)

	prevDate, err := addDays(candidate.Date, -1)
	if err != nil {
		return nil, err
	}
	nextDate, err := addDays(candidate.Date, 1)
	if err != nil {
		return nil, err
	}

	var found []Conflict

	// Rest since the previous day's last shift.
	if prev, prevEnd, err := latestEnding(env.staffShiftsOn(prevDate)); err != nil {
		return nil, err
	} else if prev != nil {
		gap := timeutil.RestGap(prevEnd, start)
		if gap < minRestMinutes {
			found = append(found, restConflict(candidate, *prev, env, gap, minRestMinutes))
		}
	}

	// Rest before the next day's first shift.
	if next, nextStart, err := earliestStarting(env.staffShiftsOn(nextDate)); err != nil {
		return nil, err
	} else if next != nil {
		gap := timeutil.RestGap(end, nextStart)
		if gap < minRestMinutes {
			found = append(found, restConflict(candidate, *next, env, gap, minRestMinutes))
		}
	}

	return found, nil
}

func restConflict(candidate, neighbour roster.Shift, env *Environment, gapMinutes, minRestMinutes int) Conflict {
	p := policy[TypeInsufficientRest]
	return Conflict{
		ID:       pairID(TypeInsufficientRest, candidate.ID, neighbour.ID),
		Type:     TypeInsufficientRest,
		Severity: p.severity,
		ShiftID:  candidate.ID,
		StaffID:  candidate.StaffID,
		Message: fmt.Sprintf("%s would get %.1fh rest before the shift on %s, minimum is %.0fh",
			env.Staff.Name, float64(gapMinutes)/60, maxDate(candidate.Date, neighbour.Date), float64(minRestMinutes)/60),
		Details:     fmt.Sprintf("adjacent shift %s", neighbour.ID),
		CanOverride: p.canOverride,
	}
}

// latestEnding returns the shift with the latest end time, or nil when the
// slice is empty.
func latestEnding(shifts []roster.Shift) (*roster.Shift, int, error) {
	var best *roster.Shift
	bestEnd := -1
	for i := range shifts {
		_, end, err := shiftWindow(shifts[i])
		if err != nil {
			return nil, 0, err
		}
		if end > bestEnd {
			best = &shifts[i]
			bestEnd = end
		}
	}
	return best, bestEnd, nil
}

// earliestStarting returns the shift with the earliest start time, or nil when
// the slice is empty.
func earliestStarting(shifts []roster.Shift) (*roster.Shift, int, error) {
	var best *roster.Shift
	bestStart := timeutil.MinutesPerDay + 1
	for i := range shifts {
		start, _, err := shiftWindow(shifts[i])
		if err != nil {
			return nil, 0, err
		}
		if start < bestStart {
			best = &shifts[i]
			bestStart = start
		}
	}
	return best, bestStart, nil
}

func maxDate(a, b string) string {
	if a > b {
		return a
	}
	return b
}
