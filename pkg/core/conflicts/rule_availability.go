package conflicts

import (
	"fmt"

	"github.com/webdeveloper7191-del/time-trail-guide-sub014/pkg/core/roster"
)

// AvailabilityRule checks the candidate against the staff member's declared
// working pattern for that day of week.
//
// An unavailable day is an error (overridable under current policy: a
// scheduler may knowingly roster someone outside their pattern). A shift that
// merely spills outside the declared window on an available day is a warning.
// A missing availability entry means the pattern is unknown and nothing is
// reported.
type AvailabilityRule struct{}

func (AvailabilityRule) Type() ConflictType {
	return TypeOutsideAvailability
}

func (AvailabilityRule) Evaluate(candidate roster.Shift, env *Environment) ([]Conflict, error) {
	day, err := candidate.Day()
	if err != nil {
		return nil, err
	}

	window, ok := env.Staff.Availability[day.Weekday()]
	if !ok {
		return nil, nil
	}

	if !window.Available {
		p := policy[TypeOutsideAvailability]
		return []Conflict{{
			ID:          shiftID(TypeOutsideAvailability, candidate.ID),
			Type:        TypeOutsideAvailability,
			Severity:    p.severity,
			ShiftID:     candidate.ID,
			StaffID:     candidate.StaffID,
			Message:     fmt.Sprintf("%s is not available on %ss", env.Staff.Name, day.Weekday()),
			CanOverride: p.canOverride,
		}}, nil
	}

	// No declared window means any time of day is fine.
	if window.StartTime == "" || window.EndTime == "" {
		return nil, nil
	}

	start, end, err := shiftWindow(candidate)
	if err != nil {
		return nil, err
	}
	availStart, availEnd, err := shiftWindow(roster.Shift{
		ID:        candidate.ID,
		StartTime: window.StartTime,
		EndTime:   window.EndTime,
	})
	if err != nil {
		return nil, fmt.Errorf("staff %s availability window: %w", env.Staff.ID, err)
	}

	if start >= availStart && end <= availEnd {
		return nil, nil
	}

	return []Conflict{{
		ID:       shiftID(TypeOutsideAvailability, candidate.ID),
		Type:     TypeOutsideAvailability,
		Severity: SeverityWarning,
		ShiftID:  candidate.ID,
		StaffID:  candidate.StaffID,
		Message: fmt.Sprintf("shift %s-%s extends beyond %s's availability (%s-%s)",
			candidate.StartTime, candidate.EndTime, env.Staff.Name, window.StartTime, window.EndTime),
		CanOverride: true,
	}}, nil
}
