package conflicts

import (
	"fmt"

	"github.com/webdeveloper7191-del/time-trail-guide-sub014/pkg/core/roster"
)

// OvertimeRule flags a candidate that pushes the staff member's prospective
// weekly hours past their contracted cap. The week is the Monday-to-Sunday
// range containing the candidate; shifts outside it never count toward the
// sum, so callers may pass a wider window for the benefit of other rules.
//
// Hours are recomputed from the shift list passed in, never taken from the
// CurrentWeeklyHours snapshot, so the rule cannot double count a shift that is
// both in the snapshot and in the list. The conflict ID is keyed by staff
// member, not shift: a full-roster audit reports one overage per person.
type OvertimeRule struct{}

func (OvertimeRule) Type() ConflictType {
	return TypeOvertimeExceeded
}

func (OvertimeRule) Evaluate(candidate roster.Shift, env *Environment) ([]Conflict, error) {
	if env.Staff.MaxHoursPerWeek <= 0 {
		// No configured cap, nothing to exceed.
		return nil, nil
	}

	weekFrom, weekTo, err := roster.WeekBounds(candidate.Date)
	if err != nil {
		return nil, err
	}

	total, err := shiftHours(candidate)
	if err != nil {
		return nil, err
	}
	for _, other := range env.staffShifts() {
		if other.Date < weekFrom || other.Date > weekTo {
			continue
		}
		hours, err := shiftHours(other)
		if err != nil {
			return nil, err
		}
		total += hours
	}

	if total <= env.Staff.MaxHoursPerWeek {
		return nil, nil
	}

	overage := total - env.Staff.MaxHoursPerWeek
	p := policy[TypeOvertimeExceeded]
	return []Conflict{{
		ID:       staffID(TypeOvertimeExceeded, env.Staff.ID),
		Type:     TypeOvertimeExceeded,
		Severity: p.severity,
		ShiftID:  candidate.ID,
		StaffID:  candidate.StaffID,
		Message: fmt.Sprintf("%s would work %.1fh this week, %.1fh over their %.0fh limit",
			env.Staff.Name, total, overage, env.Staff.MaxHoursPerWeek),
		CanOverride: p.canOverride,
	}}, nil
}
