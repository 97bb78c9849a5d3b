package conflicts

import (
	"fmt"

	"github.com/webdeveloper7191-del/time-trail-guide-sub014/pkg/core/roster"
)

// LeaveRule blocks shifts that fall inside an approved time-off range,
// inclusive of both endpoints. Pending and rejected requests do not count;
// a pending request is still the leave workflow's problem, not the roster's.
type LeaveRule struct{}

func (LeaveRule) Type() ConflictType {
	return TypeOnLeave
}

func (LeaveRule) Evaluate(candidate roster.Shift, env *Environment) ([]Conflict, error) {
	if _, err := candidate.Day(); err != nil {
		return nil, err
	}

	for _, leave := range env.Staff.TimeOff {
		if leave.Status != roster.TimeOffApproved || !leave.Contains(candidate.Date) {
			continue
		}

		p := policy[TypeOnLeave]
		return []Conflict{{
			ID:       shiftID(TypeOnLeave, candidate.ID),
			Type:     TypeOnLeave,
			Severity: p.severity,
			ShiftID:  candidate.ID,
			StaffID:  candidate.StaffID,
			Message: fmt.Sprintf("%s is on approved %s leave %s to %s",
				env.Staff.Name, leave.Type, leave.StartDate, leave.EndDate),
			CanOverride: p.canOverride,
		}}, nil
	}

	return nil, nil
}
