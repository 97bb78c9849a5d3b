package conflicts

import (
	"fmt"

	"github.com/webdeveloper7191-del/time-trail-guide-sub014/pkg/core/roster"
)

// ConsecutiveDaysRule counts the run of consecutive working days the candidate
// would sit inside: walking backward and forward from its date, a day counts if
// the staff member already has at least one shift on it. The walk is bounded to
// the configured limit in each direction, which is enough to prove the run
// exceeds it.
type ConsecutiveDaysRule struct{}

func (ConsecutiveDaysRule) Type() ConflictType {
	return TypeMaxConsecutiveDays
}

func (ConsecutiveDaysRule) Evaluate(candidate roster.Shift, env *Environment) ([]Conflict, error) {
	if _, err := candidate.Day(); err != nil {
		return nil, err
	}

	limit := env.Staff.MaxConsecutive()

	run := 1 // the candidate day itself
	for _, direction := range []int{-1, 1} {
		for step := 1; step <= limit; step++ {
			date, err := addDays(candidate.Date, direction*step)
			if err != nil {
				return nil, err
			}
			if len(env.staffShiftsOn(date)) == 0 {
				break
			}
			run++
		}
	}

	if run <= limit {
		return nil, nil
	}

	p := policy[TypeMaxConsecutiveDays]
	return []Conflict{{
		ID:       shiftID(TypeMaxConsecutiveDays, candidate.ID),
		Type:     TypeMaxConsecutiveDays,
		Severity: p.severity,
		ShiftID:  candidate.ID,
		StaffID:  candidate.StaffID,
		Message: fmt.Sprintf("%s would work %d consecutive days, limit is %d",
			env.Staff.Name, run, limit),
		CanOverride: p.canOverride,
	}}, nil
}
