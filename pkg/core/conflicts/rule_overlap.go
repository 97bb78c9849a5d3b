package conflicts

import (
	"fmt"

	"github.com/webdeveloper7191-del/time-trail-guide-sub014/pkg/core/roster"
	"github.com/webdeveloper7191-del/time-trail-guide-sub014/pkg/core/timeutil"
)

// OverlapRule reports double bookings: any other shift of the same staff
// member on the same date whose [start, end) window intersects the candidate's.
// One conflict per overlapping shift, so a triple booking yields two records.
type OverlapRule struct{}

func (OverlapRule) Type() ConflictType {
	return TypeOverlap
}

func (OverlapRule) Evaluate(candidate roster.Shift, env *Environment) ([]Conflict, error) {
	start, end, err := shiftWindow(candidate)
	if err != nil {
		return nil, err
	}

	var found []Conflict
	for _, other := range env.staffShiftsOn(candidate.Date) {
		otherStart, otherEnd, err := shiftWindow(other)
		if err != nil {
			return nil, err
		}

		if !timeutil.Overlaps(start, end, otherStart, otherEnd) {
			continue
		}

		p := policy[TypeOverlap]
		found = append(found, Conflict{
			ID:       pairID(TypeOverlap, candidate.ID, other.ID),
			Type:     TypeOverlap,
			Severity: p.severity,
			ShiftID:  candidate.ID,
			StaffID:  candidate.StaffID,
			Message: fmt.Sprintf("%s is already rostered %s-%s on %s",
				env.Staff.Name, other.StartTime, other.EndTime, other.Date),
			Details:     fmt.Sprintf("overlaps shift %s", other.ID),
			CanOverride: p.canOverride,
		})
	}

	return found, nil
}
