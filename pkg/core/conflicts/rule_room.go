package conflicts

import (
	"fmt"
	"slices"

	"github.com/webdeveloper7191-del/time-trail-guide-sub014/pkg/core/roster"
)

// AvoidedRoomRule warns when the candidate places a staff member in a room
// they have asked to avoid.
type AvoidedRoomRule struct{}

func (AvoidedRoomRule) Type() ConflictType {
	return TypeAvoidedRoom
}

func (AvoidedRoomRule) Evaluate(candidate roster.Shift, env *Environment) ([]Conflict, error) {
	if !slices.Contains(env.Staff.Preferences.AvoidRooms, candidate.RoomID) {
		return nil, nil
	}

	p := policy[TypeAvoidedRoom]
	return []Conflict{{
		ID:       shiftID(TypeAvoidedRoom, candidate.ID),
		Type:     TypeAvoidedRoom,
		Severity: p.severity,
		ShiftID:  candidate.ID,
		StaffID:  candidate.StaffID,
		Message: fmt.Sprintf("%s prefers not to work in %s",
			env.Staff.Name, roster.RoomName(env.Rooms, candidate.RoomID)),
		CanOverride: p.canOverride,
	}}, nil
}
