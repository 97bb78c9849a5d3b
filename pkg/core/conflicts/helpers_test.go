package conflicts

import (
	"time"

	"github.com/webdeveloper7191-del/time-trail-guide-sub014/pkg/core/roster"
)

// testShift builds a shift with the fields the rules care about.
func testShift(id, staffID, date, start, end string) roster.Shift {
	return roster.Shift{
		ID:        id,
		StaffID:   staffID,
		CentreID:  "centre-1",
		RoomID:    "room-1",
		Date:      date,
		StartTime: start,
		EndTime:   end,
		Status:    roster.ShiftScheduled,
	}
}

// testStaff builds a staff member with sensible defaults and no constraints
// configured.
func testStaff(id string) roster.StaffMember {
	return roster.StaffMember{
		ID:              id,
		Name:            "Staff " + id,
		HourlyRate:      30,
		OvertimeRate:    45,
		MaxHoursPerWeek: 38,
	}
}

// testEnv wraps a staff member and other shifts into a rule environment.
func testEnv(member roster.StaffMember, others ...roster.Shift) *Environment {
	return &Environment{
		Staff:       member,
		OtherShifts: others,
		Rooms:       []roster.Room{{ID: "room-1", Name: "Blue Room"}},
	}
}

// allWeekdays marks every day of week with the same availability window.
func allWeekdays(window roster.Availability) map[time.Weekday]roster.Availability {
	availability := make(map[time.Weekday]roster.Availability)
	for d := time.Sunday; d <= time.Saturday; d++ {
		availability[d] = window
	}
	return availability
}
