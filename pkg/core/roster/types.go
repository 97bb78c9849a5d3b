// Package roster defines the domain records the compliance and cost engine
// evaluates. The engine treats every value here as an immutable snapshot
// supplied by the caller; nothing in this repository mutates them.
package roster

import (
	"errors"
	"fmt"
	"time"
)

// DateLayout is the calendar-day format used throughout the roster ("yyyy-MM-dd").
const DateLayout = "2006-01-02"

// ErrInvalidDate indicates a shift or leave date that does not parse as DateLayout.
var ErrInvalidDate = errors.New("invalid date")

// ShiftStatus is the lifecycle state of a shift as recorded by the roster editor.
type ShiftStatus string

const (
	ShiftScheduled ShiftStatus = "scheduled"
	ShiftConfirmed ShiftStatus = "confirmed"
	ShiftCompleted ShiftStatus = "completed"
	ShiftCancelled ShiftStatus = "cancelled"
)

// Shift is one scheduled work block for one staff member, room and date.
// Edits supersede a shift rather than mutating it; each edit is evaluated as a
// new candidate against the remaining shifts.
type Shift struct {
	ID       string `json:"id"`
	StaffID  string `json:"staffId"`
	CentreID string `json:"centreId"`
	RoomID   string `json:"roomId"`

	// Date is the calendar day in DateLayout.
	Date string `json:"date"`

	// StartTime and EndTime are local "HH:MM". An EndTime before StartTime
	// represents an overnight shift ending the next day.
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`

	// BreakMinutes is unpaid and subtracted from the paid duration.
	BreakMinutes int `json:"breakMinutes"`

	Status ShiftStatus `json:"status"`
}

// Day parses the shift's Date field.
func (s Shift) Day() (time.Time, error) {
	day, err := time.Parse(DateLayout, s.Date)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: shift %s has date %q", ErrInvalidDate, s.ID, s.Date)
	}
	return day, nil
}

// WeekBounds returns the Monday and Sunday (inclusive) of the week containing
// the given DateLayout day. Rosters are budgeted, audited and capped per week.
func WeekBounds(date string) (from, to string, err error) {
	day, err := time.Parse(DateLayout, date)
	if err != nil {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}

	// time.Weekday has Sunday = 0; shift it so Monday = 0.
	offset := (int(day.Weekday()) + 6) % 7
	monday := day.AddDate(0, 0, -offset)
	sunday := monday.AddDate(0, 0, 6)

	return monday.Format(DateLayout), sunday.Format(DateLayout), nil
}

// TimeOffStatus is the approval state of a leave request.
type TimeOffStatus string

const (
	TimeOffPending  TimeOffStatus = "pending"
	TimeOffApproved TimeOffStatus = "approved"
	TimeOffRejected TimeOffStatus = "rejected"
)

// TimeOff is a leave range. StartDate and EndDate are inclusive calendar days
// in DateLayout.
type TimeOff struct {
	StartDate string        `json:"startDate"`
	EndDate   string        `json:"endDate"`
	Status    TimeOffStatus `json:"status"`
	Type      string        `json:"type"`
}

// Contains reports whether the leave range covers the given day, inclusive of
// both endpoints. Dates compare correctly as strings because DateLayout is
// lexicographically ordered.
func (t TimeOff) Contains(date string) bool {
	return t.StartDate <= date && date <= t.EndDate
}

// Availability is one day-of-week window in a staff member's working pattern.
// StartTime/EndTime are only meaningful when Available is true; empty strings
// mean the whole day is workable.
type Availability struct {
	Available bool   `json:"available"`
	StartTime string `json:"startTime,omitempty"`
	EndTime   string `json:"endTime,omitempty"`
}

// SchedulingPreferences are per-staff soft constraints. Zero values mean
// "not configured" and the engine substitutes its documented defaults.
type SchedulingPreferences struct {
	// MinRestHoursBetweenShifts is the minimum rest gap between consecutive
	// working days. Default 10 when zero.
	MinRestHoursBetweenShifts float64 `json:"minRestHoursBetweenShifts,omitempty"`

	// MaxConsecutiveDays is the longest permitted run of working days.
	// Default 5 when zero.
	MaxConsecutiveDays int `json:"maxConsecutiveDays,omitempty"`

	// AvoidRooms lists rooms this staff member prefers not to work in.
	AvoidRooms []string `json:"avoidRooms,omitempty"`
}

// StaffMember carries the attributes the engine needs to price and police a
// roster. Monetary rates are per hour in whole currency units.
type StaffMember struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	HourlyRate   float64 `json:"hourlyRate"`
	OvertimeRate float64 `json:"overtimeRate"`

	// MaxHoursPerWeek is the contracted weekly cap; hours beyond it are paid
	// at OvertimeRate.
	MaxHoursPerWeek float64 `json:"maxHoursPerWeek"`

	// CurrentWeeklyHours is a caller-supplied snapshot kept for display.
	// The overtime rule recomputes weekly hours from the shift list it is
	// given and never reads this field, so the two cannot double count.
	CurrentWeeklyHours float64 `json:"currentWeeklyHours"`

	// Agency staff are billed at full HourlyRate and tracked outside the
	// regular/overtime payroll bands.
	Agency bool `json:"agency"`

	// Availability is keyed by time.Weekday. A missing entry means the
	// working pattern for that day is unknown and no availability conflict
	// is raised.
	Availability map[time.Weekday]Availability `json:"availability,omitempty"`

	TimeOff []TimeOff `json:"timeOff,omitempty"`

	Preferences SchedulingPreferences `json:"schedulingPreferences,omitempty"`
}

// MinRestHours returns the configured minimum rest gap, defaulting to 10 hours.
func (m StaffMember) MinRestHours() float64 {
	if m.Preferences.MinRestHoursBetweenShifts > 0 {
		return m.Preferences.MinRestHoursBetweenShifts
	}
	return 10
}

// MaxConsecutive returns the configured consecutive-day limit, defaulting to 5.
func (m StaffMember) MaxConsecutive() int {
	if m.Preferences.MaxConsecutiveDays > 0 {
		return m.Preferences.MaxConsecutiveDays
	}
	return 5
}

// Room is a bookable space. Used for human-readable conflict messages and the
// avoid-room rule only.
type Room struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// RoomName resolves a room ID to its display name, falling back to the ID when
// the room is not in the directory.
func RoomName(rooms []Room, roomID string) string {
	for _, r := range rooms {
		if r.ID == roomID {
			return r.Name
		}
	}
	return roomID
}

// FindStaff returns the staff member with the given ID.
func FindStaff(staff []StaffMember, id string) (StaffMember, bool) {
	for _, m := range staff {
		if m.ID == id {
			return m, true
		}
	}
	return StaffMember{}, false
}
