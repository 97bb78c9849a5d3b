package conflicts

import (
	"errors"
	"fmt"
	"time"

	"github.com/webdeveloper7191-del/time-trail-guide-sub014/pkg/core/roster"
	"github.com/webdeveloper7191-del/time-trail-guide-sub014/pkg/core/timeutil"
)

// ErrUnknownStaff indicates a shift referencing a staff member that is not in
// the supplied directory.
var ErrUnknownStaff = errors.New("unknown staff member")

// ErrNegativeDuration indicates a shift whose end time precedes its start time
// without overnight semantics. This is a data-quality condition surfaced to the
// caller, never silently clamped.
var ErrNegativeDuration = errors.New("negative shift duration")

// Rule is one scheduling-rule evaluator. Rules are pure: they read the
// environment, never mutate it, and may emit zero or more conflicts.
type Rule interface {
	// Type returns the conflict type this rule emits.
	Type() ConflictType

	// Evaluate checks the candidate shift against the environment.
	// An error means the rule could not run (malformed input), in which case
	// the whole evaluation for this candidate fails explicitly.
	Evaluate(candidate roster.Shift, env *Environment) ([]Conflict, error)
}

// Environment is the slice of roster state one evaluation sees: the candidate's
// resolved staff member, every other shift, and the room directory. Built once
// per candidate by the detector and shared read-only across rules.
type Environment struct {
	// Staff is the owner of the candidate shift.
	Staff roster.StaffMember

	// OtherShifts is the full shift collection minus the candidate itself
	// (excluded by ID), so an edited shift is never compared against its own
	// previous version.
	OtherShifts []roster.Shift

	Rooms []roster.Room
}

// staffShifts returns the other shifts belonging to the candidate's staff
// member, in input order. Cancelled shifts do not constrain anything.
func (env *Environment) staffShifts() []roster.Shift {
	var shifts []roster.Shift
	for _, s := range env.OtherShifts {
		if s.StaffID == env.Staff.ID && s.Status != roster.ShiftCancelled {
			shifts = append(shifts, s)
		}
	}
	return shifts
}

// staffShiftsOn returns the staff member's other shifts on one calendar day.
func (env *Environment) staffShiftsOn(date string) []roster.Shift {
	var shifts []roster.Shift
	for _, s := range env.staffShifts() {
		if s.Date == date {
			shifts = append(shifts, s)
		}
	}
	return shifts
}

// shiftWindow parses a shift's start and end into minutes since midnight.
func shiftWindow(s roster.Shift) (start, end int, err error) {
	start, err = timeutil.ToMinutes(s.StartTime)
	if err != nil {
		return 0, 0, fmt.Errorf("shift %s start: %w", s.ID, err)
	}
	end, err = timeutil.ToMinutes(s.EndTime)
	if err != nil {
		return 0, 0, fmt.Errorf("shift %s end: %w", s.ID, err)
	}
	return start, end, nil
}

// shiftHours returns a shift's paid duration in hours, failing on negative
// durations rather than correcting them.
func shiftHours(s roster.Shift) (float64, error) {
	start, end, err := shiftWindow(s)
	if err != nil {
		return 0, err
	}
	hours := timeutil.EffectiveHours(start, end, s.BreakMinutes)
	if hours < 0 {
		return 0, fmt.Errorf("%w: shift %s (%s-%s)", ErrNegativeDuration, s.ID, s.StartTime, s.EndTime)
	}
	return hours, nil
}

// addDays shifts a DateLayout day by the given number of days.
func addDays(date string, days int) (string, error) {
	day, err := time.Parse(roster.DateLayout, date)
	if err != nil {
		return "", fmt.Errorf("%w: %q", roster.ErrInvalidDate, date)
	}
	return day.AddDate(0, 0, days).Format(roster.DateLayout), nil
}

// DefaultRules returns the seven evaluators in their fixed evaluation order.
// The order is part of the engine's contract: conflicts come back grouped by
// rule in this sequence, unsorted by severity.
func DefaultRules() []Rule {
	return []Rule{
		OverlapRule{},
		AvailabilityRule{},
		OvertimeRule{},
		LeaveRule{},
		RestRule{},
		ConsecutiveDaysRule{},
		AvoidedRoomRule{},
	}
}
