// Package conflicts implements the roster compliance rule engine: seven
// independent rule evaluators, a severity/override policy, and a deduplicating
// aggregator. Everything is a pure function over caller-supplied snapshots.
package conflicts

import (
	"fmt"
	"sort"
)

// ConflictType identifies which scheduling rule a conflict violates.
// The set is closed; values outside it are never constructed.
type ConflictType string

const (
	TypeOverlap             ConflictType = "overlap"
	TypeOutsideAvailability ConflictType = "outside_availability"
	TypeOvertimeExceeded    ConflictType = "overtime_exceeded"
	TypeOnLeave             ConflictType = "on_leave"
	TypeInsufficientRest    ConflictType = "insufficient_rest"
	TypeMaxConsecutiveDays  ConflictType = "max_consecutive_days"
	TypeAvoidedRoom         ConflictType = "avoided_room"
)

// Severity classifies how a conflict should be treated by the caller.
type Severity string

const (
	// SeverityError conflicts represent rule violations that should block a
	// save unless the policy marks them overridable.
	SeverityError Severity = "error"

	// SeverityWarning conflicts are advisory; schedulers may proceed.
	SeverityWarning Severity = "warning"
)

// Conflict is one reported rule violation. Conflicts are values; the engine
// never persists them. The ID is deterministic for a given shift + rule +
// counterpart combination so repeated evaluation deduplicates.
type Conflict struct {
	ID          string       `json:"id"`
	Type        ConflictType `json:"type"`
	Severity    Severity     `json:"severity"`
	ShiftID     string       `json:"shiftId"`
	StaffID     string       `json:"staffId"`
	Message     string       `json:"message"`
	Details     string       `json:"details,omitempty"`
	CanOverride bool         `json:"canOverride"`
}

// Conflict ID segments join on "|". Shift IDs themselves may contain ":"
// (expanded template shifts embed the occurrence date that way), so a ":"
// separator would let different ID pairs alias to the same conflict ID.

// pairID builds a conflict ID from a rule type and the two shift IDs it
// involves. The pair is sorted so evaluating from either shift's perspective
// yields the same ID and a full-roster pass collapses the two to one record.
func pairID(t ConflictType, shiftA, shiftB string) string {
	if shiftB < shiftA {
		shiftA, shiftB = shiftB, shiftA
	}
	return fmt.Sprintf("%s|%s|%s", t, shiftA, shiftB)
}

// shiftID builds a conflict ID for a rule with no counterpart shift.
func shiftID(t ConflictType, shift string) string {
	return fmt.Sprintf("%s|%s", t, shift)
}

// staffID builds a conflict ID for a rule that is really about the staff
// member's whole week rather than any one shift. Used by the overtime rule so
// a full-roster audit reports one overage per staff member, not one per shift.
func staffID(t ConflictType, staff string) string {
	return fmt.Sprintf("%s|staff|%s", t, staff)
}

// policyEntry is the configured handling for one conflict type.
type policyEntry struct {
	severity    Severity
	canOverride bool
}

// policy maps each rule type to its severity and overridability.
//
// Overlap and on-leave are hard violations: double-booking a person or rostering
// them onto approved leave is never legitimate. An unavailable day is an error a
// scheduler may knowingly override under current policy. The availability rule
// downgrades to a warning itself when the shift merely spills outside a declared
// window on an otherwise available day.
var policy = map[ConflictType]policyEntry{
	TypeOverlap:             {SeverityError, false},
	TypeOutsideAvailability: {SeverityError, true},
	TypeOvertimeExceeded:    {SeverityWarning, true},
	TypeOnLeave:             {SeverityError, false},
	TypeInsufficientRest:    {SeverityWarning, true},
	TypeMaxConsecutiveDays:  {SeverityWarning, true},
	TypeAvoidedRoom:         {SeverityWarning, true},
}

// ruleOrder is the fixed evaluation order; display ordering ranks by it after
// severity.
var ruleOrder = map[ConflictType]int{
	TypeOverlap:             0,
	TypeOutsideAvailability: 1,
	TypeOvertimeExceeded:    2,
	TypeOnLeave:             3,
	TypeInsufficientRest:    4,
	TypeMaxConsecutiveDays:  5,
	TypeAvoidedRoom:         6,
}

// OrderForDisplay sorts conflicts for presentation: errors before warnings,
// then rule order, then ID for a stable tie-break. Detection itself returns
// conflicts in evaluation order and never sorts; this is the documented
// presentation policy for callers that want it.
func OrderForDisplay(conflicts []Conflict) {
	sort.SliceStable(conflicts, func(i, j int) bool {
		a, b := conflicts[i], conflicts[j]
		if a.Severity != b.Severity {
			return a.Severity == SeverityError
		}
		if ruleOrder[a.Type] != ruleOrder[b.Type] {
			return ruleOrder[a.Type] < ruleOrder[b.Type]
		}
		return a.ID < b.ID
	})
}

// Partition splits conflicts into errors and warnings, preserving order.
func Partition(conflicts []Conflict) (errors, warnings []Conflict) {
	for _, c := range conflicts {
		if c.Severity == SeverityError {
			errors = append(errors, c)
		} else {
			warnings = append(warnings, c)
		}
	}
	return errors, warnings
}

// Blocking reports whether any conflict is non-overridable; callers use this
// as the save-blocking verdict.
func Blocking(conflicts []Conflict) bool {
	for _, c := range conflicts {
		if !c.CanOverride {
			return true
		}
	}
	return false
}
