// Package engine is the public query surface of the roster compliance and
// cost engine: the three functions external callers (UI, exports, a future
// solver integration) invoke. It adds nothing over the underlying packages;
// it exists so consumers depend on one import.
package engine

import (
	"github.com/webdeveloper7191-del/time-trail-guide-sub014/pkg/core/conflicts"
	"github.com/webdeveloper7191-del/time-trail-guide-sub014/pkg/core/costing"
	"github.com/webdeveloper7191-del/time-trail-guide-sub014/pkg/core/roster"
)

// DetectConflicts evaluates one candidate shift against the rest of the
// roster and returns every rule violation, in rule evaluation order.
func DetectConflicts(candidate roster.Shift, otherShifts []roster.Shift, staff []roster.StaffMember, rooms []roster.Room) ([]conflicts.Conflict, error) {
	return conflicts.Detect(candidate, otherShifts, staff, rooms)
}

// DetectAllConflicts audits a whole roster, deduplicating pairwise conflicts
// seen from both sides.
func DetectAllConflicts(shifts []roster.Shift, staff []roster.StaffMember, rooms []roster.Room) ([]conflicts.Conflict, error) {
	return conflicts.DetectAll(shifts, staff, rooms)
}

// SummarizeCost rolls a shift collection up into cost bands and budget
// variance.
func SummarizeCost(shifts []roster.Shift, staff []roster.StaffMember, weeklyBudget float64) (costing.CostSummary, error) {
	return costing.Summarize(shifts, staff, weeklyBudget)
}
