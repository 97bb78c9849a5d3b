// Package costing rolls a shift collection up into regular/overtime/agency
// cost bands and budget variance. Summaries are derived values, recomputed on
// demand; nothing here caches or mutates state.
package costing

import (
	"fmt"
	"math"

	"github.com/webdeveloper7191-del/time-trail-guide-sub014/pkg/core/conflicts"
	"github.com/webdeveloper7191-del/time-trail-guide-sub014/pkg/core/roster"
	"github.com/webdeveloper7191-del/time-trail-guide-sub014/pkg/core/timeutil"
)

// PercentUsedCap bounds PercentUsed. Variance is deliberately uncapped, so a
// heavily over-budget roster reads as "150% used" but still shows its true
// variance.
const PercentUsedCap = 150

// NearBudgetThreshold is the PercentUsed floor for the near-budget flag.
const NearBudgetThreshold = 90

// CostSummary is the aggregate cost of a shift collection, typically all
// shifts at one centre for one week.
//
// AgencyCost is reported alongside TotalCost, not folded into it: agency
// billing is tracked separately from the payroll budget, and Variance follows
// TotalCost only.
type CostSummary struct {
	RegularCost  float64 `json:"regularCost"`
	OvertimeCost float64 `json:"overtimeCost"`
	TotalCost    float64 `json:"totalCost"`
	AgencyCost   float64 `json:"agencyCost"`
	Variance     float64 `json:"variance"`
	PercentUsed  float64 `json:"percentUsed"`
	TotalHours   float64 `json:"totalHours"`
	StaffCount   int     `json:"staffCount"`
	IsOverBudget bool    `json:"isOverBudget"`
	IsNearBudget bool    `json:"isNearBudget"`
}

// Summarize computes the cost summary for a shift collection against a weekly
// budget.
//
// Hours are grouped per staff member and split at MaxHoursPerWeek into a
// regular band at HourlyRate and an overtime band at OvertimeRate. Agency
// staff are costed in a separate pass at full HourlyRate with no band split,
// reflecting the full billed amount. A zero or negative budget yields
// PercentUsed 0 rather than dividing by zero.
//
// Currency figures are rounded to whole units at the point of return;
// accumulation is unrounded. A shift with a negative paid duration fails the
// whole summary with a data-quality error naming the shift.
func Summarize(shifts []roster.Shift, staff []roster.StaffMember, weeklyBudget float64) (CostSummary, error) {
	hoursByStaff := make(map[string]float64)
	var order []string

	for _, s := range shifts {
		hours, err := effectiveHours(s)
		if err != nil {
			return CostSummary{}, err
		}
		if _, seen := hoursByStaff[s.StaffID]; !seen {
			order = append(order, s.StaffID)
		}
		hoursByStaff[s.StaffID] += hours
	}

	var summary CostSummary
	for _, staffIDKey := range order {
		member, ok := roster.FindStaff(staff, staffIDKey)
		if !ok {
			return CostSummary{}, fmt.Errorf("%w: %q in cost summary input", conflicts.ErrUnknownStaff, staffIDKey)
		}

		hours := hoursByStaff[staffIDKey]
		summary.TotalHours += hours
		summary.StaffCount++

		if member.Agency {
			continue
		}

		regular := hours
		overtime := 0.0
		if member.MaxHoursPerWeek > 0 && hours > member.MaxHoursPerWeek {
			regular = member.MaxHoursPerWeek
			overtime = hours - member.MaxHoursPerWeek
		}
		summary.RegularCost += regular * member.HourlyRate
		summary.OvertimeCost += overtime * member.OvertimeRate
	}

	// Agency billing is a separate full pass over the shifts at the flat
	// hourly rate; it never splits into bands.
	for _, s := range shifts {
		member, _ := roster.FindStaff(staff, s.StaffID)
		if !member.Agency {
			continue
		}
		hours, err := effectiveHours(s)
		if err != nil {
			return CostSummary{}, err
		}
		summary.AgencyCost += hours * member.HourlyRate
	}

	summary.TotalCost = summary.RegularCost + summary.OvertimeCost
	summary.Variance = summary.TotalCost - weeklyBudget

	if weeklyBudget > 0 {
		summary.PercentUsed = math.Min(PercentUsedCap, summary.TotalCost/weeklyBudget*100)
	}

	summary.IsOverBudget = summary.TotalCost > weeklyBudget
	summary.IsNearBudget = summary.PercentUsed >= NearBudgetThreshold && summary.PercentUsed < 100

	summary.RegularCost = math.Round(summary.RegularCost)
	summary.OvertimeCost = math.Round(summary.OvertimeCost)
	summary.TotalCost = math.Round(summary.TotalCost)
	summary.AgencyCost = math.Round(summary.AgencyCost)
	summary.Variance = math.Round(summary.Variance)

	return summary, nil
}

func effectiveHours(s roster.Shift) (float64, error) {
	start, err := timeutil.ToMinutes(s.StartTime)
	if err != nil {
		return 0, fmt.Errorf("shift %s start: %w", s.ID, err)
	}
	end, err := timeutil.ToMinutes(s.EndTime)
	if err != nil {
		return 0, fmt.Errorf("shift %s end: %w", s.ID, err)
	}
	hours := timeutil.EffectiveHours(start, end, s.BreakMinutes)
	if hours < 0 {
		return 0, fmt.Errorf("%w: shift %s (%s-%s)", conflicts.ErrNegativeDuration, s.ID, s.StartTime, s.EndTime)
	}
	return hours, nil
}
