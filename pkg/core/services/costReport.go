package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/webdeveloper7191-del/time-trail-guide-sub014/pkg/core/costing"
	"github.com/webdeveloper7191-del/time-trail-guide-sub014/pkg/core/roster"
)

// CostReportStore is the store surface CostReport needs.
type CostReportStore interface {
	GetShifts(ctx context.Context, centreID, from, to string) ([]roster.Shift, error)
	GetShiftTemplates(ctx context.Context, centreID string) ([]roster.ShiftTemplate, error)
	GetStaff(ctx context.Context, centreID string) ([]roster.StaffMember, error)
	GetWeeklyBudget(ctx context.Context, centreID string) (float64, error)
}

// CostReportRequest scopes a cost report to one centre and week. A positive
// BudgetOverride replaces the stored centre budget; FallbackBudget is used
// when the centre has no budget configured.
type CostReportRequest struct {
	CentreID       string
	WeekOf         string
	BudgetOverride float64
	FallbackBudget float64
}

// WeeklyCostReport is a cost summary for one centre and week.
type WeeklyCostReport struct {
	ID       string              `json:"id"`
	CentreID string              `json:"centreId"`
	From     string              `json:"from"`
	To       string              `json:"to"`
	Budget   float64             `json:"budget"`
	Summary  costing.CostSummary `json:"summary"`
}

// CostReport computes the weekly cost summary for a centre against its
// configured budget. Recurring templates are expanded so a roster defined as
// recurrences is priced the same as hand-placed shifts.
func CostReport(ctx context.Context, store CostReportStore, logger *zap.Logger, req CostReportRequest) (*WeeklyCostReport, error) {
	from, to, err := roster.WeekBounds(req.WeekOf)
	if err != nil {
		return nil, err
	}

	logger.Info("Building cost report",
		zap.String("centre_id", req.CentreID),
		zap.String("from", from),
		zap.String("to", to))

	shifts, err := store.GetShifts(ctx, req.CentreID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to load shifts: %w", err)
	}

	templates, err := store.GetShiftTemplates(ctx, req.CentreID)
	if err != nil {
		return nil, fmt.Errorf("failed to load shift templates: %w", err)
	}
	expanded, err := roster.ExpandTemplates(templates, from, to)
	if err != nil {
		return nil, err
	}
	shifts = append(shifts, expanded...)

	staff, err := store.GetStaff(ctx, req.CentreID)
	if err != nil {
		return nil, fmt.Errorf("failed to load staff: %w", err)
	}

	budget := req.BudgetOverride
	if budget <= 0 {
		budget, err = store.GetWeeklyBudget(ctx, req.CentreID)
		if err != nil {
			return nil, fmt.Errorf("failed to load weekly budget: %w", err)
		}
	}
	if budget <= 0 {
		budget = req.FallbackBudget
	}

	summary, err := costing.Summarize(shifts, staff, budget)
	if err != nil {
		return nil, err
	}

	report := &WeeklyCostReport{
		ID:       uuid.New().String(),
		CentreID: req.CentreID,
		From:     from,
		To:       to,
		Budget:   budget,
		Summary:  summary,
	}

	logger.Info("Cost report complete",
		zap.String("report_id", report.ID),
		zap.Float64("total_cost", summary.TotalCost),
		zap.Float64("variance", summary.Variance),
		zap.Bool("over_budget", summary.IsOverBudget))

	return report, nil
}
