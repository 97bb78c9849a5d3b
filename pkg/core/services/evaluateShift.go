package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/webdeveloper7191-del/time-trail-guide-sub014/pkg/core/conflicts"
	"github.com/webdeveloper7191-del/time-trail-guide-sub014/pkg/core/roster"
)

// EvaluateShiftStore is the store surface EvaluateShift needs.
type EvaluateShiftStore interface {
	GetShifts(ctx context.Context, centreID, from, to string) ([]roster.Shift, error)
	GetStaff(ctx context.Context, centreID string) ([]roster.StaffMember, error)
	GetRooms(ctx context.Context, centreID string) ([]roster.Room, error)
}

// EvaluationResult is the verdict on one candidate shift.
type EvaluationResult struct {
	// Conflicts holds every violation, sorted for display (errors first).
	Conflicts []conflicts.Conflict `json:"conflicts"`

	// Errors and Warnings are the severity partition of Conflicts.
	Errors   []conflicts.Conflict `json:"errors"`
	Warnings []conflicts.Conflict `json:"warnings"`

	// Blocking is true when any conflict is non-overridable; callers should
	// refuse to save the shift.
	Blocking bool `json:"blocking"`
}

// EvaluateShift loads the roster week around the candidate and runs conflict
// detection. The candidate itself may or may not already be stored; detection
// excludes it by ID either way.
func EvaluateShift(ctx context.Context, store EvaluateShiftStore, logger *zap.Logger, candidate roster.Shift) (*EvaluationResult, error) {
	logger.Info("Evaluating candidate shift",
		zap.String("shift_id", candidate.ID),
		zap.String("staff_id", candidate.StaffID),
		zap.String("date", candidate.Date))

	from, to, err := roster.WeekBounds(candidate.Date)
	if err != nil {
		return nil, err
	}

	staff, err := store.GetStaff(ctx, candidate.CentreID)
	if err != nil {
		return nil, fmt.Errorf("failed to load staff: %w", err)
	}

	// The rest rule needs the adjacent day on each side of the week; the
	// consecutive-days walk needs up to the staff member's run limit. Load the
	// wider of the two; the overtime rule scopes itself to the week regardless.
	pad := 1
	if member, ok := roster.FindStaff(staff, candidate.StaffID); ok {
		if limit := member.MaxConsecutive(); limit > pad {
			pad = limit
		}
	}
	loadFrom, err := addDaysStr(from, -pad)
	if err != nil {
		return nil, err
	}
	loadTo, err := addDaysStr(to, pad)
	if err != nil {
		return nil, err
	}

	shifts, err := store.GetShifts(ctx, candidate.CentreID, loadFrom, loadTo)
	if err != nil {
		return nil, fmt.Errorf("failed to load shifts: %w", err)
	}
	rooms, err := store.GetRooms(ctx, candidate.CentreID)
	if err != nil {
		return nil, fmt.Errorf("failed to load rooms: %w", err)
	}

	found, err := conflicts.Detect(candidate, shifts, staff, rooms)
	if err != nil {
		return nil, err
	}

	conflicts.OrderForDisplay(found)
	errs, warns := conflicts.Partition(found)

	result := &EvaluationResult{
		Conflicts: found,
		Errors:    errs,
		Warnings:  warns,
		Blocking:  conflicts.Blocking(found),
	}

	logger.Info("Evaluation complete",
		zap.String("shift_id", candidate.ID),
		zap.Int("errors", len(errs)),
		zap.Int("warnings", len(warns)),
		zap.Bool("blocking", result.Blocking))

	return result, nil
}
