package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/webdeveloper7191-del/time-trail-guide-sub014/pkg/core/conflicts"
	"github.com/webdeveloper7191-del/time-trail-guide-sub014/pkg/core/roster"
)

// AuditRosterStore is the store surface AuditRoster needs.
type AuditRosterStore interface {
	GetShifts(ctx context.Context, centreID, from, to string) ([]roster.Shift, error)
	GetShiftTemplates(ctx context.Context, centreID string) ([]roster.ShiftTemplate, error)
	GetStaff(ctx context.Context, centreID string) ([]roster.StaffMember, error)
	GetRooms(ctx context.Context, centreID string) ([]roster.Room, error)
}

// AuditRequest scopes a full-roster audit to one centre and week.
type AuditRequest struct {
	CentreID string

	// WeekOf is any day in the audited week; the audit covers that week's
	// Monday through Sunday.
	WeekOf string

	// ExtraTemplates are recurring shift patterns to expand on top of the
	// stored templates, typically supplied from configuration overlays.
	ExtraTemplates []roster.ShiftTemplate
}

// AuditReport is the outcome of a full-roster audit.
type AuditReport struct {
	ID       string `json:"id"`
	CentreID string `json:"centreId"`
	From     string `json:"from"`
	To       string `json:"to"`

	// Conflicts is the deduplicated conflict set, sorted for display.
	Conflicts []conflicts.Conflict `json:"conflicts"`

	// CountsByType and CountsBySeverity summarise Conflicts for badges.
	CountsByType     map[conflicts.ConflictType]int `json:"countsByType"`
	CountsBySeverity map[conflicts.Severity]int     `json:"countsBySeverity"`

	// ShiftCount is the number of shifts audited, including ones expanded
	// from recurring templates.
	ShiftCount int `json:"shiftCount"`
}

// AuditRoster evaluates every shift at a centre for one week, expanding
// recurring templates into concrete shifts first, and returns the deduplicated
// conflict set with summary counts.
func AuditRoster(ctx context.Context, store AuditRosterStore, logger *zap.Logger, req AuditRequest) (*AuditReport, error) {
	from, to, err := roster.WeekBounds(req.WeekOf)
	if err != nil {
		return nil, err
	}

	logger.Info("Auditing roster",
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
	templates = append(templates, req.ExtraTemplates...)

	expanded, err := roster.ExpandTemplates(templates, from, to)
	if err != nil {
		return nil, err
	}
	if len(expanded) > 0 {
		logger.Debug("Expanded recurring templates",
			zap.Int("templates", len(templates)),
			zap.Int("shifts", len(expanded)))
	}
	shifts = append(shifts, expanded...)

	staff, err := store.GetStaff(ctx, req.CentreID)
	if err != nil {
		return nil, fmt.Errorf("failed to load staff: %w", err)
	}
	rooms, err := store.GetRooms(ctx, req.CentreID)
	if err != nil {
		return nil, fmt.Errorf("failed to load rooms: %w", err)
	}

	found, err := conflicts.DetectAll(shifts, staff, rooms)
	if err != nil {
		return nil, err
	}
	conflicts.OrderForDisplay(found)

	report := &AuditReport{
		ID:               uuid.New().String(),
		CentreID:         req.CentreID,
		From:             from,
		To:               to,
		Conflicts:        found,
		CountsByType:     make(map[conflicts.ConflictType]int),
		CountsBySeverity: make(map[conflicts.Severity]int),
		ShiftCount:       len(shifts),
	}
	for _, c := range found {
		report.CountsByType[c.Type]++
		report.CountsBySeverity[c.Severity]++
	}

	logger.Info("Audit complete",
		zap.String("report_id", report.ID),
		zap.Int("shifts", report.ShiftCount),
		zap.Int("conflicts", len(found)))

	return report, nil
}
