// Package db defines the narrow store interfaces the services consume. The
// engine itself never touches a store; services load snapshots through these
// interfaces and hand them to the pure evaluation functions.
package db

import (
	"context"

	"github.com/webdeveloper7191-del/time-trail-guide-sub014/pkg/core/roster"
)

// RosterStore provides shift data for one centre.
type RosterStore interface {
	// GetShifts returns every shift at a centre with a date in [from, to],
	// both inclusive DateLayout days.
	GetShifts(ctx context.Context, centreID, from, to string) ([]roster.Shift, error)

	// GetShiftTemplates returns the centre's recurring shift templates.
	GetShiftTemplates(ctx context.Context, centreID string) ([]roster.ShiftTemplate, error)
}

// StaffDirectory provides staff records with availability, leave and
// preferences attached.
type StaffDirectory interface {
	GetStaff(ctx context.Context, centreID string) ([]roster.StaffMember, error)
}

// RoomDirectory provides the rooms of a centre.
type RoomDirectory interface {
	GetRooms(ctx context.Context, centreID string) ([]roster.Room, error)
}

// BudgetStore provides the configured weekly budget for a centre. A centre
// with no budget row returns (0, nil); zero means "not configured" and the
// cost calculator guards it.
type BudgetStore interface {
	GetWeeklyBudget(ctx context.Context, centreID string) (float64, error)
}

// Store is the full surface the CLI and HTTP layers wire up.
type Store interface {
	RosterStore
	StaffDirectory
	RoomDirectory
	BudgetStore
}
