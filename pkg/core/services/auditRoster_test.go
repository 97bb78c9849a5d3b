package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/webdeveloper7191-del/time-trail-guide-sub014/pkg/core/conflicts"
	"github.com/webdeveloper7191-del/time-trail-guide-sub014/pkg/core/roster"
)

func TestAuditRoster_CleanWeek(t *testing.T) {
	store := &mockStore{
		shifts: []roster.Shift{
			serviceShift("a", "s1", "2024-03-04", "09:00", "17:00"),
			serviceShift("b", "s1", "2024-03-06", "09:00", "17:00"),
		},
		staff: []roster.StaffMember{serviceStaff("s1")},
	}

	report, err := AuditRoster(context.Background(), store, zap.NewNop(),
		AuditRequest{CentreID: "centre-1", WeekOf: "2024-03-06"})
	require.NoError(t, err)

	assert.NotEmpty(t, report.ID)
	assert.Equal(t, "centre-1", report.CentreID)
	assert.Equal(t, "2024-03-04", report.From)
	assert.Equal(t, "2024-03-10", report.To)
	assert.Equal(t, 2, report.ShiftCount)
	assert.Empty(t, report.Conflicts)
}

func TestAuditRoster_CountsByTypeAndSeverity(t *testing.T) {
	store := &mockStore{
		shifts: []roster.Shift{
			serviceShift("a", "s1", "2024-03-04", "09:00", "17:00"),
			serviceShift("b", "s1", "2024-03-04", "14:00", "20:00"),
			serviceShift("c", "s1", "2024-03-04", "19:00", "22:00"),
		},
		staff: []roster.StaffMember{serviceStaff("s1")},
	}

	report, err := AuditRoster(context.Background(), store, zap.NewNop(),
		AuditRequest{CentreID: "centre-1", WeekOf: "2024-03-04"})
	require.NoError(t, err)

	// a/b and b/c overlap; a/c do not.
	assert.Equal(t, 2, report.CountsByType[conflicts.TypeOverlap])
	assert.Equal(t, 2, report.CountsBySeverity[conflicts.SeverityError])
	assert.Equal(t, len(report.Conflicts),
		report.CountsBySeverity[conflicts.SeverityError]+report.CountsBySeverity[conflicts.SeverityWarning])
}

func TestAuditRoster_ExpandsStoredTemplates(t *testing.T) {
	store := &mockStore{
		templates: []roster.ShiftTemplate{{
			ID:        "tmpl-1",
			StaffID:   "s1",
			CentreID:  "centre-1",
			RoomID:    "room-1",
			StartTime: "09:00",
			EndTime:   "17:00",
			Status:    roster.ShiftScheduled,
			RRule:     "FREQ=WEEKLY;BYDAY=MO,TU,WE",
		}},
		staff: []roster.StaffMember{serviceStaff("s1")},
	}

	report, err := AuditRoster(context.Background(), store, zap.NewNop(),
		AuditRequest{CentreID: "centre-1", WeekOf: "2024-03-04"})
	require.NoError(t, err)
	assert.Equal(t, 3, report.ShiftCount)
}

func TestAuditRoster_ExtraTemplatesConflictWithStoredShifts(t *testing.T) {
	store := &mockStore{
		shifts: []roster.Shift{serviceShift("a", "s1", "2024-03-04", "09:00", "17:00")},
		staff:  []roster.StaffMember{serviceStaff("s1")},
	}

	report, err := AuditRoster(context.Background(), store, zap.NewNop(), AuditRequest{
		CentreID: "centre-1",
		WeekOf:   "2024-03-04",
		ExtraTemplates: []roster.ShiftTemplate{{
			ID:        "overlay-1",
			StaffID:   "s1",
			CentreID:  "centre-1",
			RoomID:    "room-1",
			StartTime: "14:00",
			EndTime:   "20:00",
			Status:    roster.ShiftScheduled,
			RRule:     "FREQ=WEEKLY;BYDAY=MO",
		}},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, report.ShiftCount)
	assert.Equal(t, 1, report.CountsByType[conflicts.TypeOverlap])
}

func TestAuditRoster_TemplateLoadFailure(t *testing.T) {
	store := &mockStore{templatesErr: errors.New("relation does not exist")}

	_, err := AuditRoster(context.Background(), store, zap.NewNop(),
		AuditRequest{CentreID: "centre-1", WeekOf: "2024-03-04"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load shift templates")
}

func TestAuditRoster_BadWeekOf(t *testing.T) {
	_, err := AuditRoster(context.Background(), &mockStore{}, zap.NewNop(),
		AuditRequest{CentreID: "centre-1", WeekOf: "next monday"})
	require.ErrorIs(t, err, roster.ErrInvalidDate)
}
