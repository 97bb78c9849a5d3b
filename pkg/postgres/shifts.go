package postgres

import (
	"context"
	"fmt"

	"github.com/webdeveloper7191-del/time-trail-guide-sub014/pkg/core/roster"
)

// GetShifts returns every shift at a centre with a date in [from, to].
func (db *DB) GetShifts(ctx context.Context, centreID, from, to string) ([]roster.Shift, error) {
	rows, err := db.pool.Query(ctx, `
		SELECT id, staff_id, centre_id, room_id, to_char(shift_date, 'YYYY-MM-DD'),
		       start_time, end_time, break_minutes, status
		FROM shift
		WHERE centre_id = $1 AND shift_date BETWEEN $2 AND $3
		ORDER BY shift_date, start_time, id
	`, centreID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query shifts: %w", err)
	}
	defer rows.Close()

	var shifts []roster.Shift
	for rows.Next() {
		var s roster.Shift
		var status string
		if err := rows.Scan(&s.ID, &s.StaffID, &s.CentreID, &s.RoomID, &s.Date,
			&s.StartTime, &s.EndTime, &s.BreakMinutes, &status); err != nil {
			return nil, fmt.Errorf("failed to scan shift: %w", err)
		}
		s.Status = roster.ShiftStatus(status)
		shifts = append(shifts, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating shifts: %w", err)
	}

	return shifts, nil
}

// GetShiftTemplates returns the centre's recurring shift templates.
func (db *DB) GetShiftTemplates(ctx context.Context, centreID string) ([]roster.ShiftTemplate, error) {
	rows, err := db.pool.Query(ctx, `
		SELECT id, staff_id, centre_id, room_id, start_time, end_time, break_minutes, status, rrule
		FROM shift_template
		WHERE centre_id = $1
		ORDER BY id
	`, centreID)
	if err != nil {
		return nil, fmt.Errorf("failed to query shift templates: %w", err)
	}
	defer rows.Close()

	var templates []roster.ShiftTemplate
	for rows.Next() {
		var t roster.ShiftTemplate
		var status string
		if err := rows.Scan(&t.ID, &t.StaffID, &t.CentreID, &t.RoomID,
			&t.StartTime, &t.EndTime, &t.BreakMinutes, &status, &t.RRule); err != nil {
			return nil, fmt.Errorf("failed to scan shift template: %w", err)
		}
		t.Status = roster.ShiftStatus(status)
		templates = append(templates, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating shift templates: %w", err)
	}

	return templates, nil
}
