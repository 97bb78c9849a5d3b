package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/webdeveloper7191-del/time-trail-guide-sub014/pkg/core/roster"
)

// GetStaff returns every staff member at a centre with availability, time-off
// and preferences attached.
func (db *DB) GetStaff(ctx context.Context, centreID string) ([]roster.StaffMember, error) {
	rows, err := db.pool.Query(ctx, `
		SELECT id, name, hourly_rate, overtime_rate, max_hours_per_week,
		       current_weekly_hours, agency, min_rest_hours, max_consecutive_days, avoid_rooms
		FROM staff_member
		WHERE centre_id = $1
		ORDER BY id
	`, centreID)
	if err != nil {
		return nil, fmt.Errorf("failed to query staff: %w", err)
	}
	defer rows.Close()

	var staff []roster.StaffMember
	index := make(map[string]int)
	for rows.Next() {
		var m roster.StaffMember
		if err := rows.Scan(&m.ID, &m.Name, &m.HourlyRate, &m.OvertimeRate, &m.MaxHoursPerWeek,
			&m.CurrentWeeklyHours, &m.Agency, &m.Preferences.MinRestHoursBetweenShifts,
			&m.Preferences.MaxConsecutiveDays, &m.Preferences.AvoidRooms); err != nil {
			return nil, fmt.Errorf("failed to scan staff member: %w", err)
		}
		index[m.ID] = len(staff)
		staff = append(staff, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating staff: %w", err)
	}

	if err := db.attachAvailability(ctx, centreID, staff, index); err != nil {
		return nil, err
	}
	if err := db.attachTimeOff(ctx, centreID, staff, index); err != nil {
		return nil, err
	}

	return staff, nil
}

func (db *DB) attachAvailability(ctx context.Context, centreID string, staff []roster.StaffMember, index map[string]int) error {
	rows, err := db.pool.Query(ctx, `
		SELECT a.staff_id, a.day_of_week, a.available, COALESCE(a.start_time, ''), COALESCE(a.end_time, '')
		FROM staff_availability a
		JOIN staff_member m ON m.id = a.staff_id
		WHERE m.centre_id = $1
	`, centreID)
	if err != nil {
		return fmt.Errorf("failed to query availability: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var staffID string
		var dow int
		var window roster.Availability
		if err := rows.Scan(&staffID, &dow, &window.Available, &window.StartTime, &window.EndTime); err != nil {
			return fmt.Errorf("failed to scan availability: %w", err)
		}
		i, ok := index[staffID]
		if !ok {
			continue
		}
		if staff[i].Availability == nil {
			staff[i].Availability = make(map[time.Weekday]roster.Availability)
		}
		staff[i].Availability[time.Weekday(dow)] = window
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("error iterating availability: %w", err)
	}
	return nil
}

func (db *DB) attachTimeOff(ctx context.Context, centreID string, staff []roster.StaffMember, index map[string]int) error {
	rows, err := db.pool.Query(ctx, `
		SELECT t.staff_id, to_char(t.start_date, 'YYYY-MM-DD'), to_char(t.end_date, 'YYYY-MM-DD'), t.status, t.type
		FROM time_off t
		JOIN staff_member m ON m.id = t.staff_id
		WHERE m.centre_id = $1
		ORDER BY t.start_date
	`, centreID)
	if err != nil {
		return fmt.Errorf("failed to query time off: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var staffID string
		var leave roster.TimeOff
		var status string
		if err := rows.Scan(&staffID, &leave.StartDate, &leave.EndDate, &status, &leave.Type); err != nil {
			return fmt.Errorf("failed to scan time off: %w", err)
		}
		leave.Status = roster.TimeOffStatus(status)
		if i, ok := index[staffID]; ok {
			staff[i].TimeOff = append(staff[i].TimeOff, leave)
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("error iterating time off: %w", err)
	}
	return nil
}
