package postgres

import (
	"context"
	"fmt"

	"github.com/webdeveloper7191-del/time-trail-guide-sub014/pkg/core/roster"
)

// GetRooms returns the rooms of a centre.
func (db *DB) GetRooms(ctx context.Context, centreID string) ([]roster.Room, error) {
	rows, err := db.pool.Query(ctx, `
		SELECT id, name
		FROM room
		WHERE centre_id = $1
		ORDER BY id
	`, centreID)
	if err != nil {
		return nil, fmt.Errorf("failed to query rooms: %w", err)
	}
	defer rows.Close()

	var rooms []roster.Room
	for rows.Next() {
		var r roster.Room
		if err := rows.Scan(&r.ID, &r.Name); err != nil {
			return nil, fmt.Errorf("failed to scan room: %w", err)
		}
		rooms = append(rooms, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rooms: %w", err)
	}

	return rooms, nil
}

// GetWeeklyBudget returns the centre's configured weekly budget, or 0 when the
// centre has none.
func (db *DB) GetWeeklyBudget(ctx context.Context, centreID string) (float64, error) {
	var budget float64
	err := db.pool.QueryRow(ctx, `
		SELECT COALESCE(weekly_budget, 0)
		FROM centre
		WHERE id = $1
	`, centreID).Scan(&budget)
	if err != nil {
		return 0, fmt.Errorf("failed to query weekly budget for centre %s: %w", centreID, err)
	}
	return budget, nil
}
