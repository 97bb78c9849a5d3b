package services

import (
	"context"

	"github.com/webdeveloper7191-del/time-trail-guide-sub014/pkg/core/roster"
)

// mockStore satisfies every service store interface. Fields are returned
// verbatim; set an err field to simulate a failing load.
type mockStore struct {
	shifts    []roster.Shift
	templates []roster.ShiftTemplate
	staff     []roster.StaffMember
	rooms     []roster.Room
	budget    float64

	shiftsErr    error
	templatesErr error
	staffErr     error
	roomsErr     error
	budgetErr    error

	// shiftsFrom/shiftsTo record the range of the last GetShifts call.
	shiftsFrom string
	shiftsTo   string
}

func (m *mockStore) GetShifts(_ context.Context, _ string, from, to string) ([]roster.Shift, error) {
	m.shiftsFrom, m.shiftsTo = from, to
	return m.shifts, m.shiftsErr
}

func (m *mockStore) GetShiftTemplates(_ context.Context, _ string) ([]roster.ShiftTemplate, error) {
	return m.templates, m.templatesErr
}

func (m *mockStore) GetStaff(_ context.Context, _ string) ([]roster.StaffMember, error) {
	return m.staff, m.staffErr
}

func (m *mockStore) GetRooms(_ context.Context, _ string) ([]roster.Room, error) {
	return m.rooms, m.roomsErr
}

func (m *mockStore) GetWeeklyBudget(_ context.Context, _ string) (float64, error) {
	return m.budget, m.budgetErr
}

func serviceShift(id, staffID, date, start, end string) roster.Shift {
	return roster.Shift{
		ID:        id,
		StaffID:   staffID,
		CentreID:  "centre-1",
		RoomID:    "room-1",
		Date:      date,
		StartTime: start,
		EndTime:   end,
		Status:    roster.ShiftScheduled,
	}
}

func serviceStaff(id string) roster.StaffMember {
	return roster.StaffMember{
		ID:              id,
		Name:            "Staff " + id,
		HourlyRate:      30,
		OvertimeRate:    45,
		MaxHoursPerWeek: 38,
	}
}
