package conflicts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOvertimeRule_UnderLimit(t *testing.T) {
	rule := OvertimeRule{}
	member := testStaff("s1") // 38h/week

	// 3 existing 8h shifts + 8h candidate = 32h
	found, err := rule.Evaluate(testShift("new", "s1", "2024-03-07", "09:00", "17:00"), testEnv(member,
		testShift("a", "s1", "2024-03-04", "09:00", "17:00"),
		testShift("b", "s1", "2024-03-05", "09:00", "17:00"),
		testShift("c", "s1", "2024-03-06", "09:00", "17:00"),
	))
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestOvertimeRule_OverLimit(t *testing.T) {
	rule := OvertimeRule{}
	member := testStaff("s1") // 38h/week

	// 4 existing 8h shifts + 8h candidate = 40h, 2h over
	found, err := rule.Evaluate(testShift("new", "s1", "2024-03-08", "09:00", "17:00"), testEnv(member,
		testShift("a", "s1", "2024-03-04", "09:00", "17:00"),
		testShift("b", "s1", "2024-03-05", "09:00", "17:00"),
		testShift("c", "s1", "2024-03-06", "09:00", "17:00"),
		testShift("d", "s1", "2024-03-07", "09:00", "17:00"),
	))
	require.NoError(t, err)
	require.Len(t, found, 1)

	c := found[0]
	assert.Equal(t, TypeOvertimeExceeded, c.Type)
	assert.Equal(t, SeverityWarning, c.Severity)
	assert.True(t, c.CanOverride)
	assert.Contains(t, c.Message, "2.0h over")
}

func TestOvertimeRule_IgnoresShiftsOutsideCandidateWeek(t *testing.T) {
	rule := OvertimeRule{}
	member := testStaff("s1") // 38h/week

	// Mon-Thu 8h in the candidate's week plus an 8h shift the Saturday before.
	// In-week total with the 4h candidate is 36h; counting the out-of-week
	// shift would wrongly read 44h.
	found, err := rule.Evaluate(testShift("new", "s1", "2024-03-08", "09:00", "13:00"), testEnv(member,
		testShift("prev-sat", "s1", "2024-03-02", "09:00", "17:00"),
		testShift("a", "s1", "2024-03-04", "09:00", "17:00"),
		testShift("b", "s1", "2024-03-05", "09:00", "17:00"),
		testShift("c", "s1", "2024-03-06", "09:00", "17:00"),
		testShift("d", "s1", "2024-03-07", "09:00", "17:00"),
	))
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestOvertimeRule_WholeWeekCounts(t *testing.T) {
	rule := OvertimeRule{}
	member := testStaff("s1")
	member.MaxHoursPerWeek = 12

	// Monday candidate and a Sunday shift at the far end of the same week.
	found, err := rule.Evaluate(testShift("new", "s1", "2024-03-04", "09:00", "17:00"), testEnv(member,
		testShift("sun", "s1", "2024-03-10", "09:00", "17:00"),
	))
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Contains(t, found[0].Message, "16.0h this week")
}

func TestOvertimeRule_IgnoresSnapshotHours(t *testing.T) {
	rule := OvertimeRule{}
	member := testStaff("s1")
	// A stale snapshot claims the member is already at the cap; the rule must
	// recompute from the shift list and see only the candidate's 8 hours.
	member.CurrentWeeklyHours = 38

	found, err := rule.Evaluate(testShift("new", "s1", "2024-03-04", "09:00", "17:00"), testEnv(member))
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestOvertimeRule_BreaksReduceHours(t *testing.T) {
	rule := OvertimeRule{}
	member := testStaff("s1")
	member.MaxHoursPerWeek = 8

	// 09:00-17:30 with 60 minute break is 7.5h paid
	candidate := testShift("new", "s1", "2024-03-04", "09:00", "17:30")
	candidate.BreakMinutes = 60

	found, err := rule.Evaluate(candidate, testEnv(member))
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestOvertimeRule_NoCapConfigured(t *testing.T) {
	rule := OvertimeRule{}
	member := testStaff("s1")
	member.MaxHoursPerWeek = 0

	found, err := rule.Evaluate(testShift("new", "s1", "2024-03-04", "00:00", "23:00"), testEnv(member))
	require.NoError(t, err)
	assert.Empty(t, found)
}
