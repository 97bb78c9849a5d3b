package conflicts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsecutiveDaysRule_SixthDayExceedsDefault(t *testing.T) {
	rule := ConsecutiveDaysRule{}
	member := testStaff("s1") // default limit 5

	// Mon-Fri already rostered; candidate on Saturday makes six in a row.
	found, err := rule.Evaluate(testShift("new", "s1", "2024-03-09", "09:00", "17:00"), testEnv(member,
		testShift("mon", "s1", "2024-03-04", "09:00", "17:00"),
		testShift("tue", "s1", "2024-03-05", "09:00", "17:00"),
		testShift("wed", "s1", "2024-03-06", "09:00", "17:00"),
		testShift("thu", "s1", "2024-03-07", "09:00", "17:00"),
		testShift("fri", "s1", "2024-03-08", "09:00", "17:00"),
	))
	require.NoError(t, err)
	require.Len(t, found, 1)

	c := found[0]
	assert.Equal(t, TypeMaxConsecutiveDays, c.Type)
	assert.Equal(t, SeverityWarning, c.Severity)
	assert.True(t, c.CanOverride)
	assert.Contains(t, c.Message, "6 consecutive days")
}

func TestConsecutiveDaysRule_GapResetsTheRun(t *testing.T) {
	rule := ConsecutiveDaysRule{}
	member := testStaff("s1")

	// Wednesday free, so the candidate on Saturday only makes a 3-day run.
	found, err := rule.Evaluate(testShift("new", "s1", "2024-03-09", "09:00", "17:00"), testEnv(member,
		testShift("mon", "s1", "2024-03-04", "09:00", "17:00"),
		testShift("tue", "s1", "2024-03-05", "09:00", "17:00"),
		testShift("thu", "s1", "2024-03-07", "09:00", "17:00"),
		testShift("fri", "s1", "2024-03-08", "09:00", "17:00"),
	))
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestConsecutiveDaysRule_CandidateInMiddleOfRun(t *testing.T) {
	rule := ConsecutiveDaysRule{}
	member := testStaff("s1")
	member.Preferences.MaxConsecutiveDays = 3

	// Two days before and two days after the candidate: run of five.
	found, err := rule.Evaluate(testShift("new", "s1", "2024-03-06", "09:00", "17:00"), testEnv(member,
		testShift("a", "s1", "2024-03-04", "09:00", "17:00"),
		testShift("b", "s1", "2024-03-05", "09:00", "17:00"),
		testShift("c", "s1", "2024-03-07", "09:00", "17:00"),
		testShift("d", "s1", "2024-03-08", "09:00", "17:00"),
	))
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Contains(t, found[0].Message, "5 consecutive days")
}

func TestConsecutiveDaysRule_AtLimitIsFine(t *testing.T) {
	rule := ConsecutiveDaysRule{}
	member := testStaff("s1")

	// Mon-Thu rostered, candidate on Friday: exactly five.
	found, err := rule.Evaluate(testShift("new", "s1", "2024-03-08", "09:00", "17:00"), testEnv(member,
		testShift("mon", "s1", "2024-03-04", "09:00", "17:00"),
		testShift("tue", "s1", "2024-03-05", "09:00", "17:00"),
		testShift("wed", "s1", "2024-03-06", "09:00", "17:00"),
		testShift("thu", "s1", "2024-03-07", "09:00", "17:00"),
	))
	require.NoError(t, err)
	assert.Empty(t, found)
}
