package conflicts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRestRule_ShortGapAfterPreviousDay(t *testing.T) {
	rule := RestRule{}
	member := testStaff("s1") // default 10h minimum rest

	// Previous shift ends 22:00, candidate starts 06:00: 8h rest
	found, err := rule.Evaluate(testShift("new", "s1", "2024-03-05", "06:00", "14:00"), testEnv(member,
		testShift("prev", "s1", "2024-03-04", "14:00", "22:00"),
	))
	require.NoError(t, err)
	require.Len(t, found, 1)

	c := found[0]
	assert.Equal(t, TypeInsufficientRest, c.Type)
	assert.Equal(t, SeverityWarning, c.Severity)
	assert.True(t, c.CanOverride)
	assert.Contains(t, c.Message, "8.0h rest")
}

func TestRestRule_BothAdjacentDays(t *testing.T) {
	rule := RestRule{}
	member := testStaff("s1")

	// Squeezed between a late finish the day before and an early start the
	// day after: two independent conflicts.
	found, err := rule.Evaluate(testShift("new", "s1", "2024-03-05", "06:00", "23:00"), testEnv(member,
		testShift("prev", "s1", "2024-03-04", "14:00", "22:00"),
		testShift("next", "s1", "2024-03-06", "05:00", "13:00"),
	))
	require.NoError(t, err)
	assert.Len(t, found, 2)
}

func TestRestRule_EnoughRest(t *testing.T) {
	rule := RestRule{}
	member := testStaff("s1")

	// Ends 17:00, next day starts 08:00: 15h rest
	found, err := rule.Evaluate(testShift("new", "s1", "2024-03-05", "08:00", "16:00"), testEnv(member,
		testShift("prev", "s1", "2024-03-04", "09:00", "17:00"),
	))
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestRestRule_UsesNearestShift(t *testing.T) {
	rule := RestRule{}
	member := testStaff("s1")

	// Two shifts the day before; only the later one matters for the gap.
	found, err := rule.Evaluate(testShift("new", "s1", "2024-03-05", "06:00", "14:00"), testEnv(member,
		testShift("early", "s1", "2024-03-04", "06:00", "10:00"),
		testShift("late", "s1", "2024-03-04", "14:00", "22:00"),
	))
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Contains(t, found[0].Details, "late")
}

func TestRestRule_ConfiguredMinimum(t *testing.T) {
	rule := RestRule{}
	member := testStaff("s1")
	member.Preferences.MinRestHoursBetweenShifts = 6

	// 8h rest is fine with a 6h minimum
	found, err := rule.Evaluate(testShift("new", "s1", "2024-03-05", "06:00", "14:00"), testEnv(member,
		testShift("prev", "s1", "2024-03-04", "14:00", "22:00"),
	))
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestRestRule_SameIDFromEitherPerspective(t *testing.T) {
	rule := RestRule{}
	member := testStaff("s1")
	prev := testShift("prev", "s1", "2024-03-04", "14:00", "22:00")
	next := testShift("next", "s1", "2024-03-05", "06:00", "14:00")

	fromNext, err := rule.Evaluate(next, testEnv(member, prev))
	require.NoError(t, err)
	fromPrev, err := rule.Evaluate(prev, testEnv(member, next))
	require.NoError(t, err)

	require.Len(t, fromNext, 1)
	require.Len(t, fromPrev, 1)
	assert.Equal(t, fromNext[0].ID, fromPrev[0].ID)
}
