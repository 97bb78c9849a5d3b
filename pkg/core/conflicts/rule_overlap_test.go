package conflicts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webdeveloper7191-del/time-trail-guide-sub014/pkg/core/timeutil"
)

func TestOverlapRule_DoubleBooking(t *testing.T) {
	rule := OverlapRule{}
	member := testStaff("s1")
	candidate := testShift("new", "s1", "2024-03-04", "09:00", "17:00")
	existing := testShift("old", "s1", "2024-03-04", "14:00", "20:00")

	found, err := rule.Evaluate(candidate, testEnv(member, existing))
	require.NoError(t, err)
	require.Len(t, found, 1)

	c := found[0]
	assert.Equal(t, TypeOverlap, c.Type)
	assert.Equal(t, SeverityError, c.Severity)
	assert.False(t, c.CanOverride)
	assert.Equal(t, "new", c.ShiftID)
	assert.Equal(t, "s1", c.StaffID)
}

func TestOverlapRule_OneConflictPerOverlappingShift(t *testing.T) {
	rule := OverlapRule{}
	member := testStaff("s1")
	candidate := testShift("new", "s1", "2024-03-04", "08:00", "18:00")

	found, err := rule.Evaluate(candidate, testEnv(member,
		testShift("a", "s1", "2024-03-04", "09:00", "12:00"),
		testShift("b", "s1", "2024-03-04", "13:00", "17:00"),
	))
	require.NoError(t, err)
	assert.Len(t, found, 2)
}

func TestOverlapRule_TouchingShiftsDoNotOverlap(t *testing.T) {
	rule := OverlapRule{}
	member := testStaff("s1")
	candidate := testShift("new", "s1", "2024-03-04", "09:00", "12:00")
	backToBack := testShift("old", "s1", "2024-03-04", "12:00", "17:00")

	found, err := rule.Evaluate(candidate, testEnv(member, backToBack))
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestOverlapRule_IgnoresOtherStaffAndDates(t *testing.T) {
	rule := OverlapRule{}
	member := testStaff("s1")
	candidate := testShift("new", "s1", "2024-03-04", "09:00", "17:00")

	found, err := rule.Evaluate(candidate, testEnv(member,
		testShift("other-staff", "s2", "2024-03-04", "09:00", "17:00"),
		testShift("other-day", "s1", "2024-03-05", "09:00", "17:00"),
	))
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestOverlapRule_SameIDFromEitherPerspective(t *testing.T) {
	rule := OverlapRule{}
	member := testStaff("s1")
	a := testShift("a", "s1", "2024-03-04", "09:00", "17:00")
	b := testShift("b", "s1", "2024-03-04", "14:00", "20:00")

	fromA, err := rule.Evaluate(a, testEnv(member, b))
	require.NoError(t, err)
	fromB, err := rule.Evaluate(b, testEnv(member, a))
	require.NoError(t, err)

	require.Len(t, fromA, 1)
	require.Len(t, fromB, 1)
	assert.Equal(t, fromA[0].ID, fromB[0].ID)
}

func TestOverlapRule_MalformedTimeFailsEvaluation(t *testing.T) {
	rule := OverlapRule{}
	member := testStaff("s1")
	candidate := testShift("new", "s1", "2024-03-04", "9am", "17:00")

	_, err := rule.Evaluate(candidate, testEnv(member))
	assert.ErrorIs(t, err, timeutil.ErrInvalidTimeFormat)
}
