package leave

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Transition(t *testing.T) {
	tests := []struct {
		from    Status
		action  Action
		want    Status
		wantErr error
	}{
		{StatusPending, ActionApprove, StatusApproved, nil},
		{StatusPending, ActionReject, StatusRejected, nil},
		{StatusApproved, ActionApprove, StatusApproved, ErrInvalidTransition},
		{StatusApproved, ActionReject, StatusApproved, ErrInvalidTransition},
		{StatusRejected, ActionApprove, StatusRejected, ErrInvalidTransition},
		{StatusPending, Action("CANCEL"), StatusPending, ErrInvalidAction},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"_"+string(tt.action), func(t *testing.T) {
			got, err := tt.from.Transition(tt.action)
			assert.Equal(t, tt.want, got)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestParseAction(t *testing.T) {
	for _, in := range []string{"APPROVE", "approve", " Approve "} {
		got, err := ParseAction(in)
		require.NoError(t, err, in)
		assert.Equal(t, ActionApprove, got)
	}

	got, err := ParseAction("reject")
	require.NoError(t, err)
	assert.Equal(t, ActionReject, got)

	for _, in := range []string{"", "APPROVED", "cancel"} {
		_, err := ParseAction(in)
		assert.ErrorIs(t, err, ErrInvalidAction, in)
	}
}

func TestParseStatus(t *testing.T) {
	s, err := ParseStatus("REJECTED")
	require.NoError(t, err)
	assert.True(t, s.IsTerminal())
	assert.False(t, StatusPending.IsTerminal())

	_, err = ParseStatus("pending")
	assert.ErrorIs(t, err, ErrUnknownStatus)
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC), d)

	for _, in := range []string{"", "2023-02-29", "29-02-2024", "2024-02-29T10:00:00Z"} {
		_, err := ParseDate(in)
		assert.ErrorIs(t, err, ErrInvalidDate, in)
	}
}

func TestPeriod(t *testing.T) {
	day := func(s string) time.Time {
		d, err := ParseDate(s)
		require.NoError(t, err)
		return d
	}

	_, err := NewPeriod(day("2024-03-05"), day("2024-03-04"))
	assert.ErrorIs(t, err, ErrInvalidRange)

	single, err := NewPeriod(day("2024-03-05"), day("2024-03-05"))
	require.NoError(t, err)
	assert.Equal(t, 1, single.Days())

	week, err := NewPeriod(day("2024-03-01"), day("2024-03-07"))
	require.NoError(t, err)
	assert.Equal(t, 7, week.Days())

	leapFebruary, err := NewPeriod(day("2024-02-28"), day("2024-03-01"))
	require.NoError(t, err)
	assert.Equal(t, 3, leapFebruary.Days())

	// Longer than the span a time.Duration can hold.
	fourCenturies, err := NewPeriod(day("1900-01-01"), day("2300-01-01"))
	require.NoError(t, err)
	assert.Equal(t, 146098, fourCenturies.Days())

	widest, err := NewPeriod(day("0001-01-01"), day("9999-12-31"))
	require.NoError(t, err)
	assert.Equal(t, 3652059, widest.Days())

	assert.True(t, week.Overlaps(single))
	assert.True(t, single.Overlaps(week))

	after, _ := NewPeriod(day("2024-03-08"), day("2024-03-09"))
	assert.False(t, week.Overlaps(after))

	touching, _ := NewPeriod(day("2024-03-07"), day("2024-03-09"))
	assert.True(t, week.Overlaps(touching))
}

func TestLeaveBalance_CanConsume(t *testing.T) {
	b := LeaveBalance{Entitlement: 10, Used: 6}

	assert.Equal(t, 4.0, b.Remaining())
	assert.True(t, b.CanConsume(4))
	assert.False(t, b.CanConsume(5))
	assert.False(t, b.CanConsume(-1))
}
