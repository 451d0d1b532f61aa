package leave

import (
	"context"
	"errors"
	"testing"

	"github.com/Anuragdrocks/Mini-Leave-Management-System-Anurag-Dubey/internal/domain/leave"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRequestRepo struct {
	leave.LeaveRequestRepository
	listActiveFn func(ctx context.Context, employeeID string) ([]leave.LeaveRequest, error)
}

func (f *fakeRequestRepo) ListActiveByEmployee(ctx context.Context, employeeID string) ([]leave.LeaveRequest, error) {
	return f.listActiveFn(ctx, employeeID)
}

func mustPeriod(t *testing.T, start, end string) leave.Period {
	t.Helper()
	s, err := leave.ParseDate(start)
	require.NoError(t, err)
	e, err := leave.ParseDate(end)
	require.NoError(t, err)
	p, err := leave.NewPeriod(s, e)
	require.NoError(t, err)
	return p
}

func requestFor(t *testing.T, start, end string, status leave.Status) leave.LeaveRequest {
	p := mustPeriod(t, start, end)
	return leave.LeaveRequest{StartDate: p.Start, EndDate: p.End, Days: float64(p.Days()), Status: status}
}

func TestOverlapValidator_Conflicts(t *testing.T) {
	existing := []leave.LeaveRequest{
		requestFor(t, "2024-03-01", "2024-03-05", leave.StatusApproved),
		requestFor(t, "2024-04-10", "2024-04-10", leave.StatusPending),
		requestFor(t, "2024-05-01", "2024-05-31", leave.StatusRejected),
	}
	repo := &fakeRequestRepo{
		listActiveFn: func(ctx context.Context, employeeID string) ([]leave.LeaveRequest, error) {
			return existing, nil
		},
	}
	validator := NewOverlapValidator(repo)

	tests := []struct {
		name       string
		start, end string
		want       bool
	}{
		{"shares last day", "2024-03-05", "2024-03-06", true},
		{"shares first day", "2024-02-25", "2024-03-01", true},
		{"contained", "2024-03-02", "2024-03-03", true},
		{"covers", "2024-02-01", "2024-03-31", true},
		{"day after", "2024-03-06", "2024-03-06", false},
		{"day before", "2024-02-29", "2024-02-29", false},
		{"same single day", "2024-04-10", "2024-04-10", true},
		{"ends on single day", "2024-04-08", "2024-04-10", true},
		{"inside rejected range", "2024-05-10", "2024-05-12", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := validator.Conflicts(context.Background(), "emp", mustPeriod(t, tt.start, tt.end))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOverlapValidator_RepositoryError(t *testing.T) {
	storeErr := errors.New("connection reset")
	repo := &fakeRequestRepo{
		listActiveFn: func(ctx context.Context, employeeID string) ([]leave.LeaveRequest, error) {
			return nil, storeErr
		},
	}

	_, err := NewOverlapValidator(repo).Conflicts(context.Background(), "emp", mustPeriod(t, "2024-01-01", "2024-01-02"))
	assert.ErrorIs(t, err, storeErr)
}
