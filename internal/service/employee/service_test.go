package employee

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/Anuragdrocks/Mini-Leave-Management-System-Anurag-Dubey/internal/domain/employee"
	"github.com/Anuragdrocks/Mini-Leave-Management-System-Anurag-Dubey/internal/domain/leave"
	"github.com/Anuragdrocks/Mini-Leave-Management-System-Anurag-Dubey/internal/pkg/validator"
	"github.com/Anuragdrocks/Mini-Leave-Management-System-Anurag-Dubey/internal/repository/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (employee.EmployeeService, leave.LeaveBalanceRepository) {
	t.Helper()
	store, err := sqlite.Open(context.Background(), filepath.Join(t.TempDir(), "lms.db"), 5*time.Second)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	balances := sqlite.NewLeaveBalanceRepository(store)
	return NewEmployeeService(store, sqlite.NewEmployeeRepository(store), balances, 30), balances
}

func TestEmployeeService_Create_Success(t *testing.T) {
	svc, balances := newTestService(t)
	ctx := context.Background()

	resp, err := svc.Create(ctx, employee.CreateEmployeeRequest{
		Name:        "  Alice ",
		Email:       "Alice@Example.com",
		Department:  "Engineering",
		JoiningDate: "2024-01-01",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "Alice", resp.Name)
	assert.Equal(t, "alice@example.com", resp.Email)
	assert.Equal(t, "2024-01-01", resp.JoiningDate)
	assert.Equal(t, 2024, resp.Year)
	assert.Equal(t, 30.0, resp.Entitlement)

	balance, err := balances.GetByEmployeeAndYear(ctx, resp.ID, 2024)
	require.NoError(t, err)
	assert.Equal(t, 30.0, balance.Entitlement)
	assert.Equal(t, 0.0, balance.Used)

	// Only the joining year gets a row.
	_, err = balances.GetByEmployeeAndYear(ctx, resp.ID, 2025)
	assert.ErrorIs(t, err, leave.ErrBalanceNotFound)

	found, err := svc.GetByID(ctx, resp.ID)
	require.NoError(t, err)
	assert.Equal(t, resp.EmployeeResponse, found)
}

func TestEmployeeService_Create_DuplicateEmail(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	req := employee.CreateEmployeeRequest{
		Name:        "Alice",
		Email:       "alice@example.com",
		Department:  "Engineering",
		JoiningDate: "2024-01-01",
	}
	_, err := svc.Create(ctx, req)
	require.NoError(t, err)

	req.Email = "ALICE@example.com"
	_, err = svc.Create(ctx, req)
	assert.ErrorIs(t, err, employee.ErrEmailExists)
}

func TestEmployeeService_Create_Validation(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Create(context.Background(), employee.CreateEmployeeRequest{
		Name:        "",
		Email:       "not-an-email",
		Department:  "Engineering",
		JoiningDate: "01/01/2024",
	})

	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
	fields := validationErrs.ToMap()
	assert.Contains(t, fields, "name")
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "joining_date")
	assert.NotContains(t, fields, "department")
}

func TestEmployeeService_GetByID_NotFound(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.GetByID(context.Background(), "0199a0c4-0000-7000-8000-000000000000")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}
