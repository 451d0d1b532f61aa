package postgresql_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/Anuragdrocks/Mini-Leave-Management-System-Anurag-Dubey/internal/domain/employee"
	"github.com/Anuragdrocks/Mini-Leave-Management-System-Anurag-Dubey/internal/domain/leave"
	"github.com/Anuragdrocks/Mini-Leave-Management-System-Anurag-Dubey/internal/pkg/database"
	"github.com/Anuragdrocks/Mini-Leave-Management-System-Anurag-Dubey/internal/repository/postgresql"
	"github.com/stretchr/testify/require"
)

var testDB *database.DB

// openTestDB connects once per package run. Tests skip when TEST_DATABASE_URL
// is not set so the suite runs without a PostgreSQL server.
func openTestDB(t *testing.T) *database.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	if testDB == nil {
		ctx := context.Background()
		db, err := database.NewPostgreSQLDB(ctx, dsn, 10)
		require.NoError(t, err, "connect to test database")
		require.NoError(t, postgresql.ApplySchema(ctx, db))
		testDB = db
	}
	return testDB
}

// Setup function untuk membersihkan data test
func setupTestData(t *testing.T) *database.DB {
	db := openTestDB(t)
	ctx := context.Background()

	_, err := db.Exec(ctx, "TRUNCATE TABLE leaves, leave_balances, employees CASCADE")
	require.NoError(t, err)
	return db
}

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := leave.ParseDate(s)
	require.NoError(t, err)
	return d
}

// Helper untuk membuat employee untuk testing
func createTestEmployee(t *testing.T, ctx context.Context, db *database.DB, joining string) employee.Employee {
	t.Helper()
	repo := postgresql.NewEmployeeRepository(db)
	created, err := repo.Create(ctx, employee.Employee{
		Name:        "Test Employee",
		Email:       fmt.Sprintf("emp-%d@example.com", time.Now().UnixNano()),
		Department:  "Engineering",
		JoiningDate: date(t, joining),
	})
	require.NoError(t, err)
	return created
}

func createTestBalance(t *testing.T, ctx context.Context, db *database.DB, employeeID string, year int, entitlement float64) leave.LeaveBalance {
	t.Helper()
	repo := postgresql.NewLeaveBalanceRepository(db)
	balance, err := repo.Create(ctx, leave.LeaveBalance{
		EmployeeID:  employeeID,
		Year:        year,
		Entitlement: entitlement,
	})
	require.NoError(t, err)
	return balance
}
