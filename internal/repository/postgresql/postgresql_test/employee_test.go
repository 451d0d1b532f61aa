package postgresql_test

import (
	"context"
	"testing"

	"github.com/Anuragdrocks/Mini-Leave-Management-System-Anurag-Dubey/internal/domain/employee"
	"github.com/Anuragdrocks/Mini-Leave-Management-System-Anurag-Dubey/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ===== EMPLOYEE REPOSITORY TESTS =====

func TestEmployeeRepository_Create_Success(t *testing.T) {
	db := setupTestData(t)
	ctx := context.Background()
	repo := postgresql.NewEmployeeRepository(db)

	created, err := repo.Create(ctx, employee.Employee{
		Name:        "Alice",
		Email:       "alice@example.com",
		Department:  "Engineering",
		JoiningDate: date(t, "2025-01-10"),
	})

	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "alice@example.com", created.Email)
	assert.Equal(t, "2025-01-10", created.JoiningDate.Format("2006-01-02"))
	assert.False(t, created.CreatedAt.IsZero())
}

func TestEmployeeRepository_Create_DuplicateEmail(t *testing.T) {
	db := setupTestData(t)
	ctx := context.Background()
	repo := postgresql.NewEmployeeRepository(db)

	newEmployee := employee.Employee{
		Name:        "Alice",
		Email:       "alice@example.com",
		Department:  "Engineering",
		JoiningDate: date(t, "2025-01-10"),
	}
	_, err := repo.Create(ctx, newEmployee)
	require.NoError(t, err)

	_, err = repo.Create(ctx, newEmployee)
	assert.ErrorIs(t, err, employee.ErrEmailExists)
}

func TestEmployeeRepository_GetByID_NotFound(t *testing.T) {
	db := setupTestData(t)
	ctx := context.Background()
	repo := postgresql.NewEmployeeRepository(db)

	_, err := repo.GetByID(ctx, "0199a0c4-0000-7000-8000-000000000000")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)

	_, err = repo.GetByID(ctx, "not-a-uuid")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}
