package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Anuragdrocks/Mini-Leave-Management-System-Anurag-Dubey/internal/domain/employee"
	"github.com/google/uuid"
)

type employeeRepositoryImpl struct {
	store *Store
}

func NewEmployeeRepository(store *Store) employee.EmployeeRepository {
	return &employeeRepositoryImpl{store: store}
}

const employeeColumns = `id, name, email, department, joining_date, created_at`

func scanEmployee(row interface{ Scan(dest ...any) error }) (employee.Employee, error) {
	var (
		e           employee.Employee
		joiningDate string
		createdAt   int64
	)
	if err := row.Scan(&e.ID, &e.Name, &e.Email, &e.Department, &joiningDate, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}
	var err error
	if e.JoiningDate, err = parseStoredDate(joiningDate); err != nil {
		return employee.Employee{}, err
	}
	e.CreatedAt = fromMillis(createdAt)
	return e, nil
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := r.store.getQuerier(ctx)

	if newEmployee.ID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return employee.Employee{}, fmt.Errorf("generate employee id: %w", err)
		}
		newEmployee.ID = id.String()
	}

	query := `
		INSERT INTO employees (id, name, email, department, joining_date, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING ` + employeeColumns

	created, err := scanEmployee(q.QueryRowContext(ctx, query,
		newEmployee.ID,
		newEmployee.Name,
		newEmployee.Email,
		newEmployee.Department,
		newEmployee.JoiningDate.Format(dateLayout),
		toMillis(time.Now()),
	))
	if err != nil {
		if isUniqueViolation(err) {
			return employee.Employee{}, employee.ErrEmailExists
		}
		return employee.Employee{}, mapBusy(err)
	}
	return created, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	if _, err := uuid.Parse(id); err != nil {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	q := r.store.getQuerier(ctx)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = ?`
	return scanEmployee(q.QueryRowContext(ctx, query, id))
}

// LockByID implements employee.EmployeeRepository. SQLite has no row locks;
// the immediate transaction already holds the database write lock.
func (r *employeeRepositoryImpl) LockByID(ctx context.Context, id string) (employee.Employee, error) {
	return r.GetByID(ctx, id)
}
