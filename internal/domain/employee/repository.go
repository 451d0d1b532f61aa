package employee

import "context"

type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (Employee, error)
	// LockByID reads the employee and holds its row until the surrounding
	// transaction ends, serializing work scoped to one employee.
	LockByID(ctx context.Context, id string) (Employee, error)
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
}
