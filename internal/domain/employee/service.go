package employee

import "context"

type EmployeeService interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (CreateEmployeeResponse, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
}
