package leave

import (
	"context"
)

// LeaveBalanceRepository - interface for leave_balances table
type LeaveBalanceRepository interface {
	Create(ctx context.Context, balance LeaveBalance) (LeaveBalance, error)
	GetByEmployeeAndYear(ctx context.Context, employeeID string, year int) (LeaveBalance, error)
	GetLatestByEmployee(ctx context.Context, employeeID string) (LeaveBalance, error)
	// LockByEmployeeAndYear reads the row and holds it until the surrounding
	// transaction ends.
	LockByEmployeeAndYear(ctx context.Context, employeeID string, year int) (LeaveBalance, error)
	// Consume adds days to used only while used+days stays within entitlement;
	// otherwise it returns ErrInsufficientBalance and changes nothing.
	Consume(ctx context.Context, balanceID string, days float64) (LeaveBalance, error)
}

// LeaveRequestRepository - interface for leaves table
type LeaveRequestRepository interface {
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	// LockByID reads the row and holds it until the surrounding transaction ends.
	LockByID(ctx context.Context, id string) (LeaveRequest, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]LeaveRequest, error)
	ListActiveByEmployee(ctx context.Context, employeeID string) ([]LeaveRequest, error)
	// Resolve writes the terminal fields of a request still PENDING in the store;
	// it returns ErrInvalidTransition when the stored row has already moved.
	Resolve(ctx context.Context, request LeaveRequest) error
}
