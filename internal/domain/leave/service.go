package leave

import (
	"context"
)

type LeaveService interface {
	SubmitLeave(ctx context.Context, req SubmitLeaveRequest) (SubmitLeaveResponse, error)
	AdjudicateLeave(ctx context.Context, req AdjudicateLeaveRequest) (AdjudicateLeaveResponse, error)
	GetBalance(ctx context.Context, req GetBalanceRequest) (BalanceResponse, error)

	GetLeave(ctx context.Context, id string) (LeaveRequestResponse, error)
	ListLeaves(ctx context.Context, employeeID string) ([]LeaveRequestResponse, error)
}
