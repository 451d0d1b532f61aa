package leave

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Anuragdrocks/Mini-Leave-Management-System-Anurag-Dubey/internal/domain/employee"
	"github.com/Anuragdrocks/Mini-Leave-Management-System-Anurag-Dubey/internal/domain/leave"
)

// RequestService owns the PENDING -> APPROVED/REJECTED lifecycle. Every method
// expects to run inside a transaction opened by the caller.
type RequestService struct {
	leave.LeaveRequestRepository
	employee.EmployeeRepository
	overlap *OverlapValidator
	ledger  *Ledger
	now     func() time.Time
}

func NewRequestService(
	leaveRequestRepository leave.LeaveRequestRepository,
	employeeRepository employee.EmployeeRepository,
	overlap *OverlapValidator,
	ledger *Ledger,
) *RequestService {
	return &RequestService{
		LeaveRequestRepository: leaveRequestRepository,
		EmployeeRepository:     employeeRepository,
		overlap:                overlap,
		ledger:                 ledger,
		now:                    time.Now,
	}
}

// Create inserts a PENDING request for period. The employee row is locked
// first so overlap check and insert are atomic against other submissions by
// the same employee. No balance is reserved.
func (r *RequestService) Create(ctx context.Context, employeeID string, period leave.Period, reason string) (leave.LeaveRequest, error) {
	emp, err := r.EmployeeRepository.LockByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return leave.LeaveRequest{}, err
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to get employee: %w", err)
	}

	if period.Start.Before(leave.DateOf(emp.JoiningDate)) {
		return leave.LeaveRequest{}, leave.ErrPrecedesJoining
	}

	conflict, err := r.overlap.Conflicts(ctx, emp.ID, period)
	if err != nil {
		return leave.LeaveRequest{}, err
	}
	if conflict {
		return leave.LeaveRequest{}, leave.ErrOverlapConflict
	}

	request := leave.LeaveRequest{
		EmployeeID: emp.ID,
		StartDate:  period.Start,
		EndDate:    period.End,
		Days:       float64(period.Days()),
		Status:     leave.StatusPending,
		Reason:     reason,
		AppliedAt:  r.now().UTC(),
	}

	created, err := r.LeaveRequestRepository.Create(ctx, request)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}
	return created, nil
}

// Adjudicate applies rawAction to a PENDING request. On APPROVE the ledger
// is consumed in the same transaction as the status write, so both commit or
// neither does. Failures are reported in a fixed order: unknown request, not
// pending, missing balance row, then an unrecognised action.
func (r *RequestService) Adjudicate(ctx context.Context, requestID string, rawAction string, approverID string, comment string) (leave.LeaveRequest, error) {
	request, err := r.LeaveRequestRepository.LockByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, leave.ErrLeaveRequestNotFound) {
			return leave.LeaveRequest{}, err
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to get leave request: %w", err)
	}

	if request.Status.IsTerminal() {
		return leave.LeaveRequest{}, leave.ErrInvalidTransition
	}

	// The balance is resolved for both actions: a request whose year has no
	// ledger row cannot be adjudicated at all.
	balance, err := r.ledger.LockByEmployeeAndYear(ctx, request.EmployeeID, request.StartDate.Year())
	if err != nil {
		if errors.Is(err, leave.ErrBalanceNotFound) {
			return leave.LeaveRequest{}, err
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to get leave balance: %w", err)
	}

	action, err := leave.ParseAction(rawAction)
	if err != nil {
		return leave.LeaveRequest{}, err
	}
	next, err := request.Status.Transition(action)
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	if next == leave.StatusApproved {
		if _, err := r.ledger.Consume(ctx, balance, request.Days); err != nil {
			return leave.LeaveRequest{}, err
		}
	}

	approvedAt := r.now().UTC()
	request.Status = next
	request.ApprovedBy = &approverID
	request.ApprovedAt = &approvedAt
	if comment != "" {
		request.ApprovalComment = &comment
	}

	if err := r.LeaveRequestRepository.Resolve(ctx, request); err != nil {
		if errors.Is(err, leave.ErrInvalidTransition) {
			return leave.LeaveRequest{}, err
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to update leave request: %w", err)
	}
	return request, nil
}
