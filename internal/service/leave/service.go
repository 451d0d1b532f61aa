package leave

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Anuragdrocks/Mini-Leave-Management-System-Anurag-Dubey/internal/domain/employee"
	"github.com/Anuragdrocks/Mini-Leave-Management-System-Anurag-Dubey/internal/domain/leave"
	"github.com/Anuragdrocks/Mini-Leave-Management-System-Anurag-Dubey/internal/pkg/database"
	"github.com/Anuragdrocks/Mini-Leave-Management-System-Anurag-Dubey/internal/pkg/metrics"
)

const (
	opSubmit     = "submit"
	opAdjudicate = "adjudicate"
	opGetBalance = "get_balance"
)

// LeaveServiceImpl wraps each multi-step sequence in one store transaction.
// It holds no shared mutable state; all of it lives in the store.
type LeaveServiceImpl struct {
	tx database.Transactor
	leave.LeaveRequestRepository
	requestService *RequestService
	ledger         *Ledger
	metrics        *metrics.Metrics
}

func NewLeaveService(
	tx database.Transactor,
	leaveRequestRepository leave.LeaveRequestRepository,
	leaveBalanceRepository leave.LeaveBalanceRepository,
	employeeRepository employee.EmployeeRepository,
	m *metrics.Metrics,
) leave.LeaveService {
	ledger := NewLedger(leaveBalanceRepository)
	overlap := NewOverlapValidator(leaveRequestRepository)
	return &LeaveServiceImpl{
		tx:                     tx,
		LeaveRequestRepository: leaveRequestRepository,
		requestService:         NewRequestService(leaveRequestRepository, employeeRepository, overlap, ledger),
		ledger:                 ledger,
		metrics:                m,
	}
}

// SubmitLeave implements leave.LeaveService.
func (l *LeaveServiceImpl) SubmitLeave(ctx context.Context, req leave.SubmitLeaveRequest) (resp leave.SubmitLeaveResponse, err error) {
	defer l.observe(opSubmit, time.Now(), &err)

	if err := req.Validate(); err != nil {
		return leave.SubmitLeaveResponse{}, err
	}

	startDate, err := leave.ParseDate(req.StartDate)
	if err != nil {
		return leave.SubmitLeaveResponse{}, err
	}
	endDate, err := leave.ParseDate(req.EndDate)
	if err != nil {
		return leave.SubmitLeaveResponse{}, err
	}
	period, err := leave.NewPeriod(startDate, endDate)
	if err != nil {
		return leave.SubmitLeaveResponse{}, err
	}

	var created leave.LeaveRequest
	err = l.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		request, err := l.requestService.Create(txCtx, req.EmployeeID, period, req.Reason)
		if err != nil {
			return err
		}
		created = request
		return nil
	})
	if err != nil {
		return leave.SubmitLeaveResponse{}, err
	}

	slog.Info("Leave request submitted",
		"request_id", created.ID,
		"employee_id", created.EmployeeID,
		"start_date", created.StartDate.Format(leave.DateLayout),
		"end_date", created.EndDate.Format(leave.DateLayout),
		"days", created.Days,
	)

	return leave.SubmitLeaveResponse{
		RequestID: created.ID,
		Days:      created.Days,
		Status:    created.Status,
	}, nil
}

// AdjudicateLeave implements leave.LeaveService.
func (l *LeaveServiceImpl) AdjudicateLeave(ctx context.Context, req leave.AdjudicateLeaveRequest) (resp leave.AdjudicateLeaveResponse, err error) {
	defer l.observe(opAdjudicate, time.Now(), &err)

	if err := req.Validate(); err != nil {
		return leave.AdjudicateLeaveResponse{}, err
	}

	var resolved leave.LeaveRequest
	err = l.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		request, err := l.requestService.Adjudicate(txCtx, req.RequestID, req.Action, req.ApproverID, req.Comment)
		if err != nil {
			return err
		}
		resolved = request
		return nil
	})
	if err != nil {
		return leave.AdjudicateLeaveResponse{}, err
	}

	slog.Info("Leave request adjudicated",
		"request_id", resolved.ID,
		"employee_id", resolved.EmployeeID,
		"status", resolved.Status,
		"approved_by", req.ApproverID,
		"days", resolved.Days,
	)

	return leave.AdjudicateLeaveResponse{
		RequestID: resolved.ID,
		Status:    resolved.Status,
	}, nil
}

// GetBalance implements leave.LeaveService. It is a plain read outside any
// transaction.
func (l *LeaveServiceImpl) GetBalance(ctx context.Context, req leave.GetBalanceRequest) (resp leave.BalanceResponse, err error) {
	defer l.observe(opGetBalance, time.Now(), &err)

	if err := req.Validate(); err != nil {
		return leave.BalanceResponse{}, err
	}

	balance, err := l.ledger.GetBalance(ctx, req.EmployeeID, req.Year)
	if err != nil {
		if errors.Is(err, leave.ErrBalanceNotFound) {
			return leave.BalanceResponse{}, err
		}
		return leave.BalanceResponse{}, fmt.Errorf("failed to get leave balance: %w", err)
	}

	return leave.NewBalanceResponse(balance), nil
}

// GetLeave implements leave.LeaveService.
func (l *LeaveServiceImpl) GetLeave(ctx context.Context, id string) (leave.LeaveRequestResponse, error) {
	request, err := l.LeaveRequestRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, leave.ErrLeaveRequestNotFound) {
			return leave.LeaveRequestResponse{}, err
		}
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to get leave request: %w", err)
	}
	return leave.NewLeaveRequestResponse(request), nil
}

// ListLeaves implements leave.LeaveService. Newest first.
func (l *LeaveServiceImpl) ListLeaves(ctx context.Context, employeeID string) ([]leave.LeaveRequestResponse, error) {
	if _, err := l.requestService.EmployeeRepository.GetByID(ctx, employeeID); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}

	requests, err := l.LeaveRequestRepository.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}

	responses := make([]leave.LeaveRequestResponse, 0, len(requests))
	for _, request := range requests {
		responses = append(responses, leave.NewLeaveRequestResponse(request))
	}
	return responses, nil
}

func (l *LeaveServiceImpl) observe(operation string, started time.Time, errp *error) {
	err := *errp
	code := leave.ErrorCode(err)
	l.metrics.Observe(operation, code, time.Since(started))

	switch code {
	case "OK":
	case "BUSY":
		slog.Warn("Leave operation hit lock timeout", "operation", operation, "error", err)
	case "INTERNAL":
		slog.Error("Leave operation failed", "operation", operation, "error", err)
	default:
		slog.Debug("Leave operation rejected", "operation", operation, "code", code, "error", err)
	}
}
