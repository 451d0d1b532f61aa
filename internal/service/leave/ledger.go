package leave

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Anuragdrocks/Mini-Leave-Management-System-Anurag-Dubey/internal/domain/employee"
	"github.com/Anuragdrocks/Mini-Leave-Management-System-Anurag-Dubey/internal/domain/leave"
)

// Ledger keeps the entitlement/used record of each employee-year and enforces
// 0 <= used <= entitlement on every mutation.
type Ledger struct {
	leave.LeaveBalanceRepository
}

func NewLedger(leaveBalanceRepository leave.LeaveBalanceRepository) *Ledger {
	return &Ledger{LeaveBalanceRepository: leaveBalanceRepository}
}

// OpenForEmployee creates the balance row of the employee's join year. It is
// called once, at onboarding, inside the registration transaction.
func (l *Ledger) OpenForEmployee(ctx context.Context, emp employee.Employee, entitlement float64) (leave.LeaveBalance, error) {
	if entitlement < 0 {
		return leave.LeaveBalance{}, fmt.Errorf("entitlement must not be negative, got %v", entitlement)
	}

	balance, err := l.LeaveBalanceRepository.Create(ctx, leave.LeaveBalance{
		EmployeeID:  emp.ID,
		Year:        emp.JoiningDate.Year(),
		Entitlement: entitlement,
	})
	if err != nil {
		return leave.LeaveBalance{}, fmt.Errorf("failed to create leave balance: %w", err)
	}

	slog.Debug("Opened leave balance", "employee_id", emp.ID, "year", balance.Year, "entitlement", entitlement)
	return balance, nil
}

// GetBalance returns the ledger row of (employeeID, year), or the employee's
// most recent row when year is nil.
func (l *Ledger) GetBalance(ctx context.Context, employeeID string, year *int) (leave.LeaveBalance, error) {
	if year == nil {
		return l.LeaveBalanceRepository.GetLatestByEmployee(ctx, employeeID)
	}
	return l.LeaveBalanceRepository.GetByEmployeeAndYear(ctx, employeeID, *year)
}

// Consume adds days to the balance's used count. The repository applies the
// entitlement check and the increment in one guarded write, so concurrent
// approvals against the same row serialize there.
func (l *Ledger) Consume(ctx context.Context, balance leave.LeaveBalance, days float64) (leave.LeaveBalance, error) {
	if days < 0 {
		return leave.LeaveBalance{}, fmt.Errorf("days must not be negative, got %v", days)
	}
	// Fast path on the locked snapshot; the guarded write below stays authoritative.
	if !balance.CanConsume(days) {
		return leave.LeaveBalance{}, leave.ErrInsufficientBalance
	}

	updated, err := l.LeaveBalanceRepository.Consume(ctx, balance.ID, days)
	if err != nil {
		if errors.Is(err, leave.ErrInsufficientBalance) || errors.Is(err, leave.ErrBalanceNotFound) {
			return leave.LeaveBalance{}, err
		}
		return leave.LeaveBalance{}, fmt.Errorf("failed to consume leave balance: %w", err)
	}
	return updated, nil
}
