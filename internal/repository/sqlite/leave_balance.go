package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Anuragdrocks/Mini-Leave-Management-System-Anurag-Dubey/internal/domain/leave"
	"github.com/google/uuid"
)

type leaveBalanceRepositoryImpl struct {
	store *Store
}

func NewLeaveBalanceRepository(store *Store) leave.LeaveBalanceRepository {
	return &leaveBalanceRepositoryImpl{store: store}
}

const balanceColumns = `id, employee_id, year, entitlement, used`

func scanBalance(row *sql.Row) (leave.LeaveBalance, error) {
	var balance leave.LeaveBalance
	err := row.Scan(&balance.ID, &balance.EmployeeID, &balance.Year, &balance.Entitlement, &balance.Used)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return leave.LeaveBalance{}, leave.ErrBalanceNotFound
		}
		return leave.LeaveBalance{}, mapBusy(err)
	}
	return balance, nil
}

// Create implements leave.LeaveBalanceRepository.
func (r *leaveBalanceRepositoryImpl) Create(ctx context.Context, balance leave.LeaveBalance) (leave.LeaveBalance, error) {
	q := r.store.getQuerier(ctx)

	if balance.ID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return leave.LeaveBalance{}, fmt.Errorf("generate balance id: %w", err)
		}
		balance.ID = id.String()
	}

	query := `
		INSERT INTO leave_balances (id, employee_id, year, entitlement, used)
		VALUES (?, ?, ?, ?, ?)
		RETURNING ` + balanceColumns

	return scanBalance(q.QueryRowContext(ctx, query,
		balance.ID, balance.EmployeeID, balance.Year, balance.Entitlement, balance.Used,
	))
}

// GetByEmployeeAndYear implements leave.LeaveBalanceRepository.
func (r *leaveBalanceRepositoryImpl) GetByEmployeeAndYear(ctx context.Context, employeeID string, year int) (leave.LeaveBalance, error) {
	q := r.store.getQuerier(ctx)

	query := `
		SELECT ` + balanceColumns + `
		FROM leave_balances
		WHERE employee_id = ? AND year = ?`

	return scanBalance(q.QueryRowContext(ctx, query, employeeID, year))
}

// LockByEmployeeAndYear implements leave.LeaveBalanceRepository.
func (r *leaveBalanceRepositoryImpl) LockByEmployeeAndYear(ctx context.Context, employeeID string, year int) (leave.LeaveBalance, error) {
	return r.GetByEmployeeAndYear(ctx, employeeID, year)
}

// GetLatestByEmployee implements leave.LeaveBalanceRepository.
func (r *leaveBalanceRepositoryImpl) GetLatestByEmployee(ctx context.Context, employeeID string) (leave.LeaveBalance, error) {
	q := r.store.getQuerier(ctx)

	query := `
		SELECT ` + balanceColumns + `
		FROM leave_balances
		WHERE employee_id = ?
		ORDER BY year DESC
		LIMIT 1`

	return scanBalance(q.QueryRowContext(ctx, query, employeeID))
}

// Consume implements leave.LeaveBalanceRepository.
func (r *leaveBalanceRepositoryImpl) Consume(ctx context.Context, balanceID string, days float64) (leave.LeaveBalance, error) {
	q := r.store.getQuerier(ctx)

	query := `
		UPDATE leave_balances
		SET used = used + ?
		WHERE id = ?
		AND entitlement - used >= ?
		RETURNING ` + balanceColumns

	balance, err := scanBalance(q.QueryRowContext(ctx, query, days, balanceID, days))
	if !errors.Is(err, leave.ErrBalanceNotFound) {
		return balance, err
	}

	var exists bool
	if err := q.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM leave_balances WHERE id = ?)`, balanceID).Scan(&exists); err != nil {
		return leave.LeaveBalance{}, mapBusy(err)
	}
	if !exists {
		return leave.LeaveBalance{}, leave.ErrBalanceNotFound
	}
	return leave.LeaveBalance{}, leave.ErrInsufficientBalance
}
