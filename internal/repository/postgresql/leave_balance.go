package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/Anuragdrocks/Mini-Leave-Management-System-Anurag-Dubey/internal/domain/leave"
	"github.com/Anuragdrocks/Mini-Leave-Management-System-Anurag-Dubey/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type leaveBalanceRepositoryImpl struct {
	db *database.DB
}

func NewLeaveBalanceRepository(db *database.DB) leave.LeaveBalanceRepository {
	return &leaveBalanceRepositoryImpl{db: db}
}

const balanceColumns = `id, employee_id, year, entitlement, used`

func scanBalance(row pgx.Row) (leave.LeaveBalance, error) {
	var balance leave.LeaveBalance
	err := row.Scan(&balance.ID, &balance.EmployeeID, &balance.Year, &balance.Entitlement, &balance.Used)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveBalance{}, leave.ErrBalanceNotFound
		}
		return leave.LeaveBalance{}, err
	}
	return balance, nil
}

// Create implements leave.LeaveBalanceRepository.
func (r *leaveBalanceRepositoryImpl) Create(ctx context.Context, balance leave.LeaveBalance) (leave.LeaveBalance, error) {
	q := GetQuerier(ctx, r.db)

	if balance.ID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return leave.LeaveBalance{}, fmt.Errorf("generate balance id: %w", err)
		}
		balance.ID = id.String()
	}

	query := `
		INSERT INTO leave_balances (id, employee_id, year, entitlement, used)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + balanceColumns

	return scanBalance(q.QueryRow(ctx, query,
		balance.ID, balance.EmployeeID, balance.Year, balance.Entitlement, balance.Used,
	))
}

// GetByEmployeeAndYear implements leave.LeaveBalanceRepository.
func (r *leaveBalanceRepositoryImpl) GetByEmployeeAndYear(ctx context.Context, employeeID string, year int) (leave.LeaveBalance, error) {
	return r.getByEmployeeAndYear(ctx, employeeID, year, "")
}

// LockByEmployeeAndYear implements leave.LeaveBalanceRepository.
func (r *leaveBalanceRepositoryImpl) LockByEmployeeAndYear(ctx context.Context, employeeID string, year int) (leave.LeaveBalance, error) {
	return r.getByEmployeeAndYear(ctx, employeeID, year, " FOR UPDATE")
}

func (r *leaveBalanceRepositoryImpl) getByEmployeeAndYear(ctx context.Context, employeeID string, year int, lock string) (leave.LeaveBalance, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return leave.LeaveBalance{}, leave.ErrBalanceNotFound
	}
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + balanceColumns + `
		FROM leave_balances
		WHERE employee_id = $1 AND year = $2` + lock

	return scanBalance(q.QueryRow(ctx, query, employeeID, year))
}

// GetLatestByEmployee implements leave.LeaveBalanceRepository.
func (r *leaveBalanceRepositoryImpl) GetLatestByEmployee(ctx context.Context, employeeID string) (leave.LeaveBalance, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return leave.LeaveBalance{}, leave.ErrBalanceNotFound
	}
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + balanceColumns + `
		FROM leave_balances
		WHERE employee_id = $1
		ORDER BY year DESC
		LIMIT 1`

	return scanBalance(q.QueryRow(ctx, query, employeeID))
}

// Consume implements leave.LeaveBalanceRepository.
func (r *leaveBalanceRepositoryImpl) Consume(ctx context.Context, balanceID string, days float64) (leave.LeaveBalance, error) {
	if _, err := uuid.Parse(balanceID); err != nil {
		return leave.LeaveBalance{}, leave.ErrBalanceNotFound
	}
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_balances
		SET used = used + $1
		WHERE id = $2
		AND entitlement - used >= $1
		RETURNING ` + balanceColumns

	balance, err := scanBalance(q.QueryRow(ctx, query, days, balanceID))
	if !errors.Is(err, leave.ErrBalanceNotFound) {
		return balance, err
	}

	// No row updated: either the row is missing or the guard refused the increment.
	var exists bool
	if err := q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM leave_balances WHERE id = $1)`, balanceID).Scan(&exists); err != nil {
		return leave.LeaveBalance{}, err
	}
	if !exists {
		return leave.LeaveBalance{}, leave.ErrBalanceNotFound
	}
	return leave.LeaveBalance{}, leave.ErrInsufficientBalance
}
