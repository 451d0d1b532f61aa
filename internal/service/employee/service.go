package employee

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Anuragdrocks/Mini-Leave-Management-System-Anurag-Dubey/internal/domain/employee"
	"github.com/Anuragdrocks/Mini-Leave-Management-System-Anurag-Dubey/internal/domain/leave"
	"github.com/Anuragdrocks/Mini-Leave-Management-System-Anurag-Dubey/internal/pkg/database"
	leaveservice "github.com/Anuragdrocks/Mini-Leave-Management-System-Anurag-Dubey/internal/service/leave"
)

type EmployeeServiceImpl struct {
	tx                 database.Transactor
	employeeRepo       employee.EmployeeRepository
	ledger             *leaveservice.Ledger
	defaultEntitlement float64
}

func NewEmployeeService(
	tx database.Transactor,
	employeeRepo employee.EmployeeRepository,
	leaveBalanceRepo leave.LeaveBalanceRepository,
	defaultEntitlement float64,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		tx:                 tx,
		employeeRepo:       employeeRepo,
		ledger:             leaveservice.NewLedger(leaveBalanceRepo),
		defaultEntitlement: defaultEntitlement,
	}
}

// Create implements employee.EmployeeService. The employee and the balance
// row of its joining year are written in one transaction.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.CreateEmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.CreateEmployeeResponse{}, err
	}

	joiningDate, err := time.Parse("2006-01-02", strings.TrimSpace(req.JoiningDate))
	if err != nil {
		return employee.CreateEmployeeResponse{}, leave.ErrInvalidDate
	}

	var (
		created employee.Employee
		balance leave.LeaveBalance
	)
	err = s.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		emp, err := s.employeeRepo.Create(txCtx, employee.Employee{
			Name:        strings.TrimSpace(req.Name),
			Email:       strings.ToLower(strings.TrimSpace(req.Email)),
			Department:  strings.TrimSpace(req.Department),
			JoiningDate: joiningDate,
		})
		if err != nil {
			if errors.Is(err, employee.ErrEmailExists) {
				return err
			}
			return fmt.Errorf("failed to create employee: %w", err)
		}
		created = emp

		opened, err := s.ledger.OpenForEmployee(txCtx, emp, s.defaultEntitlement)
		if err != nil {
			return err
		}
		balance = opened
		return nil
	})
	if err != nil {
		return employee.CreateEmployeeResponse{}, err
	}

	slog.Info("Registered employee",
		"employee_id", created.ID,
		"balance_year", balance.Year,
		"entitlement", balance.Entitlement,
	)

	return employee.CreateEmployeeResponse{
		EmployeeResponse: employee.NewEmployeeResponse(created),
		Year:             balance.Year,
		Entitlement:      balance.Entitlement,
	}, nil
}

// GetByID implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetByID(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return employee.NewEmployeeResponse(emp), nil
}
