package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Anuragdrocks/Mini-Leave-Management-System-Anurag-Dubey/internal/domain/leave"
	"github.com/Anuragdrocks/Mini-Leave-Management-System-Anurag-Dubey/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type leaveRequestRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepositoryImpl{db: db}
}

const leaveColumns = `id, employee_id, start_date, end_date, days, status, reason,
	applied_at, approved_by, approved_at, approval_comment`

func scanLeaveRequest(row pgx.Row) (leave.LeaveRequest, error) {
	var (
		lr     leave.LeaveRequest
		status string
	)
	err := row.Scan(
		&lr.ID,
		&lr.EmployeeID,
		&lr.StartDate,
		&lr.EndDate,
		&lr.Days,
		&status,
		&lr.Reason,
		&lr.AppliedAt,
		&lr.ApprovedBy,
		&lr.ApprovedAt,
		&lr.ApprovalComment,
	)
	if err != nil {
		return leave.LeaveRequest{}, err
	}
	if lr.Status, err = leave.ParseStatus(status); err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("leave request %s: %w", lr.ID, err)
	}
	return lr, nil
}

// Create implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	if request.ID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return leave.LeaveRequest{}, fmt.Errorf("generate leave request id: %w", err)
		}
		request.ID = id.String()
	}
	if request.AppliedAt.IsZero() {
		request.AppliedAt = time.Now().UTC()
	}

	query := `
		INSERT INTO leaves (id, employee_id, start_date, end_date, days, status, reason, applied_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + leaveColumns

	return scanLeaveRequest(q.QueryRow(ctx, query,
		request.ID, request.EmployeeID, request.StartDate, request.EndDate, request.Days,
		string(request.Status), request.Reason, request.AppliedAt,
	))
}

// GetByID implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	return r.getByID(ctx, id, "")
}

// LockByID implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) LockByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	return r.getByID(ctx, id, " FOR UPDATE")
}

func (r *leaveRequestRepositoryImpl) getByID(ctx context.Context, id string, lock string) (leave.LeaveRequest, error) {
	if _, err := uuid.Parse(id); err != nil {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + leaveColumns + ` FROM leaves WHERE id = $1` + lock

	request, err := scanLeaveRequest(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, err
	}
	return request, nil
}

// ListByEmployee implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]leave.LeaveRequest, error) {
	query := `
		SELECT ` + leaveColumns + `
		FROM leaves
		WHERE employee_id = $1
		ORDER BY applied_at DESC, id DESC`
	return r.list(ctx, query, employeeID)
}

// ListActiveByEmployee implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) ListActiveByEmployee(ctx context.Context, employeeID string) ([]leave.LeaveRequest, error) {
	query := `
		SELECT ` + leaveColumns + `
		FROM leaves
		WHERE employee_id = $1
		AND status <> 'REJECTED'
		ORDER BY start_date`
	return r.list(ctx, query, employeeID)
}

func (r *leaveRequestRepositoryImpl) list(ctx context.Context, query string, employeeID string) ([]leave.LeaveRequest, error) {
	requests := make([]leave.LeaveRequest, 0)
	if _, err := uuid.Parse(employeeID); err != nil {
		return requests, nil
	}
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		request, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, request)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return requests, nil
}

// Resolve implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) Resolve(ctx context.Context, request leave.LeaveRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leaves
		SET status = $1, approved_by = $2, approved_at = $3, approval_comment = $4
		WHERE id = $5
		AND status = 'PENDING'`

	result, err := q.Exec(ctx, query,
		string(request.Status), request.ApprovedBy, request.ApprovedAt, request.ApprovalComment, request.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to resolve leave request with id %s: %w", request.ID, err)
	}
	if result.RowsAffected() == 0 {
		return leave.ErrInvalidTransition
	}
	return nil
}
