package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Anuragdrocks/Mini-Leave-Management-System-Anurag-Dubey/internal/domain/leave"
	"github.com/google/uuid"
)

type leaveRequestRepositoryImpl struct {
	store *Store
}

func NewLeaveRequestRepository(store *Store) leave.LeaveRequestRepository {
	return &leaveRequestRepositoryImpl{store: store}
}

const leaveColumns = `id, employee_id, start_date, end_date, days, status, reason,
	applied_at, approved_by, approved_at, approval_comment`

func scanLeaveRequest(row interface{ Scan(dest ...any) error }) (leave.LeaveRequest, error) {
	var (
		lr              leave.LeaveRequest
		startDate       string
		endDate         string
		status          string
		appliedAt       int64
		approvedBy      sql.NullString
		approvedAt      sql.NullInt64
		approvalComment sql.NullString
	)
	err := row.Scan(
		&lr.ID,
		&lr.EmployeeID,
		&startDate,
		&endDate,
		&lr.Days,
		&status,
		&lr.Reason,
		&appliedAt,
		&approvedBy,
		&approvedAt,
		&approvalComment,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, mapBusy(err)
	}

	if lr.StartDate, err = parseStoredDate(startDate); err != nil {
		return leave.LeaveRequest{}, err
	}
	if lr.EndDate, err = parseStoredDate(endDate); err != nil {
		return leave.LeaveRequest{}, err
	}
	if lr.Status, err = leave.ParseStatus(status); err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("leave request %s: %w", lr.ID, err)
	}
	lr.AppliedAt = fromMillis(appliedAt)
	if approvedBy.Valid {
		lr.ApprovedBy = &approvedBy.String
	}
	if approvedAt.Valid {
		at := fromMillis(approvedAt.Int64)
		lr.ApprovedAt = &at
	}
	if approvalComment.Valid {
		lr.ApprovalComment = &approvalComment.String
	}
	return lr, nil
}

// Create implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := r.store.getQuerier(ctx)

	if request.ID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return leave.LeaveRequest{}, fmt.Errorf("generate leave request id: %w", err)
		}
		request.ID = id.String()
	}
	if request.AppliedAt.IsZero() {
		request.AppliedAt = time.Now()
	}

	query := `
		INSERT INTO leaves (id, employee_id, start_date, end_date, days, status, reason, applied_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING ` + leaveColumns

	return scanLeaveRequest(q.QueryRowContext(ctx, query,
		request.ID,
		request.EmployeeID,
		request.StartDate.Format(dateLayout),
		request.EndDate.Format(dateLayout),
		request.Days,
		string(request.Status),
		request.Reason,
		toMillis(request.AppliedAt),
	))
}

// GetByID implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := r.store.getQuerier(ctx)

	query := `SELECT ` + leaveColumns + ` FROM leaves WHERE id = ?`
	return scanLeaveRequest(q.QueryRowContext(ctx, query, id))
}

// LockByID implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) LockByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	return r.GetByID(ctx, id)
}

// ListByEmployee implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]leave.LeaveRequest, error) {
	query := `
		SELECT ` + leaveColumns + `
		FROM leaves
		WHERE employee_id = ?
		ORDER BY applied_at DESC, id DESC`
	return r.list(ctx, query, employeeID)
}

// ListActiveByEmployee implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) ListActiveByEmployee(ctx context.Context, employeeID string) ([]leave.LeaveRequest, error) {
	query := `
		SELECT ` + leaveColumns + `
		FROM leaves
		WHERE employee_id = ?
		AND status <> 'REJECTED'
		ORDER BY start_date`
	return r.list(ctx, query, employeeID)
}

func (r *leaveRequestRepositoryImpl) list(ctx context.Context, query string, employeeID string) ([]leave.LeaveRequest, error) {
	q := r.store.getQuerier(ctx)

	rows, err := q.QueryContext(ctx, query, employeeID)
	if err != nil {
		return nil, mapBusy(err)
	}
	defer rows.Close()

	requests := make([]leave.LeaveRequest, 0)
	for rows.Next() {
		request, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, request)
	}
	if err := rows.Err(); err != nil {
		return nil, mapBusy(err)
	}
	return requests, nil
}

// Resolve implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) Resolve(ctx context.Context, request leave.LeaveRequest) error {
	q := r.store.getQuerier(ctx)

	var approvedAt *int64
	if request.ApprovedAt != nil {
		ms := toMillis(*request.ApprovedAt)
		approvedAt = &ms
	}

	query := `
		UPDATE leaves
		SET status = ?, approved_by = ?, approved_at = ?, approval_comment = ?
		WHERE id = ?
		AND status = 'PENDING'`

	result, err := q.ExecContext(ctx, query,
		string(request.Status), request.ApprovedBy, approvedAt, request.ApprovalComment, request.ID,
	)
	if err != nil {
		return mapBusy(fmt.Errorf("failed to resolve leave request with id %s: %w", request.ID, err))
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return leave.ErrInvalidTransition
	}
	return nil
}
