package leave

import (
	"time"

	"github.com/Anuragdrocks/Mini-Leave-Management-System-Anurag-Dubey/internal/pkg/validator"
)

const maxTextLength = 1000

// SubmitLeaveRequest carries dates as strings; they are parsed by the engine
// so a malformed date reports INVALID_DATE rather than a validation error.
type SubmitLeaveRequest struct {
	EmployeeID string `json:"employee_id"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Reason     string `json:"reason"`
}

func (r *SubmitLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	errs.Required("employee_id", r.EmployeeID)
	errs.UUID("employee_id", r.EmployeeID)
	errs.Required("start_date", r.StartDate)
	errs.Required("end_date", r.EndDate)
	errs.Required("reason", r.Reason)
	errs.MaxLength("reason", r.Reason, maxTextLength)

	return errs.Err()
}

type SubmitLeaveResponse struct {
	RequestID string  `json:"request_id"`
	Days      float64 `json:"days"`
	Status    Status  `json:"status"`
}

type AdjudicateLeaveRequest struct {
	RequestID  string `json:"-"`
	Action     string `json:"action"`
	ApproverID string `json:"approver_id"`
	Comment    string `json:"comment"`
}

func (r *AdjudicateLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	errs.Required("request_id", r.RequestID)
	errs.Required("action", r.Action)
	errs.Required("approver_id", r.ApproverID)
	errs.MaxLength("comment", r.Comment, maxTextLength)

	return errs.Err()
}

type AdjudicateLeaveResponse struct {
	RequestID string `json:"request_id"`
	Status    Status `json:"status"`
}

type GetBalanceRequest struct {
	EmployeeID string
	// Year selects the ledger row; nil means the employee's most recent one.
	Year *int
}

func (r *GetBalanceRequest) Validate() error {
	var errs validator.ValidationErrors

	errs.Required("employee_id", r.EmployeeID)
	if r.Year != nil && (*r.Year < 1900 || *r.Year > 9999) {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be between 1900 and 9999",
		})
	}

	return errs.Err()
}

type BalanceResponse struct {
	EmployeeID  string  `json:"employee_id"`
	Year        int     `json:"year"`
	Entitlement float64 `json:"entitlement"`
	Used        float64 `json:"used"`
	Remaining   float64 `json:"remaining"`
}

func NewBalanceResponse(b LeaveBalance) BalanceResponse {
	return BalanceResponse{
		EmployeeID:  b.EmployeeID,
		Year:        b.Year,
		Entitlement: b.Entitlement,
		Used:        b.Used,
		Remaining:   b.Remaining(),
	}
}

type LeaveRequestResponse struct {
	ID              string     `json:"id"`
	EmployeeID      string     `json:"employee_id"`
	StartDate       string     `json:"start_date"`
	EndDate         string     `json:"end_date"`
	Days            float64    `json:"days"`
	Status          Status     `json:"status"`
	Reason          string     `json:"reason"`
	AppliedAt       time.Time  `json:"applied_at"`
	ApprovedBy      *string    `json:"approved_by,omitempty"`
	ApprovedAt      *time.Time `json:"approved_at,omitempty"`
	ApprovalComment *string    `json:"approval_comment,omitempty"`
}

func NewLeaveRequestResponse(r LeaveRequest) LeaveRequestResponse {
	return LeaveRequestResponse{
		ID:              r.ID,
		EmployeeID:      r.EmployeeID,
		StartDate:       r.StartDate.Format(DateLayout),
		EndDate:         r.EndDate.Format(DateLayout),
		Days:            r.Days,
		Status:          r.Status,
		Reason:          r.Reason,
		AppliedAt:       r.AppliedAt,
		ApprovedBy:      r.ApprovedBy,
		ApprovedAt:      r.ApprovedAt,
		ApprovalComment: r.ApprovalComment,
	}
}
