package leave

import (
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusApproved, StatusRejected:
		return Status(s), nil
	}
	return "", ErrUnknownStatus
}

// IsTerminal reports whether s can no longer change.
func (s Status) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// Transition returns the state reached by applying action to s. Only PENDING
// requests can move, and only to APPROVED or REJECTED.
func (s Status) Transition(action Action) (Status, error) {
	if s != StatusPending {
		return s, ErrInvalidTransition
	}
	switch action {
	case ActionApprove:
		return StatusApproved, nil
	case ActionReject:
		return StatusRejected, nil
	}
	return s, ErrInvalidAction
}

type Action string

const (
	ActionApprove Action = "APPROVE"
	ActionReject  Action = "REJECT"
)

// ParseAction accepts APPROVE or REJECT in any letter case.
func ParseAction(s string) (Action, error) {
	switch Action(strings.ToUpper(strings.TrimSpace(s))) {
	case ActionApprove:
		return ActionApprove, nil
	case ActionReject:
		return ActionReject, nil
	}
	return "", ErrInvalidAction
}

// ParseDate parses a calendar date in YYYY-MM-DD form as UTC midnight.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

// DateOf drops the time of day, keeping the calendar date t has in its own location.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

const secondsPerDay = 24 * 60 * 60

// Period is an inclusive range of calendar days.
type Period struct {
	Start time.Time
	End   time.Time
}

func NewPeriod(start, end time.Time) (Period, error) {
	p := Period{Start: DateOf(start), End: DateOf(end)}
	if p.End.Before(p.Start) {
		return Period{}, ErrInvalidRange
	}
	return p, nil
}

// Days counts calendar days in p, both ends included.
func (p Period) Days() int {
	// Unix seconds instead of Sub: a Duration saturates after ~292 years.
	return int((p.End.Unix()-p.Start.Unix())/secondsPerDay) + 1
}

// Overlaps reports whether p and o share at least one calendar day.
func (p Period) Overlaps(o Period) bool {
	return !p.Start.After(o.End) && !o.Start.After(p.End)
}

// LeaveRequest entity
type LeaveRequest struct {
	ID         string
	EmployeeID string

	StartDate time.Time
	EndDate   time.Time
	Days      float64

	Status    Status
	Reason    string
	AppliedAt time.Time

	// Set only by the terminal transition
	ApprovedBy      *string
	ApprovedAt      *time.Time
	ApprovalComment *string
}

func (r LeaveRequest) Period() Period {
	return Period{Start: DateOf(r.StartDate), End: DateOf(r.EndDate)}
}

// LeaveBalance entity, one per employee and year
type LeaveBalance struct {
	ID          string
	EmployeeID  string
	Year        int
	Entitlement float64
	Used        float64
}

func (b LeaveBalance) Remaining() float64 {
	return b.Entitlement - b.Used
}

func (b LeaveBalance) CanConsume(days float64) bool {
	return days >= 0 && b.Remaining() >= days
}
