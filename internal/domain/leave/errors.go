package leave

import (
	"errors"

	"github.com/Anuragdrocks/Mini-Leave-Management-System-Anurag-Dubey/internal/domain/employee"
	"github.com/Anuragdrocks/Mini-Leave-Management-System-Anurag-Dubey/internal/pkg/database"
	"github.com/Anuragdrocks/Mini-Leave-Management-System-Anurag-Dubey/internal/pkg/validator"
)

var (
	ErrInvalidRange         = errors.New("end date cannot be before start date")
	ErrInvalidDate          = errors.New("invalid date format, expected YYYY-MM-DD")
	ErrPrecedesJoining      = errors.New("cannot apply leave before joining date")
	ErrOverlapConflict      = errors.New("overlapping leave request exists")
	ErrLeaveRequestNotFound = errors.New("leave request not found")
	ErrBalanceNotFound      = errors.New("leave balance not found")
	ErrInvalidTransition    = errors.New("leave request is not pending")
	ErrInvalidAction        = errors.New("action must be APPROVE or REJECT")
	ErrInsufficientBalance  = errors.New("insufficient leave balance")
	ErrUnknownStatus        = errors.New("unknown leave status")

	// ErrBusy is the store's lock timeout, surfaced unchanged by the engine.
	ErrBusy = database.ErrBusy
)

// ErrorCode maps err to its stable code. Unknown errors map to INTERNAL.
func ErrorCode(err error) string {
	var validationErrs validator.ValidationErrors
	switch {
	case err == nil:
		return "OK"
	case errors.Is(err, ErrInvalidRange):
		return "INVALID_RANGE"
	case errors.Is(err, ErrInvalidDate):
		return "INVALID_DATE"
	case errors.Is(err, ErrPrecedesJoining):
		return "PRECEDES_JOINING"
	case errors.Is(err, ErrOverlapConflict):
		return "OVERLAP_CONFLICT"
	case errors.Is(err, ErrLeaveRequestNotFound), errors.Is(err, employee.ErrEmployeeNotFound):
		return "NOT_FOUND"
	case errors.Is(err, ErrBalanceNotFound):
		return "BALANCE_NOT_FOUND"
	case errors.Is(err, ErrInvalidTransition):
		return "INVALID_TRANSITION"
	case errors.Is(err, ErrInvalidAction):
		return "INVALID_ACTION"
	case errors.Is(err, ErrInsufficientBalance):
		return "INSUFFICIENT_BALANCE"
	case errors.Is(err, ErrBusy):
		return "BUSY"
	case errors.As(err, &validationErrs):
		return "VALIDATION_ERROR"
	}
	return "INTERNAL"
}
