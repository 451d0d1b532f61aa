package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/Anuragdrocks/Mini-Leave-Management-System-Anurag-Dubey/internal/domain/employee"
	"github.com/Anuragdrocks/Mini-Leave-Management-System-Anurag-Dubey/internal/domain/leave"
	"github.com/Anuragdrocks/Mini-Leave-Management-System-Anurag-Dubey/internal/pkg/jwt"
	"github.com/Anuragdrocks/Mini-Leave-Management-System-Anurag-Dubey/internal/pkg/validator"
)

var (
	ErrInvalidToken          = errors.New("invalid or missing access token")
	ErrManagerAccessRequired = errors.New("manager role required")
	ErrOwnDataOnly           = errors.New("employees can only access their own leave data")
)

// HandleError maps domain errors to HTTP responses. The error code in the
// body is leave.ErrorCode(err) for every engine failure.
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	code := leave.ErrorCode(err)
	switch {
	// Auth errors
	case errors.Is(err, ErrInvalidToken), errors.Is(err, jwt.ErrInvalidRole):
		Unauthorized(w, err.Error())
	case errors.Is(err, ErrManagerAccessRequired), errors.Is(err, ErrOwnDataOnly):
		Forbidden(w, err.Error())

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		Error(w, http.StatusNotFound, code, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		Error(w, http.StatusConflict, "EMAIL_EXISTS", "Email already registered")

	// Leave domain errors
	case errors.Is(err, leave.ErrInvalidRange),
		errors.Is(err, leave.ErrInvalidDate),
		errors.Is(err, leave.ErrPrecedesJoining),
		errors.Is(err, leave.ErrInvalidAction):
		Error(w, http.StatusBadRequest, code, err.Error())
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		Error(w, http.StatusNotFound, code, "Leave request not found")
	case errors.Is(err, leave.ErrBalanceNotFound):
		Error(w, http.StatusNotFound, code, "Leave balance not found for this year")
	case errors.Is(err, leave.ErrOverlapConflict),
		errors.Is(err, leave.ErrInvalidTransition):
		Error(w, http.StatusConflict, code, err.Error())
	case errors.Is(err, leave.ErrInsufficientBalance):
		Error(w, http.StatusUnprocessableEntity, code, err.Error())
	case errors.Is(err, leave.ErrBusy):
		ServiceUnavailable(w, code, "Resource busy, retry the request")

	// Default
	default:
		slog.Error("Unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
