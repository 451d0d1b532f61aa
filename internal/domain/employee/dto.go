package employee

import (
	"time"

	"github.com/Anuragdrocks/Mini-Leave-Management-System-Anurag-Dubey/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Department  string `json:"department"`
	JoiningDate string `json:"joining_date"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	errs.Required("name", r.Name)
	errs.MaxLength("name", r.Name, 255)
	errs.Required("email", r.Email)
	errs.Email("email", r.Email)
	errs.MaxLength("email", r.Email, 255)
	errs.Required("department", r.Department)
	errs.MaxLength("department", r.Department, 255)
	errs.Required("joining_date", r.JoiningDate)
	errs.Date("joining_date", r.JoiningDate)

	return errs.Err()
}

type EmployeeResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Department  string    `json:"department"`
	JoiningDate string    `json:"joining_date"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewEmployeeResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:          e.ID,
		Name:        e.Name,
		Email:       e.Email,
		Department:  e.Department,
		JoiningDate: e.JoiningDate.Format("2006-01-02"),
		CreatedAt:   e.CreatedAt,
	}
}

type CreateEmployeeResponse struct {
	EmployeeResponse
	Year        int     `json:"balance_year"`
	Entitlement float64 `json:"entitlement"`
}
