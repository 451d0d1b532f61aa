package employee

import "time"

// Employee is owned by the registry; the leave engine only reads it.
type Employee struct {
	ID          string
	Name        string
	Email       string
	Department  string
	JoiningDate time.Time
	CreatedAt   time.Time
}
