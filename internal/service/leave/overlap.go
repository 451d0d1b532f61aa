package leave

import (
	"context"
	"fmt"

	"github.com/Anuragdrocks/Mini-Leave-Management-System-Anurag-Dubey/internal/domain/leave"
)

// OverlapValidator decides whether a candidate period collides with any of an
// employee's PENDING or APPROVED requests. REJECTED requests never conflict.
type OverlapValidator struct {
	leave.LeaveRequestRepository
}

func NewOverlapValidator(leaveRequestRepository leave.LeaveRequestRepository) *OverlapValidator {
	return &OverlapValidator{LeaveRequestRepository: leaveRequestRepository}
}

// Conflicts is a pure read. Callers that insert on a false result must hold the
// employee lock for the whole check-then-insert sequence.
func (o *OverlapValidator) Conflicts(ctx context.Context, employeeID string, candidate leave.Period) (bool, error) {
	existing, err := o.LeaveRequestRepository.ListActiveByEmployee(ctx, employeeID)
	if err != nil {
		return false, fmt.Errorf("failed to list active leave requests: %w", err)
	}

	for _, request := range existing {
		if request.Status == leave.StatusRejected {
			continue
		}
		if request.Period().Overlaps(candidate) {
			return true, nil
		}
	}
	return false, nil
}
