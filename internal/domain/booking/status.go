package booking

import "github.com/motorcare/vehicle-service-api/internal/httperr"

type Status string

const (
	StatusPending    Status = "pending"
	StatusApproved   Status = "approved"
	StatusRejected   Status = "rejected"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

// ParseStatus accepts only the enumerated wire values. Adjacency
// between statuses is intentionally not enforced: mechanics and admins
// may write any enumerated value from any current state.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusApproved, StatusRejected,
		StatusInProgress, StatusCompleted, StatusCancelled:
		return Status(s), nil
	}
	return "", httperr.ErrValidation(
		httperr.Field("status", "must be one of pending, approved, rejected, in-progress, completed, cancelled"),
	)
}

func InitialStatus() Status {
	return StatusPending
}
