package booking

import (
	"context"

	"github.com/motorcare/vehicle-service-api/internal/audit"
	"github.com/motorcare/vehicle-service-api/internal/auth"
	domain "github.com/motorcare/vehicle-service-api/internal/domain/booking"
	"github.com/motorcare/vehicle-service-api/internal/models"
)

type AssignMechanic struct {
	repo  domain.Repository
	audit AuditSink
}

func NewAssignMechanic(repo domain.Repository, audit AuditSink) *AssignMechanic {
	return &AssignMechanic{
		repo:  repo,
		audit: audit,
	}
}

// Execute sets the booking's mechanic. The admin-only restriction is
// enforced by the route middleware, not here. An identity that exists
// but does not carry the mechanic role resolves to not-found.
func (uc *AssignMechanic) Execute(
	ctx context.Context,
	ident auth.Identity,
	bookingID uint,
	mechanicID uint,
) (*models.Booking, error) {

	mech, err := uc.repo.GetMechanic(ctx, mechanicID)
	if err != nil {
		return nil, err
	}

	b, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	b.MechanicID = &mech.ID
	b.Mechanic = mech

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &ident.UserID,
		Action:   "mechanic_assigned",
		Entity:   "booking",
		EntityID: &b.ID,
		Metadata: map[string]uint{"mechanic_id": mech.ID},
	})

	return b, nil
}
