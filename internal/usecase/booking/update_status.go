package booking

import (
	"context"

	"github.com/motorcare/vehicle-service-api/internal/audit"
	"github.com/motorcare/vehicle-service-api/internal/auth"
	domain "github.com/motorcare/vehicle-service-api/internal/domain/booking"
	"github.com/motorcare/vehicle-service-api/internal/models"
)

type UpdateStatus struct {
	repo  domain.Repository
	audit AuditSink
}

func NewUpdateStatus(repo domain.Repository, audit AuditSink) *UpdateStatus {
	return &UpdateStatus{
		repo:  repo,
		audit: audit,
	}
}

func (uc *UpdateStatus) Execute(
	ctx context.Context,
	ident auth.Identity,
	bookingID uint,
	target string,
) (*models.Booking, error) {

	st, err := domain.ParseStatus(target)
	if err != nil {
		return nil, err
	}

	b, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if err := domain.CanTransition(ident, b, st); err != nil {
		return nil, err
	}

	previous := b.Status
	b.Status = string(st)

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &ident.UserID,
		Action:   "booking_status_changed",
		Entity:   "booking",
		EntityID: &b.ID,
		Metadata: map[string]string{
			"from": previous,
			"to":   b.Status,
		},
	})

	return b, nil
}
