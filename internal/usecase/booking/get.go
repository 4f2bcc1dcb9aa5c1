package booking

import (
	"context"

	"github.com/motorcare/vehicle-service-api/internal/auth"
	domain "github.com/motorcare/vehicle-service-api/internal/domain/booking"
	"github.com/motorcare/vehicle-service-api/internal/models"
)

type GetBooking struct {
	repo domain.Repository
}

func NewGetBooking(repo domain.Repository) *GetBooking {
	return &GetBooking{repo: repo}
}

// Execute resolves the booking before checking visibility, so an
// unauthorized caller gets a 403 for an existing booking and a 404
// for a missing one.
func (uc *GetBooking) Execute(
	ctx context.Context,
	ident auth.Identity,
	bookingID uint,
) (*models.Booking, error) {

	b, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if err := domain.CanView(ident, b); err != nil {
		return nil, err
	}

	return b, nil
}
