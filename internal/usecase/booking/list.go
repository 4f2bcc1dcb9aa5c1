package booking

import (
	"context"

	"github.com/motorcare/vehicle-service-api/internal/auth"
	domain "github.com/motorcare/vehicle-service-api/internal/domain/booking"
	"github.com/motorcare/vehicle-service-api/internal/dto"
)

type ListBookings struct {
	repo domain.Repository
}

func NewListBookings(repo domain.Repository) *ListBookings {
	return &ListBookings{repo: repo}
}

// Execute lists the bookings visible to the caller, optionally
// filtered by status, newest-created first.
func (uc *ListBookings) Execute(
	ctx context.Context,
	ident auth.Identity,
	statusFilter string,
) ([]dto.Booking, error) {

	f := domain.ListFilter{
		Scope: domain.ScopeFor(ident),
	}

	if statusFilter != "" {
		st, err := domain.ParseStatus(statusFilter)
		if err != nil {
			return nil, err
		}
		f.Status = &st
	}

	bookings, err := uc.repo.ListBookings(ctx, f)
	if err != nil {
		return nil, err
	}

	return dto.NewBookings(bookings), nil
}
