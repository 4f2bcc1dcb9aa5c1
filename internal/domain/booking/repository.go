package booking

import (
	"context"

	"github.com/motorcare/vehicle-service-api/internal/models"
)

type ListFilter struct {
	Status *Status
	Scope  ListScope
}

type Repository interface {
	// -------- Catalog --------
	GetService(ctx context.Context, id uint) (*models.Service, error)

	// -------- Identity --------
	GetMechanic(ctx context.Context, id uint) (*models.User, error)

	// -------- Booking --------
	CreateBooking(ctx context.Context, b *models.Booking) error

	// GetBooking returns the booking with user, service and mechanic
	// references expanded.
	GetBooking(ctx context.Context, id uint) (*models.Booking, error)

	UpdateBooking(ctx context.Context, b *models.Booking) error

	// ListBookings returns matching bookings newest-created first.
	ListBookings(ctx context.Context, f ListFilter) ([]models.Booking, error)
}
