package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/motorcare/vehicle-service-api/internal/auth"
	domain "github.com/motorcare/vehicle-service-api/internal/domain/booking"
	"github.com/motorcare/vehicle-service-api/internal/httperr"
	"github.com/motorcare/vehicle-service-api/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// ======================================================
// CATALOG
// ======================================================

// GetService resolves only active catalog entries; deactivated
// services are not bookable.
func (r *BookingGormRepository) GetService(
	ctx context.Context,
	id uint,
) (*models.Service, error) {

	var svc models.Service
	err := r.db.WithContext(ctx).
		Where("id = ? AND active = true", id).
		First(&svc).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound("service")
		}
		return nil, err
	}

	return &svc, nil
}

// ======================================================
// IDENTITY
// ======================================================

func (r *BookingGormRepository) GetMechanic(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var user models.User
	err := r.db.WithContext(ctx).
		Where("id = ? AND role = ?", id, auth.RoleMechanic).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound("mechanic")
		}
		return nil, err
	}

	return &user, nil
}

// ======================================================
// BOOKING
// ======================================================

func (r *BookingGormRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BookingGormRepository) GetBooking(
	ctx context.Context,
	id uint,
) (*models.Booking, error) {

	var b models.Booking
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Service").
		Preload("Mechanic").
		First(&b, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound("booking")
		}
		return nil, err
	}

	return &b, nil
}

func (r *BookingGormRepository) UpdateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	// The booking is loaded with expanded references; only the booking
	// row itself is written back.
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(b).Error
}

func (r *BookingGormRepository) ListBookings(
	ctx context.Context,
	f domain.ListFilter,
) ([]models.Booking, error) {

	q := r.db.WithContext(ctx).
		Preload("User").
		Preload("Service").
		Preload("Mechanic")

	if f.Status != nil {
		q = q.Where("status = ?", string(*f.Status))
	}
	if f.Scope.UserID != nil {
		q = q.Where("user_id = ?", *f.Scope.UserID)
	}
	if f.Scope.MechanicID != nil {
		q = q.Where("mechanic_id = ?", *f.Scope.MechanicID)
	}

	var bookings []models.Booking
	if err := q.Order("created_at DESC").Find(&bookings).Error; err != nil {
		return nil, err
	}

	return bookings, nil
}
