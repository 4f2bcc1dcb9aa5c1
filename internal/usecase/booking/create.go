package booking

import (
	"context"
	"strings"
	"time"

	"github.com/motorcare/vehicle-service-api/internal/audit"
	"github.com/motorcare/vehicle-service-api/internal/auth"
	domain "github.com/motorcare/vehicle-service-api/internal/domain/booking"
	"github.com/motorcare/vehicle-service-api/internal/httperr"
	"github.com/motorcare/vehicle-service-api/internal/models"
	"github.com/motorcare/vehicle-service-api/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	ServiceID       uint                  `json:"service_id"`
	Vehicle         models.VehicleDetails `json:"vehicle_details"`
	AppointmentDate string                `json:"appointment_date"`
	AppointmentTime string                `json:"appointment_time"`
	Notes           string                `json:"notes"`
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo  domain.Repository
	audit AuditSink
}

func NewCreateBooking(repo domain.Repository, audit AuditSink) *CreateBooking {
	return &CreateBooking{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	ident auth.Identity,
	in CreateBookingInput,
) (*models.Booking, error) {

	if err := domain.CanCreate(ident); err != nil {
		return nil, err
	}

	// All field checks run before any persistence attempt, and every
	// violation is reported, not just the first.
	fields := validators.Vehicle(in.Vehicle)

	if in.ServiceID == 0 {
		fields = append(fields, httperr.Field("service_id", "is required"))
	}
	if strings.TrimSpace(in.AppointmentTime) == "" {
		fields = append(fields, httperr.Field("appointment_time", "is required"))
	}

	date, err := validators.AppointmentDate(in.AppointmentDate)
	if err != nil {
		fields = append(fields, httperr.Field("appointment_date", "must be a valid date in YYYY-MM-DD format"))
	}

	if len(fields) > 0 {
		return nil, httperr.ErrValidation(fields...)
	}

	// Parsed dates are UTC, so the lower bound must be too.
	today := validators.BeginningOfDay(time.Now().UTC())
	if date.Before(today) {
		return nil, httperr.ErrValidation(
			httperr.Field("appointment_date", "must be today or later"),
		)
	}

	svc, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, err
	}

	b := &models.Booking{
		UserID:    ident.UserID,
		ServiceID: svc.ID,
		Vehicle: models.VehicleDetails{
			Type:         strings.ToLower(strings.TrimSpace(in.Vehicle.Type)),
			Make:         strings.TrimSpace(in.Vehicle.Make),
			Model:        strings.TrimSpace(in.Vehicle.Model),
			Year:         in.Vehicle.Year,
			LicensePlate: strings.TrimSpace(in.Vehicle.LicensePlate),
		},
		AppointmentDate: date,
		AppointmentTime: strings.TrimSpace(in.AppointmentTime),
		Notes:           in.Notes,
		TotalAmount:     svc.Price,
		Status:          string(domain.InitialStatus()),
	}

	if err := uc.repo.CreateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &b.UserID,
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	// Expansion after the write is best-effort: the booking is already
	// persisted, so a failed reload returns the unexpanded record.
	if full, err := uc.repo.GetBooking(ctx, b.ID); err == nil {
		return full, nil
	}

	return b, nil
}
