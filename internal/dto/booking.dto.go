package dto

import (
	"time"

	"github.com/motorcare/vehicle-service-api/internal/models"
	"github.com/motorcare/vehicle-service-api/internal/validators"
)

// Summary shapes expose only contact fields of referenced records,
// never the full rows.

type UserSummary struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type ServiceSummary struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	DurationMin int     `json:"duration_min"`
}

type Booking struct {
	ID              uint                  `json:"id"`
	User            UserSummary           `json:"user"`
	Service         ServiceSummary        `json:"service"`
	Mechanic        *UserSummary          `json:"mechanic,omitempty"`
	Vehicle         models.VehicleDetails `json:"vehicle_details"`
	AppointmentDate string                `json:"appointment_date"`
	AppointmentTime string                `json:"appointment_time"`
	Notes           string                `json:"notes,omitempty"`
	TotalAmount     float64               `json:"total_amount"`
	Status          string                `json:"status"`
	CreatedAt       time.Time             `json:"created_at"`
}

func NewBooking(b *models.Booking) Booking {
	out := Booking{
		ID: b.ID,
		User: UserSummary{
			ID:    b.User.ID,
			Name:  b.User.Name,
			Email: b.User.Email,
			Phone: b.User.Phone,
		},
		Service: ServiceSummary{
			ID:          b.Service.ID,
			Name:        b.Service.Name,
			Price:       b.Service.Price,
			DurationMin: b.Service.DurationMin,
		},
		Vehicle:         b.Vehicle,
		AppointmentDate: b.AppointmentDate.Format(validators.DateLayout),
		AppointmentTime: b.AppointmentTime,
		Notes:           b.Notes,
		TotalAmount:     b.TotalAmount,
		Status:          b.Status,
		CreatedAt:       b.CreatedAt,
	}

	if b.Mechanic != nil {
		out.Mechanic = &UserSummary{
			ID:    b.Mechanic.ID,
			Name:  b.Mechanic.Name,
			Email: b.Mechanic.Email,
			Phone: b.Mechanic.Phone,
		}
	}

	return out
}

func NewBookings(bs []models.Booking) []Booking {
	out := make([]Booking, 0, len(bs))
	for i := range bs {
		out = append(out, NewBooking(&bs[i]))
	}
	return out
}
