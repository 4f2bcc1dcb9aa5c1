package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/motorcare/vehicle-service-api/internal/models"
)

func TestNewBooking_ExposesSummariesOnly(t *testing.T) {
	mechID := uint(20)
	b := &models.Booking{
		ID:     7,
		UserID: 10,
		User: models.User{
			ID: 10, Name: "Ana", Email: "ana@example.com",
			Phone: "555-0101", PasswordHash: "secret-hash",
		},
		ServiceID: 1,
		Service: models.Service{
			ID: 1, Name: "Oil Change", Price: 50, DurationMin: 30,
		},
		MechanicID: &mechID,
		Mechanic: &models.User{
			ID: 20, Name: "Marco", Email: "marco@example.com",
			PasswordHash: "another-hash",
		},
		Vehicle: models.VehicleDetails{
			Type: "car", Make: "Toyota", Model: "Corolla",
			Year: 2020, LicensePlate: "ABC123",
		},
		AppointmentDate: time.Date(2030, 1, 2, 0, 0, 0, 0, time.UTC),
		AppointmentTime: "10:00",
		TotalAmount:     50,
		Status:          "pending",
	}

	out := NewBooking(b)

	assert.Equal(t, "Ana", out.User.Name)
	assert.Equal(t, "Oil Change", out.Service.Name)
	assert.Equal(t, "Marco", out.Mechanic.Name)
	assert.Equal(t, "2030-01-02", out.AppointmentDate)

	raw, err := json.Marshal(out)
	assert.NoError(t, err)
	assert.NotContains(t, string(raw), "hash")
}

func TestNewBooking_WithoutMechanic(t *testing.T) {
	out := NewBooking(&models.Booking{ID: 7, Status: "pending"})

	assert.Nil(t, out.Mechanic)

	raw, err := json.Marshal(out)
	assert.NoError(t, err)
	assert.NotContains(t, string(raw), "mechanic")
}
