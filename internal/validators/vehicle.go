package validators

import (
	"strings"
	"time"

	"github.com/motorcare/vehicle-service-api/internal/httperr"
	"github.com/motorcare/vehicle-service-api/internal/models"
)

const (
	VehicleTypeCar  = "car"
	VehicleTypeBike = "bike"

	MinVehicleYear = 1900

	DateLayout = "2006-01-02"
)

// Vehicle collects every violated field instead of stopping at the
// first one.
func Vehicle(v models.VehicleDetails) []httperr.FieldError {
	var fields []httperr.FieldError

	switch strings.ToLower(strings.TrimSpace(v.Type)) {
	case VehicleTypeCar, VehicleTypeBike:
	default:
		fields = append(fields, httperr.Field("vehicle_details.type", "must be car or bike"))
	}

	if strings.TrimSpace(v.Make) == "" {
		fields = append(fields, httperr.Field("vehicle_details.make", "is required"))
	}
	if strings.TrimSpace(v.Model) == "" {
		fields = append(fields, httperr.Field("vehicle_details.model", "is required"))
	}
	if v.Year < MinVehicleYear {
		fields = append(fields, httperr.Field("vehicle_details.year", "must be 1900 or later"))
	}
	if strings.TrimSpace(v.LicensePlate) == "" {
		fields = append(fields, httperr.Field("vehicle_details.license_plate", "is required"))
	}

	return fields
}

// AppointmentDate parses an ISO calendar date.
func AppointmentDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, strings.TrimSpace(s))
}

// BeginningOfDay normalizes to midnight for the "today or later" check.
func BeginningOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
