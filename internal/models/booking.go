package models

import "time"

type VehicleDetails struct {
	Type         string `gorm:"size:10" json:"type"`
	Make         string `gorm:"size:50" json:"make"`
	Model        string `gorm:"size:50" json:"model"`
	Year         int    `json:"year"`
	LicensePlate string `gorm:"size:20" json:"license_plate"`
}

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"not null" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"user"`

	ServiceID uint    `gorm:"not null" json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service"`

	MechanicID *uint `json:"mechanic_id"`
	Mechanic   *User `gorm:"foreignKey:MechanicID" json:"mechanic,omitempty"`

	Vehicle VehicleDetails `gorm:"embedded;embeddedPrefix:vehicle_" json:"vehicle_details"`

	AppointmentDate time.Time `gorm:"not null" json:"appointment_date"`
	AppointmentTime string    `gorm:"size:20;not null" json:"appointment_time"`
	Notes           string    `gorm:"size:500" json:"notes"`

	// TotalAmount is copied from the service price at creation time and
	// never recomputed.
	TotalAmount float64 `json:"total_amount"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
