package models

import (
	"time"

	"gorm.io/gorm"
)

// Booking statuses.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

// Booking is a reservation of a field slot. At most one booking may
// exist per (field, day_of_week, start_time).
type Booking struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    string    `json:"user_id" gorm:"type:varchar(36);index" validate:"required,uuid"`
	FieldID   uint      `json:"field_id" gorm:"uniqueIndex:idx_bookings_field_slot" validate:"required"`
	DayOfWeek int       `json:"day_of_week" gorm:"uniqueIndex:idx_bookings_field_slot" validate:"gte=0,lte=6"`
	StartTime time.Time `json:"start_time" gorm:"uniqueIndex:idx_bookings_field_slot" validate:"required"`
	Status    string    `json:"status" gorm:"type:varchar(20);default:'pending'"`
	gorm.Model
}
