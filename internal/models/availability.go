package models

import (
	"time"

	"gorm.io/gorm"
)

// Availability is a recurring window during which a field can be booked.
// DayOfWeek follows time.Weekday numbering (0 = Sunday).
type Availability struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	FieldID   uint      `json:"field_id" gorm:"uniqueIndex:idx_avail_field_window" validate:"required"`
	DayOfWeek int       `json:"day_of_week" validate:"gte=0,lte=6"`
	StartTime time.Time `json:"start_time" gorm:"uniqueIndex:idx_avail_field_window" validate:"required"`
	EndTime   time.Time `json:"end_time" gorm:"uniqueIndex:idx_avail_field_window" validate:"required,gtfield=StartTime"`
	gorm.Model
}
