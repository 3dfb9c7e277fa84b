package models

import "gorm.io/gorm"

// Field represents a bookable pitch or court inside a sports center.
// Field names are unique within their sports center.
type Field struct {
	ID             uint    `json:"id" gorm:"primaryKey"`
	SportsCenterID uint    `json:"sports_center_id" gorm:"uniqueIndex:idx_fields_center_name" validate:"required"`
	Name           string  `json:"name" gorm:"uniqueIndex:idx_fields_center_name;type:varchar(100)" validate:"required,min=2,max=100"`
	FieldType      string  `json:"field_type" gorm:"column:type;type:varchar(50)" validate:"required"`
	PricePerHour   float64 `json:"price_per_hour" validate:"required,gt=0"`
	PhotoPath      string  `json:"photo_path,omitempty"`
	Description    string  `json:"description,omitempty" validate:"omitempty,max=500"`
	gorm.Model
}
