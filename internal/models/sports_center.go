package models

import "gorm.io/gorm"

// SportsCenter represents a venue that hosts bookable fields.
// The CNPJ (national company tax ID) is unique across all centers.
type SportsCenter struct {
	ID          uint    `json:"id" gorm:"primaryKey"`
	UserID      string  `json:"user_id" gorm:"type:varchar(36);index" validate:"required,uuid"`
	Name        string  `json:"name" gorm:"type:varchar(100)" validate:"required,min=2,max=100"`
	CNPJ        string  `json:"cnpj" gorm:"uniqueIndex;type:varchar(14)" validate:"required,len=14,numeric"`
	Latitude    float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude   float64 `json:"longitude" validate:"gte=-180,lte=180"`
	PhotoPath   string  `json:"photo_path,omitempty"`
	Description string  `json:"description,omitempty" validate:"omitempty,max=500"`
	gorm.Model
}
