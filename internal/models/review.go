package models

import "gorm.io/gorm"

// Review is a user rating of a field, 1 to 5 stars.
type Review struct {
	ID      uint   `json:"id" gorm:"primaryKey"`
	FieldID uint   `json:"field_id" gorm:"index" validate:"required"`
	UserID  string `json:"user_id" gorm:"type:varchar(36);index" validate:"required,uuid"`
	Rating  int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment string `json:"comment,omitempty" validate:"omitempty,max=500"`
	gorm.Model
}
