package models

import "gorm.io/gorm"

// User represents a platform account. Created on signup or on first
// OAuth login; soft-deleted by clearing Active.
type User struct {
	ID         string  `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name       string  `json:"name" gorm:"type:varchar(100)" validate:"required,min=2,max=100"`
	Email      string  `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	CPF        *string `json:"cpf,omitempty" gorm:"uniqueIndex;type:varchar(11)" validate:"omitempty,len=11,numeric"`
	Phone      *string `json:"phone,omitempty" gorm:"type:varchar(20)"`
	Password   string  `json:"-" gorm:"type:varchar(255)"` // bcrypt hash, never serialized
	Active     bool    `json:"active" gorm:"default:true"`
	Admin      bool    `json:"admin" gorm:"default:false"`
	Avatar     string  `json:"avatar" gorm:"type:varchar(255);default:'default_avatar.png'"`
	gorm.Model
}
