package repositories

import (
	"time"

	"bolamarcada/internal/models"
)

// BookingRepository defines the interface for booking data access.
type BookingRepository interface {
	Create(booking *models.Booking) error
	GetByID(id uint) (*models.Booking, error)
	GetByUser(userID string) ([]models.Booking, error)
	GetBySlot(fieldID uint, dayOfWeek int, startTime time.Time) (*models.Booking, error)
	UpdateStatus(id uint, status string) error
	Delete(id uint) error
}
