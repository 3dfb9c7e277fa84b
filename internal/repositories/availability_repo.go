package repositories

import (
	"time"

	"bolamarcada/internal/models"
)

// AvailabilityRepository defines the interface for availability data access.
type AvailabilityRepository interface {
	Create(availability *models.Availability) error
	GetByID(id uint) (*models.Availability, error)
	GetByField(fieldID uint) ([]models.Availability, error)
	GetByWindow(fieldID uint, startTime, endTime time.Time) (*models.Availability, error)
	Delete(id uint) error
}
