package repositories

import "bolamarcada/internal/models"

// SportsCenterRepository defines the interface for sports center data access.
type SportsCenterRepository interface {
	Create(center *models.SportsCenter) error
	GetByID(id uint) (*models.SportsCenter, error)
	GetAll() ([]models.SportsCenter, error)
	Update(center *models.SportsCenter) error
	Delete(id uint) error
}
