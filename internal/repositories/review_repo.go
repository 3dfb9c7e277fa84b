package repositories

import "bolamarcada/internal/models"

// ReviewRepository defines the interface for review data access.
type ReviewRepository interface {
	Create(review *models.Review) error
	GetByID(id uint) (*models.Review, error)
	GetByField(fieldID uint) ([]models.Review, error)
	Delete(id uint) error
}
