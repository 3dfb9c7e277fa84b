package repositories

import "bolamarcada/internal/models"

// FieldRepository defines the interface for field data access.
type FieldRepository interface {
	Create(field *models.Field) error
	GetByID(id uint) (*models.Field, error)
	GetBySportsCenter(sportsCenterID uint) ([]models.Field, error)
	GetByCenterAndName(sportsCenterID uint, name string) (*models.Field, error)
	Update(field *models.Field) error
	Delete(id uint) error
}
