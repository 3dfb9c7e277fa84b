package repositories

import (
	"errors"
	"fmt"

	"bolamarcada/internal/models"

	"gorm.io/gorm"
)

// GORMSportsCenterRepository is a GORM implementation of SportsCenterRepository.
type GORMSportsCenterRepository struct {
	db *gorm.DB
}

// NewGORMSportsCenterRepository creates a new instance of GORMSportsCenterRepository.
func NewGORMSportsCenterRepository(db *gorm.DB) *GORMSportsCenterRepository {
	return &GORMSportsCenterRepository{
		db: db,
	}
}

// Create inserts a new sports center. The CNPJ uniqueness is enforced by
// the store; a violation surfaces as ErrDuplicate.
func (r *GORMSportsCenterRepository) Create(center *models.SportsCenter) error {
	if err := r.db.Create(center).Error; err != nil {
		return translateDuplicate(err, "cnpj")
	}
	return nil
}

// GetByID retrieves a single sports center by its ID.
func (r *GORMSportsCenterRepository) GetByID(id uint) (*models.SportsCenter, error) {
	var center models.SportsCenter
	if err := r.db.First(&center, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("sports center with ID %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get sports center by ID %d: %w", id, err)
	}
	return &center, nil
}

// GetAll retrieves all sports centers.
func (r *GORMSportsCenterRepository) GetAll() ([]models.SportsCenter, error) {
	var centers []models.SportsCenter
	if err := r.db.Find(&centers).Error; err != nil {
		return nil, fmt.Errorf("failed to get all sports centers: %w", err)
	}
	return centers, nil
}

// Update saves all fields of an existing sports center.
func (r *GORMSportsCenterRepository) Update(center *models.SportsCenter) error {
	res := r.db.Save(center)
	if res.Error != nil {
		return translateDuplicate(res.Error, "cnpj")
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("sports center with ID %d: %w", center.ID, ErrNotFound)
	}
	return nil
}

// Delete removes a sports center by its ID. Unscoped, so the CNPJ can be
// registered again.
func (r *GORMSportsCenterRepository) Delete(id uint) error {
	res := r.db.Unscoped().Delete(&models.SportsCenter{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete sports center %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("sports center with ID %d: %w", id, ErrNotFound)
	}
	return nil
}
