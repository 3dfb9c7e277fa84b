package repositories

import (
	"errors"
	"fmt"
	"time"

	"bolamarcada/internal/models"

	"gorm.io/gorm"
)

// GORMAvailabilityRepository is a GORM implementation of AvailabilityRepository.
type GORMAvailabilityRepository struct {
	db *gorm.DB
}

// NewGORMAvailabilityRepository creates a new instance of GORMAvailabilityRepository.
func NewGORMAvailabilityRepository(db *gorm.DB) *GORMAvailabilityRepository {
	return &GORMAvailabilityRepository{
		db: db,
	}
}

// Create inserts a new availability window.
func (r *GORMAvailabilityRepository) Create(availability *models.Availability) error {
	if err := r.db.Create(availability).Error; err != nil {
		return translateDuplicate(err, "field")
	}
	return nil
}

// GetByID retrieves a single availability window by its ID.
func (r *GORMAvailabilityRepository) GetByID(id uint) (*models.Availability, error) {
	var availability models.Availability
	if err := r.db.First(&availability, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("availability with ID %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get availability by ID %d: %w", id, err)
	}
	return &availability, nil
}

// GetByField retrieves all availability windows for a field.
func (r *GORMAvailabilityRepository) GetByField(fieldID uint) ([]models.Availability, error) {
	var availabilities []models.Availability
	if err := r.db.Find(&availabilities, "field_id = ?", fieldID).Error; err != nil {
		return nil, fmt.Errorf("failed to get availabilities for field %d: %w", fieldID, err)
	}
	return availabilities, nil
}

// GetByWindow looks up an availability by its uniqueness key.
func (r *GORMAvailabilityRepository) GetByWindow(fieldID uint, startTime, endTime time.Time) (*models.Availability, error) {
	var availability models.Availability
	err := r.db.First(&availability,
		"field_id = ? AND start_time = ? AND end_time = ?", fieldID, startTime, endTime).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("availability for field %d: %w", fieldID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get availability for field %d: %w", fieldID, err)
	}
	return &availability, nil
}

// Delete removes an availability window by its ID. Unscoped, so the same
// window can be recreated without tripping the unique index.
func (r *GORMAvailabilityRepository) Delete(id uint) error {
	res := r.db.Unscoped().Delete(&models.Availability{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete availability %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("availability with ID %d: %w", id, ErrNotFound)
	}
	return nil
}
