package repositories

import (
	"errors"
	"fmt"

	"bolamarcada/internal/models"

	"gorm.io/gorm"
)

// GORMFieldRepository is a GORM implementation of FieldRepository.
type GORMFieldRepository struct {
	db *gorm.DB
}

// NewGORMFieldRepository creates a new instance of GORMFieldRepository.
func NewGORMFieldRepository(db *gorm.DB) *GORMFieldRepository {
	return &GORMFieldRepository{
		db: db,
	}
}

// Create inserts a new field. The (sports_center_id, name) pair is unique;
// a store-level violation surfaces as ErrDuplicate.
func (r *GORMFieldRepository) Create(field *models.Field) error {
	if err := r.db.Create(field).Error; err != nil {
		return translateDuplicate(err, "name")
	}
	return nil
}

// GetByID retrieves a single field by its ID.
func (r *GORMFieldRepository) GetByID(id uint) (*models.Field, error) {
	var field models.Field
	if err := r.db.First(&field, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("field with ID %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get field by ID %d: %w", id, err)
	}
	return &field, nil
}

// GetBySportsCenter retrieves all fields belonging to a sports center.
func (r *GORMFieldRepository) GetBySportsCenter(sportsCenterID uint) ([]models.Field, error) {
	var fields []models.Field
	if err := r.db.Find(&fields, "sports_center_id = ?", sportsCenterID).Error; err != nil {
		return nil, fmt.Errorf("failed to get fields for sports center %d: %w", sportsCenterID, err)
	}
	return fields, nil
}

// GetByCenterAndName looks up a field by its uniqueness key.
func (r *GORMFieldRepository) GetByCenterAndName(sportsCenterID uint, name string) (*models.Field, error) {
	var field models.Field
	err := r.db.First(&field, "sports_center_id = ? AND name = ?", sportsCenterID, name).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("field %q in sports center %d: %w", name, sportsCenterID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get field %q in sports center %d: %w", name, sportsCenterID, err)
	}
	return &field, nil
}

// Update saves all fields of an existing field record.
func (r *GORMFieldRepository) Update(field *models.Field) error {
	res := r.db.Save(field)
	if res.Error != nil {
		return translateDuplicate(res.Error, "name")
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("field with ID %d: %w", field.ID, ErrNotFound)
	}
	return nil
}

// Delete removes a field by its ID. Unscoped, so the name can be reused
// within the same sports center.
func (r *GORMFieldRepository) Delete(id uint) error {
	res := r.db.Unscoped().Delete(&models.Field{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete field %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("field with ID %d: %w", id, ErrNotFound)
	}
	return nil
}
