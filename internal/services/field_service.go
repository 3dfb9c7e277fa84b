package services

import (
	"errors"
	"fmt"

	"bolamarcada/internal/models"
	"bolamarcada/internal/repositories"
)

// FieldService handles business logic related to fields.
type FieldService struct {
	fieldRepo repositories.FieldRepository
}

// NewFieldService creates a new FieldService.
func NewFieldService(fieldRepo repositories.FieldRepository) *FieldService {
	return &FieldService{
		fieldRepo: fieldRepo,
	}
}

// CreateField creates a new field after pre-checking that no field with
// the same name exists in the sports center. The check-then-insert pair
// is not transactional; the unique index backs it up under races.
func (s *FieldService) CreateField(field *models.Field) (*models.Field, error) {
	existing, err := s.fieldRepo.GetByCenterAndName(field.SportsCenterID, field.Name)
	if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return nil, fmt.Errorf("failed to check field name: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("field name already used in this sports center: %w", ErrConflict)
	}

	if err := s.fieldRepo.Create(field); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, fmt.Errorf("field name already used in this sports center: %w", ErrConflict)
		}
		return nil, fmt.Errorf("failed to create field: %w", err)
	}
	return field, nil
}

// GetFieldByID retrieves a single field by its ID.
func (s *FieldService) GetFieldByID(id uint) (*models.Field, error) {
	return s.fieldRepo.GetByID(id)
}

// GetFieldsBySportsCenter retrieves all fields of a sports center.
func (s *FieldService) GetFieldsBySportsCenter(sportsCenterID uint) ([]models.Field, error) {
	return s.fieldRepo.GetBySportsCenter(sportsCenterID)
}

// UpdateField updates an existing field.
func (s *FieldService) UpdateField(field *models.Field) error {
	if err := s.fieldRepo.Update(field); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return fmt.Errorf("field name already used in this sports center: %w", ErrConflict)
		}
		return err
	}
	return nil
}

// DeleteField deletes a field by its ID.
func (s *FieldService) DeleteField(id uint) error {
	return s.fieldRepo.Delete(id)
}
