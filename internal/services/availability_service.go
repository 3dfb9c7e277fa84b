package services

import (
	"errors"
	"fmt"

	"bolamarcada/internal/models"
	"bolamarcada/internal/repositories"
)

// AvailabilityService handles business logic related to availability windows.
type AvailabilityService struct {
	availabilityRepo repositories.AvailabilityRepository
}

// NewAvailabilityService creates a new AvailabilityService.
func NewAvailabilityService(availabilityRepo repositories.AvailabilityRepository) *AvailabilityService {
	return &AvailabilityService{
		availabilityRepo: availabilityRepo,
	}
}

// CreateAvailability creates a new availability window after pre-checking
// that the same window does not already exist for the field.
func (s *AvailabilityService) CreateAvailability(availability *models.Availability) (*models.Availability, error) {
	existing, err := s.availabilityRepo.GetByWindow(
		availability.FieldID, availability.StartTime, availability.EndTime)
	if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return nil, fmt.Errorf("failed to check availability window: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("availability window already exists for this field: %w", ErrConflict)
	}

	if err := s.availabilityRepo.Create(availability); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, fmt.Errorf("availability window already exists for this field: %w", ErrConflict)
		}
		return nil, fmt.Errorf("failed to create availability: %w", err)
	}
	return availability, nil
}

// GetAvailabilityByID retrieves a single availability window by its ID.
func (s *AvailabilityService) GetAvailabilityByID(id uint) (*models.Availability, error) {
	return s.availabilityRepo.GetByID(id)
}

// GetAvailabilitiesByField retrieves all availability windows of a field.
func (s *AvailabilityService) GetAvailabilitiesByField(fieldID uint) ([]models.Availability, error) {
	return s.availabilityRepo.GetByField(fieldID)
}

// DeleteAvailability deletes an availability window by its ID.
func (s *AvailabilityService) DeleteAvailability(id uint) error {
	return s.availabilityRepo.Delete(id)
}
