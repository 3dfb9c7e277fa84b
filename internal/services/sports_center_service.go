package services

import (
	"errors"
	"fmt"

	"bolamarcada/internal/models"
	"bolamarcada/internal/repositories"
)

// SportsCenterService handles business logic related to sports centers.
type SportsCenterService struct {
	centerRepo repositories.SportsCenterRepository
}

// NewSportsCenterService creates a new SportsCenterService.
func NewSportsCenterService(centerRepo repositories.SportsCenterRepository) *SportsCenterService {
	return &SportsCenterService{
		centerRepo: centerRepo,
	}
}

// CreateSportsCenter creates a new sports center, relying on the store's
// unique constraint on CNPJ. A duplicate surfaces as ErrConflict.
func (s *SportsCenterService) CreateSportsCenter(center *models.SportsCenter) (*models.SportsCenter, error) {
	if err := s.centerRepo.Create(center); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, fmt.Errorf("%v: %w", err, ErrConflict)
		}
		return nil, fmt.Errorf("failed to create sports center: %w", err)
	}
	return center, nil
}

// GetSportsCenterByID retrieves a single sports center by its ID.
func (s *SportsCenterService) GetSportsCenterByID(id uint) (*models.SportsCenter, error) {
	return s.centerRepo.GetByID(id)
}

// GetAllSportsCenters retrieves all sports centers.
func (s *SportsCenterService) GetAllSportsCenters() ([]models.SportsCenter, error) {
	return s.centerRepo.GetAll()
}

// UpdateSportsCenter updates an existing sports center.
func (s *SportsCenterService) UpdateSportsCenter(center *models.SportsCenter) error {
	if err := s.centerRepo.Update(center); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return fmt.Errorf("%v: %w", err, ErrConflict)
		}
		return err
	}
	return nil
}

// DeleteSportsCenter deletes a sports center by its ID.
func (s *SportsCenterService) DeleteSportsCenter(id uint) error {
	return s.centerRepo.Delete(id)
}
