package services

import (
	"fmt"

	"bolamarcada/internal/models"
	"bolamarcada/internal/repositories"
)

// ReviewService handles business logic related to field reviews.
type ReviewService struct {
	reviewRepo repositories.ReviewRepository
	fieldRepo  repositories.FieldRepository
}

// NewReviewService creates a new ReviewService.
func NewReviewService(reviewRepo repositories.ReviewRepository, fieldRepo repositories.FieldRepository) *ReviewService {
	return &ReviewService{
		reviewRepo: reviewRepo,
		fieldRepo:  fieldRepo,
	}
}

// CreateReview creates a new review for an existing field.
func (s *ReviewService) CreateReview(review *models.Review) (*models.Review, error) {
	if _, err := s.fieldRepo.GetByID(review.FieldID); err != nil {
		return nil, fmt.Errorf("field %d: %w", review.FieldID, err)
	}
	if err := s.reviewRepo.Create(review); err != nil {
		return nil, fmt.Errorf("failed to create review: %w", err)
	}
	return review, nil
}

// GetReviewByID retrieves a single review by its ID.
func (s *ReviewService) GetReviewByID(id uint) (*models.Review, error) {
	return s.reviewRepo.GetByID(id)
}

// GetReviewsByField retrieves all reviews of a field.
func (s *ReviewService) GetReviewsByField(fieldID uint) ([]models.Review, error) {
	return s.reviewRepo.GetByField(fieldID)
}

// DeleteReview deletes a review by its ID.
func (s *ReviewService) DeleteReview(id uint) error {
	return s.reviewRepo.Delete(id)
}
