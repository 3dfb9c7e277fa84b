package repositories

import (
	"errors"
	"fmt"

	"bolamarcada/internal/models"

	"gorm.io/gorm"
)

// GORMReviewRepository is a GORM implementation of ReviewRepository.
type GORMReviewRepository struct {
	db *gorm.DB
}

// NewGORMReviewRepository creates a new instance of GORMReviewRepository.
func NewGORMReviewRepository(db *gorm.DB) *GORMReviewRepository {
	return &GORMReviewRepository{
		db: db,
	}
}

// Create inserts a new review.
func (r *GORMReviewRepository) Create(review *models.Review) error {
	if err := r.db.Create(review).Error; err != nil {
		return fmt.Errorf("failed to create review: %w", err)
	}
	return nil
}

// GetByID retrieves a single review by its ID.
func (r *GORMReviewRepository) GetByID(id uint) (*models.Review, error) {
	var review models.Review
	if err := r.db.First(&review, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("review with ID %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get review by ID %d: %w", id, err)
	}
	return &review, nil
}

// GetByField retrieves all reviews for a field.
func (r *GORMReviewRepository) GetByField(fieldID uint) ([]models.Review, error) {
	var reviews []models.Review
	if err := r.db.Find(&reviews, "field_id = ?", fieldID).Error; err != nil {
		return nil, fmt.Errorf("failed to get reviews for field %d: %w", fieldID, err)
	}
	return reviews, nil
}

// Delete removes a review by its ID.
func (r *GORMReviewRepository) Delete(id uint) error {
	res := r.db.Unscoped().Delete(&models.Review{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete review %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("review with ID %d: %w", id, ErrNotFound)
	}
	return nil
}
