package repositories

import (
	"errors"
	"fmt"
	"time"

	"bolamarcada/internal/models"

	"gorm.io/gorm"
)

// GORMBookingRepository is a GORM implementation of BookingRepository.
type GORMBookingRepository struct {
	db *gorm.DB
}

// NewGORMBookingRepository creates a new instance of GORMBookingRepository.
func NewGORMBookingRepository(db *gorm.DB) *GORMBookingRepository {
	return &GORMBookingRepository{
		db: db,
	}
}

// Create inserts a new booking. The (field_id, day_of_week, start_time)
// slot is unique; a store-level violation surfaces as ErrDuplicate, which
// also covers the window between the service's pre-check and the insert.
func (r *GORMBookingRepository) Create(booking *models.Booking) error {
	if err := r.db.Create(booking).Error; err != nil {
		return translateDuplicate(err, "field")
	}
	return nil
}

// GetByID retrieves a single booking by its ID.
func (r *GORMBookingRepository) GetByID(id uint) (*models.Booking, error) {
	var booking models.Booking
	if err := r.db.First(&booking, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("booking with ID %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get booking by ID %d: %w", id, err)
	}
	return &booking, nil
}

// GetByUser retrieves all bookings made by a user.
func (r *GORMBookingRepository) GetByUser(userID string) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := r.db.Find(&bookings, "user_id = ?", userID).Error; err != nil {
		return nil, fmt.Errorf("failed to get bookings for user %s: %w", userID, err)
	}
	return bookings, nil
}

// GetBySlot looks up a booking by its uniqueness key.
func (r *GORMBookingRepository) GetBySlot(fieldID uint, dayOfWeek int, startTime time.Time) (*models.Booking, error) {
	var booking models.Booking
	err := r.db.First(&booking,
		"field_id = ? AND day_of_week = ? AND start_time = ?", fieldID, dayOfWeek, startTime).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("booking for field %d slot: %w", fieldID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get booking for field %d slot: %w", fieldID, err)
	}
	return &booking, nil
}

// UpdateStatus changes the status of an existing booking.
func (r *GORMBookingRepository) UpdateStatus(id uint, status string) error {
	res := r.db.Model(&models.Booking{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return fmt.Errorf("failed to update status of booking %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("booking with ID %d: %w", id, ErrNotFound)
	}
	return nil
}

// Delete removes a booking by its ID. The delete is unscoped so the
// freed slot no longer occupies the unique index and can be booked again.
func (r *GORMBookingRepository) Delete(id uint) error {
	res := r.db.Unscoped().Delete(&models.Booking{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete booking %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("booking with ID %d: %w", id, ErrNotFound)
	}
	return nil
}
