package services

import (
	"errors"
	"fmt"
	"log"

	"bolamarcada/internal/models"
	"bolamarcada/internal/repositories"
)

// BookingEventPublisher publishes booking lifecycle events to the message
// broker. *rabbitmq.Client satisfies it.
type BookingEventPublisher interface {
	PublishBookingCreated(bookingData map[string]interface{}) error
}

// BookingService handles business logic related to bookings.
type BookingService struct {
	bookingRepo repositories.BookingRepository
	fieldRepo   repositories.FieldRepository
	publisher   BookingEventPublisher
}

// NewBookingService creates a new BookingService.
func NewBookingService(bookingRepo repositories.BookingRepository, fieldRepo repositories.FieldRepository, publisher BookingEventPublisher) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		fieldRepo:   fieldRepo,
		publisher:   publisher,
	}
}

// CreateBooking reserves a field slot. The slot is pre-checked for an
// existing booking before the insert. The check-then-insert pair is not
// run in a transaction, so two concurrent creates can both pass the
// check; the store's unique index then rejects the loser, which also
// surfaces as ErrConflict.
func (s *BookingService) CreateBooking(booking *models.Booking) (*models.Booking, error) {
	if _, err := s.fieldRepo.GetByID(booking.FieldID); err != nil {
		return nil, fmt.Errorf("field %d: %w", booking.FieldID, err)
	}

	existing, err := s.bookingRepo.GetBySlot(booking.FieldID, booking.DayOfWeek, booking.StartTime)
	if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return nil, fmt.Errorf("failed to check slot: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("field slot already booked: %w", ErrConflict)
	}

	if booking.Status == "" {
		booking.Status = models.BookingStatusPending
	}
	if err := s.bookingRepo.Create(booking); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, fmt.Errorf("field slot already booked: %w", ErrConflict)
		}
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	// Event publication is best effort: a broker outage must not fail
	// the reservation that is already committed.
	if s.publisher != nil {
		event := map[string]interface{}{
			"booking_id":  booking.ID,
			"user_id":     booking.UserID,
			"field_id":    booking.FieldID,
			"day_of_week": booking.DayOfWeek,
			"start_time":  booking.StartTime,
			"status":      booking.Status,
		}
		if err := s.publisher.PublishBookingCreated(event); err != nil {
			log.Printf("Warning: failed to publish booking created event for booking %d: %v", booking.ID, err)
		}
	}

	return booking, nil
}

// GetBookingByID retrieves a single booking by its ID.
func (s *BookingService) GetBookingByID(id uint) (*models.Booking, error) {
	return s.bookingRepo.GetByID(id)
}

// GetBookingsByUser retrieves all bookings made by a user.
func (s *BookingService) GetBookingsByUser(userID string) ([]models.Booking, error) {
	return s.bookingRepo.GetByUser(userID)
}

// UpdateBookingStatus updates the status of an existing booking.
func (s *BookingService) UpdateBookingStatus(id uint, status string) error {
	validStatuses := map[string]bool{
		models.BookingStatusPending:   true,
		models.BookingStatusConfirmed: true,
		models.BookingStatusCancelled: true,
	}
	if !validStatuses[status] {
		return fmt.Errorf("invalid booking status %q: %w", status, ErrValidation)
	}
	return s.bookingRepo.UpdateStatus(id, status)
}

// DeleteBooking deletes a booking by its ID.
func (s *BookingService) DeleteBooking(id uint) error {
	return s.bookingRepo.Delete(id)
}
