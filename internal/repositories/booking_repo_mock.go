package repositories

import (
	"fmt"
	"sync"
	"time"

	"bolamarcada/internal/models"
)

// MockBookingRepository is an in-memory implementation of BookingRepository.
// Slot uniqueness is enforced the same way the store does it.
type MockBookingRepository struct {
	mu       sync.Mutex
	bookings map[uint]*models.Booking
	nextID   uint
}

// NewMockBookingRepository creates a new in-memory booking repository.
func NewMockBookingRepository() *MockBookingRepository {
	return &MockBookingRepository{
		bookings: make(map[uint]*models.Booking),
		nextID:   1,
	}
}

func (m *MockBookingRepository) Create(booking *models.Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.bookings {
		if existing.FieldID == booking.FieldID &&
			existing.DayOfWeek == booking.DayOfWeek &&
			existing.StartTime.Equal(booking.StartTime) {
			return fmt.Errorf("field slot already booked: %w", ErrDuplicate)
		}
	}
	booking.ID = m.nextID
	m.nextID++
	if booking.Status == "" {
		booking.Status = models.BookingStatusPending
	}
	cp := *booking
	m.bookings[booking.ID] = &cp
	return nil
}

func (m *MockBookingRepository) GetByID(id uint) (*models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	b, ok := m.bookings[id]
	if !ok {
		return nil, fmt.Errorf("booking with ID %d: %w", id, ErrNotFound)
	}
	cp := *b
	return &cp, nil
}

func (m *MockBookingRepository) GetByUser(userID string) ([]models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []models.Booking
	for _, b := range m.bookings {
		if b.UserID == userID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (m *MockBookingRepository) GetBySlot(fieldID uint, dayOfWeek int, startTime time.Time) (*models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, b := range m.bookings {
		if b.FieldID == fieldID && b.DayOfWeek == dayOfWeek && b.StartTime.Equal(startTime) {
			cp := *b
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("booking for field %d slot: %w", fieldID, ErrNotFound)
}

func (m *MockBookingRepository) UpdateStatus(id uint, status string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	b, ok := m.bookings[id]
	if !ok {
		return fmt.Errorf("booking with ID %d: %w", id, ErrNotFound)
	}
	b.Status = status
	return nil
}

func (m *MockBookingRepository) Delete(id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.bookings[id]; !ok {
		return fmt.Errorf("booking with ID %d: %w", id, ErrNotFound)
	}
	delete(m.bookings, id)
	return nil
}
