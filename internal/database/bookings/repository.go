// Package bookings provides database operations for booking management.
package bookings

import (
	"gorm.io/gorm"

	"github.com/staybase/staybase/internal/entities"
)

// Repository handles all booking database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new bookings repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateBooking persists a new booking and backfills its assigned ID.
func (r *Repository) CreateBooking(booking *entities.Booking) error {
	return r.db.Create(booking).Error
}

// GetBookingByID retrieves a booking by ID.
func (r *Repository) GetBookingByID(id uint) (*entities.Booking, error) {
	var booking entities.Booking
	err := r.db.First(&booking, id).Error
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// GetBookingsForAccount returns all bookings for an account, oldest first.
// Returns an empty slice, not an error, when the account has none.
func (r *Repository) GetBookingsForAccount(userID uint) ([]entities.Booking, error) {
	bookings := []entities.Booking{}
	err := r.db.Where("user_id = ?", userID).Order("id ASC").Find(&bookings).Error
	return bookings, err
}

// UpdateBookingStatus sets the status of an existing booking and returns the
// updated row. Returns gorm.ErrRecordNotFound when no booking matches.
func (r *Repository) UpdateBookingStatus(id uint, status entities.BookingStatus) (*entities.Booking, error) {
	result := r.db.Model(&entities.Booking{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetBookingByID(id)
}
