// Package bookings implements the booking lifecycle: creation with an
// account existence check, per-account listing, and cancellation.
package bookings

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/staybase/staybase/internal/entities"
)

var (
	ErrMissingFields   = errors.New("all fields are required")
	ErrAccountNotFound = errors.New("user not found")
	ErrBookingNotFound = errors.New("booking not found")
)

// Repository defines the booking data access the service needs.
type Repository interface {
	CreateBooking(booking *entities.Booking) error
	GetBookingByID(id uint) (*entities.Booking, error)
	GetBookingsForAccount(userID uint) ([]entities.Booking, error)
	UpdateBookingStatus(id uint, status entities.BookingStatus) (*entities.Booking, error)
}

// AccountGetter resolves account IDs to accounts; used to validate the
// booking's owner before insert.
type AccountGetter interface {
	GetAccountByID(id uint) (*entities.Account, error)
}

// Service handles booking creation and status transitions.
type Service struct {
	repo     Repository
	accounts AccountGetter
}

// NewService creates a new bookings service.
func NewService(repo Repository, accounts AccountGetter) *Service {
	return &Service{repo: repo, accounts: accounts}
}

// CreateBooking validates and persists a booking. The owning account must
// exist; nothing is persisted when it does not. A receipt reference is
// assigned on creation.
func (s *Service) CreateBooking(booking *entities.Booking) error {
	if booking.UserID == 0 ||
		booking.PropertyName == "" ||
		booking.Location == "" ||
		booking.Price == 0 ||
		booking.StartDate == "" ||
		booking.EndDate == "" ||
		booking.CardNumber == "" ||
		booking.Status == "" {
		return ErrMissingFields
	}

	if _, err := s.accounts.GetAccountByID(booking.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAccountNotFound
		}
		return fmt.Errorf("failed to verify account: %w", err)
	}

	booking.Reference = uuid.NewString()

	return s.repo.CreateBooking(booking)
}

// ListBookings returns all bookings for an account, id ascending. An account
// with no bookings yields an empty slice.
func (s *Service) ListBookings(userID uint) ([]entities.Booking, error) {
	return s.repo.GetBookingsForAccount(userID)
}

// CancelBooking transitions a booking to cancelled and returns the updated
// row. Cancelling an already-cancelled booking succeeds and rewrites the
// same terminal value.
func (s *Service) CancelBooking(id uint) (*entities.Booking, error) {
	booking, err := s.repo.UpdateBookingStatus(id, entities.BookingStatusCancelled)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return booking, nil
}
