// Package favorites implements per-account favorite hotels. Uniqueness of
// the (account, hotel) pair is checked before insert and additionally
// enforced by a composite unique index, closing the race two concurrent
// requests would otherwise hit.
package favorites

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/staybase/staybase/internal/entities"
)

var (
	ErrMissingFields    = errors.New("userId and hotelId are required")
	ErrAlreadyFavorited = errors.New("hotel already in favorites")
	ErrFavoriteNotFound = errors.New("favorite not found")
)

// Repository defines the favorites data access the service needs.
type Repository interface {
	CreateFavorite(favorite *entities.Favorite) error
	GetFavoriteByID(id uint) (*entities.Favorite, error)
	GetFavoriteByAccountAndHotel(userID uint, hotelID string) (*entities.Favorite, error)
	GetFavoritesForAccount(userID uint) ([]entities.Favorite, error)
	DeleteFavorite(id uint) error
}

// Service handles favoriting and unfavoriting hotels.
type Service struct {
	repo Repository
}

// NewService creates a new favorites service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// AddFavorite persists a favorite unless the (account, hotel) pair already
// exists.
func (s *Service) AddFavorite(favorite *entities.Favorite) error {
	if favorite.UserID == 0 || favorite.HotelID == "" {
		return ErrMissingFields
	}

	_, err := s.repo.GetFavoriteByAccountAndHotel(favorite.UserID, favorite.HotelID)
	if err == nil {
		return ErrAlreadyFavorited
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check existing favorite: %w", err)
	}

	if err := s.repo.CreateFavorite(favorite); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrAlreadyFavorited
		}
		return err
	}

	return nil
}

// RemoveFavorite deletes a favorite by its ID.
func (s *Service) RemoveFavorite(id uint) error {
	err := s.repo.DeleteFavorite(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrFavoriteNotFound
		}
		return err
	}
	return nil
}

// IsFavorited reports whether the account has favorited the hotel, and
// returns the favorite row when it has.
func (s *Service) IsFavorited(userID uint, hotelID string) (bool, *entities.Favorite, error) {
	favorite, err := s.repo.GetFavoriteByAccountAndHotel(userID, hotelID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil, nil
		}
		return false, nil, err
	}
	return true, favorite, nil
}

// ListFavorites returns all favorites for an account, id ascending.
func (s *Service) ListFavorites(userID uint) ([]entities.Favorite, error) {
	return s.repo.GetFavoritesForAccount(userID)
}
