// Package favorites provides database operations for favorite hotel
// management.
//
// Hotel IDs come from the client's static catalog and are stored as opaque
// strings; there is no hotel table to reference.
package favorites

import (
	"gorm.io/gorm"

	"github.com/staybase/staybase/internal/entities"
)

// Repository handles all favorites database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new favorites repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateFavorite persists a new favorite and backfills its assigned ID.
func (r *Repository) CreateFavorite(favorite *entities.Favorite) error {
	return r.db.Create(favorite).Error
}

// GetFavoriteByID retrieves a favorite by ID.
func (r *Repository) GetFavoriteByID(id uint) (*entities.Favorite, error) {
	var favorite entities.Favorite
	err := r.db.First(&favorite, id).Error
	if err != nil {
		return nil, err
	}
	return &favorite, nil
}

// GetFavoriteByAccountAndHotel retrieves the favorite for an
// (account, hotel) pair, or gorm.ErrRecordNotFound when the pair is not
// favorited.
func (r *Repository) GetFavoriteByAccountAndHotel(userID uint, hotelID string) (*entities.Favorite, error) {
	var favorite entities.Favorite
	err := r.db.Where("user_id = ? AND hotel_id = ?", userID, hotelID).First(&favorite).Error
	if err != nil {
		return nil, err
	}
	return &favorite, nil
}

// GetFavoritesForAccount returns all favorites for an account, oldest first.
func (r *Repository) GetFavoritesForAccount(userID uint) ([]entities.Favorite, error) {
	favorites := []entities.Favorite{}
	err := r.db.Where("user_id = ?", userID).Order("id ASC").Find(&favorites).Error
	return favorites, err
}

// DeleteFavorite removes a favorite by ID. Returns gorm.ErrRecordNotFound
// when no favorite matches.
func (r *Repository) DeleteFavorite(id uint) error {
	result := r.db.Delete(&entities.Favorite{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
