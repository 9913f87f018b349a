package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/staybase/staybase/internal/entities"
	"github.com/staybase/staybase/internal/favorites"
)

// FavoritesService defines the favorites operations the controller needs.
type FavoritesService interface {
	AddFavorite(favorite *entities.Favorite) error
	RemoveFavorite(id uint) error
	IsFavorited(userID uint, hotelID string) (bool, *entities.Favorite, error)
	ListFavorites(userID uint) ([]entities.Favorite, error)
}

type FavoritesController struct {
	service FavoritesService
}

func NewFavoritesController(service FavoritesService) *FavoritesController {
	return &FavoritesController{service: service}
}

// hotelID accepts both JSON numbers and strings: the client catalog uses
// numeric IDs but the stored form is an opaque string.
type hotelID string

func (h *hotelID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*h = hotelID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*h = hotelID(n.String())
		return nil
	}
	return errors.New("hotelId must be a string or a number")
}

type hotelPayload struct {
	HotelID  hotelID `json:"hotelId"`
	Title    string  `json:"title"`
	City     string  `json:"city"`
	Img      string  `json:"img"`
	Rating   float64 `json:"rating"`
	CheckIn  string  `json:"checkIn"`
	CheckOut string  `json:"checkOut"`
	Guests   int     `json:"guests"`
	Rooms    int     `json:"rooms"`
}

type addFavoriteRequest struct {
	UserID uint         `json:"userId"`
	Hotel  hotelPayload `json:"hotel"`
}

// AddFavorite saves a hotel to an account's favorites.
// POST /favorites
func (fc *FavoritesController) AddFavorite(c *gin.Context) {
	var req addFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	favorite := &entities.Favorite{
		UserID:   req.UserID,
		HotelID:  string(req.Hotel.HotelID),
		Title:    req.Hotel.Title,
		City:     req.Hotel.City,
		Img:      req.Hotel.Img,
		Rating:   req.Hotel.Rating,
		CheckIn:  req.Hotel.CheckIn,
		CheckOut: req.Hotel.CheckOut,
		Guests:   req.Hotel.Guests,
		Rooms:    req.Hotel.Rooms,
	}

	if err := fc.service.AddFavorite(favorite); err != nil {
		switch {
		case errors.Is(err, favorites.ErrMissingFields):
			respondBadRequest(c, "userId and hotelId are required")
		case errors.Is(err, favorites.ErrAlreadyFavorited):
			respondBadRequest(c, "Hotel already in favorites")
		default:
			respondInternalError(c, err, "add favorite")
		}
		return
	}

	c.JSON(http.StatusOK, favorite)
}

// RemoveFavorite deletes a favorite by its ID.
// DELETE /favorites/:id
func (fc *FavoritesController) RemoveFavorite(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := fc.service.RemoveFavorite(id); err != nil {
		if errors.Is(err, favorites.ErrFavoriteNotFound) {
			respondNotFound(c, "Favorite")
			return
		}
		respondInternalError(c, err, "remove favorite")
		return
	}

	respondSuccess(c, "Favorite removed")
}

// CheckFavorite reports whether an account has favorited a hotel; the
// client uses it to render the favorite-toggle state.
// GET /favorites/:userId/:hotelId
func (fc *FavoritesController) CheckFavorite(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}
	hotel := c.Param("hotelId")

	isFavorite, favorite, err := fc.service.IsFavorited(userID, hotel)
	if err != nil {
		respondInternalError(c, err, "check favorite")
		return
	}

	if !isFavorite {
		c.JSON(http.StatusOK, gin.H{"isFavorite": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"isFavorite": true, "favorite": favorite})
}

// ListFavorites returns all favorites for an account.
// GET /favorites/:userId
func (fc *FavoritesController) ListFavorites(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}

	list, err := fc.service.ListFavorites(userID)
	if err != nil {
		respondInternalError(c, err, "list favorites")
		return
	}

	c.JSON(http.StatusOK, list)
}
