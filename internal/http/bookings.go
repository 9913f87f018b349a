package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/staybase/staybase/internal/bookings"
	"github.com/staybase/staybase/internal/entities"
)

// BookingsService defines the booking operations the controller needs.
type BookingsService interface {
	CreateBooking(booking *entities.Booking) error
	ListBookings(userID uint) ([]entities.Booking, error)
	CancelBooking(id uint) (*entities.Booking, error)
}

type BookingsController struct {
	service BookingsService
}

func NewBookingsController(service BookingsService) *BookingsController {
	return &BookingsController{service: service}
}

type createBookingRequest struct {
	UserID       uint    `json:"userId"`
	PropertyName string  `json:"propertyName"`
	Location     string  `json:"location"`
	Price        float64 `json:"price"`
	StartDate    string  `json:"startDate"`
	EndDate      string  `json:"endDate"`
	CardNumber   string  `json:"cardNumber"`
	Status       string  `json:"status"`
}

// CreateBooking persists a booking for an existing account.
// POST /booking
func (bc *BookingsController) CreateBooking(c *gin.Context) {
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	booking := &entities.Booking{
		UserID:       req.UserID,
		PropertyName: req.PropertyName,
		Location:     req.Location,
		Price:        req.Price,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		CardNumber:   req.CardNumber,
		Status:       entities.BookingStatus(req.Status),
	}

	if err := bc.service.CreateBooking(booking); err != nil {
		switch {
		case errors.Is(err, bookings.ErrMissingFields):
			respondBadRequest(c, "All fields are required")
		case errors.Is(err, bookings.ErrAccountNotFound):
			respondBadRequest(c, "User not found")
		default:
			respondInternalError(c, err, "create booking")
		}
		return
	}

	c.JSON(http.StatusOK, booking)
}

// ListBookings returns all bookings for an account.
// GET /bookings/:userId
func (bc *BookingsController) ListBookings(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}

	list, err := bc.service.ListBookings(userID)
	if err != nil {
		respondInternalError(c, err, "list bookings")
		return
	}

	c.JSON(http.StatusOK, list)
}

type updateBookingRequest struct {
	Status string `json:"status"`
}

// CancelBooking transitions a booking to cancelled. The client only ever
// sends {"status": "cancelled"}; any other requested status is rejected.
// PATCH /booking/:id
func (bc *BookingsController) CancelBooking(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req updateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}
	if req.Status != string(entities.BookingStatusCancelled) {
		respondBadRequest(c, "only cancellation is supported")
		return
	}

	booking, err := bc.service.CancelBooking(id)
	if err != nil {
		if errors.Is(err, bookings.ErrBookingNotFound) {
			respondNotFound(c, "Booking")
			return
		}
		respondInternalError(c, err, "cancel booking")
		return
	}

	c.JSON(http.StatusOK, booking)
}
