package entities

import (
	"time"
)

// BookingStatus is the lifecycle state of a booking. The client anticipates
// a "completed" state but no server-side transition produces it, so the
// persisted state space stays {booked, cancelled}.
type BookingStatus string

const (
	BookingStatusBooked    BookingStatus = "booked"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Account is a registered end user of the booking application.
// The password is stored only as a bcrypt hash and never serialized.
type Account struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"size:100" json:"username"`
	Email        string    `gorm:"uniqueIndex;size:255" json:"email"`
	PasswordHash string    `gorm:"size:100" json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Booking links an account to a property stay. Dates are stored as the
// calendar-date strings the client sends; the schema does not enforce that
// the end date follows the start date.
type Booking struct {
	ID           uint          `gorm:"primaryKey" json:"id"`
	UserID       uint          `gorm:"index" json:"userId"`
	PropertyName string        `gorm:"size:256" json:"propertyName"`
	Location     string        `gorm:"size:256" json:"location"`
	Price        float64       `json:"price"`
	StartDate    string        `gorm:"size:32" json:"startDate"`
	EndDate      string        `gorm:"size:32" json:"endDate"`
	CardNumber   string        `gorm:"size:64" json:"cardNumber"`
	Status       BookingStatus `gorm:"size:20;default:'booked'" json:"status"`
	Reference    string        `gorm:"size:64" json:"reference"` // receipt reference shown on the e-receipt screen
	Account      Account       `gorm:"foreignKey:UserID" json:"-"`
	CreatedAt    time.Time     `json:"createdAt"`
	UpdatedAt    time.Time     `json:"updatedAt"`
}

// Favorite is a saved association between an account and a hotel from the
// client's static catalog. There is no hotel table, so the display fields
// are denormalized copies captured at favorite-time.
type Favorite struct {
	ID      uint    `gorm:"primaryKey" json:"id"`
	UserID  uint    `gorm:"index;uniqueIndex:idx_favorites_user_hotel" json:"userId"`
	HotelID string  `gorm:"size:64;uniqueIndex:idx_favorites_user_hotel" json:"hotelId"`
	Title   string  `gorm:"size:256" json:"title"`
	City    string  `gorm:"size:256" json:"city"`
	Img     string  `gorm:"size:2048" json:"img"`
	Rating  float64 `json:"rating"`

	// Tentative stay details the client carries along when favoriting.
	CheckIn  string `gorm:"size:32" json:"checkIn,omitempty"`
	CheckOut string `gorm:"size:32" json:"checkOut,omitempty"`
	Guests   int    `json:"guests,omitempty"`
	Rooms    int    `json:"rooms,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

func (Account) TableName() string {
	return "accounts"
}

func (Booking) TableName() string {
	return "bookings"
}

func (Favorite) TableName() string {
	return "favorites"
}
