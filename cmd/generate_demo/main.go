// Command generate_demo creates a demo database with a sample account,
// bookings and favorites, useful for pointing the mobile client at a
// populated backend.
// Usage: go run cmd/generate_demo/main.go [-db path/to/demo.db]
package main

import (
	"flag"
	"log"
	"os"

	"github.com/staybase/staybase/internal/accounts"
	"github.com/staybase/staybase/internal/bookings"
	"github.com/staybase/staybase/internal/database"
	accountsrepo "github.com/staybase/staybase/internal/database/accounts"
	bookingsrepo "github.com/staybase/staybase/internal/database/bookings"
	favoritesrepo "github.com/staybase/staybase/internal/database/favorites"
	"github.com/staybase/staybase/internal/entities"
	"github.com/staybase/staybase/internal/favorites"
)

const defaultDemoDatabasePath = "./demo/demo.db"

func main() {
	dbPath := flag.String("db", defaultDemoDatabasePath, "path to the demo database file")
	flag.Parse()

	log.Printf("Generating demo database at %s...", *dbPath)

	// Delete existing demo database to start fresh
	if err := os.Remove(*dbPath); err != nil && !os.IsNotExist(err) {
		log.Fatalf("Failed to remove existing demo database: %v", err)
	}

	db, err := database.NewDatabase(*dbPath)
	if err != nil {
		log.Fatalf("Failed to create database: %v", err)
	}
	defer db.Close()

	accountsRepo := accountsrepo.NewRepository(db.DB)
	accountsService := accounts.NewService(accountsRepo, 10)
	bookingsService := bookings.NewService(bookingsrepo.NewRepository(db.DB), accountsRepo)
	favoritesService := favorites.NewService(favoritesrepo.NewRepository(db.DB))

	demoUser, err := accountsService.Register("demo", "demo@example.com", "demo1234")
	if err != nil {
		log.Fatalf("Failed to create demo account: %v", err)
	}
	log.Printf("Created account: %s <%s> (log in with password 'demo1234')", demoUser.Username, demoUser.Email)

	for _, booking := range demoBookings(demoUser.ID) {
		b := booking
		if err := bookingsService.CreateBooking(&b); err != nil {
			log.Printf("Failed to create booking %s: %v", b.PropertyName, err)
			continue
		}
		log.Printf("Created booking: %s, %s (%s)", b.PropertyName, b.Location, b.Status)
	}

	for _, favorite := range demoFavorites(demoUser.ID) {
		f := favorite
		if err := favoritesService.AddFavorite(&f); err != nil {
			log.Printf("Failed to add favorite %s: %v", f.Title, err)
			continue
		}
		log.Printf("Added favorite: %s, %s", f.Title, f.City)
	}

	log.Println("Demo database generated successfully!")
}

func demoBookings(userID uint) []entities.Booking {
	return []entities.Booking{
		{
			UserID:       userID,
			PropertyName: "Elysium Gardens",
			Location:     "Paris",
			Price:        1500,
			StartDate:    "2025-07-20",
			EndDate:      "2025-07-26",
			CardNumber:   "tok_demo_1",
			Status:       entities.BookingStatusBooked,
		},
		{
			UserID:       userID,
			PropertyName: "Harbor Lights Hotel",
			Location:     "Lisbon",
			Price:        640,
			StartDate:    "2025-09-03",
			EndDate:      "2025-09-07",
			CardNumber:   "tok_demo_2",
			Status:       entities.BookingStatusBooked,
		},
		{
			UserID:       userID,
			PropertyName: "Alpenrose Lodge",
			Location:     "Innsbruck",
			Price:        980,
			StartDate:    "2025-01-10",
			EndDate:      "2025-01-15",
			CardNumber:   "tok_demo_3",
			Status:       entities.BookingStatusCancelled,
		},
	}
}

func demoFavorites(userID uint) []entities.Favorite {
	return []entities.Favorite{
		{
			UserID:  userID,
			HotelID: "1",
			Title:   "Elysium Gardens",
			City:    "Paris",
			Img:     "https://images.example.com/hotels/elysium-gardens.jpg",
			Rating:  4.8,
		},
		{
			UserID:  userID,
			HotelID: "4",
			Title:   "Harbor Lights Hotel",
			City:    "Lisbon",
			Img:     "https://images.example.com/hotels/harbor-lights.jpg",
			Rating:  4.5,
		},
		{
			UserID:   userID,
			HotelID:  "9",
			Title:    "Sakura Stay",
			City:     "Kyoto",
			Img:      "https://images.example.com/hotels/sakura-stay.jpg",
			Rating:   4.9,
			CheckIn:  "2025-11-02",
			CheckOut: "2025-11-08",
			Guests:   2,
			Rooms:    1,
		},
	}
}
