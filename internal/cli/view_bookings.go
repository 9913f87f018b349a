package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/staybase/staybase/internal/config"
	"github.com/staybase/staybase/internal/database"
	"github.com/staybase/staybase/internal/database/bookings"
	"github.com/staybase/staybase/internal/entities"
)

// ViewBookingsCommand prints the bookings table, a direct replacement for
// poking at the SQLite file by hand.
type ViewBookingsCommand struct {
	DatabasePath string
	UserID       uint
}

// NewViewBookingsCommand creates a new ViewBookingsCommand
func NewViewBookingsCommand() *ViewBookingsCommand {
	return &ViewBookingsCommand{}
}

// ParseFlags parses command line flags
func (cmd *ViewBookingsCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("view-bookings", flag.ExitOnError)

	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the database file")
	var userID uint64
	fs.Uint64Var(&userID, "user", 0, "Only show bookings for this account ID (0 = all)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s view-bookings [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Print all bookings stored in the database.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	cmd.UserID = uint(userID)

	return nil
}

// Run executes the command
func (cmd *ViewBookingsCommand) Run() error {
	db, err := database.NewDatabase(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	repo := bookings.NewRepository(db.DB)

	var rows []entities.Booking
	if cmd.UserID > 0 {
		rows, err = repo.GetBookingsForAccount(cmd.UserID)
	} else {
		err = db.DB.Order("id ASC").Find(&rows).Error
	}
	if err != nil {
		return fmt.Errorf("failed to fetch bookings: %w", err)
	}

	if len(rows) == 0 {
		fmt.Println("No bookings found.")
		return nil
	}

	fmt.Printf("%-5s %-7s %-30s %-20s %10s  %-12s %-12s %-10s\n",
		"ID", "USER", "PROPERTY", "LOCATION", "PRICE", "START", "END", "STATUS")
	for _, b := range rows {
		fmt.Printf("%-5d %-7d %-30s %-20s %10.2f  %-12s %-12s %-10s\n",
			b.ID, b.UserID, b.PropertyName, b.Location, b.Price, b.StartDate, b.EndDate, b.Status)
	}

	return nil
}
