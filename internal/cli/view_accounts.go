package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/staybase/staybase/internal/config"
	"github.com/staybase/staybase/internal/database"
	"github.com/staybase/staybase/internal/entities"
)

// ViewAccountsCommand prints the accounts table. Password hashes are never
// printed.
type ViewAccountsCommand struct {
	DatabasePath string
}

// NewViewAccountsCommand creates a new ViewAccountsCommand
func NewViewAccountsCommand() *ViewAccountsCommand {
	return &ViewAccountsCommand{}
}

// ParseFlags parses command line flags
func (cmd *ViewAccountsCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("view-accounts", flag.ExitOnError)

	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the database file")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s view-accounts [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Print all registered accounts.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	return fs.Parse(args)
}

// Run executes the command
func (cmd *ViewAccountsCommand) Run() error {
	db, err := database.NewDatabase(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	var rows []entities.Account
	if err := db.DB.Order("id ASC").Find(&rows).Error; err != nil {
		return fmt.Errorf("failed to fetch accounts: %w", err)
	}

	if len(rows) == 0 {
		fmt.Println("No accounts found.")
		return nil
	}

	fmt.Printf("%-5s %-20s %-30s %-25s\n", "ID", "USERNAME", "EMAIL", "CREATED")
	for _, a := range rows {
		fmt.Printf("%-5d %-20s %-30s %-25s\n", a.ID, a.Username, a.Email, a.CreatedAt.Format("2006-01-02 15:04:05"))
	}

	return nil
}
