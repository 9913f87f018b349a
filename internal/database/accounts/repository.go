// Package accounts provides database operations for account management.
//
// # Usage
//
//	repo := accounts.NewRepository(db)
//	account, err := repo.GetAccountByEmail(email)
package accounts

import (
	"gorm.io/gorm"

	"github.com/staybase/staybase/internal/entities"
)

// Repository handles all account database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new accounts repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateAccount persists a new account. The caller is responsible for
// hashing the password before it gets here.
func (r *Repository) CreateAccount(account *entities.Account) error {
	return r.db.Create(account).Error
}

// GetAccountByID retrieves an account by ID.
func (r *Repository) GetAccountByID(id uint) (*entities.Account, error) {
	var account entities.Account
	err := r.db.First(&account, id).Error
	if err != nil {
		return nil, err
	}
	return &account, nil
}

// GetAccountByEmail retrieves an account by email. Lookup is case-sensitive,
// matching how emails are stored.
func (r *Repository) GetAccountByEmail(email string) (*entities.Account, error) {
	var account entities.Account
	err := r.db.Where("email = ?", email).First(&account).Error
	if err != nil {
		return nil, err
	}
	return &account, nil
}
