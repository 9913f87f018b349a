// Package accounts implements registration, login and profile lookup on top
// of the accounts repository.
package accounts

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/staybase/staybase/internal/auth"
	"github.com/staybase/staybase/internal/entities"
)

var (
	ErrUsernameRequired = errors.New("username is required")
	ErrEmailRequired    = errors.New("email is required")
	ErrPasswordRequired = errors.New("password is required")
	ErrEmailExists      = errors.New("email already exists")
	// ErrInvalidCredentials deliberately covers both unknown email and wrong
	// password so login failures never reveal whether an email is registered.
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountNotFound    = errors.New("account not found")
)

// Repository defines the account data access the service needs.
type Repository interface {
	CreateAccount(account *entities.Account) error
	GetAccountByID(id uint) (*entities.Account, error)
	GetAccountByEmail(email string) (*entities.Account, error)
}

// Service handles account registration and authentication.
type Service struct {
	repo       Repository
	bcryptCost int
}

// NewService creates a new accounts service.
func NewService(repo Repository, bcryptCost int) *Service {
	return &Service{repo: repo, bcryptCost: bcryptCost}
}

// Register creates a new account with a bcrypt-hashed password. The
// plaintext password is never stored or logged.
func (s *Service) Register(username, email, password string) (*entities.Account, error) {
	if username == "" {
		return nil, ErrUsernameRequired
	}
	if email == "" {
		return nil, ErrEmailRequired
	}
	if password == "" {
		return nil, ErrPasswordRequired
	}

	passwordHash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	account := &entities.Account{
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
	}

	if err := s.repo.CreateAccount(account); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailExists
		}
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	return account, nil
}

// Login verifies credentials and returns the matching account.
func (s *Service) Login(email, password string) (*entities.Account, error) {
	if email == "" {
		return nil, ErrEmailRequired
	}
	if password == "" {
		return nil, ErrPasswordRequired
	}

	account, err := s.repo.GetAccountByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find account: %w", err)
	}

	if err := auth.CheckPassword(password, account.PasswordHash); err != nil {
		if errors.Is(err, auth.ErrInvalidPassword) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	return account, nil
}

// GetAccount retrieves an account by its ID.
func (s *Service) GetAccount(id uint) (*entities.Account, error) {
	account, err := s.repo.GetAccountByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return account, nil
}
