package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/staybase/staybase/internal/accounts"
	"github.com/staybase/staybase/internal/auth"
	"github.com/staybase/staybase/internal/entities"
)

// AccountsService defines the account operations the controller needs.
type AccountsService interface {
	Register(username, email, password string) (*entities.Account, error)
	Login(email, password string) (*entities.Account, error)
	GetAccount(id uint) (*entities.Account, error)
}

type AccountsController struct {
	service AccountsService
	tokens  *auth.TokenIssuer
}

func NewAccountsController(service AccountsService, tokens *auth.TokenIssuer) *AccountsController {
	return &AccountsController{service: service, tokens: tokens}
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// accountResponse is the public view of an account. The password hash never
// leaves the server.
type accountResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

func newAccountResponse(account *entities.Account) accountResponse {
	return accountResponse{
		ID:       account.ID,
		Username: account.Username,
		Email:    account.Email,
	}
}

// Register creates a new account.
// POST /register
func (ac *AccountsController) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	account, err := ac.service.Register(req.Username, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, accounts.ErrUsernameRequired),
			errors.Is(err, accounts.ErrEmailRequired),
			errors.Is(err, accounts.ErrPasswordRequired):
			respondBadRequest(c, "All fields are required")
		case errors.Is(err, accounts.ErrEmailExists):
			respondBadRequest(c, "Email already exists")
		default:
			respondInternalError(c, err, "register")
		}
		return
	}

	c.JSON(http.StatusOK, newAccountResponse(account))
}

// Login verifies credentials and issues a token.
// POST /login
func (ac *AccountsController) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	account, err := ac.service.Login(req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, accounts.ErrEmailRequired),
			errors.Is(err, accounts.ErrPasswordRequired):
			respondBadRequest(c, "Email and password are required")
		case errors.Is(err, accounts.ErrInvalidCredentials):
			respondBadRequest(c, "Invalid email or password")
		default:
			respondInternalError(c, err, "login")
		}
		return
	}

	token, err := ac.tokens.CreateToken(account.ID, account.Username)
	if err != nil {
		respondInternalError(c, err, "issue token")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"user":    newAccountResponse(account),
		"token":   token,
	})
}

// GetAccount returns the public fields of an account.
// GET /user/:id (also mounted at /users/:id for the profile screen)
func (ac *AccountsController) GetAccount(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	account, err := ac.service.GetAccount(id)
	if err != nil {
		if errors.Is(err, accounts.ErrAccountNotFound) {
			respondNotFound(c, "User")
			return
		}
		respondInternalError(c, err, "get account")
		return
	}

	c.JSON(http.StatusOK, newAccountResponse(account))
}

// Me resolves the bearer token to its account.
// GET /me
func (ac *AccountsController) Me(c *gin.Context) {
	account, err := ac.service.GetAccount(auth.GetUserID(c))
	if err != nil {
		if errors.Is(err, accounts.ErrAccountNotFound) {
			respondNotFound(c, "User")
			return
		}
		respondInternalError(c, err, "get current account")
		return
	}

	c.JSON(http.StatusOK, newAccountResponse(account))
}
