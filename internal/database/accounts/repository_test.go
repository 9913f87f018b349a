package accounts

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/staybase/staybase/internal/entities"
)

func setupTestDB(t *testing.T) (*Repository, func()) {
	dbPath := "./test_accounts_" + t.Name() + ".db"

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	err = db.AutoMigrate(&entities.Account{})
	require.NoError(t, err)

	repo := NewRepository(db)

	cleanup := func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
		os.Remove(dbPath)
	}

	return repo, cleanup
}

func TestRepository_CreateAccount(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	account := &entities.Account{
		Username:     "alice",
		Email:        "alice@x.com",
		PasswordHash: "$2a$10$fakehash",
	}
	err := repo.CreateAccount(account)

	require.NoError(t, err)
	assert.NotZero(t, account.ID)
}

func TestRepository_CreateAccount_DuplicateEmail(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	first := &entities.Account{Username: "alice", Email: "alice@x.com", PasswordHash: "h1"}
	require.NoError(t, repo.CreateAccount(first))

	second := &entities.Account{Username: "other", Email: "alice@x.com", PasswordHash: "h2"}
	err := repo.CreateAccount(second)

	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	// First account is unaffected
	got, err := repo.GetAccountByEmail("alice@x.com")
	require.NoError(t, err)
	assert.Equal(t, first.ID, got.ID)
	assert.Equal(t, "alice", got.Username)
}

func TestRepository_GetAccountByID(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	account := &entities.Account{Username: "alice", Email: "alice@x.com", PasswordHash: "h"}
	require.NoError(t, repo.CreateAccount(account))

	got, err := repo.GetAccountByID(account.ID)

	require.NoError(t, err)
	assert.Equal(t, "alice", got.Username)
	assert.Equal(t, "alice@x.com", got.Email)
}

func TestRepository_GetAccountByID_NotFound(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := repo.GetAccountByID(999)

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepository_GetAccountByEmail(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	account := &entities.Account{Username: "alice", Email: "alice@x.com", PasswordHash: "h"}
	require.NoError(t, repo.CreateAccount(account))

	got, err := repo.GetAccountByEmail("alice@x.com")

	require.NoError(t, err)
	assert.Equal(t, account.ID, got.ID)
}

func TestRepository_GetAccountByEmail_CaseSensitive(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	account := &entities.Account{Username: "alice", Email: "Alice@X.com", PasswordHash: "h"}
	require.NoError(t, repo.CreateAccount(account))

	_, err := repo.GetAccountByEmail("alice@x.com")

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
