package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/staybase/staybase/internal/accounts"
	"github.com/staybase/staybase/internal/auth"
	"github.com/staybase/staybase/internal/bookings"
	"github.com/staybase/staybase/internal/database"
	accountsrepo "github.com/staybase/staybase/internal/database/accounts"
	bookingsrepo "github.com/staybase/staybase/internal/database/bookings"
	favoritesrepo "github.com/staybase/staybase/internal/database/favorites"
	"github.com/staybase/staybase/internal/favorites"
)

// testEnv wires the full router against a throwaway database, the same
// shape the entrypoint builds in production.
type testEnv struct {
	db     *database.Database
	router *gin.Engine
}

func setupTestEnv(t *testing.T) (*testEnv, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dbPath := "./test_http_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"
	db, err := database.NewDatabase(dbPath)
	require.NoError(t, err)

	accountsRepo := accountsrepo.NewRepository(db.DB)
	tokenIssuer := auth.NewTokenIssuer("test-secret", time.Hour)

	router := NewRouter(RouterConfig{
		Database:    db,
		Accounts:    accounts.NewService(accountsRepo, bcrypt.MinCost),
		Bookings:    bookings.NewService(bookingsrepo.NewRepository(db.DB), accountsRepo),
		Favorites:   favorites.NewService(favoritesrepo.NewRepository(db.DB)),
		TokenIssuer: tokenIssuer,
		Version:     "test",
	})

	env := &testEnv{db: db, router: router}
	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}
	return env, cleanup
}

// do issues a request against the router and returns the recorder.
func (e *testEnv) do(t *testing.T, method, path string, body any, headers ...string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Buffer
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(payload)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// decode unmarshals a recorded JSON body into out.
func decode(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

// registerAccount creates an account through the API and returns its ID.
func (e *testEnv) registerAccount(t *testing.T, username, email, password string) uint {
	t.Helper()

	w := e.do(t, "POST", "/register", gin.H{
		"username": username,
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		ID uint `json:"id"`
	}
	decode(t, w, &resp)
	require.NotZero(t, resp.ID)
	return resp.ID
}
