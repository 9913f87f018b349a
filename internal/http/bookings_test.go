package http

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bookingPayload(userID uint) gin.H {
	return gin.H{
		"userId":       userID,
		"propertyName": "Elysium Gardens",
		"location":     "Paris",
		"price":        1500,
		"startDate":    "2025-07-20",
		"endDate":      "2025-07-26",
		"cardNumber":   "tok_123",
		"status":       "booked",
	}
}

func TestBookingsController_CreateBooking(t *testing.T) {
	t.Run("creates booking with a receipt reference", func(t *testing.T) {
		env, cleanup := setupTestEnv(t)
		defer cleanup()

		id := env.registerAccount(t, "alice", "alice@x.com", "pw123")

		w := env.do(t, "POST", "/booking", bookingPayload(id))

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var resp struct {
			ID           uint    `json:"id"`
			UserID       uint    `json:"userId"`
			PropertyName string  `json:"propertyName"`
			Location     string  `json:"location"`
			Price        float64 `json:"price"`
			Status       string  `json:"status"`
			Reference    string  `json:"reference"`
		}
		decode(t, w, &resp)
		assert.Equal(t, uint(1), resp.ID)
		assert.Equal(t, id, resp.UserID)
		assert.Equal(t, "Elysium Gardens", resp.PropertyName)
		assert.Equal(t, "Paris", resp.Location)
		assert.Equal(t, float64(1500), resp.Price)
		assert.Equal(t, "booked", resp.Status)
		assert.NotEmpty(t, resp.Reference)
	})

	t.Run("rejects missing fields", func(t *testing.T) {
		env, cleanup := setupTestEnv(t)
		defer cleanup()

		id := env.registerAccount(t, "alice", "alice@x.com", "pw123")

		payload := bookingPayload(id)
		delete(payload, "cardNumber")

		w := env.do(t, "POST", "/booking", payload)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error": "All fields are required"}`, w.Body.String())
	})

	t.Run("rejects unknown user", func(t *testing.T) {
		env, cleanup := setupTestEnv(t)
		defer cleanup()

		w := env.do(t, "POST", "/booking", bookingPayload(42))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error": "User not found"}`, w.Body.String())
	})
}

func TestBookingsController_ListBookings(t *testing.T) {
	t.Run("returns the account's bookings", func(t *testing.T) {
		env, cleanup := setupTestEnv(t)
		defer cleanup()

		id := env.registerAccount(t, "alice", "alice@x.com", "pw123")
		require.Equal(t, http.StatusOK, env.do(t, "POST", "/booking", bookingPayload(id)).Code)

		w := env.do(t, "GET", "/bookings/1", nil)

		require.Equal(t, http.StatusOK, w.Code)

		var list []map[string]any
		decode(t, w, &list)
		require.Len(t, list, 1)
		assert.Equal(t, "Elysium Gardens", list[0]["propertyName"])
		assert.Equal(t, "booked", list[0]["status"])
	})

	t.Run("empty JSON array when the account has none", func(t *testing.T) {
		env, cleanup := setupTestEnv(t)
		defer cleanup()

		env.registerAccount(t, "alice", "alice@x.com", "pw123")

		w := env.do(t, "GET", "/bookings/1", nil)

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})
}

func TestBookingsController_CancelBooking(t *testing.T) {
	t.Run("cancels a booking", func(t *testing.T) {
		env, cleanup := setupTestEnv(t)
		defer cleanup()

		id := env.registerAccount(t, "alice", "alice@x.com", "pw123")
		require.Equal(t, http.StatusOK, env.do(t, "POST", "/booking", bookingPayload(id)).Code)

		w := env.do(t, "PATCH", "/booking/1", gin.H{"status": "cancelled"})

		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			ID     uint   `json:"id"`
			Status string `json:"status"`
		}
		decode(t, w, &resp)
		assert.Equal(t, uint(1), resp.ID)
		assert.Equal(t, "cancelled", resp.Status)
	})

	t.Run("cancelling twice stays cancelled", func(t *testing.T) {
		env, cleanup := setupTestEnv(t)
		defer cleanup()

		id := env.registerAccount(t, "alice", "alice@x.com", "pw123")
		require.Equal(t, http.StatusOK, env.do(t, "POST", "/booking", bookingPayload(id)).Code)

		require.Equal(t, http.StatusOK, env.do(t, "PATCH", "/booking/1", gin.H{"status": "cancelled"}).Code)
		w := env.do(t, "PATCH", "/booking/1", gin.H{"status": "cancelled"})

		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Status string `json:"status"`
		}
		decode(t, w, &resp)
		assert.Equal(t, "cancelled", resp.Status)
	})

	t.Run("rejects statuses other than cancelled", func(t *testing.T) {
		env, cleanup := setupTestEnv(t)
		defer cleanup()

		id := env.registerAccount(t, "alice", "alice@x.com", "pw123")
		require.Equal(t, http.StatusOK, env.do(t, "POST", "/booking", bookingPayload(id)).Code)

		w := env.do(t, "PATCH", "/booking/1", gin.H{"status": "confirmed"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("404 for unknown booking", func(t *testing.T) {
		env, cleanup := setupTestEnv(t)
		defer cleanup()

		w := env.do(t, "PATCH", "/booking/999", gin.H{"status": "cancelled"})

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error": "Booking not found"}`, w.Body.String())
	})
}
