package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tls-123321/Event-Manager/internal/domain"
	"github.com/tls-123321/Event-Manager/internal/service/ports/mocks"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *mocks.MockSessionStore) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	sess := mocks.NewMockSessionStore(t)
	return NewClient(srv.URL, 5*time.Second, sess, newTestLogger(t)), sess
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func TestClient_Login_Success(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/profile/login/", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "alice@example.com", body["email"])
		assert.Equal(t, "secret", body["password"])

		writeJSON(t, w, http.StatusOK, map[string]string{
			"access":  "access-token",
			"refresh": "refresh-token",
		})
	})

	tokens, err := client.Login(context.Background(), "alice@example.com", "secret")

	require.NoError(t, err)
	assert.Equal(t, "access-token", tokens.Access)
	assert.Equal(t, "refresh-token", tokens.Refresh)
}

func TestClient_Login_RejectedStatus(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnauthorized, map[string]string{"detail": "Invalid credentials"})
	})

	_, err := client.Login(context.Background(), "alice@example.com", "wrong")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Contains(t, err.Error(), "Invalid credentials")
}

func TestClient_Login_OKWithoutTokens(t *testing.T) {
	// The server may answer 200 with a detail payload instead of tokens.
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]string{"detail": "Account disabled"})
	})

	_, err := client.Login(context.Background(), "alice@example.com", "secret")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Contains(t, err.Error(), "Account disabled")
}

func TestClient_Login_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // refused connection

	sess := mocks.NewMockSessionStore(t)
	client := NewClient(srv.URL, time.Second, sess, newTestLogger(t))

	_, err := client.Login(context.Background(), "alice@example.com", "secret")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTransport)
}

func TestClient_Register_Success(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/profile/register/", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "alice", body["username"])

		writeJSON(t, w, http.StatusCreated, map[string]string{"username": "alice"})
	})

	err := client.Register(context.Background(), "alice", "alice@example.com", "secret")

	require.NoError(t, err)
}

func TestClient_Register_Failure(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusBadRequest, map[string]string{})
	})

	err := client.Register(context.Background(), "alice", "alice@example.com", "secret")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Contains(t, err.Error(), "registration failed")
}

func TestClient_Logout_SendsAuthHeaderAndRefresh(t *testing.T) {
	client, sess := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/profile/logout/", r.URL.Path)
		assert.Equal(t, "Bearer access-token", r.Header.Get("Authorization"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "refresh-token", body["refresh"])

		writeJSON(t, w, http.StatusResetContent, map[string]string{"detail": "Logout successful"})
	})
	sess.EXPECT().AccessToken().Return("access-token")
	sess.EXPECT().RefreshToken().Return("refresh-token")

	err := client.Logout(context.Background())

	require.NoError(t, err)
}

func TestClient_Logout_ServerRejects(t *testing.T) {
	client, sess := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusBadRequest, map[string]string{"detail": "Invalid or expired token"})
	})
	sess.EXPECT().AccessToken().Return("access-token")
	sess.EXPECT().RefreshToken().Return("refresh-token")

	err := client.Logout(context.Background())

	require.Error(t, err)
}

func TestClient_ListEvents_Success(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/events/", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))

		writeJSON(t, w, http.StatusOK, []map[string]any{
			{
				"id":          1,
				"title":       "Jazz Night",
				"description": "Live jazz downtown",
				"startDate":   "2026-10-01T19:00:00Z",
				"endDate":     "2026-10-01T23:00:00Z",
			},
			{
				"id":            2,
				"title":         "Art Fair",
				"description":   "",
				"startDate":     "2026-11-05T10:00:00Z",
				"endDate":       "2026-11-07T18:00:00Z",
				"thumbnail_url": "http://example.com/media/fair.jpeg",
			},
		})
	})

	events, err := client.ListEvents(context.Background())

	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, int64(1), events[0].ID)
	assert.Equal(t, "Jazz Night", events[0].Title)
	assert.Equal(t, time.Date(2026, 10, 1, 19, 0, 0, 0, time.UTC), events[0].StartDate)
	assert.Equal(t, "http://example.com/media/fair.jpeg", events[1].ThumbnailURL)
}

func TestClient_ListEvents_ServerError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.ListEvents(context.Background())

	require.Error(t, err)
}

func TestClient_GetEvent_Success(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/events/7/", r.URL.Path)
		writeJSON(t, w, http.StatusOK, map[string]any{
			"id":        7,
			"title":     "Jazz Night",
			"startDate": "2026-10-01T19:00:00Z",
			"endDate":   "2026-10-01T23:00:00Z",
		})
	})

	event, err := client.GetEvent(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, int64(7), event.ID)
	assert.Equal(t, "Jazz Night", event.Title)
}

func TestClient_GetEvent_NotFound(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusNotFound, map[string]string{"detail": "Not found."})
	})

	_, err := client.GetEvent(context.Background(), 404)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestClient_CurrentUser_Success(t *testing.T) {
	client, sess := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/profile/me/", r.URL.Path)
		assert.Equal(t, "Bearer access-token", r.Header.Get("Authorization"))
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))

		writeJSON(t, w, http.StatusOK, map[string]any{
			"id":       3,
			"username": "alice",
			"email":    "alice@example.com",
		})
	})
	sess.EXPECT().AccessToken().Return("access-token")

	user, err := client.CurrentUser(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(3), user.ID)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "alice@example.com", user.Email)
}

func TestClient_CurrentUser_Unauthorized(t *testing.T) {
	client, sess := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnauthorized, map[string]string{"detail": "token not valid"})
	})
	sess.EXPECT().AccessToken().Return("stale-token")

	_, err := client.CurrentUser(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAuthRequired)
}

func TestClient_CurrentUser_NoToken_NoAuthHeader(t *testing.T) {
	client, sess := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		writeJSON(t, w, http.StatusUnauthorized, map[string]string{"detail": "credentials not provided"})
	})
	sess.EXPECT().AccessToken().Return("")

	_, err := client.CurrentUser(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAuthRequired)
}

func TestClient_CurrentUser_ReadsTokenAtCallTime(t *testing.T) {
	client, sess := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer fresh-token", r.Header.Get("Authorization"))
		writeJSON(t, w, http.StatusOK, map[string]any{"id": 1, "username": "alice", "email": "a@b.c"})
	})

	// The token set after client construction must be used by the next call.
	sess.EXPECT().AccessToken().Return("fresh-token")

	_, err := client.CurrentUser(context.Background())
	require.NoError(t, err)
}

func TestClient_ListBookings_Success(t *testing.T) {
	client, sess := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bookings/", r.URL.Path)
		writeJSON(t, w, http.StatusOK, []map[string]any{
			{
				"code":        "ABC123XYZ0",
				"status":      "Active",
				"created_at":  "2026-09-01T12:00:00Z",
				"event_title": "Jazz Night",
			},
			{
				"code":        "DEF456UVW1",
				"status":      "Canceled",
				"created_at":  "2026-08-15T09:30:00Z",
				"event_title": "Art Fair",
			},
		})
	})
	sess.EXPECT().AccessToken().Return("access-token")

	bookings, err := client.ListBookings(context.Background())

	require.NoError(t, err)
	require.Len(t, bookings, 2)
	assert.Equal(t, "ABC123XYZ0", bookings[0].Code)
	assert.Equal(t, domain.BookingStatusActive, bookings[0].Status)
	assert.Equal(t, "Jazz Night", bookings[0].EventTitle)
	assert.Equal(t, domain.BookingStatusCanceled, bookings[1].Status)
}

func TestClient_ListBookings_Unauthorized(t *testing.T) {
	client, sess := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnauthorized, map[string]string{"detail": "token not valid"})
	})
	sess.EXPECT().AccessToken().Return("stale-token")

	_, err := client.ListBookings(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAuthRequired)
}

func TestClient_CreateBooking_Success(t *testing.T) {
	client, sess := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/bookings/create/", r.URL.Path)
		assert.Equal(t, "Bearer access-token", r.Header.Get("Authorization"))

		var body map[string]int64
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, int64(42), body["event"])

		writeJSON(t, w, http.StatusCreated, map[string]any{
			"code":        "FRESHCODE1",
			"status":      "Active",
			"created_at":  "2026-09-01T12:00:00Z",
			"event_title": "Jazz Night",
		})
	})
	sess.EXPECT().AccessToken().Return("access-token")

	booking, err := client.CreateBooking(context.Background(), 42)

	require.NoError(t, err)
	assert.Equal(t, "FRESHCODE1", booking.Code)
	assert.Equal(t, domain.BookingStatusActive, booking.Status)
}

func TestClient_CreateBooking_Unauthorized(t *testing.T) {
	client, sess := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnauthorized, map[string]string{"detail": "token not valid"})
	})
	sess.EXPECT().AccessToken().Return("stale-token")

	_, err := client.CreateBooking(context.Background(), 42)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAuthRequired)
}

func TestClient_CreateBooking_ErrorField(t *testing.T) {
	client, sess := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusBadRequest, map[string]string{
			"error": "You already have a booking for this event",
		})
	})
	sess.EXPECT().AccessToken().Return("access-token")

	_, err := client.CreateBooking(context.Background(), 42)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Contains(t, err.Error(), "You already have a booking for this event")
}

func TestClient_CreateBooking_DetailField(t *testing.T) {
	client, sess := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusBadRequest, map[string]string{"detail": "event is sold out"})
	})
	sess.EXPECT().AccessToken().Return("access-token")

	_, err := client.CreateBooking(context.Background(), 42)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "event is sold out")
}

func TestClient_CreateBooking_GenericFallback(t *testing.T) {
	client, sess := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	})
	sess.EXPECT().AccessToken().Return("access-token")

	_, err := client.CreateBooking(context.Background(), 42)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create booking")
}

func TestClient_BookingDetail_Success(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bookings/ABC123XYZ0/", r.URL.Path)
		// Lookup is code-authenticated, no session header.
		assert.Empty(t, r.Header.Get("Authorization"))

		writeJSON(t, w, http.StatusOK, map[string]any{
			"code":        "ABC123XYZ0",
			"status":      "Active",
			"created_at":  "2026-09-01T12:00:00Z",
			"event_title": "Jazz Night",
			"can_cancel":  true,
		})
	})

	booking, err := client.BookingDetail(context.Background(), "ABC123XYZ0")

	require.NoError(t, err)
	assert.Equal(t, "ABC123XYZ0", booking.Code)
	assert.Equal(t, "Jazz Night", booking.EventTitle)
	assert.True(t, booking.CanCancel)
}

func TestClient_BookingDetail_NotFound(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusNotFound, map[string]string{"detail": "Not found."})
	})

	_, err := client.BookingDetail(context.Background(), "NOSUCHCODE")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Contains(t, err.Error(), "Not found.")
}

func TestClient_CancelBooking_Success(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/bookings/ABC123XYZ0/cancel/", r.URL.Path)

		writeJSON(t, w, http.StatusOK, map[string]any{
			"code":        "ABC123XYZ0",
			"status":      "Canceled",
			"created_at":  "2026-09-01T12:00:00Z",
			"event_title": "Jazz Night",
		})
	})

	booking, err := client.CancelBooking(context.Background(), "ABC123XYZ0")

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusCanceled, booking.Status)
}

func TestClient_CancelBooking_Rejected(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusBadRequest, map[string]string{
			"error": "This booking cannot be canceled",
		})
	})

	_, err := client.CancelBooking(context.Background(), "ABC123XYZ0")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Contains(t, err.Error(), "This booking cannot be canceled")
}
