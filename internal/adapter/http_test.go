package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/udash/udash/internal/config"
	"github.com/udash/udash/internal/logger"
	"github.com/udash/udash/models"
)

// newTestAdapter builds an httpServerAdapter pointed at the test server.
func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()

	a, err := NewHTTPServerAdapter(config.ClientAdapter{ServerURL: serverURL}, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func writeJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

// ── URL normalisation ───────────────────────────────────────────────────────

func TestNewHTTPServerAdapter_InvalidURL(t *testing.T) {
	_, err := NewHTTPServerAdapter(config.ClientAdapter{ServerURL: ""}, logger.Nop())
	require.Error(t, err)
}

func TestNormalizeBaseURL(t *testing.T) {
	got, err := normalizeBaseURL("localhost:8080")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", got)

	got, err = normalizeBaseURL("https://udash.example.com/")
	require.NoError(t, err)
	assert.Equal(t, "https://udash.example.com", got)
}

// ── Register ────────────────────────────────────────────────────────────────

func TestAdapterRegister_Success(t *testing.T) {
	req := models.RegisterRequest{Username: "alice", Password: "secret-password", ConfirmPassword: "secret-password", Name: "Alice A"}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/register", r.URL.Path)

		var got models.RegisterRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, req.Username, got.Username)

		w.Header().Set("Authorization", "Bearer signed.jwt.token")
		writeJSON(t, w, models.Profile{Username: got.Username, Name: got.Name})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	profile, err := a.Register(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, "alice", profile.Username)
	assert.Equal(t, "signed.jwt.token", a.Token())
}

func TestAdapterRegister_Conflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte("username already exists"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Register(context.Background(), models.RegisterRequest{Username: "alice"})

	assert.ErrorIs(t, err, ErrConflict)
	assert.Empty(t, a.Token())
}

func TestAdapterRegister_BadRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte("passwords do not match"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Register(context.Background(), models.RegisterRequest{Username: "alice"})

	assert.ErrorIs(t, err, ErrBadRequest)
	assert.Contains(t, err.Error(), "passwords do not match")
}

// ── Login ───────────────────────────────────────────────────────────────────

func TestAdapterLogin_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/login", r.URL.Path)

		w.Header().Set("Authorization", "Bearer signed.jwt.token")
		writeJSON(t, w, models.Profile{Username: "alice"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	profile, err := a.Login(context.Background(), models.LoginRequest{Username: "alice", Password: "secret-password"})

	require.NoError(t, err)
	assert.Equal(t, "alice", profile.Username)
	assert.Equal(t, "signed.jwt.token", a.Token())
}

func TestAdapterLogin_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte("invalid username or password"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.LoginRequest{Username: "alice", Password: "wrong"})

	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestAdapterLogin_ServiceUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("service temporarily unavailable"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.LoginRequest{Username: "alice", Password: "secret-password"})

	assert.ErrorIs(t, err, ErrServerUnavailable)
}

func TestAdapterLogin_ServerDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.LoginRequest{Username: "alice", Password: "secret-password"})

	assert.ErrorIs(t, err, ErrServerUnavailable)
}

// ── Authenticated requests ──────────────────────────────────────────────────

func TestAdapterProfile_SendsBearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/user/profile", r.URL.Path)
		assert.Equal(t, "Bearer signed.jwt.token", r.Header.Get("Authorization"))

		writeJSON(t, w, models.Profile{Username: "alice", Name: "Alice A"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("signed.jwt.token")

	profile, err := a.Profile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Alice A", profile.Name)
}

func TestAdapterProfile_ExpiredToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte("token is expired or invalid"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("expired.jwt.token")

	_, err := a.Profile(context.Background())
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestAdapterUserStats_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/stats/users", r.URL.Path)

		writeJSON(t, w, models.UserStats{TotalUsers: 120, ActiveUsers: 118, RecentSignups: 5})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("signed.jwt.token")

	stats, err := a.UserStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(120), stats.TotalUsers)
}

// ── ServerVersion ───────────────────────────────────────────────────────────

func TestAdapterServerVersion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/version", r.URL.Path)

		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("1.2.3"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)

	version, err := a.ServerVersion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "1.2.3", version)
}
