package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/udash/udash/internal/logger"
	"github.com/udash/udash/internal/service"
	"github.com/udash/udash/models"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	svcs := &service.Services{
		AuthService: &mockAuthService{
			parseTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
				if tokenString != "valid.jwt.token" {
					return models.Token{}, service.ErrTokenIsExpiredOrInvalid
				}
				return models.Token{UserID: 7}, nil
			},
			profileFn: func(_ context.Context, _ int64) (models.Profile, error) {
				return models.Profile{Username: "alice"}, nil
			},
		},
		StatsService: &mockStatsService{
			userStatsFn: func(_ context.Context) (models.UserStats, error) {
				return models.UserStats{TotalUsers: 1}, nil
			},
		},
		AppInfoService: &mockAppInfoService{version: "test"},
	}

	return NewHandler(svcs, logger.Nop()).Init()
}

// Protected routes must reject requests with no token.
func TestRouter_ProtectedRoutesRequireToken(t *testing.T) {
	router := newTestRouter(t)

	for _, target := range []string{"/api/user/profile", "/api/stats/users"} {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code, target)
	}
}

func TestRouter_ProtectedRoutesWithToken(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/user/profile", nil)
	req.Header.Set("Authorization", "Bearer valid.jwt.token")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_VersionIsPublic(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "test", rec.Body.String())
}

// Unsupported methods on known routes answer 404, not 405.
func TestRouter_WrongMethodHidesRoute(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/login", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
