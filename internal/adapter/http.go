package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"
	"github.com/udash/udash/internal/config"
	"github.com/udash/udash/internal/logger"
	"github.com/udash/udash/internal/utils"
	"github.com/udash/udash/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from cfg.ServerURL and configures
// the underlying HTTP client with the resolved base URL and request timeout.
//
// Returns an error if cfg.ServerURL is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(cfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(cfg.ServerURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter server url: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent authenticated requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter]. It returns the bearer token currently held
// by the adapter, or an empty string if none has been set.
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register implements [ServerAdapter]. It POSTs the registration form to
// POST /api/auth/register. On success the bearer token is extracted from the
// Authorization response header and stored via SetToken.
func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) (models.Profile, error) {
	var profile models.Profile

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&profile).
		Post("/api/auth/register")
	if err != nil {
		return models.Profile{}, fmt.Errorf("%w: %v", ErrServerUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Profile{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.Profile{}, fmt.Errorf("register parse bearer token: %w", err)
	}

	h.SetToken(token)
	return profile, nil
}

// Login implements [ServerAdapter]. It POSTs the credentials to
// POST /api/auth/login. On success the bearer token is extracted from the
// Authorization response header and stored via SetToken.
func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.Profile, error) {
	var profile models.Profile

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&profile).
		Post("/api/auth/login")
	if err != nil {
		return models.Profile{}, fmt.Errorf("%w: %v", ErrServerUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Profile{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.Profile{}, fmt.Errorf("login parse bearer token: %w", err)
	}

	h.SetToken(token)
	return profile, nil
}

// Profile implements [ServerAdapter]. It GETs the authenticated account's
// profile from GET /api/user/profile.
func (h *httpServerAdapter) Profile(ctx context.Context) (models.Profile, error) {
	resp, err := h.authedRequest(ctx).Get("/api/user/profile")
	if err != nil {
		return models.Profile{}, fmt.Errorf("%w: %v", ErrServerUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Profile{}, err
	}

	var profile models.Profile
	if err = json.Unmarshal(resp.Body(), &profile); err != nil {
		return models.Profile{}, fmt.Errorf("decode profile response: %w", err)
	}

	return profile, nil
}

// UserStats implements [ServerAdapter]. It GETs the dashboard counters from
// GET /api/stats/users.
func (h *httpServerAdapter) UserStats(ctx context.Context) (models.UserStats, error) {
	resp, err := h.authedRequest(ctx).Get("/api/stats/users")
	if err != nil {
		return models.UserStats{}, fmt.Errorf("%w: %v", ErrServerUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserStats{}, err
	}

	var stats models.UserStats
	if err = json.Unmarshal(resp.Body(), &stats); err != nil {
		return models.UserStats{}, fmt.Errorf("decode stats response: %w", err)
	}

	return stats, nil
}

// ServerVersion implements [ServerAdapter]. It GETs the plain-text version
// string from GET /api/version.
func (h *httpServerAdapter) ServerVersion(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrServerUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(string(resp.Body())), nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
