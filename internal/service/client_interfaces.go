package service

import (
	"context"

	"github.com/udash/udash/internal/session"
	"github.com/udash/udash/models"
)

// ClientAuthService defines the client-side contract for registration,
// authentication, and session bookkeeping. Implementations communicate with
// the remote server through a [adapter.ServerAdapter] and keep the local
// session and last-username store up to date.
type ClientAuthService interface {
	// Register validates the registration form locally, creates the account
	// on the server, and opens a session for the new user. Local validation
	// mirrors the server's checks so obvious mistakes never leave the
	// process.
	Register(ctx context.Context, req models.RegisterRequest) (models.Profile, error)

	// Login authenticates against the server. On success the session is
	// opened and the username is remembered in the local store so the next
	// run can pre-fill the login form.
	Login(ctx context.Context, req models.LoginRequest) (models.Profile, error)

	// Logout closes the session and drops the bearer token. It is
	// idempotent.
	Logout(ctx context.Context)

	// LastUsername returns the username of the last successful login on
	// this machine, or store.ErrLastUsernameNotFound when there is none.
	LastUsername(ctx context.Context) (string, error)

	// Session returns the client's session state.
	Session() *session.Session
}

// ClientDashboardService defines the client-side contract for the data shown
// on the dashboard screen.
type ClientDashboardService interface {
	// Profile fetches the authenticated account's profile from the server.
	Profile(ctx context.Context) (models.Profile, error)

	// UserStats fetches the aggregate account counters from the server.
	UserStats(ctx context.Context) (models.UserStats, error)

	// ServerVersion fetches the server's build version string.
	ServerVersion(ctx context.Context) (string, error)
}
