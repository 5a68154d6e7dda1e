// Package adapter provides the transport layer for communicating with
// the udash server.
//
// The primary abstraction is [ServerAdapter], which decouples the client's
// service layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/udash/udash/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the udash
// server. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel values
// defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all subsequent
	// authenticated requests. It should be called immediately after a
	// successful Register or Login.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register sends the registration form to the server. On success it
	// stores the returned bearer token via SetToken and returns the new
	// account's profile.
	Register(ctx context.Context, req models.RegisterRequest) (models.Profile, error)

	// Login authenticates with the server. On success it stores the returned
	// bearer token via SetToken and returns the account's profile. Every
	// credential failure surfaces as [ErrUnauthorized]; the server does not
	// distinguish unknown usernames from wrong passwords.
	Login(ctx context.Context, req models.LoginRequest) (models.Profile, error)

	// Profile fetches the authenticated account's profile.
	Profile(ctx context.Context) (models.Profile, error)

	// UserStats fetches the aggregate account counters for the dashboard.
	UserStats(ctx context.Context) (models.UserStats, error)

	// ServerVersion fetches the server's build version string.
	ServerVersion(ctx context.Context) (string, error)
}
