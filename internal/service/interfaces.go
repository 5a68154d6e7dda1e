package service

import (
	"context"

	"github.com/udash/udash/models"
)

// AuthService is the server-side contract for account registration,
// credential verification, and JWT token lifecycle.
type AuthService interface {
	// RegisterUser validates the registration form, hashes the password,
	// and creates the account. Validation failures are reported through
	// sentinel errors; a username collision surfaces the storage-layer
	// sentinel store.ErrUsernameAlreadyExists.
	RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error)

	// Login verifies the supplied credentials. Unknown username,
	// deactivated account, and wrong password are indistinguishable to
	// the caller: all three return ErrInvalidCredentials.
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)

	// Profile returns the public view of the account with the given ID.
	Profile(ctx context.Context, userID int64) (models.Profile, error)

	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// StatsService exposes the aggregate account counters shown on the
// dashboard.
type StatsService interface {
	UserStats(ctx context.Context) (models.UserStats, error)
}

// AppInfoService exposes build metadata of the running server.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
