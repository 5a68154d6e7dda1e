package store

import (
	"context"

	"github.com/udash/udash/models"
)

// UserRepository is the persistence contract required by the authentication
// service. The unique index on users.username is the authority for
// duplicate detection: CreateUser surfaces a constraint violation as
// [ErrUsernameAlreadyExists] even when a prior lookup saw no conflict.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	FindUserByID(ctx context.Context, id int64) (models.User, error)
	TouchLastLogin(ctx context.Context, userID int64) error
	CountUsers(ctx context.Context) (models.UserStats, error)
}

// LocalStore is the client-side store used to remember the last
// successfully used username between runs.
type LocalStore interface {
	SaveLastUsername(ctx context.Context, username string) error
	LastUsername(ctx context.Context) (string, error)
	Close() error
}
