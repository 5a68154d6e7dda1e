package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/udash/udash/internal/logger"
	"github.com/udash/udash/models"
)

// recentSignupWindow is the lookback period for the dashboard's
// "recent signups" counter.
const recentSignupWindow = 30 * 24 * time.Hour

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles user account creation and lookup against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns the fully populated
// [models.User] with server-assigned fields (ID, timestamps).
//
// The INSERT uses the [createUser] prepared query which returns all columns
// via a RETURNING clause, so the caller receives the canonical database
// representation of the newly created account.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrUsernameAlreadyExists].
//   - Connection-class errors → wrapped [ErrStoreUnavailable].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser, user.Username, user.PasswordHash, user.Name, nullableString(user.Email))

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: insert failed")
		return models.User{}, mapUserWriteError(err)
	}

	var saved models.User
	var email sql.NullString
	if err := row.Scan(&saved.ID, &saved.Username, &saved.PasswordHash, &saved.Name, &email, &saved.IsActive, &saved.CreatedAt, &saved.UpdatedAt, &saved.LastLoginAt); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: scanning error")
		return models.User{}, mapUserWriteError(err)
	}
	saved.Email = email.String

	return saved, nil
}

// FindUserByUsername retrieves the user record whose username exactly
// matches the argument (case-sensitive).
//
// Error handling:
//   - No matching row → [ErrNoUserWasFound].
//   - Connection-class errors → wrapped [ErrStoreUnavailable].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	log := logger.FromContext(ctx)

	var foundUser models.User
	var email sql.NullString
	row := r.db.QueryRowContext(ctx, findUserByUsername, username)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByUsername").Msg("error: query failed")
		return models.User{}, mapUserReadError(err)
	}

	if err := row.Scan(&foundUser.ID, &foundUser.Username, &foundUser.PasswordHash, &foundUser.Name, &email, &foundUser.IsActive, &foundUser.CreatedAt, &foundUser.UpdatedAt, &foundUser.LastLoginAt); err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			log.Err(err).Str("func", "*userRepository.FindUserByUsername").Msg("error: scanning error")
		}
		return models.User{}, mapUserReadError(err)
	}
	foundUser.Email = email.String

	return foundUser, nil
}

// FindUserByID retrieves the user record with the given primary key.
// It shares error semantics with [FindUserByUsername].
func (r *userRepository) FindUserByID(ctx context.Context, id int64) (models.User, error) {
	log := logger.FromContext(ctx)

	var foundUser models.User
	var email sql.NullString
	row := r.db.QueryRowContext(ctx, findUserByID, id)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByID").Msg("error: query failed")
		return models.User{}, mapUserReadError(err)
	}

	if err := row.Scan(&foundUser.ID, &foundUser.Username, &foundUser.PasswordHash, &foundUser.Name, &email, &foundUser.IsActive, &foundUser.CreatedAt, &foundUser.UpdatedAt, &foundUser.LastLoginAt); err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			log.Err(err).Str("func", "*userRepository.FindUserByID").Msg("error: scanning error")
		}
		return models.User{}, mapUserReadError(err)
	}
	foundUser.Email = email.String

	return foundUser, nil
}

// TouchLastLogin stamps the user's last_login_at and updated_at columns.
// Callers treat a failure here as non-fatal: the login itself has already
// succeeded.
func (r *userRepository) TouchLastLogin(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, touchLastLogin, userID); err != nil {
		log.Err(err).Str("func", "*userRepository.TouchLastLogin").Int64("user_id", userID).Msg("error: update failed")
		return mapUserWriteError(err)
	}

	return nil
}

// CountUsers runs the aggregate dashboard query and returns account
// counters: total, active, and registered within [recentSignupWindow].
func (r *userRepository) CountUsers(ctx context.Context) (models.UserStats, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUserStatsQuery(time.Now().Add(-recentSignupWindow))
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CountUsers").Msg("error: building stats query")
		return models.UserStats{}, fmt.Errorf("error building stats query: %w", err)
	}

	var stats models.UserStats
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&stats.TotalUsers, &stats.ActiveUsers, &stats.RecentSignups); err != nil {
		log.Err(err).Str("func", "*userRepository.CountUsers").Msg("error: scanning stats")
		return models.UserStats{}, mapUserReadError(err)
	}

	return stats, nil
}

func mapUserWriteError(err error) error {
	if postgresError(err) == pgerrcode.UniqueViolation {
		return ErrUsernameAlreadyExists
	}
	if Classify(err) == ConnectivityError {
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	return fmt.Errorf("unexpected DB error: %w", err)
}

func mapUserReadError(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNoUserWasFound
	}
	if Classify(err) == ConnectivityError {
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	return fmt.Errorf("unexpected DB error: %w", err)
}

func nullableString(s string) any {
	if s == "" {
		return nil
	}
	return s
}
