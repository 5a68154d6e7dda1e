package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/udash/udash/internal/config"
	"github.com/udash/udash/internal/logger"
	"github.com/udash/udash/internal/store"
	"github.com/udash/udash/internal/utils"
	"github.com/udash/udash/models"
)

// dummyPasswordHash is a well-formed bcrypt hash compared against when the
// username lookup comes up empty, so that a login attempt for an unknown
// username costs roughly the same as one for a known username.
const dummyPasswordHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and JWT token
// lifecycle using a UserRepository for persistence and bcrypt for
// password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// passwordMinLength is the minimum accepted password length at
	// registration time.
	passwordMinLength int

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.Auth, logger *logger.Logger) AuthService {
	minLength := cfg.PasswordMinLength
	if minLength <= 0 {
		minLength = config.DefaultPasswordMinLength
	}

	return &authService{
		userRepository:    userRepository,
		passwordMinLength: minLength,
		tokenSignKey:      cfg.TokenSignKey,
		tokenIssuer:       cfg.TokenIssuer,
		tokenDuration:     cfg.TokenDuration,
		logger:            logger,
	}
}

// RegisterUser creates a new user account.
//
// Validation runs in a fixed order, stopping at the first failure:
//  1. Username, Name, Password, and ConfirmPassword must be non-empty.
//  2. Password and ConfirmPassword must match.
//  3. Password must satisfy the configured minimum length.
//
// Uniqueness is not pre-checked: the INSERT relies on the unique index,
// so a concurrent registration of the same username still surfaces as
// store.ErrUsernameAlreadyExists.
//
// Returns the persisted user (with a server-assigned ID) or:
//   - ErrRequiredFieldsMissing, ErrPasswordsDoNotMatch, or
//     ErrPasswordTooShort on validation failure.
//   - A wrapped storage error if the repository call fails.
func (a *authService) RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if req.Username == "" || req.Name == "" || req.Password == "" || req.ConfirmPassword == "" {
		log.Error().Str("username", req.Username).Msg("registration form has empty required fields")
		return models.User{}, ErrRequiredFieldsMissing
	}
	if req.Password != req.ConfirmPassword {
		return models.User{}, ErrPasswordsDoNotMatch
	}
	if len(req.Password) < a.passwordMinLength {
		return models.User{}, fmt.Errorf("%w: minimum length is %d", ErrPasswordTooShort, a.passwordMinLength)
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Username:     req.Username,
		PasswordHash: passwordHash,
		Name:         req.Name,
		Email:        req.Email,
	})
	if err != nil {
		log.Err(err).Str("username", req.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user.
//
// Unknown username, deactivated account, and wrong password all return
// ErrInvalidCredentials; the caller cannot tell which of the three
// occurred. When the username is unknown a bcrypt comparison still runs
// against a dummy hash to keep the failure timing comparable.
//
// On success the account's last_login_at is stamped; a failure of that
// bookkeeping update is logged and does not fail the login.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if req.Username == "" || req.Password == "" {
		log.Error().Str("username", req.Username).Msg("login form has empty required fields")
		return models.User{}, ErrRequiredFieldsMissing
	}

	foundUser, err := a.userRepository.FindUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			utils.VerifyPassword(req.Password, dummyPasswordHash)
			return models.User{}, ErrInvalidCredentials
		}
		log.Err(err).Str("username", req.Username).Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if !utils.VerifyPassword(req.Password, foundUser.PasswordHash) {
		log.Error().Int64("id", foundUser.ID).Str("username", foundUser.Username).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	if !foundUser.IsActive {
		log.Error().Int64("id", foundUser.ID).Str("username", foundUser.Username).Msg("login attempt on deactivated account")
		return models.User{}, ErrInvalidCredentials
	}

	if err := a.userRepository.TouchLastLogin(ctx, foundUser.ID); err != nil {
		log.Warn().Err(err).Int64("id", foundUser.ID).Msg("failed to stamp last login")
	} else {
		now := time.Now()
		foundUser.LastLoginAt = &now
	}

	return foundUser, nil
}

// Profile returns the public view of the account with the given ID.
// The ID normally comes from a validated JWT, so a missing row means the
// account was removed after the token was issued.
func (a *authService) Profile(ctx context.Context, userID int64) (models.Profile, error) {
	log := logger.FromContext(ctx)

	foundUser, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("user search by id failed")
		return models.Profile{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return foundUser.Profile(), nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
//
// Returns the token model on success or a wrapped error if JWT generation fails.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.ID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature and
// the issuer claim. Any validation failure (expired, wrong issuer, malformed)
// is normalised to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
