package service

import (
	"context"
	"fmt"

	"github.com/udash/udash/internal/adapter"
	"github.com/udash/udash/internal/config"
	"github.com/udash/udash/internal/session"
	"github.com/udash/udash/internal/store"
	"github.com/udash/udash/models"
)

type clientAuthService struct {
	localStore store.LocalStore
	adapter    adapter.ServerAdapter
	session    *session.Session
}

func NewClientAuthService(localStore store.LocalStore, serverAdapter adapter.ServerAdapter, sess *session.Session) ClientAuthService {
	return &clientAuthService{localStore: localStore, adapter: serverAdapter, session: sess}
}

// Register validates the form locally before any network round-trip, then
// creates the account on the server. The server repeats the same checks.
// A successful registration opens the session immediately: the server has
// already issued a token for the new account.
func (a *clientAuthService) Register(ctx context.Context, req models.RegisterRequest) (models.Profile, error) {
	if err := validateRegisterForm(req); err != nil {
		return models.Profile{}, err
	}

	profile, err := a.adapter.Register(ctx, req)
	if err != nil {
		return models.Profile{}, mapAdapterError(err)
	}

	a.session.Login(profile)

	if err := a.localStore.SaveLastUsername(ctx, profile.Username); err != nil {
		// Remembering the username is a convenience, not a requirement.
		return profile, nil
	}

	return profile, nil
}

// Login authenticates against the server, opens the session, and remembers
// the username for the next run.
func (a *clientAuthService) Login(ctx context.Context, req models.LoginRequest) (models.Profile, error) {
	if req.Username == "" || req.Password == "" {
		return models.Profile{}, ErrRequiredFieldsMissing
	}

	profile, err := a.adapter.Login(ctx, req)
	if err != nil {
		return models.Profile{}, mapAdapterError(err)
	}

	a.session.Login(profile)

	if err := a.localStore.SaveLastUsername(ctx, profile.Username); err != nil {
		return profile, nil
	}

	return profile, nil
}

// Logout closes the session and forgets the bearer token.
func (a *clientAuthService) Logout(ctx context.Context) {
	a.session.Logout()
	a.adapter.SetToken("")
}

// LastUsername returns the username remembered from the previous run.
func (a *clientAuthService) LastUsername(ctx context.Context) (string, error) {
	username, err := a.localStore.LastUsername(ctx)
	if err != nil {
		return "", fmt.Errorf("reading last username: %w", err)
	}

	return username, nil
}

func (a *clientAuthService) Session() *session.Session {
	return a.session
}

// validateRegisterForm mirrors the server-side validation order: required
// fields, then password confirmation, then minimum length.
func validateRegisterForm(req models.RegisterRequest) error {
	if req.Username == "" || req.Name == "" || req.Password == "" || req.ConfirmPassword == "" {
		return ErrRequiredFieldsMissing
	}
	if req.Password != req.ConfirmPassword {
		return ErrPasswordsDoNotMatch
	}
	if len(req.Password) < config.DefaultPasswordMinLength {
		return fmt.Errorf("%w: minimum length is %d", ErrPasswordTooShort, config.DefaultPasswordMinLength)
	}

	return nil
}
