package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/udash/udash/internal/adapter"
	"github.com/udash/udash/internal/app"
	"github.com/udash/udash/internal/mock"
	"github.com/udash/udash/internal/session"
	"github.com/udash/udash/internal/store"
	"github.com/udash/udash/models"
	"go.uber.org/mock/gomock"
)

// newTestClientAuthSvc builds a clientAuthService with mocked dependencies.
func newTestClientAuthSvc(t *testing.T, ctrl *gomock.Controller) (*clientAuthService, *mock.MockServerAdapter, *mock.MockLocalStore) {
	t.Helper()
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	mockLocal := mock.NewMockLocalStore(ctrl)
	sess := session.New(0)

	svc := NewClientAuthService(mockLocal, mockAdapter, sess).(*clientAuthService)
	return svc, mockAdapter, mockLocal
}

// adapterStatusError fabricates the error shape mapHTTPError produces.
func adapterStatusError(sentinel error, body string) error {
	return fmt.Errorf("%w: %s", sentinel, body)
}

// ── Register ────────────────────────────────────────────────────────────────

func TestClientAuth_Register_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockLocal := newTestClientAuthSvc(t, ctrl)
	ctx := context.Background()

	req := models.RegisterRequest{
		Username:        "alice",
		Password:        "secret-password",
		ConfirmPassword: "secret-password",
		Name:            "Alice A",
	}

	gomock.InOrder(
		mockAdapter.EXPECT().Register(ctx, req).
			Return(models.Profile{ID: 1, Username: "alice", Name: "Alice A"}, nil),
		mockLocal.EXPECT().SaveLastUsername(ctx, "alice").Return(nil),
	)

	profile, err := svc.Register(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, "alice", profile.Username)
	assert.True(t, svc.Session().IsAuthenticated())
}

// Local validation fails fast: nothing is sent to the server.
func TestClientAuth_Register_LocalValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestClientAuthSvc(t, ctrl)
	ctx := context.Background()

	tests := []struct {
		name    string
		req     models.RegisterRequest
		wantErr error
	}{
		{
			"MissingUsername",
			models.RegisterRequest{Password: "secret-password", ConfirmPassword: "secret-password", Name: "A"},
			ErrRequiredFieldsMissing,
		},
		{
			"Mismatch",
			models.RegisterRequest{Username: "alice", Password: "secret-password", ConfirmPassword: "other", Name: "A"},
			ErrPasswordsDoNotMatch,
		},
		{
			"TooShort",
			models.RegisterRequest{Username: "alice", Password: "abc", ConfirmPassword: "abc", Name: "A"},
			ErrPasswordTooShort,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(ctx, tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.False(t, svc.Session().IsAuthenticated())
		})
	}
}

func TestClientAuth_Register_UsernameTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _ := newTestClientAuthSvc(t, ctrl)
	ctx := context.Background()

	req := models.RegisterRequest{
		Username:        "alice",
		Password:        "secret-password",
		ConfirmPassword: "secret-password",
		Name:            "Alice A",
	}

	mockAdapter.EXPECT().Register(ctx, req).
		Return(models.Profile{}, adapterStatusError(adapter.ErrConflict, app.MsgUsernameAlreadyExists))

	_, err := svc.Register(ctx, req)
	assert.ErrorIs(t, err, store.ErrUsernameAlreadyExists)
	assert.False(t, svc.Session().IsAuthenticated())
}

// A failed last-username save must not fail the registration.
func TestClientAuth_Register_SaveLastUsernameFailureIsNonFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockLocal := newTestClientAuthSvc(t, ctrl)
	ctx := context.Background()

	req := models.RegisterRequest{
		Username:        "alice",
		Password:        "secret-password",
		ConfirmPassword: "secret-password",
		Name:            "Alice A",
	}

	mockAdapter.EXPECT().Register(ctx, req).
		Return(models.Profile{ID: 1, Username: "alice"}, nil)
	mockLocal.EXPECT().SaveLastUsername(ctx, "alice").Return(errors.New("disk full"))

	_, err := svc.Register(ctx, req)
	require.NoError(t, err)
	assert.True(t, svc.Session().IsAuthenticated())
}

// ── Login ───────────────────────────────────────────────────────────────────

func TestClientAuth_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockLocal := newTestClientAuthSvc(t, ctrl)
	ctx := context.Background()

	req := models.LoginRequest{Username: "alice", Password: "secret-password"}

	gomock.InOrder(
		mockAdapter.EXPECT().Login(ctx, req).
			Return(models.Profile{ID: 7, Username: "alice"}, nil),
		mockLocal.EXPECT().SaveLastUsername(ctx, "alice").Return(nil),
	)

	profile, err := svc.Login(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, int64(7), profile.ID)

	current, ok := svc.Session().CurrentUser()
	require.True(t, ok)
	assert.Equal(t, "alice", current.Username)
}

func TestClientAuth_Login_EmptyFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestClientAuthSvc(t, ctrl)

	_, err := svc.Login(context.Background(), models.LoginRequest{Username: "alice"})
	assert.ErrorIs(t, err, ErrRequiredFieldsMissing)
}

func TestClientAuth_Login_InvalidCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _ := newTestClientAuthSvc(t, ctrl)
	ctx := context.Background()

	req := models.LoginRequest{Username: "alice", Password: "wrong-password"}

	mockAdapter.EXPECT().Login(ctx, req).
		Return(models.Profile{}, adapterStatusError(adapter.ErrUnauthorized, app.MsgInvalidUsernamePassword))

	_, err := svc.Login(ctx, req)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.False(t, svc.Session().IsAuthenticated())
}

func TestClientAuth_Login_ServerUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _ := newTestClientAuthSvc(t, ctrl)
	ctx := context.Background()

	req := models.LoginRequest{Username: "alice", Password: "secret-password"}

	mockAdapter.EXPECT().Login(ctx, req).
		Return(models.Profile{}, adapterStatusError(adapter.ErrServerUnavailable, "connection refused"))

	_, err := svc.Login(ctx, req)
	assert.ErrorIs(t, err, adapter.ErrServerUnavailable)
}

// ── Logout ──────────────────────────────────────────────────────────────────

func TestClientAuth_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockLocal := newTestClientAuthSvc(t, ctrl)
	ctx := context.Background()

	req := models.LoginRequest{Username: "alice", Password: "secret-password"}

	mockAdapter.EXPECT().Login(ctx, req).Return(models.Profile{ID: 7, Username: "alice"}, nil)
	mockLocal.EXPECT().SaveLastUsername(ctx, "alice").Return(nil)
	mockAdapter.EXPECT().SetToken("")

	_, err := svc.Login(ctx, req)
	require.NoError(t, err)

	svc.Logout(ctx)

	assert.False(t, svc.Session().IsAuthenticated())
}

func TestClientAuth_Logout_Idempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _ := newTestClientAuthSvc(t, ctrl)

	mockAdapter.EXPECT().SetToken("").Times(2)

	svc.Logout(context.Background())
	svc.Logout(context.Background())

	assert.False(t, svc.Session().IsAuthenticated())
}

// ── LastUsername ────────────────────────────────────────────────────────────

func TestClientAuth_LastUsername(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockLocal := newTestClientAuthSvc(t, ctrl)
	ctx := context.Background()

	mockLocal.EXPECT().LastUsername(ctx).Return("alice", nil)

	username, err := svc.LastUsername(ctx)
	require.NoError(t, err)
	assert.Equal(t, "alice", username)
}

func TestClientAuth_LastUsername_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockLocal := newTestClientAuthSvc(t, ctrl)
	ctx := context.Background()

	mockLocal.EXPECT().LastUsername(ctx).Return("", store.ErrLastUsernameNotFound)

	_, err := svc.LastUsername(ctx)
	assert.ErrorIs(t, err, store.ErrLastUsernameNotFound)
}
