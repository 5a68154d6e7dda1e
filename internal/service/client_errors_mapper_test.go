package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/udash/udash/internal/adapter"
	"github.com/udash/udash/internal/app"
	"github.com/udash/udash/internal/store"
)

func TestMapAdapterError(t *testing.T) {
	tests := []struct {
		name string
		in   error
		want error
	}{
		{"Nil", nil, nil},
		{
			"UnauthorizedCredentials",
			fmt.Errorf("%w: %s", adapter.ErrUnauthorized, app.MsgInvalidUsernamePassword),
			ErrInvalidCredentials,
		},
		{
			"UnauthorizedToken",
			fmt.Errorf("%w: %s", adapter.ErrUnauthorized, app.MsgTokenIsExpiredOrInvalid),
			ErrTokenIsExpiredOrInvalid,
		},
		{
			"Conflict",
			fmt.Errorf("%w: %s", adapter.ErrConflict, app.MsgUsernameAlreadyExists),
			store.ErrUsernameAlreadyExists,
		},
		{
			"NotFound",
			fmt.Errorf("%w: %s", adapter.ErrNotFound, app.MsgUserNotFound),
			store.ErrNoUserWasFound,
		},
		{
			"BadRequestRequiredFields",
			fmt.Errorf("%w: %s", adapter.ErrBadRequest, "required fields missing"),
			ErrRequiredFieldsMissing,
		},
		{
			"BadRequestMismatch",
			fmt.Errorf("%w: %s", adapter.ErrBadRequest, "passwords do not match"),
			ErrPasswordsDoNotMatch,
		},
		{
			"BadRequestTooShort",
			fmt.Errorf("%w: %s", adapter.ErrBadRequest, "password is too short: minimum length is 6"),
			ErrPasswordTooShort,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapAdapterError(tt.in)
			if tt.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.want)
		})
	}
}

// Errors the mapper does not recognise pass through unchanged.
func TestMapAdapterError_Passthrough(t *testing.T) {
	in := fmt.Errorf("%w: connection refused", adapter.ErrServerUnavailable)

	got := mapAdapterError(in)
	assert.True(t, errors.Is(got, adapter.ErrServerUnavailable))
}
