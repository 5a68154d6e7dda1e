package service

import (
	"errors"
	"strings"

	"github.com/udash/udash/internal/adapter"
	"github.com/udash/udash/internal/app"
	"github.com/udash/udash/internal/store"
)

// mapAdapterError translates the adapter's transport error into a service
// business error, using the message body the server attached to the status.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		switch {
		case msg == ErrRequiredFieldsMissing.Error(), msg == app.MsgInvalidDataProvided:
			return ErrRequiredFieldsMissing
		case msg == ErrPasswordsDoNotMatch.Error():
			return ErrPasswordsDoNotMatch
		case strings.HasPrefix(msg, ErrPasswordTooShort.Error()):
			return ErrPasswordTooShort
		}

	case errors.Is(err, adapter.ErrUnauthorized):
		switch msg {
		case app.MsgInvalidUsernamePassword:
			return ErrInvalidCredentials
		case app.MsgTokenIsExpiredOrInvalid:
			return ErrTokenIsExpiredOrInvalid
		}
		return ErrTokenIsExpiredOrInvalid

	case errors.Is(err, adapter.ErrConflict):
		return store.ErrUsernameAlreadyExists

	case errors.Is(err, adapter.ErrNotFound):
		return store.ErrNoUserWasFound
	}

	return err
}

// extractBody extracts the body from a message of the form "bad request: <body>"
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}
