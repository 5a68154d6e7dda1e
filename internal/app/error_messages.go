// Package app contains shared application-layer constants used across the
// udash server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails basic validation (e.g. missing required fields).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidUsernamePassword is the single message used for every
	// credential failure: unknown username, wrong password, or deactivated
	// account. One wording for all three keeps account existence
	// unguessable.
	MsgInvalidUsernamePassword = "invalid username or password"

	// MsgUsernameAlreadyExists is returned when a registration attempt is
	// rejected because the requested username is already in use.
	MsgUsernameAlreadyExists = "username already exists"

	// MsgTokenIsExpiredOrInvalid is returned when a JWT bearer token is
	// either expired or cannot be verified (e.g. wrong signature).
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgServiceUnavailable is returned when the credential store cannot be
	// reached. The client should retry later; the request itself was fine.
	MsgServiceUnavailable = "service temporarily unavailable"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgUserNotFound is returned when a profile request references an
	// account that no longer exists.
	MsgUserNotFound = "user not found"
)
