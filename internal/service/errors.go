package service

import "errors"

var (
	ErrRequiredFieldsMissing = errors.New("required fields missing")
	ErrPasswordsDoNotMatch   = errors.New("passwords do not match")
	ErrPasswordTooShort      = errors.New("password is too short")
	ErrInvalidCredentials    = errors.New("invalid username or password")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrVersionIsNotSpecified = errors.New("application version is not specified")
)
