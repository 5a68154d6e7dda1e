package tui

import "github.com/udash/udash/models"

// NavigateTo switches the active page of [RootModel]. An optional Payload is
// re-dispatched to the target page after the switch.
type NavigateTo struct {
	Page    string
	Payload interface{}
}

// LoginResult is produced by the login screen's async command.
type LoginResult struct {
	Err      error
	Username string
	Profile  models.Profile
}

// RegisterResult is produced by the registration screen's async command.
// A successful registration opens the session, so it finishes the
// authentication flow the same way a login does.
type RegisterResult struct {
	Err      error
	Username string
	Profile  models.Profile
}

// LoggedOutNotice is passed back to the menu after the user logs out.
type LoggedOutNotice struct {
	Username string
}

type lastUsernameMsg struct {
	username string
}

type dashboardLoadedMsg struct {
	profile models.Profile
	stats   models.UserStats
	version string
	err     error
}

type copiedMsg struct{}

type clearStatusMsg struct{}
