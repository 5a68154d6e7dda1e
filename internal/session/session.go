// Package session keeps the client's in-memory authentication state:
// the currently logged-in user, the moment the session started, and
// the expiry policy applied to it.
package session

import (
	"sync"
	"time"

	"github.com/udash/udash/models"
)

// DefaultMaxDuration is the lifetime applied to a session when no
// explicit limit is configured.
const DefaultMaxDuration = 24 * time.Hour

// Session tracks who is logged in on this client. The zero value is
// not usable; construct it with [New]. All methods are safe for
// concurrent use.
type Session struct {
	mu          sync.RWMutex
	user        models.Profile
	loggedIn    bool
	startedAt   time.Time
	maxDuration time.Duration
	now         func() time.Time
}

// New returns an empty, logged-out session. A non-positive maxDuration
// falls back to [DefaultMaxDuration].
func New(maxDuration time.Duration) *Session {
	if maxDuration <= 0 {
		maxDuration = DefaultMaxDuration
	}
	return &Session{
		maxDuration: maxDuration,
		now:         time.Now,
	}
}

// Login records the given profile as the session owner and stamps the
// session start time. Calling Login on an already authenticated
// session replaces the previous owner.
func (s *Session) Login(user models.Profile) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = user
	s.loggedIn = true
	s.startedAt = s.now()
}

// Logout clears the session state. It is idempotent: logging out of an
// already logged-out session is a no-op.
func (s *Session) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = models.Profile{}
	s.loggedIn = false
	s.startedAt = time.Time{}
}

// IsAuthenticated reports whether a user is logged in and the session
// has not outlived its maximum duration.
func (s *Session) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.loggedIn && !s.expiredLocked()
}

// CurrentUser returns the logged-in user and true, or a zero user and
// false when nobody is logged in or the session has expired.
func (s *Session) CurrentUser() (models.Profile, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.loggedIn || s.expiredLocked() {
		return models.Profile{}, false
	}
	return s.user, true
}

// Duration returns how long the current session has been active, or
// zero when nobody is logged in.
func (s *Session) Duration() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.loggedIn {
		return 0
	}
	return s.now().Sub(s.startedAt)
}

// Expired reports whether a logged-in session has exceeded its maximum
// duration. A logged-out session is never considered expired.
func (s *Session) Expired() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.loggedIn && s.expiredLocked()
}

func (s *Session) expiredLocked() bool {
	return s.now().Sub(s.startedAt) > s.maxDuration
}
