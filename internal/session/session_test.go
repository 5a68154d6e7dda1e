package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/udash/udash/models"
)

func TestSession_LoginLogout(t *testing.T) {
	s := New(0)

	assert.False(t, s.IsAuthenticated())
	_, ok := s.CurrentUser()
	assert.False(t, ok)

	s.Login(models.Profile{ID: 7, Username: "alice"})

	assert.True(t, s.IsAuthenticated())
	u, ok := s.CurrentUser()
	assert.True(t, ok)
	assert.Equal(t, int64(7), u.ID)

	s.Logout()

	assert.False(t, s.IsAuthenticated())
	_, ok = s.CurrentUser()
	assert.False(t, ok)
}

func TestSession_LogoutIsIdempotent(t *testing.T) {
	s := New(0)

	s.Logout()
	s.Logout()

	assert.False(t, s.IsAuthenticated())
}

func TestSession_LoginReplacesOwner(t *testing.T) {
	s := New(0)

	s.Login(models.Profile{ID: 1, Username: "alice"})
	s.Login(models.Profile{ID: 2, Username: "bob"})

	u, ok := s.CurrentUser()
	assert.True(t, ok)
	assert.Equal(t, "bob", u.Username)
}

func TestSession_Duration(t *testing.T) {
	s := New(0)

	assert.Zero(t, s.Duration())

	start := time.Now()
	s.now = func() time.Time { return start }
	s.Login(models.Profile{ID: 1})
	s.now = func() time.Time { return start.Add(42 * time.Minute) }

	assert.Equal(t, 42*time.Minute, s.Duration())
}

func TestSession_Expiry(t *testing.T) {
	s := New(time.Hour)

	start := time.Now()
	s.now = func() time.Time { return start }
	s.Login(models.Profile{ID: 1})

	assert.False(t, s.Expired())
	assert.True(t, s.IsAuthenticated())

	s.now = func() time.Time { return start.Add(2 * time.Hour) }

	assert.True(t, s.Expired())
	assert.False(t, s.IsAuthenticated())
	_, ok := s.CurrentUser()
	assert.False(t, ok)
}

func TestSession_LoggedOutNeverExpired(t *testing.T) {
	s := New(time.Nanosecond)

	assert.False(t, s.Expired())
}
