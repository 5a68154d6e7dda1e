package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginModel_FocusCycle(t *testing.T) {
	m := NewLoginModel(context.Background(), nil)
	require.Equal(t, 0, m.focus)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = updated.(*LoginModel)
	assert.Equal(t, 1, m.focus)

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = updated.(*LoginModel)
	assert.Equal(t, 0, m.focus)

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = updated.(*LoginModel)
	assert.Equal(t, 1, m.focus)
}

func TestLoginModel_EmptyFieldsRejectedLocally(t *testing.T) {
	m := NewLoginModel(context.Background(), nil)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(*LoginModel)

	assert.Nil(t, cmd)
	assert.False(t, m.submitting)
	assert.Equal(t, "Username and password are required", m.errMsg)
}

func TestLoginModel_LastUsernamePrefill(t *testing.T) {
	m := NewLoginModel(context.Background(), nil)

	updated, _ := m.Update(lastUsernameMsg{username: "gopher"})
	m = updated.(*LoginModel)
	assert.Equal(t, "gopher", m.inputs[0].Value())

	// a value typed by the user is never overwritten
	m.inputs[0].SetValue("other")
	updated, _ = m.Update(lastUsernameMsg{username: "gopher"})
	m = updated.(*LoginModel)
	assert.Equal(t, "other", m.inputs[0].Value())
}

func TestLoginModel_LoginResultError(t *testing.T) {
	m := NewLoginModel(context.Background(), nil)
	m.submitting = true

	updated, _ := m.Update(LoginResult{Err: assert.AnError})
	m = updated.(*LoginModel)

	assert.False(t, m.submitting)
	assert.Equal(t, assert.AnError.Error(), m.errMsg)
}
