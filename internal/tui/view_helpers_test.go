package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderPage(t *testing.T) {
	page := renderPage("DASHBOARD", "line one\nline two", "r: refresh")

	assert.Contains(t, page, "DASHBOARD")
	assert.Contains(t, page, "  line one\n")
	assert.Contains(t, page, "  line two\n")
	assert.Contains(t, page, "r: refresh")
	assert.Contains(t, page, "ctrl+c: quit")
}

func TestRenderPage_EmptyData(t *testing.T) {
	page := renderPage("LOG IN", "   ", "")

	assert.Contains(t, page, "  -\n")
	assert.Contains(t, page, "ctrl+c: quit")
}

func TestValueOrDash(t *testing.T) {
	assert.Equal(t, "-", valueOrDash(""))
	assert.Equal(t, "-", valueOrDash("   "))
	assert.Equal(t, "a@b.c", valueOrDash("a@b.c"))
}

func TestFitText(t *testing.T) {
	assert.Equal(t, "short", fitText("short", 10))
	assert.Equal(t, "short", fitText("short", 0))
	assert.Equal(t, "lon", fitText("longer", 3))
	assert.Equal(t, "long t...", fitText("long text here", 9))
}
