package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComposite(t *testing.T) {
	bg := "AAAA\nBBBB\nCCCC\nDDDD"
	overlay := "XX\nXX"
	result := Composite(bg, overlay, 4, 4)
	lines := strings.Split(result, "\n")
	require.Len(t, lines, 4)

	assert.Equal(t, "AAAA", lines[0])
	assert.Equal(t, "BXXB", lines[1])
	assert.Equal(t, "CXXC", lines[2])
	assert.Equal(t, "DDDD", lines[3])
}

func TestCompositeEmpty(t *testing.T) {
	bg := "hello"
	assert.Equal(t, bg, Composite(bg, "", 5, 1))
}

func TestComposite_ShortBackground(t *testing.T) {
	result := Composite("A", "X", 3, 3)
	lines := strings.Split(result, "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, " X", lines[1])
}

func TestComposite_OversizedOverlay(t *testing.T) {
	bg := "A\nB"
	overlay := "XXXX\nXXXX\nXXXX\nXXXX"
	result := Composite(bg, overlay, 2, 2)
	assert.Len(t, strings.Split(result, "\n"), 2)
}

func TestTextInputOverlay(t *testing.T) {
	t.Run("enter submits trimmed text", func(t *testing.T) {
		o := NewTextInputOverlay("Generate profile", "profession", " nurse ")
		o, cmd := o.Update(tea.KeyMsg{Type: tea.KeyEnter})
		assert.False(t, o.Active())
		require.NotNil(t, cmd)
		assert.Equal(t, OverlayCloseMsg{Result: "nurse", Confirmed: true}, cmd())
	})

	t.Run("enter on blank input is ignored", func(t *testing.T) {
		o := NewTextInputOverlay("Generate profile", "profession", "")
		o, cmd := o.Update(tea.KeyMsg{Type: tea.KeyEnter})
		assert.True(t, o.Active())
		assert.Nil(t, cmd)
	})

	t.Run("esc cancels", func(t *testing.T) {
		o := NewTextInputOverlay("Generate profile", "profession", "nurse")
		o, cmd := o.Update(tea.KeyMsg{Type: tea.KeyEscape})
		assert.False(t, o.Active())
		assert.Equal(t, OverlayCloseMsg{}, cmd())
		assert.Empty(t, o.View())
	})

	t.Run("typing edits the value", func(t *testing.T) {
		o := NewTextInputOverlay("Generate profile", "profession", "")
		o, _ = o.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("chef")})
		assert.Equal(t, "chef", o.Value())
		assert.Contains(t, o.View(), "Generate profile")
	})
}

func TestOverlayMaxWidth(t *testing.T) {
	assert.Equal(t, 40, OverlayMaxWidth(30))
	assert.Equal(t, 60, OverlayMaxWidth(90))
	assert.Equal(t, 72, OverlayMaxWidth(300))
}
