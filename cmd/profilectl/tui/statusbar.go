package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Shortcut is one key hint shown on the right of the status bar.
type Shortcut struct {
	Key  string
	Help string
}

// StatusBar renders the bottom row with the profile count and keyboard shortcuts.
type StatusBar struct {
	username  string
	count     int
	mode      string
	shortcuts []Shortcut
	width     int
}

// NewStatusBar creates a status bar with default values.
func NewStatusBar() StatusBar {
	return StatusBar{mode: "browse", shortcuts: browseShortcuts}
}

var (
	browseShortcuts = []Shortcut{
		{"n", "new"},
		{"e", "edit"},
		{"c", "copy"},
		{"d", "delete"},
		{"r", "refresh"},
		{"q", "quit"},
	}
	formShortcuts = []Shortcut{
		{"Ctrl+G", "generate"},
		{"Esc", "close"},
	}
)

// SetWidth sets the available width for rendering.
func (s *StatusBar) SetWidth(w int) {
	s.width = w
}

// Update refreshes the status bar with the current user, list size and mode.
func (s *StatusBar) Update(username string, count int, mode string, shortcuts []Shortcut) {
	s.username = username
	s.count = count
	s.mode = mode
	s.shortcuts = shortcuts
}

// View renders the status bar.
func (s StatusBar) View() string {
	noun := "profiles"
	if s.count == 1 {
		noun = "profile"
	}
	leftPart := fmt.Sprintf("%s · %d %s · %s", s.username, s.count, noun, s.mode)

	keys := make([]string, 0, len(s.shortcuts))
	for _, sc := range s.shortcuts {
		keys = append(keys, StatusBarKeyStyle.Render(sc.Key)+": "+sc.Help)
	}
	rightPart := strings.Join(keys, " · ")

	availableWidth := s.width - 2 // StatusBarStyle padding
	gap := availableWidth - ansi.StringWidth(leftPart) - ansi.StringWidth(rightPart)
	if gap < 1 {
		gap = 1
	}

	content := leftPart + strings.Repeat(" ", gap) + rightPart
	return StatusBarStyle.Width(s.width).Render(content)
}
