package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

// Overlay renders a centered single-line prompt on top of existing content.
type Overlay struct {
	title  string
	hint   string
	input  textinput.Model
	active bool
}

// NewTextInputOverlay creates a text input dialog prefilled with value.
func NewTextInputOverlay(title, placeholder, value string) Overlay {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 128
	ti.Width = 40
	ti.SetValue(value)
	ti.Focus()
	return Overlay{
		title:  title,
		hint:   "Enter: submit  Esc: cancel",
		input:  ti,
		active: true,
	}
}

// Active returns whether the overlay is currently shown.
func (o Overlay) Active() bool {
	return o.active
}

// Value returns the current input text.
func (o Overlay) Value() string {
	return o.input.Value()
}

// Update handles key messages for the overlay.
func (o Overlay) Update(msg tea.Msg) (Overlay, tea.Cmd) {
	if !o.active {
		return o, nil
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc":
			o.active = false
			return o, func() tea.Msg {
				return OverlayCloseMsg{Confirmed: false}
			}
		case "enter":
			value := strings.TrimSpace(o.input.Value())
			if value == "" {
				return o, nil // don't submit empty
			}
			o.active = false
			return o, func() tea.Msg {
				return OverlayCloseMsg{Result: value, Confirmed: true}
			}
		}
	}

	var cmd tea.Cmd
	o.input, cmd = o.input.Update(msg)
	return o, cmd
}

// View renders the overlay box. Compositing over a background is the
// caller's job, see Composite.
func (o Overlay) View() string {
	if !o.active {
		return ""
	}
	var b strings.Builder
	b.WriteString(OverlayTitleStyle.Render(o.title))
	b.WriteString("\n\n")
	b.WriteString(o.input.View())
	b.WriteString("\n\n")
	b.WriteString(HelperTextStyle.Render(o.hint))
	return OverlayStyle.Render(b.String())
}

// SetWidth sizes the text input to fit an overlay of width w.
func (o *Overlay) SetWidth(w int) {
	inputWidth := w - 6 // overlay padding and border
	if inputWidth < 20 {
		inputWidth = 20
	}
	o.input.Width = inputWidth
}

// OverlayMaxWidth returns a reasonable maximum width for overlay content.
func OverlayMaxWidth(termWidth int) int {
	w := termWidth * 2 / 3
	if w < 40 {
		w = 40
	}
	if w > 72 {
		w = 72
	}
	return w
}

// Composite places the overlay box centered on top of the background string.
// The background is expected to be a fully rendered terminal frame.
func Composite(background string, overlay string, totalWidth, totalHeight int) string {
	if overlay == "" {
		return background
	}

	bgLines := strings.Split(background, "\n")
	for len(bgLines) < totalHeight {
		bgLines = append(bgLines, "")
	}

	overlayLines := strings.Split(overlay, "\n")
	overlayWidth := 0
	for _, line := range overlayLines {
		if w := ansi.StringWidth(line); w > overlayWidth {
			overlayWidth = w
		}
	}

	startRow := max((totalHeight-len(overlayLines))/2, 0)
	startCol := max((totalWidth-overlayWidth)/2, 0)

	for i, overlayLine := range overlayLines {
		row := startRow + i
		if row >= len(bgLines) {
			break
		}

		bgLine := bgLines[row]
		bgWidth := ansi.StringWidth(bgLine)

		left := ansi.Truncate(bgLine, startCol, "")
		if pad := startCol - ansi.StringWidth(left); pad > 0 {
			left += strings.Repeat(" ", pad)
		}

		right := ""
		if end := startCol + ansi.StringWidth(overlayLine); end < bgWidth {
			right = ansi.TruncateLeft(bgLine, end, "")
		}

		bgLines[row] = left + overlayLine + right
	}

	if totalHeight > 0 && len(bgLines) > totalHeight {
		bgLines = bgLines[:totalHeight]
	}
	return strings.Join(bgLines, "\n")
}
