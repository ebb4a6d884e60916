package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/ruminaider/profilectl/internal/controller"
	"github.com/ruminaider/profilectl/internal/profiles"
)

// RenderCard draws one profile as a bordered card of the given outer width.
func RenderCard(p profiles.Profile, mode profiles.DisplayMode, width int, selected bool) string {
	if width <= 0 {
		width = CardWidth
	}
	card := profiles.NewCard(p, mode)

	var b strings.Builder
	b.WriteString(CardTitleStyle.Render(card.Title))
	if card.Icon != "" {
		b.WriteString("  " + IconStyle.Render(card.Icon))
	}
	b.WriteString("\n")
	if card.DisplayName != "" {
		b.WriteString(DisplayNameStyle.Render(card.DisplayName) + "\n")
	}
	if card.Prompt != "" {
		b.WriteString(PromptStyle.Render(card.Prompt) + "\n")
	}
	b.WriteString("\n")
	for i, line := range card.Lines {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(renderLine(line))
	}

	style := CardStyle
	if selected {
		style = SelectedCardStyle
	}
	// Width excludes the border.
	return style.Width(width - 2).Render(b.String())
}

func renderLine(line profiles.CardLine) string {
	value := ValueStyle.Render(line.Value)
	if line.Value == profiles.NotAvailable {
		value = NotAvailableStyle.Render(line.Value)
	}
	return LabelStyle.Render(line.Label+":") + " " + value
}

// RenderCards stacks the cards for list in order. The card at cursor is
// highlighted; pass -1 for none.
func RenderCards(list []profiles.Profile, mode profiles.DisplayMode, width, cursor int) string {
	if len(list) == 0 {
		return HelperTextStyle.Render("No profiles yet.")
	}
	cards := make([]string, len(list))
	for i, p := range list {
		cards[i] = RenderCard(p, mode, width, i == cursor)
	}
	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}

// RenderAlert draws the banner for a, or returns "" when there is none.
func RenderAlert(a *controller.Alert, width int) string {
	if a == nil {
		return ""
	}
	style := AlertErrorStyle
	if a.Kind == controller.AlertWarning {
		style = AlertWarningStyle
	}
	if width > 0 {
		style = style.Width(width)
	}
	return style.Render(a.Message)
}
