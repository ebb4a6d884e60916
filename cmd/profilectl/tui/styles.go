package tui

import (
	catppuccin "github.com/catppuccin/go"
	"github.com/charmbracelet/lipgloss"
)

// CardWidth is the default width of a profile card when the terminal width
// is unknown.
const CardWidth = 60

// Catppuccin Mocha palette.
var flavor = catppuccin.Mocha

var (
	colorBase     = lipgloss.Color(flavor.Base().Hex)
	colorMantle   = lipgloss.Color(flavor.Mantle().Hex)
	colorSurface0 = lipgloss.Color(flavor.Surface0().Hex)
	colorSurface1 = lipgloss.Color(flavor.Surface1().Hex)
	colorText     = lipgloss.Color(flavor.Text().Hex)
	colorSubtext0 = lipgloss.Color(flavor.Subtext0().Hex)
	colorBlue     = lipgloss.Color(flavor.Blue().Hex)
	colorGreen    = lipgloss.Color(flavor.Green().Hex)
	colorRed      = lipgloss.Color(flavor.Red().Hex)
	colorYellow   = lipgloss.Color(flavor.Yellow().Hex)
	colorMauve    = lipgloss.Color(flavor.Mauve().Hex)
	colorOverlay0 = lipgloss.Color(flavor.Overlay0().Hex)
)

// Header styles.
var (
	// HeaderStyle is used for the screen title.
	HeaderStyle = lipgloss.NewStyle().
			Foreground(colorMauve).
			Bold(true)

	// UserStyle renders the signed-in user next to the title.
	UserStyle = lipgloss.NewStyle().
			Foreground(colorSubtext0)
)

// Card styles.
var (
	// CardStyle frames one profile.
	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSurface1).
			Padding(0, 1)

	// SelectedCardStyle frames the profile under the cursor.
	SelectedCardStyle = CardStyle.
				BorderForeground(colorBlue)

	CardTitleStyle = lipgloss.NewStyle().
			Foreground(colorBlue).
			Bold(true)

	IconStyle = lipgloss.NewStyle().
			Foreground(colorOverlay0).
			Italic(true)

	DisplayNameStyle = lipgloss.NewStyle().
				Foreground(colorText)

	PromptStyle = lipgloss.NewStyle().
			Foreground(colorSubtext0)

	LabelStyle = lipgloss.NewStyle().
			Foreground(colorOverlay0)

	ValueStyle = lipgloss.NewStyle().
			Foreground(colorGreen)

	// NotAvailableStyle dims parameters that fall back to server defaults.
	NotAvailableStyle = lipgloss.NewStyle().
				Foreground(colorOverlay0).
				Italic(true)
)

// Alert banner styles.
var (
	AlertWarningStyle = lipgloss.NewStyle().
				Foreground(colorBase).
				Background(colorYellow).
				Padding(0, 1)

	AlertErrorStyle = lipgloss.NewStyle().
			Foreground(colorBase).
			Background(colorRed).
			Padding(0, 1)
)

// Status bar styles.
var (
	// StatusBarStyle is the base style for the bottom status bar.
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(colorSubtext0).
			Background(colorSurface0).
			Padding(0, 1)

	// StatusBarKeyStyle highlights keyboard shortcuts in the status bar.
	StatusBarKeyStyle = lipgloss.NewStyle().
				Foreground(colorYellow).
				Background(colorSurface0).
				Bold(true)
)

// Overlay styles.
var (
	// OverlayStyle is the border and background for modal overlays.
	OverlayStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBlue).
			Background(colorMantle).
			Foreground(colorText).
			Padding(1, 2)

	// OverlayTitleStyle is used for the title text in overlays.
	OverlayTitleStyle = lipgloss.NewStyle().
				Foreground(colorBlue).
				Bold(true)

	// SpinnerStyle colors the busy indicator while a profile is generated.
	SpinnerStyle = lipgloss.NewStyle().
			Foreground(colorMauve)
)

// HelperTextStyle is used for dim hint lines.
var HelperTextStyle = lipgloss.NewStyle().
	Foreground(colorOverlay0)
