package profiles

// DisplayMode decides how parameter values render on a card.
type DisplayMode int

const (
	// ZeroAsNA treats any value that parses to zero like an absent one and
	// shows "n/a", whether the backend sent 0, "0" or "0.0".
	ZeroAsNA DisplayMode = iota
	// ExplicitPresence shows "n/a" only for unset values, so 0 shows as 0.
	ExplicitPresence
)

// NotAvailable is shown for parameters without a value.
const NotAvailable = "n/a"

// CardLine is a labeled value on a profile card.
type CardLine struct {
	Label string
	Value string
}

// Card is the display projection of a profile.
type Card struct {
	Title       string
	Icon        string
	DisplayName string
	Prompt      string
	Lines       []CardLine
}

var paramLabels = map[string]string{
	KeyTemperature:      "Temperature",
	KeyTopP:             "Top P",
	KeyFrequencyPenalty: "Frequency Penalty",
	KeyPresencePenalty:  "Presence Penalty",
	KeyMaxTokens:        "Max Tokens",
}

// ParamLabel returns the display label for a parameter key.
func ParamLabel(key string) string {
	return paramLabels[key]
}

// NewCard projects p into display text.
func NewCard(p Profile, mode DisplayMode) Card {
	c := Card{
		Title:       p.Name,
		Icon:        p.Icon,
		DisplayName: p.DisplayName,
		Prompt:      p.Prompt,
		Lines: []CardLine{
			{Label: "TTS", Value: p.TTS},
			{Label: "Sorted Index", Value: p.SortedIndex.String()},
		},
	}
	for _, key := range ParamKeys {
		c.Lines = append(c.Lines, CardLine{
			Label: paramLabels[key],
			Value: DisplayValue(p.Param(key), mode),
		})
	}
	return c
}

// DisplayValue renders a parameter, falling back to NotAvailable.
func DisplayValue(v Number, mode DisplayMode) string {
	if !v.IsSet() {
		return NotAvailable
	}
	if mode == ZeroAsNA && v.IsZero() {
		return NotAvailable
	}
	return v.String()
}
