package tui

import (
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/ruminaider/profilectl/internal/controller"
	"github.com/ruminaider/profilectl/internal/profiles"
)

// ParamField returns the form slot holding the parameter key, or nil for an
// unknown key.
func ParamField(f *profiles.Fields, key string) *string {
	switch key {
	case profiles.KeyTemperature:
		return (*string)(&f.Temperature)
	case profiles.KeyTopP:
		return (*string)(&f.TopP)
	case profiles.KeyFrequencyPenalty:
		return (*string)(&f.FrequencyPenalty)
	case profiles.KeyPresencePenalty:
		return (*string)(&f.PresencePenalty)
	case profiles.KeyMaxTokens:
		return (*string)(&f.MaxTokens)
	}
	return nil
}

// NewProfileForm builds the edit form over f. Inputs write straight into f.
// Parameter inputs show the server default as placeholder text; leaving
// them blank keeps the parameter unset.
func NewProfileForm(f *profiles.Fields, placeholders map[string]string, mode controller.Mode) *huh.Form {
	title := "New profile"
	if mode.Editing {
		title = "Edit " + mode.Name
	}

	params := make([]huh.Field, 0, len(profiles.ParamKeys))
	for _, key := range profiles.ParamKeys {
		params = append(params, huh.NewInput().
			Key(key).
			Title(profiles.ParamLabel(key)).
			Placeholder(placeholders[key]).
			Value(ParamField(f, key)))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("name").
				Title("Name").
				Value(&f.Name),
			huh.NewInput().
				Key("displayName").
				Title("Display name").
				Placeholder("same as name").
				Value(&f.DisplayName),
			huh.NewInput().
				Key("icon").
				Title("Icon").
				Value(&f.Icon),
			huh.NewText().
				Key("prompt").
				Title("Prompt").
				Lines(5).
				Value(&f.Prompt),
			huh.NewInput().
				Key("tts").
				Title("TTS voice").
				Value(&f.TTS),
			huh.NewInput().
				Key("sortedIndex").
				Title("Sorted index").
				Value((*string)(&f.SortedIndex)),
		).Title(title).Description("Submit on the last field to "+strings.ToLower(mode.SubmitLabel())+"."),
		huh.NewGroup(params...).
			Title("Generation parameters").
			Description("Leave blank to use the server default."),
	).WithTheme(huh.ThemeCatppuccin()).WithShowHelp(true)
}
