package profiles_test

import (
	"encoding/json"
	"testing"

	"github.com/ruminaider/profilectl/internal/profiles"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyGenerated(t *testing.T) {
	gen := profiles.Generated{
		Name:        "lawyer-bot",
		Icon:        "bi-briefcase",
		DisplayName: "Lawyer Bot",
		Prompt:      "Act as a lawyer",
	}

	t.Run("keeps a name already typed", func(t *testing.T) {
		f := profiles.Fields{Profile: profiles.Profile{Name: "custom"}}
		f.ApplyGenerated(gen)

		assert.Equal(t, "custom", f.Name)
		assert.Equal(t, "bi-briefcase", f.Icon)
		assert.Equal(t, "Lawyer Bot", f.DisplayName)
		assert.Equal(t, "Act as a lawyer", f.Prompt)
		assert.Equal(t, "Act as a lawyer", f.Profession)
	})

	t.Run("fills a blank name", func(t *testing.T) {
		var f profiles.Fields
		f.ApplyGenerated(gen)
		assert.Equal(t, "lawyer-bot", f.Name)
	})

	t.Run("leaves other fields alone", func(t *testing.T) {
		f := profiles.Fields{Profile: profiles.Profile{TTS: "nova", Temperature: "0.2"}}
		f.ApplyGenerated(gen)
		assert.Equal(t, "nova", f.TTS)
		assert.Equal(t, profiles.Number("0.2"), f.Temperature)
	})
}

func TestFieldsFrom(t *testing.T) {
	p := profiles.Profile{Name: "coach", Prompt: "Be a coach"}
	f := profiles.FieldsFrom(p)
	assert.Equal(t, p, f.Profile)
	assert.Equal(t, "Be a coach", f.Profession)

	p.Extra = map[string]json.RawMessage{"model": json.RawMessage(`"gpt-4o"`)}
	assert.Nil(t, profiles.FieldsFrom(p).Extra)
}

func TestDefaultsPlaceholders(t *testing.T) {
	var d profiles.Defaults
	require.NoError(t, json.Unmarshal([]byte(`{"temperature":0.7,"top_p":1,"frequency_penalty":0,"presence_penalty":0,"max_tokens":2048}`), &d))

	got := d.Placeholders()
	assert.Equal(t, map[string]string{
		"temperature":       "0.7 (default)",
		"top_p":             "1 (default)",
		"frequency_penalty": "0 (default)",
		"presence_penalty":  "0 (default)",
		"max_tokens":        "2048 (default)",
	}, got)
}

func TestDefaultsPlaceholdersSkipsUnknown(t *testing.T) {
	d := profiles.Defaults{Temperature: "1"}
	assert.Equal(t, map[string]string{"temperature": "1 (default)"}, d.Placeholders())
}

func TestDefaultsParam(t *testing.T) {
	d := profiles.Defaults{TopP: "0.95", MaxTokens: "1024"}
	assert.Equal(t, profiles.Number("0.95"), d.Param(profiles.KeyTopP))
	assert.Equal(t, profiles.Number("1024"), d.Param(profiles.KeyMaxTokens))
	assert.False(t, d.Param(profiles.KeyTemperature).IsSet())
	assert.False(t, d.Param("seed").IsSet())
}
