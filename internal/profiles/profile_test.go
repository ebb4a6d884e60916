package profiles_test

import (
	"encoding/json"
	"testing"

	"github.com/ruminaider/profilectl/internal/profiles"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithDefaultDisplayName(t *testing.T) {
	t.Run("blank display name takes the name", func(t *testing.T) {
		p := profiles.WithDefaultDisplayName(profiles.Profile{Name: "coach"})
		assert.Equal(t, "coach", p.DisplayName)
	})

	t.Run("set display name is kept", func(t *testing.T) {
		p := profiles.WithDefaultDisplayName(profiles.Profile{Name: "coach", DisplayName: "Life Coach"})
		assert.Equal(t, "Life Coach", p.DisplayName)
	})

	t.Run("blank name and display name stay blank", func(t *testing.T) {
		p := profiles.WithDefaultDisplayName(profiles.Profile{})
		assert.Empty(t, p.DisplayName)
	})
}

func TestDuplicate(t *testing.T) {
	src := profiles.Profile{
		Name:        "X",
		DisplayName: "Ex",
		Icon:        "bi-star",
		Prompt:      "Be X",
		TTS:         "alloy",
		SortedIndex: "3",
		Temperature: "0.4",
		MaxTokens:   "512",
	}

	dup := profiles.Duplicate(src)

	assert.Equal(t, "X-copy", dup.Name)
	assert.Equal(t, "Ex (Copy)", dup.DisplayName)

	want := src
	want.Name = "X-copy"
	want.DisplayName = "Ex (Copy)"
	assert.Equal(t, want, dup)

	// Source untouched.
	assert.Equal(t, "X", src.Name)
}

func TestFind(t *testing.T) {
	list := []profiles.Profile{{Name: "a"}, {Name: "b", Prompt: "bee"}}

	p, ok := profiles.Find(list, "b")
	require.True(t, ok)
	assert.Equal(t, "bee", p.Prompt)

	_, ok = profiles.Find(list, "B")
	assert.False(t, ok)

	_, ok = profiles.Find(nil, "a")
	assert.False(t, ok)
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, profiles.Names([]profiles.Profile{{Name: "a"}, {Name: "b"}}))
	assert.Empty(t, profiles.Names(nil))
}

func TestProfileSummary(t *testing.T) {
	tests := []struct {
		name string
		p    profiles.Profile
		want string
	}{
		{"empty", profiles.Profile{Name: "x"}, "no metadata"},
		{"display name equal to name is hidden", profiles.Profile{Name: "x", DisplayName: "x", Icon: "bi-star"}, "bi-star"},
		{"all parts", profiles.Profile{Name: "x", DisplayName: "Ex", Icon: "bi-star", TTS: "alloy", Temperature: "1"}, "Ex, bi-star, tts alloy, 1 override"},
		{"plural overrides", profiles.Profile{Name: "x", TopP: "1", MaxTokens: "10"}, "2 overrides"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, profiles.ProfileSummary(tt.p))
		})
	}
}

func TestProfileJSON(t *testing.T) {
	t.Run("decodes numbers strings and nulls", func(t *testing.T) {
		input := `{"name":"coach","displayName":"","icon":"bi-star","prompt":"Be a coach","tts":"","sortedIndex":1,
			"temperature":0.7,"top_p":"0.9","frequency_penalty":null,"max_tokens":0}`
		var p profiles.Profile
		require.NoError(t, json.Unmarshal([]byte(input), &p))

		assert.Equal(t, profiles.Number("1"), p.SortedIndex)
		assert.Equal(t, profiles.Number("0.7"), p.Temperature)
		assert.Equal(t, profiles.Number("0.9"), p.TopP)
		assert.False(t, p.FrequencyPenalty.IsSet())
		assert.False(t, p.PresencePenalty.IsSet())
		assert.True(t, p.MaxTokens.IsZero())
	})

	t.Run("encodes with the form field names", func(t *testing.T) {
		p := profiles.Profile{Name: "coach", Temperature: "0.5"}
		data, err := json.Marshal(p)
		require.NoError(t, err)
		assert.JSONEq(t, `{"name":"coach","icon":"","displayName":"","prompt":"","tts":"","sortedIndex":"",
			"temperature":"0.5","top_p":"","frequency_penalty":"","presence_penalty":"","max_tokens":""}`, string(data))
	})

	t.Run("keeps unmodeled fields", func(t *testing.T) {
		input := `{"name":"coach","prompt":"Be a coach","max_tokens":0,"model":"gpt-4o","tags":["work"]}`
		var p profiles.Profile
		require.NoError(t, json.Unmarshal([]byte(input), &p))
		assert.Equal(t, "coach", p.Name)
		assert.JSONEq(t, `"gpt-4o"`, string(p.Extra["model"]))
		assert.NotContains(t, p.Extra, "name")

		data, err := json.Marshal(profiles.Duplicate(p))
		require.NoError(t, err)
		var out map[string]any
		require.NoError(t, json.Unmarshal(data, &out))
		assert.Equal(t, "coach-copy", out["name"])
		assert.Equal(t, "gpt-4o", out["model"])
		assert.Equal(t, []any{"work"}, out["tags"])
		assert.Equal(t, "0", out["max_tokens"], "parameters are sent as form strings")
	})

	t.Run("rejects booleans", func(t *testing.T) {
		var p profiles.Profile
		assert.Error(t, json.Unmarshal([]byte(`{"temperature":true}`), &p))
	})
}

func TestNumber(t *testing.T) {
	assert.False(t, profiles.Number("").IsSet())
	assert.False(t, profiles.Number("  ").IsSet())
	assert.True(t, profiles.Number("0").IsSet())
	assert.True(t, profiles.Number("0").IsZero())
	assert.True(t, profiles.Number("0.0").IsZero())
	assert.False(t, profiles.Number("0.1").IsZero())
	assert.False(t, profiles.Number("").IsZero())
	assert.False(t, profiles.Number("abc").IsZero())
}
