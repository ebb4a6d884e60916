package tui

import (
	"testing"

	"github.com/ruminaider/profilectl/internal/controller"
	"github.com/ruminaider/profilectl/internal/profiles"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParamField(t *testing.T) {
	var f profiles.Fields
	for _, key := range profiles.ParamKeys {
		ptr := ParamField(&f, key)
		require.NotNil(t, ptr, key)
		*ptr = "1"
	}
	assert.Equal(t, profiles.Number("1"), f.Temperature)
	assert.Equal(t, profiles.Number("1"), f.TopP)
	assert.Equal(t, profiles.Number("1"), f.FrequencyPenalty)
	assert.Equal(t, profiles.Number("1"), f.PresencePenalty)
	assert.Equal(t, profiles.Number("1"), f.MaxTokens)
	assert.Nil(t, ParamField(&f, "seed"))
}

func TestNewProfileForm(t *testing.T) {
	f := profiles.FieldsFrom(profiles.Profile{Name: "coach", Prompt: "Be a coach"})
	form := NewProfileForm(&f, map[string]string{profiles.KeyTemperature: "0.7 (default)"}, controller.EditMode("coach"))
	require.NotNil(t, form)
	form.Init()

	view := form.View()
	assert.Contains(t, view, "Edit coach")
	assert.Contains(t, view, "Name")
}
