package profiles

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"
	"strings"
)

// Profile is a named system-prompt preset as stored by the backend.
// Name is the resource key and is unique per user.
type Profile struct {
	Name             string `json:"name"`
	Icon             string `json:"icon"`
	DisplayName      string `json:"displayName"`
	Prompt           string `json:"prompt"`
	TTS              string `json:"tts"`
	SortedIndex      Number `json:"sortedIndex"`
	Temperature      Number `json:"temperature"`
	TopP             Number `json:"top_p"`
	FrequencyPenalty Number `json:"frequency_penalty"`
	PresencePenalty  Number `json:"presence_penalty"`
	MaxTokens        Number `json:"max_tokens"`

	// Extra holds fields the backend returned that Profile does not model.
	// They are written back unchanged.
	Extra map[string]json.RawMessage `json:"-"`
}

// profileJSON has Profile's fields without its JSON methods.
type profileJSON Profile

var knownKeys = []string{
	"name", "icon", "displayName", "prompt", "tts", "sortedIndex",
	KeyTemperature, KeyTopP, KeyFrequencyPenalty, KeyPresencePenalty, KeyMaxTokens,
}

// UnmarshalJSON decodes the modeled fields and keeps the rest in Extra.
func (p *Profile) UnmarshalJSON(data []byte) error {
	if string(bytes.TrimSpace(data)) == "null" {
		return nil
	}
	var known profileJSON
	if err := json.Unmarshal(data, &known); err != nil {
		return err
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	for _, key := range knownKeys {
		delete(raw, key)
	}

	*p = Profile(known)
	if len(raw) > 0 {
		p.Extra = raw
	}
	return nil
}

// MarshalJSON encodes the modeled fields over the ones kept in Extra.
func (p Profile) MarshalJSON() ([]byte, error) {
	data, err := json.Marshal(profileJSON(p))
	if err != nil || len(p.Extra) == 0 {
		return data, err
	}

	var known map[string]json.RawMessage
	if err := json.Unmarshal(data, &known); err != nil {
		return nil, err
	}
	merged := maps.Clone(p.Extra)
	maps.Copy(merged, known)
	return json.Marshal(merged)
}

// Generation parameter keys, in form order.
const (
	KeyTemperature      = "temperature"
	KeyTopP             = "top_p"
	KeyFrequencyPenalty = "frequency_penalty"
	KeyPresencePenalty  = "presence_penalty"
	KeyMaxTokens        = "max_tokens"
)

// ParamKeys lists the generation parameter keys in display order.
var ParamKeys = []string{
	KeyTemperature,
	KeyTopP,
	KeyFrequencyPenalty,
	KeyPresencePenalty,
	KeyMaxTokens,
}

// Param returns the generation parameter stored under key.
func (p Profile) Param(key string) Number {
	switch key {
	case KeyTemperature:
		return p.Temperature
	case KeyTopP:
		return p.TopP
	case KeyFrequencyPenalty:
		return p.FrequencyPenalty
	case KeyPresencePenalty:
		return p.PresencePenalty
	case KeyMaxTokens:
		return p.MaxTokens
	}
	return ""
}

// WithDefaultDisplayName fills a blank display name with the profile name.
func WithDefaultDisplayName(p Profile) Profile {
	if p.DisplayName == "" {
		p.DisplayName = p.Name
	}
	return p
}

// Duplicate returns a copy of p under a derived identity. Every other field,
// including Extra, is carried over as-is.
func Duplicate(p Profile) Profile {
	p.Extra = maps.Clone(p.Extra)
	p.Name = p.Name + "-copy"
	p.DisplayName = p.DisplayName + " (Copy)"
	return p
}

// Find looks up a profile by exact name.
func Find(list []Profile, name string) (Profile, bool) {
	for _, p := range list {
		if p.Name == name {
			return p, true
		}
	}
	return Profile{}, false
}

// Names returns the profile names in list order.
func Names(list []Profile) []string {
	names := make([]string, 0, len(list))
	for _, p := range list {
		names = append(names, p.Name)
	}
	return names
}

// ProfileSummary returns a one-line human-readable summary of a profile.
func ProfileSummary(p Profile) string {
	var parts []string
	if p.DisplayName != "" && p.DisplayName != p.Name {
		parts = append(parts, p.DisplayName)
	}
	if p.Icon != "" {
		parts = append(parts, p.Icon)
	}
	if p.TTS != "" {
		parts = append(parts, "tts "+p.TTS)
	}

	overrides := 0
	for _, key := range ParamKeys {
		if p.Param(key).IsSet() {
			overrides++
		}
	}
	if overrides > 0 {
		parts = append(parts, fmt.Sprintf("%d %s", overrides, pluralize("override", overrides)))
	}

	if len(parts) == 0 {
		return "no metadata"
	}
	return strings.Join(parts, ", ")
}

func pluralize(word string, count int) string {
	if count == 1 {
		return word
	}
	return word + "s"
}
