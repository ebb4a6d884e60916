package profiles

// Fields is the edit form record. It holds every profile field plus the
// profession prompt used by the generator, which is never sent as part of a
// profile.
type Fields struct {
	Profile
	Profession string
}

// FieldsFrom fills a form from an existing profile. The profession input is
// seeded with the prompt, as the browser form did. Only modeled fields are
// edited, so Extra is left behind.
func FieldsFrom(p Profile) Fields {
	p.Extra = nil
	return Fields{Profile: p, Profession: p.Prompt}
}

// Generated is the payload returned by the profile generator.
type Generated struct {
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	DisplayName string `json:"displayName"`
	Prompt      string `json:"prompt"`
}

// ApplyGenerated copies a generated profile into the form. Name is only
// filled when blank so a name typed by the user survives.
func (f *Fields) ApplyGenerated(g Generated) {
	f.Profession = g.Prompt
	if f.Name == "" {
		f.Name = g.Name
	}
	f.Icon = g.Icon
	f.DisplayName = g.DisplayName
	f.Prompt = g.Prompt
}

// Defaults holds the server-side generation parameter defaults.
type Defaults struct {
	Temperature      Number `json:"temperature"`
	TopP             Number `json:"top_p"`
	FrequencyPenalty Number `json:"frequency_penalty"`
	PresencePenalty  Number `json:"presence_penalty"`
	MaxTokens        Number `json:"max_tokens"`
}

// Param returns the default stored under a parameter key.
func (d Defaults) Param(key string) Number {
	switch key {
	case KeyTemperature:
		return d.Temperature
	case KeyTopP:
		return d.TopP
	case KeyFrequencyPenalty:
		return d.FrequencyPenalty
	case KeyPresencePenalty:
		return d.PresencePenalty
	case KeyMaxTokens:
		return d.MaxTokens
	}
	return ""
}

// Placeholders returns the form hint for each parameter key with a known
// default, e.g. "0.7 (default)".
func (d Defaults) Placeholders() map[string]string {
	out := make(map[string]string, len(ParamKeys))
	for _, key := range ParamKeys {
		if v := d.Param(key); v.IsSet() {
			out[key] = Placeholder(v)
		}
	}
	return out
}

// Placeholder formats a default value as a form hint.
func Placeholder(v Number) string {
	return v.String() + " (default)"
}
