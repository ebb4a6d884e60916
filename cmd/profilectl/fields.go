package main

import (
	"github.com/ruminaider/profilectl/cmd/profilectl/tui"
	"github.com/ruminaider/profilectl/internal/controller"
	"github.com/ruminaider/profilectl/internal/profiles"
	"github.com/spf13/cobra"
)

// fieldFlags binds one flag per profile field. Only flags given on the
// command line are copied into a form.
type fieldFlags struct {
	name        string
	displayName string
	icon        string
	prompt      string
	tts         string
	sortedIndex string
	params      map[string]*string
}

var paramFlagNames = map[string]string{
	profiles.KeyTemperature:      "temperature",
	profiles.KeyTopP:             "top-p",
	profiles.KeyFrequencyPenalty: "frequency-penalty",
	profiles.KeyPresencePenalty:  "presence-penalty",
	profiles.KeyMaxTokens:        "max-tokens",
}

func (ff *fieldFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&ff.name, "name", "", "profile name")
	fs.StringVar(&ff.displayName, "display-name", "", "display name (defaults to the name)")
	fs.StringVar(&ff.icon, "icon", "", "icon identifier, e.g. bi-robot")
	fs.StringVar(&ff.prompt, "prompt", "", "system prompt")
	fs.StringVar(&ff.tts, "tts", "", "text-to-speech voice")
	fs.StringVar(&ff.sortedIndex, "sorted-index", "", "sort position")

	ff.params = make(map[string]*string, len(profiles.ParamKeys))
	for _, key := range profiles.ParamKeys {
		v := new(string)
		ff.params[key] = v
		fs.StringVar(v, paramFlagNames[key], "", profiles.ParamLabel(key)+" (blank uses the server default)")
	}
}

// apply copies every flag set on cmd into f and reports whether any was.
func (ff *fieldFlags) apply(cmd *cobra.Command, f *profiles.Fields) bool {
	fs := cmd.Flags()
	changed := false
	set := func(flag string, dst *string, v string) {
		if fs.Changed(flag) {
			*dst = v
			changed = true
		}
	}

	set("name", &f.Name, ff.name)
	set("display-name", &f.DisplayName, ff.displayName)
	set("icon", &f.Icon, ff.icon)
	set("prompt", &f.Prompt, ff.prompt)
	set("tts", &f.TTS, ff.tts)
	set("sorted-index", (*string)(&f.SortedIndex), ff.sortedIndex)
	for _, key := range profiles.ParamKeys {
		set(paramFlagNames[key], tui.ParamField(f, key), *ff.params[key])
	}
	return changed
}

// fillForm applies flags to the open form and, when none were given on a
// terminal, lets the user edit it interactively. It returns
// huh.ErrUserAborted when the user cancels.
func fillForm(cmd *cobra.Command, ff *fieldFlags, ctrl *controller.Controller) error {
	st := ctrl.Snapshot()
	f := st.Form
	if !ff.apply(cmd, &f) && isInteractive() {
		if err := tui.NewProfileForm(&f, st.Placeholders, st.Mode).Run(); err != nil {
			return err
		}
	}
	ctrl.SetForm(f)
	return nil
}
