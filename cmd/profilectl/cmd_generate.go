package main

import (
	"fmt"
	"strings"

	"github.com/ruminaider/profilectl/internal/profiles"
	"github.com/spf13/cobra"
)

var (
	generateSave bool
	generateName string
)

var generateCmd = &cobra.Command{
	Use:   "generate <profession>",
	Short: "Draft a profile for a profession",
	Long: "Ask the server to draft a profile (name, icon, display name and prompt) " +
		"for a profession. The draft is printed; --save stores it as a new profile.",
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		ctx := cmd.Context()
		a.printWarning()

		a.ctrl.OpenNew()
		if generateName != "" {
			f := a.ctrl.Form()
			f.Name = generateName
			a.ctrl.SetForm(f)
		}

		profession := strings.Join(args, " ")
		fmt.Fprintf(a.errOut, "Generating a profile for %q...\n", profession)
		if err := a.ctrl.Generate(ctx, profession); err != nil {
			return err
		}

		f := a.ctrl.Form()
		draft := profiles.WithDefaultDisplayName(f.Profile)
		if !generateSave {
			fmt.Fprintf(a.out, "name:         %s\n", draft.Name)
			fmt.Fprintf(a.out, "display name: %s\n", draft.DisplayName)
			fmt.Fprintf(a.out, "icon:         %s\n", draft.Icon)
			prompt, err := renderPrompt(draft.Prompt, false)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "prompt:\n%s", prompt)
			return nil
		}

		if err := a.ctrl.Submit(ctx); err != nil {
			return err
		}
		fmt.Fprintf(a.errOut, "Created profile %q\n", draft.Name)
		a.printList()
		return nil
	},
}

var defaultsCmd = &cobra.Command{
	Use:   "defaults",
	Short: "Show the server's generation parameter defaults",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		d, err := a.client.Defaults(cmd.Context())
		if err != nil {
			return err
		}

		for _, key := range profiles.ParamKeys {
			value := profiles.NotAvailable
			if v := d.Param(key); v.IsSet() {
				value = v.String()
			}
			fmt.Fprintf(a.out, "%-18s %s\n", profiles.ParamLabel(key)+":", value)
		}
		return nil
	},
}

func init() {
	generateCmd.Flags().BoolVar(&generateSave, "save", false, "store the draft as a new profile")
	generateCmd.Flags().StringVar(&generateName, "name", "", "keep this name instead of the generated one")
}
