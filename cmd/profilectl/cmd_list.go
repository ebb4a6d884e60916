package main

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/ruminaider/profilectl/cmd/profilectl/tui"
	"github.com/ruminaider/profilectl/internal/profiles"
	"github.com/spf13/cobra"
)

var listShort bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List profiles",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		if err := a.load(cmd.Context()); err != nil {
			return err
		}

		list := a.ctrl.Snapshot().Profiles
		if len(list) == 0 {
			fmt.Fprintln(a.out, "No profiles configured.")
			return nil
		}
		if listShort {
			for _, p := range list {
				fmt.Fprintf(a.out, "  %s: %s\n", p.Name, profiles.ProfileSummary(p))
			}
			return nil
		}
		a.printList()
		return nil
	},
}

var showRaw bool

var showCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show one profile with its prompt rendered",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		if err := a.load(cmd.Context()); err != nil {
			return err
		}

		p, ok := profiles.Find(a.ctrl.Snapshot().Profiles, args[0])
		if !ok {
			return fmt.Errorf("profile %q not found", args[0])
		}

		fmt.Fprintln(a.out, tui.RenderCard(p, a.mode, tui.CardWidth, false))
		if p.Prompt == "" {
			return nil
		}
		prompt, err := renderPrompt(p.Prompt, showRaw)
		if err != nil {
			return err
		}
		fmt.Fprint(a.out, prompt)
		return nil
	},
}

// renderPrompt formats a prompt as markdown for the terminal. Raw output, or
// output to a pipe, skips styling.
func renderPrompt(prompt string, raw bool) (string, error) {
	if raw || !isInteractive() {
		return prompt + "\n", nil
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(tui.CardWidth),
	)
	if err != nil {
		return "", fmt.Errorf("creating markdown renderer: %w", err)
	}
	out, err := r.Render(prompt)
	if err != nil {
		return "", fmt.Errorf("rendering prompt: %w", err)
	}
	return out, nil
}

func init() {
	listCmd.Flags().BoolVar(&listShort, "short", false, "one line per profile")
	showCmd.Flags().BoolVar(&showRaw, "raw", false, "print the prompt without markdown styling")
}
