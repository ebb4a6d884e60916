package main

import (
	"errors"

	"github.com/ruminaider/profilectl/cmd/profilectl/tui"
	"github.com/spf13/cobra"
)

var uiProfileName string

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Open the interactive profile manager",
	Long: "Open the full-screen profile manager. --profile-name opens that profile " +
		"for editing as soon as the list has loaded.",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !isInteractive() {
			return errors.New("the profile manager needs a terminal; use list, create or edit instead")
		}
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		return tui.Run(cmd.Context(), a.ctrl, tui.Options{
			DeepLink: uiProfileName,
			Mode:     a.mode,
		})
	},
}

func init() {
	uiCmd.Flags().StringVar(&uiProfileName, "profile-name", "", "profile to open for editing on start")
}
