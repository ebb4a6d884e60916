package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"
	"github.com/ruminaider/profilectl/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage profilectl configuration",
	Long:  "Commands for creating and inspecting ~/.profilectl/config.yaml.",
}

var configInitForce bool

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file",
	Long: "Write a config file from the persistent flags. On a terminal, a short form " +
		"asks for the server and username first.",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configPath()
		if _, err := os.Stat(path); err == nil && !configInitForce {
			return fmt.Errorf("config already exists at %s\nUse --force to overwrite it", path)
		}

		cfg := config.Default()
		if flagServer != "" {
			cfg.Server = flagServer
		}
		cfg.Username = flagUser
		cfg.Opener.URL = flagOpener

		if isInteractive() {
			zeroAsNA := true
			err := huh.NewForm(
				huh.NewGroup(
					huh.NewInput().
						Title("Profile server URL").
						Value(&cfg.Server),
					huh.NewInput().
						Title("Username").
						Description("Leave blank to browse as guest.").
						Value(&cfg.Username),
					huh.NewConfirm().
						Title("Show zero-valued parameters as n/a?").
						Value(&zeroAsNA),
				),
			).Run()
			if err != nil {
				if errors.Is(err, huh.ErrUserAborted) {
					fmt.Fprintln(cmd.ErrOrStderr(), "Cancelled.")
					return nil
				}
				return err
			}
			if !zeroAsNA {
				cfg.Display.ZeroAsNA = &zeroAsNA
			}
		}

		data, err := config.Marshal(cfg)
		if err != nil {
			return err
		}
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return fmt.Errorf("creating config dir: %w", err)
		}
		if err := os.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("writing config: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Long:  "Print the configuration after the config file, .env, environment and flags are applied.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(os.Getenv)
		if err != nil {
			return err
		}
		data, err := config.Marshal(cfg)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "# %s\n%s", configPath(), data)
		return nil
	},
}

func init() {
	configInitCmd.Flags().BoolVar(&configInitForce, "force", false, "overwrite an existing config file")

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
}
