package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/ruminaider/profilectl/internal/config"
	"github.com/spf13/cobra"
)

var version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:   "profilectl",
	Short: "Manage AI chat profiles",
	Long: "profilectl lists, edits and generates the AI chat profiles (named system-prompt " +
		"presets with generation parameters) stored by a profile server.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: the interactive manager on a terminal, the list otherwise.
		if isInteractive() {
			return uiCmd.RunE(cmd, args)
		}
		return listCmd.RunE(cmd, args)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "profilectl %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagServer, "server", "", "profile server base URL (env "+config.EnvServer+")")
	rootCmd.PersistentFlags().StringVarP(&flagUser, "user", "u", "", "username to act as (env "+config.EnvUsername+")")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (default ~/.profilectl/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&flagOpener, "opener", "", `where to announce updated profiles: ws(s)/http(s) URL or "-" for stdout`)
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "log requests to stderr")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(duplicateCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(defaultsCmd)
	rootCmd.AddCommand(uiCmd)
	rootCmd.AddCommand(configCmd)
}

func main() {
	if err := run(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}
