package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"
	"github.com/ruminaider/profilectl/cmd/profilectl/tui"
	"github.com/ruminaider/profilectl/internal/api"
	"github.com/ruminaider/profilectl/internal/config"
	"github.com/ruminaider/profilectl/internal/controller"
	"github.com/ruminaider/profilectl/internal/identity"
	"github.com/ruminaider/profilectl/internal/opener"
	"github.com/ruminaider/profilectl/internal/paths"
	"github.com/ruminaider/profilectl/internal/profiles"
	"github.com/spf13/cobra"
)

// Persistent flags.
var (
	flagServer  string
	flagUser    string
	flagConfig  string
	flagOpener  string
	flagVerbose bool
)

// app is the wiring shared by every command that talks to the server.
type app struct {
	cfg    config.Config
	client *api.Client
	ctrl   *controller.Controller
	mode   profiles.DisplayMode
	log    *slog.Logger
	out    io.Writer
	errOut io.Writer
}

func isInteractive() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func configPath() string {
	if flagConfig != "" {
		return flagConfig
	}
	return paths.ConfigFile()
}

// loadConfig layers the config file, .env and process environment, and
// persistent flags, later sources winning.
func loadConfig(getenv func(string) string) (config.Config, error) {
	if err := config.LoadDotEnv(paths.DotEnvFile()); err != nil {
		return config.Config{}, err
	}
	cfg, err := config.Load(configPath())
	if err != nil {
		return config.Config{}, err
	}
	cfg.ApplyEnv(getenv)

	if flagServer != "" {
		cfg.Server = flagServer
	}
	if flagUser != "" {
		cfg.Username = flagUser
	}
	if flagOpener != "" {
		cfg.Opener.URL = flagOpener
	}
	return cfg, nil
}

func newApp(cmd *cobra.Command) (*app, error) {
	cfg, err := loadConfig(os.Getenv)
	if err != nil {
		return nil, err
	}
	timeout, err := cfg.TimeoutDuration()
	if err != nil {
		return nil, err
	}

	log := newLogger(cmd.ErrOrStderr(), flagVerbose)
	username := identity.Resolve(cfg.Username)

	client := api.New(cfg.Server, username, timeout)
	client.DefaultsPath = cfg.DefaultsPath
	client.Logger = log

	notifier, err := opener.New(cfg.Opener.URL, cfg.Opener.Origin, cfg.Opener.AllowedOrigins, cmd.OutOrStdout())
	if err != nil {
		return nil, err
	}

	mode := profiles.ZeroAsNA
	if !cfg.ZeroAsNA() {
		mode = profiles.ExplicitPresence
	}

	log.Debug("configured", "server", cfg.Server, "user", username, "opener", cfg.Opener.URL)
	return &app{
		cfg:    cfg,
		client: client,
		ctrl:   controller.New(client, controller.Options{Username: username, Notifier: notifier, Logger: log}),
		mode:   mode,
		log:    log,
		out:    cmd.OutOrStdout(),
		errOut: cmd.ErrOrStderr(),
	}, nil
}

// load fetches the list and defaults, reporting the guest warning. Missing
// defaults only cost the form its placeholders.
func (a *app) load(ctx context.Context) error {
	err := a.ctrl.Load(ctx, "")
	a.printWarning()
	if err != nil && a.ctrl.Snapshot().Loaded {
		a.log.Warn("loading defaults failed", "err", err)
		return nil
	}
	return err
}

// printWarning tells guests their profiles are shared. It goes by the
// resolved username because a later error can replace the warning alert.
func (a *app) printWarning() {
	if identity.IsGuest(a.ctrl.Username()) {
		fmt.Fprintf(a.errOut, "warning: %s\n", identity.GuestWarning)
	}
}

// printList renders the current list as cards.
func (a *app) printList() {
	fmt.Fprintln(a.out, tui.RenderCards(a.ctrl.Snapshot().Profiles, a.mode, tui.CardWidth, -1))
}

// profileArg returns the name given on the command line, or asks for one on
// a terminal. The list must already be loaded.
func (a *app) profileArg(args []string, title string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if !isInteractive() {
		return "", errors.New("a profile name is required")
	}
	list := a.ctrl.Snapshot().Profiles
	if len(list) == 0 {
		return "", errors.New("no profiles to choose from")
	}
	return pickOne(title, list)
}

// cancelled reports a user abort as a clean exit.
func (a *app) cancelled(err error) error {
	if errors.Is(err, huh.ErrUserAborted) {
		fmt.Fprintln(a.errOut, "Cancelled.")
		return nil
	}
	return err
}
