// Package cli wires the appearance engine to a command line.
package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/TudorHulban/appearance/internal/config"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	out    io.Writer
	root   *cobra.Command
	config *config.Config
	logger *zap.Logger

	configPath string
	debug      bool
}

func NewApp(out io.Writer) *App {
	a := &App{
		out:    out,
		logger: zap.NewNop(),
	}

	a.root = &cobra.Command{
		Use:   "appearance",
		Short: "Compute time pupil and tutor spent together in a lesson",
		Long: `Appearance computes, for a lesson window, the total time during which
both the pupil and the tutor were connected, from their raw login/logout timestamps.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return a.setup()
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			_ = a.logger.Sync()
		},
	}

	a.root.SetOut(out)

	a.root.PersistentFlags().StringVar(&a.configPath, "config", config.DefaultConfigPath(), "Path to TOML config file")
	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.computeCmd())
	a.root.AddCommand(a.validateCmd())

	return a
}

func (a *App) setup() error {
	cfg, err := config.LoadFrom(a.configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if a.debug {
		cfg.Log.Level = "debug"
	}

	logger, err := newLogger(cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}

	color.NoColor = color.NoColor || !cfg.Output.Color

	a.config = cfg
	a.logger = logger

	return nil
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Fprintf(a.out, "appearance %s (commit: %s)\n", Version, Commit)
		},
	}
}

// SetArgs overrides os.Args, used by tests.
func (a *App) SetArgs(args []string) {
	a.root.SetArgs(args)
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}
