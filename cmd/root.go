package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/godalming123/tinytile/internal/config"
	"github.com/godalming123/tinytile/internal/logger"
	"github.com/godalming123/tinytile/internal/tui"
	"github.com/godalming123/tinytile/internal/wm"
)

var (
	// Version is set by the main package
	Version = "0.1.0-dev"

	rootCmd = &cobra.Command{
		Use:   "tinytile",
		Short: "tinytile - a small stacking Wayland compositor",
		Long: `tinytile is a fork of tinywl with keyboard driven window management:
Alt bindings to cycle, move, resize and maximize windows, a client list and a
popup message layer. Run it without arguments to start the compositor.`,
		Args:         validateArgs,
		RunE:         runCompositor,
		SilenceUsage: true,
	}
)

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(aboutCmd)
}

func validateArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("%s is not a valid option, use the `about` command to see some info", args[0])
	}
	return nil
}

func runCompositor(cmd *cobra.Command, args []string) error {
	if err := config.Init(); err != nil {
		return err
	}
	cfg := config.Get()
	logger.SetLevel(cfg.Logging.Level)

	// the terminal belongs to the compositor from here on
	path := tui.LogPath(cfg.Logging.File)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer f.Close()
	logger.SetOutput(f)
	defer logger.SetOutput(os.Stderr)

	b, err := tui.New(tui.WithLayout(cfg.Keyboard.Layout))
	if err != nil {
		logger.Error("failed to create backend", "err", err)
		return err
	}
	s, err := wm.New(cfg, b, wm.WithRasterizer(b.Rasterizer()))
	if err != nil {
		logger.Error("failed to create server", "err", err)
		return err
	}

	logger.Info("starting compositor", "version", Version, "log", path)
	if err := s.Run(); err != nil {
		logger.Error("compositor stopped", "err", err)
		return err
	}
	return nil
}
