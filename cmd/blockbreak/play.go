package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockbreak/internal/registry"
)

const defaultFrontend = "tui"

var playCmd = &cobra.Command{
	Use:   "play [frontend]",
	Short: "Watch the arena",
	Long: `Start the arena in the given frontend (default: tui).

Controls:
  P/Space/Esc - Pause
  N           - Step one tick while paused
  R           - Restart
  Ctrl+S      - Screenshot to ~/.blockbreak/screenshots
  Q/Ctrl+C    - Quit

Examples:
  blockbreak play
  blockbreak play window
  blockbreak play --config ./arena.yaml --fps 30`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Watch the arena in a desktop window",
	Long: `Shortcut for 'blockbreak play window'. The window size follows the
arena size times frontend.scale from the configuration.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		runPlay(cmd, []string{"window"})
	},
}

func runPlay(_ *cobra.Command, args []string) {
	id := defaultFrontend
	if len(args) == 1 {
		id = args[0]
	}

	if !registry.Exists(id) {
		fmt.Fprintf(os.Stderr, "Error: unknown frontend %q\n", id)
		fmt.Fprintln(os.Stderr, "Run 'blockbreak list' to see available frontends.")
		os.Exit(1)
	}

	logger := newLogger("blockbreak")
	cfg := loadConfig(logger)

	frontend, err := registry.Create(id)
	if err != nil {
		fail(err)
	}

	ctx, stop := signalContext()
	defer stop()

	if err := frontend.Run(ctx, registry.Env{Config: cfg, Logger: logger}); err != nil {
		stop()
		fail(err)
	}
}
