// blockbreak is a self-running breakout arena: a ball bounces around an
// 800x600 field, breaking blocks, while a paddle patrols the bottom.
//
// Usage:
//
//	blockbreak list              - List available frontends
//	blockbreak play [frontend]   - Watch the arena (default: tui)
//	blockbreak window            - Watch the arena in a desktop window
//	blockbreak sim               - Run headless and print the final state
//	blockbreak frame             - Render the state after N ticks to PNG
//	blockbreak serve             - Start SSH server for remote viewing
//	blockbreak config            - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Configuration file (default: search order)
//	--fps <rate>        - Override the tick rate
//	--log-level <lvl>   - debug, info, warn or error (default: info)
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockbreak/internal/config"

	// Import frontends to register them
	_ "github.com/vovakirdan/blockbreak/internal/platform/tui"
	_ "github.com/vovakirdan/blockbreak/internal/platform/window"
)

var (
	// Global flags
	flagConfig   string
	flagFPS      int
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blockbreak",
	Short: "Blockbreak - a self-playing breakout arena",
	Long: `Blockbreak runs a deterministic breakout simulation: one ball, a grid
of blocks and an autonomous paddle. Nothing is steered by the player;
frontends only watch, pause and restart it.

Available commands:
  list     - Show all frontends
  play     - Watch the arena in a frontend
  window   - Watch the arena in a desktop window
  sim      - Run headless for N ticks
  frame    - Export a PNG frame
  serve    - Start SSH server for remote viewing
  config   - Print the effective configuration

Examples:
  blockbreak play
  blockbreak window
  blockbreak sim --ticks 5000 --format yaml
  blockbreak frame --ticks 600 --out arena.png
  blockbreak serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to configuration YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = use config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(frameCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the process logger. Everything goes to stderr so stdout
// stays clean for command output.
func newLogger(prefix string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

// loadConfig loads the configuration and applies flag overrides.
// Exits on error.
func loadConfig(logger *log.Logger) config.Config {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		fail(err)
	}

	if flagFPS != 0 {
		cfg.Frontend.TickRate = flagFPS
		if err := cfg.Validate(); err != nil {
			fail(fmt.Errorf("--fps: %w", err))
		}
	}

	logger.Debug("configuration loaded", "source", source)
	return cfg
}

// signalContext is cancelled on SIGINT or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
