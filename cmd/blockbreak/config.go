package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockbreak/internal/config"
)

var flagConfigDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration blockbreak would run with, after the search
order and flag overrides are applied. The source is reported on stderr.

Search order:
  1. --config <path>
  2. ~/.blockbreak/blockbreak.yaml
  3. ./configs/blockbreak.yaml
  4. built-in defaults

Examples:
  blockbreak config
  blockbreak config --defaults > ~/.blockbreak/blockbreak.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigDefaults, "defaults", false, "Print the built-in defaults file instead")
}

func runConfig(_ *cobra.Command, _ []string) {
	if flagConfigDefaults {
		os.Stdout.Write(config.DefaultYAML()) //nolint:errcheck // Best-effort write to stdout
		return
	}

	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		fail(err)
	}
	if flagFPS != 0 {
		cfg.Frontend.TickRate = flagFPS
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		fail(err)
	}

	fmt.Fprintf(os.Stderr, "# source: %s\n", source)
	os.Stdout.Write(data) //nolint:errcheck // Best-effort write to stdout
}
