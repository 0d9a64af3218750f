package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/blockbreak/internal/breakout"
)

var (
	flagSimTicks  int
	flagSimFormat string
	flagSimBlocks bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run the simulation headless",
	Long: `Advance the simulation without any frontend and print the final state
with collision totals. With --log-level debug every collision is logged.

Examples:
  blockbreak sim --ticks 1000
  blockbreak sim --ticks 5000 --format yaml --blocks
  blockbreak sim --ticks 200 --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimTicks, "ticks", 1000, "Number of ticks to simulate")
	simCmd.Flags().StringVar(&flagSimFormat, "format", "text", "Output format: text, yaml")
	simCmd.Flags().BoolVar(&flagSimBlocks, "blocks", false, "Include every block in yaml output")
}

func runSim(_ *cobra.Command, _ []string) {
	if flagSimTicks < 0 {
		fail(fmt.Errorf("--ticks must not be negative, got %d", flagSimTicks))
	}
	if flagSimFormat != "text" && flagSimFormat != "yaml" {
		fail(fmt.Errorf("unknown format %q", flagSimFormat))
	}

	logger := newLogger("blockbreak-sim")
	cfg := loadConfig(logger)

	sim := breakout.New(cfg)
	sum := sim.Run(flagSimTicks, func(r breakout.StepResult) {
		for _, ev := range r.Events {
			logger.Debug("collision", "tick", r.Tick, "event", ev.String())
		}
	})
	logger.Info("simulation finished", "ticks", sum.Ticks, "remaining", sum.Final.Remaining)

	if flagSimFormat == "yaml" {
		if !flagSimBlocks {
			sum.Final.Blocks = nil
		}
		enc := yaml.NewEncoder(os.Stdout)
		enc.SetIndent(2)
		if err := enc.Encode(sum); err != nil {
			fail(fmt.Errorf("encode summary: %w", err))
		}
		if err := enc.Close(); err != nil {
			fail(fmt.Errorf("encode summary: %w", err))
		}
		return
	}

	printSummary(sum)
}

func printSummary(sum breakout.Summary) {
	snap := sum.Final

	fmt.Printf("Ticks:     %d\n", sum.Ticks)
	fmt.Printf("Ball:      (%.2f, %.2f) velocity (%.2f, %.2f)\n", snap.Ball.X, snap.Ball.Y, snap.Ball.VX, snap.Ball.VY)
	fmt.Printf("Paddle:    x=%.2f direction %+.0f\n", snap.Paddle.X, snap.Paddle.Direction)
	fmt.Printf("Blocks:    %d/%d remaining\n", snap.Remaining, len(snap.Blocks))
	if snap.Remaining == 0 && len(snap.Blocks) > 0 {
		fmt.Println("           CLEARED")
	}

	if len(sum.Events) == 0 {
		return
	}

	kinds := make([]string, 0, len(sum.Events))
	for k := range sum.Events {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)

	fmt.Println()
	fmt.Println("Collisions:")
	for _, k := range kinds {
		fmt.Printf("  %-12s %d\n", k, sum.Events[k])
	}
}
