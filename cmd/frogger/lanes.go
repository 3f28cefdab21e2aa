package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-frogger/internal/games/frogger"
)

var lanesCmd = &cobra.Command{
	Use:   "lanes",
	Short: "Show the lanes of the effective config",
	Long:  `Shows every log lane with its row, direction and speed after the difficulty preset is applied.`,
	Run:   runLanes,
}

func runLanes(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Lanes:")
	fmt.Println()
	fmt.Printf("  %-4s  %-4s  %-9s  %s\n", "Lane", "Row", "Direction", "Ticks/step")
	fmt.Printf("  %-4s  %-4s  %-9s  %s\n", "----", "---", "---------", "----------")

	for i, l := range cfg.Lanes {
		fmt.Printf("  %-4d  %-4d  %-9s  %d\n", i, l.Row, frogger.LaneDirection(i), l.SpeedTicks)
	}

	fmt.Println()
	fmt.Printf("New log every %d-%d ticks of %s.\n", cfg.Spawn.MinTicks, cfg.Spawn.MaxTicks-1, cfg.Timing.Tick)
}
