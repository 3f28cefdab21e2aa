package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-frogger/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective config as YAML",
	Long: `Prints the configuration a game would use, after the search order,
the difficulty preset and the --tick override are applied.

Save it as ~/.frogger/frogger.yaml or ./configs/frogger.yaml to customize.`,
	Run: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding config: %v\n", err)
		os.Exit(1)
	}
	if _, err := os.Stdout.Write(data); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing config: %v\n", err)
		os.Exit(1)
	}
}
