// frogger is a terminal Frogger: cross the river on drifting logs and fill
// every pod before running out of lives.
//
// Usage:
//
//	frogger play             - Play a game
//	frogger lanes            - Show the lanes of the effective config
//	frogger config           - Print the effective config as YAML
//	frogger backends         - List render backends
//	frogger keys             - Show the key bindings
//
// Global flags:
//
//	--config <path>       - Config file (default search: ~/.frogger, ./configs, embedded)
//	--difficulty <level>  - easy, normal or hard
//	--seed <value>        - RNG seed for reproducible spawns
//	--tick <duration>     - Override the tick length
//	--log <path>          - Write a debug log to a file
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-frogger/internal/config"

	// Import backends to register them
	_ "github.com/vovakirdan/tui-frogger/internal/platform/term"
	_ "github.com/vovakirdan/tui-frogger/internal/platform/tui"
)

var (
	// Global flags
	flagConfig     string
	flagDifficulty string
	flagSeed       int64
	flagTick       time.Duration
	flagLogPath    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "frogger",
	Short: "Frogger - cross the river in your terminal",
	Long: `Frogger is a terminal game: hop across the river on drifting logs and
land in each of the five pods at the top. Falling in the water costs a life.

Available commands:
  play      - Play a game
  lanes     - Show the lanes of the effective config
  config    - Print the effective config as YAML
  backends  - List render backends
  keys      - Show the key bindings

Examples:
  frogger play
  frogger play --difficulty hard
  frogger play --backend tcell --seed 42
  frogger config > ~/.frogger/frogger.yaml`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a frogger.yaml config")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().DurationVar(&flagTick, "tick", 0, "Tick length override, e.g. 10ms (0 = from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write a debug log to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(lanesCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(backendsCmd)
	rootCmd.AddCommand(keysCmd)
}

// loadConfig loads the config and applies the global flag overrides.
func loadConfig() (config.FroggerConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.FroggerConfig{}, err
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.FroggerConfig{}, err
	}
	config.ApplyPreset(&cfg, preset)

	if flagTick > 0 {
		cfg.Timing.Tick = flagTick
	}
	if err := cfg.Validate(); err != nil {
		return config.FroggerConfig{}, err
	}
	return cfg, nil
}
