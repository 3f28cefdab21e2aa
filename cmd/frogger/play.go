package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-frogger/internal/core"
	"github.com/vovakirdan/tui-frogger/internal/games/frogger"
	"github.com/vovakirdan/tui-frogger/internal/platform/tui"
	"github.com/vovakirdan/tui-frogger/internal/registry"
)

var (
	flagBackend string
	flagNoWait  bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game of Frogger.

Controls:
  W/Up      - Jump forward
  S/Down    - Jump back
  A/Left    - Step left
  D/Right   - Step right
  Q/Ctrl+C  - Quit

The game ends when every pod is filled, when the last life is lost, or
when you quit. After the end banner any key exits (see --no-wait).

Examples:
  frogger play
  frogger play --difficulty easy
  frogger play --backend tcell
  frogger play --config ./my-frogger.yaml --log frogger.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagBackend, "backend", tui.BackendID, "Render backend (see 'frogger backends')")
	playCmd.Flags().BoolVar(&flagNoWait, "no-wait", false, "Exit right after the end banner instead of waiting for a key")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if !registry.Exists(flagBackend) {
		fmt.Fprintf(os.Stderr, "Error: unknown backend %q\n", flagBackend)
		fmt.Fprintln(os.Stderr, "Run 'frogger backends' to see available backends.")
		os.Exit(1)
	}

	// The board does not scroll; refuse to start in a terminal that is too small.
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		if w < cfg.Board.Cols || h < cfg.Board.Rows {
			fmt.Fprintf(os.Stderr, "Error: terminal is %dx%d, the board needs %dx%d\n",
				w, h, cfg.Board.Cols, cfg.Board.Rows)
			os.Exit(1)
		}
	}

	logger, closeLog, err := openLogger(flagLogPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	rc := core.RuntimeConfig{
		ScreenW: cfg.Board.Cols,
		ScreenH: cfg.Board.Rows,
		Tick:    cfg.Timing.Tick,
	}
	backend, err := registry.Create(flagBackend, rc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	engine, err := frogger.New(cfg, backend, backend,
		frogger.WithLogger(logger),
		frogger.WithSeed(flagSeed),
		frogger.WithFinalKeypress(!flagNoWait),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	res, runErr := engine.Run(ctx)
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", frogger.MsgFailed, runErr)
		closeLog()
		os.Exit(1)
	}

	fmt.Printf("%s (%s): %d/%d pods filled, %d lives left\n",
		res.Message, res.Outcome, res.GoalsFilled, len(cfg.Goals.Columns), res.LivesLeft)
}

// openLogger returns a logger writing to path, or a discarding logger when
// path is empty. The game owns the terminal, so nothing is logged to it.
func openLogger(path string) (*log.Logger, func(), error) {
	if path == "" {
		return nil, func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, err
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "frogger",
		Level:           log.DebugLevel,
	})

	closed := false
	return logger, func() {
		if !closed {
			closed = true
			if err := f.Close(); err != nil && !errors.Is(err, os.ErrClosed) {
				fmt.Fprintf(os.Stderr, "Warning: closing log: %v\n", err)
			}
		}
	}, nil
}
