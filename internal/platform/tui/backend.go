package tui

import (
	"fmt"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-frogger/internal/core"
	"github.com/vovakirdan/tui-frogger/internal/platform/buffer"
	"github.com/vovakirdan/tui-frogger/internal/registry"
)

// BackendID is the registry id of the Bubble Tea backend.
const BackendID = "tea"

func init() {
	registry.Register(BackendID, "Bubble Tea (alternate screen)", func(cfg core.RuntimeConfig) (registry.Backend, error) {
		return NewBackend(cfg), nil
	})
}

// Backend runs a Bubble Tea program that displays the embedded surface and
// feeds the embedded key queue.
type Backend struct {
	*buffer.Surface
	*buffer.KeyQueue

	cfg     core.RuntimeConfig
	opts    []tea.ProgramOption
	program *tea.Program
	done    chan struct{}
	runErr  error
	stop    sync.Once
}

// NewBackend creates a backend. The program starts in Init.
func NewBackend(cfg core.RuntimeConfig, opts ...tea.ProgramOption) *Backend {
	return &Backend{
		Surface:  buffer.NewSurface(),
		KeyQueue: buffer.NewKeyQueue(64),
		cfg:      cfg,
		opts:     opts,
		done:     make(chan struct{}),
	}
}

// Init draws the board and starts the Bubble Tea program.
func (b *Backend) Init(rows, cols int, board []string) error {
	if err := b.Surface.Init(rows, cols, board); err != nil {
		return err
	}

	cfg := b.cfg
	cfg.ScreenW, cfg.ScreenH = cols, rows
	// Signals are handled by the caller through the engine context.
	opts := append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithoutSignalHandler()}, b.opts...)
	b.program = tea.NewProgram(NewModel(b.Surface, b.KeyQueue, cfg), opts...)

	go func() {
		defer close(b.done)
		if _, err := b.program.Run(); err != nil {
			b.runErr = fmt.Errorf("tui: %w", err)
		}
	}()
	return nil
}

// Shutdown stops the program and restores the terminal.
func (b *Backend) Shutdown() {
	b.Surface.Shutdown()
	b.stop.Do(func() {
		if b.program == nil {
			return
		}
		b.program.Send(quitMsg{})
		<-b.done
	})
}

// Err returns the error the program ended with, if any. Valid after Shutdown.
func (b *Backend) Err() error {
	select {
	case <-b.done:
		return b.runErr
	default:
		return nil
	}
}
