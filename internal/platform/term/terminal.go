// Package term implements a render backend on tcell. It flushes the
// embedded surface to the terminal on every refresh and feeds key events
// into the embedded key queue.
package term

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-frogger/internal/core"
	"github.com/vovakirdan/tui-frogger/internal/platform/buffer"
	"github.com/vovakirdan/tui-frogger/internal/registry"
)

// BackendID is the registry id of the tcell backend.
const BackendID = "tcell"

func init() {
	registry.Register(BackendID, "tcell (direct terminal)", func(core.RuntimeConfig) (registry.Backend, error) {
		return New()
	})
}

// Terminal is a tcell backed surface and key source.
type Terminal struct {
	*buffer.Surface
	*buffer.KeyQueue

	screen tcell.Screen
	frame  *core.Screen
	events sync.WaitGroup
	fini   sync.Once
}

// New creates a terminal backend on the process's terminal.
func New() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("term: %w", err)
	}
	return NewWithScreen(screen), nil
}

// NewWithScreen creates a terminal backend on screen, which must not be
// initialized yet.
func NewWithScreen(screen tcell.Screen) *Terminal {
	return &Terminal{
		Surface:  buffer.NewSurface(),
		KeyQueue: buffer.NewKeyQueue(64),
		screen:   screen,
	}
}

// Init takes over the terminal, draws the board and starts reading keys.
func (t *Terminal) Init(rows, cols int, board []string) error {
	if err := t.screen.Init(); err != nil {
		return fmt.Errorf("term: %w", err)
	}
	t.screen.HideCursor()
	t.screen.Clear()

	if err := t.Surface.Init(rows, cols, board); err != nil {
		t.screen.Fini()
		return err
	}

	t.events.Add(1)
	go t.pollEvents()

	t.Refresh()
	return nil
}

// Refresh copies the surface to the terminal and shows it.
func (t *Terminal) Refresh() {
	t.Surface.Refresh()

	frame, err := t.Snapshot(t.frame)
	if err != nil {
		return
	}
	t.frame = frame

	for y := 0; y < frame.Height(); y++ {
		for x := 0; x < frame.Width(); x++ {
			c := frame.GetCell(x, y)
			t.screen.SetContent(x, y, c.Rune, nil, styleFor(c.Color))
		}
	}
	t.screen.Show()
}

// Shutdown restores the terminal and stops the event reader.
func (t *Terminal) Shutdown() {
	t.Surface.Shutdown()
	t.fini.Do(func() {
		t.screen.Fini()
	})
	t.events.Wait()
}

// pollEvents forwards key presses until the screen is finalized.
func (t *Terminal) pollEvents() {
	defer t.events.Done()
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		switch e := ev.(type) {
		case *tcell.EventKey:
			t.Push(actionFor(e))
		case *tcell.EventResize:
			t.screen.Sync()
		}
	}
}

// actionFor maps a tcell key event to a game action. Unbound keys map to
// ActionAnyKey.
func actionFor(e *tcell.EventKey) core.Action {
	switch e.Key() {
	case tcell.KeyUp:
		return core.ActionUp
	case tcell.KeyDown:
		return core.ActionDown
	case tcell.KeyLeft:
		return core.ActionLeft
	case tcell.KeyRight:
		return core.ActionRight
	case tcell.KeyCtrlC:
		return core.ActionQuit
	case tcell.KeyRune:
		switch e.Rune() {
		case 'w', 'W':
			return core.ActionUp
		case 's', 'S':
			return core.ActionDown
		case 'a', 'A':
			return core.ActionLeft
		case 'd', 'D':
			return core.ActionRight
		case 'q', 'Q':
			return core.ActionQuit
		}
	}
	return core.ActionAnyKey
}

// palette maps core colors to 256-color palette indices.
var palette = map[core.Color]int{
	core.ColorRed:          1,
	core.ColorGreen:        2,
	core.ColorYellow:       3,
	core.ColorBlue:         4,
	core.ColorCyan:         6,
	core.ColorWhite:        7,
	core.ColorBrightRed:    9,
	core.ColorBrightGreen:  10,
	core.ColorBrightYellow: 11,
	core.ColorOrange:       208,
	core.ColorGray:         245,
}

func styleFor(c core.Color) tcell.Style {
	idx, ok := palette[c]
	if !ok {
		return tcell.StyleDefault
	}
	style := tcell.StyleDefault.Foreground(tcell.PaletteColor(idx))
	if c == core.ColorBrightRed {
		style = style.Bold(true)
	}
	return style
}
