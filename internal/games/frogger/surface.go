package frogger

import (
	"sync"
	"time"

	"github.com/vovakirdan/tui-frogger/internal/core"
)

// Surface is the render surface the engine draws on. Implementations live in
// internal/platform; the engine serializes every call through its render lock.
type Surface interface {
	// Init prepares a rows x cols surface showing board.
	Init(rows, cols int, board []string) error
	// Refresh pushes the current contents to the display.
	Refresh()
	// DrawImage draws a tile with its top-left corner at (row, col).
	DrawImage(row, col int, tile []string, color core.Color)
	// ClearImage blanks a height x width box at (row, col).
	ClearImage(row, col, height, width int)
	// DrawText writes text at (row, col).
	DrawText(text string, row, col int, color core.Color)
	// DrawBanner shows an end-of-game message over the board.
	DrawBanner(message string)
	// DisableInput makes the surface ignore further drawing when true.
	DisableInput(disabled bool)
	// Shutdown restores the terminal.
	Shutdown()
}

// KeySource is the raw input source.
type KeySource interface {
	// PollKey waits at most timeout for a key. ok is false on timeout.
	PollKey(timeout time.Duration) (a core.Action, ok bool)
}

// renderer owns the render lock. Draw calls are short critical sections;
// nothing sleeps or computes positions while holding it.
type renderer struct {
	mu      sync.Mutex
	surface Surface
}

func (r *renderer) with(fn func(s Surface)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fn(r.surface)
}

func (r *renderer) refresh() {
	r.with(func(s Surface) { s.Refresh() })
}
