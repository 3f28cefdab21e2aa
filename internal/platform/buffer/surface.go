// Package buffer implements the render surface on top of a core.Screen cell
// buffer, plus a channel backed key queue. Terminal backends embed both and
// only add the code that moves cells and keys in and out of a real terminal.
package buffer

import (
	"errors"
	"fmt"
	"sync"

	"github.com/vovakirdan/tui-frogger/internal/core"
)

// ErrNotInitialized is returned when a surface is used before Init.
var ErrNotInitialized = errors.New("buffer: surface not initialized")

// Surface is a render surface drawing into an in-memory screen.
// It is safe for concurrent use: the engine draws from many goroutines while
// a backend reads frames from its own.
type Surface struct {
	mu       sync.Mutex
	screen   *core.Screen
	disabled bool
	banner   string
	refresh  int
	closed   bool
}

// NewSurface creates an uninitialized surface.
func NewSurface() *Surface {
	return &Surface{}
}

// Init allocates a rows x cols screen and draws the initial board on it.
func (s *Surface) Init(rows, cols int, board []string) error {
	if rows <= 0 || cols <= 0 {
		return fmt.Errorf("buffer: invalid size %dx%d", cols, rows)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.screen = core.NewScreen(cols, rows)
	for y, line := range board {
		s.screen.DrawText(0, y, line, core.ColorDefault)
	}
	s.disabled = false
	s.closed = false
	return nil
}

// Refresh counts frames. Backends embed Surface and push the frame out.
func (s *Surface) Refresh() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.refresh++
}

// DrawImage draws a tile with its top-left corner at (row, col).
func (s *Surface) DrawImage(row, col int, tile []string, color core.Color) {
	s.draw(func(scr *core.Screen) {
		scr.DrawTile(col, row, tile, color)
	})
}

// ClearImage blanks a height x width box with its top-left corner at (row, col).
func (s *Surface) ClearImage(row, col, height, width int) {
	s.draw(func(scr *core.Screen) {
		scr.ClearRect(core.NewRect(col, row, width, height))
	})
}

// DrawText writes text at (row, col).
func (s *Surface) DrawText(text string, row, col int, color core.Color) {
	s.draw(func(scr *core.Screen) {
		scr.DrawText(col, row, text, color)
	})
}

// DrawBanner draws message in a box centered on the screen.
func (s *Surface) DrawBanner(message string) {
	s.draw(func(scr *core.Screen) {
		w := len([]rune(message)) + 4
		h := 3
		x := core.Clamp((scr.Width()-w)/2, 0, scr.Width())
		y := core.Clamp((scr.Height()-h)/2, 0, scr.Height())
		box := core.NewRect(x, y, w, h)

		scr.ClearRect(box)
		scr.DrawBox(box, core.ColorBrightRed)
		scr.DrawText(x+2, y+1, message, core.ColorBrightRed)
	})
	s.mu.Lock()
	if !s.disabled {
		s.banner = message
	}
	s.mu.Unlock()
}

// DisableInput stops the surface from accepting draw calls, so whatever is
// on screen (normally the end banner) stays there.
func (s *Surface) DisableInput(disabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.disabled = disabled
}

// Shutdown releases the screen. Further draws are ignored.
func (s *Surface) Shutdown() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
}

// draw runs fn against the screen unless the surface is disabled or not ready.
func (s *Surface) draw(fn func(scr *core.Screen)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.screen == nil || s.disabled || s.closed {
		return
	}
	fn(s.screen)
}

// Snapshot copies the current screen into dst, allocating it if nil or of the
// wrong size, and returns it.
func (s *Surface) Snapshot(dst *core.Screen) (*core.Screen, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.screen == nil {
		return nil, ErrNotInitialized
	}
	if dst == nil || dst.Width() != s.screen.Width() || dst.Height() != s.screen.Height() {
		dst = core.NewScreen(s.screen.Width(), s.screen.Height())
	}
	dst.CopyFrom(s.screen)
	return dst, nil
}

// Frame returns the current screen as plain text.
func (s *Surface) Frame() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.screen == nil {
		return ""
	}
	return s.screen.String()
}

// Banner returns the last banner drawn while the surface was enabled.
func (s *Surface) Banner() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.banner
}

// Refreshes returns how many times Refresh was called.
func (s *Surface) Refreshes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.refresh
}

// Disabled reports whether DisableInput(true) is in effect.
func (s *Surface) Disabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.disabled
}
