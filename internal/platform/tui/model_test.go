package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-frogger/internal/core"
	"github.com/vovakirdan/tui-frogger/internal/platform/buffer"
)

func newTestModel(t *testing.T) (Model, *buffer.Surface, *buffer.KeyQueue) {
	t.Helper()
	s := buffer.NewSurface()
	if err := s.Init(3, 10, []string{"Lives: 4"}); err != nil {
		t.Fatal(err)
	}
	q := buffer.NewKeyQueue(4)
	cfg := core.DefaultConfig()
	cfg.ScreenW, cfg.ScreenH = 10, 3
	return NewModel(s, q, cfg), s, q
}

func TestModelForwardsKeys(t *testing.T) {
	m, _, q := newTestModel(t)

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}) // unbound
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	if a, ok := q.PollKey(time.Millisecond); !ok || a != core.ActionLeft {
		t.Errorf("first key = (%v, %v), want Left", a, ok)
	}
	if a, ok := q.PollKey(time.Millisecond); !ok || a != core.ActionAnyKey {
		t.Errorf("second key = (%v, %v), want AnyKey", a, ok)
	}
	if a, ok := q.PollKey(time.Millisecond); !ok || a != core.ActionQuit {
		t.Errorf("third key = (%v, %v), want Quit", a, ok)
	}
}

func TestModelForwardsUnboundKeys(t *testing.T) {
	m, _, q := newTestModel(t)

	for _, msg := range []tea.KeyMsg{
		{Type: tea.KeyEnter},
		{Type: tea.KeySpace, Runes: []rune{' '}},
		{Type: tea.KeyRunes, Runes: []rune{'x'}},
	} {
		m.Update(msg)
		if a, ok := q.PollKey(time.Millisecond); !ok || a != core.ActionAnyKey {
			t.Errorf("%q = (%v, %v), want AnyKey", msg.String(), a, ok)
		}
	}
}

func TestModelViewShowsSurface(t *testing.T) {
	m, s, _ := newTestModel(t)
	s.DrawText("@@", 2, 4, core.ColorBrightGreen)

	view := m.View()
	if !strings.Contains(view, "Lives: 4") || !strings.Contains(view, "@@") {
		t.Errorf("view does not show the surface:\n%s", view)
	}
}

func TestModelQuit(t *testing.T) {
	m, _, _ := newTestModel(t)

	next, cmd := m.Update(quitMsg{})
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if next.(Model).View() != "" {
		t.Error("view should be empty after quitting")
	}
}
