package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-frogger/internal/core"
	"github.com/vovakirdan/tui-frogger/internal/platform/buffer"
)

// quitMsg asks the model to stop the program.
type quitMsg struct{}

// Model is the Bubble Tea model that shows the engine's surface.
// It owns no game state: every frame is a copy of the surface.
type Model struct {
	surface  *buffer.Surface
	keys     *buffer.KeyQueue
	keymap   KeyMap
	screen   *core.Screen
	tickRate int
	quitting bool
}

// NewModel creates a model repainting surface at cfg's tick rate and
// pushing key presses into keys.
func NewModel(surface *buffer.Surface, keys *buffer.KeyQueue, cfg core.RuntimeConfig) Model {
	return Model{
		surface:  surface,
		keys:     keys,
		keymap:   DefaultKeyMap(),
		screen:   core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		tickRate: cfg.TickRate(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		a := m.keymap.Action(msg)
		if a == core.ActionNone {
			a = core.ActionAnyKey
		}
		// A full queue drops the key, like a busy terminal would.
		m.keys.Push(a)
		return m, nil

	case quitMsg:
		m.quitting = true
		return m, tea.Quit

	case TickMsg:
		return m, tickCmd(m.tickRate)
	}

	return m, nil
}

// View renders the current frame of the surface.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	scr, err := m.surface.Snapshot(m.screen)
	if err != nil {
		return ""
	}
	return RenderScreen(scr)
}
