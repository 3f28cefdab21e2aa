package frogger

import (
	"errors"
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

var (
	// ErrTaskLimit is returned when starting a task would exceed the group's cap.
	ErrTaskLimit = errors.New("task limit reached")

	// ErrGroupClosed is returned when starting a task after JoinAll.
	ErrGroupClosed = errors.New("task group closed")
)

// Task is the handle of one concurrently running function.
type Task struct {
	ID   uuid.UUID
	Name string

	done   chan struct{}
	joined bool // guarded by the owning group's mutex
}

// Done is closed once the task function has returned.
func (t *Task) Done() <-chan struct{} {
	return t.done
}

// Exited reports whether the task function has returned.
func (t *Task) Exited() bool {
	select {
	case <-t.done:
		return true
	default:
		return false
	}
}

// TaskGroup creates, tracks and joins the engine's tasks.
//
// Tasks started with Spawn are tracked and joined by JoinAll in creation
// order. Tasks started with Launch are owned by the caller, who joins them
// with Join. Both count towards Running until joined.
//
// TaskGroup is safe for concurrent use.
type TaskGroup struct {
	mu      sync.Mutex
	tracked []*Task
	running int
	closed  bool

	// maxTasks limits the number of running tasks (0 = unlimited)
	maxTasks int

	// onPanic is called when a task function panics
	onPanic func(t *Task, v any)

	logger *log.Logger
}

// TaskOption configures a TaskGroup.
type TaskOption func(*TaskGroup)

// WithMaxTasks sets the maximum number of running tasks.
// A value of 0 (default) means unlimited.
func WithMaxTasks(max int) TaskOption {
	return func(g *TaskGroup) {
		g.maxTasks = max
	}
}

// WithPanicHandler sets a callback for tasks that panic. The panic is
// recovered and the task counts as exited.
func WithPanicHandler(fn func(t *Task, v any)) TaskOption {
	return func(g *TaskGroup) {
		g.onPanic = fn
	}
}

// WithTaskLogger sets the logger used for task start and exit.
func WithTaskLogger(l *log.Logger) TaskOption {
	return func(g *TaskGroup) {
		g.logger = l
	}
}

// NewTaskGroup creates an empty task group.
func NewTaskGroup(opts ...TaskOption) *TaskGroup {
	g := &TaskGroup{
		logger: discardLogger(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Spawn starts fn as a tracked task joined by JoinAll.
func (g *TaskGroup) Spawn(name string, fn func()) (*Task, error) {
	return g.start(name, fn, true)
}

// Launch starts fn as a task the caller must Join.
func (g *TaskGroup) Launch(name string, fn func()) (*Task, error) {
	return g.start(name, fn, false)
}

func (g *TaskGroup) start(name string, fn func(), tracked bool) (*Task, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.closed {
		return nil, ErrGroupClosed
	}
	if g.maxTasks > 0 && g.running >= g.maxTasks {
		return nil, fmt.Errorf("%w: %d running, starting %s", ErrTaskLimit, g.running, name)
	}

	t := &Task{
		ID:   uuid.New(),
		Name: name,
		done: make(chan struct{}),
	}
	if tracked {
		g.tracked = append(g.tracked, t)
	}
	g.running++

	go g.run(t, fn)
	return t, nil
}

func (g *TaskGroup) run(t *Task, fn func()) {
	defer close(t.done)
	defer func() {
		if v := recover(); v != nil {
			g.logger.Error("task panicked", "task", t.Name, "id", t.ID, "panic", v)
			if g.onPanic != nil {
				g.onPanic(t, v)
			}
		}
	}()

	g.logger.Debug("task started", "task", t.Name, "id", t.ID)
	fn()
	g.logger.Debug("task exited", "task", t.Name, "id", t.ID)
}

// Join waits for t to exit. Joining the same task again returns at once.
func (g *TaskGroup) Join(t *Task) {
	<-t.done

	g.mu.Lock()
	defer g.mu.Unlock()
	if !t.joined {
		t.joined = true
		g.running--
	}
}

// JoinAll joins every tracked task in creation order, including tasks spawned
// while it runs, then closes the group to new tasks. Launched tasks are not
// joined here.
func (g *TaskGroup) JoinAll() {
	for i := 0; ; i++ {
		g.mu.Lock()
		if i >= len(g.tracked) {
			g.closed = true
			g.mu.Unlock()
			return
		}
		t := g.tracked[i]
		g.mu.Unlock()

		g.Join(t)
	}
}

// Running returns the number of started tasks that have not been joined.
func (g *TaskGroup) Running() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.running
}

// Spawned returns the number of tracked tasks ever started.
func (g *TaskGroup) Spawned() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.tracked)
}
