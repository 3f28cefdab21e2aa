// Package frogger implements the concurrent Frogger engine: a set of tasks
// (player input and animation, one spawner per lane, one mover per
// obstacle, cleanup, life supervisor, screen refresh) sharing game state
// under fine grained locks, plus the rules that decide moves, deaths,
// docking and the end of the game.
//
// Locks are always taken in this order: render before player, registry
// before player. The render and registry locks are never held together and
// nothing sleeps while holding a lock.
package frogger

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-frogger/internal/config"
)

var (
	// ErrSurfaceInit is returned when the render surface cannot be set up.
	ErrSurfaceInit = errors.New("render surface init failed")

	// ErrTaskPanicked wraps the value of a task that panicked.
	ErrTaskPanicked = errors.New("task panicked")

	// ErrAlreadyRun is returned when Run is called twice.
	ErrAlreadyRun = errors.New("engine already run")
)

// Result describes how a game ended.
type Result struct {
	Outcome     Outcome
	Message     string
	LivesLeft   int
	GoalsFilled int
}

// Engine runs one game.
type Engine struct {
	cfg    config.FroggerConfig
	keys   KeySource
	render renderer
	logger *log.Logger

	player    *Guarded[playerState]
	rules     moveRules
	obstacles *ObstacleRegistry
	tasks     *TaskGroup
	term      *Termination
	lives     atomic.Int32
	lanes     []Lane

	// ready is closed once the player is on screen.
	ready chan struct{}

	seed          int64
	finalKeypress bool
	started       atomic.Bool

	failMu  sync.Mutex
	failErr error
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the engine logger. The default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithSeed fixes the seed of the spawn intervals. 0 means time based.
func WithSeed(seed int64) Option {
	return func(e *Engine) {
		e.seed = seed
	}
}

// WithFinalKeypress makes Run wait for one key after the end banner.
func WithFinalKeypress(wait bool) Option {
	return func(e *Engine) {
		e.finalKeypress = wait
	}
}

// New validates cfg and creates an engine drawing on surface and reading
// keys from keys.
func New(cfg config.FroggerConfig, surface Surface, keys KeySource, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if surface == nil || keys == nil {
		return nil, errors.New("frogger: surface and key source are required")
	}

	e := &Engine{
		cfg:       cfg,
		keys:      keys,
		render:    renderer{surface: surface},
		logger:    discardLogger(),
		rules:     newMoveRules(cfg),
		player:    NewGuarded(newPlayerState(cfg)),
		obstacles: NewObstacleRegistry(),
		term:      NewTermination(),
		ready:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.seed == 0 {
		e.seed = time.Now().UnixNano()
	}

	e.tasks = NewTaskGroup(
		WithMaxTasks(cfg.Tasks.Max),
		WithTaskLogger(e.logger),
		WithPanicHandler(func(t *Task, v any) {
			e.fail(fmt.Errorf("%w: %s: %v", ErrTaskPanicked, t.Name, v))
		}),
	)
	e.lives.Store(int32(cfg.Lives))
	e.lanes = e.lanesFromConfig()
	return e, nil
}

// Run plays the game until it ends, joins every task and shuts the surface
// down. Cancelling ctx ends the game as interrupted. The returned error is
// non-nil only for synchronization failures and surface errors.
func (e *Engine) Run(ctx context.Context) (Result, error) {
	if !e.started.CompareAndSwap(false, true) {
		return Result{}, ErrAlreadyRun
	}

	b := e.cfg.Board
	if err := e.render.surface.Init(b.Rows, b.Cols, Board(e.cfg)); err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrSurfaceInit, err)
	}
	defer e.render.surface.Shutdown()

	e.logger.Info("game started", "lanes", len(e.lanes), "lives", e.cfg.Lives, "seed", e.seed)

	e.spawn("lives", e.superviseLives)
	e.spawn("refresh", e.refreshLoop)

	e.drawPlayer()
	close(e.ready)

	e.spawn("player-animate", e.animateLoop)
	input, err := e.tasks.Launch("player-input", e.inputLoop)
	if err != nil {
		e.fail(fmt.Errorf("start player-input: %w", err))
	}

	for _, lane := range e.lanes {
		rng := rand.New(rand.NewSource(e.seed + int64(lane.Index)*7919))
		e.spawn(fmt.Sprintf("lane-%d", lane.Index), func() { e.runLane(lane, rng) })
	}
	e.spawn("cleanup", e.reapObstacles)
	e.spawn("interrupt", func() {
		select {
		case <-ctx.Done():
			e.endGame(OutcomeInterrupted, MsgInterrupted)
		case <-e.term.Done():
		}
	})

	<-e.term.Done()

	if input != nil {
		e.tasks.Join(input)
	}
	if e.finalKeypress && e.failure() == nil {
		e.awaitKeypress(ctx)
	}

	e.tasks.JoinAll()
	for _, o := range e.obstacles.Drain() {
		if t := o.Task(); t != nil {
			e.tasks.Join(t)
		}
	}

	outcome, msg := e.term.Result()
	res := Result{
		Outcome:     outcome,
		Message:     msg,
		LivesLeft:   e.Lives(),
		GoalsFilled: e.PlayerView().goalsFilled(),
	}
	e.logger.Info("game finished", "outcome", outcome, "lives", res.LivesLeft, "goals", res.GoalsFilled)
	return res, e.failure()
}

// spawn starts a tracked task; failing to do so is fatal.
func (e *Engine) spawn(name string, fn func()) {
	if _, err := e.tasks.Spawn(name, fn); err != nil {
		e.fail(fmt.Errorf("start %s: %w", name, err))
	}
}

// endGame resolves the termination event. Only the first caller's outcome
// and banner count.
func (e *Engine) endGame(outcome Outcome, message string) {
	if !e.term.Claim(outcome, message) {
		return
	}
	e.logger.Info("game over", "outcome", outcome, "message", message)

	e.render.with(func(s Surface) {
		s.DrawBanner(message)
		s.DisableInput(true)
		s.Refresh()
	})
	e.term.Fire()
}

// fail records the first fatal error and ends the game.
func (e *Engine) fail(err error) {
	e.failMu.Lock()
	if e.failErr == nil {
		e.failErr = err
	}
	e.failMu.Unlock()

	e.logger.Error("synchronization failure", "err", err)
	e.endGame(OutcomeFailed, MsgFailed)
}

func (e *Engine) failure() error {
	e.failMu.Lock()
	defer e.failMu.Unlock()
	return e.failErr
}

// sleepTicks suspends the caller for n ticks. It returns early, with false,
// when the game ends.
func (e *Engine) sleepTicks(n int) bool {
	if n <= 0 {
		return !e.term.Ended()
	}
	t := time.NewTimer(e.cfg.Timing.Ticks(n))
	defer t.Stop()

	select {
	case <-t.C:
		return !e.term.Ended()
	case <-e.term.Done():
		return false
	}
}

func (e *Engine) refreshLoop() {
	for !e.term.Ended() {
		e.render.refresh()
		if !e.sleepTicks(e.cfg.Timing.RefreshTicks) {
			return
		}
	}
}

// awaitKeypress keeps the end banner up until a key arrives or ctx ends.
func (e *Engine) awaitKeypress(ctx context.Context) {
	timeout := e.cfg.Timing.Ticks(e.cfg.Timing.InputPollTicks)
	for ctx.Err() == nil {
		if _, ok := e.keys.PollKey(timeout); ok {
			return
		}
	}
}

// Lives returns the remaining lives.
func (e *Engine) Lives() int {
	return int(e.lives.Load())
}

// Tasks returns the engine's task group.
func (e *Engine) Tasks() *TaskGroup {
	return e.tasks
}

// Obstacles returns the registry of live obstacles.
func (e *Engine) Obstacles() *ObstacleRegistry {
	return e.obstacles
}

// PlayerView returns a copy of the player's state.
func (e *Engine) PlayerView() PlayerView {
	var v PlayerView
	e.player.With(func(p *playerState) {
		v = p.view()
	})
	return v
}

func (v PlayerView) goalsFilled() int {
	n := 0
	for _, g := range v.Goals {
		if g {
			n++
		}
	}
	return n
}

func discardLogger() *log.Logger {
	return log.New(io.Discard)
}
