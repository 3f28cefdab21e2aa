package frogger

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-frogger/internal/core"
)

const obstacleColor = core.ColorOrange

// lanesFromConfig derives the lanes: rows and speeds come from the config,
// directions alternate with the lane index.
func (e *Engine) lanesFromConfig() []Lane {
	lanes := make([]Lane, len(e.cfg.Lanes))
	for i, lc := range e.cfg.Lanes {
		lanes[i] = Lane{
			Index:      i,
			Row:        lc.Row,
			SpeedTicks: lc.SpeedTicks,
			Direction:  LaneDirection(i),
		}
	}
	return lanes
}

// runLane is the spawner of one lane. Termination is only checked between
// spawns; a spawn in progress always completes.
func (e *Engine) runLane(lane Lane, rng *rand.Rand) {
	spawn := e.cfg.Spawn
	for !e.term.Ended() {
		e.spawnObstacle(lane)

		wait := spawn.MinTicks
		if spawn.MaxTicks > spawn.MinTicks {
			wait += rng.Intn(spawn.MaxTicks - spawn.MinTicks)
		}
		if !e.sleepTicks(wait) {
			return
		}
	}
}

// spawnObstacle builds an obstacle at the lane's entry edge, registers it
// and starts its mover. A failed construction leaves the registry untouched
// and is retried on the next interval.
func (e *Engine) spawnObstacle(lane Lane) {
	o, err := NewObstacle(lane, e.cfg.Board.LeftEdge, e.cfg.Board.RightEdge)
	if err != nil {
		e.logger.Warn("spawn abandoned", "lane", lane.Index, "err", err)
		return
	}
	if err := e.obstacles.Insert(o); err != nil {
		e.logger.Warn("spawn abandoned", "lane", lane.Index, "err", err)
		return
	}

	t, err := e.tasks.Launch(fmt.Sprintf("obstacle-%d", lane.Index), func() { e.runObstacle(o) })
	if err != nil {
		e.obstacles.Remove(o.ID)
		if errors.Is(err, ErrGroupClosed) {
			return
		}
		e.fail(fmt.Errorf("start mover in lane %d: %w", lane.Index, err))
		return
	}
	o.task.Store(t)
	e.logger.Debug("obstacle spawned", "lane", lane.Index, "id", o.ID, "dir", o.Direction)
}

// runObstacle is the mover of one obstacle. Each cycle moves it two
// columns. A carried player is moved along with every step.
func (e *Engine) runObstacle(o *Obstacle) {
	for !e.term.Ended() && !o.Dead() {
		if o.Carrying() {
			e.stepObstacle(o, true)
			e.stepObstacle(o, true)
		} else {
			e.stepObstacle(o, false)
			e.stepObstacle(o, false)
			tile := o.animate()
			e.drawObstacle(o, o.Col(), o.Col(), tile)
		}
		if !e.sleepTicks(o.SpeedTicks) {
			return
		}
	}
}

func (e *Engine) stepObstacle(o *Obstacle, carrying bool) {
	prev, cur, moved := o.advance()
	if !moved {
		return
	}
	tile := o.tile()
	if carrying {
		tile = o.animate()
	}
	e.drawObstacle(o, prev, cur, tile)

	if carrying {
		a := core.ActionRight
		if o.Direction == DirectionLeft {
			a = core.ActionLeft
		}
		e.movePlayer(a, o)
	}
}

func (e *Engine) drawObstacle(o *Obstacle, prevCol, col int, tile []string) {
	e.render.with(func(s Surface) {
		s.ClearImage(o.Row, prevCol, o.Height, o.Width)
		s.DrawImage(o.Row, col, tile, obstacleColor)
	})
}

// reapObstacles joins the movers of dead obstacles and removes them from
// the registry, backing off when there is nothing to reap.
func (e *Engine) reapObstacles() {
	timing := e.cfg.Timing
	for !e.term.Ended() {
		reaped := 0
		for _, o := range e.obstacles.Dead() {
			if e.term.Ended() {
				return
			}
			t := o.Task()
			if t == nil {
				continue
			}
			e.tasks.Join(t)
			if _, ok := e.obstacles.Remove(o.ID); ok {
				reaped++
				e.logger.Debug("obstacle reaped", "lane", o.Lane, "id", o.ID)
			}
			if !e.sleepTicks(timing.CleanupStepTicks) {
				return
			}
		}
		if reaped == 0 && !e.sleepTicks(timing.CleanupIdleTicks) {
			return
		}
	}
}
