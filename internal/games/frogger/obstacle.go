package frogger

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/vovakirdan/tui-frogger/internal/core"
)

// ErrInvalidLane is returned when an obstacle cannot be built for a lane.
var ErrInvalidLane = errors.New("invalid lane")

// Direction is the horizontal direction of a lane.
type Direction int

const (
	DirectionRight Direction = 1
	DirectionLeft  Direction = -1
)

// String returns "left" or "right".
func (d Direction) String() string {
	if d == DirectionLeft {
		return "left"
	}
	return "right"
}

// LaneDirection derives a lane's direction from its index parity:
// even lanes move right, odd lanes move left.
func LaneDirection(index int) Direction {
	if index%2 != 0 {
		return DirectionLeft
	}
	return DirectionRight
}

// obstacleTiles are the two animation frames of a log.
var obstacleTiles = [2][]string{
	{
		"/======================\\",
		"|                      |",
		"|                      |",
		"\\======================/",
	},
	{
		"/======================\\",
		"-                      +",
		"+                      -",
		"\\======================/",
	},
}

// Lane is the fixed description of one obstacle lane.
type Lane struct {
	Index      int
	Row        int
	SpeedTicks int
	Direction  Direction
}

// Obstacle is a log drifting across one lane.
//
// Geometry, lane and direction never change. The column and the dead and
// carrying flags are shared with other tasks and are atomics; the previous
// column and animation phase belong to the obstacle's mover.
type Obstacle struct {
	ID         uuid.UUID
	Lane       int
	Row        int
	Width      int
	Height     int
	SpeedTicks int
	Direction  Direction

	leftEdge  int
	rightEdge int

	col      atomic.Int64
	dead     atomic.Bool
	carrying atomic.Bool
	task     atomic.Pointer[Task]

	// seq is the insertion order, guarded by the registry lock.
	seq uint64

	prevCol int
	phase   int
}

// NewObstacle builds an obstacle at the entry edge of lane: just past the
// right edge for left-moving lanes, just before the left edge otherwise.
func NewObstacle(lane Lane, leftEdge, rightEdge int) (*Obstacle, error) {
	tile := obstacleTiles[0]
	width := len(tile[0])
	if lane.SpeedTicks <= 0 {
		return nil, fmt.Errorf("%w: lane %d has speed %d", ErrInvalidLane, lane.Index, lane.SpeedTicks)
	}
	if lane.Direction != DirectionLeft && lane.Direction != DirectionRight {
		return nil, fmt.Errorf("%w: lane %d has no direction", ErrInvalidLane, lane.Index)
	}
	if rightEdge <= leftEdge {
		return nil, fmt.Errorf("%w: empty playfield [%d, %d)", ErrInvalidLane, leftEdge, rightEdge)
	}

	o := &Obstacle{
		ID:         uuid.New(),
		Lane:       lane.Index,
		Row:        lane.Row,
		Width:      width,
		Height:     len(tile),
		SpeedTicks: lane.SpeedTicks,
		Direction:  lane.Direction,
		leftEdge:   leftEdge,
		rightEdge:  rightEdge,
	}

	start := leftEdge - width
	if lane.Direction == DirectionLeft {
		start = rightEdge
	}
	o.col.Store(int64(start))
	o.prevCol = start
	return o, nil
}

// Col returns the current left column.
func (o *Obstacle) Col() int {
	return int(o.col.Load())
}

// Rect returns the obstacle's bounding rectangle.
func (o *Obstacle) Rect() core.Rect {
	return core.NewRect(o.Col(), o.Row, o.Width, o.Height)
}

// Dead reports whether the obstacle has left the playfield.
func (o *Obstacle) Dead() bool {
	return o.dead.Load()
}

// Carrying reports whether the player rides on this obstacle.
func (o *Obstacle) Carrying() bool {
	return o.carrying.Load()
}

// Task returns the mover task, or nil while it is still being started.
func (o *Obstacle) Task() *Task {
	return o.task.Load()
}

// advance moves the obstacle one column in its direction and marks it dead
// once it is completely off the playfield. A dead obstacle never moves.
// It returns the previous and new columns and whether a move happened.
func (o *Obstacle) advance() (prev, cur int, moved bool) {
	if o.Dead() {
		return o.prevCol, o.Col(), false
	}

	prev = o.Col()
	cur = prev + int(o.Direction)
	o.prevCol = prev
	o.col.Store(int64(cur))

	if cur > o.rightEdge || cur < o.leftEdge-o.Width {
		o.dead.Store(true)
	}
	return prev, cur, true
}

// animate flips the animation phase and returns the tile to draw.
func (o *Obstacle) animate() []string {
	o.phase ^= 1
	return obstacleTiles[o.phase]
}

// tile returns the tile of the current phase.
func (o *Obstacle) tile() []string {
	return obstacleTiles[o.phase]
}
