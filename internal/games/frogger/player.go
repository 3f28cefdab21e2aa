package frogger

import (
	"github.com/vovakirdan/tui-frogger/internal/config"
	"github.com/vovakirdan/tui-frogger/internal/core"
)

// playerTiles are the two animation frames of the player.
var playerTiles = [2][]string{
	{"@@", "<>"},
	{"--", "<>"},
}

// Position is a (row, col) screen coordinate.
type Position struct {
	Row int
	Col int
}

// playerState is the player, guarded by the player lock.
type playerState struct {
	prev   Position
	cur    Position
	width  int
	height int
	phase  int

	// dead is set when the player is caught unsafe and cleared only by
	// the life supervisor.
	dead bool
	// busy is set while a death recovery or docking sequence is running;
	// moves are rejected until it clears.
	busy    bool
	carried bool
	goals   GoalSlots
}

func newPlayerState(cfg config.FroggerConfig) playerState {
	start := Position{Row: cfg.Player.StartRow, Col: cfg.Player.StartCol}
	return playerState{
		prev:   start,
		cur:    start,
		width:  len(playerTiles[0][0]),
		height: len(playerTiles[0]),
		goals:  NewGoalSlots(cfg.Goals.Columns, cfg.Goals.Width),
	}
}

func (p *playerState) rect() core.Rect {
	return core.NewRect(p.cur.Col, p.cur.Row, p.width, p.height)
}

func (p *playerState) tile() []string {
	return playerTiles[p.phase]
}

// PlayerView is a copy of the player's state.
type PlayerView struct {
	Row     int
	Col     int
	Dead    bool
	Busy    bool
	Carried bool
	Goals   []bool
}

func (p *playerState) view() PlayerView {
	return PlayerView{
		Row:     p.cur.Row,
		Col:     p.cur.Col,
		Dead:    p.dead,
		Busy:    p.busy,
		Carried: p.carried,
		Goals:   p.goals.occupancy(),
	}
}

// moveRules decides where a move takes the player.
type moveRules struct {
	leftEdge     int
	rightEdge    int
	startRow     int
	verticalJump int
	sideJump     int
	homeJump     int
	upperBound   int
	approachRow  int
}

func newMoveRules(cfg config.FroggerConfig) moveRules {
	return moveRules{
		leftEdge:     cfg.Board.LeftEdge,
		rightEdge:    cfg.Board.RightEdge,
		startRow:     cfg.Player.StartRow,
		verticalJump: cfg.Player.VerticalJump,
		sideJump:     cfg.Player.SideJump,
		homeJump:     cfg.Player.HomeJump,
		upperBound:   cfg.Player.UpperBoundRow,
		approachRow:  cfg.Goals.ApproachRow,
	}
}

// next returns the position after action a, and the goal slot it docks
// into (-1 if none). ok is false when the move is out of bounds; such
// moves are silently ignored. goals is only read.
func (r moveRules) next(pos Position, width, height int, a core.Action, goals *GoalSlots) (to Position, slot int, ok bool) {
	switch a {
	case core.ActionLeft:
		if pos.Col > r.leftEdge {
			return Position{Row: pos.Row, Col: pos.Col - r.sideJump}, -1, true
		}
	case core.ActionRight:
		if pos.Col < r.rightEdge-width {
			return Position{Row: pos.Row, Col: pos.Col + r.sideJump}, -1, true
		}
	case core.ActionUp:
		if pos.Row == r.approachRow {
			if s := goals.Find(pos.Col, width); s >= 0 {
				return Position{Row: pos.Row - r.homeJump, Col: pos.Col}, s, true
			}
		}
		if pos.Row > r.upperBound {
			return Position{Row: pos.Row - r.verticalJump, Col: pos.Col}, -1, true
		}
	case core.ActionDown:
		if pos.Row < r.startRow-height {
			return Position{Row: pos.Row + r.verticalJump, Col: pos.Col}, -1, true
		}
	}
	return pos, -1, false
}
