package frogger

import (
	"github.com/vovakirdan/tui-frogger/internal/core"
)

const playerColor = core.ColorBrightGreen

// inputLoop waits at most one poll interval for a key and dispatches it.
func (e *Engine) inputLoop() {
	timeout := e.cfg.Timing.Ticks(e.cfg.Timing.InputPollTicks)
	for !e.term.Ended() {
		a, ok := e.keys.PollKey(timeout)
		if !ok {
			continue
		}
		switch {
		case a == core.ActionQuit:
			e.endGame(OutcomeQuit, MsgQuit)
		case a.IsMove():
			e.movePlayer(a, nil)
		}
	}
}

// animateLoop flips the player's animation frame at the blink interval.
func (e *Engine) animateLoop() {
	for !e.term.Ended() {
		e.player.With(func(p *playerState) {
			p.phase ^= 1
		})
		e.drawPlayer()
		if !e.sleepTicks(e.cfg.Player.BlinkTicks) {
			return
		}
	}
}

// movePlayer applies a move. carrier is the obstacle moving the player, or
// nil for a keypress; a carried move is dropped once the carrier no longer
// holds the player. Moves are rejected while the player is dead or busy.
func (e *Engine) movePlayer(a core.Action, carrier *Obstacle) {
	var (
		blocked bool
		moved   bool
		slot    = -1
	)
	e.player.With(func(p *playerState) {
		if p.dead || p.busy {
			blocked = true
			return
		}
		if carrier != nil && !carrier.Carrying() {
			blocked = true
			return
		}
		to, s, ok := e.rules.next(p.cur, p.width, p.height, a, &p.goals)
		if !ok {
			return
		}
		if s >= 0 {
			if !p.goals.Fill(s) {
				return
			}
			p.busy = true
		}
		p.prev = p.cur
		p.cur = to
		moved = true
		slot = s
	})

	if blocked {
		return
	}
	if !moved {
		// The carrier is drifting on without us; re-evaluate where we stand.
		if carrier != nil {
			e.settlePlayer()
		}
		return
	}

	e.drawPlayer()
	e.updateCarried()
	if slot >= 0 {
		e.dock(slot)
	}
	e.settlePlayer()
}

// settlePlayer recomputes the carried status and kills the player if it
// is unsafe.
func (e *Engine) settlePlayer() {
	e.updateCarried()
	if e.checkSafety() {
		e.recoverPlayer()
	}
}

// updateCarried marks exactly the obstacles that strictly contain the
// player as carrying it. Lock order: registry, then player.
func (e *Engine) updateCarried() {
	e.obstacles.Scan(func(obstacles []*Obstacle) {
		e.player.With(func(p *playerState) {
			pr := p.rect()
			carried := false
			for _, o := range obstacles {
				in := o.Rect().Surrounds(pr)
				o.carrying.Store(in)
				carried = carried || in
			}
			p.carried = carried
		})
	})
}

// checkSafety marks the player dead if it is neither carried nor on one of
// the banks. It reports true when this call killed the player; the caller
// then owns the recovery.
func (e *Engine) checkSafety() bool {
	b := e.cfg.Board
	died := false
	e.player.With(func(p *playerState) {
		if p.dead || p.busy {
			return
		}
		if p.carried || p.cur.Row >= b.StartBankRow || p.cur.Row <= b.SafeBankRow {
			return
		}
		p.dead = true
		p.busy = true
		died = true
	})
	return died
}

// recoverPlayer waits out the death delay, erases the dead player and
// puts it back on the start coordinates. The dead flag stays set for the
// life supervisor to acknowledge.
func (e *Engine) recoverPlayer() {
	e.logger.Info("player died")
	e.sleepTicks(e.cfg.Player.DeathDelayTicks)

	start := e.start()
	e.render.with(func(s Surface) {
		e.player.With(func(p *playerState) {
			s.ClearImage(p.cur.Row, p.cur.Col, p.height, p.width)
			p.prev = start
			p.cur = start
			p.busy = false
		})
	})
	e.drawPlayer()
	e.updateCarried()
}

// dock runs the landing sequence for a player that just reached slot.
// The player tile stays drawn in the slot.
func (e *Engine) dock(slot int) {
	e.logger.Info("player docked", "slot", slot)
	e.sleepTicks(e.cfg.Player.DockDelayTicks)

	start := e.start()
	e.player.With(func(p *playerState) {
		p.prev = start
		p.cur = start
	})

	e.sleepTicks(e.cfg.Player.HomeDelayTicks)
	full := false
	e.player.With(func(p *playerState) {
		p.busy = false
		full = p.goals.Full()
	})
	e.drawPlayer()

	if full {
		e.endGame(OutcomeWon, MsgWon)
	}
}

// drawPlayer erases the previous frame and draws the current one.
// Lock order: render, then player.
func (e *Engine) drawPlayer() {
	e.render.with(func(s Surface) {
		e.player.With(func(p *playerState) {
			s.ClearImage(p.prev.Row, p.prev.Col, p.height, p.width)
			s.DrawImage(p.cur.Row, p.cur.Col, p.tile(), playerColor)
		})
	})
}

func (e *Engine) start() Position {
	return Position{Row: e.cfg.Player.StartRow, Col: e.cfg.Player.StartCol}
}
