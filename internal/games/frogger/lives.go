package frogger

import (
	"strconv"

	"github.com/vovakirdan/tui-frogger/internal/core"
)

// livesCounterCol is where the remaining lives are printed on row 0.
const livesCounterCol = 42

// superviseLives acknowledges every death: it decrements the lives,
// updates the counter and clears the dead flag. It ends the game when no
// lives are left.
func (e *Engine) superviseLives() {
	select {
	case <-e.ready:
	case <-e.term.Done():
		return
	}

	for !e.term.Ended() {
		dead := false
		e.player.With(func(p *playerState) {
			dead = p.dead
		})

		if dead {
			left := int(e.lives.Add(-1))
			e.render.with(func(s Surface) {
				s.DrawText(strconv.Itoa(left)+" ", 0, livesCounterCol, core.ColorDefault)
			})
			e.player.With(func(p *playerState) {
				p.dead = false
			})
			e.logger.Info("life lost", "left", left)

			if left <= 0 {
				e.endGame(OutcomeLost, MsgLost)
				return
			}
		}

		if !e.sleepTicks(e.cfg.Timing.LifePollTicks) {
			return
		}
	}
}
