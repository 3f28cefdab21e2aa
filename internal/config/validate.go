package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks that the configuration describes a playable board.
func (c FroggerConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
		}
	}

	b := c.Board
	check(b.Rows > 0 && b.Cols > 0, "board must have positive size, got %dx%d", b.Cols, b.Rows)
	check(b.LeftEdge < b.RightEdge, "left_edge %d must be left of right_edge %d", b.LeftEdge, b.RightEdge)
	check(b.SafeBankRow < b.StartBankRow, "safe_bank_row %d must be above start_bank_row %d", b.SafeBankRow, b.StartBankRow)

	t := c.Timing
	check(t.Tick > 0, "tick must be positive, got %s", t.Tick)
	check(t.RefreshTicks > 0 && t.InputPollTicks > 0 && t.LifePollTicks > 0,
		"refresh, input and life poll ticks must be positive")
	check(t.CleanupIdleTicks > 0 && t.CleanupStepTicks > 0, "cleanup ticks must be positive")

	p := c.Player
	check(p.StartRow >= b.StartBankRow && p.StartRow < b.Rows, "start_row %d must lie in the starting bank", p.StartRow)
	check(p.StartCol >= b.LeftEdge && p.StartCol < b.RightEdge, "start_col %d must lie on the board", p.StartCol)
	check(p.VerticalJump > 0 && p.SideJump > 0 && p.HomeJump > 0, "jumps must be positive")
	check(p.BlinkTicks > 0, "blink_ticks must be positive")
	check(p.DockDelayTicks >= 0 && p.HomeDelayTicks >= 0 && p.DeathDelayTicks >= 0, "delays must not be negative")

	g := c.Goals
	check(len(g.Columns) > 0, "at least one goal slot is required")
	check(g.Width > 0, "goal width must be positive")
	check(g.ApproachRow-p.HomeJump <= b.SafeBankRow, "docking from approach_row %d must land in the goal bank", g.ApproachRow)

	check(len(c.Lanes) > 0, "at least one lane is required")
	for i, l := range c.Lanes {
		check(l.SpeedTicks > 0, "lane %d: speed_ticks must be positive", i)
		check(l.Row > b.SafeBankRow && l.Row < b.StartBankRow, "lane %d: row %d must lie between the banks", i, l.Row)
	}

	check(c.Spawn.MinTicks > 0 && c.Spawn.MaxTicks > c.Spawn.MinTicks,
		"spawn range [%d, %d) must be non-empty and positive", c.Spawn.MinTicks, c.Spawn.MaxTicks)
	check(c.Lives > 0, "lives must be positive, got %d", c.Lives)
	check(c.Tasks.Max >= 0, "tasks.max must not be negative")

	return errors.Join(errs...)
}
