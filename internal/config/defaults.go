package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/frogger.yaml
var defaultFroggerYAML []byte

// DefaultFroggerConfig returns the default configuration.
// It mirrors defaults/frogger.yaml and is used if the embedded file fails to parse.
func DefaultFroggerConfig() FroggerConfig {
	return FroggerConfig{
		Board: BoardConfig{
			Rows:         24,
			Cols:         80,
			LeftEdge:     0,
			RightEdge:    80,
			StartBankRow: 21,
			SafeBankRow:  3,
		},
		Timing: TimingConfig{
			Tick:             10 * time.Millisecond,
			RefreshTicks:     1,
			InputPollTicks:   1,
			LifePollTicks:    1,
			CleanupIdleTicks: 100,
			CleanupStepTicks: 1,
		},
		Player: PlayerConfig{
			StartRow:        21,
			StartCol:        40,
			VerticalJump:    4,
			SideJump:        1,
			HomeJump:        3,
			UpperBoundRow:   8,
			BlinkTicks:      30,
			DockDelayTicks:  10,
			HomeDelayTicks:  50,
			DeathDelayTicks: 10,
		},
		Goals: GoalConfig{
			ApproachRow: 5,
			Width:       7,
			Columns:     []int{0, 18, 36, 54, 72},
		},
		Lanes: []LaneConfig{
			{Row: 4, SpeedTicks: 5},
			{Row: 8, SpeedTicks: 7},
			{Row: 12, SpeedTicks: 10},
			{Row: 16, SpeedTicks: 12},
		},
		Spawn: SpawnConfig{
			MinTicks: 150,
			MaxTicks: 350,
		},
		Lives: 4,
	}
}
