// Package config provides YAML-based game configuration loading,
// validation and difficulty presets.
package config

import "time"

// FroggerConfig contains every tunable number of the game.
type FroggerConfig struct {
	Board  BoardConfig  `yaml:"board"`
	Timing TimingConfig `yaml:"timing"`
	Player PlayerConfig `yaml:"player"`
	Goals  GoalConfig   `yaml:"goals"`
	Lanes  []LaneConfig `yaml:"lanes"`
	Spawn  SpawnConfig  `yaml:"spawn"`
	Lives  int          `yaml:"lives"`
	Tasks  TaskConfig   `yaml:"tasks"`
}

// BoardConfig defines the playfield geometry.
type BoardConfig struct {
	Rows         int `yaml:"rows"`
	Cols         int `yaml:"cols"`
	LeftEdge     int `yaml:"left_edge"`
	RightEdge    int `yaml:"right_edge"`
	StartBankRow int `yaml:"start_bank_row"` // Rows >= this are the starting bank
	SafeBankRow  int `yaml:"safe_bank_row"`  // Rows <= this are the goal bank
}

// TimingConfig defines the tick length and the pacing of the periodic tasks.
type TimingConfig struct {
	Tick             time.Duration `yaml:"tick"`
	RefreshTicks     int           `yaml:"refresh_ticks"`
	InputPollTicks   int           `yaml:"input_poll_ticks"`
	LifePollTicks    int           `yaml:"life_poll_ticks"`
	CleanupIdleTicks int           `yaml:"cleanup_idle_ticks"` // Backoff when nothing was reaped
	CleanupStepTicks int           `yaml:"cleanup_step_ticks"` // Pause between two reaps
}

// PlayerConfig defines the player's start position, jumps and delays.
type PlayerConfig struct {
	StartRow        int `yaml:"start_row"`
	StartCol        int `yaml:"start_col"`
	VerticalJump    int `yaml:"vertical_jump"`
	SideJump        int `yaml:"side_jump"`
	HomeJump        int `yaml:"home_jump"`
	UpperBoundRow   int `yaml:"upper_bound_row"` // Regular up jumps need row > this
	BlinkTicks      int `yaml:"blink_ticks"`
	DockDelayTicks  int `yaml:"dock_delay_ticks"`
	HomeDelayTicks  int `yaml:"home_delay_ticks"`
	DeathDelayTicks int `yaml:"death_delay_ticks"`
}

// GoalConfig defines the goal slots. A slot at column c accepts a player
// whose column lies strictly between c and c+width-playerWidth.
type GoalConfig struct {
	ApproachRow int   `yaml:"approach_row"` // Row the player docks from
	Width       int   `yaml:"width"`
	Columns     []int `yaml:"columns"`
}

// LaneConfig defines one obstacle lane.
type LaneConfig struct {
	Row        int `yaml:"row"`
	SpeedTicks int `yaml:"speed_ticks"` // Ticks between two mover cycles
}

// SpawnConfig defines the randomized interval between two spawns in a lane.
type SpawnConfig struct {
	MinTicks int `yaml:"min_ticks"`
	MaxTicks int `yaml:"max_ticks"` // Exclusive
}

// TaskConfig bounds the lifecycle manager.
type TaskConfig struct {
	Max int `yaml:"max"` // 0 = unbounded
}

// Ticks converts a tick count into a duration.
func (t TimingConfig) Ticks(n int) time.Duration {
	return time.Duration(n) * t.Tick
}
