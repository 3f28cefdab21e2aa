package config

import (
	"fmt"
	"math"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a flag value to a preset. The empty string means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy:
		return DifficultyEasy, nil
	case DifficultyHard:
		return DifficultyHard, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// scaling returns the multipliers applied to lane speed ticks and spawn interval.
// Larger speed ticks mean slower logs; a larger spawn interval means fewer logs.
func (p DifficultyPreset) scaling() (speed, spawn float64) {
	switch p {
	case DifficultyEasy:
		return 1.4, 0.8
	case DifficultyHard:
		return 0.7, 1.3
	default:
		return 1.0, 1.0
	}
}

// ApplyPreset scales lane speeds and the spawn interval for the preset.
// Geometry and lives are never touched.
func ApplyPreset(cfg *FroggerConfig, preset DifficultyPreset) {
	speed, spawn := preset.scaling()
	if speed == 1.0 && spawn == 1.0 {
		return
	}

	lanes := make([]LaneConfig, len(cfg.Lanes))
	for i, l := range cfg.Lanes {
		l.SpeedTicks = scaleTicks(l.SpeedTicks, speed)
		lanes[i] = l
	}
	cfg.Lanes = lanes

	cfg.Spawn.MinTicks = scaleTicks(cfg.Spawn.MinTicks, spawn)
	cfg.Spawn.MaxTicks = scaleTicks(cfg.Spawn.MaxTicks, spawn)
	if cfg.Spawn.MaxTicks <= cfg.Spawn.MinTicks {
		cfg.Spawn.MaxTicks = cfg.Spawn.MinTicks + 1
	}
}

// scaleTicks multiplies a tick count and keeps it at least 1.
func scaleTicks(ticks int, factor float64) int {
	return int(math.Max(1, math.Round(float64(ticks)*factor)))
}
