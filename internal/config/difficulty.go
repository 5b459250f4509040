package config

import (
	"fmt"
	"math"
)

// ProgressionType selects what drives the difficulty ramp.
type ProgressionType string

const (
	ProgressionScore ProgressionType = "score"
	ProgressionTime  ProgressionType = "time"
	ProgressionMazes ProgressionType = "mazes"
	ProgressionNone  ProgressionType = "none"
)

// Valid reports whether t is a known progression. The empty value counts as
// none.
func (t ProgressionType) Valid() bool {
	switch t {
	case "", ProgressionScore, ProgressionTime, ProgressionMazes, ProgressionNone:
		return true
	}
	return false
}

// Validate checks the difficulty block for values the ramp cannot use.
func (c DifficultyConfig) Validate() error {
	if !c.Progression.Type.Valid() {
		return fmt.Errorf("difficulty.progression.type %q (want score, time, mazes or none)", c.Progression.Type)
	}
	if c.InitialLevel < 0 || c.InitialLevel > 1 {
		return fmt.Errorf("difficulty.initial_level %v is outside 0..1", c.InitialLevel)
	}
	if c.Scaling.MinVulnerableTicks < 0 || c.Scaling.VulnerableReduction < 0 {
		return fmt.Errorf("difficulty.scaling values must not be negative")
	}
	return nil
}

// Progress is what a game has achieved so far.
type Progress struct {
	Score        int
	Ticks        int
	MazesCleared int
}

// DifficultyManager turns progress into a level and the level into tuning.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	t := d.cfg.Progression.Type
	return d.cfg.Enabled && t != "" && t != ProgressionNone
}

// Level returns the current difficulty level (0.0 to 1.0).
func (d *DifficultyManager) Level(p Progress) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1
	}

	var done int
	switch d.cfg.Progression.Type {
	case ProgressionScore:
		done = p.Score
	case ProgressionTime:
		done = p.Ticks
	case ProgressionMazes:
		done = p.MazesCleared
	default:
		return d.initialLevel
	}

	progress := clampF(float64(done)/maxAt, 0.0, 1.0)
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// VulnerableTicks shortens the vulnerable window as difficulty rises.
// The result never drops below the configured minimum. Disabled progression
// returns base unchanged.
func (d *DifficultyManager) VulnerableTicks(base int, p Progress) int {
	if !d.IsEnabled() {
		return base
	}
	reduction := int(d.Level(p) * float64(d.cfg.Scaling.VulnerableReduction))
	result := base - reduction
	if minTicks := d.cfg.Scaling.MinVulnerableTicks; result < minTicks {
		result = minTicks
	}
	if result < 1 {
		result = 1
	}
	return result
}

func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
