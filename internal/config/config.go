// Package config provides YAML-based game configuration loading and
// difficulty management.
package config

// MunchkinConfig contains all configuration for Munchkin.
type MunchkinConfig struct {
	Player     MunchkinPlayer   `yaml:"player"`
	Pursuers   MunchkinPursuers `yaml:"pursuers"`
	Pickups    MunchkinPickups  `yaml:"pickups"`
	Timing     MunchkinTiming   `yaml:"timing"`
	Scoring    MunchkinScoring  `yaml:"scoring"`
	Swarm      MunchkinSwarm    `yaml:"swarm"`
	Mazes      []MazeLayout     `yaml:"mazes"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// MunchkinPlayer defines player movement.
type MunchkinPlayer struct {
	Speed int `yaml:"speed"` // pixels per tick, 1 or 2
}

// MunchkinPursuers defines the maze monsters.
type MunchkinPursuers struct {
	Count          int `yaml:"count"`
	RechargeTicks  int `yaml:"recharge_ticks"`
	GulpDelayTicks int `yaml:"gulp_delay_ticks"`
}

// MunchkinPickups defines the wandering pills.
type MunchkinPickups struct {
	Count      int `yaml:"count"`
	MoveEvery  int `yaml:"move_every"`  // ticks between steps
	CheckEvery int `yaml:"check_every"` // ticks between eaten checks
	LastSpeed  int `yaml:"last_speed"`  // speed of the final pickup
}

// MunchkinTiming holds the tick counts of the timed phases.
type MunchkinTiming struct {
	GateRotationTicks    int `yaml:"gate_rotation_ticks"`
	VulnerableTicks      int `yaml:"vulnerable_ticks"`
	VulnerableFlashTicks int `yaml:"vulnerable_flash_ticks"`
	CompletionTicks      int `yaml:"completion_ticks"`
	DyingStageTicks      int `yaml:"dying_stage_ticks"`
	MoveCueEvery         int `yaml:"move_cue_every"`
	MoveCueEveryLast     int `yaml:"move_cue_every_last"`
}

// MunchkinScoring defines the points awarded.
type MunchkinScoring struct {
	Pickup      int `yaml:"pickup"`
	PowerPickup int `yaml:"power_pickup"`
	Pursuer     int `yaml:"pursuer"`
}

// MunchkinSwarm overrides the agent counts of the swarm variant.
type MunchkinSwarm struct {
	Pursuers int `yaml:"pursuers"`
	Pickups  int `yaml:"pickups"`
}

// MazeLayout is a maze as wall strings. Horizontal rows use 'x' for a wall,
// vertical rows use '|', and '-' is open.
type MazeLayout struct {
	Name       string   `yaml:"name"`
	Horizontal []string `yaml:"horizontal"`
	Vertical   []string `yaml:"vertical"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases.
type ProgressionConfig struct {
	Type  ProgressionType `yaml:"type"`
	MaxAt int             `yaml:"max_at"` // progress at which the level reaches 1.0
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	VulnerableReduction int `yaml:"vulnerable_reduction"` // ticks removed from the vulnerable window at max difficulty
	MinVulnerableTicks  int `yaml:"min_vulnerable_ticks"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a flag value to a preset. The empty string keeps the
// config file's own difficulty settings.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	}
	return "", false
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
