package config

import (
	_ "embed"
)

//go:embed defaults/munchkin.yaml
var defaultMunchkinYAML []byte

// DefaultMunchkinConfig returns the built-in configuration without layouts.
// Callers fall back to the simulation's own mazes when Mazes is empty.
func DefaultMunchkinConfig() MunchkinConfig {
	return MunchkinConfig{
		Player: MunchkinPlayer{Speed: 2},
		Pursuers: MunchkinPursuers{
			Count:          4,
			RechargeTicks:  150,
			GulpDelayTicks: 5,
		},
		Pickups: MunchkinPickups{
			Count:      12,
			MoveEvery:  5,
			CheckEvery: 3,
			LastSpeed:  2,
		},
		Timing: MunchkinTiming{
			GateRotationTicks:    20,
			VulnerableTicks:      90,
			VulnerableFlashTicks: 20,
			CompletionTicks:      20,
			DyingStageTicks:      10,
			MoveCueEvery:         5,
			MoveCueEveryLast:     3,
		},
		Scoring: MunchkinScoring{
			Pickup:      1,
			PowerPickup: 3,
			Pursuer:     10,
		},
		Swarm: MunchkinSwarm{
			Pursuers: 8,
			Pickups:  20,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  ProgressionMazes,
				MaxAt: 8,
			},
			Scaling: ScalingConfig{
				VulnerableReduction: 60,
				MinVulnerableTicks:  25,
			},
		},
	}
}
