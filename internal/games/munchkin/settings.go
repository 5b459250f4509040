package munchkin

import (
	"fmt"

	"github.com/vovakirdan/tui-munchkin/internal/config"
	"github.com/vovakirdan/tui-munchkin/internal/games/munchkin/sim"
)

// Settings is the resolved configuration of one variant.
type Settings struct {
	Sim        sim.Config
	Difficulty config.DifficultyConfig
}

// LoadSettings loads the YAML config for a variant, applies the difficulty
// preset and converts it to simulation rules. Invalid maze layouts are
// rejected with an error wrapping sim.ErrInvalidLayout.
func LoadSettings(gameID, path string, preset config.DifficultyPreset) (Settings, error) {
	mc, err := config.LoadMunchkin(path)
	if err != nil {
		return Settings{}, err
	}
	config.ApplyMunchkinPreset(&mc, preset)

	cfg, err := simConfig(mc, gameID == SwarmID)
	if err != nil {
		return Settings{}, err
	}
	return Settings{Sim: cfg, Difficulty: mc.Difficulty}, nil
}

// defaultSettings is used when the configured files cannot be loaded.
func defaultSettings(swarm bool) Settings {
	mc := config.DefaultMunchkinConfig()
	cfg, _ := simConfig(mc, swarm) // no mazes to reject
	return Settings{Sim: cfg, Difficulty: mc.Difficulty}
}

func simConfig(mc config.MunchkinConfig, swarm bool) (sim.Config, error) {
	c := sim.DefaultConfig()

	c.PlayerSpeed = mc.Player.Speed
	c.LastPickupSpeed = mc.Pickups.LastSpeed
	c.Pursuers = mc.Pursuers.Count
	c.Pickups = mc.Pickups.Count
	if swarm {
		c.Pursuers = mc.Swarm.Pursuers
		c.Pickups = mc.Swarm.Pickups
	}

	c.GateRotationTicks = mc.Timing.GateRotationTicks
	c.VulnerableTicks = mc.Timing.VulnerableTicks
	c.VulnerableFlashTicks = mc.Timing.VulnerableFlashTicks
	c.RechargeTicks = mc.Pursuers.RechargeTicks
	c.CompletionTicks = mc.Timing.CompletionTicks
	c.GulpDelayTicks = mc.Pursuers.GulpDelayTicks
	c.DyingStageTicks = mc.Timing.DyingStageTicks
	c.PickupMoveEvery = mc.Pickups.MoveEvery
	c.PickupCheckEvery = mc.Pickups.CheckEvery
	c.MoveCueEvery = mc.Timing.MoveCueEvery
	c.MoveCueEveryLast = mc.Timing.MoveCueEveryLast

	c.PickupPoints = mc.Scoring.Pickup
	c.PowerPoints = mc.Scoring.PowerPickup
	c.PursuerPoints = mc.Scoring.Pursuer

	if len(mc.Mazes) > 0 {
		layouts := make([]sim.Layout, 0, len(mc.Mazes))
		for i, m := range mc.Mazes {
			l, err := toLayout(m)
			if err != nil {
				return c, fmt.Errorf("maze %d: %w", i+1, err)
			}
			layouts = append(layouts, l)
		}
		c.Layouts = layouts
	}

	return c.Normalize(), nil
}

func toLayout(m config.MazeLayout) (sim.Layout, error) {
	l := sim.Layout{Name: m.Name}
	if len(m.Horizontal) != len(l.Horizontal) || len(m.Vertical) != len(l.Vertical) {
		return l, fmt.Errorf("%w: %q has %d horizontal and %d vertical rows, want %d and %d",
			sim.ErrInvalidLayout, m.Name, len(m.Horizontal), len(m.Vertical), len(l.Horizontal), len(l.Vertical))
	}
	copy(l.Horizontal[:], m.Horizontal)
	copy(l.Vertical[:], m.Vertical)
	if err := l.Validate(); err != nil {
		return l, err
	}
	return l, nil
}
