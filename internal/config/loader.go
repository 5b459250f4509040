package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const munchkinFile = "munchkin.yaml"

// LoadMunchkin loads Munchkin configuration. A custom path must exist, parse
// and validate. Otherwise the first readable, valid file of
// ~/.arcade/configs/munchkin.yaml and ./configs/munchkin.yaml wins, then the
// embedded default. Files only override the keys they name.
func LoadMunchkin(customPath string) (MunchkinConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultMunchkinConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseMunchkin(data)
		if err != nil {
			return DefaultMunchkinConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range searchPaths(munchkinFile) {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := parseMunchkin(data); err == nil {
			return cfg, nil
		}
	}

	if cfg, err := parseMunchkin(defaultMunchkinYAML); err == nil {
		return cfg, nil
	}
	return DefaultMunchkinConfig(), nil
}

// parseMunchkin decodes data over the defaults and validates the result.
func parseMunchkin(data []byte) (MunchkinConfig, error) {
	cfg := DefaultMunchkinConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Difficulty.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// searchPaths lists the non-custom locations of a config file, user first.
func searchPaths(filename string) []string {
	var paths []string
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".arcade", "configs", filename))
	}
	return append(paths, filepath.Join("configs", filename))
}

// ApplyMunchkinPreset modifies the config based on a difficulty preset.
// The empty preset leaves the config untouched.
func ApplyMunchkinPreset(cfg *MunchkinConfig, preset DifficultyPreset) {
	switch {
	case preset == "":
		return
	case IsFixedPreset(preset):
		cfg.Difficulty.Enabled = false
		return
	}

	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)

	switch preset {
	case DifficultyEasy:
		cfg.Timing.VulnerableTicks = 120
	case DifficultyHard:
		cfg.Timing.VulnerableTicks = 70
	}
}
