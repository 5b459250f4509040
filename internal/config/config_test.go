package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg MunchkinConfig
	if err := yaml.Unmarshal(defaultMunchkinYAML, &cfg); err != nil {
		t.Fatalf("embedded yaml: %v", err)
	}

	if len(cfg.Mazes) != 2 {
		t.Fatalf("embedded mazes = %d, expected 2", len(cfg.Mazes))
	}
	for _, m := range cfg.Mazes {
		if len(m.Horizontal) != 8 || len(m.Vertical) != 7 {
			t.Errorf("%s: %d horizontal and %d vertical rows", m.Name, len(m.Horizontal), len(m.Vertical))
		}
	}

	cfg.Mazes = nil
	if !reflect.DeepEqual(cfg, DefaultMunchkinConfig()) {
		t.Errorf("embedded defaults differ from DefaultMunchkinConfig():\n%+v\n%+v", cfg, DefaultMunchkinConfig())
	}
}

func TestLoadMunchkinCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "munchkin.yaml")
	data := "pursuers:\n  count: 6\ntiming:\n  vulnerable_ticks: 45\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadMunchkin(path)
	if err != nil {
		t.Fatalf("LoadMunchkin() failed: %v", err)
	}
	if cfg.Pursuers.Count != 6 || cfg.Timing.VulnerableTicks != 45 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.Pickups.Count != 12 || cfg.Timing.GateRotationTicks != 20 {
		t.Errorf("unset fields should keep their defaults: %+v", cfg)
	}
}

func TestLoadMunchkinErrors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("player: [1, 2"), 0o600); err != nil {
		t.Fatal(err)
	}

	badType := filepath.Join(dir, "type.yaml")
	if err := os.WriteFile(badType, []byte("difficulty:\n  progression:\n    type: lunar\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	badLevel := filepath.Join(dir, "level.yaml")
	if err := os.WriteFile(badLevel, []byte("difficulty:\n  initial_level: 1.5\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
		want string
	}{
		{"missing file", filepath.Join(dir, "missing.yaml"), "failed to read"},
		{"invalid yaml", bad, "failed to parse"},
		{"unknown progression", badType, "progression.type"},
		{"level out of range", badLevel, "initial_level"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadMunchkin(tc.path)
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Errorf("LoadMunchkin() error = %v, expected %q", err, tc.want)
			}
		})
	}
}

func TestApplyMunchkinPreset(t *testing.T) {
	tests := []struct {
		preset     DifficultyPreset
		enabled    bool
		level      float64
		vulnerable int
	}{
		{"", false, 0.0, 90},
		{DifficultyFixed, false, 0.0, 90},
		{DifficultyEasy, true, 0.0, 120},
		{DifficultyNormal, true, 0.3, 90},
		{DifficultyHard, true, 0.7, 70},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultMunchkinConfig()
			ApplyMunchkinPreset(&cfg, tc.preset)
			if cfg.Difficulty.Enabled != tc.enabled {
				t.Errorf("Enabled = %v, expected %v", cfg.Difficulty.Enabled, tc.enabled)
			}
			if cfg.Difficulty.InitialLevel != tc.level {
				t.Errorf("InitialLevel = %v, expected %v", cfg.Difficulty.InitialLevel, tc.level)
			}
			if cfg.Timing.VulnerableTicks != tc.vulnerable {
				t.Errorf("VulnerableTicks = %d, expected %d", cfg.Timing.VulnerableTicks, tc.vulnerable)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	for _, s := range []string{"", "easy", "normal", "hard", "fixed"} {
		if _, ok := ParsePreset(s); !ok {
			t.Errorf("ParsePreset(%q) rejected a valid preset", s)
		}
	}
	if _, ok := ParsePreset("insane"); ok {
		t.Error("ParsePreset(\"insane\") should fail")
	}
}

func TestSearchPaths(t *testing.T) {
	t.Setenv("HOME", "/home/tester")
	paths := searchPaths("munchkin.yaml")
	expected := []string{
		filepath.Join("/home/tester", ".arcade", "configs", "munchkin.yaml"),
		filepath.Join("configs", "munchkin.yaml"),
	}
	if !reflect.DeepEqual(paths, expected) {
		t.Errorf("searchPaths() = %v, expected %v", paths, expected)
	}
}

func TestLoadMunchkinLocalFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "configs"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "configs", "munchkin.yaml"), []byte("scoring:\n  pursuer: 25\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	oldWd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(oldWd) })

	cfg, err := LoadMunchkin("")
	if err != nil {
		t.Fatalf("LoadMunchkin() failed: %v", err)
	}
	if cfg.Scoring.Pursuer != 25 {
		t.Errorf("Scoring.Pursuer = %d, expected 25", cfg.Scoring.Pursuer)
	}
	if len(cfg.Mazes) != 0 {
		t.Errorf("local file without mazes should not pick up the embedded ones, got %d", len(cfg.Mazes))
	}
}
