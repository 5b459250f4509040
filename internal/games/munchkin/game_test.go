package munchkin

import (
	"errors"
	"math/rand"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-munchkin/internal/config"
	"github.com/vovakirdan/tui-munchkin/internal/core"
	"github.com/vovakirdan/tui-munchkin/internal/games/munchkin/sim"
	"github.com/vovakirdan/tui-munchkin/internal/registry"
)

var testCfg = core.RuntimeConfig{
	Seed:    12345,
	ScreenW: 80,
	ScreenH: 24,
}

func newGame(t *testing.T) *Game {
	t.Helper()
	g := New()
	g.Reset(testCfg)
	return g
}

// scriptedInput returns a reproducible stream of direction frames.
func scriptedInput(seed int64, n int) []core.InputFrame {
	rng := rand.New(rand.NewSource(seed))
	dirs := []core.Action{core.ActionLeft, core.ActionRight, core.ActionUp, core.ActionDown}
	frames := make([]core.InputFrame, n)
	held := core.ActionNone
	for i := range frames {
		if i%15 == 0 {
			held = dirs[rng.Intn(len(dirs))]
		}
		frames[i] = core.NewInputFrame()
		frames[i].Set(held)
	}
	return frames
}

func TestDeterminism(t *testing.T) {
	g1 := newGame(t)
	g2 := newGame(t)

	for _, in := range scriptedInput(7, 600) {
		g1.Step(in)
		g2.Step(in)
	}

	snap1 := g1.Snapshot()
	snap2 := g2.Snapshot()
	if !reflect.DeepEqual(snap1, snap2) {
		t.Errorf("snapshots differ:\n%+v\n%+v", snap1, snap2)
	}
	if snap1.Frame != 601 {
		t.Errorf("Frame = %d, expected 601", snap1.Frame)
	}
}

func TestInitialSnapshot(t *testing.T) {
	snap := newGame(t).Snapshot()
	if snap.State != StatePlaying {
		t.Errorf("State = %q, expected %q", snap.State, StatePlaying)
	}
	if snap.MazeIndex != 1 || snap.Score != 0 {
		t.Errorf("MazeIndex = %d, Score = %d, expected 1 and 0", snap.MazeIndex, snap.Score)
	}
	if len(snap.Pursuers) != 4 {
		t.Fatalf("len(Pursuers) = %d, expected 4", len(snap.Pursuers))
	}
	for i, p := range snap.Pursuers {
		if p.Status != "normal" {
			t.Errorf("pursuer %d status = %q, expected normal", i, p.Status)
		}
		if want := sim.PursuerColours[i].String(); p.Colour != want {
			t.Errorf("pursuer %d colour = %q, expected %q", i, p.Colour, want)
		}
	}
}

func TestVariantsRegistered(t *testing.T) {
	for _, id := range []string{ClassicID, SwarmID} {
		if !registry.Exists(id) {
			t.Errorf("variant %q not registered", id)
		}
	}

	classic, err := registry.Create(ClassicID)
	if err != nil {
		t.Fatalf("Create(%q): %v", ClassicID, err)
	}
	swarm, err := registry.Create(SwarmID)
	if err != nil {
		t.Fatalf("Create(%q): %v", SwarmID, err)
	}
	classic.Reset(testCfg)
	swarm.Reset(testCfg)

	c := classic.(*Game).Sim()
	s := swarm.(*Game).Sim()
	if len(s.Pursuers) <= len(c.Pursuers) {
		t.Errorf("swarm pursuers = %d, classic = %d; expected more in swarm", len(s.Pursuers), len(c.Pursuers))
	}
	if len(s.Pickups) <= len(c.Pickups) {
		t.Errorf("swarm pickups = %d, classic = %d; expected more in swarm", len(s.Pickups), len(c.Pickups))
	}
	if classic.Title() == swarm.Title() {
		t.Errorf("variants share title %q", classic.Title())
	}
}

func TestPauseToggle(t *testing.T) {
	g := newGame(t)
	frame := g.Sim().Frame

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	res := g.Step(pause)
	if !res.State.Paused {
		t.Fatal("expected paused after ActionPause")
	}

	g.Step(core.NewInputFrame())
	if g.Sim().Frame != frame {
		t.Errorf("Frame advanced while paused: %d -> %d", frame, g.Sim().Frame)
	}

	screen := core.NewScreen(testCfg.ScreenW, testCfg.ScreenH)
	g.Render(screen)
	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("paused screen should show PAUSED")
	}

	res = g.Step(pause)
	if res.State.Paused {
		t.Error("expected unpaused after second ActionPause")
	}
	if g.Sim().Frame != frame+1 {
		t.Errorf("Frame = %d, expected %d", g.Sim().Frame, frame+1)
	}
}

func TestBackQuits(t *testing.T) {
	g := newGame(t)
	frame := g.Sim().Frame

	back := core.NewInputFrame()
	back.Set(core.ActionBack)
	res := g.Step(back)
	if !res.Quit {
		t.Error("ActionBack should ask to quit")
	}
	if g.Sim().Frame != frame {
		t.Errorf("aborted tick advanced Frame to %d", g.Sim().Frame)
	}
}

func TestTooSmall(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 40, ScreenH: 12, Seed: 1})

	frame := g.Sim().Frame
	g.Step(core.NewInputFrame())
	if g.Sim().Frame != frame {
		t.Error("game should not advance in a small window")
	}
	if g.Snapshot().State != StatePausedSmall {
		t.Errorf("State = %q, expected %q", g.Snapshot().State, StatePausedSmall)
	}

	screen := core.NewScreen(40, 12)
	g.Render(screen)
	if !strings.Contains(screen.String(), "too small") {
		t.Errorf("expected too-small message, got:\n%s", screen.String())
	}

	g.Resize(MinWidth, MinHeight)
	g.Step(core.NewInputFrame())
	if g.Sim().Frame != frame+1 {
		t.Errorf("Frame = %d after resize, expected %d", g.Sim().Frame, frame+1)
	}
}

func TestRenderInitialFrame(t *testing.T) {
	g := newGame(t)
	screen := core.NewScreen(testCfg.ScreenW, testCfg.ScreenH)
	g.Render(screen)

	if !strings.Contains(screen.Row(0), "MUNCHKIN") {
		t.Errorf("HUD row = %q, expected title", screen.Row(0))
	}
	if !strings.Contains(screen.Row(0), "Score 0000") {
		t.Errorf("HUD row = %q, expected zero score", screen.Row(0))
	}

	if r := screen.Get(g.originX, g.originY); r != '┌' {
		t.Errorf("top-left corner = %q, expected '┌'", r)
	}
	if r := screen.Get(g.originX+mazeW-1, g.originY+mazeH-1); r != '┘' {
		t.Errorf("bottom-right corner = %q, expected '┘'", r)
	}

	p := g.Sim().Player.Pos
	x, y := g.toScreen(p.X, p.Y)
	cell := screen.GetCell(x, y)
	want := sim.GraphicFor(g.sprites.player.frame).Glyph
	if cell.Rune != want {
		t.Errorf("player glyph = %q, expected %q", cell.Rune, want)
	}
	if cell.Color != core.ColorBrightCyan {
		t.Errorf("player colour = %v, expected %v", cell.Color, core.ColorBrightCyan)
	}
}

func TestToScreenCellCenters(t *testing.T) {
	g := newGame(t)
	geo := g.Sim().Config().Geometry

	tests := []struct {
		cx, cy int
	}{
		{0, 0},
		{4, 3},
		{8, 6},
	}
	for _, tt := range tests {
		p := geo.CellCenter(tt.cx, tt.cy)
		x, y := g.toScreen(p.X, p.Y)
		wantX := g.originX + tt.cx*cellW + cellW/2
		wantY := g.originY + tt.cy*cellH + 1
		if x != wantX || y != wantY {
			t.Errorf("toScreen(cell %d,%d) = (%d,%d), expected (%d,%d)", tt.cx, tt.cy, x, y, wantX, wantY)
		}
	}

	x, _ := g.toScreen(geo.PlayerWrap.Min, geo.BaseY())
	if x < 0 {
		t.Errorf("tunnel exit column %d is off screen", x)
	}
	x, _ = g.toScreen(geo.PlayerWrap.Max, geo.BaseY())
	if x >= testCfg.ScreenW {
		t.Errorf("tunnel exit column %d is off screen", x)
	}
}

func TestJoint(t *testing.T) {
	tests := []struct {
		left, right, up, down bool
		want                  rune
	}{
		{false, false, false, false, ' '},
		{true, true, false, false, '─'},
		{false, false, true, true, '│'},
		{false, true, false, true, '┌'},
		{true, false, true, false, '┘'},
		{true, true, true, true, '┼'},
		{true, true, false, true, '┬'},
	}
	for _, tt := range tests {
		if got := joint(tt.left, tt.right, tt.up, tt.down); got != tt.want {
			t.Errorf("joint(%v,%v,%v,%v) = %q, expected %q", tt.left, tt.right, tt.up, tt.down, got, tt.want)
		}
	}
}

func TestSetHighScore(t *testing.T) {
	g := New()
	g.SetHighScore(40)
	g.Reset(testCfg)

	if g.State().HighScore != 40 {
		t.Errorf("HighScore = %d, expected 40", g.State().HighScore)
	}
	if g.hud.high != 40 {
		t.Errorf("HUD high = %d, expected 40", g.hud.high)
	}

	g.SetHighScore(500)
	if g.State().HighScore != 500 || g.hud.high != 500 {
		t.Errorf("HighScore = %d, HUD = %d, expected 500", g.State().HighScore, g.hud.high)
	}
}

type cueRecorder struct {
	cues []sim.Cue
}

func (r *cueRecorder) Play(c sim.Cue) { r.cues = append(r.cues, c) }

func TestAudioRelay(t *testing.T) {
	g := newGame(t)
	rec := &cueRecorder{}
	g.SetAudio(rec)

	for _, in := range scriptedInput(3, 300) {
		g.Step(in)
	}
	if len(rec.cues) == 0 {
		t.Fatal("expected cues to reach the audio player")
	}
	if len(rec.cues) != g.cues.played {
		t.Errorf("recorded %d cues, relay counted %d", len(rec.cues), g.cues.played)
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "munchkin.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadSettingsCustomFile(t *testing.T) {
	path := writeConfig(t, "pursuers:\n  count: 2\nswarm:\n  pursuers: 6\n")

	s, err := LoadSettings(ClassicID, path, "")
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if s.Sim.Pursuers != 2 {
		t.Errorf("Pursuers = %d, expected 2", s.Sim.Pursuers)
	}
	if len(s.Sim.Layouts) != 2 {
		t.Errorf("Layouts = %d, expected 2", len(s.Sim.Layouts))
	}

	s, err = LoadSettings(SwarmID, path, "")
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if s.Sim.Pursuers != 6 {
		t.Errorf("swarm Pursuers = %d, expected 6", s.Sim.Pursuers)
	}
}

func TestLoadSettingsRejectsBadMaze(t *testing.T) {
	path := writeConfig(t, `mazes:
  - name: Broken
    horizontal: ["xxxxxxxxx"]
    vertical: ["|--------|"]
`)
	_, err := LoadSettings(ClassicID, path, "")
	if !errors.Is(err, sim.ErrInvalidLayout) {
		t.Errorf("err = %v, expected ErrInvalidLayout", err)
	}
}

func TestLoadSettingsMissingFile(t *testing.T) {
	_, err := LoadSettings(ClassicID, filepath.Join(t.TempDir(), "missing.yaml"), "")
	if err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestDifficultyPreset(t *testing.T) {
	defer SetDifficultyPreset("")

	SetDifficultyPreset(config.DifficultyEasy)
	g := newGame(t)
	if v := g.Sim().Config().VulnerableTicks; v != 120 {
		t.Errorf("easy VulnerableTicks = %d, expected 120", v)
	}

	SetDifficultyPreset(config.DifficultyHard)
	g = newGame(t)
	v := g.Sim().Config().VulnerableTicks
	if v >= 70 || v < 25 {
		t.Errorf("hard VulnerableTicks = %d, expected in [25, 70)", v)
	}
}
