// Package munchkin adapts the maze-chase simulation to the platform: it maps
// actions to directions, collects sprites for the character renderer and
// exposes the two registered variants.
package munchkin

import (
	"github.com/vovakirdan/tui-munchkin/internal/config"
	"github.com/vovakirdan/tui-munchkin/internal/core"
	"github.com/vovakirdan/tui-munchkin/internal/games/munchkin/sim"
	"github.com/vovakirdan/tui-munchkin/internal/registry"
)

// Variant identifiers.
const (
	ClassicID = "munchkin"
	SwarmID   = "munchkin_swarm"
)

// Package-level config and difficulty, set by the CLI before games are created.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
)

// SetConfigPath sets a custom config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

func init() {
	registry.Register(ClassicID, func() registry.Game { return New() })
	registry.Register(SwarmID, func() registry.Game { return NewSwarm() })
}

// Game implements registry.Game for one variant.
type Game struct {
	id    string
	title string

	settings   Settings
	state      *sim.State
	runner     sim.Runner
	difficulty *config.DifficultyManager

	input   actionInput
	sprites spriteLayer
	hud     scoreBoard
	cues    cueRelay

	screenW  int
	screenH  int
	originX  int
	originY  int
	tooSmall bool

	highScore    int
	paused       bool
	gameOver     bool
	lastScore    int
	lastMazes    int
	mazesAtStart int
}

// New creates the classic variant.
func New() *Game {
	return &Game{id: ClassicID, title: "Munchkin"}
}

// NewSwarm creates the variant with more pursuers and pickups.
func NewSwarm() *Game {
	return &Game{id: SwarmID, title: "Munchkin Swarm"}
}

// ID returns the variant identifier.
func (g *Game) ID() string { return g.id }

// Title returns the display name.
func (g *Game) Title() string { return g.title }

// SetAudio routes sound cues to a player. Nil silences the game.
func (g *Game) SetAudio(a sim.AudioCue) {
	g.cues.out = a
}

// SetHighScore seeds the high score shown in the HUD.
func (g *Game) SetHighScore(score int) {
	if score > g.highScore {
		g.highScore = score
	}
	if g.state != nil {
		g.state.SetHighScore(score)
		g.hud.Show(g.state.Score, g.state.HighScore)
	}
}

// Reset loads the configuration and starts the first game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	settings, err := LoadSettings(g.id, configPath, difficultyPreset)
	if err != nil {
		settings = defaultSettings(g.id == SwarmID)
	}
	g.settings = settings

	g.difficulty = config.NewDifficultyManager(settings.Difficulty)
	g.state = sim.New(settings.Sim, cfg.Seed)
	g.state.SetHighScore(g.highScore)
	g.applyDifficulty()

	g.sprites.reset()
	g.cues.played = 0
	g.runner = sim.Runner{
		State:    g.state,
		Input:    &g.input,
		Audio:    &g.cues,
		Score:    &g.hud,
		Renderer: &g.sprites,
	}

	g.paused = false
	g.gameOver = false
	g.lastScore, g.lastMazes = 0, 0
	g.mazesAtStart = 0

	g.hud.Show(g.state.Score, g.state.HighScore)
	g.state.Present(&g.sprites)
	g.layout(cfg.ScreenW, cfg.ScreenH)
}

// Step advances the simulation by one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.gameOver = false

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	g.input.frame = in
	res := g.runner.Step()
	if res.Aborted {
		return core.StepResult{State: g.State(), Quit: true}
	}

	if res.GameOver {
		g.gameOver = true
		g.lastScore = res.FinalScore
		g.lastMazes = g.state.MazesCleared - g.mazesAtStart
		g.mazesAtStart = g.state.MazesCleared
	}
	if res.MazeLoaded {
		g.applyDifficulty()
	}
	if g.state.HighScore > g.highScore {
		g.highScore = g.state.HighScore
	}

	return core.StepResult{State: g.State()}
}

// applyDifficulty shortens vulnerable windows as the current game progresses.
func (g *Game) applyDifficulty() {
	if !g.difficulty.IsEnabled() {
		return
	}
	p := config.Progress{
		Score:        g.state.Score,
		Ticks:        int(g.state.Frame),
		MazesCleared: g.state.MazesCleared - g.mazesAtStart,
	}
	g.state.SetVulnerableTicks(g.difficulty.VulnerableTicks(g.settings.Sim.VulnerableTicks, p))
}

// State returns the platform view of the game. GameOver is set only on the
// step in which a game ended, and Score and Mazes then describe that game.
func (g *Game) State() core.GameState {
	if g.state == nil {
		return core.GameState{}
	}
	score, mazes := g.state.Score, g.state.MazesCleared-g.mazesAtStart
	if g.gameOver {
		score, mazes = g.lastScore, g.lastMazes
	}
	return core.GameState{
		Score:     score,
		Mazes:     mazes,
		HighScore: g.state.HighScore,
		GameOver:  g.gameOver,
		Paused:    g.paused,
	}
}

// Sim exposes the simulation for inspection.
func (g *Game) Sim() *sim.State { return g.state }

// actionInput adapts a platform input frame to the simulation input source.
type actionInput struct {
	frame core.InputFrame
}

func (a *actionInput) PollDirections() sim.Directions {
	return sim.Directions{
		Left:  a.frame.Has(core.ActionLeft),
		Right: a.frame.Has(core.ActionRight),
		Up:    a.frame.Has(core.ActionUp),
		Down:  a.frame.Has(core.ActionDown),
	}
}

func (a *actionInput) MenuKeyPressed() bool {
	return a.frame.Has(core.ActionBack)
}

// cueRelay forwards cues to an optional player and counts them.
type cueRelay struct {
	out    sim.AudioCue
	played int
}

func (c *cueRelay) Play(cue sim.Cue) {
	c.played++
	if c.out != nil {
		c.out.Play(cue)
	}
}

// scoreBoard keeps the numbers last published by the simulation.
type scoreBoard struct {
	score int
	high  int
}

func (s *scoreBoard) Show(score, high int) {
	s.score = score
	s.high = high
}
