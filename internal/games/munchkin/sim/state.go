package sim

import "math/rand"

// Capacities of the agent tables. Larger configured counts are clamped.
const (
	MaxPursuers = 9
	MaxPickups  = 24
)

// restartStage is the dying stage at which a new game begins.
const restartStage = 15

// Config holds the tunable rules of a run.
type Config struct {
	Geometry Geometry
	Layouts  []Layout // played in turn, wrapping around

	PlayerSpeed     int
	LastPickupSpeed int
	Pursuers        int
	Pickups         int

	GateRotationTicks    int
	VulnerableTicks      int
	VulnerableFlashTicks int
	RechargeTicks        int
	CompletionTicks      int
	GulpDelayTicks       int
	DyingStageTicks      int
	PickupMoveEvery      int
	PickupCheckEvery     int
	MoveCueEvery         int
	MoveCueEveryLast     int // once a single pickup remains

	PickupPoints  int
	PowerPoints   int
	PursuerPoints int
}

// DefaultConfig returns the rules of the original game.
func DefaultConfig() Config {
	return Config{
		Geometry:             DefaultGeometry(),
		Layouts:              DefaultLayouts(),
		PlayerSpeed:          2,
		LastPickupSpeed:      2,
		Pursuers:             4,
		Pickups:              12,
		GateRotationTicks:    20,
		VulnerableTicks:      90,
		VulnerableFlashTicks: 20,
		RechargeTicks:        150,
		CompletionTicks:      20,
		GulpDelayTicks:       5,
		DyingStageTicks:      10,
		PickupMoveEvery:      5,
		PickupCheckEvery:     3,
		MoveCueEvery:         5,
		MoveCueEveryLast:     3,
		PickupPoints:         1,
		PowerPoints:          3,
		PursuerPoints:        10,
	}
}

// Normalize clamps out-of-range values and drops invalid layouts. A config
// left without layouts gets the default ones.
func (c Config) Normalize() Config {
	def := DefaultConfig()
	if c.Geometry.HoriPitch <= 0 || c.Geometry.VertPitch <= 0 {
		c.Geometry = def.Geometry
	}

	layouts := make([]Layout, 0, len(c.Layouts))
	for _, l := range c.Layouts {
		if l.Validate() == nil {
			layouts = append(layouts, l)
		}
	}
	if len(layouts) == 0 {
		layouts = def.Layouts
	}
	c.Layouts = layouts

	c.PlayerSpeed = clamp(c.PlayerSpeed, 1, 2)
	c.LastPickupSpeed = clamp(c.LastPickupSpeed, 1, 2)
	c.Pursuers = clamp(c.Pursuers, 0, MaxPursuers)
	c.Pickups = clamp(c.Pickups, 1, MaxPickups)

	positive := []struct {
		v   *int
		def int
	}{
		{&c.GateRotationTicks, def.GateRotationTicks},
		{&c.VulnerableTicks, def.VulnerableTicks},
		{&c.RechargeTicks, def.RechargeTicks},
		{&c.CompletionTicks, def.CompletionTicks},
		{&c.DyingStageTicks, def.DyingStageTicks},
		{&c.PickupMoveEvery, def.PickupMoveEvery},
		{&c.PickupCheckEvery, def.PickupCheckEvery},
		{&c.MoveCueEvery, def.MoveCueEvery},
		{&c.MoveCueEveryLast, def.MoveCueEveryLast},
	}
	for _, p := range positive {
		if *p.v <= 0 {
			*p.v = p.def
		}
	}
	if c.GulpDelayTicks < 0 {
		c.GulpDelayTicks = 0
	}
	c.VulnerableFlashTicks = clamp(c.VulnerableFlashTicks, 0, c.VulnerableTicks)
	return c
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Input is what the player asked for during one tick.
type Input struct {
	Directions
	Menu bool
}

// TickResult reports what happened during a tick.
type TickResult struct {
	Cues         []Cue
	ScoreChanged bool // score or high score changed
	GameOver     bool // the death animation finished and a new game began
	FinalScore   int  // score of the game that ended
	MazeLoaded   bool
	Aborted      bool
}

// State is the whole simulation. It is owned by a single goroutine.
type State struct {
	cfg    Config
	rng    *rand.Rand
	motion Motion

	Grid     *MazeGrid
	Player   Player
	Pursuers []Pursuer
	Pickups  []Pickup

	Score     int
	HighScore int
	Frame     uint64
	MazeIndex int // index into the configured layouts

	Completed       bool
	CompletionTicks int
	MazeFlash       bool
	VulnerableTimer int

	Games        int
	MazesCleared int

	lastPickupBoosted bool
	cues              []Cue
}

// New creates a simulation and starts the first game. The generator is
// seeded once and shared by every decision for the life of the State.
func New(cfg Config, seed int64) *State {
	cfg = cfg.Normalize()
	s := &State{
		cfg:   cfg,
		rng:   rand.New(rand.NewSource(seed)),
		Frame: 1,
	}
	s.motion.Geo = cfg.Geometry
	s.NewGame()
	return s
}

// Config returns the normalized configuration.
func (s *State) Config() Config { return s.cfg }

// SetHighScore seeds the high score, usually from persistent storage.
func (s *State) SetHighScore(v int) {
	if v > s.HighScore {
		s.HighScore = v
	}
}

// SetVulnerableTicks changes the length of future vulnerable windows.
func (s *State) SetVulnerableTicks(ticks int) {
	if ticks > 0 {
		s.cfg.VulnerableTicks = ticks
	}
}

// NewGame resets the score and starts on the first maze.
func (s *State) NewGame() {
	s.Player = Player{Speed: s.cfg.PlayerSpeed}
	s.Score = 0
	s.MazeIndex = 0
	s.Games++
	s.NewMaze()
}

// NewMaze rebuilds the grid and puts every agent on its starting cell.
func (s *State) NewMaze() {
	grid, err := NewMazeGrid(s.cfg.Layouts[s.MazeIndex%len(s.cfg.Layouts)])
	if err != nil {
		// Layouts were validated by Normalize.
		panic(err)
	}
	s.Grid = grid
	s.motion.Grid = grid

	geo := s.cfg.Geometry
	s.Player.Pos = geo.CellCenter(CenterCol, CenterRow-1)
	s.Player.Auto = None
	s.Player.Last = None
	s.Player.Phase = PhaseIdle
	s.Player.DyingStage = 0
	s.Player.animFrame = 0

	s.Completed = false
	s.CompletionTicks = 0
	s.MazeFlash = false
	s.VulnerableTimer = 0
	s.lastPickupBoosted = false

	s.Pursuers = make([]Pursuer, s.cfg.Pursuers)
	for i := range s.Pursuers {
		s.Pursuers[i] = Pursuer{
			Pos:    geo.CellCenter(CenterCol, CenterRow),
			Dir:    Down,
			Speed:  s.Player.Speed,
			Status: Normal,
			Colour: PursuerColours[i%len(PursuerColours)],
		}
	}
	s.Pickups = placePickups(s.cfg.Pickups, geo, s.rng)
}

// ActivePickups counts pickups still on the board.
func (s *State) ActivePickups() int {
	n := 0
	for i := range s.Pickups {
		if s.Pickups[i].Status != Off {
			n++
		}
	}
	return n
}

// Tick advances the simulation by one frame: player, pursuers, collisions,
// pickups, then the gate.
func (s *State) Tick(in Input) TickResult {
	s.cues = s.cues[:0]
	var res TickResult
	if in.Menu {
		res.Aborted = true
		return res
	}

	score, high := s.Score, s.HighScore

	if s.Player.Dying() && s.Player.DyingStage >= restartStage {
		res.GameOver = true
		res.FinalScore = s.Score
		res.MazeLoaded = true
		s.NewGame()
	}
	if s.Completed && s.CompletionTicks == 0 {
		s.MazeIndex = (s.MazeIndex + 1) % len(s.cfg.Layouts)
		s.NewMaze()
		res.MazeLoaded = true
	}

	s.updatePlayer(in.Directions)
	if s.Completed {
		s.animateCompletion()
	}
	if !s.Player.Dying() {
		s.updatePursuers()
	}
	if !s.Completed {
		s.checkPursuerHits()
	}
	if s.every(s.cfg.PickupCheckEvery) || s.ActivePickups() == 1 {
		s.checkPickupsEaten()
	}
	if s.ActivePickups() == 1 || s.every(s.cfg.PickupMoveEvery) {
		s.updatePickups()
	}
	s.maskPickups()
	if s.every(s.cfg.GateRotationTicks) && !s.Completed {
		s.Grid.RotateGate()
	}
	s.Frame++

	res.Cues = append([]Cue(nil), s.cues...)
	res.ScoreChanged = score != s.Score || high != s.HighScore
	return res
}

func (s *State) every(n int) bool {
	return s.Frame%uint64(n) == 0
}

func (s *State) cue(c Cue) {
	s.cues = append(s.cues, c)
}

func (s *State) addScore(points int) {
	s.Score += points
	if s.Score > s.HighScore {
		s.HighScore = s.Score
	}
}

func (s *State) updatePlayer(in Directions) {
	p := &s.Player
	if p.Dying() {
		if s.every(s.cfg.DyingStageTicks) {
			p.DyingStage++
			switch p.DyingStage {
			case 3:
				s.cue(CueDyingShort)
			case 6:
				s.cue(CueDying)
			}
		}
		return
	}
	if s.Completed {
		return
	}
	if p.Update(s.motion, p.Request(in)) {
		cadence := s.cfg.MoveCueEvery
		if s.ActivePickups() == 1 {
			cadence = s.cfg.MoveCueEveryLast
		}
		if s.every(cadence) {
			s.cue(CueMove)
		}
	}
	p.animate()
}

func (s *State) animateCompletion() {
	s.CompletionTicks--
	if s.CompletionTicks%3 == 0 {
		s.MazeFlash = !s.MazeFlash
		s.cue(CueMazeComplete)
	}
}

func (s *State) updatePursuers() {
	if s.VulnerableTimer > 0 {
		s.VulnerableTimer--
	}
	if s.VulnerableTimer == 0 {
		for i := range s.Pursuers {
			if s.Pursuers[i].Status == Vulnerable {
				s.Pursuers[i].Status = Normal
			}
		}
	}
	if s.Completed {
		return
	}

	for i := range s.Pursuers {
		u := &s.Pursuers[i]
		if u.GulpDelay > 0 {
			if u.GulpDelay == 1 {
				s.cue(CueGulpPursuer)
			}
			u.GulpDelay--
			continue
		}
		u.steer(s.cfg.Geometry, s.Grid, s.rng, s.cfg.RechargeTicks)
		u.Pos = s.motion.Advance(u.Pos, u.Dir, u.Speed, s.cfg.Geometry.AgentWrap)
	}
}

func (s *State) updatePickups() {
	if s.Completed {
		return
	}
	geo := s.cfg.Geometry
	for i := range s.Pickups {
		k := &s.Pickups[i]
		if k.Status == Off {
			continue
		}
		k.steer(geo, s.Grid, s.rng)
		k.Pos = s.motion.Advance(k.Pos, k.Dir, k.Speed, geo.AgentWrap)
	}

	if s.lastPickupBoosted || s.ActivePickups() != 1 {
		return
	}
	for i := range s.Pickups {
		k := &s.Pickups[i]
		if k.Status != Off && geo.Centered(k.Pos) {
			k.Speed = s.cfg.LastPickupSpeed
			s.lastPickupBoosted = true
		}
	}
}
