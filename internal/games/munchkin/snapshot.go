package munchkin

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateCompleted   GameStateType = "maze_completed"
	StateDying       GameStateType = "dying"
	StatePaused      GameStateType = "paused"
	StatePausedSmall GameStateType = "paused_small_window"
)

// AgentSnapshot is the position and condition of one agent.
type AgentSnapshot struct {
	X      int    `yaml:"x"`
	Y      int    `yaml:"y"`
	Dir    string `yaml:"dir"`
	Status string `yaml:"status"`
	Colour string `yaml:"colour,omitempty"`
}

// Snapshot captures the game state for determinism testing and the headless
// simulator.
type Snapshot struct {
	Frame          uint64          `yaml:"frame"`
	Variant        string          `yaml:"variant"`
	Maze           string          `yaml:"maze"`
	MazeIndex      int             `yaml:"maze_index"` // 1-indexed
	Gate           string          `yaml:"gate"`
	Score          int             `yaml:"score"`
	HighScore      int             `yaml:"high_score"`
	Games          int             `yaml:"games"`
	MazesCleared   int             `yaml:"mazes_cleared"`
	ActivePickups  int             `yaml:"active_pickups"`
	VulnerableLeft int             `yaml:"vulnerable_left"`
	Player         AgentSnapshot   `yaml:"player"`
	Pursuers       []AgentSnapshot `yaml:"pursuers"`
	State          GameStateType   `yaml:"state"`
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	s := g.state
	if s == nil {
		return Snapshot{Variant: g.id}
	}

	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.paused:
		state = StatePaused
	case s.Player.Dying():
		state = StateDying
	case s.Completed:
		state = StateCompleted
	}

	pursuers := make([]AgentSnapshot, len(s.Pursuers))
	for i, u := range s.Pursuers {
		pursuers[i] = AgentSnapshot{
			X:      u.Pos.X,
			Y:      u.Pos.Y,
			Dir:    u.Dir.String(),
			Status: u.Status.String(),
			Colour: u.Tint().String(),
		}
	}

	return Snapshot{
		Frame:          s.Frame,
		Variant:        g.id,
		Maze:           s.Grid.Name(),
		MazeIndex:      s.MazeIndex + 1,
		Gate:           s.Grid.Gate().String(),
		Score:          s.Score,
		HighScore:      s.HighScore,
		Games:          s.Games,
		MazesCleared:   s.MazesCleared,
		ActivePickups:  s.ActivePickups(),
		VulnerableLeft: s.VulnerableTimer,
		Player: AgentSnapshot{
			X:      s.Player.Pos.X,
			Y:      s.Player.Pos.Y,
			Dir:    s.Player.Last.String(),
			Status: s.Player.Phase.String(),
		},
		Pursuers: pursuers,
		State:    state,
	}
}
