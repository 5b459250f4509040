package sim

import "github.com/vovakirdan/tui-munchkin/internal/core"

// Cue identifies a sound effect.
type Cue int

const (
	CueEatPickup Cue = iota
	CueEatPursuer
	CueGulpPursuer
	CueEatPowerPickup
	CueDying
	CueDyingShort
	CueMove
	CueMazeComplete
)

func (c Cue) String() string {
	switch c {
	case CueEatPickup:
		return "eat_pickup"
	case CueEatPursuer:
		return "eat_pursuer"
	case CueGulpPursuer:
		return "gulp_pursuer"
	case CueEatPowerPickup:
		return "eat_power_pickup"
	case CueDying:
		return "dying"
	case CueDyingShort:
		return "dying_short"
	case CueMove:
		return "move"
	case CueMazeComplete:
		return "maze_complete"
	default:
		return "unknown"
	}
}

// AgentKind tells the three kinds of sprites apart.
type AgentKind int

const (
	KindPlayer AgentKind = iota
	KindPursuer
	KindPickup
)

// SpriteID names one on-screen agent.
type SpriteID struct {
	Kind  AgentKind
	Index int
}

// Frame is the picture an agent shows this tick.
type Frame int

const (
	FramePlayerIdle Frame = iota
	FramePlayerLeft
	FramePlayerRight
	FramePlayerClosed
	FramePlayerUp
	FramePlayerDown
	FramePlayerGrinClosed
	FramePlayerGrinOpen
	FramePlayerDying1
	FramePlayerDying2
	FramePlayerDying3
	FramePlayerDying4
	FramePlayerDying5
	FramePursuer
	FramePursuerEyes
	FramePickup
	FramePowerPickup
)

// Graphic describes how a frame is drawn on a character display.
type Graphic struct {
	Name  string
	Glyph rune
}

// GraphicFor maps a frame to its graphic.
func GraphicFor(f Frame) Graphic {
	switch f {
	case FramePlayerIdle:
		return Graphic{"player", 'O'}
	case FramePlayerLeft:
		return Graphic{"player-left", '>'}
	case FramePlayerRight:
		return Graphic{"player-right", '<'}
	case FramePlayerClosed:
		return Graphic{"player-closed", 'O'}
	case FramePlayerUp:
		return Graphic{"player-up", 'V'}
	case FramePlayerDown:
		return Graphic{"player-down", 'A'}
	case FramePlayerGrinClosed:
		return Graphic{"player-grin-closed", 'O'}
	case FramePlayerGrinOpen:
		return Graphic{"player-grin-open", 'U'}
	case FramePlayerDying1:
		return Graphic{"player-dying-1", 'o'}
	case FramePlayerDying2:
		return Graphic{"player-dying-2", '*'}
	case FramePlayerDying3:
		return Graphic{"player-dying-3", '+'}
	case FramePlayerDying4:
		return Graphic{"player-dying-4", '\''}
	case FramePlayerDying5:
		return Graphic{"player-dying-5", '.'}
	case FramePursuer:
		return Graphic{"pursuer", 'M'}
	case FramePursuerEyes:
		return Graphic{"pursuer-eyes", '"'}
	case FramePickup:
		return Graphic{"pickup", '•'}
	case FramePowerPickup:
		return Graphic{"power-pickup", '●'}
	default:
		return Graphic{"unknown", '?'}
	}
}

// Renderer draws agents. The core calls it once per tick per agent.
type Renderer interface {
	DrawAgent(id SpriteID, f Frame, x, y int)
	HideAgent(id SpriteID)
	SetAgentTint(id SpriteID, c core.Color)
}

// AudioCue plays sound effects without blocking.
type AudioCue interface {
	Play(c Cue)
}

// InputSource is polled once at the start of every tick.
type InputSource interface {
	PollDirections() Directions
	MenuKeyPressed() bool
}

// ScoreDisplay shows the score whenever it or the high score changes.
type ScoreDisplay interface {
	Show(score, highScore int)
}

var playerDyingFrames = map[int]Frame{
	2: FramePlayerGrinOpen,
	3: FramePlayerGrinClosed,
	4: FramePlayerDying1,
	5: FramePlayerDying2,
	6: FramePlayerDying3,
	7: FramePlayerDying4,
	8: FramePlayerDying5,
}

func (s *State) playerFrame() Frame {
	p := &s.Player
	if p.Dying() {
		if f, ok := playerDyingFrames[p.DyingStage]; ok {
			return f
		}
	}
	if s.Completed {
		if s.MazeFlash {
			return FramePlayerGrinOpen
		}
		return FramePlayerGrinClosed
	}
	if p.mouthClosed() {
		return FramePlayerClosed
	}
	switch p.Last {
	case Left:
		return FramePlayerLeft
	case Right:
		return FramePlayerRight
	case Up:
		return FramePlayerUp
	case Down:
		return FramePlayerDown
	default:
		return FramePlayerIdle
	}
}

// pursuerFrame flashes vulnerable pursuers near the end of the countdown and
// shows dead ones mostly as eyes.
func (s *State) pursuerFrame(u *Pursuer) Frame {
	switch u.Status {
	case Vulnerable:
		if s.VulnerableTimer > 0 && s.VulnerableTimer < s.cfg.VulnerableFlashTicks && s.VulnerableTimer%4 != 0 {
			return FramePursuerEyes
		}
	case Dead, Recharging:
		if s.Frame%16 > 2 {
			return FramePursuerEyes
		}
	}
	return FramePursuer
}

// Present hands every agent to the renderer.
func (s *State) Present(r Renderer) {
	player := SpriteID{Kind: KindPlayer}
	if s.Player.Dying() && s.Player.DyingStage > 8 {
		r.HideAgent(player)
	} else {
		r.SetAgentTint(player, core.ColorBrightCyan)
		r.DrawAgent(player, s.playerFrame(), s.Player.Pos.X, s.Player.Pos.Y)
	}

	pursuersHidden := s.Player.Dying() && s.Player.DyingStage >= 3
	for i := range s.Pursuers {
		u := &s.Pursuers[i]
		id := SpriteID{Kind: KindPursuer, Index: i}
		if pursuersHidden {
			r.HideAgent(id)
			continue
		}
		r.SetAgentTint(id, u.Tint())
		r.DrawAgent(id, s.pursuerFrame(u), u.Pos.X, u.Pos.Y)
	}

	for i := range s.Pickups {
		k := &s.Pickups[i]
		id := SpriteID{Kind: KindPickup, Index: i}
		if k.Status == Off {
			r.HideAgent(id)
			continue
		}
		frame := FramePickup
		if k.Status == Power {
			frame = FramePowerPickup
		}
		r.SetAgentTint(id, k.Tint)
		r.DrawAgent(id, frame, k.Pos.X, k.Pos.Y)
	}
}

// MazeColour is the colour the walls are drawn in.
func (s *State) MazeColour() core.Color {
	if !s.Completed {
		return core.ColorBlue
	}
	if s.MazeFlash {
		return core.ColorMagenta
	}
	return core.ColorYellow
}
