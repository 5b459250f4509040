package sim

// PlayerPhase is the movement state of the player.
type PlayerPhase int

const (
	PhaseIdle   PlayerPhase = iota
	PhaseManual             // a direction key is driving the player
	PhaseCoast              // key released, finishing the move to the next boundary
	PhaseDying
)

func (p PlayerPhase) String() string {
	switch p {
	case PhaseManual:
		return "manual"
	case PhaseCoast:
		return "coast"
	case PhaseDying:
		return "dying"
	default:
		return "idle"
	}
}

// Directions is the set of direction keys held during one tick.
type Directions struct {
	Left, Right, Up, Down bool
}

// Player is the agent steered by the user.
type Player struct {
	Pos        Position
	Speed      int
	Auto       Direction // direction kept after the key is released
	Last       Direction // direction of the latest move, None when idle
	Phase      PlayerPhase
	DyingStage int

	animFrame int
}

// Dying reports whether the death animation is running.
func (p *Player) Dying() bool { return p.Phase == PhaseDying }

// Request resolves the held keys into at most one direction. Left and right
// are checked before up and down, opposite keys cancel, and keys
// perpendicular to a move still coasting to its boundary are ignored.
func (p *Player) Request(in Directions) Direction {
	coastingVertically := p.Auto.Vertical()
	coastingHorizontally := p.Auto.Horizontal()

	switch {
	case in.Left && !in.Right && !coastingVertically:
		return Left
	case in.Right && !in.Left && !coastingVertically:
		return Right
	case in.Up && !in.Down && !coastingHorizontally:
		return Up
	case in.Down && !in.Up && !coastingHorizontally:
		return Down
	}
	return None
}

// Update moves the player one tick. dir is the resolved manual direction.
// It reports whether the player is in motion, which drives the move cue.
func (p *Player) Update(m Motion, dir Direction) bool {
	p.Last = dir

	if dir != None {
		p.Phase = PhaseManual
		step := m.TryMove(p.Pos, dir, p.Speed, m.Geo.PlayerWrap)
		if step.Moved {
			p.Pos = step.Pos
			p.Auto = dir
		}
		return true
	}

	if p.Auto == None {
		p.Phase = PhaseIdle
		return false
	}
	if m.Geo.Aligned(p.Pos, p.Auto) {
		p.Auto = None
		p.Phase = PhaseIdle
		return false
	}

	p.Pos = m.Advance(p.Pos, p.Auto, p.Speed, m.Geo.PlayerWrap)
	p.Last = p.Auto
	p.Phase = PhaseCoast
	return true
}

// Kill starts the death animation.
func (p *Player) Kill() {
	p.Phase = PhaseDying
	p.DyingStage = 1
	p.Auto = None
}

// animate advances the mouth animation: three closed frames out of six
// while moving.
func (p *Player) animate() {
	if p.Last == None {
		return
	}
	p.animFrame = (p.animFrame + 1) % 6
}

func (p *Player) mouthClosed() bool {
	return p.Last != None && p.animFrame < 3
}
