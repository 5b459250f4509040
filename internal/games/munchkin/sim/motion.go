package sim

// Step is the outcome of a guarded move.
type Step struct {
	Pos   Position
	Moved bool
}

// Motion moves agents across a maze grid.
type Motion struct {
	Geo  Geometry
	Grid *MazeGrid
}

// TryMove moves p by speed pixels in dir unless a wall blocks it. Movement
// toward a closed side is allowed only while the agent is still short of the
// cell center on that axis. Vertical moves are refused on the tunnel ends.
func (m Motion) TryMove(p Position, dir Direction, speed int, wrap Wrap) Step {
	if m.blocked(p, dir, speed) {
		return Step{Pos: p}
	}
	next := m.Advance(p, dir, speed, wrap)
	return Step{Pos: next, Moved: true}
}

func (m Motion) blocked(p Position, dir Direction, speed int) bool {
	cx, cy := m.Geo.CellOf(p)
	center := m.Geo.CellCenter(cx, cy)
	open := m.Grid.IsOpen(cx, cy, dir)

	switch dir {
	case Left:
		return !open && p.X-speed < center.X
	case Right:
		return !open && p.X+speed > center.X
	case Up:
		if !open && p.Y-speed < center.Y {
			return true
		}
		return m.onTunnelEnd(cx, cy)
	case Down:
		if !open && p.Y+speed > center.Y {
			return true
		}
		return m.onTunnelEnd(cx, cy)
	}
	return true
}

func (m Motion) onTunnelEnd(cx, cy int) bool {
	return cy == TunnelRow && (cx < 0 || cx >= Cols)
}

// Advance displaces p by speed pixels in dir without consulting walls and
// applies the horizontal wrap.
func (m Motion) Advance(p Position, dir Direction, speed int, wrap Wrap) Position {
	dx, dy := dir.Delta()
	p.X += dx * speed
	p.Y += dy * speed
	if dir.Horizontal() {
		p.X = wrap.Apply(p.X)
	}
	return p
}
