package sim

// Direction is a movement direction on the grid.
type Direction int

const (
	None Direction = iota
	Left
	Right
	Up
	Down
)

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return "none"
	}
}

// Horizontal reports whether d is Left or Right.
func (d Direction) Horizontal() bool { return d == Left || d == Right }

// Vertical reports whether d is Up or Down.
func (d Direction) Vertical() bool { return d == Up || d == Down }

// Opposite returns the reverse of d.
func (d Direction) Opposite() Direction {
	switch d {
	case Left:
		return Right
	case Right:
		return Left
	case Up:
		return Down
	case Down:
		return Up
	default:
		return None
	}
}

// Perpendicular returns the two directions crossing d, the up or left one
// first.
func (d Direction) Perpendicular() (Direction, Direction) {
	if d.Horizontal() {
		return Up, Down
	}
	return Left, Right
}

// Delta returns the unit displacement of d.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	default:
		return 0, 0
	}
}

// Clockwise returns the next gate orientation: Down, Left, Up, Right, Down.
func (d Direction) Clockwise() Direction {
	switch d {
	case Down:
		return Left
	case Left:
		return Up
	case Up:
		return Right
	default:
		return Down
	}
}

// Sides records which sides of a cell are open.
type Sides struct {
	Left, Right, Up, Down bool
}

// Open reports whether the side facing dir is open.
func (s Sides) Open(dir Direction) bool {
	switch dir {
	case Left:
		return s.Left
	case Right:
		return s.Right
	case Up:
		return s.Up
	case Down:
		return s.Down
	default:
		return false
	}
}

// Close marks the side facing dir as closed.
func (s *Sides) Close(dir Direction) {
	switch dir {
	case Left:
		s.Left = false
	case Right:
		s.Right = false
	case Up:
		s.Up = false
	case Down:
		s.Down = false
	}
}

// Count returns the number of open sides.
func (s Sides) Count() int {
	n := 0
	for _, open := range []bool{s.Left, s.Right, s.Up, s.Down} {
		if open {
			n++
		}
	}
	return n
}
