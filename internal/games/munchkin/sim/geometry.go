// Package sim is the deterministic simulation core of Munchkin: the maze wall
// model, grid-constrained motion of the player, pursuers and pickups, their
// decision policies, and collision scoring.
//
// The package performs no I/O. Rendering, audio and input are reached through
// the narrow interfaces in present.go, and a whole frame is advanced by a
// single call to State.Tick.
package sim

// Grid dimensions in cells.
const (
	Cols      = 9
	Rows      = 7
	CenterCol = 4
	CenterRow = 4
	TunnelRow = 4
)

// Position is a pixel coordinate in the 256x192 play field.
type Position struct {
	X, Y int
}

// Wrap describes a screen-wide horizontal wrap: an x below Min snaps to Max
// and an x above Max snaps to Min.
type Wrap struct {
	Min, Max int
}

// Apply returns x after wrapping.
func (w Wrap) Apply(x int) int {
	if x < w.Min {
		return w.Max
	}
	if x > w.Max {
		return w.Min
	}
	return x
}

// Geometry holds the pixel calibration of the maze.
type Geometry struct {
	OffsetX      int // left edge of the maze
	OffsetY      int // top edge of the maze
	HoriPitch    int // cell width
	VertPitch    int // cell height
	AgentOffsetX int // sprite anchor inside a cell
	AgentOffsetY int
	PlayerWrap   Wrap
	AgentWrap    Wrap // pursuers and pickups
}

// DefaultGeometry returns the calibration of the original 256x192 screen.
func DefaultGeometry() Geometry {
	return Geometry{
		OffsetX:      16,
		OffsetY:      32,
		HoriPitch:    24,
		VertPitch:    16,
		AgentOffsetX: 12,
		AgentOffsetY: 8,
		PlayerWrap:   Wrap{Min: 4, Max: 252},
		AgentWrap:    Wrap{Min: 8, Max: 242},
	}
}

// BaseX is the x of the center of cell column 0.
func (g Geometry) BaseX() int { return g.OffsetX + g.AgentOffsetX }

// BaseY is the y of the center of cell row 0.
func (g Geometry) BaseY() int { return g.OffsetY + g.AgentOffsetY }

// CellOf returns the cell containing p. Division truncates toward zero, so
// positions left of column 0 inside the tunnel report column 0 until they
// reach a full pitch beyond it.
func (g Geometry) CellOf(p Position) (cx, cy int) {
	return (p.X - g.BaseX()) / g.HoriPitch, (p.Y - g.BaseY()) / g.VertPitch
}

// CellCenter returns the pixel position of the center of cell (cx, cy).
func (g Geometry) CellCenter(cx, cy int) Position {
	return Position{X: g.BaseX() + cx*g.HoriPitch, Y: g.BaseY() + cy*g.VertPitch}
}

// Centered reports whether p sits exactly on the center of its cell.
func (g Geometry) Centered(p Position) bool {
	cx, cy := g.CellOf(p)
	return g.CellCenter(cx, cy) == p
}

// AlignedX reports whether p is on a column boundary.
func (g Geometry) AlignedX(p Position) bool {
	return (p.X-g.BaseX())%g.HoriPitch == 0
}

// AlignedY reports whether p is on a row boundary.
func (g Geometry) AlignedY(p Position) bool {
	return (p.Y-g.BaseY())%g.VertPitch == 0
}

// Aligned reports whether p is on a boundary of the axis dir moves along.
func (g Geometry) Aligned(p Position, dir Direction) bool {
	switch {
	case dir.Horizontal():
		return g.AlignedX(p)
	case dir.Vertical():
		return g.AlignedY(p)
	}
	return g.AlignedX(p) && g.AlignedY(p)
}
