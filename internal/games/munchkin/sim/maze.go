package sim

import (
	"errors"
	"fmt"
)

// Wall characters used in layouts.
const (
	HorizontalWall = 'x'
	VerticalWall   = '|'
	OpenSide       = '-'
)

// ErrInvalidLayout is returned when a maze layout cannot be parsed.
var ErrInvalidLayout = errors.New("invalid maze layout")

// Layout is the textual description of a maze. Horizontal holds one string per
// boundary between cell rows (outer edges included), one character per column.
// Vertical holds one string per cell row, one character per boundary between
// columns.
type Layout struct {
	Name       string
	Horizontal [Rows + 1]string
	Vertical   [Rows]string
}

// DefaultLayouts returns the two mazes the game alternates between.
func DefaultLayouts() []Layout {
	return []Layout{
		{
			Name: "Maze 1",
			Horizontal: [Rows + 1]string{
				"xxxxxxxxx",
				"-x---x-x-",
				"----xx---",
				"--x---x--",
				"x---x---x",
				"x-------x",
				"-x--x-xx-",
				"xxxxxxxxx",
			},
			Vertical: [Rows]string{
				"|---|----|",
				"|--|-----|",
				"|||--|-|||",
				"|-|----|-|",
				"---||||---",
				"|-|----|-|",
				"|--|-|---|",
			},
		},
		{
			Name: "Maze 2",
			Horizontal: [Rows + 1]string{
				"xxxxxxxxx",
				"-xxx--x-x",
				"--x-x----",
				"-x---x---",
				"x-xxx-xxx",
				"xx---x--x",
				"-x---x-x-",
				"xxxxxxxxx",
			},
			Vertical: [Rows]string{
				"||---|---|",
				"|----|-|-|",
				"||-|-||-||",
				"|---||-|-|",
				"----|||---",
				"|--||--|-|",
				"|---|----|",
			},
		},
	}
}

// Validate checks the layout dimensions and characters. The top and bottom
// boundaries must be fully walled.
func (l Layout) Validate() error {
	for row, line := range l.Horizontal {
		if len(line) != Cols {
			return fmt.Errorf("%w: %s horizontal row %d has %d columns, want %d", ErrInvalidLayout, l.Name, row, len(line), Cols)
		}
		for col, ch := range line {
			if ch != HorizontalWall && ch != OpenSide {
				return fmt.Errorf("%w: %s horizontal row %d column %d: unexpected %q", ErrInvalidLayout, l.Name, row, col, ch)
			}
			if (row == 0 || row == Rows) && ch != HorizontalWall {
				return fmt.Errorf("%w: %s outer row %d is open at column %d", ErrInvalidLayout, l.Name, row, col)
			}
		}
	}
	for row, line := range l.Vertical {
		if len(line) != Cols+1 {
			return fmt.Errorf("%w: %s vertical row %d has %d boundaries, want %d", ErrInvalidLayout, l.Name, row, len(line), Cols+1)
		}
		for col, ch := range line {
			if ch != VerticalWall && ch != OpenSide {
				return fmt.Errorf("%w: %s vertical row %d column %d: unexpected %q", ErrInvalidLayout, l.Name, row, col, ch)
			}
		}
	}
	return nil
}

// MazeGrid is the wall topology of one maze plus the rotating center gate.
type MazeGrid struct {
	name       string
	horizontal [Rows + 1][Cols]bool // true = wall
	vertical   [Rows][Cols + 1]bool
	gate       Direction
}

// NewMazeGrid builds a grid from a layout and opens the gate downward.
func NewMazeGrid(l Layout) (*MazeGrid, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	g := &MazeGrid{name: l.Name}
	for row, line := range l.Horizontal {
		for col := 0; col < Cols; col++ {
			g.horizontal[row][col] = line[col] == HorizontalWall
		}
	}
	for row, line := range l.Vertical {
		for col := 0; col <= Cols; col++ {
			g.vertical[row][col] = line[col] == VerticalWall
		}
	}
	g.SetGate(Down)
	return g, nil
}

// Name returns the layout name.
func (g *MazeGrid) Name() string { return g.name }

// Gate returns the open side of the center cell.
func (g *MazeGrid) Gate() Direction { return g.gate }

// SetGate opens the given side of the center cell and closes the other three.
func (g *MazeGrid) SetGate(open Direction) {
	if open == None {
		open = Down
	}
	g.gate = open
	g.vertical[CenterRow][CenterCol] = open != Left
	g.vertical[CenterRow][CenterCol+1] = open != Right
	g.horizontal[CenterRow][CenterCol] = open != Up
	g.horizontal[CenterRow+1][CenterCol] = open != Down
}

// RotateGate turns the gate one step clockwise.
func (g *MazeGrid) RotateGate() {
	g.SetGate(g.gate.Clockwise())
}

// IsOpen reports whether the side of cell (cx, cy) facing dir is open.
// Lookups outside the grid are closed, except the horizontal ends of the
// tunnel row, which are open so agents can wrap around the screen.
func (g *MazeGrid) IsOpen(cx, cy int, dir Direction) bool {
	if cy < 0 || cy >= Rows {
		return false
	}
	switch dir {
	case Left, Right:
		col := cx
		if dir == Right {
			col++
		}
		if col < 0 || col > Cols {
			return cy == TunnelRow
		}
		return !g.vertical[cy][col]
	case Up, Down:
		if cx < 0 || cx >= Cols {
			return false
		}
		row := cy
		if dir == Down {
			row++
		}
		return !g.horizontal[row][cx]
	}
	return false
}

// OpenSides returns the open sides of cell (cx, cy).
func (g *MazeGrid) OpenSides(cx, cy int) Sides {
	return Sides{
		Left:  g.IsOpen(cx, cy, Left),
		Right: g.IsOpen(cx, cy, Right),
		Up:    g.IsOpen(cx, cy, Up),
		Down:  g.IsOpen(cx, cy, Down),
	}
}

// HorizontalWallAt reports whether the boundary above cell row `row` at column
// col is walled. Row Rows is the bottom edge.
func (g *MazeGrid) HorizontalWallAt(row, col int) bool {
	if row < 0 || row > Rows || col < 0 || col >= Cols {
		return false
	}
	return g.horizontal[row][col]
}

// VerticalWallAt reports whether the boundary left of cell column col in row
// `row` is walled. Column Cols is the right edge.
func (g *MazeGrid) VerticalWallAt(row, col int) bool {
	if row < 0 || row >= Rows || col < 0 || col > Cols {
		return false
	}
	return g.vertical[row][col]
}
