package sim

import (
	"math/rand"

	"github.com/vovakirdan/tui-munchkin/internal/core"
)

// PursuerStatus is the state of a pursuer.
type PursuerStatus int

const (
	Normal PursuerStatus = iota
	Vulnerable
	Dead
	Recharging
)

func (s PursuerStatus) String() string {
	switch s {
	case Normal:
		return "normal"
	case Vulnerable:
		return "vulnerable"
	case Dead:
		return "dead"
	case Recharging:
		return "recharging"
	default:
		return "unknown"
	}
}

// Live reports whether the pursuer takes part in collisions.
func (s PursuerStatus) Live() bool { return s == Normal || s == Vulnerable }

// PursuerColours are assigned to pursuers by index.
var PursuerColours = []core.Color{core.ColorYellow, core.ColorGreen, core.ColorRed, core.ColorCyan}

// Pursuer is a maze monster.
type Pursuer struct {
	Pos           Position
	Dir           Direction
	Speed         int
	Status        PursuerStatus
	Colour        core.Color
	RechargeTimer int
	GulpDelay     int
}

// Tint returns the colour the pursuer is drawn with.
func (u *Pursuer) Tint() core.Color {
	switch u.Status {
	case Vulnerable:
		return core.ColorMagenta
	case Dead, Recharging:
		return core.ColorWhite
	default:
		return u.Colour
	}
}

// centerApproach tells an eaten pursuer next to the center cell how to get in.
// When the side facing the center is closed, the pursuer circles using the
// fallback list for its current direction: the first open entry wins and the
// last entry is taken when none is open.
type centerApproach struct {
	toward   Direction
	fallback map[Direction][]Direction
}

type cell struct{ x, y int }

var centerApproaches = map[cell]centerApproach{
	{CenterCol - 1, CenterRow}: {
		toward: Right,
		fallback: map[Direction][]Direction{
			Up:    {Up, Left, Down},
			Down:  {Down, Left, Up},
			Right: {Up, Down, Left},
		},
	},
	{CenterCol + 1, CenterRow}: {
		toward: Left,
		fallback: map[Direction][]Direction{
			Up:   {Up, Right, Down},
			Down: {Down, Right, Up},
			Left: {Up, Down, Right},
		},
	},
	{CenterCol, CenterRow - 1}: {
		toward: Down,
		fallback: map[Direction][]Direction{
			Left:  {Left, Up, Right},
			Right: {Right, Up, Left},
			Down:  {Left, Right, Up},
		},
	},
	{CenterCol, CenterRow + 1}: {
		toward: Up,
		fallback: map[Direction][]Direction{
			Left:  {Left, Down, Right},
			Right: {Right, Down, Left},
			Up:    {Left, Right, Down},
		},
	},
}

// seekCenter applies the approach table. It reports false when the pursuer is
// not next to the center cell.
func (u *Pursuer) seekCenter(cx, cy int, open Sides) bool {
	approach, ok := centerApproaches[cell{cx, cy}]
	if !ok {
		return false
	}
	if open.Open(approach.toward) {
		u.Dir = approach.toward
		return true
	}
	choices := approach.fallback[u.Dir]
	if len(choices) == 0 {
		return true
	}
	u.Dir = choices[len(choices)-1]
	for _, d := range choices {
		if open.Open(d) {
			u.Dir = d
			break
		}
	}
	return true
}

// steer runs the decision step. Decisions are only taken on cell centers.
func (u *Pursuer) steer(geo Geometry, grid *MazeGrid, rng *rand.Rand, rechargeTicks int) {
	if !geo.Centered(u.Pos) {
		return
	}
	cx, cy := geo.CellOf(u.Pos)
	open := grid.OpenSides(cx, cy)

	if u.Status == Dead {
		if cx == CenterCol && cy == CenterRow {
			u.Status = Recharging
			u.Dir = None
			u.RechargeTimer = rechargeTicks
			return
		}
		if u.seekCenter(cx, cy, open) {
			return
		}
	}

	if u.Status == Recharging {
		u.RechargeTimer--
		if u.RechargeTimer > 0 {
			return
		}
		u.Status = Normal
		u.RechargeTimer = 0
		u.Dir = Down
	}

	u.Dir = wander(u.Dir, open, rng, 5)
}

// wander is the random corridor policy shared by pursuers and pickups. At a
// junction the agent keeps going straight when rng.Intn(10) >= keepFrom,
// otherwise it turns to an open perpendicular side, picked evenly when both
// are open. Dead ends reverse.
func wander(dir Direction, open Sides, rng *rand.Rand, keepFrom int) Direction {
	if dir == None {
		return None
	}
	first, second := dir.Perpendicular()
	canTurn := open.Open(first) || open.Open(second)

	if open.Open(dir) && canTurn && rng.Intn(10) >= keepFrom {
		return dir
	}
	if canTurn {
		switch {
		case open.Open(first) && open.Open(second):
			if rng.Intn(2) == 0 {
				return first
			}
			return second
		case open.Open(first):
			return first
		default:
			return second
		}
	}
	if open.Open(dir) {
		return dir
	}
	return dir.Opposite()
}
