package sim

import (
	"math/rand"

	"github.com/vovakirdan/tui-munchkin/internal/core"
)

// PickupStatus is the state of a pickup.
type PickupStatus int

const (
	Off PickupStatus = iota
	Active
	Power
)

func (s PickupStatus) String() string {
	switch s {
	case Active:
		return "active"
	case Power:
		return "power"
	default:
		return "off"
	}
}

// Pickup is a wandering pill.
type Pickup struct {
	Pos    Position
	Dir    Direction
	Speed  int
	Status PickupStatus
	Masked bool // tinted to avoid a colour clash with a pursuer
	Tint   core.Color
}

// placement is a fixed starting cell for a pickup.
type placement struct {
	cx, cy int
	dir    Direction
	status PickupStatus
}

var fixedPlacements = []placement{
	{0, 0, Down, Power},
	{1, 0, Left, Active},
	{0, 1, Right, Active},
	{7, 0, Left, Active},
	{8, 0, Down, Power},
	{8, 1, Left, Active},
	{0, 5, Right, Active},
	{0, 6, Up, Power},
	{1, 6, Right, Active},
	{8, 5, Left, Active},
	{7, 6, Left, Active},
	{8, 6, Up, Power},
}

// placePickups lays out n pickups: the fixed placements first, then random
// cells for the rest.
func placePickups(n int, geo Geometry, rng *rand.Rand) []Pickup {
	pickups := make([]Pickup, n)
	for i := range pickups {
		var pl placement
		if i < len(fixedPlacements) {
			pl = fixedPlacements[i]
		} else {
			cx, cy := scatterCell(rng)
			pl = placement{cx: cx, cy: cy, dir: Right, status: Active}
		}
		pickups[i] = Pickup{
			Pos:    geo.CellCenter(pl.cx, pl.cy),
			Dir:    pl.dir,
			Speed:  1,
			Status: pl.status,
			Tint:   core.ColorWhite,
		}
	}
	return pickups
}

// scatterCell draws a random cell outside the center and the four cells next
// to it.
func scatterCell(rng *rand.Rand) (int, int) {
	for {
		cx, cy := rng.Intn(Cols-1), rng.Intn(Rows-1)
		if cx == CenterCol && cy == CenterRow {
			continue
		}
		if _, near := centerApproaches[cell{cx, cy}]; near {
			continue
		}
		return cx, cy
	}
}

// steer picks a new direction on cell centers. Pickups never enter the center
// cell.
func (k *Pickup) steer(geo Geometry, grid *MazeGrid, rng *rand.Rand) {
	if !geo.Centered(k.Pos) {
		return
	}
	cx, cy := geo.CellOf(k.Pos)
	open := grid.OpenSides(cx, cy)
	if approach, ok := centerApproaches[cell{cx, cy}]; ok {
		open.Close(approach.toward)
	}
	k.Dir = wander(k.Dir, open, rng, 3)
}

// mask tints the pickup with c, or restores white when c is ColorDefault.
func (k *Pickup) mask(c core.Color) {
	if c == core.ColorDefault {
		k.Masked = false
		k.Tint = core.ColorWhite
		return
	}
	k.Masked = true
	k.Tint = c
}
