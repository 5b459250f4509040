package sim

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-munchkin/internal/core"
)

func TestPlacePickupsFixed(t *testing.T) {
	geo := DefaultGeometry()
	pickups := placePickups(12, geo, rand.New(rand.NewSource(1)))

	power := 0
	for i, k := range pickups {
		pl := fixedPlacements[i]
		if k.Pos != geo.CellCenter(pl.cx, pl.cy) {
			t.Errorf("pickup %d at %v, expected cell (%d, %d)", i, k.Pos, pl.cx, pl.cy)
		}
		if k.Dir != pl.dir || k.Status != pl.status {
			t.Errorf("pickup %d: dir %v status %v, expected %v %v", i, k.Dir, k.Status, pl.dir, pl.status)
		}
		if k.Speed != 1 || k.Tint != core.ColorWhite || k.Masked {
			t.Errorf("pickup %d: speed %d tint %v masked %v", i, k.Speed, k.Tint, k.Masked)
		}
		if k.Status == Power {
			power++
		}
	}
	if power != 4 {
		t.Errorf("power pickups = %d, expected 4", power)
	}
}

func TestPlacePickupsScatter(t *testing.T) {
	geo := DefaultGeometry()
	pickups := placePickups(MaxPickups, geo, rand.New(rand.NewSource(9)))

	for i := len(fixedPlacements); i < len(pickups); i++ {
		k := pickups[i]
		if !geo.Centered(k.Pos) {
			t.Errorf("pickup %d at %v is not on a cell center", i, k.Pos)
		}
		cx, cy := geo.CellOf(k.Pos)
		if cx < 0 || cx >= Cols-1 || cy < 0 || cy >= Rows-1 {
			t.Errorf("pickup %d in cell (%d, %d), outside the scatter range", i, cx, cy)
		}
		if cx == CenterCol && cy == CenterRow {
			t.Errorf("pickup %d placed in the center cell", i)
		}
		if _, near := centerApproaches[cell{cx, cy}]; near {
			t.Errorf("pickup %d placed next to the center in (%d, %d)", i, cx, cy)
		}
		if k.Status != Active || k.Dir != Right {
			t.Errorf("pickup %d: status %v dir %v, expected active right", i, k.Status, k.Dir)
		}
	}
}

func TestScatterAvoidsCenter(t *testing.T) {
	geo := DefaultGeometry()
	for seed := int64(1); seed <= 200; seed++ {
		pickups := placePickups(20, geo, rand.New(rand.NewSource(seed)))
		for i := len(fixedPlacements); i < len(pickups); i++ {
			cx, cy := geo.CellOf(pickups[i].Pos)
			if cx == CenterCol && cy == CenterRow {
				t.Fatalf("seed %d: pickup %d placed in the center cell", seed, i)
			}
			if _, near := centerApproaches[cell{cx, cy}]; near {
				t.Fatalf("seed %d: pickup %d placed in (%d, %d) next to the center", seed, i, cx, cy)
			}
		}
	}
}

func TestPickupAvoidsCenter(t *testing.T) {
	geo := DefaultGeometry()
	grid := mustGrid(t, 0)

	tests := []struct {
		name   string
		cx, cy int
		dir    Direction
		gate   Direction
	}{
		{"left neighbour", 3, 4, Right, Left},
		{"upper neighbour", 4, 3, Down, Up},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			grid.SetGate(tc.gate)
			for seed := int64(0); seed < 50; seed++ {
				k := Pickup{Pos: geo.CellCenter(tc.cx, tc.cy), Dir: tc.dir}
				k.steer(geo, grid, rand.New(rand.NewSource(seed)))
				if k.Dir == tc.dir {
					t.Fatalf("seed %d: pickup headed into the center", seed)
				}
			}
		})
	}
}

func TestPickupMask(t *testing.T) {
	k := Pickup{Tint: core.ColorWhite}

	k.mask(core.ColorGreen)
	if !k.Masked || k.Tint != core.ColorGreen {
		t.Errorf("mask(green): masked %v tint %v", k.Masked, k.Tint)
	}

	k.mask(core.ColorDefault)
	if k.Masked || k.Tint != core.ColorWhite {
		t.Errorf("mask(default): masked %v tint %v", k.Masked, k.Tint)
	}
}
