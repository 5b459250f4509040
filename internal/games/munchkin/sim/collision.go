package sim

import "github.com/vovakirdan/tui-munchkin/internal/core"

// Hitboxes are inset from the 8x8 sprite cells so grazing contacts do not
// count.

// PlayerBodyBox is the player box tested against pursuers.
func PlayerBodyBox(p Position) core.Rect { return core.NewRect(p.X+2, p.Y+2, 4, 4) }

// PursuerBox is the pursuer box tested against the player.
func PursuerBox(p Position) core.Rect { return core.NewRect(p.X, p.Y, 8, 8) }

// PlayerMouthBox is the smaller player box tested against pickups.
func PlayerMouthBox(p Position) core.Rect { return core.NewRect(p.X+2, p.Y+2, 2, 2) }

// PickupBox is the pickup box tested against the player.
func PickupBox(p Position) core.Rect { return core.NewRect(p.X+1, p.Y+2, 6, 5) }

func pickupClashBox(p Position) core.Rect  { return core.NewRect(p.X, p.Y-2, 6, 10) }
func pursuerClashBox(p Position) core.Rect { return core.NewRect(p.X-2, p.Y-2, 8, 10) }

// checkPursuerHits resolves player and pursuer contacts in index order. A
// Normal pursuer kills the player and ends the scan; a Vulnerable one is eaten.
func (s *State) checkPursuerHits() {
	if s.Player.Dying() {
		return
	}
	body := PlayerBodyBox(s.Player.Pos)
	for i := range s.Pursuers {
		u := &s.Pursuers[i]
		if !u.Status.Live() || !body.Intersects(PursuerBox(u.Pos)) {
			continue
		}
		if u.Status == Normal {
			s.Player.Kill()
			return
		}
		u.Status = Dead
		u.GulpDelay = s.cfg.GulpDelayTicks
		s.addScore(s.cfg.PursuerPoints)
		s.cue(CueEatPursuer)
	}
}

// checkPickupsEaten removes pickups under the player and detects maze
// completion.
func (s *State) checkPickupsEaten() {
	if s.Completed {
		return
	}
	if !s.Player.Dying() {
		mouth := PlayerMouthBox(s.Player.Pos)
		for i := range s.Pickups {
			k := &s.Pickups[i]
			if k.Status == Off || !mouth.Intersects(PickupBox(k.Pos)) {
				continue
			}
			if k.Status == Power {
				s.addScore(s.cfg.PowerPoints)
				s.cue(CueEatPowerPickup)
				s.frighten()
			} else {
				s.addScore(s.cfg.PickupPoints)
				s.cue(CueEatPickup)
			}
			k.Status = Off
		}
	}
	if s.ActivePickups() == 0 {
		s.Completed = true
		s.CompletionTicks = s.cfg.CompletionTicks
		s.MazesCleared++
		s.cue(CueMazeComplete)
	}
}

// frighten turns every live pursuer Vulnerable and restarts the shared
// countdown.
func (s *State) frighten() {
	for i := range s.Pursuers {
		u := &s.Pursuers[i]
		if u.Status.Live() {
			u.Status = Vulnerable
			s.VulnerableTimer = s.cfg.VulnerableTicks
		}
	}
}

// maskPickups tints pickups sitting on a live pursuer with that pursuer's
// colour so the two sprites do not clash.
func (s *State) maskPickups() {
	for i := range s.Pickups {
		k := &s.Pickups[i]
		if k.Status == Off {
			continue
		}
		box := pickupClashBox(k.Pos)
		tint := core.ColorDefault
		for j := range s.Pursuers {
			u := &s.Pursuers[j]
			if u.Status.Live() && box.Intersects(pursuerClashBox(u.Pos)) {
				tint = u.Tint()
				break
			}
		}
		k.mask(tint)
	}
}
