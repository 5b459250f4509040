package sim

import (
	"testing"

	"github.com/vovakirdan/tui-munchkin/internal/core"
)

func TestPresentInitialFrame(t *testing.T) {
	s := New(DefaultConfig(), 1)
	r := newRecordingRenderer()
	s.Present(r)

	if len(r.draws) != 1+4+12 {
		t.Fatalf("draws = %d, expected 17", len(r.draws))
	}
	player := r.draws[0]
	if player.id.Kind != KindPlayer || player.frame != FramePlayerIdle || player.x != 124 || player.y != 88 {
		t.Errorf("player draw = %+v", player)
	}
	if r.tints[SpriteID{Kind: KindPlayer}] != core.ColorBrightCyan {
		t.Errorf("player tint = %v", r.tints[SpriteID{Kind: KindPlayer}])
	}

	power := 0
	for _, d := range r.draws {
		if d.frame == FramePowerPickup {
			power++
		}
	}
	if power != 4 {
		t.Errorf("power pickups drawn = %d, expected 4", power)
	}
}

func TestPresentDying(t *testing.T) {
	tests := []struct {
		stage         int
		playerHidden  bool
		pursuersShown bool
		frame         Frame
	}{
		{1, false, true, FramePlayerIdle},
		{2, false, true, FramePlayerGrinOpen},
		{3, false, false, FramePlayerGrinClosed},
		{8, false, false, FramePlayerDying5},
		{9, true, false, 0},
	}

	for _, tc := range tests {
		s := New(DefaultConfig(), 1)
		s.Player.Kill()
		s.Player.DyingStage = tc.stage
		r := newRecordingRenderer()
		s.Present(r)

		playerDrawn, pursuersDrawn := false, 0
		for _, d := range r.draws {
			switch d.id.Kind {
			case KindPlayer:
				playerDrawn = true
				if d.frame != tc.frame {
					t.Errorf("stage %d: frame %v, expected %v", tc.stage, d.frame, tc.frame)
				}
			case KindPursuer:
				pursuersDrawn++
			}
		}
		if playerDrawn == tc.playerHidden {
			t.Errorf("stage %d: player drawn = %v", tc.stage, playerDrawn)
		}
		if (pursuersDrawn > 0) != tc.pursuersShown {
			t.Errorf("stage %d: %d pursuers drawn", tc.stage, pursuersDrawn)
		}
	}
}

func TestPursuerFlashesNearEnd(t *testing.T) {
	s := New(DefaultConfig(), 1)
	u := &s.Pursuers[0]
	u.Status = Vulnerable

	tests := []struct {
		timer    int
		expected Frame
	}{
		{60, FramePursuer},
		{19, FramePursuerEyes},
		{16, FramePursuer},
		{1, FramePursuerEyes},
	}

	for _, tc := range tests {
		s.VulnerableTimer = tc.timer
		if got := s.pursuerFrame(u); got != tc.expected {
			t.Errorf("timer %d: frame %v, expected %v", tc.timer, got, tc.expected)
		}
	}
}

func TestMazeColour(t *testing.T) {
	s := New(DefaultConfig(), 1)
	if s.MazeColour() != core.ColorBlue {
		t.Errorf("MazeColour() = %v, expected blue", s.MazeColour())
	}
	s.Completed = true
	s.MazeFlash = true
	if s.MazeColour() != core.ColorMagenta {
		t.Errorf("flashing MazeColour() = %v, expected magenta", s.MazeColour())
	}
}

func TestGraphicsHaveGlyphs(t *testing.T) {
	for f := FramePlayerIdle; f <= FramePowerPickup; f++ {
		g := GraphicFor(f)
		if g.Glyph == 0 || g.Glyph == '?' || g.Name == "" {
			t.Errorf("frame %d has graphic %+v", f, g)
		}
	}
}
