package sim

import (
	"testing"

	"github.com/vovakirdan/tui-munchkin/internal/core"
)

type drawCall struct {
	id    SpriteID
	frame Frame
	x, y  int
}

type recordingRenderer struct {
	draws  []drawCall
	hidden []SpriteID
	tints  map[SpriteID]core.Color
}

func newRecordingRenderer() *recordingRenderer {
	return &recordingRenderer{tints: make(map[SpriteID]core.Color)}
}

func (r *recordingRenderer) DrawAgent(id SpriteID, f Frame, x, y int) {
	r.draws = append(r.draws, drawCall{id, f, x, y})
}

func (r *recordingRenderer) HideAgent(id SpriteID) { r.hidden = append(r.hidden, id) }

func (r *recordingRenderer) SetAgentTint(id SpriteID, c core.Color) { r.tints[id] = c }

type scriptedInput struct {
	dirs Directions
	menu bool
}

func (i *scriptedInput) PollDirections() Directions { return i.dirs }
func (i *scriptedInput) MenuKeyPressed() bool       { return i.menu }

type cueLog []Cue

func (c *cueLog) Play(cue Cue) { *c = append(*c, cue) }

type scoreLog [][2]int

func (s *scoreLog) Show(score, high int) { *s = append(*s, [2]int{score, high}) }

func TestRunnerStep(t *testing.T) {
	state := New(DefaultConfig(), 1)
	state.HighScore = 5
	state.Frame = 3
	state.Player.Pos = state.Pickups[1].Pos

	input := &scriptedInput{}
	var cues cueLog
	var scores scoreLog
	renderer := newRecordingRenderer()
	r := Runner{State: state, Input: input, Audio: &cues, Score: &scores, Renderer: renderer}

	res := r.Step()
	if res.Aborted {
		t.Fatal("unexpected abort")
	}
	if !hasCue(cues, CueEatPickup) {
		t.Errorf("cues = %v, expected eat_pickup", cues)
	}
	if len(scores) != 1 || scores[0] != [2]int{1, 5} {
		t.Errorf("score updates = %v, expected [[1 5]]", scores)
	}
	// one player, four pursuers and eleven pickups drawn; the eaten pickup is hidden
	if len(renderer.draws) != 16 || len(renderer.hidden) != 1 {
		t.Errorf("draws %d hidden %d, expected 16 and 1", len(renderer.draws), len(renderer.hidden))
	}

	renderer.draws = renderer.draws[:0]
	r.Step()
	if len(scores) != 1 {
		t.Errorf("score shown again without a change: %v", scores)
	}

	input.menu = true
	res = r.Step()
	if !res.Aborted {
		t.Error("menu key should abort")
	}
	if len(renderer.draws) != 16 {
		t.Errorf("aborted step drew %d more agents", len(renderer.draws)-16)
	}
}

func TestRunnerNilCollaborators(t *testing.T) {
	r := Runner{State: New(DefaultConfig(), 1)}
	for i := 0; i < 100; i++ {
		r.Step()
	}
	if r.State.Frame != 101 {
		t.Errorf("Frame = %d, expected 101", r.State.Frame)
	}
}
