package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-munchkin/internal/core"
)

type stubGame struct {
	id    string
	title string
	high  int
}

func (g *stubGame) ID() string { return g.id }

func (g *stubGame) Title() string { return g.title }

func (g *stubGame) Reset(core.RuntimeConfig) {}

func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{State: g.State()} }

func (g *stubGame) Render(*core.Screen) {}

func (g *stubGame) State() core.GameState { return core.GameState{HighScore: g.high} }

func (g *stubGame) SetHighScore(score int) { g.high = score }

func TestRegisterAndCreate(t *testing.T) {
	Register("test_stub_b", func() Game { return &stubGame{id: "test_stub_b", title: "Stub B"} })
	Register("test_stub_a", func() Game { return &stubGame{id: "test_stub_a", title: "Stub A"} })

	if !Exists("test_stub_a") {
		t.Fatal("Exists(test_stub_a) = false, expected true")
	}
	if Exists("test_stub_missing") {
		t.Error("Exists(test_stub_missing) = true, expected false")
	}

	g, err := Create("test_stub_b")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if g.Title() != "Stub B" {
		t.Errorf("Title() = %q, expected %q", g.Title(), "Stub B")
	}

	if _, err := Create("test_stub_missing"); !errors.Is(err, ErrUnknownGame) {
		t.Errorf("Create(test_stub_missing) error = %v, expected ErrUnknownGame", err)
	}

	if title, ok := Title("test_stub_a"); !ok || title != "Stub A" {
		t.Errorf("Title(test_stub_a) = %q, %v, expected %q, true", title, ok, "Stub A")
	}
}

func TestListSorted(t *testing.T) {
	Register("test_list_z", func() Game { return &stubGame{id: "test_list_z", title: "Z"} })
	Register("test_list_y", func() Game { return &stubGame{id: "test_list_y", title: "Y"} })

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID >= list[i].ID {
			t.Errorf("List not sorted at %d: %q >= %q", i, list[i-1].ID, list[i].ID)
		}
	}

	found := false
	for _, info := range list {
		if info.ID == "test_list_y" {
			found = true
			if info.Title != "Y" {
				t.Errorf("Title = %q, expected %q", info.Title, "Y")
			}
		}
	}
	if !found {
		t.Error("test_list_y missing from List()")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("test_dup", func() Game { return &stubGame{id: "test_dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("test_dup", func() Game { return &stubGame{id: "test_dup"} })
}

func TestHighScoreAware(t *testing.T) {
	var g Game = &stubGame{id: "x"}
	hs, ok := g.(HighScoreAware)
	if !ok {
		t.Fatal("stubGame should implement HighScoreAware")
	}
	hs.SetHighScore(42)
	if g.State().HighScore != 42 {
		t.Errorf("HighScore = %d, expected 42", g.State().HighScore)
	}
}
