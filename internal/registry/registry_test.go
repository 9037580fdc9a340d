package registry

import (
	"testing"

	"github.com/vovakirdan/tui-minesweeper/internal/core"
)

type stubGame struct {
	id string
}

func (g *stubGame) ID() string { return g.id }
func (g *stubGame) Title() string { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig) {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen) {}
func (g *stubGame) State() core.GameState { return core.GameState{} }

type describedGame struct {
	stubGame
}

func (g *describedGame) Description() string { return "has a blurb" }

func TestRegisterAndCreate(t *testing.T) {
	Register("stub-a", func() Game { return &stubGame{id: "stub-a"} })

	if !Exists("stub-a") {
		t.Fatal("stub-a should be registered")
	}
	g, err := Create("stub-a")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.ID() != "stub-a" {
		t.Errorf("ID() = %q", g.ID())
	}

	if _, err := Create("nope"); err == nil {
		t.Error("Create of unknown game should fail")
	}
}

func TestRegisterDescription(t *testing.T) {
	Register("stub-b", func() Game { return &describedGame{stubGame{id: "stub-b"}} })

	info, ok := Info("stub-b")
	if !ok {
		t.Fatal("Info should find stub-b")
	}
	if info.Title != "Stub stub-b" || info.Description != "has a blurb" {
		t.Errorf("info = %+v", info)
	}

	found := false
	for _, gi := range List() {
		if gi.ID == "stub-b" {
			found = true
		}
	}
	if !found {
		t.Error("List should include stub-b")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub-c", func() Game { return &stubGame{id: "stub-c"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("stub-c", func() Game { return &stubGame{id: "stub-c"} })
}
