package registry

import (
	"testing"

	"github.com/vovakirdan/tui-whack/internal/core"
)

type stubGame struct{ id string }

func (g stubGame) ID() string                          { return g.id }
func (g stubGame) Title() string                       { return "Stub" }
func (g stubGame) Reset(core.RuntimeConfig)            {}
func (g stubGame) Resize(int, int)                     {}
func (g stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g stubGame) Render(*core.Screen)                 {}
func (g stubGame) State() core.GameState               { return core.GameState{} }

func TestRegisterCreate(t *testing.T) {
	Register(GameInfo{ID: "stub_b", Title: "B"}, func() Game { return stubGame{id: "stub_b"} })
	Register(GameInfo{ID: "stub_a", Title: "A"}, func() Game { return stubGame{id: "stub_a"} })

	if !Exists("stub_a") || Exists("missing") {
		t.Error("Exists() disagrees with registrations")
	}

	g, err := Create("stub_b")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "stub_b" {
		t.Errorf("Create() returned %q", g.ID())
	}

	if _, err := Create("missing"); err == nil {
		t.Error("Create() of an unknown id should fail")
	}

	var ids []string
	for _, info := range List() {
		ids = append(ids, info.ID)
	}
	for i := 1; i < len(ids); i++ {
		if ids[i-1] > ids[i] {
			t.Errorf("List() not sorted: %v", ids)
		}
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register(GameInfo{ID: "stub_dup"}, func() Game { return stubGame{} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register() should panic")
		}
	}()
	Register(GameInfo{ID: "stub_dup"}, func() Game { return stubGame{} })
}
