package registry

import (
	"strings"
	"testing"

	"github.com/vovakirdan/brickball/internal/core"
)

type stubGame struct {
	id    string
	reset int
}

func (g *stubGame) ID() string                           { return g.id }
func (g *stubGame) Title() string                        { return strings.ToUpper(g.id) }
func (g *stubGame) Reset(core.RuntimeConfig) error       { g.reset++; return nil }
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(core.Canvas)                   {}
func (g *stubGame) State() core.GameState                { return core.GameState{} }
func (g *stubGame) WorldSize() core.Vec2                 { return core.V(1, 1) }
func (g *stubGame) Close()                               {}

func TestRegisterListCreate(t *testing.T) {
	Register("zz_stub_b", func() Game { return &stubGame{id: "zz_stub_b"} })
	Register("zz_stub_a", func() Game { return &stubGame{id: "zz_stub_a"} })

	var ids []string
	for _, info := range List() {
		if strings.HasPrefix(info.ID, "zz_stub") {
			ids = append(ids, info.ID)
			if info.Title != strings.ToUpper(info.ID) {
				t.Errorf("Title for %s = %q", info.ID, info.Title)
			}
		}
	}
	if len(ids) != 2 || ids[0] != "zz_stub_a" || ids[1] != "zz_stub_b" {
		t.Errorf("List() stubs = %v, expected sorted [zz_stub_a zz_stub_b]", ids)
	}

	g, err := Create("zz_stub_a")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if g.ID() != "zz_stub_a" {
		t.Errorf("Create().ID() = %q", g.ID())
	}
	if !Exists("zz_stub_b") || Exists("zz_missing") {
		t.Error("Exists() mismatch")
	}
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("zz_missing")
	if err == nil || !strings.Contains(err.Error(), "unknown game") {
		t.Errorf("Create(missing) error = %v", err)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz_stub_dup", func() Game { return &stubGame{id: "zz_stub_dup"} })
	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("zz_stub_dup", func() Game { return &stubGame{id: "zz_stub_dup"} })
}
