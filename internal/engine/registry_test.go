package engine

import (
	"testing"
	"time"

	"github.com/vslusny/pitchcoach/internal/core"
)

type nopEngine struct {
	name string
}

func (e *nopEngine) Name() string                   { return e.name }
func (e *nopEngine) HandlePitch(ev core.PitchEvent) {}
func (e *nopEngine) Reset()                         {}

func TestRegisterAndCreate(t *testing.T) {
	Register("reg_test_game", "Registry Test", func(deps Deps) Engine {
		return &nopEngine{name: "reg_test_game"}
	})

	if !Exists("reg_test_game") {
		t.Error("Registered game should exist")
	}

	deps := Deps{Now: func() time.Time { return time.Unix(0, 0) }}
	eng, err := Create("reg_test_game", deps)
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if eng.Name() != "reg_test_game" {
		t.Errorf("Unexpected engine name %q", eng.Name())
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no_such_game", Deps{}); err == nil {
		t.Error("Create() should fail for an unregistered game")
	}
	if Exists("no_such_game") {
		t.Error("Exists() should be false for an unregistered game")
	}
}

func TestListSortedWithTitles(t *testing.T) {
	Register("reg_test_b", "B Game", func(deps Deps) Engine { return &nopEngine{name: "reg_test_b"} })
	Register("reg_test_a", "A Game", func(deps Deps) Engine { return &nopEngine{name: "reg_test_a"} })

	infos := List()
	var a, b int = -1, -1
	for i, info := range infos {
		switch info.ID {
		case "reg_test_a":
			a = i
			if info.Title != "A Game" {
				t.Errorf("Unexpected title %q", info.Title)
			}
		case "reg_test_b":
			b = i
		}
	}
	if a == -1 || b == -1 {
		t.Fatal("Registered games missing from List()")
	}
	if a > b {
		t.Error("List() should be sorted by ID")
	}
}

func TestDuplicateRegistrationPanics(t *testing.T) {
	Register("reg_test_dup", "Dup", func(deps Deps) Engine { return &nopEngine{name: "reg_test_dup"} })

	defer func() {
		if recover() == nil {
			t.Error("Registering a duplicate ID should panic")
		}
	}()
	Register("reg_test_dup", "Dup", func(deps Deps) Engine { return &nopEngine{name: "reg_test_dup"} })
}
