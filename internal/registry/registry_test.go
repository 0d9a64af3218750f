package registry

import (
	"context"
	"testing"
)

type stubFrontend struct {
	id  string
	ran bool
}

func (s *stubFrontend) ID() string    { return s.id }
func (s *stubFrontend) Title() string { return "Stub " + s.id }

func (s *stubFrontend) Run(ctx context.Context, env Env) error {
	s.ran = true
	return ctx.Err()
}

func TestRegisterAndCreate(t *testing.T) {
	Register("stub-a", func() Frontend { return &stubFrontend{id: "stub-a"} })

	if !Exists("stub-a") {
		t.Fatal("stub-a should exist after Register")
	}

	f, err := Create("stub-a")
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if f.ID() != "stub-a" {
		t.Errorf("ID() = %q, expected stub-a", f.ID())
	}
	if err := f.Run(context.Background(), Env{}); err != nil {
		t.Errorf("Run() error: %v", err)
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no-such-frontend"); err == nil {
		t.Error("expected error for unknown frontend")
	}
	if Exists("no-such-frontend") {
		t.Error("unknown frontend should not exist")
	}
}

func TestListSorted(t *testing.T) {
	Register("stub-c", func() Frontend { return &stubFrontend{id: "stub-c"} })
	Register("stub-b", func() Frontend { return &stubFrontend{id: "stub-b"} })

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID >= list[i].ID {
			t.Fatalf("List() not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}

	found := false
	for _, info := range list {
		if info.ID == "stub-b" {
			found = true
			if info.Title != "Stub stub-b" {
				t.Errorf("Title = %q, expected %q", info.Title, "Stub stub-b")
			}
		}
	}
	if !found {
		t.Error("stub-b missing from List()")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub-dup", func() Frontend { return &stubFrontend{id: "stub-dup"} })

	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate Register")
		}
	}()
	Register("stub-dup", func() Frontend { return &stubFrontend{id: "stub-dup"} })
}
