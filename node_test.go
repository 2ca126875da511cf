package glcts

import (
	"testing"
)

func TestGroupAddKeepsInsertionOrder(t *testing.T) {
	g := NewGroup("root", "")
	names := []string{"zeta", "alpha", "mid", "beta"}
	for _, n := range names {
		g.Add(NewCase(n, "", func(c *C) {}))
	}

	if g.Len() != len(names) {
		t.Fatalf("Len() = %d, want %d", g.Len(), len(names))
	}
	for i, child := range g.Children() {
		if child.Name() != names[i] {
			t.Errorf("child %d = %q, want %q", i, child.Name(), names[i])
		}
	}
}

func TestGroupAddDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("adding a duplicate sibling name did not panic")
		}
	}()
	g := NewGroup("root", "")
	g.Add(NewCase("dup", "", func(c *C) {}))
	g.Add(NewCase("dup", "", func(c *C) {}))
}

func TestGroupAddNilPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("adding a nil node did not panic")
		}
	}()
	NewGroup("root", "").Add(nil)
}

func TestGroupAddMixedChildren(t *testing.T) {
	g := NewGroup("root", "")
	sub := NewGroup("sub", "")
	sub.Add(NewCase("leaf", "", func(c *C) {}))
	g.Add(sub, NewCase("leaf", "", func(c *C) {}))

	// A group and a case may share a name across levels, and a group
	// name does not collide with a case name in a different group.
	if g.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", g.Len())
	}
}

func TestNewCaseHooksRequiresIterate(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewCaseHooks without Iterate did not panic")
		}
	}()
	NewCaseHooks("broken", "", Hooks{})
}

func TestNodeDescriptions(t *testing.T) {
	g := NewGroup("g", "a group")
	c := NewCase("c", "a case", func(*C) {})
	if g.Description() != "a group" {
		t.Errorf("group description = %q", g.Description())
	}
	if c.Description() != "a case" {
		t.Errorf("case description = %q", c.Description())
	}
}
