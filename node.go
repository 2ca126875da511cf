package glcts

import "fmt"

// Node is one entry in the test tree: either a *Group or a *Case.
// The tree is built once, before any case executes, and is not
// mutated afterwards.
type Node interface {
	// Name returns the node's name, unique among its siblings.
	Name() string

	// Description returns a one-line human-readable description.
	Description() string
}

// Progress tells the runner whether an iterating case has more work.
type Progress int

const (
	// Stop ends the case after the current iteration.
	Stop Progress = iota

	// Continue schedules another iteration of the case.
	Continue
)

// Hooks is the lifecycle of a case. Iterate is required; Init and
// Deinit are optional. Init runs once before the first iteration and
// an error from it aborts the entire suite run (setup failures are
// fatal by design contract, unlike check failures). Deinit runs once
// after the last iteration, even when an iteration panicked.
type Hooks struct {
	Init    func(*C) error
	Iterate func(*C) Progress
	Deinit  func(*C)
}

// Case is a leaf of the test tree. Its body runs exactly once per
// suite run (possibly split across several iterations) and yields a
// terminal Result.
type Case struct {
	name  string
	desc  string
	hooks Hooks
}

// NewCase creates a single-iteration case from a plain body function.
func NewCase(name, desc string, run func(*C)) *Case {
	return NewCaseHooks(name, desc, Hooks{
		Iterate: func(c *C) Progress {
			run(c)
			return Stop
		},
	})
}

// NewCaseHooks creates a case with an explicit lifecycle. Use this for
// cases that need setup/teardown or that split long-running work across
// multiple iterations.
//
// NewCaseHooks panics if hooks.Iterate is nil; a case without a body is
// a construction error, which aborts the suite build.
func NewCaseHooks(name, desc string, hooks Hooks) *Case {
	if hooks.Iterate == nil {
		panic(fmt.Sprintf("glcts: case %q has no Iterate hook", name))
	}
	return &Case{name: name, desc: desc, hooks: hooks}
}

// Name returns the case name.
func (c *Case) Name() string { return c.name }

// Description returns the case description.
func (c *Case) Description() string { return c.desc }

// Group is an interior node of the test tree: an ordered collection of
// child nodes. A group has no pass/fail state of its own; the suite
// outcome is determined by its leaf cases.
type Group struct {
	name     string
	desc     string
	children []Node
	names    map[string]struct{}
}

// NewGroup creates an empty group.
func NewGroup(name, desc string) *Group {
	return &Group{name: name, desc: desc, names: make(map[string]struct{})}
}

// Name returns the group name.
func (g *Group) Name() string { return g.name }

// Description returns the group description.
func (g *Group) Description() string { return g.desc }

// Add appends child nodes in order. Insertion order is execution
// order: some cases rely on context state left by an earlier sibling,
// so the runner never reorders children.
//
// Add panics on a duplicate sibling name. Tree construction errors are
// programmer errors and abort the suite build.
func (g *Group) Add(nodes ...Node) *Group {
	for _, n := range nodes {
		if n == nil {
			panic(fmt.Sprintf("glcts: nil node added to group %q", g.name))
		}
		if _, dup := g.names[n.Name()]; dup {
			panic(fmt.Sprintf("glcts: duplicate node %q in group %q", n.Name(), g.name))
		}
		g.names[n.Name()] = struct{}{}
		g.children = append(g.children, n)
	}
	return g
}

// Children returns the child nodes in insertion order. The returned
// slice is owned by the group; callers must not modify it.
func (g *Group) Children() []Node { return g.children }

// Len returns the number of direct children.
func (g *Group) Len() int { return len(g.children) }
