package glcts

import (
	"log/slog"

	"github.com/gogpu/glcts/gl"
)

// Suite owns one conformance run: the root group, the context under
// test, the run configuration, and the aggregate counters produced by
// [Suite.Run]. There is deliberately no process-wide suite: several
// suites may be built and run in one process, which is how the harness
// tests itself.
type Suite struct {
	name   string
	root   *Group
	ctx    gl.Context
	log    *slog.Logger
	filter func(path string) bool
}

// New creates an empty suite. The root group carries the suite name;
// populate it via [Suite.Root] before calling [Suite.Run].
func New(name string, opts ...Option) *Suite {
	o := defaultSuiteOptions()
	for _, opt := range opts {
		opt(&o)
	}
	log := o.log
	if log == nil {
		log = Logger()
	}
	return &Suite{
		name:   name,
		root:   NewGroup(name, "conformance suite root"),
		ctx:    o.ctx,
		log:    log,
		filter: o.filter,
	}
}

// Name returns the suite name.
func (s *Suite) Name() string { return s.name }

// Root returns the root group of the test tree.
func (s *Suite) Root() *Group { return s.root }

// Context returns the graphics context under test, or nil.
func (s *Suite) Context() gl.Context { return s.ctx }
