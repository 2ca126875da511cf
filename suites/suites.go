// Package suites is the registry of conformance suite packages. Each
// suite package registers a group factory from init(); hosts import
// github.com/gogpu/glcts/suites/std for the standard set and call
// Build to assemble the tree.
package suites

import (
	"sort"
	"sync"

	"github.com/gogpu/glcts"
)

// Factory builds one suite group.
type Factory func() *glcts.Group

var (
	registryMu sync.RWMutex
	factories  = make(map[string]Factory)
)

// Register registers a suite factory under a name. Called from init()
// functions in suite packages; a duplicate name replaces the earlier
// registration.
func Register(name string, f Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	factories[name] = f
}

// Names returns the registered suite names, sorted.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Build assembles every registered suite into the suite's root group,
// in name order. Name order (rather than init order) keeps the
// execution order independent of import order.
func Build(s *glcts.Suite) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		s.Root().Add(factories[name]())
	}
}
