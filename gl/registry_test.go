package gl

import (
	"sort"
	"testing"
)

type stubProvider struct {
	name string
}

func (p stubProvider) Name() string { return p.name }

func (p stubProvider) NewContext(width, height int) (Context, error) {
	return nil, ErrProviderNotAvailable
}

func register(t *testing.T, name string) {
	t.Helper()
	Register(name, func() Provider { return stubProvider{name: name} })
	t.Cleanup(func() { Unregister(name) })
}

func TestRegisterGet(t *testing.T) {
	register(t, "stub")

	p := Get("stub")
	if p == nil {
		t.Fatal("Get returned nil for a registered provider")
	}
	if p.Name() != "stub" {
		t.Errorf("Name() = %q, want stub", p.Name())
	}
}

func TestGetUnknownReturnsNil(t *testing.T) {
	if p := Get("no-such-provider"); p != nil {
		t.Errorf("Get for an unknown name = %v, want nil", p)
	}
}

func TestUnregister(t *testing.T) {
	Register("temp", func() Provider { return stubProvider{name: "temp"} })
	Unregister("temp")
	if IsRegistered("temp") {
		t.Error("provider still registered after Unregister")
	}
}

func TestAvailableListsRegistered(t *testing.T) {
	register(t, "stub-a")
	register(t, "stub-b")

	names := Available()
	sort.Strings(names)
	var found int
	for _, n := range names {
		if n == "stub-a" || n == "stub-b" {
			found++
		}
	}
	if found != 2 {
		t.Errorf("Available() = %v, want it to include stub-a and stub-b", names)
	}
}

func TestDefaultPrefersPriorityOrder(t *testing.T) {
	register(t, "stub-fallback")
	register(t, "soft")
	register(t, "wgpu")

	p := Default()
	if p == nil {
		t.Fatal("Default() = nil with providers registered")
	}
	// "wgpu" outranks "soft"; the fallback name is not in the priority
	// list at all.
	if p.Name() != "wgpu" {
		t.Errorf("Default() = %q, want wgpu", p.Name())
	}
}

func TestDefaultFallsBackToAnyProvider(t *testing.T) {
	register(t, "stub-only")

	p := Default()
	if p == nil || p.Name() != "stub-only" {
		t.Errorf("Default() = %v, want the only registered provider", p)
	}
}
