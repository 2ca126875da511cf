package suites_test

import (
	"testing"

	"github.com/gogpu/glcts"
	"github.com/gogpu/glcts/suites"
)

func group(name string) suites.Factory {
	return func() *glcts.Group {
		return glcts.NewGroup(name, "")
	}
}

func TestNamesSorted(t *testing.T) {
	suites.Register("zeta", group("zeta"))
	suites.Register("alpha", group("alpha"))
	suites.Register("mid", group("mid"))

	names := suites.Names()
	var got []string
	for _, n := range names {
		if n == "zeta" || n == "alpha" || n == "mid" {
			got = append(got, n)
		}
	}
	want := []string{"alpha", "mid", "zeta"}
	if len(got) != len(want) {
		t.Fatalf("Names() = %v, want subsequence %v", names, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Names() order = %v, want %v", got, want)
		}
	}
}

func TestRegisterReplacesDuplicate(t *testing.T) {
	suites.Register("dup", group("first"))
	suites.Register("dup", group("second"))

	s := glcts.New("reg")
	suites.Build(s)
	for _, n := range s.Root().Children() {
		if n.Name() == "first" {
			t.Fatal("earlier registration survived a duplicate Register")
		}
	}
}

func TestBuildAddsGroupsInNameOrder(t *testing.T) {
	suites.Register("bravo", group("bravo"))
	suites.Register("delta", group("delta"))
	suites.Register("charlie", group("charlie"))

	s := glcts.New("reg")
	suites.Build(s)

	pos := map[string]int{}
	for i, n := range s.Root().Children() {
		pos[n.Name()] = i
	}
	for _, name := range []string{"bravo", "charlie", "delta"} {
		if _, ok := pos[name]; !ok {
			t.Fatalf("Build did not add group %q", name)
		}
	}
	if !(pos["bravo"] < pos["charlie"] && pos["charlie"] < pos["delta"]) {
		t.Fatalf("groups out of name order: %v", pos)
	}
}
