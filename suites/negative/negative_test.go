package negative_test

import (
	"testing"

	"github.com/gogpu/glcts"
	"github.com/gogpu/glcts/gl/glsoft"
	"github.com/gogpu/glcts/suites/negative"
)

// The whole group must pass against the software reference context;
// every case exercises a documented error path.
func TestGroupPassesOnSoftwareContext(t *testing.T) {
	s := glcts.New("gles3", glcts.WithContext(glsoft.New(64, 64)))
	s.Root().Add(negative.New())

	report, err := s.Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !report.OK() {
		t.Fatalf("negative cases failed:\n%s", report)
	}
	if report.Executed == 0 {
		t.Fatal("no cases executed")
	}
	if report.Skipped != 0 {
		t.Fatalf("Skipped = %d, want 0; the software context supports every negative case", report.Skipped)
	}
}

func TestGroupShape(t *testing.T) {
	g := negative.New()
	if g.Name() != "negative" {
		t.Fatalf("Name() = %q, want %q", g.Name(), "negative")
	}
	want := map[string]bool{"buffer": false, "texture": false, "framebuffer": false, "draw": false}
	for _, child := range g.Children() {
		if _, ok := want[child.Name()]; ok {
			want[child.Name()] = true
		}
	}
	for name, seen := range want {
		if !seen {
			t.Errorf("missing child group %q", name)
		}
	}
}
