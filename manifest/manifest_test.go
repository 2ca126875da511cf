package manifest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/glcts/compare"
)

const sampleManifest = `
provider: soft
include:
  - gles3.negative
  - gles3.render.clear
exclude:
  - gles3.negative.texture
tolerances:
  - prefix: gles3.render
    rgba: [2, 2, 2, 2]
  - prefix: gles3.render.clear
    rgba: [0, 0, 0, 4]
`

func TestParseSample(t *testing.T) {
	m, warnings, err := Parse([]byte(sampleManifest))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("warnings = %v, want none", warnings)
	}
	if m.Provider != "soft" {
		t.Errorf("Provider = %q, want soft", m.Provider)
	}
	if len(m.Include) != 2 || len(m.Exclude) != 1 || len(m.Tolerances) != 2 {
		t.Errorf("parsed manifest = %+v", m)
	}
}

func TestParseEmptyDocument(t *testing.T) {
	m, _, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse(nil) error = %v", err)
	}
	if m.Provider != "" || len(m.Include) != 0 {
		t.Errorf("empty manifest = %+v, want zero value", m)
	}
}

func TestParseRejectsSchemaViolations(t *testing.T) {
	bad := []string{
		"provider: [not, a, string]",
		"include: not-a-list",
		"tolerances:\n  - prefix: x\n    rgba: [1, 2, 3]",
		"tolerances:\n  - prefix: x\n    rgba: [0, 0, 0, 300]",
	}
	for _, doc := range bad {
		if _, _, err := Parse([]byte(doc)); err == nil {
			t.Errorf("Parse(%q) succeeded, want validation error", doc)
		}
	}
}

func TestParseWarnsOnUnknownKeys(t *testing.T) {
	doc := "provider: soft\nfuture_option: 42\n"
	_, warnings, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse() error = %v (unknown keys must not be fatal)", err)
	}
	if len(warnings) != 1 || !strings.Contains(warnings[0], "future_option") {
		t.Errorf("warnings = %v, want one naming future_option", warnings)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	if err := os.WriteFile(path, []byte(sampleManifest), 0o644); err != nil {
		t.Fatal(err)
	}
	m, _, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if m.Provider != "soft" {
		t.Errorf("Provider = %q", m.Provider)
	}

	if _, _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() of a missing file succeeded")
	}
}

func TestFilterIncludeExclude(t *testing.T) {
	m, _, err := Parse([]byte(sampleManifest))
	if err != nil {
		t.Fatal(err)
	}
	f := m.Filter()

	tests := []struct {
		path string
		want bool
	}{
		{"gles3.negative.buffer.bind_invalid_target", true},
		{"gles3.negative.texture.image_negative_level", false}, // excluded wins
		{"gles3.render.clear.solid", true},
		{"gles3.render.draw.points", false}, // not included
		{"gles3.shaders.compile.minimal_compute", false},
	}
	for _, tt := range tests {
		if got := f(tt.path); got != tt.want {
			t.Errorf("filter(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestFilterEmptyIncludeRunsEverything(t *testing.T) {
	m, _, err := Parse([]byte("exclude: [gles3.slow]"))
	if err != nil {
		t.Fatal(err)
	}
	f := m.Filter()
	if !f("gles3.negative.buffer.x") {
		t.Error("empty include rejected an unexcluded case")
	}
	if f("gles3.slow.case") {
		t.Error("excluded case accepted")
	}
}

func TestFilterMatchesWholeComponents(t *testing.T) {
	m := &Manifest{Include: []string{"gles3.render"}}
	f := m.Filter()
	if !f("gles3.render.clear.solid") {
		t.Error("component child rejected")
	}
	if !f("gles3.render") {
		t.Error("exact prefix match rejected")
	}
	if f("gles3.renderer.case") {
		t.Error("prefix matched inside a path component")
	}
}

func TestToleranceLongestPrefixWins(t *testing.T) {
	m, _, err := Parse([]byte(sampleManifest))
	if err != nil {
		t.Fatal(err)
	}
	def := compare.Exact

	if got := m.Tolerance("gles3.render.clear.solid", def); got != (compare.Tolerance{0, 0, 0, 4}) {
		t.Errorf("clear tolerance = %v, want the longer-prefix override", got)
	}
	if got := m.Tolerance("gles3.render.draw.points", def); got != (compare.Tolerance{2, 2, 2, 2}) {
		t.Errorf("draw tolerance = %v, want the render override", got)
	}
	if got := m.Tolerance("gles3.negative.buffer.x", def); got != def {
		t.Errorf("unmatched tolerance = %v, want the default", got)
	}
}
