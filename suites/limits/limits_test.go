package limits

import (
	"testing"

	types "github.com/gogpu/gputypes"

	"github.com/gogpu/glcts"
	"github.com/gogpu/glcts/gl/glwgpu"
)

func TestRequirementsMeetWebGPUDefaults(t *testing.T) {
	// Every requirement is at or below the WebGPU default limits; a
	// conforming default device must pass the whole table.
	def := types.DefaultLimits()
	for _, r := range Requirements() {
		got, ok := r.Check(def)
		if !ok {
			t.Errorf("%s: default limit %d below required minimum %d", r.Name, got, r.Min)
		}
	}
}

func TestRequirementCheckBoundary(t *testing.T) {
	r := Requirement{
		Name: "probe",
		Min:  100,
		Got:  func(l types.Limits) uint64 { return uint64(l.MaxTextureDimension2D) },
	}

	var l types.Limits
	l.MaxTextureDimension2D = 100
	if _, ok := r.Check(l); !ok {
		t.Error("limit equal to the minimum rejected")
	}
	l.MaxTextureDimension2D = 99
	if _, ok := r.Check(l); ok {
		t.Error("limit below the minimum accepted")
	}
}

func TestRenderTargetFormatsRenderable(t *testing.T) {
	// Every format the render cases allocate must be backed by a
	// device format, or a device-backed run could not host them.
	for _, f := range RenderTargetFormats() {
		if !glwgpu.Renderable(f) {
			t.Errorf("render target format %s not renderable on the device path", f)
		}
	}
}

func TestRenderableFormatsCasePasses(t *testing.T) {
	// The format mapping is static, so the case needs no device and
	// no GL context.
	s := glcts.New("limits")
	s.Root().Add(newFormatsCase())

	report, err := s.Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !report.OK() || report.Passed != 1 {
		t.Fatalf("formats case did not pass:\n%s", report)
	}
}

func TestRequirementNamesUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, r := range Requirements() {
		if seen[r.Name] {
			t.Errorf("duplicate requirement name %q", r.Name)
		}
		seen[r.Name] = true
	}
}
