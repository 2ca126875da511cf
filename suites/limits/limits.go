// Package limits holds device-limit conformance cases. The cases probe
// the WebGPU device backing the implementation and check its reported
// limits against the GLES3 minimum requirements.
package limits

import (
	"errors"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	types "github.com/gogpu/gputypes"

	"github.com/gogpu/glcts"
	"github.com/gogpu/glcts/gl"
	"github.com/gogpu/glcts/gl/glwgpu"
	"github.com/gogpu/glcts/suites"
)

func init() {
	suites.Register("limits", New)
}

// New builds the device-limit case group.
func New() *glcts.Group {
	g := glcts.NewGroup("limits", "device limit cases")
	g.Add(newMinimumsCase(), newDeviceInfoCase(), newFormatsCase())
	return g
}

// RenderTargetFormats lists the sized internal formats the render
// cases allocate targets with. The device path must be able to back
// each of them.
func RenderTargetFormats() []gl.Enum {
	return []gl.Enum{gl.RGBA8}
}

// newFormatsCase checks the GLES-to-WebGPU format mapping for every
// internal format the render cases depend on. The mapping is static
// device metadata, so no probe is needed.
func newFormatsCase() *glcts.Case {
	return glcts.NewCase("renderable_formats",
		"render target formats must map to renderable device formats",
		func(c *glcts.C) {
			for _, f := range RenderTargetFormats() {
				if !glwgpu.Renderable(f) {
					c.Errorf("internal format %s has no renderable device format", f)
					continue
				}
				df, _ := glwgpu.TextureFormat(f)
				if df == gputypes.TextureFormatUndefined {
					c.Errorf("internal format %s maps to an undefined device format", f)
				}
				c.Logf("%s maps to device format %v", f, df)
			}
		})
}

// Requirement is one limit the device must meet. Min is the GLES3
// minimum for the capability, mapped onto the WebGPU limit that backs
// it.
type Requirement struct {
	Name string
	Min  uint64
	Got  func(types.Limits) uint64
}

// Requirements returns the limit checks the minimums case steps
// through, one per iteration.
func Requirements() []Requirement {
	return []Requirement{
		{
			Name: "max_texture_dimension_2d",
			Min:  2048,
			Got:  func(l types.Limits) uint64 { return uint64(l.MaxTextureDimension2D) },
		},
		{
			Name: "max_buffer_size",
			// Large enough for a 2048x2048 RGBA8 readback buffer.
			Min: 2048 * 2048 * 4,
			Got: func(l types.Limits) uint64 { return uint64(l.MaxBufferSize) },
		},
		{
			Name: "max_compute_workgroup_size_x",
			Min:  128,
			Got:  func(l types.Limits) uint64 { return uint64(l.MaxComputeWorkgroupSizeX) },
		},
		{
			Name: "max_compute_workgroup_size_y",
			Min:  128,
			Got:  func(l types.Limits) uint64 { return uint64(l.MaxComputeWorkgroupSizeY) },
		},
		{
			Name: "max_compute_workgroup_size_z",
			Min:  64,
			Got:  func(l types.Limits) uint64 { return uint64(l.MaxComputeWorkgroupSizeZ) },
		},
	}
}

// Check evaluates one requirement against the given limits.
func (r *Requirement) Check(l types.Limits) (got uint64, ok bool) {
	got = r.Got(l)
	return got, got >= r.Min
}

// newMinimumsCase probes the device once and then steps through the
// requirement table, one requirement per iteration. Probe failure is
// not a setup error: machines without a GPU skip, they do not abort
// the run.
func newMinimumsCase() *glcts.Case {
	var p *glwgpu.Probe
	var probeErr error
	reqs := Requirements()

	return glcts.NewCaseHooks("minimums",
		"reported device limits must meet the GLES3 minimums",
		glcts.Hooks{
			Init: func(c *glcts.C) error {
				p, probeErr = glwgpu.Open()
				return nil
			},
			Iterate: func(c *glcts.C) glcts.Progress {
				if probeErr != nil {
					if errors.Is(probeErr, glwgpu.ErrNoDevice) {
						c.Skipf("no WebGPU device: %v", probeErr)
					}
					c.Fatalf("device probe failed: %v", probeErr)
				}
				r := reqs[c.Iteration()]
				if got, ok := r.Check(p.Limits()); !ok {
					c.Errorf("%s = %d, want at least %d", r.Name, got, r.Min)
				} else {
					c.Logf("%s = %d (minimum %d)", r.Name, got, r.Min)
				}
				if c.Iteration()+1 < len(reqs) {
					return glcts.Continue
				}
				return glcts.Stop
			},
			Deinit: func(c *glcts.C) {
				if p != nil {
					p.Close()
					p = nil
				}
			},
		})
}

// HostCase builds a minimums check against a device the host
// application already owns. It is not registered with the suite
// registry; embedding hosts add it to their tree explicitly, keeping
// device ownership on their side.
func HostCase(dp gpucontext.DeviceProvider) *glcts.Case {
	reqs := Requirements()
	p := glwgpu.FromProvider(dp)

	return glcts.NewCaseHooks("host_minimums",
		"limits of the host-owned device must meet the GLES3 minimums",
		glcts.Hooks{
			Iterate: func(c *glcts.C) glcts.Progress {
				r := reqs[c.Iteration()]
				if got, ok := r.Check(p.Limits()); !ok {
					c.Errorf("%s = %d, want at least %d", r.Name, got, r.Min)
				}
				if c.Iteration()+1 < len(reqs) {
					return glcts.Continue
				}
				return glcts.Stop
			},
		})
}

// newDeviceInfoCase logs the probed adapter identity. It exists so a
// conformance log always records which GPU and backend produced it.
func newDeviceInfoCase() *glcts.Case {
	var p *glwgpu.Probe
	var probeErr error

	return glcts.NewCaseHooks("device_info",
		"the adapter must identify itself",
		glcts.Hooks{
			Init: func(c *glcts.C) error {
				p, probeErr = glwgpu.Open()
				return nil
			},
			Iterate: func(c *glcts.C) glcts.Progress {
				if probeErr != nil {
					if errors.Is(probeErr, glwgpu.ErrNoDevice) {
						c.Skipf("no WebGPU device: %v", probeErr)
					}
					c.Fatalf("device probe failed: %v", probeErr)
				}
				info := p.Info()
				if info == nil {
					c.Skipf("adapter identity not reported")
				}
				if info.Name == "" {
					c.Errorf("adapter reported an empty name")
				}
				c.Logf("device: %s, driver %q", info, info.Driver)
				return glcts.Stop
			},
			Deinit: func(c *glcts.C) {
				if p != nil {
					p.Close()
					p = nil
				}
			},
		})
}
