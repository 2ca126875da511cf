//go:build nogpu

// Package glwgpu probes the WebGPU device the conformance suites use
// for implementation-limit checks. This build has GPU support compiled
// out: Open always reports that no device is available, and host
// probes answer with the default limits.
package glwgpu

import (
	"errors"
	"fmt"

	"github.com/gogpu/gpucontext"
	types "github.com/gogpu/gputypes"
)

// ErrNoDevice is returned when no WebGPU adapter can be acquired on
// this system. Limits suites skip with NotSupported on this error.
var ErrNoDevice = errors.New("glwgpu: no WebGPU device available")

// DeviceInfo identifies the probed GPU.
type DeviceInfo struct {
	Name       string
	Vendor     string
	DeviceType types.DeviceType
	Backend    types.Backend
	Driver     string
}

// String returns a human-readable description of the GPU.
func (d *DeviceInfo) String() string {
	return fmt.Sprintf("%s (%s, %s)", d.Name, d.DeviceType, d.Backend)
}

// Probe holds device limits. In this build it never owns GPU
// resources.
type Probe struct {
	limits       types.Limits
	hostProvider gpucontext.DeviceProvider
}

// Open reports ErrNoDevice: GPU support is compiled out.
func Open() (*Probe, error) {
	return nil, ErrNoDevice
}

// FromProvider wraps a device owned by the host application.
func FromProvider(dp gpucontext.DeviceProvider) *Probe {
	return &Probe{
		hostProvider: dp,
		limits:       types.DefaultLimits(),
	}
}

// Host returns the host's device provider when the probe was built
// with FromProvider, else nil.
func (p *Probe) Host() gpucontext.DeviceProvider { return p.hostProvider }

// Info returns nil: no adapter was probed.
func (p *Probe) Info() *DeviceInfo { return nil }

// Limits returns the device limits.
func (p *Probe) Limits() types.Limits { return p.limits }

// Close has nothing to release.
func (p *Probe) Close() {}
