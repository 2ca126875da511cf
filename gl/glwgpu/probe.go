//go:build !nogpu

// Package glwgpu probes the WebGPU device the conformance suites use
// for implementation-limit checks. It does not implement gl.Context:
// the probe's job is capability discovery (adapter identity, device
// limits, supported texture formats), which the limits suites compare
// against the GLES3 minimums.
//
// The probe either brings up its own adapter/device via gogpu/wgpu or
// wraps a device the host already owns (see [FromProvider]); in the
// host case the probe never creates or releases GPU resources.
package glwgpu

import (
	"errors"
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/core"
	types "github.com/gogpu/gputypes"
)

// ErrNoDevice is returned when no WebGPU adapter can be acquired on
// this system. Limits suites skip with NotSupported on this error.
var ErrNoDevice = errors.New("glwgpu: no WebGPU device available")

// DeviceInfo identifies the probed GPU.
type DeviceInfo struct {
	// Name is the GPU name (e.g. "NVIDIA GeForce RTX 3080").
	Name string
	// Vendor is the GPU vendor.
	Vendor string
	// DeviceType is the type of GPU (discrete, integrated, etc.).
	DeviceType types.DeviceType
	// Backend is the graphics API in use (Vulkan, Metal, DX12).
	Backend types.Backend
	// Driver is the driver version string.
	Driver string
}

// String returns a human-readable description of the GPU.
func (d *DeviceInfo) String() string {
	return fmt.Sprintf("%s (%s, %s)", d.Name, d.DeviceType, d.Backend)
}

// Probe holds an acquired adapter/device pair and its queried limits.
type Probe struct {
	instance *core.Instance
	adapter  core.AdapterID
	device   core.DeviceID
	queue    core.QueueID

	info   *DeviceInfo
	limits types.Limits

	// hostProvider is set when the device belongs to the host
	// application rather than the probe.
	hostProvider gpucontext.DeviceProvider
}

// Open acquires an adapter and device and queries their limits.
// Callers own the returned probe and must Close it.
func Open() (*Probe, error) {
	p := &Probe{}

	desc := &gputypes.InstanceDescriptor{
		Backends: gputypes.BackendsPrimary,
		Flags:    0,
	}
	p.instance = core.NewInstance(desc)

	adapterID, err := p.instance.RequestAdapter(&gputypes.RequestAdapterOptions{
		PowerPreference: gputypes.PowerPreferenceHighPerformance,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoDevice, err)
	}
	p.adapter = adapterID

	if info, err := core.GetAdapterInfo(adapterID); err == nil {
		p.info = &DeviceInfo{
			Name:       info.Name,
			Vendor:     info.Vendor,
			DeviceType: info.DeviceType,
			Backend:    info.Backend,
			Driver:     info.Driver,
		}
	}

	deviceID, err := core.RequestDevice(adapterID, &types.DeviceDescriptor{
		Label:            "glcts-probe-device",
		RequiredFeatures: nil,
		RequiredLimits:   types.DefaultLimits(),
	})
	if err != nil {
		p.Close()
		return nil, fmt.Errorf("glwgpu: device creation failed: %w", err)
	}
	p.device = deviceID

	queueID, err := core.GetDeviceQueue(deviceID)
	if err != nil {
		p.Close()
		return nil, fmt.Errorf("glwgpu: queue retrieval failed: %w", err)
	}
	p.queue = queueID

	limits, err := core.GetDeviceLimits(deviceID)
	if err != nil {
		p.Close()
		return nil, fmt.Errorf("glwgpu: limits query failed: %w", err)
	}
	p.limits = limits

	return p, nil
}

// FromProvider wraps a device owned by the host application. The
// probe reports the host's device and default limits; it acquires
// nothing and Close releases nothing. The host keeps ownership, the
// same handoff rule the suites apply to the GL context itself.
func FromProvider(dp gpucontext.DeviceProvider) *Probe {
	return &Probe{
		hostProvider: dp,
		limits:       types.DefaultLimits(),
	}
}

// Host returns the host's device provider when the probe was built
// with FromProvider, else nil.
func (p *Probe) Host() gpucontext.DeviceProvider {
	return p.hostProvider
}

// Info returns the probed GPU identity, or nil when unknown.
func (p *Probe) Info() *DeviceInfo { return p.info }

// Limits returns the device limits the probe queried.
func (p *Probe) Limits() types.Limits { return p.limits }

// Close releases the acquired resources in reverse order of
// creation. Closing a host-provider probe has no effect.
func (p *Probe) Close() {
	if p.hostProvider != nil {
		return
	}
	if !p.device.IsZero() {
		_ = core.DeviceDrop(p.device)
		p.device = core.DeviceID{}
	}
	if !p.adapter.IsZero() {
		_ = core.AdapterDrop(p.adapter)
		p.adapter = core.AdapterID{}
	}
	p.instance = nil
	p.queue = core.QueueID{}
}
