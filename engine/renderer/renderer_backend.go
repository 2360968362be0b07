package renderer

import "errors"

// RendererBackendType identifies the GPU backend implementation used by the Renderer.
type RendererBackendType int

const (
	// BackendTypeWGPU selects the WebGPU-based rendering backend.
	BackendTypeWGPU RendererBackendType = iota
)

// PresentMode controls how rendered frames are presented to the display surface.
type PresentMode int

const (
	// PresentModeVSync waits for the next vertical blank before presenting,
	// capping frame rate to the monitor's refresh rate. Eliminates tearing.
	PresentModeVSync PresentMode = iota

	// PresentModeUncapped presents frames immediately without waiting for
	// vertical blank. May cause screen tearing but provides the lowest latency.
	PresentModeUncapped
)

// Surface acquisition errors, classified from the backend's raw errors so the
// frame loop can pick a recovery policy without string matching.
var (
	// ErrSurfaceLost indicates the surface was lost and must be reconfigured
	// before the next frame. The current frame should be skipped.
	ErrSurfaceLost = errors.New("surface lost")

	// ErrSurfaceOutdated indicates the surface no longer matches the window
	// (typically mid-resize). Reconfigure and skip the frame.
	ErrSurfaceOutdated = errors.New("surface outdated")

	// ErrSurfaceOutOfMemory indicates the device is out of memory.
	// Not recoverable; the application should terminate.
	ErrSurfaceOutOfMemory = errors.New("surface out of memory")
)

// RendererBackend is the top-level backend interface for the Renderer.
// It embeds the concrete backend interface for the selected GPU API.
type RendererBackend interface {
	wgpuRendererBackend
}
