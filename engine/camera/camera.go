package camera

import (
	"math"
	"sync"

	"github.com/Carmen-Shannon/objview/common"
)

// Input sensitivity and clamp constants for the orbit camera.
const (
	// DragSensitivity converts cursor pixel deltas to radians while orbiting.
	DragSensitivity = 0.01

	// LineZoomSensitivity converts scroll-wheel line deltas to distance units.
	LineZoomSensitivity = 0.5

	// PixelZoomSensitivity converts trackpad pixel deltas to distance units.
	PixelZoomSensitivity = 0.01

	// MinPitch and MaxPitch bound the pitch angle in radians, keeping the
	// camera short of the poles so the view basis stays well defined.
	MinPitch = -1.5
	MaxPitch = 1.5

	// MinDistance and MaxDistance bound the orbit radius.
	MinDistance = 0.1
	MaxDistance = 100.0

	// DefaultDistance is the orbit radius before any mesh is fitted.
	DefaultDistance = 5.0

	// AutoFitScale multiplies the bounding box diagonal length to produce
	// the fitted orbit distance.
	AutoFitScale = 2.0
)

type orbitCamera struct {
	mu *sync.Mutex

	// yaw and pitch are orbit angles in radians; distance is the orbit
	// radius from target.
	yaw      float32
	pitch    float32
	distance float32
	target   [3]float32

	up [3]float32

	fov    float32
	aspect float32
	near   float32
	far    float32

	viewMatrix           [16]float32
	projectionMatrix     [16]float32
	viewProjectionMatrix [16]float32
}

// Camera is an orbit camera circling a target point. Position is derived
// from yaw/pitch/distance each time the matrices are recomputed; all
// mutating operations clamp their inputs to the documented ranges.
type Camera interface {
	// Orbit applies a cursor drag delta to the orbit angles.
	// Horizontal motion adjusts yaw, vertical motion adjusts pitch; pitch is
	// clamped to [MinPitch, MaxPitch].
	//
	// Parameters:
	//   - dx, dy: cursor delta in pixels since the last mouse move
	Orbit(dx, dy float32)

	// ZoomLines applies a scroll-wheel delta measured in lines.
	// Positive delta moves the camera closer. Distance is clamped to
	// [MinDistance, MaxDistance].
	//
	// Parameters:
	//   - delta: scroll delta in lines
	ZoomLines(delta float32)

	// ZoomPixels applies a precision-scroll delta measured in pixels
	// (trackpads). Positive delta moves the camera closer.
	//
	// Parameters:
	//   - delta: scroll delta in pixels
	ZoomPixels(delta float32)

	// AutoFit recenters the camera on the given axis-aligned bounding box
	// and sets the orbit distance to AutoFitScale times the diagonal length,
	// clamped to [MinDistance, MaxDistance]. Orbit angles are preserved.
	//
	// Parameters:
	//   - min, max: bounding box corners
	AutoFit(min, max [3]float32)

	// SetAspect sets the aspect ratio (width / height). Non-positive values
	// are ignored so zero-area resizes cannot corrupt the projection.
	//
	// Parameters:
	//   - aspect: the aspect ratio
	SetAspect(aspect float32)

	// SetTarget sets the orbit target point.
	//
	// Parameters:
	//   - x, y, z: target position
	SetTarget(x, y, z float32)

	// Position returns the derived camera position in world space.
	//
	// Returns:
	//   - x, y, z: camera position components
	Position() (x, y, z float32)

	// Target returns the orbit target point.
	//
	// Returns:
	//   - x, y, z: target position components
	Target() (x, y, z float32)

	// Yaw returns the yaw angle in radians.
	Yaw() float32

	// Pitch returns the pitch angle in radians.
	Pitch() float32

	// Distance returns the orbit radius.
	Distance() float32

	// ViewMatrix returns the current 4x4 view matrix as 16 floats (column-major).
	//
	// Returns:
	//   - [16]float32: the view matrix
	ViewMatrix() [16]float32

	// ProjectionMatrix returns the current 4x4 projection matrix as 16 floats (column-major).
	//
	// Returns:
	//   - [16]float32: the projection matrix
	ProjectionMatrix() [16]float32

	// ViewProjectionMatrix returns the combined view-projection matrix as 16 floats (column-major).
	//
	// Returns:
	//   - [16]float32: the combined view-projection matrix
	ViewProjectionMatrix() [16]float32

	// Uniform returns the camera state packed for GPU upload.
	//
	// Returns:
	//   - GPUCameraUniform: the shader-facing camera data
	Uniform() GPUCameraUniform
}

var _ Camera = &orbitCamera{}

// NewCamera creates a new orbit Camera with default perspective settings.
// Applies default values first, then each option in order.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the newly created camera
func NewCamera(options ...CameraBuilderOption) Camera {
	c := &orbitCamera{
		mu:       &sync.Mutex{},
		yaw:      0,
		pitch:    0,
		distance: DefaultDistance,
		target:   [3]float32{0, 0, 0},
		up:       [3]float32{0, 1, 0},
		fov:      45.0 * (math.Pi / 180.0), // radians
		aspect:   1.0,
		near:     0.1,
		far:      1000.0,
	}
	for _, option := range options {
		option(c)
	}
	c.updateMatrices()
	return c
}

func (c *orbitCamera) Orbit(dx, dy float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.yaw += dx * DragSensitivity
	c.pitch = common.Clamp(c.pitch+dy*DragSensitivity, MinPitch, MaxPitch)
	c.updateMatrices()
}

func (c *orbitCamera) ZoomLines(delta float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.distance = common.Clamp(c.distance-delta*LineZoomSensitivity, MinDistance, MaxDistance)
	c.updateMatrices()
}

func (c *orbitCamera) ZoomPixels(delta float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.distance = common.Clamp(c.distance-delta*PixelZoomSensitivity, MinDistance, MaxDistance)
	c.updateMatrices()
}

func (c *orbitCamera) AutoFit(min, max [3]float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.target = [3]float32{
		(min[0] + max[0]) * 0.5,
		(min[1] + max[1]) * 0.5,
		(min[2] + max[2]) * 0.5,
	}
	diag := common.Length3(max[0]-min[0], max[1]-min[1], max[2]-min[2])
	c.distance = common.Clamp(AutoFitScale*diag, MinDistance, MaxDistance)
	c.updateMatrices()
}

func (c *orbitCamera) SetAspect(aspect float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if aspect <= 0 {
		return
	}
	c.aspect = aspect
	c.updateMatrices()
}

func (c *orbitCamera) SetTarget(x, y, z float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.target = [3]float32{x, y, z}
	c.updateMatrices()
}

func (c *orbitCamera) Position() (x, y, z float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.position()
}

func (c *orbitCamera) Target() (x, y, z float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.target[0], c.target[1], c.target[2]
}

func (c *orbitCamera) Yaw() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.yaw
}

func (c *orbitCamera) Pitch() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pitch
}

func (c *orbitCamera) Distance() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.distance
}

func (c *orbitCamera) ViewMatrix() [16]float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewMatrix
}

func (c *orbitCamera) ProjectionMatrix() [16]float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.projectionMatrix
}

func (c *orbitCamera) ViewProjectionMatrix() [16]float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewProjectionMatrix
}

func (c *orbitCamera) Uniform() GPUCameraUniform {
	c.mu.Lock()
	defer c.mu.Unlock()
	px, py, pz := c.position()
	return GPUCameraUniform{
		ViewProjection: c.viewProjectionMatrix,
		View:           c.viewMatrix,
		CameraPos:      [3]float32{px, py, pz},
	}
}

// position derives the camera position from the orbit parameters.
// Caller must hold the mutex.
func (c *orbitCamera) position() (x, y, z float32) {
	sinYaw, cosYaw := math.Sincos(float64(c.yaw))
	sinPitch, cosPitch := math.Sincos(float64(c.pitch))
	x = c.target[0] + c.distance*float32(cosPitch*sinYaw)
	y = c.target[1] + c.distance*float32(sinPitch)
	z = c.target[2] + c.distance*float32(cosPitch*cosYaw)
	return x, y, z
}

// updateMatrices recalculates the view, projection, and view-projection
// matrices from the orbit parameters. Caller must hold the mutex.
func (c *orbitCamera) updateMatrices() {
	px, py, pz := c.position()

	common.LookAt(c.viewMatrix[:],
		px, py, pz,
		c.target[0], c.target[1], c.target[2],
		c.up[0], c.up[1], c.up[2],
	)

	common.Perspective(c.projectionMatrix[:],
		c.fov, c.aspect, c.near, c.far,
	)

	common.Mul4(c.viewProjectionMatrix[:], c.projectionMatrix[:], c.viewMatrix[:])
}
