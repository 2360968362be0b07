package camera

// CameraBuilderOption is a functional option for configuring an orbitCamera.
// Use the With* functions to create options.
type CameraBuilderOption func(c *orbitCamera)

// WithFov sets the field of view in radians.
//
// Parameters:
//   - fov: field of view in radians
//
// Returns:
//   - CameraBuilderOption: option function to apply
func WithFov(fov float32) CameraBuilderOption {
	return func(c *orbitCamera) {
		c.fov = fov
	}
}

// WithAspect sets the initial aspect ratio (width / height).
//
// Parameters:
//   - aspect: the aspect ratio
//
// Returns:
//   - CameraBuilderOption: option function to apply
func WithAspect(aspect float32) CameraBuilderOption {
	return func(c *orbitCamera) {
		if aspect > 0 {
			c.aspect = aspect
		}
	}
}

// WithNear sets the near clipping plane distance.
//
// Parameters:
//   - near: near plane distance
//
// Returns:
//   - CameraBuilderOption: option function to apply
func WithNear(near float32) CameraBuilderOption {
	return func(c *orbitCamera) {
		c.near = near
	}
}

// WithFar sets the far clipping plane distance.
//
// Parameters:
//   - far: far plane distance
//
// Returns:
//   - CameraBuilderOption: option function to apply
func WithFar(far float32) CameraBuilderOption {
	return func(c *orbitCamera) {
		c.far = far
	}
}

// WithDistance sets the initial orbit radius, clamped to the valid range.
//
// Parameters:
//   - distance: orbit radius
//
// Returns:
//   - CameraBuilderOption: option function to apply
func WithDistance(distance float32) CameraBuilderOption {
	return func(c *orbitCamera) {
		if distance < MinDistance {
			distance = MinDistance
		}
		if distance > MaxDistance {
			distance = MaxDistance
		}
		c.distance = distance
	}
}

// WithTarget sets the initial orbit target point.
//
// Parameters:
//   - x, y, z: target position
//
// Returns:
//   - CameraBuilderOption: option function to apply
func WithTarget(x, y, z float32) CameraBuilderOption {
	return func(c *orbitCamera) {
		c.target = [3]float32{x, y, z}
	}
}

// WithYaw sets the initial yaw angle in radians.
//
// Parameters:
//   - yaw: yaw angle in radians
//
// Returns:
//   - CameraBuilderOption: option function to apply
func WithYaw(yaw float32) CameraBuilderOption {
	return func(c *orbitCamera) {
		c.yaw = yaw
	}
}

// WithPitch sets the initial pitch angle in radians, clamped to the valid range.
//
// Parameters:
//   - pitch: pitch angle in radians
//
// Returns:
//   - CameraBuilderOption: option function to apply
func WithPitch(pitch float32) CameraBuilderOption {
	return func(c *orbitCamera) {
		if pitch < MinPitch {
			pitch = MinPitch
		}
		if pitch > MaxPitch {
			pitch = MaxPitch
		}
		c.pitch = pitch
	}
}
