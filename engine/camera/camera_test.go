package camera

import (
	"math"
	"testing"
	"unsafe"

	"github.com/Carmen-Shannon/objview/common"
)

const epsilon = 1e-4

func approxEqual(a, b float32) bool {
	return math.Abs(float64(a-b)) < epsilon
}

func TestDefaults(t *testing.T) {
	c := NewCamera()
	if !approxEqual(c.Distance(), DefaultDistance) {
		t.Errorf("default distance = %v, want %v", c.Distance(), float32(DefaultDistance))
	}
	if c.Yaw() != 0 || c.Pitch() != 0 {
		t.Errorf("default angles = (%v, %v), want (0, 0)", c.Yaw(), c.Pitch())
	}
	// Yaw 0, pitch 0 places the camera on the +Z axis looking at the origin.
	x, y, z := c.Position()
	if !approxEqual(x, 0) || !approxEqual(y, 0) || !approxEqual(z, DefaultDistance) {
		t.Errorf("default position = (%v, %v, %v), want (0, 0, %v)", x, y, z, float32(DefaultDistance))
	}
}

func TestOrbitAdjustsAngles(t *testing.T) {
	c := NewCamera()
	c.Orbit(100, 50)
	if !approxEqual(c.Yaw(), 100*DragSensitivity) {
		t.Errorf("yaw = %v, want %v", c.Yaw(), float32(100*DragSensitivity))
	}
	if !approxEqual(c.Pitch(), 50*DragSensitivity) {
		t.Errorf("pitch = %v, want %v", c.Pitch(), float32(50*DragSensitivity))
	}
}

func TestPitchClamped(t *testing.T) {
	c := NewCamera()
	c.Orbit(0, 1e6)
	if c.Pitch() != MaxPitch {
		t.Errorf("pitch = %v, want clamp at %v", c.Pitch(), float32(MaxPitch))
	}
	c.Orbit(0, -1e7)
	if c.Pitch() != MinPitch {
		t.Errorf("pitch = %v, want clamp at %v", c.Pitch(), float32(MinPitch))
	}
	// Yaw is unbounded.
	c.Orbit(1e6, 0)
	if c.Yaw() <= MaxPitch {
		t.Errorf("yaw = %v, expected it to exceed the pitch clamp range", c.Yaw())
	}
}

func TestZoomLines(t *testing.T) {
	c := NewCamera()
	c.ZoomLines(1)
	want := float32(DefaultDistance - LineZoomSensitivity)
	if !approxEqual(c.Distance(), want) {
		t.Errorf("distance after zoom in = %v, want %v", c.Distance(), want)
	}
	c.ZoomLines(-2)
	want += 2 * LineZoomSensitivity
	if !approxEqual(c.Distance(), want) {
		t.Errorf("distance after zoom out = %v, want %v", c.Distance(), want)
	}
}

func TestZoomPixels(t *testing.T) {
	c := NewCamera()
	c.ZoomPixels(100)
	want := float32(DefaultDistance - 100*PixelZoomSensitivity)
	if !approxEqual(c.Distance(), want) {
		t.Errorf("distance = %v, want %v", c.Distance(), want)
	}
}

func TestDistanceClamped(t *testing.T) {
	c := NewCamera()
	c.ZoomLines(1e6)
	if c.Distance() != MinDistance {
		t.Errorf("distance = %v, want clamp at %v", c.Distance(), float32(MinDistance))
	}
	c.ZoomLines(-1e7)
	if c.Distance() != MaxDistance {
		t.Errorf("distance = %v, want clamp at %v", c.Distance(), float32(MaxDistance))
	}
}

func TestAutoFitUnitCube(t *testing.T) {
	c := NewCamera()
	c.Orbit(30, 20) // angles must survive the fit
	yaw, pitch := c.Yaw(), c.Pitch()

	c.AutoFit([3]float32{0, 0, 0}, [3]float32{1, 1, 1})

	tx, ty, tz := c.Target()
	if !approxEqual(tx, 0.5) || !approxEqual(ty, 0.5) || !approxEqual(tz, 0.5) {
		t.Errorf("target = (%v, %v, %v), want cube center (0.5, 0.5, 0.5)", tx, ty, tz)
	}
	want := float32(AutoFitScale * math.Sqrt(3))
	if !approxEqual(c.Distance(), want) {
		t.Errorf("distance = %v, want %v", c.Distance(), want)
	}
	if c.Yaw() != yaw || c.Pitch() != pitch {
		t.Error("auto-fit must not disturb orbit angles")
	}
}

func TestAutoFitDegenerateBox(t *testing.T) {
	c := NewCamera()
	c.AutoFit([3]float32{2, 2, 2}, [3]float32{2, 2, 2})
	if c.Distance() != MinDistance {
		t.Errorf("distance for point box = %v, want floor %v", c.Distance(), float32(MinDistance))
	}
}

func TestAutoFitKeepsBoxInFrustum(t *testing.T) {
	boxes := [][2][3]float32{
		{{-1, -1, -1}, {1, 1, 1}},
		{{0, 0, 0}, {10, 2, 3}},
		{{-5, -1, -5}, {5, 1, 5}},
		{{5, 5, 5}, {5.5, 5.5, 5.5}},
	}
	angles := [][2]float32{{0, 0}, {0.8, 0.7}, {-2.5, -1.2}, {4.0, 1.5}}

	for _, box := range boxes {
		for _, a := range angles {
			c := NewCamera(WithYaw(a[0]), WithPitch(a[1]), WithAspect(16.0/9.0))
			c.AutoFit(box[0], box[1])

			vp := c.ViewProjectionMatrix()
			fr := common.ExtractFrustumFromMatrix(vp[:])
			for xi := 0; xi < 2; xi++ {
				for yi := 0; yi < 2; yi++ {
					for zi := 0; zi < 2; zi++ {
						px := box[xi][0]
						py := box[yi][1]
						pz := box[zi][2]
						if !fr.ContainsPoint(px, py, pz) {
							t.Errorf("box %v angles %v: corner (%v, %v, %v) outside frustum",
								box, a, px, py, pz)
						}
					}
				}
			}
		}
	}
}

func TestSetAspectIgnoresNonPositive(t *testing.T) {
	c := NewCamera(WithAspect(2.0))
	before := c.ProjectionMatrix()
	c.SetAspect(0)
	c.SetAspect(-1)
	if c.ProjectionMatrix() != before {
		t.Error("non-positive aspect must not change the projection")
	}
	c.SetAspect(1.0)
	if c.ProjectionMatrix() == before {
		t.Error("valid aspect change must update the projection")
	}
}

func TestViewMatrixLooksAtTarget(t *testing.T) {
	c := NewCamera(WithTarget(1, 2, 3), WithYaw(0.5), WithPitch(0.3))

	// The target transformed by the view matrix lies on the -Z axis at
	// the orbit distance.
	view := c.ViewMatrix()
	x, y, z, _ := common.TransformPoint(view[:], 1, 2, 3)
	if !approxEqual(x, 0) || !approxEqual(y, 0) {
		t.Errorf("view-space target = (%v, %v, %v), want x=y=0", x, y, z)
	}
	if !approxEqual(z, -c.Distance()) {
		t.Errorf("view-space target z = %v, want %v", z, -c.Distance())
	}
}

func TestUniform(t *testing.T) {
	c := NewCamera(WithYaw(1.2), WithPitch(0.4))
	u := c.Uniform()

	if u.ViewProjection != c.ViewProjectionMatrix() {
		t.Error("uniform view-projection mismatch")
	}
	if u.View != c.ViewMatrix() {
		t.Error("uniform view mismatch")
	}
	px, py, pz := c.Position()
	if u.CameraPos != [3]float32{px, py, pz} {
		t.Error("uniform camera position mismatch")
	}
}

func TestGPUCameraUniformSize(t *testing.T) {
	var u GPUCameraUniform
	if got := unsafe.Sizeof(u); got != GPUCameraUniformSize {
		t.Errorf("sizeof GPUCameraUniform = %d, want %d", got, GPUCameraUniformSize)
	}
	if got := len(u.ToBytes()); got != GPUCameraUniformSize {
		t.Errorf("ToBytes length = %d, want %d", got, GPUCameraUniformSize)
	}
}
