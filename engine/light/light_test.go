package light

import (
	"math"
	"testing"
	"unsafe"
)

func TestNewDirectionalNormalized(t *testing.T) {
	l := NewDirectional()
	d := l.Direction
	length := math.Sqrt(float64(d[0]*d[0] + d[1]*d[1] + d[2]*d[2]))
	if math.Abs(length-1) > 1e-5 {
		t.Errorf("direction length = %v, want 1", length)
	}
	if d[1] <= 0 {
		t.Error("default light should come from above")
	}
}

func TestUniformPacking(t *testing.T) {
	l := NewDirectional()
	l.Intensity = 0.5
	l.Ambient = 0.2

	u := l.Uniform()
	if u.Direction != l.Direction || u.Color != l.Color {
		t.Error("uniform vectors mismatch")
	}
	if u.Intensity != 0.5 || u.Ambient != 0.2 {
		t.Error("uniform scalars mismatch")
	}
}

func TestGPULightUniformSize(t *testing.T) {
	var u GPULightUniform
	if got := unsafe.Sizeof(u); got != GPULightUniformSize {
		t.Errorf("sizeof GPULightUniform = %d, want %d", got, GPULightUniformSize)
	}
	if got := len(u.ToBytes()); got != GPULightUniformSize {
		t.Errorf("ToBytes length = %d, want %d", got, GPULightUniformSize)
	}
}
