// Package light holds the directional light feeding the mesh shader.
package light

import (
	"github.com/Carmen-Shannon/objview/common"
)

// Directional is a single infinite-distance light source.
type Directional struct {
	// Direction points from the scene toward the light, normalized.
	Direction [3]float32

	// Color is the light color in linear RGB.
	Color [3]float32

	// Intensity scales the diffuse and specular contribution.
	Intensity float32

	// Ambient is the constant ambient term applied regardless of direction.
	Ambient float32
}

// NewDirectional returns the default key light: above and behind the camera's
// home position, warm white at full intensity.
//
// Returns:
//   - Directional: the default light
func NewDirectional() Directional {
	dx, dy, dz := common.Normalize3(0.5, 1.0, 0.75)
	return Directional{
		Direction: [3]float32{dx, dy, dz},
		Color:     [3]float32{1.0, 1.0, 1.0},
		Intensity: 1.0,
		Ambient:   0.15,
	}
}

// GPULightUniform is the light data uploaded to the shader uniform buffer.
// Layout matches the WGSL LightUniform struct: two vec3<f32> padded to 16
// bytes each, 32 bytes total.
type GPULightUniform struct {
	Direction [3]float32
	Intensity float32
	Color     [3]float32
	Ambient   float32
}

// GPULightUniformSize is the byte size of GPULightUniform on the GPU.
const GPULightUniformSize = 32

// Uniform packs the light for GPU upload.
//
// Returns:
//   - GPULightUniform: the shader-facing light data
func (d Directional) Uniform() GPULightUniform {
	return GPULightUniform{
		Direction: d.Direction,
		Intensity: d.Intensity,
		Color:     d.Color,
		Ambient:   d.Ambient,
	}
}

// ToBytes returns the uniform's raw byte representation for queue.WriteBuffer.
//
// Returns:
//   - []byte: the raw bytes backing the uniform
func (u *GPULightUniform) ToBytes() []byte {
	return common.StructToBytes(u)
}
