package camera

import "github.com/Carmen-Shannon/objview/common"

// GPUCameraUniform is the camera data uploaded to the shader uniform buffer.
// Field order and padding match the WGSL CameraUniform struct exactly:
// two column-major mat4x4<f32> followed by a vec3<f32> padded to 16 bytes,
// 144 bytes total.
type GPUCameraUniform struct {
	// ViewProjection is the combined view-projection matrix (column-major).
	ViewProjection [16]float32

	// View is the view matrix (column-major).
	View [16]float32

	// CameraPos is the world-space camera position, used for specular lighting.
	CameraPos [3]float32

	_pad float32
}

// GPUCameraUniformSize is the byte size of GPUCameraUniform on the GPU.
const GPUCameraUniformSize = 144

// ToBytes returns the uniform's raw byte representation for queue.WriteBuffer.
//
// Returns:
//   - []byte: the raw bytes backing the uniform
func (u *GPUCameraUniform) ToBytes() []byte {
	return common.StructToBytes(u)
}
