package model

import (
	"encoding/binary"
	"math"
	"unsafe"

	"github.com/Carmen-Shannon/objview/common"
)

// GPUVertex is the GPU-aligned representation of a single mesh vertex.
// Matches the WGSL VertexInput struct layout exactly.
// Size: 36 bytes (three tightly packed vec3<f32> attributes).
type GPUVertex struct {
	Position [3]float32 // offset  0: vertex position in model space (12 bytes)
	Normal   [3]float32 // offset 12: vertex normal for lighting (12 bytes)
	Color    [3]float32 // offset 24: per-vertex RGB color (12 bytes)
}

// GPUVertexSize is the byte size of GPUVertex in the vertex buffer.
const GPUVertexSize = 36

// Size returns the size of the GPUVertex struct in bytes.
//
// Returns:
//   - int: the size of the struct in bytes.
func (g *GPUVertex) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUVertex struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 36-byte buffer ready for GPU upload.
func (g *GPUVertex) Marshal() []byte {
	buf := make([]byte, GPUVertexSize)
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(g.Position[0]))
	binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(g.Position[1]))
	binary.LittleEndian.PutUint32(buf[8:12], math.Float32bits(g.Position[2]))
	binary.LittleEndian.PutUint32(buf[12:16], math.Float32bits(g.Normal[0]))
	binary.LittleEndian.PutUint32(buf[16:20], math.Float32bits(g.Normal[1]))
	binary.LittleEndian.PutUint32(buf[20:24], math.Float32bits(g.Normal[2]))
	binary.LittleEndian.PutUint32(buf[24:28], math.Float32bits(g.Color[0]))
	binary.LittleEndian.PutUint32(buf[28:32], math.Float32bits(g.Color[1]))
	binary.LittleEndian.PutUint32(buf[32:36], math.Float32bits(g.Color[2]))
	return buf
}

// VerticesToBytes reinterprets a vertex slice as raw bytes for bulk upload.
// Avoids the per-vertex Marshal allocation on the load path.
//
// Parameters:
//   - vertices: the vertex data to reinterpret
//
// Returns:
//   - []byte: the raw bytes backing the slice
func VerticesToBytes(vertices []GPUVertex) []byte {
	return common.SliceToBytes(vertices)
}

// IndicesToBytes reinterprets an index slice as raw bytes for bulk upload.
//
// Parameters:
//   - indices: the index data to reinterpret
//
// Returns:
//   - []byte: the raw bytes backing the slice
func IndicesToBytes(indices []uint32) []byte {
	return common.SliceToBytes(indices)
}
