package bind_group_provider

import (
	"github.com/cogentcore/webgpu/wgpu"
)

// bindGroupProvider is the unexported implementation of BindGroupProvider.
type bindGroupProvider struct {
	// label is a debug label added for convenience.
	label string

	// The following fields are GPU allocated resources and must be released
	// when no longer needed. They are populated by the Renderer during
	// initialization, not by user-creation.

	// bindGroup is the GPU bind group created for this provider, or nil if not initialized.
	bindGroup *wgpu.BindGroup
	// bindGroupLayout is the GPU bind group layout created for this provider, or nil if not initialized.
	bindGroupLayout *wgpu.BindGroupLayout
	// buffers holds the GPU uniform buffers created for this provider, keyed by binding index.
	buffers map[int]*wgpu.Buffer

	// vertexBuffer is the GPU vertex buffer, or nil if not initialized.
	vertexBuffer *wgpu.Buffer
	// vertexBufferSize is the allocated byte size of vertexBuffer; dynamic
	// providers grow the buffer when a frame's geometry exceeds it.
	vertexBufferSize uint64
	// vertexCount is the number of vertices for non-indexed draw calls.
	vertexCount int

	// indexBuffer holds triangle-list indices, or nil if not initialized.
	indexBuffer *wgpu.Buffer
	// indexCount is the number of triangle-list indices for indexed draw calls.
	indexCount int

	// edgeIndexBuffer holds line-list indices for wireframe draws, or nil.
	edgeIndexBuffer *wgpu.Buffer
	// edgeIndexCount is the number of line-list indices.
	edgeIndexCount int
}

// BindGroupProvider holds the GPU resources backing one drawable or uniform
// set: a bind group with its uniform buffers, plus optional vertex and index
// buffers. Components (camera, mesh, overlay) own a provider; the renderer
// initializes it and reads it during draw calls.
type BindGroupProvider interface {
	// Release releases any GPU resources held by this provider and clears
	// the stored references.
	Release()

	// Label returns the debug label for this provider.
	//
	// Returns:
	//   - string: the debug label
	Label() string

	// BindGroup returns the created bind group for shader binding.
	// Returns nil if GPU resources have not been initialized.
	//
	// Returns:
	//   - *wgpu.BindGroup: the bind group or nil
	BindGroup() *wgpu.BindGroup

	// BindGroupLayout returns the created bind group layout for this provider.
	// Returns nil if GPU resources have not been initialized.
	//
	// Returns:
	//   - *wgpu.BindGroupLayout: the bind group layout or nil
	BindGroupLayout() *wgpu.BindGroupLayout

	// Buffer returns the uniform buffer at the given binding index.
	// Returns nil if GPU resources have not been initialized.
	//
	// Parameters:
	//   - binding: the binding index
	//
	// Returns:
	//   - *wgpu.Buffer: the buffer or nil
	Buffer(binding int) *wgpu.Buffer

	// VertexBuffer returns the GPU vertex buffer, or nil if not initialized.
	//
	// Returns:
	//   - *wgpu.Buffer: the vertex buffer or nil
	VertexBuffer() *wgpu.Buffer

	// VertexBufferSize returns the allocated byte size of the vertex buffer.
	//
	// Returns:
	//   - uint64: the allocated size in bytes
	VertexBufferSize() uint64

	// VertexCount returns the number of vertices for non-indexed draw calls.
	//
	// Returns:
	//   - int: the vertex count
	VertexCount() int

	// IndexBuffer returns the triangle-list index buffer, or nil if not initialized.
	//
	// Returns:
	//   - *wgpu.Buffer: the index buffer or nil
	IndexBuffer() *wgpu.Buffer

	// IndexCount returns the number of triangle-list indices for draw calls.
	//
	// Returns:
	//   - int: the index count
	IndexCount() int

	// EdgeIndexBuffer returns the line-list index buffer used for wireframe
	// draws, or nil if not initialized.
	//
	// Returns:
	//   - *wgpu.Buffer: the edge index buffer or nil
	EdgeIndexBuffer() *wgpu.Buffer

	// EdgeIndexCount returns the number of line-list indices.
	//
	// Returns:
	//   - int: the edge index count
	EdgeIndexCount() int

	// SetBindGroup sets the bind group after GPU initialization.
	//
	// Parameters:
	//   - bg: the created bind group
	SetBindGroup(bg *wgpu.BindGroup)

	// SetBindGroupLayout sets the bind group layout after GPU initialization.
	//
	// Parameters:
	//   - bgl: the created bind group layout
	SetBindGroupLayout(bgl *wgpu.BindGroupLayout)

	// SetBuffer sets the uniform buffer at the given binding index.
	//
	// Parameters:
	//   - binding: the binding index
	//   - buf: the created buffer
	SetBuffer(binding int, buf *wgpu.Buffer)

	// SetVertexBuffer sets the vertex buffer and its allocated size.
	//
	// Parameters:
	//   - buf: the created vertex buffer
	//   - size: the allocated size in bytes
	SetVertexBuffer(buf *wgpu.Buffer, size uint64)

	// SetVertexCount sets the vertex count for non-indexed draw calls.
	//
	// Parameters:
	//   - count: the vertex count
	SetVertexCount(count int)

	// SetIndexBuffer sets the triangle-list index buffer.
	//
	// Parameters:
	//   - buf: the created index buffer
	SetIndexBuffer(buf *wgpu.Buffer)

	// SetIndexCount sets the triangle-list index count.
	//
	// Parameters:
	//   - count: the index count
	SetIndexCount(count int)

	// SetEdgeIndexBuffer sets the line-list index buffer.
	//
	// Parameters:
	//   - buf: the created edge index buffer
	SetEdgeIndexBuffer(buf *wgpu.Buffer)

	// SetEdgeIndexCount sets the line-list index count.
	//
	// Parameters:
	//   - count: the edge index count
	SetEdgeIndexCount(count int)
}

var _ BindGroupProvider = &bindGroupProvider{}

// NewBindGroupProvider creates an empty provider with the given debug label.
//
// Parameters:
//   - label: the debug label for GPU resource names
//
// Returns:
//   - BindGroupProvider: the newly created provider
func NewBindGroupProvider(label string) BindGroupProvider {
	return &bindGroupProvider{
		label:   label,
		buffers: map[int]*wgpu.Buffer{},
	}
}

func (b *bindGroupProvider) Release() {
	if b.bindGroup != nil {
		b.bindGroup.Release()
		b.bindGroup = nil
	}
	if b.bindGroupLayout != nil {
		b.bindGroupLayout.Release()
		b.bindGroupLayout = nil
	}
	for binding, buf := range b.buffers {
		buf.Release()
		delete(b.buffers, binding)
	}
	if b.vertexBuffer != nil {
		b.vertexBuffer.Release()
		b.vertexBuffer = nil
		b.vertexBufferSize = 0
		b.vertexCount = 0
	}
	if b.indexBuffer != nil {
		b.indexBuffer.Release()
		b.indexBuffer = nil
		b.indexCount = 0
	}
	if b.edgeIndexBuffer != nil {
		b.edgeIndexBuffer.Release()
		b.edgeIndexBuffer = nil
		b.edgeIndexCount = 0
	}
}

func (b *bindGroupProvider) Label() string {
	return b.label
}

func (b *bindGroupProvider) BindGroup() *wgpu.BindGroup {
	return b.bindGroup
}

func (b *bindGroupProvider) BindGroupLayout() *wgpu.BindGroupLayout {
	return b.bindGroupLayout
}

func (b *bindGroupProvider) Buffer(binding int) *wgpu.Buffer {
	return b.buffers[binding]
}

func (b *bindGroupProvider) VertexBuffer() *wgpu.Buffer {
	return b.vertexBuffer
}

func (b *bindGroupProvider) VertexBufferSize() uint64 {
	return b.vertexBufferSize
}

func (b *bindGroupProvider) VertexCount() int {
	return b.vertexCount
}

func (b *bindGroupProvider) IndexBuffer() *wgpu.Buffer {
	return b.indexBuffer
}

func (b *bindGroupProvider) IndexCount() int {
	return b.indexCount
}

func (b *bindGroupProvider) EdgeIndexBuffer() *wgpu.Buffer {
	return b.edgeIndexBuffer
}

func (b *bindGroupProvider) EdgeIndexCount() int {
	return b.edgeIndexCount
}

func (b *bindGroupProvider) SetBindGroup(bg *wgpu.BindGroup) {
	b.bindGroup = bg
}

func (b *bindGroupProvider) SetBindGroupLayout(bgl *wgpu.BindGroupLayout) {
	b.bindGroupLayout = bgl
}

func (b *bindGroupProvider) SetBuffer(binding int, buf *wgpu.Buffer) {
	b.buffers[binding] = buf
}

func (b *bindGroupProvider) SetVertexBuffer(buf *wgpu.Buffer, size uint64) {
	b.vertexBuffer = buf
	b.vertexBufferSize = size
}

func (b *bindGroupProvider) SetVertexCount(count int) {
	b.vertexCount = count
}

func (b *bindGroupProvider) SetIndexBuffer(buf *wgpu.Buffer) {
	b.indexBuffer = buf
}

func (b *bindGroupProvider) SetIndexCount(count int) {
	b.indexCount = count
}

func (b *bindGroupProvider) SetEdgeIndexBuffer(buf *wgpu.Buffer) {
	b.edgeIndexBuffer = buf
}

func (b *bindGroupProvider) SetEdgeIndexCount(count int) {
	b.edgeIndexCount = count
}
