// Package shader holds the viewer's embedded WGSL sources together with the
// Go-side metadata the backend needs to build pipelines from them: entry
// points, vertex buffer layouts, and bind group layout descriptors. The
// layouts are declared here, next to the WGSL they must match.
package shader

import (
	_ "embed"

	"github.com/Carmen-Shannon/objview/engine/camera"
	"github.com/Carmen-Shannon/objview/engine/light"
	"github.com/Carmen-Shannon/objview/engine/model"
	"github.com/Carmen-Shannon/objview/engine/overlay"
	"github.com/cogentcore/webgpu/wgpu"
)

//go:embed assets/mesh.wgsl
var meshSource string

//go:embed assets/overlay.wgsl
var overlaySource string

// Descriptor bundles a WGSL module with everything required to compile a
// render pipeline around it.
type Descriptor struct {
	// Key labels the shader module for debugging.
	Key string

	// Source is the complete WGSL module source.
	Source string

	// VertexEntry and FragmentEntry name the module's entry points.
	VertexEntry   string
	FragmentEntry string

	// VertexLayouts describes the vertex buffers the vertex entry consumes.
	VertexLayouts []wgpu.VertexBufferLayout

	// BindGroupLayouts describes the module's bind groups, indexed by group.
	BindGroupLayouts []wgpu.BindGroupLayoutDescriptor
}

// meshVertexLayout matches model.GPUVertex: three tightly packed vec3<f32>
// attributes at shader locations 0-2.
func meshVertexLayout() []wgpu.VertexBufferLayout {
	return []wgpu.VertexBufferLayout{
		{
			ArrayStride: model.GPUVertexSize,
			StepMode:    wgpu.VertexStepModeVertex,
			Attributes: []wgpu.VertexAttribute{
				{Format: wgpu.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},
				{Format: wgpu.VertexFormatFloat32x3, Offset: 12, ShaderLocation: 1},
				{Format: wgpu.VertexFormatFloat32x3, Offset: 24, ShaderLocation: 2},
			},
		},
	}
}

// meshBindGroupLayouts declares group 0 of the mesh module: the camera
// uniform at binding 0 and the light uniform at binding 1.
func meshBindGroupLayouts() []wgpu.BindGroupLayoutDescriptor {
	return []wgpu.BindGroupLayoutDescriptor{
		{
			Label: "Mesh Bind Group Layout",
			Entries: []wgpu.BindGroupLayoutEntry{
				{
					Binding:    0,
					Visibility: wgpu.ShaderStageVertex | wgpu.ShaderStageFragment,
					Buffer: wgpu.BufferBindingLayout{
						Type:           wgpu.BufferBindingTypeUniform,
						MinBindingSize: camera.GPUCameraUniformSize,
					},
				},
				{
					Binding:    1,
					Visibility: wgpu.ShaderStageFragment,
					Buffer: wgpu.BufferBindingLayout{
						Type:           wgpu.BufferBindingTypeUniform,
						MinBindingSize: light.GPULightUniformSize,
					},
				},
			},
		},
	}
}

// Mesh returns the lit mesh shader used by the solid pipeline.
//
// Returns:
//   - Descriptor: the mesh shader descriptor
func Mesh() Descriptor {
	return Descriptor{
		Key:              "mesh",
		Source:           meshSource,
		VertexEntry:      "vs_main",
		FragmentEntry:    "fs_main",
		VertexLayouts:    meshVertexLayout(),
		BindGroupLayouts: meshBindGroupLayouts(),
	}
}

// MeshWire returns the mesh shader with the unlit wireframe fragment entry.
// Shares the module, layouts, and bind groups with Mesh.
//
// Returns:
//   - Descriptor: the wireframe shader descriptor
func MeshWire() Descriptor {
	d := Mesh()
	d.Key = "mesh_wire"
	d.FragmentEntry = "fs_wire"
	return d
}

// Overlay returns the 2D overlay shader: NDC pass-through positions with
// per-vertex RGBA color and no bind groups.
//
// Returns:
//   - Descriptor: the overlay shader descriptor
func Overlay() Descriptor {
	return Descriptor{
		Key:           "overlay",
		Source:        overlaySource,
		VertexEntry:   "vs_main",
		FragmentEntry: "fs_main",
		VertexLayouts: []wgpu.VertexBufferLayout{
			{
				ArrayStride: overlay.GPUOverlayVertexSize,
				StepMode:    wgpu.VertexStepModeVertex,
				Attributes: []wgpu.VertexAttribute{
					{Format: wgpu.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0},
					{Format: wgpu.VertexFormatFloat32x4, Offset: 8, ShaderLocation: 1},
				},
			},
		},
	}
}
