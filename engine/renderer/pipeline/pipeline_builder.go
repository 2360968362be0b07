package pipeline

import "github.com/cogentcore/webgpu/wgpu"

// PipelineBuilderOption is a functional option for configuring a pipeline.
// Use the With* functions to create options.
type PipelineBuilderOption func(p *pipeline)

// WithTopology sets the primitive topology.
//
// Parameters:
//   - topology: the primitive topology (e.g., wgpu.PrimitiveTopologyLineList)
//
// Returns:
//   - PipelineBuilderOption: option function to apply
func WithTopology(topology wgpu.PrimitiveTopology) PipelineBuilderOption {
	return func(p *pipeline) {
		p.topology = topology
	}
}

// WithCullMode sets the cull mode.
//
// Parameters:
//   - cullMode: the cull mode (e.g., wgpu.CullModeBack)
//
// Returns:
//   - PipelineBuilderOption: option function to apply
func WithCullMode(cullMode wgpu.CullMode) PipelineBuilderOption {
	return func(p *pipeline) {
		p.cullMode = cullMode
	}
}

// WithFrontFace sets the front face winding order.
//
// Parameters:
//   - frontFace: the winding order (e.g., wgpu.FrontFaceCCW)
//
// Returns:
//   - PipelineBuilderOption: option function to apply
func WithFrontFace(frontFace wgpu.FrontFace) PipelineBuilderOption {
	return func(p *pipeline) {
		p.frontFace = frontFace
	}
}

// WithBlendEnabled enables or disables alpha blending.
//
// Parameters:
//   - enabled: true to blend against the existing color attachment
//
// Returns:
//   - PipelineBuilderOption: option function to apply
func WithBlendEnabled(enabled bool) PipelineBuilderOption {
	return func(p *pipeline) {
		p.blendEnabled = enabled
	}
}

// WithDepthTestEnabled enables or disables depth testing.
//
// Parameters:
//   - enabled: true to test fragments against the depth buffer
//
// Returns:
//   - PipelineBuilderOption: option function to apply
func WithDepthTestEnabled(enabled bool) PipelineBuilderOption {
	return func(p *pipeline) {
		p.depthTestEnabled = enabled
	}
}

// WithDepthWriteEnabled enables or disables depth writes.
//
// Parameters:
//   - enabled: true to write fragment depth to the depth buffer
//
// Returns:
//   - PipelineBuilderOption: option function to apply
func WithDepthWriteEnabled(enabled bool) PipelineBuilderOption {
	return func(p *pipeline) {
		p.depthWriteEnabled = enabled
	}
}

// WithoutDepthStencil removes the depth-stencil state entirely. Required for
// pipelines used in render passes that have no depth attachment.
//
// Returns:
//   - PipelineBuilderOption: option function to apply
func WithoutDepthStencil() PipelineBuilderOption {
	return func(p *pipeline) {
		p.depthStencilEnabled = false
		p.depthTestEnabled = false
		p.depthWriteEnabled = false
	}
}

// WithWriteMask sets the color write mask.
//
// Parameters:
//   - mask: the color channels to write
//
// Returns:
//   - PipelineBuilderOption: option function to apply
func WithWriteMask(mask wgpu.ColorWriteMask) PipelineBuilderOption {
	return func(p *pipeline) {
		p.writeMask = mask
	}
}
