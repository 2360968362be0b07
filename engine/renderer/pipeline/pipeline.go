package pipeline

import (
	"github.com/Carmen-Shannon/objview/engine/renderer/shader"
	"github.com/cogentcore/webgpu/wgpu"
)

// pipeline is the implementation of the Pipeline interface. It holds the
// shader descriptor, fixed-function configuration, and the compiled WebGPU
// render pipeline once registered.
type pipeline struct {
	// pipelineKey is the unique identifier for this pipeline, used for caching and lookups.
	pipelineKey string

	// shaderDescriptor carries the WGSL source and layout metadata; required
	// before registering the pipeline.
	shaderDescriptor shader.Descriptor

	// renderPipeline is the compiled pipeline, nil until registered.
	renderPipeline *wgpu.RenderPipeline

	// Fixed-function configuration, set with builder options.

	depthStencilEnabled bool
	depthTestEnabled    bool
	depthWriteEnabled   bool
	blendEnabled        bool
	cullMode            wgpu.CullMode
	topology            wgpu.PrimitiveTopology
	frontFace           wgpu.FrontFace
	writeMask           wgpu.ColorWriteMask
	blendState          *wgpu.BlendState
}

// Pipeline defines the interface for a render pipeline. It holds all
// configuration state required for pipeline creation including depth, blend,
// cull, and topology settings, plus the shader module metadata.
type Pipeline interface {
	// PipelineKey returns the unique key associated with this pipeline, used for caching and lookups.
	//
	// Returns:
	//   - string: the unique key for this pipeline
	PipelineKey() string

	// ShaderDescriptor returns the shader module metadata for this pipeline.
	//
	// Returns:
	//   - shader.Descriptor: the shader descriptor
	ShaderDescriptor() shader.Descriptor

	// Pipeline returns the compiled render pipeline, or nil if the pipeline
	// has not been registered with the renderer yet.
	//
	// Returns:
	//   - *wgpu.RenderPipeline: the compiled pipeline or nil
	Pipeline() *wgpu.RenderPipeline

	// DepthStencilEnabled returns whether this pipeline carries a depth-stencil
	// state at all. Pipelines used in passes without a depth attachment (the
	// overlay) must disable it.
	//
	// Returns:
	//   - bool: true if a depth-stencil state is attached
	DepthStencilEnabled() bool

	// DepthTestEnabled returns whether depth testing is enabled for this pipeline.
	//
	// Returns:
	//   - bool: true if depth testing is enabled, false otherwise
	DepthTestEnabled() bool

	// DepthWriteEnabled returns whether depth writing is enabled for this pipeline.
	//
	// Returns:
	//   - bool: true if depth writing is enabled, false otherwise
	DepthWriteEnabled() bool

	// BlendEnabled returns whether blending is enabled for this pipeline.
	//
	// Returns:
	//   - bool: true if blending is enabled, false otherwise
	BlendEnabled() bool

	// CullMode returns the cull mode configured for this pipeline.
	//
	// Returns:
	//   - wgpu.CullMode: the cull mode for this pipeline
	CullMode() wgpu.CullMode

	// Topology returns the primitive topology configured for this pipeline.
	//
	// Returns:
	//   - wgpu.PrimitiveTopology: the primitive topology for this pipeline
	Topology() wgpu.PrimitiveTopology

	// FrontFace returns the front face winding order configured for this pipeline.
	//
	// Returns:
	//   - wgpu.FrontFace: the front face winding order for this pipeline
	FrontFace() wgpu.FrontFace

	// WriteMask returns the color write mask configured for this pipeline.
	//
	// Returns:
	//   - wgpu.ColorWriteMask: the color write mask for this pipeline
	WriteMask() wgpu.ColorWriteMask

	// BlendState returns the blend state configured for this pipeline.
	//
	// Returns:
	//   - *wgpu.BlendState: the blend state for this pipeline
	BlendState() *wgpu.BlendState

	// SetRenderPipeline sets the compiled render pipeline.
	// Called by the renderer backend during registration.
	//
	// Parameters:
	//   - p: the WebGPU render pipeline to set
	SetRenderPipeline(p *wgpu.RenderPipeline)
}

var _ Pipeline = &pipeline{}

// NewPipeline creates a new Pipeline with the given key and shader descriptor.
// Defaults: triangle list, CCW front face, no culling, depth test and write
// enabled, blending off.
//
// Parameters:
//   - pipelineKey: the unique key for this pipeline
//   - desc: the shader descriptor to build the pipeline around
//   - opts: a variadic list of PipelineBuilderOption functions to configure the pipeline
//
// Returns:
//   - Pipeline: a new Pipeline instance with the specified configuration
func NewPipeline(pipelineKey string, desc shader.Descriptor, opts ...PipelineBuilderOption) Pipeline {
	p := &pipeline{
		pipelineKey:         pipelineKey,
		shaderDescriptor:    desc,
		depthStencilEnabled: true,
		depthTestEnabled:    true,
		depthWriteEnabled:   true,
		blendEnabled:        false,
		cullMode:            wgpu.CullModeNone,
		topology:            wgpu.PrimitiveTopologyTriangleList,
		frontFace:           wgpu.FrontFaceCCW,
		writeMask:           wgpu.ColorWriteMaskAll,
		blendState: &wgpu.BlendState{
			Color: wgpu.BlendComponent{
				SrcFactor: wgpu.BlendFactorSrcAlpha,
				DstFactor: wgpu.BlendFactorOneMinusSrcAlpha,
				Operation: wgpu.BlendOperationAdd,
			},
			Alpha: wgpu.BlendComponent{
				SrcFactor: wgpu.BlendFactorOne,
				DstFactor: wgpu.BlendFactorOneMinusSrcAlpha,
				Operation: wgpu.BlendOperationAdd,
			},
		},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *pipeline) PipelineKey() string {
	return p.pipelineKey
}

func (p *pipeline) ShaderDescriptor() shader.Descriptor {
	return p.shaderDescriptor
}

func (p *pipeline) Pipeline() *wgpu.RenderPipeline {
	return p.renderPipeline
}

func (p *pipeline) DepthStencilEnabled() bool {
	return p.depthStencilEnabled
}

func (p *pipeline) DepthTestEnabled() bool {
	return p.depthTestEnabled
}

func (p *pipeline) DepthWriteEnabled() bool {
	return p.depthWriteEnabled
}

func (p *pipeline) BlendEnabled() bool {
	return p.blendEnabled
}

func (p *pipeline) CullMode() wgpu.CullMode {
	return p.cullMode
}

func (p *pipeline) Topology() wgpu.PrimitiveTopology {
	return p.topology
}

func (p *pipeline) FrontFace() wgpu.FrontFace {
	return p.frontFace
}

func (p *pipeline) WriteMask() wgpu.ColorWriteMask {
	return p.writeMask
}

func (p *pipeline) BlendState() *wgpu.BlendState {
	return p.blendState
}

func (p *pipeline) SetRenderPipeline(rp *wgpu.RenderPipeline) {
	p.renderPipeline = rp
}
