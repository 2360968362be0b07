package renderer

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
	"sync"

	"github.com/Carmen-Shannon/objview/engine/renderer/bind_group_provider"
	"github.com/Carmen-Shannon/objview/engine/renderer/pipeline"
	"github.com/cogentcore/webgpu/wgpu"
)

type wgpuRendererBackendImpl struct {
	mu     *sync.Mutex
	device *wgpu.Device
	queue  *wgpu.Queue

	instance *wgpu.Instance
	adapter  *wgpu.Adapter
	surface  *wgpu.Surface

	surfaceFormat    *wgpu.TextureFormat
	surfaceWidth     int
	surfaceHeight    int
	depthTexture     *wgpu.Texture
	depthTextureView *wgpu.TextureView

	presentMode wgpu.PresentMode
	clearColor  wgpu.Color

	// Frame state for batching the 3D pass and the overlay pass into a
	// single command submission per frame.
	frameEncoder *wgpu.CommandEncoder
	framePass    *wgpu.RenderPassEncoder
	frameSurface *wgpu.Texture
	frameView    *wgpu.TextureView
}

type wgpuRendererBackend interface {
	Device() *wgpu.Device
	Queue() *wgpu.Queue
	Instance() *wgpu.Instance
	Adapter() *wgpu.Adapter
	Surface() *wgpu.Surface

	// ConfigureSurface reconfigures the surface and recreates the depth
	// texture for a new size. Required at startup and whenever the window
	// is resized or the surface reports lost/outdated. Zero-area sizes are
	// ignored.
	//
	// Parameters:
	//   - width: the new width of the surface in pixels
	//   - height: the new height of the surface in pixels
	ConfigureSurface(width, height int)

	// SetPresentMode sets the surface present mode which controls how frames
	// are delivered to the display. Takes effect on the next ConfigureSurface.
	//
	// Parameters:
	//   - mode: the PresentMode to use (VSync or Uncapped)
	SetPresentMode(mode PresentMode)

	// RegisterRenderPipeline creates a render pipeline from the pipeline's
	// shader descriptor and fixed-function configuration, and stores the
	// compiled pipeline back on it.
	//
	// Parameters:
	//   - p: the pipeline object containing the shader descriptor and configuration
	//
	// Returns:
	//   - error: an error if the pipeline could not be created, otherwise nil
	RegisterRenderPipeline(p pipeline.Pipeline) error

	// InitMeshBuffers creates the vertex, index, and edge index buffers for a
	// mesh and stores them on the given BindGroupProvider. Any buffers the
	// provider already holds are released first, so a provider can be reused
	// across mesh loads.
	//
	// Parameters:
	//   - provider: the BindGroupProvider to store the created buffers on
	//   - vertexData: the raw vertex data bytes to upload to the GPU
	//   - indexData: the raw triangle-list index bytes to upload to the GPU
	//   - edgeData: the raw line-list index bytes for wireframe draws
	//   - indexCount: the number of triangle-list indices, used for draw calls
	//   - edgeIndexCount: the number of line-list indices
	//
	// Returns:
	//   - error: an error if the buffers could not be created, otherwise nil
	InitMeshBuffers(provider bind_group_provider.BindGroupProvider, vertexData, indexData, edgeData []byte, indexCount, edgeIndexCount int) error

	// InitBindGroup creates GPU uniform buffers and a bind group based on a
	// layout descriptor, and stores them back on the provider for later use.
	//
	// Parameters:
	//   - provider: the BindGroupProvider describing storage for the bind group
	//   - descriptor: the BindGroupLayoutDescriptor describing the layout
	//
	// Returns:
	//   - error: an error if the bind group could not be initialized, otherwise nil
	InitBindGroup(provider bind_group_provider.BindGroupProvider, descriptor wgpu.BindGroupLayoutDescriptor) error

	// UpdateDynamicVertexBuffer uploads per-frame vertex data to the
	// provider's vertex buffer, allocating or growing it as needed.
	//
	// Parameters:
	//   - provider: the BindGroupProvider holding the dynamic vertex buffer
	//   - data: the raw vertex bytes for this frame
	//   - vertexCount: the number of vertices represented by data
	//
	// Returns:
	//   - error: an error if buffer allocation fails
	UpdateDynamicVertexBuffer(provider bind_group_provider.BindGroupProvider, data []byte, vertexCount int) error

	// WriteBuffers writes all staged buffer writes to the GPU queue.
	//
	// Parameters:
	//   - writes: a slice of BufferWrite structs describing the data to write
	WriteBuffers(writes []bind_group_provider.BufferWrite)

	// BeginFrame acquires the next swapchain texture, creates a command
	// encoder, and begins the 3D render pass (cleared color and depth).
	// Must be paired with EndFrame. Surface acquisition failures are
	// classified into ErrSurfaceLost, ErrSurfaceOutdated, or
	// ErrSurfaceOutOfMemory where recognizable.
	//
	// Returns:
	//   - error: an error if the swapchain texture could not be acquired
	BeginFrame() error

	// DrawCall encodes one indexed draw within the current 3D pass using the
	// provider's triangle-list index buffer.
	//
	// Parameters:
	//   - p: the registered Pipeline to bind
	//   - meshProvider: the BindGroupProvider holding vertex and index buffers
	//   - bindGroups: BindGroupProviders whose BindGroups are set on the pass in order
	DrawCall(p pipeline.Pipeline, meshProvider bind_group_provider.BindGroupProvider, bindGroups []bind_group_provider.BindGroupProvider)

	// DrawEdges encodes one indexed draw within the current 3D pass using the
	// provider's line-list edge index buffer. Used by the wireframe pipeline.
	//
	// Parameters:
	//   - p: the registered line-list Pipeline to bind
	//   - meshProvider: the BindGroupProvider holding vertex and edge index buffers
	//   - bindGroups: BindGroupProviders whose BindGroups are set on the pass in order
	DrawEdges(p pipeline.Pipeline, meshProvider bind_group_provider.BindGroupProvider, bindGroups []bind_group_provider.BindGroupProvider)

	// BeginOverlayPass ends the 3D pass and begins the overlay pass on the
	// same frame: color loads the 3D result, no depth attachment.
	BeginOverlayPass()

	// DrawOverlay encodes one non-indexed draw within the overlay pass using
	// the provider's dynamic vertex buffer and vertex count.
	//
	// Parameters:
	//   - p: the registered overlay Pipeline to bind
	//   - provider: the BindGroupProvider holding the overlay vertex buffer
	DrawOverlay(p pipeline.Pipeline, provider bind_group_provider.BindGroupProvider)

	// EndFrame ends the current render pass and submits the command buffer to
	// the GPU. Does not present — call Present after EndFrame.
	EndFrame()

	// Present presents the surface to the display and releases the swapchain
	// texture. Must be called once per frame after EndFrame.
	Present()

	// Release frees the device-level resources held by the backend.
	Release()
}

var _ RendererBackend = &wgpuRendererBackendImpl{}

func newWGPURendererBackend(surfaceDescriptor *wgpu.SurfaceDescriptor, forceFallbackAdapter bool) wgpuRendererBackend {
	runtime.LockOSThread()
	w := &wgpuRendererBackendImpl{
		mu:          &sync.Mutex{},
		instance:    wgpu.CreateInstance(nil),
		presentMode: wgpu.PresentModeFifo,
		clearColor:  wgpu.Color{R: 0.1, G: 0.2, B: 0.3, A: 1.0},
	}
	w.surface = w.instance.CreateSurface(surfaceDescriptor)

	a, err := w.instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		ForceFallbackAdapter: forceFallbackAdapter,
		CompatibleSurface:    w.surface,
	})
	if err != nil {
		panic(err)
	}
	w.adapter = a

	d, err := a.RequestDevice(&wgpu.DeviceDescriptor{
		Label: "Viewer Device",
		RequiredLimits: &wgpu.RequiredLimits{
			Limits: wgpu.DefaultLimits(),
		},
	})
	if err != nil {
		panic(err)
	}
	w.device = d
	w.queue = d.GetQueue()

	return w
}

// preferredSurfaceFormat picks an sRGB swapchain format when the adapter
// offers one, falling back to the first supported format.
func preferredSurfaceFormat(formats []wgpu.TextureFormat) wgpu.TextureFormat {
	for _, f := range formats {
		if f == wgpu.TextureFormatBGRA8UnormSrgb || f == wgpu.TextureFormatRGBA8UnormSrgb {
			return f
		}
	}
	return formats[0]
}

func (b *wgpuRendererBackendImpl) ConfigureSurface(width, height int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	// Minimized windows report a zero-area framebuffer; configuring a
	// zero-sized surface is a validation error, so keep the old one.
	if width <= 0 || height <= 0 {
		return
	}

	capabilities := b.surface.GetCapabilities(b.adapter)
	format := preferredSurfaceFormat(capabilities.Formats)
	b.surfaceFormat = &format

	b.surface.Configure(b.adapter, b.device, &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      format,
		Width:       uint32(width),
		Height:      uint32(height),
		PresentMode: b.presentMode,
		AlphaMode:   capabilities.AlphaModes[0],
	})
	b.surfaceWidth = width
	b.surfaceHeight = height

	// Depth texture must match the surface size exactly.
	if b.depthTextureView != nil {
		b.depthTextureView.Release()
		b.depthTextureView = nil
	}
	if b.depthTexture != nil {
		b.depthTexture.Release()
		b.depthTexture = nil
	}

	depthTexture, err := b.device.CreateTexture(&wgpu.TextureDescriptor{
		Label: "Depth Texture",
		Size: wgpu.Extent3D{
			Width:              uint32(width),
			Height:             uint32(height),
			DepthOrArrayLayers: 1,
		},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     wgpu.TextureDimension2D,
		Format:        wgpu.TextureFormatDepth24Plus,
		Usage:         wgpu.TextureUsageRenderAttachment,
	})
	if err != nil {
		panic(err)
	}
	b.depthTexture = depthTexture
	b.depthTextureView, err = depthTexture.CreateView(nil)
	if err != nil {
		panic(err)
	}
}

func (b *wgpuRendererBackendImpl) SetPresentMode(mode PresentMode) {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch mode {
	case PresentModeUncapped:
		b.presentMode = wgpu.PresentModeImmediate
	case PresentModeVSync:
		fallthrough
	default:
		b.presentMode = wgpu.PresentModeFifo
	}
}

func (b *wgpuRendererBackendImpl) RegisterRenderPipeline(p pipeline.Pipeline) error {
	desc := p.ShaderDescriptor()
	if desc.Source == "" {
		return errors.New("pipeline has no shader source")
	}

	module, err := b.device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label: desc.Key,
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{
			Code: desc.Source,
		},
	})
	if err != nil {
		return err
	}

	bindGroupLayouts := make([]*wgpu.BindGroupLayout, len(desc.BindGroupLayouts))
	for g := range desc.BindGroupLayouts {
		layout, layoutErr := b.device.CreateBindGroupLayout(&desc.BindGroupLayouts[g])
		if layoutErr != nil {
			return fmt.Errorf("failed to create bind group layout for group %d: %w", g, layoutErr)
		}
		bindGroupLayouts[g] = layout
	}

	pipelineLayout, err := b.device.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label:            p.PipelineKey(),
		BindGroupLayouts: bindGroupLayouts,
	})
	if err != nil {
		return err
	}

	created, err := b.device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label:  p.PipelineKey() + " Render Pipeline",
		Layout: pipelineLayout,
		Vertex: wgpu.VertexState{
			Module:     module,
			EntryPoint: desc.VertexEntry,
			Buffers:    desc.VertexLayouts,
		},
		Fragment: &wgpu.FragmentState{
			Module:     module,
			EntryPoint: desc.FragmentEntry,
			Targets: []wgpu.ColorTargetState{
				func() wgpu.ColorTargetState {
					state := wgpu.ColorTargetState{
						Format:    *b.surfaceFormat,
						WriteMask: p.WriteMask(),
					}
					if p.BlendEnabled() {
						state.Blend = p.BlendState()
					}
					return state
				}(),
			},
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  p.Topology(),
			FrontFace: p.FrontFace(),
			CullMode:  p.CullMode(),
		},
		Multisample: wgpu.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
		DepthStencil: func() *wgpu.DepthStencilState {
			if !p.DepthStencilEnabled() {
				return nil
			}
			depthCompare := wgpu.CompareFunctionLess
			if !p.DepthTestEnabled() {
				depthCompare = wgpu.CompareFunctionAlways
			}
			return &wgpu.DepthStencilState{
				Format:            wgpu.TextureFormatDepth24Plus,
				DepthWriteEnabled: p.DepthWriteEnabled(),
				DepthCompare:      depthCompare,
				StencilFront: wgpu.StencilFaceState{
					Compare: wgpu.CompareFunctionAlways,
				},
				StencilBack: wgpu.StencilFaceState{
					Compare: wgpu.CompareFunctionAlways,
				},
			}
		}(),
	})
	if err != nil {
		return err
	}

	p.SetRenderPipeline(created)

	return nil
}

func (b *wgpuRendererBackendImpl) InitMeshBuffers(provider bind_group_provider.BindGroupProvider, vertexData, indexData, edgeData []byte, indexCount, edgeIndexCount int) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	// Release any previous mesh so providers can be reused across loads.
	if old := provider.VertexBuffer(); old != nil {
		old.Release()
		provider.SetVertexBuffer(nil, 0)
	}
	if old := provider.IndexBuffer(); old != nil {
		old.Release()
		provider.SetIndexBuffer(nil)
	}
	if old := provider.EdgeIndexBuffer(); old != nil {
		old.Release()
		provider.SetEdgeIndexBuffer(nil)
	}

	if len(vertexData) > 0 {
		buf, err := b.device.CreateBuffer(&wgpu.BufferDescriptor{
			Label:            provider.Label() + " Vertex Buffer",
			Size:             uint64(len(vertexData)),
			Usage:            wgpu.BufferUsageVertex | wgpu.BufferUsageCopyDst,
			MappedAtCreation: false,
		})
		if err != nil {
			return err
		}
		b.queue.WriteBuffer(buf, 0, vertexData)
		provider.SetVertexBuffer(buf, uint64(len(vertexData)))
	}

	if len(indexData) > 0 {
		buf, err := b.device.CreateBuffer(&wgpu.BufferDescriptor{
			Label:            provider.Label() + " Index Buffer",
			Size:             uint64(len(indexData)),
			Usage:            wgpu.BufferUsageIndex | wgpu.BufferUsageCopyDst,
			MappedAtCreation: false,
		})
		if err != nil {
			return err
		}
		b.queue.WriteBuffer(buf, 0, indexData)
		provider.SetIndexBuffer(buf)
	}

	if len(edgeData) > 0 {
		buf, err := b.device.CreateBuffer(&wgpu.BufferDescriptor{
			Label:            provider.Label() + " Edge Index Buffer",
			Size:             uint64(len(edgeData)),
			Usage:            wgpu.BufferUsageIndex | wgpu.BufferUsageCopyDst,
			MappedAtCreation: false,
		})
		if err != nil {
			return err
		}
		b.queue.WriteBuffer(buf, 0, edgeData)
		provider.SetEdgeIndexBuffer(buf)
	}

	provider.SetIndexCount(indexCount)
	provider.SetEdgeIndexCount(edgeIndexCount)

	return nil
}

func (b *wgpuRendererBackendImpl) InitBindGroup(provider bind_group_provider.BindGroupProvider, descriptor wgpu.BindGroupLayoutDescriptor) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(descriptor.Entries) == 0 {
		return nil
	}

	layout := provider.BindGroupLayout()
	if layout == nil {
		var err error
		layout, err = b.device.CreateBindGroupLayout(&descriptor)
		if err != nil {
			return err
		}
		provider.SetBindGroupLayout(layout)
	}

	bindGroupEntries := make([]wgpu.BindGroupEntry, len(descriptor.Entries))
	for i, entry := range descriptor.Entries {
		binding := int(entry.Binding)

		buf := provider.Buffer(binding)
		if buf == nil {
			var bufErr error
			buf, bufErr = b.device.CreateBuffer(&wgpu.BufferDescriptor{
				Label: provider.Label() + " Buffer",
				Size:  entry.Buffer.MinBindingSize,
				Usage: wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
			})
			if bufErr != nil {
				return bufErr
			}
			provider.SetBuffer(binding, buf)
		}
		bindGroupEntries[i] = wgpu.BindGroupEntry{
			Binding: entry.Binding,
			Buffer:  buf,
			Offset:  0,
			Size:    wgpu.WholeSize,
		}
	}

	bindGroup, err := b.device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:   provider.Label() + " Bind Group",
		Layout:  layout,
		Entries: bindGroupEntries,
	})
	if err != nil {
		return err
	}
	provider.SetBindGroup(bindGroup)

	return nil
}

func (b *wgpuRendererBackendImpl) UpdateDynamicVertexBuffer(provider bind_group_provider.BindGroupProvider, data []byte, vertexCount int) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	provider.SetVertexCount(vertexCount)
	if len(data) == 0 {
		return nil
	}

	if provider.VertexBuffer() == nil || provider.VertexBufferSize() < uint64(len(data)) {
		if old := provider.VertexBuffer(); old != nil {
			old.Release()
		}
		// Grow geometrically so steady-state frames never reallocate.
		size := provider.VertexBufferSize()
		if size == 0 {
			size = 4096
		}
		for size < uint64(len(data)) {
			size *= 2
		}
		buf, err := b.device.CreateBuffer(&wgpu.BufferDescriptor{
			Label: provider.Label() + " Dynamic Vertex Buffer",
			Size:  size,
			Usage: wgpu.BufferUsageVertex | wgpu.BufferUsageCopyDst,
		})
		if err != nil {
			return err
		}
		provider.SetVertexBuffer(buf, size)
	}

	b.queue.WriteBuffer(provider.VertexBuffer(), 0, data)
	return nil
}

func (b *wgpuRendererBackendImpl) WriteBuffers(writes []bind_group_provider.BufferWrite) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, w := range writes {
		buf := w.Provider.Buffer(w.Binding)
		if buf == nil {
			continue
		}
		b.queue.WriteBuffer(buf, w.Offset, w.Data)
	}
}

// classifySurfaceError maps backend surface errors onto the renderer's
// sentinel errors. Unrecognized errors pass through unchanged.
func classifySurfaceError(err error) error {
	if err == nil {
		return nil
	}
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "out of memory") || strings.Contains(msg, "outofmemory"):
		return fmt.Errorf("%w: %v", ErrSurfaceOutOfMemory, err)
	case strings.Contains(msg, "outdated"):
		return fmt.Errorf("%w: %v", ErrSurfaceOutdated, err)
	case strings.Contains(msg, "lost"):
		return fmt.Errorf("%w: %v", ErrSurfaceLost, err)
	case strings.Contains(msg, "timeout") || strings.Contains(msg, "timed out"):
		return fmt.Errorf("%w: %v", ErrSurfaceOutdated, err)
	default:
		return err
	}
}

func (b *wgpuRendererBackendImpl) BeginFrame() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	// If a previous frame's surface texture is still held, avoid acquiring
	// another one. Prevents wgpu-native validation errors like "Surface
	// image is already acquired" when frames overlap.
	if b.frameSurface != nil {
		return fmt.Errorf("previous frame surface not yet presented")
	}

	surfaceTexture, err := b.surface.GetCurrentTexture()
	if err != nil {
		return classifySurfaceError(err)
	}

	view, err := surfaceTexture.CreateView(nil)
	if err != nil {
		surfaceTexture.Release()
		return err
	}

	encoder, err := b.device.CreateCommandEncoder(nil)
	if err != nil {
		view.Release()
		surfaceTexture.Release()
		return err
	}

	pass := encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{
			{
				View:       view,
				LoadOp:     wgpu.LoadOpClear,
				StoreOp:    wgpu.StoreOpStore,
				ClearValue: b.clearColor,
			},
		},
		DepthStencilAttachment: &wgpu.RenderPassDepthStencilAttachment{
			View:            b.depthTextureView,
			DepthLoadOp:     wgpu.LoadOpClear,
			DepthStoreOp:    wgpu.StoreOpDiscard,
			DepthClearValue: 1.0,
		},
	})

	b.frameEncoder = encoder
	b.framePass = pass
	b.frameSurface = surfaceTexture
	b.frameView = view

	return nil
}

func (b *wgpuRendererBackendImpl) DrawCall(
	p pipeline.Pipeline,
	meshProvider bind_group_provider.BindGroupProvider,
	bindGroups []bind_group_provider.BindGroupProvider,
) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.framePass == nil || meshProvider.VertexBuffer() == nil || meshProvider.IndexBuffer() == nil {
		return
	}

	b.framePass.SetPipeline(p.Pipeline())
	for i, bg := range bindGroups {
		b.framePass.SetBindGroup(uint32(i), bg.BindGroup(), nil)
	}
	b.framePass.SetVertexBuffer(0, meshProvider.VertexBuffer(), 0, wgpu.WholeSize)
	b.framePass.SetIndexBuffer(meshProvider.IndexBuffer(), wgpu.IndexFormatUint32, 0, wgpu.WholeSize)
	b.framePass.DrawIndexed(uint32(meshProvider.IndexCount()), 1, 0, 0, 0)
}

func (b *wgpuRendererBackendImpl) DrawEdges(
	p pipeline.Pipeline,
	meshProvider bind_group_provider.BindGroupProvider,
	bindGroups []bind_group_provider.BindGroupProvider,
) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.framePass == nil || meshProvider.VertexBuffer() == nil || meshProvider.EdgeIndexBuffer() == nil {
		return
	}

	b.framePass.SetPipeline(p.Pipeline())
	for i, bg := range bindGroups {
		b.framePass.SetBindGroup(uint32(i), bg.BindGroup(), nil)
	}
	b.framePass.SetVertexBuffer(0, meshProvider.VertexBuffer(), 0, wgpu.WholeSize)
	b.framePass.SetIndexBuffer(meshProvider.EdgeIndexBuffer(), wgpu.IndexFormatUint32, 0, wgpu.WholeSize)
	b.framePass.DrawIndexed(uint32(meshProvider.EdgeIndexCount()), 1, 0, 0, 0)
}

func (b *wgpuRendererBackendImpl) BeginOverlayPass() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.framePass == nil || b.frameEncoder == nil {
		return
	}

	b.framePass.End()

	// The overlay pass loads the 3D result instead of clearing, and carries
	// no depth attachment so 2D quads never fight the scene's depth buffer.
	b.framePass = b.frameEncoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{
			{
				View:    b.frameView,
				LoadOp:  wgpu.LoadOpLoad,
				StoreOp: wgpu.StoreOpStore,
			},
		},
	})
}

func (b *wgpuRendererBackendImpl) DrawOverlay(p pipeline.Pipeline, provider bind_group_provider.BindGroupProvider) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.framePass == nil || provider.VertexBuffer() == nil || provider.VertexCount() == 0 {
		return
	}

	b.framePass.SetPipeline(p.Pipeline())
	b.framePass.SetVertexBuffer(0, provider.VertexBuffer(), 0, wgpu.WholeSize)
	b.framePass.Draw(uint32(provider.VertexCount()), 1, 0, 0)
}

func (b *wgpuRendererBackendImpl) EndFrame() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.framePass == nil || b.frameEncoder == nil {
		return
	}

	b.framePass.End()

	commandBuffer, err := b.frameEncoder.Finish(nil)
	if err != nil {
		b.frameEncoder.Release()
		b.frameView.Release()
		b.frameSurface.Release()
		b.frameEncoder = nil
		b.framePass = nil
		b.frameSurface = nil
		b.frameView = nil
		return
	}

	b.queue.Submit(commandBuffer)

	commandBuffer.Release()
	b.frameEncoder.Release()
	b.frameEncoder = nil
	b.framePass = nil
}

func (b *wgpuRendererBackendImpl) Present() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.frameSurface == nil {
		return
	}

	b.surface.Present()

	if b.frameView != nil {
		b.frameView.Release()
		b.frameView = nil
	}
	b.frameSurface.Release()
	b.frameSurface = nil
}

func (b *wgpuRendererBackendImpl) Release() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.depthTextureView != nil {
		b.depthTextureView.Release()
		b.depthTextureView = nil
	}
	if b.depthTexture != nil {
		b.depthTexture.Release()
		b.depthTexture = nil
	}
	if b.device != nil {
		b.device.Release()
		b.device = nil
	}
	if b.adapter != nil {
		b.adapter.Release()
		b.adapter = nil
	}
	if b.surface != nil {
		b.surface.Release()
		b.surface = nil
	}
	if b.instance != nil {
		b.instance.Release()
		b.instance = nil
	}
}

func (b *wgpuRendererBackendImpl) Device() *wgpu.Device {
	return b.device
}

func (b *wgpuRendererBackendImpl) Queue() *wgpu.Queue {
	return b.queue
}

func (b *wgpuRendererBackendImpl) Instance() *wgpu.Instance {
	return b.instance
}

func (b *wgpuRendererBackendImpl) Adapter() *wgpu.Adapter {
	return b.adapter
}

func (b *wgpuRendererBackendImpl) Surface() *wgpu.Surface {
	return b.surface
}
