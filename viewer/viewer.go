package viewer

import (
	"errors"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/Carmen-Shannon/objview/common"
	"github.com/Carmen-Shannon/objview/config"
	"github.com/Carmen-Shannon/objview/engine/camera"
	"github.com/Carmen-Shannon/objview/engine/light"
	"github.com/Carmen-Shannon/objview/engine/loader"
	"github.com/Carmen-Shannon/objview/engine/menu"
	"github.com/Carmen-Shannon/objview/engine/model"
	"github.com/Carmen-Shannon/objview/engine/overlay"
	"github.com/Carmen-Shannon/objview/engine/perf"
	"github.com/Carmen-Shannon/objview/engine/renderer"
	"github.com/Carmen-Shannon/objview/engine/renderer/bind_group_provider"
	"github.com/Carmen-Shannon/objview/engine/renderer/pipeline"
	"github.com/Carmen-Shannon/objview/engine/renderer/shader"
	"github.com/Carmen-Shannon/objview/engine/window"
	"github.com/Carmen-Shannon/objview/logger"
	"github.com/cogentcore/webgpu/wgpu"
)

const (
	pipelineKeyMesh    = "mesh"
	pipelineKeyWire    = "mesh_wire"
	pipelineKeyOverlay = "overlay"
	titleRefreshFrames = 30
	sceneBindingCamera = 0
	sceneBindingLight  = 1
)

// viewer is the implementation of the Viewer interface. It owns the window,
// renderer, camera, and mesh state, and drives the per-frame render loop.
type viewer struct {
	mu *sync.Mutex

	cfg *config.Config

	window   window.Window
	renderer renderer.Renderer
	camera   camera.Camera
	light    light.Directional
	monitor  *perf.Monitor

	mesh model.Mesh

	meshProvider    bind_group_provider.BindGroupProvider
	sceneProvider   bind_group_provider.BindGroupProvider
	overlayProvider bind_group_provider.BindGroupProvider

	wireframe      bool
	wireframeReady bool
	overlayEnabled bool

	dragging   bool
	lastMouseX int32
	lastMouseY int32

	// pendingMeshPath stages the result of the open-file dialog so mesh
	// loads happen at the top of a frame, never inside one.
	pendingMeshPath string

	// Pre-creation config collected from builder options
	forceSoftwareRenderer bool

	framesSinceTitle int
}

// Viewer is the interactive mesh viewer application. It wires window events
// to the orbit camera, manages mesh loading, and composes the 3D and overlay
// render passes each frame.
type Viewer interface {
	// Run starts the viewer's message loop and blocks until the window closes.
	//
	// Returns:
	//   - error: an error if shutdown cleanup fails
	Run() error

	// Wireframe reports whether wireframe mode is currently enabled.
	//
	// Returns:
	//   - bool: true if wireframe mode is on
	Wireframe() bool

	// OverlayEnabled reports whether the stats overlay is currently shown.
	//
	// Returns:
	//   - bool: true if the overlay is on
	OverlayEnabled() bool

	// QueueMeshLoad stages a mesh file path to be loaded at the top of the
	// next frame. An empty path is ignored.
	//
	// Parameters:
	//   - path: filesystem path to a Wavefront OBJ file
	QueueMeshLoad(path string)
}

var _ Viewer = &viewer{}

// NewViewer creates the viewer application: window, renderer, pipelines,
// camera, and the initial mesh (from config, or the placeholder triangle).
//
// Parameters:
//   - cfg: the resolved application configuration
//   - options: variadic list of ViewerBuilderOption functions
//
// Returns:
//   - Viewer: the constructed viewer, ready to Run
//   - error: an error if GPU pipeline or resource creation fails
func NewViewer(cfg *config.Config, options ...ViewerBuilderOption) (Viewer, error) {
	v := &viewer{
		mu:             &sync.Mutex{},
		cfg:            cfg,
		light:          light.NewDirectional(),
		monitor:        perf.NewMonitor(),
		wireframe:      cfg.Viewer.Wireframe,
		overlayEnabled: cfg.Viewer.Overlay,
	}

	for _, opt := range options {
		opt(v)
	}

	v.window = window.NewWindow(
		window.WithTitle("Mesh Viewer"),
		window.WithWidth(cfg.Graphics.Width),
		window.WithHeight(cfg.Graphics.Height),
	)

	presentMode := renderer.PresentModeVSync
	if !cfg.Graphics.VSync {
		presentMode = renderer.PresentModeUncapped
	}
	v.renderer = renderer.NewRenderer(renderer.BackendTypeWGPU, v.window,
		renderer.WithPresentMode(presentMode),
		renderer.WithForceSoftwareRenderer(v.forceSoftwareRenderer),
	)

	if err := v.registerPipelines(); err != nil {
		return nil, err
	}

	v.meshProvider = bind_group_provider.NewBindGroupProvider("mesh")
	v.overlayProvider = bind_group_provider.NewBindGroupProvider("overlay")
	v.sceneProvider = bind_group_provider.NewBindGroupProvider("scene")
	if err := v.renderer.InitBindGroup(v.sceneProvider, shader.Mesh().BindGroupLayouts[0]); err != nil {
		return nil, fmt.Errorf("failed to create scene bind group: %w", err)
	}

	v.camera = camera.NewCamera(
		camera.WithAspect(float32(v.window.Width()) / float32(v.window.Height())),
	)

	if err := v.setMesh(model.PlaceholderTriangle()); err != nil {
		return nil, err
	}
	if cfg.Viewer.MeshPath != "" {
		v.pendingMeshPath = cfg.Viewer.MeshPath
	}

	return v, nil
}

// registerPipelines compiles the solid, wireframe, and overlay pipelines.
// The wireframe pipeline is a capability probe: failure is logged once and
// the viewer falls back to solid rendering for the rest of the session.
func (v *viewer) registerPipelines() error {
	solid := pipeline.NewPipeline(pipelineKeyMesh, shader.Mesh(),
		pipeline.WithCullMode(wgpu.CullModeBack),
	)
	overlayPipeline := pipeline.NewPipeline(pipelineKeyOverlay, shader.Overlay(),
		pipeline.WithoutDepthStencil(),
		pipeline.WithBlendEnabled(true),
	)
	if err := v.renderer.RegisterPipelines(solid, overlayPipeline); err != nil {
		return fmt.Errorf("failed to register render pipelines: %w", err)
	}

	wire := pipeline.NewPipeline(pipelineKeyWire, shader.MeshWire(),
		pipeline.WithTopology(wgpu.PrimitiveTopologyLineList),
	)
	if err := v.renderer.RegisterPipelines(wire); err != nil {
		logger.Sugar.Warnw("wireframe pipeline unavailable, falling back to solid rendering", "error", err)
		v.wireframeReady = false
		return nil
	}
	v.wireframeReady = true
	return nil
}

func (v *viewer) Run() error {
	v.window.SetResizeCallback(func(width, height int) {
		v.renderer.Resize(width, height)
		if height > 0 {
			v.camera.SetAspect(float32(width) / float32(height))
		}
	})
	v.window.SetScrollCallback(func(delta float32) {
		v.camera.ZoomLines(delta)
	})
	v.window.SetLeftMouseDownCallback(func(x, y int32) {
		v.mu.Lock()
		defer v.mu.Unlock()
		v.dragging = true
		v.lastMouseX = x
		v.lastMouseY = y
	})
	v.window.SetLeftMouseUpCallback(func(x, y int32) {
		v.mu.Lock()
		defer v.mu.Unlock()
		v.dragging = false
	})
	v.window.SetMouseMoveCallback(func(x, y int32) {
		v.mu.Lock()
		dragging := v.dragging
		dx := float32(x - v.lastMouseX)
		dy := float32(y - v.lastMouseY)
		v.lastMouseX = x
		v.lastMouseY = y
		v.mu.Unlock()

		if dragging {
			v.camera.Orbit(dx, dy)
		}
	})
	v.window.SetKeyDownCallback(v.handleKey)
	v.window.SetUpdateCallback(v.frame)

	v.monitor.Start()
	defer v.monitor.Stop()
	defer v.renderer.Release()

	logger.Sugar.Infow("viewer started",
		"width", v.window.Width(),
		"height", v.window.Height(),
		"vsync", v.cfg.Graphics.VSync,
	)

	v.window.ProcessMessages()

	logger.Sugar.Info("viewer shutting down")
	return v.window.Close()
}

func (v *viewer) Wireframe() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.wireframe
}

func (v *viewer) OverlayEnabled() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.overlayEnabled
}

func (v *viewer) QueueMeshLoad(path string) {
	if path == "" {
		return
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	v.pendingMeshPath = path
}

func (v *viewer) handleKey(keyCode uint32) {
	switch keyCode {
	case common.KeyO:
		path, err := menu.OpenMeshDialog()
		if errors.Is(err, menu.ErrCancelled) {
			return
		}
		if err != nil {
			logger.Sugar.Errorw("open dialog failed", "error", err)
			return
		}
		v.QueueMeshLoad(path)
	case common.KeyW:
		v.mu.Lock()
		v.wireframe = !v.wireframe
		wireframe := v.wireframe
		v.mu.Unlock()
		logger.Sugar.Debugw("wireframe toggled", "enabled", wireframe)
	case common.KeyF:
		v.mu.Lock()
		v.overlayEnabled = !v.overlayEnabled
		enabled := v.overlayEnabled
		v.mu.Unlock()
		logger.Sugar.Debugw("overlay toggled", "enabled", enabled)
	case common.KeyR:
		min, max := v.mesh.Bounds()
		v.camera.AutoFit(min, max)
	case common.KeyS:
		v.saveConfig()
	case common.KeyQ, common.KeyEsc:
		v.window.RequestClose()
	}
}

// saveConfig snapshots the current viewer state into the config and writes it
// to a user-chosen path.
func (v *viewer) saveConfig() {
	path, err := menu.SaveConfigDialog()
	if errors.Is(err, menu.ErrCancelled) {
		return
	}
	if err != nil {
		logger.Sugar.Errorw("save dialog failed", "error", err)
		return
	}

	v.mu.Lock()
	v.cfg.Viewer.Wireframe = v.wireframe
	v.cfg.Viewer.Overlay = v.overlayEnabled
	v.cfg.Graphics.Width = v.window.Width()
	v.cfg.Graphics.Height = v.window.Height()
	v.mu.Unlock()

	if err := v.cfg.Save(path); err != nil {
		logger.Sugar.Errorw("failed to save config", "path", path, "error", err)
		menu.ShowError("Save Failed", err.Error())
		return
	}
	logger.Sugar.Infow("config saved", "path", path)
}

// setMesh uploads a mesh's GPU buffers and makes it the rendered mesh.
func (v *viewer) setMesh(m model.Mesh) error {
	vertexData := model.VerticesToBytes(m.Vertices())
	indexData := model.IndicesToBytes(m.Indices())
	edgeData := model.IndicesToBytes(m.EdgeIndices())

	if err := v.renderer.InitMeshBuffers(v.meshProvider, vertexData, indexData, edgeData, len(m.Indices()), len(m.EdgeIndices())); err != nil {
		return fmt.Errorf("failed to upload mesh buffers: %w", err)
	}

	v.mu.Lock()
	v.mesh = m
	v.mu.Unlock()
	return nil
}

// loadMesh parses an OBJ file and swaps it in. A failed parse or upload
// leaves the current mesh untouched and reports the error to the user.
func (v *viewer) loadMesh(path string) {
	data, err := loader.LoadOBJ(path)
	if err != nil {
		logger.Sugar.Errorw("failed to load mesh", "path", path, "error", err)
		menu.ShowError("Load Failed", err.Error())
		return
	}

	m, err := model.NewMesh(filepath.Base(path), data)
	if err != nil {
		logger.Sugar.Errorw("failed to build mesh", "path", path, "error", err)
		menu.ShowError("Load Failed", err.Error())
		return
	}

	if err := v.setMesh(m); err != nil {
		logger.Sugar.Errorw("failed to upload mesh", "path", path, "error", err)
		menu.ShowError("Load Failed", err.Error())
		return
	}

	min, max := m.Bounds()
	v.camera.AutoFit(min, max)

	logger.Sugar.Infow("mesh loaded",
		"path", path,
		"vertices", len(m.Vertices()),
		"triangles", m.TriangleCount(),
	)
	v.refreshTitle()
}

// frame runs once per message-loop iteration on the main thread: consume a
// pending load, write per-frame uniforms, then compose the 3D pass and the
// optional overlay pass into a single submission.
func (v *viewer) frame() {
	v.mu.Lock()
	pending := v.pendingMeshPath
	v.pendingMeshPath = ""
	wireframe := v.wireframe && v.wireframeReady
	overlayEnabled := v.overlayEnabled
	v.mu.Unlock()

	if pending != "" {
		v.loadMesh(pending)
	}

	cameraUniform := v.camera.Uniform()
	lightUniform := v.light.Uniform()
	v.renderer.WriteBuffers([]bind_group_provider.BufferWrite{
		{Provider: v.sceneProvider, Binding: sceneBindingCamera, Data: cameraUniform.ToBytes()},
		{Provider: v.sceneProvider, Binding: sceneBindingLight, Data: lightUniform.ToBytes()},
	})

	if err := v.renderer.BeginFrame(); err != nil {
		switch {
		case errors.Is(err, renderer.ErrSurfaceLost), errors.Is(err, renderer.ErrSurfaceOutdated):
			logger.Sugar.Debugw("surface needs reconfiguration", "error", err)
			v.renderer.Resize(v.window.Width(), v.window.Height())
		case errors.Is(err, renderer.ErrSurfaceOutOfMemory):
			logger.Sugar.Fatalw("device out of memory", "error", err)
		default:
			logger.Sugar.Debugw("frame skipped", "error", err)
		}
		return
	}

	bindGroups := []bind_group_provider.BindGroupProvider{v.sceneProvider}
	if wireframe {
		if err := v.renderer.DrawWireframeCall(pipelineKeyWire, v.meshProvider, bindGroups); err != nil {
			logger.Sugar.Errorw("wireframe draw failed", "error", err)
		}
	} else {
		if err := v.renderer.DrawCall(pipelineKeyMesh, v.meshProvider, bindGroups); err != nil {
			logger.Sugar.Errorw("mesh draw failed", "error", err)
		}
	}

	if overlayEnabled {
		v.drawOverlay()
	}

	v.renderer.EndFrame()
	v.renderer.Present()

	v.monitor.FrameTick()
	v.framesSinceTitle++
	if v.framesSinceTitle >= titleRefreshFrames {
		v.framesSinceTitle = 0
		v.refreshTitle()
	}
}

// drawOverlay builds the stats geometry for this frame and encodes the
// overlay pass. Skipped entirely when the window has no area.
func (v *viewer) drawOverlay() {
	vertices := overlay.Build(v.monitor.Stats(), v.window.Width(), v.window.Height())
	if len(vertices) == 0 {
		return
	}

	if err := v.renderer.UpdateDynamicVertexBuffer(v.overlayProvider, overlay.VerticesToBytes(vertices), len(vertices)); err != nil {
		logger.Sugar.Errorw("failed to update overlay vertex buffer", "error", err)
		return
	}

	v.renderer.BeginOverlayPass()
	if err := v.renderer.DrawOverlay(pipelineKeyOverlay, v.overlayProvider); err != nil {
		logger.Sugar.Errorw("overlay draw failed", "error", err)
	}
}

// refreshTitle updates the window title with the loaded mesh name and the
// smoothed frame rate.
func (v *viewer) refreshTitle() {
	v.mu.Lock()
	name := v.mesh.Name()
	v.mu.Unlock()

	stats := v.monitor.Stats()
	v.window.SetTitle(fmt.Sprintf("Mesh Viewer - %s (%.0f FPS)", name, stats.FPS))
}
