package window

import (
	"fmt"
	"runtime"

	"github.com/cogentcore/webgpu/wgpu"
)

// Window provides platform windowing and input event handling.
// Wraps the GLFW-backed implementation with a common interface.
type Window interface {
	// SetUpdateCallback sets the function called each message loop iteration.
	//
	// Parameters:
	//   - callback: function to call (or nil to disable)
	SetUpdateCallback(callback func())

	// SetResizeCallback sets the function called when the framebuffer is resized.
	//
	// Parameters:
	//   - callback: function receiving new width and height in pixels
	SetResizeCallback(callback func(width, height int))

	// SetScrollCallback sets the callback for mouse scroll wheel events.
	// GLFW reports wheel motion in line deltas only, so pixel-delta input
	// (camera.ZoomPixels) has no source on this backend.
	//
	// Parameters:
	//   - callback: function receiving scroll delta in lines (positive = up/zoom in)
	SetScrollCallback(callback func(delta float32))

	// SetKeyDownCallback sets the callback for key press events.
	//
	// Parameters:
	//   - callback: function receiving the key code
	SetKeyDownCallback(callback func(keyCode uint32))

	// SetKeyUpCallback sets the callback for key release events.
	//
	// Parameters:
	//   - callback: function receiving the key code
	SetKeyUpCallback(callback func(keyCode uint32))

	// SetLeftMouseDownCallback sets the callback for left mouse button press.
	//
	// Parameters:
	//   - callback: function receiving mouse x, y position
	SetLeftMouseDownCallback(callback func(x, y int32))

	// SetLeftMouseUpCallback sets the callback for left mouse button release.
	//
	// Parameters:
	//   - callback: function receiving mouse x, y position
	SetLeftMouseUpCallback(callback func(x, y int32))

	// SetMouseMoveCallback sets the callback for mouse movement.
	//
	// Parameters:
	//   - callback: function receiving mouse x, y position
	SetMouseMoveCallback(callback func(x, y int32))

	// SetTitle updates the window title bar text.
	//
	// Parameters:
	//   - title: the new title text
	SetTitle(title string)

	// SurfaceDescriptor returns a wgpu.SurfaceDescriptor suitable for creating
	// a WebGPU surface. The descriptor is platform-appropriate (Windows HWND,
	// X11 Xlib, Wayland, macOS Metal) and is created by the wgpuglfw bridge.
	//
	// Returns:
	//   - *wgpu.SurfaceDescriptor: the surface descriptor, or nil if the window is not initialized
	SurfaceDescriptor() *wgpu.SurfaceDescriptor

	// IsRunning returns true if the window is still active.
	//
	// Returns:
	//   - bool: true if window is running, false if closed
	IsRunning() bool

	// RequestClose asks the window to close at the end of the current loop iteration.
	RequestClose()

	// Close closes the window and releases platform resources.
	//
	// Returns:
	//   - error: error if close operation fails
	Close() error

	// ProcessMessages runs the window message loop.
	// Blocks until the window is closed. Calls the update callback each iteration.
	ProcessMessages()

	// Width returns the current framebuffer width in pixels.
	//
	// Returns:
	//   - int: width in pixels
	Width() int

	// Height returns the current framebuffer height in pixels.
	//
	// Returns:
	//   - int: height in pixels
	Height() int
}

// viewerWindow is the implementation of the Window interface.
type viewerWindow struct {
	// title is the window title displayed in the title bar.
	title string

	// width and height track the current framebuffer size in pixels.
	width  int
	height int

	// internalWindow holds the GLFW-specific window data (glfwWindow).
	internalWindow any

	// onUpdate is called each iteration of the message loop (if set).
	onUpdate func()

	// onResize is called when the framebuffer is resized.
	onResize func(width, height int)

	// onScroll is called for mouse wheel events, delta in lines.
	onScroll func(delta float32)

	onKeyDown func(keyCode uint32)
	onKeyUp   func(keyCode uint32)

	onLeftMouseDown func(x, y int32)
	onLeftMouseUp   func(x, y int32)
	onMouseMove     func(x, y int32)
}

var _ Window = &viewerWindow{}

// NewWindow creates a new Window with the specified options.
// Applies default values first, then each option in order.
//
// Parameters:
//   - options: functional options to configure the window
//
// Returns:
//   - Window: the configured window
func NewWindow(options ...WindowBuilderOption) Window {
	w := &viewerWindow{
		title:  "Mesh Viewer",
		width:  1280,
		height: 720,
	}
	for _, opt := range options {
		opt(w)
	}
	if err := newPlatformWindow(w); err != nil {
		panic(fmt.Sprintf("failed to create platform window: %v", err))
	}
	return w
}

func (w *viewerWindow) SetUpdateCallback(callback func()) {
	w.onUpdate = callback
}

func (w *viewerWindow) SetResizeCallback(callback func(width, height int)) {
	w.onResize = callback
}

func (w *viewerWindow) SetScrollCallback(callback func(delta float32)) {
	w.onScroll = callback
}

func (w *viewerWindow) SetKeyDownCallback(callback func(keyCode uint32)) {
	w.onKeyDown = callback
}

func (w *viewerWindow) SetKeyUpCallback(callback func(keyCode uint32)) {
	w.onKeyUp = callback
}

func (w *viewerWindow) SetLeftMouseDownCallback(callback func(x, y int32)) {
	w.onLeftMouseDown = callback
}

func (w *viewerWindow) SetLeftMouseUpCallback(callback func(x, y int32)) {
	w.onLeftMouseUp = callback
}

func (w *viewerWindow) SetMouseMoveCallback(callback func(x, y int32)) {
	w.onMouseMove = callback
}

func (w *viewerWindow) SetTitle(title string) {
	w.title = title
	platformSetTitle(w, title)
}

func (w *viewerWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return platformGetSurfaceDescriptor(w)
}

func (w *viewerWindow) IsRunning() bool {
	return platformIsRunningCheck(w)
}

func (w *viewerWindow) RequestClose() {
	platformRequestClose(w)
}

func (w *viewerWindow) Close() error {
	return platformCloseWindow(w)
}

func (w *viewerWindow) ProcessMessages() {
	for w.IsRunning() {
		if succ := platformProcessMessages(w); !succ {
			break
		}

		if w.onUpdate != nil {
			w.onUpdate()
		}

		runtime.Gosched()
	}
}

func (w *viewerWindow) Width() int {
	return w.width
}

func (w *viewerWindow) Height() int {
	return w.height
}
