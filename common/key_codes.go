package common

// Virtual key codes for cross-platform input handling.
// These values match GLFW key codes which use ASCII values for printable keys.
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Key
const (
	KeyF = 70 // F key (ASCII)
	KeyO = 79 // O key (ASCII)
	KeyQ = 81 // Q key (ASCII)
	KeyR = 82 // R key (ASCII)
	KeyS = 83 // S key (ASCII)
	KeyW = 87 // W key (ASCII)

	KeyEsc = 256 // Escape key (GLFW)
)
