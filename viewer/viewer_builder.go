package viewer

// ViewerBuilderOption is a functional option applied to a viewer during construction via NewViewer.
type ViewerBuilderOption func(*viewer)

// WithForceSoftwareRenderer forces the renderer to use a CPU/software fallback adapter
// instead of hardware GPU acceleration. Useful on machines without a usable GPU driver.
//
// Parameters:
//   - force: true to force the software fallback adapter, false to use hardware (default)
//
// Returns:
//   - ViewerBuilderOption: a function that applies the option to a viewer
func WithForceSoftwareRenderer(force bool) ViewerBuilderOption {
	return func(v *viewer) {
		v.forceSoftwareRenderer = force
	}
}
