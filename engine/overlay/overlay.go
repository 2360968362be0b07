// Package overlay builds the 2D geometry for the performance panel drawn
// on top of the 3D scene: a translucent backdrop, an FPS history graph,
// and CPU/memory utilization bars. Output is a triangle list in normalized
// device coordinates, rebuilt each frame and streamed into a dynamic
// vertex buffer.
package overlay

import (
	"github.com/Carmen-Shannon/objview/common"
	"github.com/Carmen-Shannon/objview/engine/perf"
)

// GPUOverlayVertex is one overlay vertex: 2D NDC position plus RGBA color.
// Matches the WGSL OverlayVertexInput struct layout exactly. Size: 24 bytes.
type GPUOverlayVertex struct {
	Position [2]float32 // offset 0: NDC position (8 bytes)
	Color    [4]float32 // offset 8: RGBA color (16 bytes)
}

// GPUOverlayVertexSize is the byte size of GPUOverlayVertex in the vertex buffer.
const GPUOverlayVertexSize = 24

// VerticesToBytes reinterprets an overlay vertex slice as raw bytes for upload.
//
// Parameters:
//   - vertices: the vertex data to reinterpret
//
// Returns:
//   - []byte: the raw bytes backing the slice
func VerticesToBytes(vertices []GPUOverlayVertex) []byte {
	return common.SliceToBytes(vertices)
}

// Panel layout in logical pixels, anchored to the top-left corner.
const (
	panelX      = 10.0
	panelY      = 10.0
	panelWidth  = 220.0
	panelHeight = 120.0
	panelInset  = 6.0

	graphHeight = 70.0
	barHeight   = 12.0
	barGap      = 6.0

	// graphCeilingFPS is the FPS value that reaches the top of the graph;
	// faster samples clip to full height.
	graphCeilingFPS = 120.0
)

var (
	backdropColor = [4]float32{0.0, 0.0, 0.0, 0.55}
	graphColor    = [4]float32{0.3, 0.9, 0.3, 0.9}
	trackColor    = [4]float32{1.0, 1.0, 1.0, 0.15}
	cpuColor      = [4]float32{0.95, 0.6, 0.15, 0.9}
	memColor      = [4]float32{0.3, 0.55, 0.95, 0.9}
)

// Build produces the overlay triangle list for one frame.
//
// Parameters:
//   - stats: the performance snapshot to visualize
//   - width, height: framebuffer size in pixels
//
// Returns:
//   - []GPUOverlayVertex: six vertices per quad, or nil for a zero-area framebuffer
func Build(stats perf.Stats, width, height int) []GPUOverlayVertex {
	if width <= 0 || height <= 0 {
		return nil
	}

	b := &builder{width: float32(width), height: float32(height)}

	b.quad(panelX, panelY, panelX+panelWidth, panelY+panelHeight, backdropColor)

	graphX0 := float32(panelX + panelInset)
	graphY0 := float32(panelY + panelInset)
	graphX1 := float32(panelX + panelWidth - panelInset)
	graphY1 := graphY0 + graphHeight
	b.quad(graphX0, graphY0, graphX1, graphY1, trackColor)
	b.fpsGraph(stats.FPSHistory, graphX0, graphY0, graphX1, graphY1)

	cpuY0 := graphY1 + barGap
	b.bar(stats.CPUPercent/100, graphX0, cpuY0, graphX1, cpuY0+barHeight, cpuColor)

	memY0 := cpuY0 + barHeight + barGap
	b.bar(stats.MemUsedPercent/100, graphX0, memY0, graphX1, memY0+barHeight, memColor)

	return b.vertices
}

type builder struct {
	width    float32
	height   float32
	vertices []GPUOverlayVertex
}

// ndc converts pixel coordinates (origin top-left, y down) to NDC
// (origin center, y up).
func (b *builder) ndc(x, y float32) [2]float32 {
	return [2]float32{
		x/b.width*2 - 1,
		1 - y/b.height*2,
	}
}

// quad appends two triangles covering the pixel rectangle (x0,y0)-(x1,y1).
func (b *builder) quad(x0, y0, x1, y1 float32, color [4]float32) {
	tl := b.ndc(x0, y0)
	tr := b.ndc(x1, y0)
	bl := b.ndc(x0, y1)
	br := b.ndc(x1, y1)
	b.vertices = append(b.vertices,
		GPUOverlayVertex{Position: tl, Color: color},
		GPUOverlayVertex{Position: bl, Color: color},
		GPUOverlayVertex{Position: br, Color: color},
		GPUOverlayVertex{Position: tl, Color: color},
		GPUOverlayVertex{Position: br, Color: color},
		GPUOverlayVertex{Position: tr, Color: color},
	)
}

// bar appends a track plus a fill quad whose width is proportional to
// fraction, clamped to [0, 1].
func (b *builder) bar(fraction float64, x0, y0, x1, y1 float32, color [4]float32) {
	b.quad(x0, y0, x1, y1, trackColor)

	f := common.Clamp(float32(fraction), 0, 1)
	if f <= 0 {
		return
	}
	b.quad(x0, y0, x0+(x1-x0)*f, y1, color)
}

// fpsGraph appends one column per history sample, left to right, scaled
// against graphCeilingFPS.
func (b *builder) fpsGraph(history []float64, x0, y0, x1, y1 float32) {
	if len(history) == 0 {
		return
	}
	columnWidth := (x1 - x0) / float32(len(history))
	for i, sample := range history {
		f := common.Clamp(float32(sample/graphCeilingFPS), 0, 1)
		if f <= 0 {
			continue
		}
		cx0 := x0 + float32(i)*columnWidth
		cx1 := cx0 + columnWidth
		top := y1 - (y1-y0)*f
		b.quad(cx0, top, cx1, y1, graphColor)
	}
}
