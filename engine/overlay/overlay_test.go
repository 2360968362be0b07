package overlay

import (
	"testing"
	"unsafe"

	"github.com/Carmen-Shannon/objview/engine/perf"
)

func TestBuildZeroAreaFramebuffer(t *testing.T) {
	if got := Build(perf.Stats{}, 0, 720); got != nil {
		t.Error("expected nil for zero width")
	}
	if got := Build(perf.Stats{}, 1280, 0); got != nil {
		t.Error("expected nil for zero height")
	}
}

func TestBuildEmptyStats(t *testing.T) {
	verts := Build(perf.Stats{}, 1280, 720)
	// Backdrop, graph track, and two bar tracks: four quads minimum.
	if len(verts) != 4*6 {
		t.Errorf("vertex count = %d, want %d (no fills for zero stats)", len(verts), 4*6)
	}
	if len(verts)%3 != 0 {
		t.Errorf("vertex count %d is not a triangle list", len(verts))
	}
}

func TestBuildWithStats(t *testing.T) {
	stats := perf.Stats{
		FPS:            60,
		CPUPercent:     50,
		MemUsedPercent: 75,
		FPSHistory:     []float64{30, 60, 90, 120},
	}
	verts := Build(stats, 1280, 720)

	// 4 track quads + cpu fill + mem fill + 4 graph columns = 10 quads.
	if len(verts) != 10*6 {
		t.Errorf("vertex count = %d, want %d", len(verts), 10*6)
	}
	for i, v := range verts {
		if v.Position[0] < -1 || v.Position[0] > 1 || v.Position[1] < -1 || v.Position[1] > 1 {
			t.Errorf("vertex %d position %v outside NDC", i, v.Position)
		}
		if v.Color[3] <= 0 || v.Color[3] > 1 {
			t.Errorf("vertex %d alpha = %v out of range", i, v.Color[3])
		}
	}
}

func TestBuildClampsUtilization(t *testing.T) {
	stats := perf.Stats{
		CPUPercent:     250, // clamp to full bar
		MemUsedPercent: -10, // clamp to empty bar
		FPSHistory:     []float64{1e6},
	}
	verts := Build(stats, 1280, 720)
	for i, v := range verts {
		if v.Position[0] < -1 || v.Position[0] > 1 || v.Position[1] < -1 || v.Position[1] > 1 {
			t.Errorf("vertex %d position %v outside NDC after clamping", i, v.Position)
		}
	}
	// Backdrop + graph track + clipped graph column + cpu track + cpu fill
	// + mem track (no fill): 6 quads.
	if len(verts) != 6*6 {
		t.Errorf("vertex count = %d, want %d", len(verts), 6*6)
	}
}

func TestOverlayIsTopLeftAnchored(t *testing.T) {
	verts := Build(perf.Stats{}, 1280, 720)
	for i, v := range verts {
		if v.Position[0] > 0 {
			t.Errorf("vertex %d x = %v, panel should sit in the left half", i, v.Position[0])
		}
		if v.Position[1] < 0 {
			t.Errorf("vertex %d y = %v, panel should sit in the top half", i, v.Position[1])
		}
	}
}

func TestGPUOverlayVertexLayout(t *testing.T) {
	var v GPUOverlayVertex
	if got := unsafe.Sizeof(v); got != GPUOverlayVertexSize {
		t.Errorf("sizeof GPUOverlayVertex = %d, want %d", got, GPUOverlayVertexSize)
	}
	if got := len(VerticesToBytes([]GPUOverlayVertex{v, v})); got != 2*GPUOverlayVertexSize {
		t.Errorf("VerticesToBytes length = %d, want %d", got, 2*GPUOverlayVertexSize)
	}
}
