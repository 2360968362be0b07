package shader

import (
	"strings"
	"testing"

	"github.com/Carmen-Shannon/objview/engine/model"
	"github.com/Carmen-Shannon/objview/engine/overlay"
)

func TestDescriptorsReferenceRealEntryPoints(t *testing.T) {
	for _, d := range []Descriptor{Mesh(), MeshWire(), Overlay()} {
		if !strings.Contains(d.Source, "fn "+d.VertexEntry) {
			t.Errorf("%s: vertex entry %q not found in source", d.Key, d.VertexEntry)
		}
		if !strings.Contains(d.Source, "fn "+d.FragmentEntry) {
			t.Errorf("%s: fragment entry %q not found in source", d.Key, d.FragmentEntry)
		}
	}
}

func TestMeshVertexLayoutMatchesGPUVertex(t *testing.T) {
	layouts := Mesh().VertexLayouts
	if len(layouts) != 1 {
		t.Fatalf("mesh vertex layouts = %d, want 1", len(layouts))
	}
	l := layouts[0]
	if l.ArrayStride != model.GPUVertexSize {
		t.Errorf("stride = %d, want %d", l.ArrayStride, model.GPUVertexSize)
	}
	if len(l.Attributes) != 3 {
		t.Fatalf("attributes = %d, want 3", len(l.Attributes))
	}
	wantOffsets := []uint64{0, 12, 24}
	for i, attr := range l.Attributes {
		if attr.Offset != wantOffsets[i] {
			t.Errorf("attribute %d offset = %d, want %d", i, attr.Offset, wantOffsets[i])
		}
		if attr.ShaderLocation != uint32(i) {
			t.Errorf("attribute %d location = %d, want %d", i, attr.ShaderLocation, i)
		}
	}
}

func TestOverlayVertexLayoutMatchesGPUOverlayVertex(t *testing.T) {
	l := Overlay().VertexLayouts[0]
	if l.ArrayStride != overlay.GPUOverlayVertexSize {
		t.Errorf("stride = %d, want %d", l.ArrayStride, overlay.GPUOverlayVertexSize)
	}
	if len(l.Attributes) != 2 {
		t.Fatalf("attributes = %d, want 2", len(l.Attributes))
	}
	if l.Attributes[1].Offset != 8 {
		t.Errorf("color offset = %d, want 8", l.Attributes[1].Offset)
	}
}

func TestMeshAndWireShareModule(t *testing.T) {
	m, w := Mesh(), MeshWire()
	if m.Source != w.Source {
		t.Error("wireframe must reuse the mesh module")
	}
	if m.FragmentEntry == w.FragmentEntry {
		t.Error("wireframe must use a distinct fragment entry")
	}
	if len(w.BindGroupLayouts) != len(m.BindGroupLayouts) {
		t.Error("wireframe must share the mesh bind group layouts")
	}
}

func TestOverlayHasNoBindGroups(t *testing.T) {
	if got := len(Overlay().BindGroupLayouts); got != 0 {
		t.Errorf("overlay bind group layouts = %d, want 0", got)
	}
}
