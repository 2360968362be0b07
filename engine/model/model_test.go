package model

import (
	"math"
	"testing"
	"unsafe"
)

const epsilon = 1e-5

// unitCubeData returns an 8-vertex, 12-triangle unit cube spanning
// (0,0,0) to (1,1,1) with no normals, exercising synthesis.
func unitCubeData() MeshData {
	return MeshData{
		Positions: [][3]float32{
			{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0},
			{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1},
		},
		Indices: []uint32{
			0, 2, 1, 0, 3, 2, // back (-Z)
			4, 5, 6, 4, 6, 7, // front (+Z)
			0, 1, 5, 0, 5, 4, // bottom (-Y)
			3, 7, 6, 3, 6, 2, // top (+Y)
			0, 4, 7, 0, 7, 3, // left (-X)
			1, 2, 6, 1, 6, 5, // right (+X)
		},
	}
}

func TestValidateRejectsOutOfRangeIndex(t *testing.T) {
	data := MeshData{
		Positions: [][3]float32{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
		Indices:   []uint32{0, 1, 3},
	}
	if err := data.Validate(); err == nil {
		t.Error("expected out-of-range index error")
	}
	if _, err := NewMesh("bad", data); err == nil {
		t.Error("NewMesh must reject invalid data")
	}
}

func TestValidateRejectsEmptyGeometry(t *testing.T) {
	cases := map[string]MeshData{
		"no vertices":       {},
		"two vertices":      {Positions: [][3]float32{{0, 0, 0}, {1, 0, 0}}},
		"too few indices":   {Positions: [][3]float32{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}, Indices: []uint32{0, 1}},
		"indices no vertex": {Indices: []uint32{0, 1, 2}},
	}
	for name, data := range cases {
		if err := data.Validate(); err == nil {
			t.Errorf("%s: expected validation error", name)
		}
		if _, err := NewMesh(name, data); err == nil {
			t.Errorf("%s: NewMesh must reject empty geometry", name)
		}
	}
}

func TestValidateRejectsNormalCountMismatch(t *testing.T) {
	data := MeshData{
		Positions: [][3]float32{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
		Normals:   [][3]float32{{0, 0, 1}},
	}
	if err := data.Validate(); err == nil {
		t.Error("expected normal count mismatch error")
	}
}

func TestIndexSynthesisDropsTrailingVertices(t *testing.T) {
	// Eight positions and no indices: two triangles, two dropped vertices.
	positions := make([][3]float32, 8)
	for i := range positions {
		positions[i] = [3]float32{float32(i), 0, float32(i % 3)}
	}
	m, err := NewMesh("packed", MeshData{Positions: positions})
	if err != nil {
		t.Fatalf("NewMesh: %v", err)
	}
	if got := len(m.Indices()); got != 6 {
		t.Errorf("synthesized %d indices, want 6", got)
	}
	if m.TriangleCount() != 2 {
		t.Errorf("triangle count = %d, want 2", m.TriangleCount())
	}
	for i, idx := range m.Indices() {
		if int(idx) != i {
			t.Errorf("index %d = %d, want sequential", i, idx)
		}
	}
}

func TestExplicitIndicesTruncatedToTriangles(t *testing.T) {
	data := MeshData{
		Positions: [][3]float32{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {1, 1, 0}},
		Indices:   []uint32{0, 1, 2, 3, 1},
	}
	m, err := NewMesh("ragged", data)
	if err != nil {
		t.Fatalf("NewMesh: %v", err)
	}
	if got := len(m.Indices()); got != 3 {
		t.Errorf("kept %d indices, want 3", got)
	}
}

func TestSynthesizedNormalsAreUnitLength(t *testing.T) {
	m, err := NewMesh("cube", unitCubeData())
	if err != nil {
		t.Fatalf("NewMesh: %v", err)
	}
	for i, v := range m.Vertices() {
		n := v.Normal
		length := math.Sqrt(float64(n[0]*n[0] + n[1]*n[1] + n[2]*n[2]))
		if math.Abs(length-1) > epsilon {
			t.Errorf("vertex %d normal length = %v, want 1", i, length)
		}
	}
}

func TestCubeCornerNormalsPointOutward(t *testing.T) {
	m, err := NewMesh("cube", unitCubeData())
	if err != nil {
		t.Fatalf("NewMesh: %v", err)
	}
	// Each cube corner's accumulated normal points away from the center.
	for i, v := range m.Vertices() {
		cx := v.Position[0] - 0.5
		cy := v.Position[1] - 0.5
		cz := v.Position[2] - 0.5
		dot := v.Normal[0]*cx + v.Normal[1]*cy + v.Normal[2]*cz
		if dot <= 0 {
			t.Errorf("vertex %d normal %v points inward", i, v.Normal)
		}
	}
}

func TestDegenerateTriangleNormalFallback(t *testing.T) {
	// All three vertices collinear: zero cross product everywhere.
	data := MeshData{
		Positions: [][3]float32{{0, 0, 0}, {1, 0, 0}, {2, 0, 0}},
		Indices:   []uint32{0, 1, 2},
	}
	m, err := NewMesh("degenerate", data)
	if err != nil {
		t.Fatalf("NewMesh: %v", err)
	}
	for i, v := range m.Vertices() {
		if v.Normal != [3]float32{0, 1, 0} {
			t.Errorf("vertex %d normal = %v, want +Y fallback", i, v.Normal)
		}
	}
}

func TestNormalAccumulationIgnoresTriangleArea(t *testing.T) {
	// Vertex 0 is shared by a large +Z triangle and a tiny -Y triangle.
	// Each face contributes its unit normal regardless of area, so the
	// accumulated normal bisects the two directions.
	data := MeshData{
		Positions: [][3]float32{
			{0, 0, 0}, {10, 0, 0}, {0, 10, 0},
			{0.01, 0, 0}, {0, 0, 0.01},
		},
		Indices: []uint32{0, 1, 2, 0, 3, 4},
	}
	m, err := NewMesh("two-faces", data)
	if err != nil {
		t.Fatalf("NewMesh: %v", err)
	}
	want := [3]float32{0, -float32(math.Sqrt2) / 2, float32(math.Sqrt2) / 2}
	got := m.Vertices()[0].Normal
	for a := 0; a < 3; a++ {
		if math.Abs(float64(got[a]-want[a])) > 1e-4 {
			t.Fatalf("shared vertex normal = %v, want %v", got, want)
		}
	}
}

func TestProvidedNormalsPreserved(t *testing.T) {
	data := MeshData{
		Positions: [][3]float32{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
		Normals:   [][3]float32{{0, 0, 1}, {0, 0, 1}, {0, 0, 1}},
		Indices:   []uint32{0, 1, 2},
	}
	m, err := NewMesh("flat", data)
	if err != nil {
		t.Fatalf("NewMesh: %v", err)
	}
	for i, v := range m.Vertices() {
		if v.Normal != [3]float32{0, 0, 1} {
			t.Errorf("vertex %d normal = %v, want provided +Z", i, v.Normal)
		}
	}
}

func TestParallelNormalsMatchSerial(t *testing.T) {
	// A grid large enough to cross the parallel threshold. Both paths must
	// produce identical accumulations up to float ordering.
	side := 120 // (side-1)^2 * 2 triangles > parallelNormalThreshold
	positions := make([][3]float32, 0, side*side)
	for y := 0; y < side; y++ {
		for x := 0; x < side; x++ {
			fx, fy := float32(x), float32(y)
			positions = append(positions, [3]float32{fx, float32(math.Sin(float64(fx * 0.3))), fy})
		}
	}
	var indices []uint32
	for y := 0; y < side-1; y++ {
		for x := 0; x < side-1; x++ {
			i0 := uint32(y*side + x)
			i1 := i0 + 1
			i2 := i0 + uint32(side)
			i3 := i2 + 1
			indices = append(indices, i0, i2, i1, i1, i2, i3)
		}
	}

	parallel := synthesizeNormals(positions, indices)

	serial := make([][3]float32, len(positions))
	acc := make([][3]float32, len(positions))
	accumulateFaceNormals(acc, positions, indices)
	for i, n := range acc {
		length := float32(math.Sqrt(float64(n[0]*n[0] + n[1]*n[1] + n[2]*n[2])))
		if length < 1e-8 {
			serial[i] = [3]float32{0, 1, 0}
			continue
		}
		serial[i] = [3]float32{n[0] / length, n[1] / length, n[2] / length}
	}

	for i := range serial {
		for a := 0; a < 3; a++ {
			if math.Abs(float64(parallel[i][a]-serial[i][a])) > 1e-4 {
				t.Fatalf("vertex %d axis %d: parallel %v vs serial %v", i, a, parallel[i], serial[i])
			}
		}
	}
}

func TestEdgeIndices(t *testing.T) {
	m, err := NewMesh("tri", MeshData{
		Positions: [][3]float32{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
		Indices:   []uint32{0, 1, 2},
	})
	if err != nil {
		t.Fatalf("NewMesh: %v", err)
	}
	want := []uint32{0, 1, 1, 2, 2, 0}
	got := m.EdgeIndices()
	if len(got) != len(want) {
		t.Fatalf("edge indices length = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("edge index %d = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestCubeEndToEnd(t *testing.T) {
	m, err := NewMesh("cube", unitCubeData())
	if err != nil {
		t.Fatalf("NewMesh: %v", err)
	}
	if got := len(m.Vertices()); got != 8 {
		t.Errorf("vertex count = %d, want 8", got)
	}
	if got := len(m.Indices()); got != 36 {
		t.Errorf("index count = %d, want 36", got)
	}
	if got := len(m.EdgeIndices()); got != 72 {
		t.Errorf("edge index count = %d, want 72", got)
	}
	min, max := m.Bounds()
	if min != [3]float32{0, 0, 0} || max != [3]float32{1, 1, 1} {
		t.Errorf("bounds = %v..%v, want (0,0,0)..(1,1,1)", min, max)
	}
	for _, v := range m.Vertices() {
		if v.Color != DefaultVertexColor {
			t.Errorf("vertex color = %v, want default %v", v.Color, DefaultVertexColor)
		}
	}
}

func TestPlaceholderTriangle(t *testing.T) {
	m := PlaceholderTriangle()
	if m == nil {
		t.Fatal("placeholder is nil")
	}
	if m.TriangleCount() != 1 {
		t.Errorf("placeholder triangles = %d, want 1", m.TriangleCount())
	}
	for _, v := range m.Vertices() {
		if v.Normal != [3]float32{0, 0, 1} {
			t.Errorf("placeholder normal = %v, want +Z", v.Normal)
		}
	}
}

func TestGPUVertexLayout(t *testing.T) {
	var v GPUVertex
	if got := unsafe.Sizeof(v); got != GPUVertexSize {
		t.Errorf("sizeof GPUVertex = %d, want %d", got, GPUVertexSize)
	}
	v = GPUVertex{
		Position: [3]float32{1, 2, 3},
		Normal:   [3]float32{0, 1, 0},
		Color:    [3]float32{0.5, 0.5, 0.5},
	}
	buf := v.Marshal()
	if len(buf) != GPUVertexSize {
		t.Fatalf("Marshal length = %d, want %d", len(buf), GPUVertexSize)
	}
	bulk := VerticesToBytes([]GPUVertex{v})
	if len(bulk) != GPUVertexSize {
		t.Fatalf("VerticesToBytes length = %d, want %d", len(bulk), GPUVertexSize)
	}
	for i := range buf {
		if buf[i] != bulk[i] {
			t.Fatalf("byte %d: Marshal %d != VerticesToBytes %d", i, buf[i], bulk[i])
		}
	}
}
