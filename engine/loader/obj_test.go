package loader

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseTriangle(t *testing.T) {
	src := `
# simple triangle
v 0 0 0
v 1 0 0
v 0 1 0
f 1 2 3
`
	data, err := ParseOBJ(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ParseOBJ: %v", err)
	}
	if len(data.Positions) != 3 {
		t.Errorf("positions = %d, want 3", len(data.Positions))
	}
	if len(data.Normals) != 0 {
		t.Errorf("normals = %d, want none (synthesized later)", len(data.Normals))
	}
	want := []uint32{0, 1, 2}
	for i, idx := range data.Indices {
		if idx != want[i] {
			t.Errorf("index %d = %d, want %d", i, idx, want[i])
		}
	}
}

func TestParseWithNormals(t *testing.T) {
	src := `
v 0 0 0
v 1 0 0
v 0 1 0
vn 0 0 1
f 1//1 2//1 3//1
`
	data, err := ParseOBJ(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ParseOBJ: %v", err)
	}
	if len(data.Normals) != len(data.Positions) {
		t.Fatalf("normals = %d, positions = %d, want equal", len(data.Normals), len(data.Positions))
	}
	for i, n := range data.Normals {
		if n != [3]float32{0, 0, 1} {
			t.Errorf("normal %d = %v, want +Z", i, n)
		}
	}
}

func TestParseFullFaceForm(t *testing.T) {
	// v/vt/vn form; texture coordinates are skipped but must not break parsing.
	src := `
v 0 0 0
v 1 0 0
v 0 1 0
vt 0 0
vt 1 0
vt 0 1
vn 0 0 1
f 1/1/1 2/2/1 3/3/1
`
	data, err := ParseOBJ(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ParseOBJ: %v", err)
	}
	if len(data.Indices) != 3 {
		t.Errorf("indices = %d, want 3", len(data.Indices))
	}
}

func TestQuadFanTriangulation(t *testing.T) {
	src := `
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
f 1 2 3 4
`
	data, err := ParseOBJ(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ParseOBJ: %v", err)
	}
	want := []uint32{0, 1, 2, 0, 2, 3}
	if len(data.Indices) != len(want) {
		t.Fatalf("indices = %d, want %d", len(data.Indices), len(want))
	}
	for i := range want {
		if data.Indices[i] != want[i] {
			t.Errorf("index %d = %d, want %d", i, data.Indices[i], want[i])
		}
	}
}

func TestNegativeIndices(t *testing.T) {
	src := `
v 0 0 0
v 1 0 0
v 0 1 0
f -3 -2 -1
`
	data, err := ParseOBJ(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ParseOBJ: %v", err)
	}
	want := []uint32{0, 1, 2}
	for i := range want {
		if data.Indices[i] != want[i] {
			t.Errorf("index %d = %d, want %d", i, data.Indices[i], want[i])
		}
	}
}

func TestDedupSharedVertices(t *testing.T) {
	// Two triangles sharing an edge with identical position/normal pairs
	// must reuse output vertices.
	src := `
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
vn 0 0 1
f 1//1 2//1 3//1
f 1//1 3//1 4//1
`
	data, err := ParseOBJ(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ParseOBJ: %v", err)
	}
	if len(data.Positions) != 4 {
		t.Errorf("positions = %d, want 4 after dedup", len(data.Positions))
	}
	if len(data.Indices) != 6 {
		t.Errorf("indices = %d, want 6", len(data.Indices))
	}
}

func TestDistinctNormalsSplitVertices(t *testing.T) {
	// Same position with two different normals is two output vertices.
	src := `
v 0 0 0
v 1 0 0
v 0 1 0
vn 0 0 1
vn 1 0 0
f 1//1 2//1 3//1
f 1//2 2//1 3//1
`
	data, err := ParseOBJ(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ParseOBJ: %v", err)
	}
	if len(data.Positions) != 4 {
		t.Errorf("positions = %d, want 4 (one split vertex)", len(data.Positions))
	}
}

func TestMalformedInput(t *testing.T) {
	cases := map[string]string{
		"short vertex":       "v 1 2\nf 1 1 1\n",
		"bad float":          "v a b c\n",
		"short face":         "v 0 0 0\nv 1 0 0\nf 1 2\n",
		"index out of range": "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 9\n",
		"zero index":         "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 0 1 2\n",
		"bad face element":   "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1/2/3/4 2 3\n",
	}
	for name, src := range cases {
		if _, err := ParseOBJ(strings.NewReader(src)); err == nil {
			t.Errorf("%s: expected parse error", name)
		}
	}
}

func TestFacelessFileRejected(t *testing.T) {
	cases := map[string]string{
		"vertices only":   "v 0 0 0\nv 1 0 0\n",
		"empty input":     "",
		"comments only":   "# nothing here\n",
		"normals no face": "v 0 0 0\nvn 0 0 1\n",
	}
	for name, src := range cases {
		if _, err := ParseOBJ(strings.NewReader(src)); err == nil {
			t.Errorf("%s: expected error for geometry without faces", name)
		}
	}
}

func TestIgnoredDirectives(t *testing.T) {
	src := `
mtllib scene.mtl
o thing
g group1
s 1
usemtl shiny
v 0 0 0
v 1 0 0
v 0 1 0
f 1 2 3
`
	data, err := ParseOBJ(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ParseOBJ: %v", err)
	}
	if len(data.Indices) != 3 {
		t.Errorf("indices = %d, want 3", len(data.Indices))
	}
}

func TestLoadOBJ(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tri.obj")
	content := "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	data, err := LoadOBJ(path)
	if err != nil {
		t.Fatalf("LoadOBJ: %v", err)
	}
	if len(data.Positions) != 3 {
		t.Errorf("positions = %d, want 3", len(data.Positions))
	}
	if _, err := LoadOBJ(filepath.Join(t.TempDir(), "missing.obj")); err == nil {
		t.Error("expected error for missing file")
	}
}
