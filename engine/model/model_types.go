package model

import (
	"fmt"
	"math"
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/objview/common"
)

// DefaultVertexColor is the flat gray applied when a mesh source carries no
// color data.
var DefaultVertexColor = [3]float32{0.8, 0.8, 0.8}

// normalPool computes vertex normals in parallel for large meshes.
// Dynamic workers spin down after a second of inactivity so the pool costs
// nothing between loads.
var normalPool = worker.NewDynamicWorkerPool(runtime.NumCPU(), 256, 1*time.Second)

// parallelNormalThreshold is the triangle count above which normal synthesis
// is chunked across the worker pool.
const parallelNormalThreshold = 4096

// MeshData is the raw geometry handed to NewMesh by loaders. Normals and
// Indices are optional; missing data is synthesized during mesh construction.
type MeshData struct {
	// Positions holds one entry per vertex.
	Positions [][3]float32

	// Normals holds one entry per vertex when present. Empty means normals
	// are synthesized from face geometry.
	Normals [][3]float32

	// Indices holds triangle-list indices when present. Empty means the
	// positions are treated as a packed triangle list.
	Indices []uint32
}

// Validate checks the mesh data for internal consistency.
//
// Returns:
//   - error: an error describing the first inconsistency found, or nil
func (d *MeshData) Validate() error {
	if len(d.Positions) == 0 {
		return fmt.Errorf("mesh data: no vertices")
	}
	if len(d.Indices) == 0 && len(d.Positions) < 3 {
		return fmt.Errorf("mesh data: %d vertices cannot form a triangle", len(d.Positions))
	}
	if len(d.Indices) > 0 && len(d.Indices) < 3 {
		return fmt.Errorf("mesh data: %d indices cannot form a triangle", len(d.Indices))
	}
	if len(d.Normals) > 0 && len(d.Normals) != len(d.Positions) {
		return fmt.Errorf("mesh data: %d normals for %d positions", len(d.Normals), len(d.Positions))
	}
	for i, idx := range d.Indices {
		if int(idx) >= len(d.Positions) {
			return fmt.Errorf("mesh data: index %d at position %d out of range (%d vertices)", idx, i, len(d.Positions))
		}
	}
	return nil
}

// Mesh is an immutable triangle mesh ready for GPU upload: interleaved
// vertices, a triangle index list, a line-list edge index list for wireframe
// rendering, and an axis-aligned bounding box.
type Mesh interface {
	// Name returns the mesh name (typically the source file base name).
	//
	// Returns:
	//   - string: the mesh name
	Name() string

	// Vertices returns the interleaved vertex data.
	//
	// Returns:
	//   - []GPUVertex: one entry per vertex
	Vertices() []GPUVertex

	// Indices returns the triangle-list indices.
	//
	// Returns:
	//   - []uint32: three entries per triangle
	Indices() []uint32

	// EdgeIndices returns the line-list indices outlining each triangle,
	// used by the wireframe pipeline. Six entries per triangle.
	//
	// Returns:
	//   - []uint32: two entries per line segment
	EdgeIndices() []uint32

	// Bounds returns the axis-aligned bounding box of all vertex positions.
	//
	// Returns:
	//   - min, max: bounding box corners
	Bounds() (min, max [3]float32)

	// TriangleCount returns the number of triangles.
	//
	// Returns:
	//   - int: triangle count
	TriangleCount() int
}

type meshImpl struct {
	name        string
	vertices    []GPUVertex
	indices     []uint32
	edgeIndices []uint32
	boundsMin   [3]float32
	boundsMax   [3]float32
}

var _ Mesh = &meshImpl{}

// NewMesh builds a Mesh from raw geometry. Missing indices are synthesized
// by treating the positions as a packed triangle list; any trailing vertices
// that do not complete a triangle are dropped. Missing normals are computed
// by area-weighted face normal accumulation, with degenerate vertices falling
// back to +Y.
//
// Parameters:
//   - name: the mesh name
//   - data: raw geometry from a loader
//
// Returns:
//   - Mesh: the constructed mesh
//   - error: an error if the data fails validation
func NewMesh(name string, data MeshData) (Mesh, error) {
	if err := data.Validate(); err != nil {
		return nil, err
	}

	indices := data.Indices
	if len(indices) == 0 {
		count := len(data.Positions) - len(data.Positions)%3
		indices = make([]uint32, count)
		for i := range indices {
			indices[i] = uint32(i)
		}
	} else {
		indices = indices[:len(indices)-len(indices)%3]
	}

	normals := data.Normals
	if len(normals) == 0 {
		normals = synthesizeNormals(data.Positions, indices)
	}

	vertices := make([]GPUVertex, len(data.Positions))
	for i, p := range data.Positions {
		vertices[i] = GPUVertex{
			Position: p,
			Normal:   normals[i],
			Color:    DefaultVertexColor,
		}
	}

	m := &meshImpl{
		name:        name,
		vertices:    vertices,
		indices:     indices,
		edgeIndices: buildEdgeIndices(indices),
	}
	m.boundsMin, m.boundsMax = computeBounds(data.Positions)
	return m, nil
}

// PlaceholderTriangle returns the mesh shown before any file is loaded:
// a single triangle around the origin in the XY plane, facing +Z.
//
// Returns:
//   - Mesh: the placeholder mesh
func PlaceholderTriangle() Mesh {
	m, _ := NewMesh("placeholder", MeshData{
		Positions: [][3]float32{
			{0, 0.5, 0},
			{-0.5, -0.5, 0},
			{0.5, -0.5, 0},
		},
		Normals: [][3]float32{
			{0, 0, 1},
			{0, 0, 1},
			{0, 0, 1},
		},
		Indices: []uint32{0, 1, 2},
	})
	return m
}

func (m *meshImpl) Name() string {
	return m.name
}

func (m *meshImpl) Vertices() []GPUVertex {
	return m.vertices
}

func (m *meshImpl) Indices() []uint32 {
	return m.indices
}

func (m *meshImpl) EdgeIndices() []uint32 {
	return m.edgeIndices
}

func (m *meshImpl) Bounds() (min, max [3]float32) {
	return m.boundsMin, m.boundsMax
}

func (m *meshImpl) TriangleCount() int {
	return len(m.indices) / 3
}

// buildEdgeIndices expands a triangle list into a line list covering each
// triangle's three edges. Shared edges are emitted once per owning triangle;
// overdrawing a line is cheaper than deduplicating on load.
func buildEdgeIndices(indices []uint32) []uint32 {
	edges := make([]uint32, 0, len(indices)*2)
	for i := 0; i+2 < len(indices); i += 3 {
		i0, i1, i2 := indices[i], indices[i+1], indices[i+2]
		edges = append(edges, i0, i1, i1, i2, i2, i0)
	}
	return edges
}

// computeBounds returns the axis-aligned bounding box of the positions.
// An empty slice yields a zero box.
func computeBounds(positions [][3]float32) (min, max [3]float32) {
	if len(positions) == 0 {
		return min, max
	}
	min, max = positions[0], positions[0]
	for _, p := range positions[1:] {
		for a := 0; a < 3; a++ {
			if p[a] < min[a] {
				min[a] = p[a]
			}
			if p[a] > max[a] {
				max[a] = p[a]
			}
		}
	}
	return min, max
}

// synthesizeNormals computes per-vertex normals by accumulating each
// referencing triangle's unit face normal and normalizing the sums.
// Vertices referenced only by degenerate triangles, or not referenced at all,
// fall back to +Y. Large meshes are chunked across the worker pool with one
// private accumulator per task, merged after the last chunk completes.
func synthesizeNormals(positions [][3]float32, indices []uint32) [][3]float32 {
	triangles := len(indices) / 3
	acc := make([][3]float32, len(positions))

	if triangles >= parallelNormalThreshold {
		workers := runtime.NumCPU()
		chunk := (triangles + workers - 1) / workers

		partials := make([][][3]float32, 0, workers)
		var wg sync.WaitGroup
		for start := 0; start < triangles; start += chunk {
			end := start + chunk
			if end > triangles {
				end = triangles
			}
			partial := make([][3]float32, len(positions))
			partials = append(partials, partial)

			wg.Add(1)
			lo, hi := start, end
			normalPool.SubmitTask(worker.Task{
				ID: lo,
				Do: func() (any, error) {
					defer wg.Done()
					accumulateFaceNormals(partial, positions, indices[lo*3:hi*3])
					return nil, nil
				},
			})
		}
		wg.Wait()

		for _, partial := range partials {
			for i := range acc {
				acc[i][0] += partial[i][0]
				acc[i][1] += partial[i][1]
				acc[i][2] += partial[i][2]
			}
		}
	} else {
		accumulateFaceNormals(acc, positions, indices)
	}

	normals := make([][3]float32, len(positions))
	for i, n := range acc {
		length := common.Length3(n[0], n[1], n[2])
		if length < 1e-8 || math.IsNaN(float64(length)) {
			normals[i] = [3]float32{0, 1, 0}
			continue
		}
		normals[i] = [3]float32{n[0] / length, n[1] / length, n[2] / length}
	}
	return normals
}

// accumulateFaceNormals adds each triangle's unit face normal to the
// accumulator entries of its three vertices. Degenerate triangles whose
// cross product has no usable length contribute nothing.
func accumulateFaceNormals(acc [][3]float32, positions [][3]float32, indices []uint32) {
	for i := 0; i+2 < len(indices); i += 3 {
		i0, i1, i2 := indices[i], indices[i+1], indices[i+2]
		p0, p1, p2 := positions[i0], positions[i1], positions[i2]

		e1x, e1y, e1z := p1[0]-p0[0], p1[1]-p0[1], p1[2]-p0[2]
		e2x, e2y, e2z := p2[0]-p0[0], p2[1]-p0[1], p2[2]-p0[2]
		cx, cy, cz := common.Cross3(e1x, e1y, e1z, e2x, e2y, e2z)
		if common.Length3(cx, cy, cz) < 1e-8 {
			continue
		}
		nx, ny, nz := common.Normalize3(cx, cy, cz)

		for _, vi := range [3]uint32{i0, i1, i2} {
			acc[vi][0] += nx
			acc[vi][1] += ny
			acc[vi][2] += nz
		}
	}
}
