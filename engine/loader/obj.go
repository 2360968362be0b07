// Package loader parses mesh files into model.MeshData.
// Only Wavefront OBJ geometry is handled: positions, normals, and faces.
// Texture coordinates, materials, and object groups are skipped.
package loader

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/Carmen-Shannon/objview/engine/model"
)

// LoadOBJ reads a Wavefront OBJ file from disk.
//
// Parameters:
//   - path: the file to read
//
// Returns:
//   - model.MeshData: the parsed geometry
//   - error: an error if the file cannot be read or parsed
func LoadOBJ(path string) (model.MeshData, error) {
	f, err := os.Open(path)
	if err != nil {
		return model.MeshData{}, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()
	data, err := ParseOBJ(f)
	if err != nil {
		return model.MeshData{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	return data, nil
}

// objKey identifies a unique position/normal pairing from a face element.
// OBJ faces index positions and normals independently; the output mesh
// needs one interleaved vertex per distinct pairing.
type objKey struct {
	position int
	normal   int
}

// ParseOBJ parses OBJ geometry from a reader.
//
// Supported face forms: "f v", "f v/vt", "f v//vn", and "f v/vt/vn".
// Faces with more than three vertices are fan-triangulated. Negative
// indices are resolved relative to the end of the current vertex list.
//
// Parameters:
//   - r: the OBJ source
//
// Returns:
//   - model.MeshData: the parsed geometry
//   - error: an error naming the offending line on malformed input
func ParseOBJ(r io.Reader) (model.MeshData, error) {
	var positions [][3]float32
	var normals [][3]float32

	var out model.MeshData
	dedup := map[objKey]uint32{}

	// hasNormals flips if any face references a normal; mixed meshes get
	// zero normals for the unreferenced vertices, normalized away later
	// only if every face omits them.
	hasNormals := false

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)

		switch fields[0] {
		case "v":
			p, err := parseVec3(fields[1:])
			if err != nil {
				return model.MeshData{}, fmt.Errorf("line %d: vertex: %w", lineNo, err)
			}
			positions = append(positions, p)

		case "vn":
			n, err := parseVec3(fields[1:])
			if err != nil {
				return model.MeshData{}, fmt.Errorf("line %d: normal: %w", lineNo, err)
			}
			normals = append(normals, n)

		case "f":
			if len(fields) < 4 {
				return model.MeshData{}, fmt.Errorf("line %d: face needs at least 3 vertices", lineNo)
			}
			face := make([]uint32, 0, len(fields)-1)
			for _, elem := range fields[1:] {
				key, err := parseFaceElement(elem, len(positions), len(normals))
				if err != nil {
					return model.MeshData{}, fmt.Errorf("line %d: %w", lineNo, err)
				}
				if key.normal >= 0 {
					hasNormals = true
				}
				idx, ok := dedup[key]
				if !ok {
					idx = uint32(len(out.Positions))
					dedup[key] = idx
					out.Positions = append(out.Positions, positions[key.position])
					if key.normal >= 0 {
						out.Normals = append(out.Normals, normals[key.normal])
					} else {
						out.Normals = append(out.Normals, [3]float32{})
					}
				}
				face = append(face, idx)
			}
			// Fan triangulation for quads and larger polygons.
			for i := 1; i+1 < len(face); i++ {
				out.Indices = append(out.Indices, face[0], face[i], face[i+1])
			}

		default:
			// vt, g, o, s, mtllib, usemtl and anything else: geometry only.
		}
	}
	if err := scanner.Err(); err != nil {
		return model.MeshData{}, fmt.Errorf("reading input: %w", err)
	}

	if len(out.Indices) == 0 {
		return model.MeshData{}, fmt.Errorf("no geometry: file defines no faces")
	}

	if !hasNormals {
		// No face referenced a normal: clear the zero placeholders so the
		// mesh builder synthesizes them from face geometry.
		out.Normals = nil
	}
	return out, nil
}

// parseVec3 parses three float components.
func parseVec3(fields []string) ([3]float32, error) {
	if len(fields) < 3 {
		return [3]float32{}, fmt.Errorf("expected 3 components, got %d", len(fields))
	}
	var v [3]float32
	for i := 0; i < 3; i++ {
		f, err := strconv.ParseFloat(fields[i], 32)
		if err != nil {
			return [3]float32{}, fmt.Errorf("component %q: %w", fields[i], err)
		}
		v[i] = float32(f)
	}
	return v, nil
}

// parseFaceElement parses one face vertex reference ("7", "7/2", "7//3",
// "7/2/3", or negative relative forms) into zero-based indices. The normal
// index is -1 when the element does not reference one.
func parseFaceElement(elem string, positionCount, normalCount int) (objKey, error) {
	parts := strings.Split(elem, "/")
	if len(parts) == 0 || len(parts) > 3 {
		return objKey{}, fmt.Errorf("malformed face element %q", elem)
	}

	pos, err := resolveIndex(parts[0], positionCount)
	if err != nil {
		return objKey{}, fmt.Errorf("face element %q: %w", elem, err)
	}

	normal := -1
	if len(parts) == 3 && parts[2] != "" {
		normal, err = resolveIndex(parts[2], normalCount)
		if err != nil {
			return objKey{}, fmt.Errorf("face element %q: %w", elem, err)
		}
	}
	return objKey{position: pos, normal: normal}, nil
}

// resolveIndex converts a one-based (or negative relative) OBJ index into
// a zero-based index, validating the range.
func resolveIndex(s string, count int) (int, error) {
	raw, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("index %q: %w", s, err)
	}
	idx := raw
	if idx < 0 {
		idx = count + idx
	} else {
		idx--
	}
	if idx < 0 || idx >= count {
		return 0, fmt.Errorf("index %d out of range (1..%d)", raw, count)
	}
	return idx, nil
}
