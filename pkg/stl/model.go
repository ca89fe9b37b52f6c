package stl

import (
	"fmt"
	"math"

	"github.com/philipparndt/gomorph/pkg/geometry"
	"github.com/philipparndt/gomorph/pkg/mesh"
)

// Model is the triangle soup read from an STL file, before vertices are
// shared between triangles
type Model struct {
	Name      string
	Triangles []geometry.Triangle
}

// NewModel creates a new STL model
func NewModel(name string) *Model {
	return &Model{
		Name:      name,
		Triangles: make([]geometry.Triangle, 0),
	}
}

// FromMesh converts an indexed mesh back into a triangle soup. Invalid
// faces are skipped.
func FromMesh(name string, m mesh.TriangleMesh) *Model {
	model := NewModel(name)
	for i := range m.Faces {
		if m.ValidFace(i) {
			model.AddTriangle(m.Triangle(i))
		}
	}
	return model
}

// AddTriangle adds a triangle to the model
func (m *Model) AddTriangle(triangle geometry.Triangle) {
	m.Triangles = append(m.Triangles, triangle)
}

// TriangleCount returns the number of triangles in the model
func (m *Model) TriangleCount() int {
	return len(m.Triangles)
}

// BoundingBox calculates the bounding box of the entire model
func (m *Model) BoundingBox() geometry.BoundingBox {
	bbox := geometry.NewBoundingBox()
	for _, triangle := range m.Triangles {
		bbox.Extend(triangle.V1)
		bbox.Extend(triangle.V2)
		bbox.Extend(triangle.V3)
	}
	return bbox
}

// Index converts the triangle soup into an indexed mesh. With merge set,
// vertices whose coordinates agree after rounding to the given number of
// decimals share one node; nodes are numbered in order of first
// appearance and keep the coordinates of that first occurrence.
// Decimals <= 0 selects DefaultDecimals; more than MaxDecimals is rejected
// with ErrDecimals.
func (m *Model) Index(merge bool, decimals int) (mesh.TriangleMesh, error) {
	if decimals <= 0 {
		decimals = DefaultDecimals
	}
	if decimals > MaxDecimals {
		return mesh.TriangleMesh{}, fmt.Errorf("%w: %d, at most %d", ErrDecimals, decimals, MaxDecimals)
	}

	nodes := make([]geometry.Vector3, 0, 3*len(m.Triangles))
	faces := make([][3]int, 0, len(m.Triangles))

	if !merge {
		for _, t := range m.Triangles {
			base := len(nodes)
			nodes = append(nodes, t.V1, t.V2, t.V3)
			faces = append(faces, [3]int{base, base + 1, base + 2})
		}
		return mesh.NewTriangleMesh(nodes, faces)
	}

	scale := math.Pow(10, float64(decimals))
	seen := make(map[[3]float64]int)
	node := func(v geometry.Vector3) int {
		key := [3]float64{
			math.Round(v.X*scale) / scale,
			math.Round(v.Y*scale) / scale,
			math.Round(v.Z*scale) / scale,
		}
		if idx, ok := seen[key]; ok {
			return idx
		}
		nodes = append(nodes, v)
		seen[key] = len(nodes) - 1
		return len(nodes) - 1
	}

	for _, t := range m.Triangles {
		faces = append(faces, [3]int{node(t.V1), node(t.V2), node(t.V3)})
	}
	return mesh.NewTriangleMesh(nodes, faces)
}
