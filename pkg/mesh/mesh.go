// Package mesh holds the passive mesh model consumed by the analysis
// packages: indexed triangle surfaces and tetrahedral volumes, plus the
// index-convention normalization applied to every mesh built through this
// package.
package mesh

import (
	"github.com/philipparndt/gomorph/pkg/geometry"
)

// RelTol is the relative tolerance used for near-degeneracy checks.
// Lengths are compared against RelTol·L, areas against RelTol·L² and
// volumes against RelTol·L³, where L is the bounding-box diagonal.
const RelTol = 1e-9

// TriangleMesh is an indexed triangle surface mesh
type TriangleMesh struct {
	Nodes []geometry.Vector3
	Faces [][3]int
}

// NewTriangleMesh builds a triangle mesh, converting 1-based face indices
// to 0-based ones (see NormalizeIndices). Indices outside the node range
// after normalization are rejected with ErrIndexRange.
func NewTriangleMesh(nodes []geometry.Vector3, faces [][3]int) (TriangleMesh, error) {
	flat := make([]int, 0, 3*len(faces))
	for _, f := range faces {
		flat = append(flat, f[:]...)
	}
	shift, err := normalize(flat, len(nodes))
	if err != nil {
		return TriangleMesh{}, err
	}

	out := make([][3]int, len(faces))
	for i, f := range faces {
		out[i] = [3]int{f[0] - shift, f[1] - shift, f[2] - shift}
	}
	return TriangleMesh{Nodes: nodes, Faces: out}, nil
}

// FaceCount returns the number of faces
func (m TriangleMesh) FaceCount() int {
	return len(m.Faces)
}

// ValidFace reports whether face i references three distinct, existing nodes
func (m TriangleMesh) ValidFace(i int) bool {
	f := m.Faces[i]
	for _, idx := range f {
		if idx < 0 || idx >= len(m.Nodes) {
			return false
		}
	}
	return f[0] != f[1] && f[1] != f[2] && f[0] != f[2]
}

// Triangle returns the geometry of face i. The face must be valid.
func (m TriangleMesh) Triangle(i int) geometry.Triangle {
	f := m.Faces[i]
	return geometry.NewTriangle(m.Nodes[f[0]], m.Nodes[f[1]], m.Nodes[f[2]])
}

// BoundingBox returns the bounding box of all nodes
func (m TriangleMesh) BoundingBox() geometry.BoundingBox {
	return geometry.BoundingBoxOf(m.Nodes)
}

// Scale returns the reference length used for tolerances
func (m TriangleMesh) Scale() float64 {
	return m.BoundingBox().Diagonal()
}

// DegenerateFaces returns the indices of faces that are index-invalid,
// repeat a node, or enclose an area below RelTol·L².
func (m TriangleMesh) DegenerateFaces() []int {
	scale := m.Scale()
	minArea := RelTol * scale * scale

	var degenerate []int
	for i := range m.Faces {
		if !m.ValidFace(i) || m.Triangle(i).Area() <= minArea {
			degenerate = append(degenerate, i)
		}
	}
	return degenerate
}

// TetraMesh is an indexed tetrahedral volume mesh
type TetraMesh struct {
	Nodes    []geometry.Vector3
	Elements [][4]int
}

// NewTetraMesh builds a tetrahedral mesh, normalizing the index convention
// the same way NewTriangleMesh does.
func NewTetraMesh(nodes []geometry.Vector3, elements [][4]int) (TetraMesh, error) {
	flat := make([]int, 0, 4*len(elements))
	for _, e := range elements {
		flat = append(flat, e[:]...)
	}
	shift, err := normalize(flat, len(nodes))
	if err != nil {
		return TetraMesh{}, err
	}

	out := make([][4]int, len(elements))
	for i, e := range elements {
		out[i] = [4]int{e[0] - shift, e[1] - shift, e[2] - shift, e[3] - shift}
	}
	return TetraMesh{Nodes: nodes, Elements: out}, nil
}

// ElementCount returns the number of tetrahedra
func (m TetraMesh) ElementCount() int {
	return len(m.Elements)
}

// ValidElement reports whether element i references four distinct,
// existing nodes
func (m TetraMesh) ValidElement(i int) bool {
	e := m.Elements[i]
	for j, idx := range e {
		if idx < 0 || idx >= len(m.Nodes) {
			return false
		}
		for _, other := range e[j+1:] {
			if idx == other {
				return false
			}
		}
	}
	return true
}

// Tetrahedron returns the geometry of element i. The element must be valid.
func (m TetraMesh) Tetrahedron(i int) geometry.Tetrahedron {
	e := m.Elements[i]
	return geometry.NewTetrahedron(m.Nodes[e[0]], m.Nodes[e[1]], m.Nodes[e[2]], m.Nodes[e[3]])
}

// BoundingBox returns the bounding box of all nodes
func (m TetraMesh) BoundingBox() geometry.BoundingBox {
	return geometry.BoundingBoxOf(m.Nodes)
}

// Scale returns the reference length used for tolerances
func (m TetraMesh) Scale() float64 {
	return m.BoundingBox().Diagonal()
}
