// Package analysis integrates geometric properties over meshes: surface
// area, volume, centroid and inertia, and the surface orientation tensor.
//
// All functions are pure and sum sequentially in face or element order,
// so identical input gives bit-identical output.
package analysis

import (
	"github.com/philipparndt/gomorph/pkg/mesh"
)

// Surface is the result of a surface area integration
type Surface struct {
	Area float64
	// Faces is the number of faces in the mesh, including degenerate ones
	Faces int
	// Degenerate lists faces that contributed zero area
	Degenerate []int
}

// SurfaceArea returns the total area of the triangle mesh
func SurfaceArea(m mesh.TriangleMesh) (float64, error) {
	s, err := SurfaceAreaDetail(m)
	if err != nil {
		return 0, err
	}
	return s.Area, nil
}

// SurfaceAreaDetail returns the total area together with the degenerate
// faces that were skipped
func SurfaceAreaDetail(m mesh.TriangleMesh) (Surface, error) {
	if m.FaceCount() == 0 {
		return Surface{}, mesh.NewGeometryError("surface area", "mesh has no faces")
	}

	scale := m.Scale()
	minArea := mesh.RelTol * scale * scale

	s := Surface{Faces: m.FaceCount()}
	for i := range m.Faces {
		if !m.ValidFace(i) {
			s.Degenerate = append(s.Degenerate, i)
			continue
		}
		area := m.Triangle(i).Area()
		if area <= minArea {
			s.Degenerate = append(s.Degenerate, i)
			continue
		}
		s.Area += area
	}
	return s, nil
}
