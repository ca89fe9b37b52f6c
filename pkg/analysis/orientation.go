package analysis

import (
	"github.com/philipparndt/gomorph/pkg/geometry"
	"github.com/philipparndt/gomorph/pkg/mesh"
)

// Orientation is the surface orientation tensor of a mesh and the shape
// indices of Bagi & Orosz (2020) derived from its spectrum
type Orientation struct {
	// C = λ3/λ1, compactness
	C float64
	// F = (λ1−λ2)/λ1, flakiness
	F float64
	// R = (λ2−λ3)/λ1, rodness
	R float64

	// Eigenvalues in descending order; they sum to 1
	Eigenvalues  [3]float64
	Eigenvectors [3]geometry.Vector3
	Tensor       geometry.Tensor3
}

// SurfaceOrientationTensor returns f = (1/A) Σ A_k n_k n_kᵀ over the faces
// of m, where n_k is the unit normal and A_k the area of face k, and the
// C, F, R indices of its eigenvalues. C + F + R = 1.
//
// A tensor whose smallest eigenvalue does not exceed mesh.RelTol is
// singular (all normals lie in a plane) and is rejected.
func SurfaceOrientationTensor(m mesh.TriangleMesh) (Orientation, error) {
	const op = "surface orientation tensor"

	if m.FaceCount() == 0 {
		return Orientation{}, mesh.NewGeometryError(op, "mesh has no faces")
	}

	scale := m.Scale()
	minArea := mesh.RelTol * scale * scale

	var f geometry.Tensor3
	total := 0.0
	for i := range m.Faces {
		if !m.ValidFace(i) {
			continue
		}
		tri := m.Triangle(i)
		area := tri.Area()
		if area <= minArea {
			continue
		}
		n := tri.UnitNormal()
		f = f.Add(n.Outer(n).Scale(area))
		total += area
	}
	if total == 0 {
		return Orientation{}, mesh.NewGeometryError(op, "mesh has zero surface area")
	}
	f = f.Scale(1 / total)

	values, axes, err := f.Eigen(geometry.Descending)
	if err != nil {
		return Orientation{}, mesh.NewGeometryError(op, "diagonalizing orientation tensor: %v", err)
	}
	if values[2] <= mesh.RelTol {
		return Orientation{}, mesh.NewGeometryError(op,
			"singular orientation tensor (eigenvalues %g, %g, %g): face normals do not span three directions",
			values[0], values[1], values[2])
	}

	l1, l2, l3 := values[0], values[1], values[2]
	return Orientation{
		C:            l3 / l1,
		F:            (l1 - l2) / l1,
		R:            (l2 - l3) / l1,
		Eigenvalues:  values,
		Eigenvectors: axes,
		Tensor:       f,
	}, nil
}
