package mesh

import "github.com/philipparndt/gomorph/pkg/geometry"

// FanTetrahedralize decomposes the solid enclosed by a closed, consistently
// outward-wound surface into one signed tetrahedron per face, all sharing
// the bounding-box center as apex. Tetrahedra reaching outside a
// non-convex solid carry negative volume and cancel, so the sum over the
// returned mesh equals the integral over the enclosed solid.
//
// Invalid faces are dropped. The apex is appended as the last node. A
// surface with boundary or non-manifold edges encloses no well-defined
// solid and is rejected.
func FanTetrahedralize(surface TriangleMesh) (TetraMesh, error) {
	const op = "fan tetrahedralize"

	if len(surface.Faces) == 0 {
		return TetraMesh{}, NewGeometryError(op, "mesh has no faces")
	}
	if boundary, nonManifold := surface.OpenEdges(); boundary > 0 || nonManifold > 0 {
		return TetraMesh{}, NewGeometryError(op,
			"surface is not closed (%d boundary, %d non-manifold edges)", boundary, nonManifold)
	}

	apex := len(surface.Nodes)
	nodes := make([]geometry.Vector3, 0, len(surface.Nodes)+1)
	nodes = append(nodes, surface.Nodes...)
	nodes = append(nodes, surface.BoundingBox().Center())

	elements := make([][4]int, 0, len(surface.Faces))
	for i, f := range surface.Faces {
		if !surface.ValidFace(i) {
			continue
		}
		elements = append(elements, [4]int{apex, f[0], f[1], f[2]})
	}
	if len(elements) == 0 {
		return TetraMesh{}, NewGeometryError(op, "mesh has no valid faces")
	}
	return TetraMesh{Nodes: nodes, Elements: elements}, nil
}
