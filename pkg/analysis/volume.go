package analysis

import (
	"math"

	"github.com/philipparndt/gomorph/pkg/geometry"
	"github.com/philipparndt/gomorph/pkg/mesh"
)

// MassProperties holds the unit-density mass properties of a solid
type MassProperties struct {
	Volume   float64
	Centroid geometry.Vector3
	// Inertia is taken about the centroid. Ixx = ∫(y²+z²) dV on the
	// diagonal, products of inertia negated off it.
	Inertia geometry.Tensor3
	// PrincipalMoments are the eigenvalues of Inertia in ascending order
	PrincipalMoments [3]float64
	// PrincipalAxes[i] is the unit axis of PrincipalMoments[i]; see
	// geometry.Tensor3.Eigen for the sign convention
	PrincipalAxes [3]geometry.Vector3
	// Degenerate lists elements skipped as invalid or of negligible volume
	Degenerate []int
}

// VolumeCentroidInertia integrates volume, centroid and, when
// computeInertia is set, the inertia tensor over a tetrahedral mesh.
//
// Element volumes are signed and accumulated as such; when the total is
// negative every integral is negated, so consistently inverted meshes give
// the same result as correctly oriented ones. Second moments are summed
// about the first node of the first valid element and shifted to the
// centroid with the parallel-axis theorem.
func VolumeCentroidInertia(m mesh.TetraMesh, computeInertia bool) (MassProperties, error) {
	const op = "volume centroid inertia"

	if m.ElementCount() == 0 {
		return MassProperties{}, mesh.NewGeometryError(op, "mesh has no elements")
	}

	scale := m.Scale()
	minVolume := mesh.RelTol * scale * scale * scale

	var props MassProperties
	var volume float64
	var ref, first geometry.Vector3
	var moments geometry.Moments
	haveRef := false

	for i := range m.Elements {
		if !m.ValidElement(i) {
			props.Degenerate = append(props.Degenerate, i)
			continue
		}
		if !haveRef {
			ref = m.Nodes[m.Elements[i][0]]
			haveRef = true
		}
		tet := m.Tetrahedron(i)
		v := tet.SignedVolume()
		if math.Abs(v) <= minVolume {
			props.Degenerate = append(props.Degenerate, i)
			continue
		}

		volume += v
		first = first.Add(tet.Centroid().Sub(ref).Mul(v))
		if computeInertia {
			moments = moments.Add(tet.SecondMoments(ref))
		}
	}

	if math.Abs(volume) <= minVolume {
		return MassProperties{}, mesh.NewGeometryError(op, "degenerate or non-closed volume")
	}
	if volume < 0 {
		volume = -volume
		first = first.Mul(-1)
		moments = moments.Scale(-1)
	}

	d := first.Mul(1 / volume)
	props.Volume = volume
	props.Centroid = ref.Add(d)

	if !computeInertia {
		return props, nil
	}

	// Parallel-axis shift from ref to the centroid
	central := geometry.Moments{
		XX: moments.XX - volume*d.X*d.X,
		YY: moments.YY - volume*d.Y*d.Y,
		ZZ: moments.ZZ - volume*d.Z*d.Z,
		XY: moments.XY - volume*d.X*d.Y,
		XZ: moments.XZ - volume*d.X*d.Z,
		YZ: moments.YZ - volume*d.Y*d.Z,
	}
	props.Inertia = central.Inertia()

	values, axes, err := props.Inertia.Eigen(geometry.Ascending)
	if err != nil {
		return MassProperties{}, mesh.NewGeometryError(op, "diagonalizing inertia tensor: %v", err)
	}
	props.PrincipalMoments = values
	props.PrincipalAxes = axes
	return props, nil
}
