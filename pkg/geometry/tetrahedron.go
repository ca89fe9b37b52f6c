package geometry

// Tetrahedron represents a solid tetrahedral element. The sign of its
// volume encodes the orientation of its vertex ordering.
type Tetrahedron struct {
	A, B, C, D Vector3
}

// NewTetrahedron creates a new tetrahedron
func NewTetrahedron(a, b, c, d Vector3) Tetrahedron {
	return Tetrahedron{A: a, B: b, C: c, D: d}
}

// SignedVolume returns (B-A) . ((C-A) x (D-A)) / 6. It is positive when
// D lies on the side of triangle ABC that its counter-clockwise winding
// points to.
func (t Tetrahedron) SignedVolume() float64 {
	ab := t.B.Sub(t.A)
	ac := t.C.Sub(t.A)
	ad := t.D.Sub(t.A)
	return ab.Dot(ac.Cross(ad)) / 6.0
}

// Centroid returns the arithmetic mean of the four vertices
func (t Tetrahedron) Centroid() Vector3 {
	return t.A.Add(t.B).Add(t.C).Add(t.D).Mul(0.25)
}

// Moments holds the second moments of a unit-density solid:
// XX = ∫x² dV, XY = ∫xy dV and so on.
type Moments struct {
	XX, YY, ZZ float64
	XY, XZ, YZ float64
}

// Add returns the component-wise sum of two moment sets
func (m Moments) Add(other Moments) Moments {
	return Moments{
		XX: m.XX + other.XX,
		YY: m.YY + other.YY,
		ZZ: m.ZZ + other.ZZ,
		XY: m.XY + other.XY,
		XZ: m.XZ + other.XZ,
		YZ: m.YZ + other.YZ,
	}
}

// Scale multiplies every moment by s
func (m Moments) Scale(s float64) Moments {
	return Moments{
		XX: m.XX * s,
		YY: m.YY * s,
		ZZ: m.ZZ * s,
		XY: m.XY * s,
		XZ: m.XZ * s,
		YZ: m.YZ * s,
	}
}

// Inertia returns the inertia tensor for these moments. The diagonal
// holds Ixx = ∫(y²+z²) dV, the off-diagonals the negated products of
// inertia.
func (m Moments) Inertia() Tensor3 {
	return Tensor3{
		{m.YY + m.ZZ, -m.XY, -m.XZ},
		{-m.XY, m.XX + m.ZZ, -m.YZ},
		{-m.XZ, -m.YZ, m.XX + m.YY},
	}
}

// SecondMoments returns the signed second moments of the tetrahedron with
// coordinates taken relative to ref, using the closed form of
// Tonon (2005): ∫x² = V/20 (Σx_i² + (Σx_i)²), ∫xy = V/20 (Σx_i y_i + Σx_i Σy_i).
func (t Tetrahedron) SecondMoments(ref Vector3) Moments {
	v := [4]Vector3{t.A.Sub(ref), t.B.Sub(ref), t.C.Sub(ref), t.D.Sub(ref)}

	var sx, sy, sz float64
	var sxx, syy, szz, sxy, sxz, syz float64
	for _, p := range v {
		sx += p.X
		sy += p.Y
		sz += p.Z
		sxx += p.X * p.X
		syy += p.Y * p.Y
		szz += p.Z * p.Z
		sxy += p.X * p.Y
		sxz += p.X * p.Z
		syz += p.Y * p.Z
	}

	vol := NewTetrahedron(v[0], v[1], v[2], v[3]).SignedVolume()
	coef := vol / 20.0
	return Moments{
		XX: coef * (sx*sx + sxx),
		YY: coef * (sy*sy + syy),
		ZZ: coef * (sz*sz + szz),
		XY: coef * (sx*sy + sxy),
		XZ: coef * (sx*sz + sxz),
		YZ: coef * (sy*sz + syz),
	}
}
