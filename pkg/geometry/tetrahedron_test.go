package geometry

import (
	"math"
	"testing"
)

func unitRightTetrahedron() Tetrahedron {
	return NewTetrahedron(
		NewVector3(0, 0, 0),
		NewVector3(1, 0, 0),
		NewVector3(0, 1, 0),
		NewVector3(0, 0, 1),
	)
}

func TestTetrahedronSignedVolume(t *testing.T) {
	tet := unitRightTetrahedron()

	volume := tet.SignedVolume()
	expected := 1.0 / 6.0
	if math.Abs(volume-expected) > 1e-15 {
		t.Errorf("SignedVolume failed: expected %v, got %v", expected, volume)
	}

	// Swapping two vertices flips the orientation
	flipped := NewTetrahedron(tet.A, tet.C, tet.B, tet.D)
	if math.Abs(flipped.SignedVolume()+expected) > 1e-15 {
		t.Errorf("SignedVolume of flipped tetrahedron: expected %v, got %v", -expected, flipped.SignedVolume())
	}
}

func TestTetrahedronCentroid(t *testing.T) {
	centroid := unitRightTetrahedron().Centroid()
	expected := NewVector3(0.25, 0.25, 0.25)
	if centroid != expected {
		t.Errorf("Centroid failed: expected %v, got %v", expected, centroid)
	}
}

func TestTetrahedronSecondMoments(t *testing.T) {
	// For the unit right tetrahedron: ∫x² dV = 1/60, ∫xy dV = 1/120
	m := unitRightTetrahedron().SecondMoments(Vector3{})

	for name, got := range map[string]float64{"XX": m.XX, "YY": m.YY, "ZZ": m.ZZ} {
		if math.Abs(got-1.0/60.0) > 1e-15 {
			t.Errorf("%s failed: expected %v, got %v", name, 1.0/60.0, got)
		}
	}
	for name, got := range map[string]float64{"XY": m.XY, "XZ": m.XZ, "YZ": m.YZ} {
		if math.Abs(got-1.0/120.0) > 1e-15 {
			t.Errorf("%s failed: expected %v, got %v", name, 1.0/120.0, got)
		}
	}

	inertia := m.Inertia()
	if math.Abs(inertia[0][0]-1.0/30.0) > 1e-15 {
		t.Errorf("Ixx failed: expected %v, got %v", 1.0/30.0, inertia[0][0])
	}
	if math.Abs(inertia[0][1]+1.0/120.0) > 1e-15 {
		t.Errorf("Ixy failed: expected %v, got %v", -1.0/120.0, inertia[0][1])
	}
}

func TestTetrahedronSecondMomentsReference(t *testing.T) {
	// Moments about a shifted reference satisfy the parallel-axis relation
	tet := unitRightTetrahedron()
	ref := NewVector3(0.3, -0.2, 0.5)

	origin := tet.SecondMoments(Vector3{})
	shifted := tet.SecondMoments(ref)

	vol := tet.SignedVolume()
	c := tet.Centroid()
	// ∫(x-a)² = ∫x² - 2a∫x + a²V
	expectedXX := origin.XX - 2*ref.X*c.X*vol + ref.X*ref.X*vol
	if math.Abs(shifted.XX-expectedXX) > 1e-14 {
		t.Errorf("shifted XX failed: expected %v, got %v", expectedXX, shifted.XX)
	}
	expectedXY := origin.XY - ref.X*c.Y*vol - ref.Y*c.X*vol + ref.X*ref.Y*vol
	if math.Abs(shifted.XY-expectedXY) > 1e-14 {
		t.Errorf("shifted XY failed: expected %v, got %v", expectedXY, shifted.XY)
	}
}
