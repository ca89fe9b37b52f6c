package analysis

import (
	"errors"
	"math"
	"testing"

	"github.com/philipparndt/gomorph/pkg/form"
	"github.com/philipparndt/gomorph/pkg/geometry"
	"github.com/philipparndt/gomorph/pkg/mesh"
	"github.com/philipparndt/gomorph/pkg/shapes"
)

func TestAnalyzeCube(t *testing.T) {
	report, err := Analyze(shapes.Cube(1))
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	if report.Nodes != 8 || report.Surface.Faces != 12 {
		t.Errorf("expected 8 nodes and 12 faces, got %d and %d", report.Nodes, report.Surface.Faces)
	}
	if math.Abs(report.Surface.Area-6) > 1e-10 {
		t.Errorf("expected area 6, got %f", report.Surface.Area)
	}
	if report.Dimensions != geometry.NewVector3(1, 1, 1) {
		t.Errorf("unexpected dimensions %v", report.Dimensions)
	}

	// 12 cube edges and 6 face diagonals
	if report.Edges.Count != 18 {
		t.Errorf("expected 18 edges, got %d", report.Edges.Count)
	}
	if !report.Closed() {
		t.Errorf("expected a closed surface, got %+v", report.Edges)
	}
	if math.Abs(report.Edges.Max-math.Sqrt2) > 1e-10 || math.Abs(report.Edges.Min-1) > 1e-10 {
		t.Errorf("unexpected edge range [%f, %f]", report.Edges.Min, report.Edges.Max)
	}

	if report.Mass == nil {
		t.Fatalf("expected mass properties, got error %v", report.MassErr)
	}
	if math.Abs(report.Mass.Volume-1) > 1e-10 {
		t.Errorf("expected volume 1, got %f", report.Mass.Volume)
	}
	if expected := math.Cbrt(math.Pi / 6); math.Abs(report.SphericityWadell-expected) > 1e-10 {
		t.Errorf("expected sphericity %f, got %f", expected, report.SphericityWadell)
	}
	if report.Orientation == nil {
		t.Errorf("expected orientation, got error %v", report.OrientationErr)
	}
}

func TestAnalyzeOpenSurface(t *testing.T) {
	report, err := Analyze(unitSquare())
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	if report.Closed() {
		t.Error("expected an open surface")
	}
	if report.Edges.Count != 5 || report.Edges.Boundary != 4 {
		t.Errorf("expected 5 edges with 4 on the boundary, got %+v", report.Edges)
	}
	if report.Mass != nil || !errors.Is(report.MassErr, mesh.ErrDegenerate) {
		t.Errorf("expected a geometry error for an open surface, got %v", report.MassErr)
	}
	if report.Orientation != nil || report.OrientationErr == nil {
		t.Errorf("expected an orientation error for a flat surface")
	}
}

func TestAnalyzeOpenCube(t *testing.T) {
	cube := shapes.Cube(1)
	cube.Faces = cube.Faces[:len(cube.Faces)-2]

	report, err := Analyze(cube)
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	if report.Mass != nil || report.SphericityWadell != 0 {
		t.Errorf("expected no mass properties for an open cube, got %+v", report.Mass)
	}
	if !errors.Is(report.MassErr, mesh.ErrDegenerate) {
		t.Errorf("expected a geometry error, got %v", report.MassErr)
	}
}

func TestReportSetMassWithoutArea(t *testing.T) {
	report := &Report{}
	err := report.setMass(MassProperties{Volume: 1})
	if !errors.Is(err, form.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
	if report.Mass != nil || report.SphericityWadell != 0 {
		t.Errorf("expected nothing stored, got %+v and %f", report.Mass, report.SphericityWadell)
	}
}

func TestAnalyzeIcosphereSphericity(t *testing.T) {
	report, err := Analyze(shapes.Icosphere(1, 3))
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	if report.Mass == nil {
		t.Fatalf("expected mass properties, got error %v", report.MassErr)
	}
	if s := report.SphericityWadell; s >= 1 || s < 0.99 {
		t.Errorf("expected sphericity in [0.99, 1), got %f", s)
	}
}

func TestFindEdges(t *testing.T) {
	edges := Edges(shapes.Cube(1))

	longest := FindLongestEdges(edges, 6)
	for _, e := range longest {
		if math.Abs(e.Length-math.Sqrt2) > 1e-10 {
			t.Errorf("expected diagonal of length sqrt(2), got %f", e.Length)
		}
	}

	shortest := FindShortestEdges(edges, 100)
	if len(shortest) != len(edges) {
		t.Errorf("expected count clamped to %d, got %d", len(edges), len(shortest))
	}
	if shortest[0].Length != 1 {
		t.Errorf("expected shortest length 1, got %f", shortest[0].Length)
	}

	if found := FindEdgesByLength(edges, 0.5, 1.1); len(found) != 12 {
		t.Errorf("expected 12 unit edges, got %d", len(found))
	}
	if found := FindLongestEdges(edges, -1); len(found) != 0 {
		t.Errorf("expected no edges for a negative count, got %d", len(found))
	}
}

func TestFormatVector(t *testing.T) {
	if got := FormatVector(geometry.NewVector3(1, 2.5, -3)); got != "(1.000000, 2.500000, -3.000000)" {
		t.Errorf("unexpected format %q", got)
	}
	if got := FormatMeasurement(2, ""); got != "2.000000 units" {
		t.Errorf("unexpected format %q", got)
	}
}
