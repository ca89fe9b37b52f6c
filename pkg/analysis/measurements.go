package analysis

import (
	"fmt"
	"math"
	"sort"

	"github.com/philipparndt/gomorph/pkg/form"
	"github.com/philipparndt/gomorph/pkg/geometry"
	"github.com/philipparndt/gomorph/pkg/mesh"
)

// EdgeInfo describes an undirected edge of a triangle mesh
type EdgeInfo struct {
	From, To   int
	Start, End geometry.Vector3
	Length     float64
	// Faces is the number of faces sharing the edge: 2 on a closed
	// manifold surface, 1 on a boundary
	Faces int
}

// EdgeStats summarizes the edges of a mesh
type EdgeStats struct {
	Count       int
	Boundary    int
	NonManifold int
	Min         float64
	Max         float64
	Avg         float64
}

// Report is the combined analysis of a single particle surface
type Report struct {
	Nodes       int
	BoundingBox geometry.BoundingBox
	Dimensions  geometry.Vector3
	Surface     Surface
	Edges       EdgeStats

	// Mass is computed from the fan tetrahedralization of a closed surface
	// and is nil when the surface is open, encloses no volume or yields no
	// valid sphericity; MassErr says why.
	Mass    *MassProperties
	MassErr error

	Orientation    *Orientation
	OrientationErr error

	// SphericityWadell is set together with Mass
	SphericityWadell float64
}

// Closed reports whether every edge is shared by exactly two faces
func (r *Report) Closed() bool {
	return r.Edges.Boundary == 0 && r.Edges.NonManifold == 0
}

// Analyze runs every surface and volume integration over m. Only a mesh
// without faces is an error; failures of the volume and orientation
// integrations are recorded in the report. Volume needs shared vertices to
// recognize a closed surface, so meshes loaded without merging report none.
func Analyze(m mesh.TriangleMesh) (*Report, error) {
	surface, err := SurfaceAreaDetail(m)
	if err != nil {
		return nil, err
	}

	edges := Edges(m)
	report := &Report{
		Nodes:       len(m.Nodes),
		BoundingBox: m.BoundingBox(),
		Surface:     surface,
		Edges:       SummarizeEdges(edges),
	}
	report.Dimensions = report.BoundingBox.Size()

	if tets, err := mesh.FanTetrahedralize(m); err != nil {
		report.MassErr = err
	} else if props, err := VolumeCentroidInertia(tets, true); err != nil {
		report.MassErr = err
	} else {
		report.MassErr = report.setMass(props)
	}

	if o, err := SurfaceOrientationTensor(m); err != nil {
		report.OrientationErr = err
	} else {
		report.Orientation = &o
	}

	return report, nil
}

// setMass stores props together with the Wadell sphericity derived from
// the surface area. Nothing is stored when the sphericity is undefined.
func (r *Report) setMass(props MassProperties) error {
	spW, err := form.SphericityWadell(props.Volume, r.Surface.Area)
	if err != nil {
		return fmt.Errorf("sphericity: %w", err)
	}
	r.Mass = &props
	r.SphericityWadell = spW
	return nil
}

// Edges returns the undirected edges of the valid faces of m, in order of
// first appearance
func Edges(m mesh.TriangleMesh) []EdgeInfo {
	index := make(map[[2]int]int)
	var edges []EdgeInfo

	for i, f := range m.Faces {
		if !m.ValidFace(i) {
			continue
		}
		for k := 0; k < 3; k++ {
			a, b := f[k], f[(k+1)%3]
			key := [2]int{min(a, b), max(a, b)}
			if idx, ok := index[key]; ok {
				edges[idx].Faces++
				continue
			}
			index[key] = len(edges)
			edges = append(edges, EdgeInfo{
				From:   a,
				To:     b,
				Start:  m.Nodes[a],
				End:    m.Nodes[b],
				Length: m.Nodes[a].Distance(m.Nodes[b]),
				Faces:  1,
			})
		}
	}
	return edges
}

// SummarizeEdges computes edge count, length range and topology counts
func SummarizeEdges(edges []EdgeInfo) EdgeStats {
	stats := EdgeStats{Count: len(edges)}
	if len(edges) == 0 {
		return stats
	}

	stats.Min = math.MaxFloat64
	total := 0.0
	for _, e := range edges {
		total += e.Length
		stats.Min = math.Min(stats.Min, e.Length)
		stats.Max = math.Max(stats.Max, e.Length)
		switch {
		case e.Faces == 1:
			stats.Boundary++
		case e.Faces > 2:
			stats.NonManifold++
		}
	}
	stats.Avg = total / float64(len(edges))
	return stats
}

// FindEdgesByLength finds all edges within a length range
func FindEdgesByLength(edges []EdgeInfo, minLength, maxLength float64) []EdgeInfo {
	var found []EdgeInfo
	for _, edge := range edges {
		if edge.Length >= minLength && edge.Length <= maxLength {
			found = append(found, edge)
		}
	}
	return found
}

// FindLongestEdges returns the N longest edges
func FindLongestEdges(edges []EdgeInfo, count int) []EdgeInfo {
	return sortedEdges(edges, count, func(a, b EdgeInfo) bool { return a.Length > b.Length })
}

// FindShortestEdges returns the N shortest edges
func FindShortestEdges(edges []EdgeInfo, count int) []EdgeInfo {
	return sortedEdges(edges, count, func(a, b EdgeInfo) bool { return a.Length < b.Length })
}

func sortedEdges(edges []EdgeInfo, count int, less func(a, b EdgeInfo) bool) []EdgeInfo {
	sorted := make([]EdgeInfo, len(edges))
	copy(sorted, edges)

	sort.SliceStable(sorted, func(i, j int) bool {
		return less(sorted[i], sorted[j])
	})

	count = max(0, min(count, len(sorted)))
	return sorted[:count]
}

// FormatMeasurement formats a measurement with appropriate units
func FormatMeasurement(value float64, unit string) string {
	if unit == "" {
		unit = "units"
	}
	return fmt.Sprintf("%.6f %s", value, unit)
}

// FormatVector formats a 3D vector
func FormatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", v.X, v.Y, v.Z)
}
