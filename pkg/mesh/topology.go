package mesh

// EdgeFaceCounts returns the number of valid faces sharing each undirected
// edge, keyed by the sorted node pair
func (m TriangleMesh) EdgeFaceCounts() map[[2]int]int {
	counts := make(map[[2]int]int, 3*len(m.Faces)/2)
	for i, f := range m.Faces {
		if !m.ValidFace(i) {
			continue
		}
		for k := 0; k < 3; k++ {
			a, b := f[k], f[(k+1)%3]
			counts[[2]int{min(a, b), max(a, b)}]++
		}
	}
	return counts
}

// OpenEdges counts boundary edges (one face) and non-manifold edges (more
// than two faces). Both are zero for a closed surface.
func (m TriangleMesh) OpenEdges() (boundary, nonManifold int) {
	for _, n := range m.EdgeFaceCounts() {
		switch {
		case n == 1:
			boundary++
		case n > 2:
			nonManifold++
		}
	}
	return boundary, nonManifold
}
