package mesh

import "fmt"

// IsOneBased reports whether indices follow the 1-based convention: the
// smallest index is 1 and the largest equals nodeCount. A zero anywhere in
// the set is taken as proof of the 0-based convention.
//
// The heuristic can misread a genuinely 1-based mesh that never
// references node 1 or its last node. Such meshes are treated as 0-based.
func IsOneBased(indices []int, nodeCount int) bool {
	if len(indices) == 0 {
		return false
	}
	lo, hi := indices[0], indices[0]
	for _, idx := range indices[1:] {
		lo = min(lo, idx)
		hi = max(hi, idx)
	}
	return lo == 1 && hi == nodeCount
}

// NormalizeIndices converts indices to 0-based in place when IsOneBased
// detects the 1-based convention, and reports whether it did.
func NormalizeIndices(indices []int, nodeCount int) bool {
	if !IsOneBased(indices, nodeCount) {
		return false
	}
	for i := range indices {
		indices[i]--
	}
	return true
}

// normalize returns the offset to subtract from every index and checks
// that the shifted indices address existing nodes.
func normalize(indices []int, nodeCount int) (int, error) {
	shift := 0
	if IsOneBased(indices, nodeCount) {
		shift = 1
	}
	for _, idx := range indices {
		if idx-shift < 0 || idx-shift >= nodeCount {
			return 0, fmt.Errorf("%w: index %d with %d nodes", ErrIndexRange, idx-shift, nodeCount)
		}
	}
	return shift, nil
}
