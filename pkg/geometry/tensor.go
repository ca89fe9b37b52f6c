package geometry

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"
)

// ErrNoConvergence is returned when the symmetric eigensolver fails.
var ErrNoConvergence = errors.New("geometry: eigendecomposition did not converge")

// Tensor3 is a 3x3 matrix, used for symmetric second-order tensors
type Tensor3 [3][3]float64

// Identity3 returns the 3x3 identity tensor
func Identity3() Tensor3 {
	return Tensor3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
}

// Add returns the element-wise sum of two tensors
func (t Tensor3) Add(other Tensor3) Tensor3 {
	var out Tensor3
	for i := range t {
		for j := range t[i] {
			out[i][j] = t[i][j] + other[i][j]
		}
	}
	return out
}

// Sub returns the element-wise difference of two tensors
func (t Tensor3) Sub(other Tensor3) Tensor3 {
	return t.Add(other.Scale(-1))
}

// Scale multiplies every element by s
func (t Tensor3) Scale(s float64) Tensor3 {
	var out Tensor3
	for i := range t {
		for j := range t[i] {
			out[i][j] = t[i][j] * s
		}
	}
	return out
}

// Trace returns the sum of the diagonal
func (t Tensor3) Trace() float64 {
	return t[0][0] + t[1][1] + t[2][2]
}

// Apply returns t·v
func (t Tensor3) Apply(v Vector3) Vector3 {
	return Vector3{
		X: t[0][0]*v.X + t[0][1]*v.Y + t[0][2]*v.Z,
		Y: t[1][0]*v.X + t[1][1]*v.Y + t[1][2]*v.Z,
		Z: t[2][0]*v.X + t[2][1]*v.Y + t[2][2]*v.Z,
	}
}

// symDense converts the tensor to a gonum symmetric matrix using the upper
// triangle. The lower triangle is assumed to mirror it.
func (t Tensor3) symDense() *mat.SymDense {
	return mat.NewSymDense(3, []float64{
		t[0][0], t[0][1], t[0][2],
		t[0][1], t[1][1], t[1][2],
		t[0][2], t[1][2], t[2][2],
	})
}

// EigenOrder selects the order of eigenvalues returned by Tensor3.Eigen
type EigenOrder int

const (
	// Ascending orders eigenvalues from smallest to largest
	Ascending EigenOrder = iota
	// Descending orders eigenvalues from largest to smallest
	Descending
)

// Eigen diagonalizes the symmetric tensor. axes[i] is the unit eigenvector
// belonging to values[i].
//
// Eigenvectors are only defined up to sign. The convention used here is:
// axes[0] and axes[1] have their largest-magnitude component positive
// (lowest index wins a tie) and axes[2] = axes[0] x axes[1], so the
// triplet is always right-handed. Other numeric libraries may return
// different signs for the same tensor.
func (t Tensor3) Eigen(order EigenOrder) (values [3]float64, axes [3]Vector3, err error) {
	var es mat.EigenSym
	if ok := es.Factorize(t.symDense(), true); !ok {
		return values, axes, ErrNoConvergence
	}
	vals := es.Values(nil)
	var vecs mat.Dense
	es.VectorsTo(&vecs)

	for i := 0; i < 3; i++ {
		col := i
		if order == Descending {
			col = 2 - i
		}
		values[i] = vals[col]
		axes[i] = NewVector3(vecs.At(0, col), vecs.At(1, col), vecs.At(2, col))
	}

	axes[0] = canonicalSign(axes[0].Normalize())
	axes[1] = canonicalSign(axes[1].Normalize())
	axes[2] = axes[0].Cross(axes[1]).Normalize()
	return values, axes, nil
}

// canonicalSign flips v so that its largest-magnitude component is positive
func canonicalSign(v Vector3) Vector3 {
	best := 0
	for i := 1; i < 3; i++ {
		if math.Abs(v.At(i)) > math.Abs(v.At(best)) {
			best = i
		}
	}
	if v.At(best) < 0 {
		return v.Mul(-1)
	}
	return v
}
