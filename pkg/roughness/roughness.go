// Package roughness computes areal surface roughness parameters of a
// height grid: Sq, Sa, Sdq, Sku and Ssk.
//
// A grid holds one elevation per sample with rows along y and columns
// along x. Height statistics use population moments.
package roughness

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// ErrInvalidInput is wrapped by every input-contract violation
var ErrInvalidInput = errors.New("roughness: invalid input")

// heights flattens z and rejects empty or non-finite grids
func heights(z mat.Matrix) ([]float64, error) {
	rows, cols := z.Dims()
	if rows == 0 || cols == 0 {
		return nil, fmt.Errorf("%w: empty grid", ErrInvalidInput)
	}
	x := make([]float64, 0, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			v := z.At(r, c)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("%w: non-finite height at (%d, %d)", ErrInvalidInput, r, c)
			}
			x = append(x, v)
		}
	}
	return x, nil
}

// Sq returns the root mean square deviation of the heights from their mean
func Sq(z mat.Matrix) (float64, error) {
	x, err := heights(z)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(stat.Moment(2, x, nil)), nil
}

// Sa returns the mean absolute deviation of the heights from their mean
func Sa(z mat.Matrix) (float64, error) {
	x, err := heights(z)
	if err != nil {
		return 0, err
	}
	mean := stat.Mean(x, nil)
	sum := 0.0
	for _, v := range x {
		sum += math.Abs(v - mean)
	}
	return sum / float64(len(x)), nil
}

// Sdq returns the root mean square gradient, from forward differences
// along x (columns, spacing dx) and y (rows, spacing dy). The squared
// differences of both directions are summed and divided by (M−1)(N−1).
func Sdq(z mat.Matrix, dx, dy float64) (float64, error) {
	if !(dx > 0) || !(dy > 0) || math.IsInf(dx, 0) || math.IsInf(dy, 0) {
		return 0, fmt.Errorf("%w: dx and dy must be finite and > 0, got %v and %v", ErrInvalidInput, dx, dy)
	}
	rows, cols := z.Dims()
	if rows < 2 || cols < 2 {
		return 0, fmt.Errorf("%w: need at least 2x2 samples, got %dx%d", ErrInvalidInput, rows, cols)
	}
	if _, err := heights(z); err != nil {
		return 0, err
	}

	var gx, gy mat.Dense
	gx.Sub(sliceOf(z, 0, rows, 1, cols), sliceOf(z, 0, rows, 0, cols-1))
	gx.Scale(1/dx, &gx)
	gy.Sub(sliceOf(z, 1, rows, 0, cols), sliceOf(z, 0, rows-1, 0, cols))
	gy.Scale(1/dy, &gy)

	nx := mat.Norm(&gx, 2)
	ny := mat.Norm(&gy, 2)
	return math.Sqrt((nx*nx + ny*ny) / float64((rows-1)*(cols-1))), nil
}

// sliceOf returns the view z[i:k, j:l]
func sliceOf(z mat.Matrix, i, k, j, l int) mat.Matrix {
	if s, ok := z.(interface {
		Slice(i, k, j, l int) mat.Matrix
	}); ok {
		return s.Slice(i, k, j, l)
	}
	return mat.DenseCopyOf(z).Slice(i, k, j, l)
}

// Sku returns the kurtosis of the heights, mean((z−m)⁴)/Sq⁴. A flat grid
// yields +Inf.
func Sku(z mat.Matrix) (float64, error) {
	x, err := heights(z)
	if err != nil {
		return 0, err
	}
	return kurtosis(x), nil
}

// Ssk returns the skewness of the heights, mean((z−m)³)/Sq³. A flat grid
// yields NaN.
func Ssk(z mat.Matrix) (float64, error) {
	x, err := heights(z)
	if err != nil {
		return 0, err
	}
	return skewness(x), nil
}

func kurtosis(x []float64) float64 {
	sq := math.Sqrt(stat.Moment(2, x, nil))
	if sq == 0 {
		return math.Inf(1)
	}
	return stat.Moment(4, x, nil) / math.Pow(sq, 4)
}

func skewness(x []float64) float64 {
	sq := math.Sqrt(stat.Moment(2, x, nil))
	if sq == 0 {
		return math.NaN()
	}
	return stat.Moment(3, x, nil) / math.Pow(sq, 3)
}

// Result holds all roughness parameters of one grid
type Result struct {
	Sq, Sa, Sdq, Sku, Ssk float64
}

// Functions computes every roughness parameter of z. Input is validated
// before any parameter is computed.
func Functions(z mat.Matrix, dx, dy float64) (Result, error) {
	sdq, err := Sdq(z, dx, dy)
	if err != nil {
		return Result{}, err
	}
	x, err := heights(z)
	if err != nil {
		return Result{}, err
	}

	sq, err := Sq(z)
	if err != nil {
		return Result{}, err
	}
	sa, err := Sa(z)
	if err != nil {
		return Result{}, err
	}
	return Result{
		Sq:  sq,
		Sa:  sa,
		Sdq: sdq,
		Sku: kurtosis(x),
		Ssk: skewness(x),
	}, nil
}
