// Package form implements published particle form indices: convexity,
// Wadell and Krumbein sphericity, and the flatness/elongation ratios of
// Zingg (1935), Kong & Fonseca (2018) and Potticary et al. (2015).
//
// S, I and L are the short, intermediate and long characteristic axis
// lengths of a particle. Every function validates its whole input before
// computing anything and reports violations wrapping ErrInvalidInput.
package form

import (
	"errors"
	"fmt"
	"math"

	"github.com/philipparndt/gomorph/pkg/mesh"
)

// ErrInvalidInput is wrapped by every input-contract violation
var ErrInvalidInput = errors.New("form: invalid input")

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

func checkFinite(names []string, values ...float64) error {
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return invalid("%s must be finite, got %v", names[i], v)
		}
	}
	return nil
}

// checkAxes enforces L >= I >= S > 0
func checkAxes(s, i, l float64) error {
	if err := checkFinite([]string{"S", "I", "L"}, s, i, l); err != nil {
		return err
	}
	if s <= 0 {
		return invalid("S must be > 0, got %v", s)
	}
	if s > i {
		return invalid("axes must satisfy S <= I, got S=%v I=%v", s, i)
	}
	if i > l {
		return invalid("axes must satisfy I <= L, got I=%v L=%v", i, l)
	}
	return nil
}

// Convexity returns volume / hull, the ratio of the particle volume to the
// volume of its convex hull. A hull smaller than the volume by more than
// the relative tolerance is rejected; within tolerance the result is 1.
func Convexity(volume, hull float64) (float64, error) {
	if err := checkFinite([]string{"volume", "hull volume"}, volume, hull); err != nil {
		return 0, err
	}
	if hull <= 0 {
		return 0, invalid("hull volume must be > 0, got %v", hull)
	}
	if volume <= 0 {
		return 0, invalid("volume must be > 0, got %v", volume)
	}

	ratio := volume / hull
	if ratio > 1+mesh.RelTol {
		return 0, invalid("hull volume %v is smaller than volume %v", hull, volume)
	}
	return math.Min(ratio, 1), nil
}

// SphericityWadell returns π^(1/3)·(6V)^(2/3) / A, the surface area of the
// volume-equivalent sphere divided by the actual surface area. It lies in
// (0, 1] for convex bodies.
func SphericityWadell(volume, area float64) (float64, error) {
	if err := checkFinite([]string{"volume", "area"}, volume, area); err != nil {
		return 0, err
	}
	if volume <= 0 {
		return 0, invalid("volume must be > 0, got %v", volume)
	}
	if area <= 0 {
		return 0, invalid("surface area must be > 0, got %v", area)
	}
	return math.Cbrt(math.Pi) * math.Pow(6*volume, 2.0/3.0) / area, nil
}

// SphericityKrumbein returns (S·I / L²)^(1/3)
func SphericityKrumbein(s, i, l float64) (float64, error) {
	if err := checkAxes(s, i, l); err != nil {
		return 0, err
	}
	return math.Cbrt(s * i / (l * l)), nil
}

// ZinggClass is the shape class of the Zingg diagram
type ZinggClass int

const (
	Equant ZinggClass = iota
	Oblate
	Prolate
	Bladed
)

// ZinggThreshold separates the four Zingg classes on both ratios
const ZinggThreshold = 2.0 / 3.0

func (c ZinggClass) String() string {
	switch c {
	case Equant:
		return "equant"
	case Oblate:
		return "oblate (disc)"
	case Prolate:
		return "prolate (rod)"
	case Bladed:
		return "bladed"
	default:
		return fmt.Sprintf("ZinggClass(%d)", int(c))
	}
}

// Zingg holds the Zingg (1935) ratios and class
type Zingg struct {
	// SI is S/I
	SI float64
	// IL is I/L
	IL    float64
	Class ZinggClass
}

// ParametersZingg returns S/I and I/L and the Zingg class, using 2/3 as the
// boundary on both ratios.
func ParametersZingg(s, i, l float64) (Zingg, error) {
	if err := checkAxes(s, i, l); err != nil {
		return Zingg{}, err
	}
	z := Zingg{SI: s / i, IL: i / l}
	z.Class = classifyZingg(z.SI, z.IL)
	return z, nil
}

func classifyZingg(si, il float64) ZinggClass {
	switch {
	case si > ZinggThreshold && il > ZinggThreshold:
		return Equant
	case il > ZinggThreshold:
		return Oblate
	case si > ZinggThreshold:
		return Prolate
	default:
		return Bladed
	}
}

// FlatnessElongation is a flatness/elongation pair. Both are 0 for a
// particle with three equal axes.
type FlatnessElongation struct {
	Flatness   float64
	Elongation float64
}

// ParametersKongAndFonseca returns flatness (I−S)/I and elongation (L−I)/L
func ParametersKongAndFonseca(s, i, l float64) (FlatnessElongation, error) {
	if err := checkAxes(s, i, l); err != nil {
		return FlatnessElongation{}, err
	}
	return FlatnessElongation{
		Flatness:   (i - s) / i,
		Elongation: (l - i) / l,
	}, nil
}

// ParametersPotticaryEtAl returns flatness 2(I−S)/(L+I+S) and elongation
// (L−I)/(L+I+S)
func ParametersPotticaryEtAl(s, i, l float64) (FlatnessElongation, error) {
	if err := checkAxes(s, i, l); err != nil {
		return FlatnessElongation{}, err
	}
	sum := l + i + s
	return FlatnessElongation{
		Flatness:   2 * (i - s) / sum,
		Elongation: (l - i) / sum,
	}, nil
}

// Functions1Result bundles the indices that depend on area and volume
type Functions1Result struct {
	Convexity        float64
	SphericityWadell float64
}

// Functions1 returns convexity and Wadell sphericity for one particle
func Functions1(area, volume, hull float64) (Functions1Result, error) {
	if err := checkFinite([]string{"area", "volume", "hull volume"}, area, volume, hull); err != nil {
		return Functions1Result{}, err
	}
	if area <= 0 {
		return Functions1Result{}, invalid("surface area must be > 0, got %v", area)
	}

	con, err := Convexity(volume, hull)
	if err != nil {
		return Functions1Result{}, err
	}
	spW, err := SphericityWadell(volume, area)
	if err != nil {
		return Functions1Result{}, err
	}
	return Functions1Result{Convexity: con, SphericityWadell: spW}, nil
}

// Functions2Result bundles the indices that depend on the axis lengths
type Functions2Result struct {
	SphericityKrumbein float64
	Potticary          FlatnessElongation
	KongFonseca        FlatnessElongation
	SI                 float64
	IL                 float64
	ZinggClass         ZinggClass
}

// Functions2 returns Krumbein sphericity, Potticary et al. and Kong &
// Fonseca flatness/elongation, S/I and I/L. The axes are validated once,
// before any index is computed.
func Functions2(s, i, l float64) (Functions2Result, error) {
	if err := checkAxes(s, i, l); err != nil {
		return Functions2Result{}, err
	}

	spK, err := SphericityKrumbein(s, i, l)
	if err != nil {
		return Functions2Result{}, err
	}
	pot, err := ParametersPotticaryEtAl(s, i, l)
	if err != nil {
		return Functions2Result{}, err
	}
	kf, err := ParametersKongAndFonseca(s, i, l)
	if err != nil {
		return Functions2Result{}, err
	}
	z, err := ParametersZingg(s, i, l)
	if err != nil {
		return Functions2Result{}, err
	}

	return Functions2Result{
		SphericityKrumbein: spK,
		Potticary:          pot,
		KongFonseca:        kf,
		SI:                 z.SI,
		IL:                 z.IL,
		ZinggClass:         z.Class,
	}, nil
}
