package bezier

import (
	"fmt"
	"strings"
)

// DefaultAccuracy is a default tolerance for comparing the results of
// different evaluation algorithms.
const DefaultAccuracy = 1e-6

// ParametricCurve describes a curve in ℝ³ parametrized by a scalar.
type ParametricCurve interface {
	// Eval evaluates the curve at parameter t. Generally, t is in the range [0, 1].
	Eval(t float64) Point3
	Start() Point3
	End() Point3
}

// ParametricSurface describes a surface in ℝ³ parametrized by two scalars.
type ParametricSurface interface {
	// Eval evaluates the surface at (u, v). Generally, both are in the range [0, 1].
	Eval(u, v float64) Point3
}

// Algorithm selects how Bézier curves and surfaces are evaluated.
type Algorithm int

const (
	// DeCasteljau evaluates by repeated linear interpolation of the control
	// points. It is numerically stable and the recommended algorithm.
	DeCasteljau Algorithm = iota
	// Direct evaluates the sum of control points weighted by the Bernstein
	// basis polynomials. It is numerically unstable for higher degrees and
	// mostly serves as a reference.
	Direct
)

func (alg Algorithm) String() string {
	switch alg {
	case DeCasteljau:
		return "decasteljau"
	case Direct:
		return "direct"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(alg))
	}
}

// ParseAlgorithm parses the names returned by [Algorithm.String].
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(s) {
	case "decasteljau", "de-casteljau", "":
		return DeCasteljau, nil
	case "direct":
		return Direct, nil
	default:
		return 0, fmt.Errorf("unknown algorithm %q", s)
	}
}
