package bezier

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoControlPoints is returned when constructing a curve or surface without
// control points.
var ErrNoControlPoints = errors.New("no control points")

var _ ParametricCurve = Curve{}

// Curve is a Bézier curve in ℝ³. Its degree is one less than the number of
// control points, and the order of the points determines the
// parametrization.
//
// The curve passes through its first and last control point, but generally
// not through the others.
type Curve struct {
	P []Point3
}

// NewCurve returns the curve with the given control points. The points are
// copied.
func NewCurve(pts ...Point3) (Curve, error) {
	if len(pts) == 0 {
		return Curve{}, ErrNoControlPoints
	}
	return Curve{P: append([]Point3(nil), pts...)}, nil
}

// Degree returns the degree of the curve, which is len(c.P)-1.
func (c Curve) Degree() int {
	return len(c.P) - 1
}

func (c Curve) Start() Point3 {
	if len(c.P) == 0 {
		return Point3{}
	}
	return c.P[0]
}

func (c Curve) End() Point3 {
	if len(c.P) == 0 {
		return Point3{}
	}
	return c.P[len(c.P)-1]
}

func (c Curve) String() string {
	parts := make([]string, len(c.P))
	for i, p := range c.P {
		parts[i] = p.String()
	}
	return fmt.Sprintf("Curve[%s]", strings.Join(parts, ", "))
}

// Eval evaluates the curve at t using the de Casteljau algorithm.
func (c Curve) Eval(t float64) Point3 {
	return c.EvalDeCasteljau(P1(t))
}

// EvalWith evaluates the curve at the first coordinate of xi using the given
// algorithm.
func (c Curve) EvalWith(alg Algorithm, xi Point1) Point3 {
	if alg == Direct {
		return c.EvalDirect(xi)
	}
	return c.EvalDeCasteljau(xi)
}

// EvalDirect evaluates the curve at the first coordinate of xi by summing the
// control points weighted by the Bernstein basis polynomials.
//
// This algorithm is not numerically stable. Binomial coefficients grow quickly
// with the degree and the sum suffers from cancellation. Prefer
// [Curve.EvalDeCasteljau].
func (c Curve) EvalDirect(xi Point1) Point3 {
	var res Point3
	n := uint(c.Degree())
	for i, p := range c.P {
		b := Bernstein{n: n, i: uint(i)}
		res.AddAssign(p.Mul(b.Eval(xi).X()))
	}
	return res
}

// EvalDeCasteljau evaluates the curve at the first coordinate of xi using the
// de Casteljau algorithm.
//
// Starting from the control points, each pass replaces every point with the
// linear interpolation between it and its successor, leaving one point fewer.
// After n passes the remaining point is the value of the curve.
func (c Curve) EvalDeCasteljau(xi Point1) Point3 {
	if len(c.P) == 0 {
		return Point3{}
	}
	t := xi.X()
	n := c.Degree()
	q := matrixFromPoints(c.P)
	for k := 1; k <= n; k++ {
		for i := 0; i <= n-k; i++ {
			q.SetRowPoint3(i, q.RowPoint3(i).Lerp(q.RowPoint3(i+1), t))
		}
	}
	return q.RowPoint3(0)
}

// Derivative returns the hodograph of the curve, the Bézier curve of degree
// n-1 that evaluates to the derivative of c.
//
// The derivative of a curve of degree zero is the constant zero.
func (c Curve) Derivative() Curve {
	if len(c.P) < 2 {
		return Curve{P: []Point3{{}}}
	}
	n := float64(c.Degree())
	d := make([]Point3, len(c.P)-1)
	for i := range d {
		d[i] = c.P[i+1].Sub(c.P[i]).Mul(n)
	}
	return Curve{P: d}
}

// Reverse returns the curve with its parametrization reversed.
func (c Curve) Reverse() Curve {
	r := make([]Point3, len(c.P))
	for i, p := range c.P {
		r[len(r)-1-i] = p
	}
	return Curve{P: r}
}
