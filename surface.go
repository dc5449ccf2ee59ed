package bezier

import (
	"fmt"
)

var _ ParametricSurface = Surface{}

// Surface is a tensor-product Bézier surface patch in ℝ³, defined by a
// rectangular grid of control points. P[i][j] is the control point at row i
// and column j; rows run along u and columns along v.
type Surface struct {
	P [][]Point3
}

// NewSurface returns the surface with the given grid of control points. The
// grid is copied. All rows must have the same, non-zero length.
func NewSurface(grid [][]Point3) (Surface, error) {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return Surface{}, ErrNoControlPoints
	}
	p := make([][]Point3, len(grid))
	for i, row := range grid {
		if len(row) != len(grid[0]) {
			return Surface{}, fmt.Errorf("row %d has %d control points, expected %d", i, len(row), len(grid[0]))
		}
		p[i] = append([]Point3(nil), row...)
	}
	return Surface{P: p}, nil
}

// Degree returns the degrees of the surface in u and v.
func (s Surface) Degree() (m, n int) {
	if len(s.P) == 0 {
		return -1, -1
	}
	return len(s.P) - 1, len(s.P[0]) - 1
}

// Eval evaluates the surface at (u, v) using the de Casteljau algorithm.
func (s Surface) Eval(u, v float64) Point3 {
	return s.EvalDeCasteljau(P2(u, v))
}

// EvalWith evaluates the surface at uv using the given algorithm.
func (s Surface) EvalWith(alg Algorithm, uv Point2) Point3 {
	if alg == Direct {
		return s.EvalDirect(uv)
	}
	return s.EvalDeCasteljau(uv)
}

// EvalDeCasteljau evaluates the surface at uv. Each row is evaluated as a
// curve at v, and the resulting points are evaluated as a curve at u.
func (s Surface) EvalDeCasteljau(uv Point2) Point3 {
	if len(s.P) == 0 {
		return Point3{}
	}
	v := P1(uv.Y())
	col := make([]Point3, len(s.P))
	for i, row := range s.P {
		col[i] = Curve{P: row}.EvalDeCasteljau(v)
	}
	return Curve{P: col}.EvalDeCasteljau(P1(uv.X()))
}

// EvalDirect evaluates the surface at uv as the sum of the control points
// weighted by products of Bernstein polynomials. Like [Curve.EvalDirect], it
// is not numerically stable.
func (s Surface) EvalDirect(uv Point2) Point3 {
	m, n := s.Degree()
	if m < 0 {
		return Point3{}
	}
	u, v := P1(uv.X()), P1(uv.Y())
	bv := make([]float64, n+1)
	for j := range bv {
		bv[j] = Bernstein{n: uint(n), i: uint(j)}.Eval(v).X()
	}
	var res Point3
	for i, row := range s.P {
		bu := Bernstein{n: uint(m), i: uint(i)}.Eval(u).X()
		for j, p := range row {
			res.AddAssign(p.Mul(bu * bv[j]))
		}
	}
	return res
}

// Row returns the curve formed by row i of the control grid, which is the
// boundary or an interior isoparametric curve along v.
func (s Surface) Row(i int) Curve {
	return Curve{P: append([]Point3(nil), s.P[i]...)}
}

// Column returns the curve formed by column j of the control grid.
func (s Surface) Column(j int) Curve {
	c := make([]Point3, len(s.P))
	for i, row := range s.P {
		c[i] = row[j]
	}
	return Curve{P: c}
}
