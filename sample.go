package bezier

import (
	"iter"
)

// Range is the closed parameter interval [A, B].
type Range struct {
	A, B float64
}

// UnitRange is the interval [0, 1], the canonical domain of Bézier curves.
var UnitRange = Range{A: 0, B: 1}

// Samples returns n equally spaced parameters covering r, including both
// ends. For n == 1 it yields only A.
func (r Range) Samples(n int) iter.Seq2[int, float64] {
	return func(yield func(int, float64) bool) {
		if n <= 0 {
			return
		}
		if n == 1 {
			yield(0, r.A)
			return
		}
		step := (r.B - r.A) / float64(n-1)
		for i := range n {
			t := r.A + float64(i)*step
			if i == n-1 {
				t = r.B
			}
			if !yield(i, t) {
				return
			}
		}
	}
}

// SampleCurve evaluates c at n equally spaced parameters in r and returns the
// parameters and the points.
func SampleCurve(c Curve, alg Algorithm, r Range, n int) ([]float64, []Point3) {
	ts := make([]float64, 0, max(n, 0))
	pts := make([]Point3, 0, max(n, 0))
	for _, t := range r.Samples(n) {
		ts = append(ts, t)
		pts = append(pts, c.EvalWith(alg, P1(t)))
	}
	return ts, pts
}

// SampleSurface evaluates s on an n×n grid of parameters covering ru×rv. The
// result is row-major with u varying slowest.
func SampleSurface(s Surface, alg Algorithm, ru, rv Range, n int) ([]Point2, []Point3) {
	uvs := make([]Point2, 0, max(n*n, 0))
	pts := make([]Point3, 0, max(n*n, 0))
	for _, u := range ru.Samples(n) {
		for _, v := range rv.Samples(n) {
			uv := P2(u, v)
			uvs = append(uvs, uv)
			pts = append(pts, s.EvalWith(alg, uv))
		}
	}
	return uvs, pts
}

// SplitCoords splits points into one slice per coordinate.
func SplitCoords(pts []Point3) (xs, ys, zs []float64) {
	xs = make([]float64, len(pts))
	ys = make([]float64, len(pts))
	zs = make([]float64, len(pts))
	for i, p := range pts {
		xs[i], ys[i], zs[i] = p.X(), p.Y(), p.Z()
	}
	return xs, ys, zs
}
