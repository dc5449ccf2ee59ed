package bezier

import (
	"iter"
)

// Subdivide splits the curve at t using de Casteljau. The first curve covers
// [0, t] and the second [t, 1] of the original parametrization, and both have
// the degree of c.
func (c Curve) Subdivide(t float64) (Curve, Curve) {
	n := len(c.P)
	if n == 0 {
		return Curve{}, Curve{}
	}
	q := append([]Point3(nil), c.P...)
	left := make([]Point3, n)
	right := make([]Point3, n)
	left[0] = q[0]
	right[n-1] = q[n-1]
	for k := 1; k < n; k++ {
		for i := 0; i < n-k; i++ {
			q[i] = q[i].Lerp(q[i+1], t)
		}
		left[k] = q[0]
		right[n-1-k] = q[n-1-k]
	}
	return Curve{P: left}, Curve{P: right}
}

// Subsegment returns the curve that traces c from t0 to t1. If t0 > t1 the
// result runs backwards.
func (c Curve) Subsegment(t0, t1 float64) Curve {
	switch {
	case len(c.P) == 0:
		return Curve{}
	case t0 > t1:
		return c.Subsegment(t1, t0).Reverse()
	case t0 == t1:
		p := make([]Point3, len(c.P))
		pt := c.Eval(t0)
		for i := range p {
			p[i] = pt
		}
		return Curve{P: p}
	case t1 != 0:
		head, _ := c.Subdivide(t1)
		_, seg := head.Subdivide(t0 / t1)
		return seg
	default:
		_, tail := c.Subdivide(t0)
		seg, _ := tail.Subdivide((t1 - t0) / (1 - t0))
		return seg
	}
}

// SplitN returns n curves of equal parameter length that together trace c.
func (c Curve) SplitN(n int) iter.Seq[Curve] {
	return func(yield func(Curve) bool) {
		if n <= 0 || len(c.P) == 0 {
			return
		}
		rest := c
		for i := range n - 1 {
			// The remaining curve covers [i/n, 1].
			head, tail := rest.Subdivide(1 / float64(n-i))
			if !yield(head) {
				return
			}
			rest = tail
		}
		yield(rest)
	}
}
