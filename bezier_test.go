package bezier

import (
	"errors"
	"testing"
)

func TestCurveLinear(t *testing.T) {
	p0, p1 := P3(1, -2, 0.5), P3(4, 6, -3)
	c := Curve{P: []Point3{p0, p1}}
	n := 100
	for i := range n + 1 {
		xi := float64(i) / float64(n)
		want := p0.Mul(1 - xi).Add(p1.Mul(xi))
		assertNear(t, c.EvalDirect(P1(xi)), want, 1e-9)
		assertNear(t, c.EvalDeCasteljau(P1(xi)), want, 1e-9)
	}
}

func TestCurveConstant(t *testing.T) {
	p := P3(3, 1, 4)
	c, err := NewCurve(p)
	if err != nil {
		t.Fatal(err)
	}
	if d := c.Degree(); d != 0 {
		t.Errorf("got degree %d, want 0", d)
	}
	for _, xi := range []float64{0, 0.3, 1, -2, 7} {
		diff(t, p, c.EvalDirect(P1(xi)))
		diff(t, p, c.EvalDeCasteljau(P1(xi)))
		diff(t, p, c.Eval(xi))
	}
}

func TestCurveAlgorithmsAgree(t *testing.T) {
	n := 50
	for _, c := range testCurves() {
		for i := range n + 1 {
			xi := P1(float64(i) / float64(n))
			assertNear(t, c.EvalDirect(xi), c.EvalDeCasteljau(xi), DefaultAccuracy)
		}
	}
}

func TestCurveEndpoints(t *testing.T) {
	for _, c := range testCurves() {
		assertNear(t, c.Eval(0), c.Start(), 1e-12)
		assertNear(t, c.Eval(1), c.End(), 1e-12)
		assertNear(t, c.EvalDirect(P1(0)), c.Start(), 1e-12)
		assertNear(t, c.EvalDirect(P1(1)), c.End(), 1e-12)
	}
}

func TestCurveKnownValue(t *testing.T) {
	// The cubic with control points on the x axis at 0, 1, 2, 3 is linear in t.
	c := Curve{P: []Point3{P3(0, 0, 0), P3(1, 0, 0), P3(2, 0, 0), P3(3, 0, 0)}}
	assertNear(t, c.Eval(0.5), P3(1.5, 0, 0), 1e-12)

	c = Curve{P: []Point3{P3(0, 0, 0), P3(1, 2, 0), P3(2, 0, 0)}}
	assertNear(t, c.Eval(0.5), P3(1, 1, 0), 1e-12)
	assertNear(t, c.EvalWith(Direct, P1(0.5)), P3(1, 1, 0), 1e-12)
	assertNear(t, c.EvalWith(DeCasteljau, P1(0.25)), P3(0.5, 0.75, 0), 1e-12)
}

func TestCurveEvalDoesNotModify(t *testing.T) {
	c := testCurves()[5]
	orig := append([]Point3(nil), c.P...)
	c.EvalDeCasteljau(P1(0.3))
	c.EvalDirect(P1(0.3))
	diff(t, orig, c.P)
}

func TestNewCurve(t *testing.T) {
	if _, err := NewCurve(); !errors.Is(err, ErrNoControlPoints) {
		t.Errorf("got error %v, want %v", err, ErrNoControlPoints)
	}

	pts := []Point3{P3(0, 0, 0), P3(1, 1, 1)}
	c, err := NewCurve(pts...)
	if err != nil {
		t.Fatal(err)
	}
	pts[0] = P3(9, 9, 9)
	diff(t, P3(0, 0, 0), c.Start())
}

func TestCurveDerivative(t *testing.T) {
	const h = 1e-6
	for _, c := range testCurves()[1:] {
		d := c.Derivative()
		if d.Degree() != c.Degree()-1 {
			t.Fatalf("got derivative of degree %d for curve of degree %d", d.Degree(), c.Degree())
		}
		for _, xi := range []float64{0.1, 0.5, 0.8} {
			fd := c.Eval(xi + h).Sub(c.Eval(xi - h)).Mul(1 / (2 * h))
			want := d.Eval(xi)
			if dist := fd.Distance(want); dist > 1e-4*max(1, want.Distance(Point3{})) {
				t.Errorf("degree %d at %g: got derivative %s, finite difference %s", c.Degree(), xi, want, fd)
			}
		}
	}

	d := Curve{P: []Point3{P3(1, 2, 3)}}.Derivative()
	diff(t, Curve{P: []Point3{{}}}, d)
}

func TestCurveReverse(t *testing.T) {
	for _, c := range testCurves() {
		r := c.Reverse()
		for _, xi := range []float64{0, 0.25, 0.6, 1} {
			assertNear(t, r.Eval(xi), c.Eval(1-xi), 1e-9)
		}
	}
}
