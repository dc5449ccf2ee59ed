package bezier

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func assertNear(t *testing.T, got, want Point3, epsilon float64) {
	t.Helper()
	if d := got.Distance(want); d > epsilon {
		t.Fatalf("got %s, expected %s (distance %g)", got, want, d)
	}
}

// pointComparer compares float64 points up to 1e-12. Without it, points are
// compared exactly via their Equal method.
var pointComparer = cmp.Options{
	cmp.Comparer(func(a, b Point1) bool { return a.Distance(b) <= 1e-12 }),
	cmp.Comparer(func(a, b Point2) bool { return a.Distance(b) <= 1e-12 }),
	cmp.Comparer(func(a, b Point3) bool { return a.Distance(b) <= 1e-12 }),
	cmp.Comparer(func(a, b Point4) bool { return a.Distance(b) <= 1e-12 }),
}

// testCurves returns a set of well-conditioned curves of degree 0 to 10.
func testCurves() []Curve {
	var out []Curve
	for n := 0; n <= 10; n++ {
		p := make([]Point3, n+1)
		for i := range p {
			fi := float64(i)
			p[i] = P3(fi, (fi*7+3)/(fi+1)-float64(n%3), 0.5*fi*fi/float64(n+1))
		}
		out = append(out, Curve{P: p})
	}
	return out
}
