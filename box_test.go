package bezier

import (
	"testing"
)

func TestBoxFromPoints(t *testing.T) {
	b := NewBoxFromPoints(P3(1, 5, -1), P3(-2, 3, 4), P3(0, 7, 0))
	diff(t, Box{Min: P3(-2, 3, -1), Max: P3(1, 7, 4)}, b)
	diff(t, P3(3, 4, 5), b.Size())
	diff(t, P3(-0.5, 5, 1.5), b.Center())
	if v := b.Volume(); v != 60 {
		t.Errorf("got volume %g, want 60", v)
	}
	diff(t, Box{}, NewBoxFromPoints())

	u := b.Union(NewBoxFromPoints(P3(10, 0, 0)))
	diff(t, Box{Min: P3(-2, 0, -1), Max: P3(10, 7, 4)}, u)
}

func TestBoxContains(t *testing.T) {
	b := NewBoxFromPoints(P3(0, 0, 0), P3(1, 1, 1))
	if !b.Contains(P3(0.5, 0, 1), 0) {
		t.Error("points on the boundary should be contained")
	}
	if b.Contains(P3(0.5, 1.1, 0.5), 0) {
		t.Error("point outside of box should not be contained")
	}
	if !b.Contains(P3(0.5, 1.1, 0.5), 0.2) {
		t.Error("point within tolerance should be contained")
	}
}

func TestCurveConvexHull(t *testing.T) {
	n := 40
	for _, c := range testCurves() {
		box := c.BoundingBox()
		for i := range n + 1 {
			p := c.Eval(float64(i) / float64(n))
			if !box.Contains(p, 1e-12) {
				t.Fatalf("%s at %g lies outside of %s", c, float64(i)/float64(n), box)
			}
		}
	}
}
