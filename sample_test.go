package bezier

import (
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestRangeSamples(t *testing.T) {
	var got []float64
	for i, x := range UnitRange.Samples(5) {
		if i != len(got) {
			t.Fatalf("got index %d, want %d", i, len(got))
		}
		got = append(got, x)
	}
	diff(t, []float64{0, 0.25, 0.5, 0.75, 1}, got)

	got = got[:0]
	for _, x := range (Range{A: 2, B: -1}).Samples(4) {
		got = append(got, x)
	}
	diff(t, []float64{2, 1, 0, -1}, got, cmpopts.EquateApprox(0, 1e-12))

	got = got[:0]
	for _, x := range (Range{A: 0.3, B: 1}).Samples(1) {
		got = append(got, x)
	}
	diff(t, []float64{0.3}, got)

	for range UnitRange.Samples(0) {
		t.Fatal("expected no samples")
	}
}

func TestSampleCurve(t *testing.T) {
	c := Curve{P: []Point3{P3(0, 0, 0), P3(2, 4, 6)}}
	ts, pts := SampleCurve(c, DeCasteljau, UnitRange, 3)
	diff(t, []float64{0, 0.5, 1}, ts)
	diff(t, []Point3{P3(0, 0, 0), P3(1, 2, 3), P3(2, 4, 6)}, pts, pointComparer)

	_, direct := SampleCurve(c, Direct, UnitRange, 3)
	diff(t, pts, direct, pointComparer)

	xs, ys, zs := SplitCoords(pts)
	diff(t, []float64{0, 1, 2}, xs)
	diff(t, []float64{0, 2, 4}, ys)
	diff(t, []float64{0, 3, 6}, zs)
}

func TestSampleSurface(t *testing.T) {
	s := testSurface()
	uvs, pts := SampleSurface(s, DeCasteljau, UnitRange, UnitRange, 3)
	if len(uvs) != 9 || len(pts) != 9 {
		t.Fatalf("got %d parameters and %d points, want 9", len(uvs), len(pts))
	}
	diff(t, P2(0, 1), uvs[2])
	diff(t, P2(0.5, 0), uvs[3])
	for i, uv := range uvs {
		assertNear(t, pts[i], s.Eval(uv.X(), uv.Y()), 0)
	}
}
