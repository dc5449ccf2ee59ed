package bezier

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurveEvalExact(t *testing.T) {
	for _, c := range testCurves() {
		for _, xi := range []float64{0, 0.1, 0.5, 0.77, 1} {
			assertNear(t, c.EvalExact(xi, 0), c.EvalDeCasteljau(P1(xi)), 1e-11)
		}
	}
}

func TestCompare(t *testing.T) {
	for _, c := range testCurves() {
		rep, err := Compare(c, UnitRange, 25)
		require.NoError(t, err)
		assert.Equal(t, c.Degree(), rep.Degree)
		assert.Equal(t, 25, rep.Samples)
		assert.True(t, rep.Agree(DefaultAccuracy), "%s", rep)
		assert.LessOrEqual(t, rep.MeanDiff, rep.MaxDiff)
		assert.LessOrEqual(t, rep.P95Diff, rep.MaxDiff)
		assert.Less(t, rep.MaxDeCasteljauErr, 1e-11)
	}
}

func TestCompareHighDegree(t *testing.T) {
	// Beyond degree 170 the factorials overflow and the direct algorithm
	// breaks down, while de Casteljau keeps matching the reference.
	p := make([]Point3, 200)
	for i := range p {
		p[i] = P3(float64(i), float64(i%7), 1)
	}
	rep, err := Compare(Curve{P: p}, Range{A: 0.25, B: 0.75}, 5)
	require.NoError(t, err)
	assert.False(t, rep.Agree(DefaultAccuracy))
	assert.Less(t, rep.MaxDeCasteljauErr, 1e-9)
}

func TestCompareInvalid(t *testing.T) {
	_, err := Compare(Curve{}, UnitRange, 10)
	if !errors.Is(err, ErrNoControlPoints) {
		t.Errorf("got error %v, want %v", err, ErrNoControlPoints)
	}
	_, err = Compare(testCurves()[2], UnitRange, 0)
	if err == nil {
		t.Error("expected error for zero samples")
	}
}
