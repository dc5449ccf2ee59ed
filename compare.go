package bezier

import (
	"fmt"

	"github.com/montanaflynn/stats"
)

// Report summarizes how much the evaluation algorithms disagree on a curve.
// All values are euclidean distances.
type Report struct {
	Degree  int
	Samples int

	// Distances between Direct and DeCasteljau.
	MaxDiff  float64
	MeanDiff float64
	P95Diff  float64

	// Largest distances to the high-precision reference, see [Curve.EvalExact].
	MaxDirectErr      float64
	MaxDeCasteljauErr float64
}

// Agree reports whether the two algorithms agree within tol at every sample.
func (r Report) Agree(tol float64) bool {
	return r.MaxDiff <= tol
}

func (r Report) String() string {
	return fmt.Sprintf("degree %d, %d samples: max %g, mean %g, p95 %g; error direct %g, de casteljau %g",
		r.Degree, r.Samples, r.MaxDiff, r.MeanDiff, r.P95Diff, r.MaxDirectErr, r.MaxDeCasteljauErr)
}

// Compare evaluates c at n equally spaced parameters in r with both
// algorithms and the high-precision reference, and summarizes the
// differences.
func Compare(c Curve, r Range, n int) (Report, error) {
	if len(c.P) == 0 {
		return Report{}, ErrNoControlPoints
	}
	if n <= 0 {
		return Report{}, fmt.Errorf("invalid number of samples %d", n)
	}

	diffs := make(stats.Float64Data, 0, n)
	directErrs := make(stats.Float64Data, 0, n)
	casteljauErrs := make(stats.Float64Data, 0, n)
	for _, t := range r.Samples(n) {
		xi := P1(t)
		d := c.EvalDirect(xi)
		q := c.EvalDeCasteljau(xi)
		ref := c.EvalExact(t, DefaultPrec)
		diffs = append(diffs, d.Distance(q))
		directErrs = append(directErrs, d.Distance(ref))
		casteljauErrs = append(casteljauErrs, q.Distance(ref))
	}

	rep := Report{
		Degree:  c.Degree(),
		Samples: len(diffs),
	}
	var err error
	if rep.MaxDiff, err = diffs.Max(); err != nil {
		return Report{}, err
	}
	if rep.MeanDiff, err = diffs.Mean(); err != nil {
		return Report{}, err
	}
	if rep.P95Diff, err = diffs.Percentile(95); err != nil {
		return Report{}, err
	}
	if rep.MaxDirectErr, err = directErrs.Max(); err != nil {
		return Report{}, err
	}
	if rep.MaxDeCasteljauErr, err = casteljauErrs.Max(); err != nil {
		return Report{}, err
	}
	return rep, nil
}
