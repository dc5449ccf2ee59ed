package bezier

import (
	"math/big"

	"github.com/ALTree/bigfloat"
)

// DefaultPrec is the precision, in bits, used by the exact evaluators when
// no precision is given.
const DefaultPrec = 256

// EvalExact evaluates the polynomial at xi using big.Float arithmetic with
// prec bits of precision. The binomial coefficient is computed exactly, so the
// result does not degrade for large degrees the way [Bernstein.Eval] does.
//
// A prec of zero selects [DefaultPrec]. EvalExact panics if xi is NaN.
func (b Bernstein) EvalExact(xi float64, prec uint) *big.Float {
	if prec == 0 {
		prec = DefaultPrec
	}
	x := new(big.Float).SetPrec(prec).SetFloat64(xi)
	mx := new(big.Float).SetPrec(prec).SetInt64(1)
	mx.Sub(mx, x)

	res := new(big.Float).SetPrec(prec).SetInt(new(big.Int).Binomial(int64(b.n), int64(b.i)))
	res.Mul(res, powInt(x, b.i))
	res.Mul(res, powInt(mx, b.n-b.i))
	return res
}

// powInt returns x**k with the precision of x.
func powInt(x *big.Float, k uint) *big.Float {
	prec := x.Prec()
	switch {
	case k == 0:
		return new(big.Float).SetPrec(prec).SetInt64(1)
	case x.Sign() == 0:
		return new(big.Float).SetPrec(prec)
	case k == 1:
		return new(big.Float).Set(x)
	}
	// bigfloat.Pow only accepts positive bases.
	abs := new(big.Float).Abs(x)
	r := bigfloat.Pow(abs, new(big.Float).SetPrec(prec).SetInt64(int64(k)))
	if x.Sign() < 0 && k%2 == 1 {
		r.Neg(r)
	}
	return r
}

// EvalExact evaluates the curve at xi with the direct algorithm, carrying out
// all arithmetic with prec bits of precision and rounding the result to
// float64. It is much slower than the other algorithms and serves as a
// reference when measuring their error.
//
// A prec of zero selects [DefaultPrec].
func (c Curve) EvalExact(xi float64, prec uint) Point3 {
	if prec == 0 {
		prec = DefaultPrec
	}
	var sum [3]*big.Float
	for k := range sum {
		sum[k] = new(big.Float).SetPrec(prec)
	}
	n := uint(c.Degree())
	tmp := new(big.Float).SetPrec(prec)
	for i, p := range c.P {
		w := Bernstein{n: n, i: uint(i)}.EvalExact(xi, prec)
		for k := range sum {
			tmp.SetFloat64(p.Value(k))
			tmp.Mul(tmp, w)
			sum[k].Add(sum[k], tmp)
		}
	}
	var res Point3
	for k, s := range sum {
		f, _ := s.Float64()
		res.SetValue(k, f)
	}
	return res
}
