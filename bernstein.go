package bezier

import (
	"errors"
	"fmt"
	"math"
)

// ErrIndexExceedsDegree is returned by [NewBernstein] when the index of the
// basis polynomial is greater than its degree.
var ErrIndexExceedsDegree = errors.New("index exceeds degree")

// Bernstein is the Bernstein basis polynomial
//
//	B(n, i)(ξ) = C(n, i) · ξⁱ · (1−ξ)ⁿ⁻ⁱ
//
// of degree n and index i. The zero value is B(0, 0), the constant 1.
type Bernstein struct {
	n uint
	i uint
}

// NewBernstein returns the basis polynomial of degree n and index i. It returns
// an error wrapping [ErrIndexExceedsDegree] if i > n.
func NewBernstein(n, i uint) (Bernstein, error) {
	if i > n {
		return Bernstein{}, fmt.Errorf("bernstein polynomial B(%d, %d): %w", n, i, ErrIndexExceedsDegree)
	}
	return Bernstein{n: n, i: i}, nil
}

// Degree returns n.
func (b Bernstein) Degree() uint { return b.n }

// Index returns i.
func (b Bernstein) Index() uint { return b.i }

func (b Bernstein) String() string {
	return fmt.Sprintf("B(%d, %d)", b.n, b.i)
}

// Eval evaluates the polynomial at the first coordinate of xi.
//
// The input is not clamped to [0, 1]. Outside of that range the polynomial
// still evaluates and may be negative or greater than one.
//
// The binomial coefficient is computed from factorials in float64, so the
// result becomes unreliable once n! overflows, which happens for n > 170.
func (b Bernstein) Eval(xi Point1) Point1 {
	return P1(b.eval(xi.X()))
}

func (b Bernstein) eval(x float64) float64 {
	num := Factorial(b.n) * math.Pow(x, float64(b.i)) * math.Pow(1-x, float64(b.n-b.i))
	den := Factorial(b.i) * Factorial(b.n-b.i)
	return num / den
}

// Factorial returns n! computed in float64.
func Factorial(n uint) float64 {
	f := 1.0
	for k := uint(2); k <= n; k++ {
		f *= float64(k)
	}
	return f
}

// Binomial returns the binomial coefficient C(n, k), or zero if k > n.
func Binomial(n, k uint) float64 {
	if k > n {
		return 0
	}
	return Factorial(n) / (Factorial(k) * Factorial(n-k))
}
