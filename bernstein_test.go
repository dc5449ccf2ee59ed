package bezier

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBernsteinCreate(t *testing.T) {
	_, err := NewBernstein(3, 5)
	if !errors.Is(err, ErrIndexExceedsDegree) {
		t.Fatalf("got error %v, want %v", err, ErrIndexExceedsDegree)
	}

	b, err := NewBernstein(3, 3)
	if err != nil {
		t.Fatal(err)
	}
	if b.Degree() != 3 || b.Index() != 3 {
		t.Errorf("got %s, want B(3, 3)", b)
	}
}

func TestBernsteinPartitionOfUnity(t *testing.T) {
	for n := uint(0); n <= 20; n++ {
		for i := range 101 {
			xi := float64(i) / 100
			var sum float64
			for k := uint(0); k <= n; k++ {
				b, err := NewBernstein(n, k)
				if err != nil {
					t.Fatal(err)
				}
				v := b.Eval(P1(xi)).X()
				if v < 0 {
					t.Fatalf("%s(%g) = %g is negative", b, xi, v)
				}
				sum += v
			}
			if math.Abs(sum-1) > 1e-9 {
				t.Errorf("sum of Bernstein polynomials of degree %d at %g is %g", n, xi, sum)
			}
		}
	}
}

func TestBernsteinValues(t *testing.T) {
	tests := []struct {
		n, i uint
		xi   float64
		want float64
	}{
		{0, 0, 0.3, 1},
		{1, 0, 0.25, 0.75},
		{1, 1, 0.25, 0.25},
		{2, 1, 0.5, 0.5},
		{3, 1, 0.5, 0.375},
		{3, 0, 0, 1},
		{3, 3, 0, 0},
		{3, 3, 1, 1},
		{4, 2, 0.5, 0.375},
		// Outside of [0, 1] the polynomial is evaluated as is.
		{2, 1, 2, -4},
		{2, 2, -1, 1},
	}
	for _, tt := range tests {
		b, err := NewBernstein(tt.n, tt.i)
		if err != nil {
			t.Fatal(err)
		}
		if got := b.Eval(P1(tt.xi)).X(); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("%s(%g) = %g, want %g", b, tt.xi, got, tt.want)
		}
	}
}

func TestBernsteinSymmetry(t *testing.T) {
	for n := uint(0); n <= 12; n++ {
		for i := uint(0); i <= n; i++ {
			b := Bernstein{n: n, i: i}
			m := Bernstein{n: n, i: n - i}
			for _, xi := range []float64{0, 0.1, 0.37, 0.5, 0.9, 1} {
				require.InDelta(t, b.Eval(P1(xi)).X(), m.Eval(P1(1-xi)).X(), 1e-12)
			}
		}
	}
}

func TestFactorial(t *testing.T) {
	for n, want := range []float64{1, 1, 2, 6, 24, 120, 720} {
		if got := Factorial(uint(n)); got != want {
			t.Errorf("%d! = %g, want %g", n, got, want)
		}
	}
	if got := Binomial(10, 3); got != 120 {
		t.Errorf("C(10, 3) = %g, want 120", got)
	}
	if got := Binomial(3, 10); got != 0 {
		t.Errorf("C(3, 10) = %g, want 0", got)
	}
	if !math.IsInf(Factorial(171), 1) {
		t.Errorf("171! should overflow float64")
	}
}

func TestBernsteinExact(t *testing.T) {
	for n := uint(0); n <= 10; n++ {
		for i := uint(0); i <= n; i++ {
			b := Bernstein{n: n, i: i}
			for _, xi := range []float64{0, 0.2, 0.5, 0.75, 1, -0.5, 1.5} {
				f, _ := b.EvalExact(xi, 0).Float64()
				require.InDelta(t, b.Eval(P1(xi)).X(), f, 1e-9, "%s(%g)", b, xi)
			}
		}
	}

	// The float64 factorials overflow, the exact evaluation doesn't.
	b := Bernstein{n: 200, i: 100}
	f, _ := b.EvalExact(0.5, 512).Float64()
	require.False(t, math.IsNaN(f) || math.IsInf(f, 0))
	require.InDelta(t, 0.0563, f, 1e-4)
	require.True(t, math.IsNaN(b.Eval(P1(0.5)).X()))
}
