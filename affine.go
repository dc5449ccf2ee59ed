package bezier

import (
	"math"
)

// Affine describes an affine transform of ℝ³ via coefficients.
//
// If the coefficients are (n0, …, n11), then the resulting transformation
// represents this augmented matrix:
//
//	| n0 n3 n6 n9  |
//	| n1 n4 n7 n10 |
//	| n2 n5 n8 n11 |
//	| 0  0  0  1   |
//
// Points are transformed in homogeneous coordinates, see [Affine.Apply]. The
// idea is that (A * B) * v == A * (B * v).
type Affine struct {
	N0, N1, N2, N3, N4, N5, N6, N7, N8, N9, N10, N11 float64
}

// Identity is the identity transform.
var Identity = Affine{1, 0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 0}

// Scale creates an affine transform representing non-uniform scaling.
func Scale(x, y, z float64) Affine {
	return Affine{x, 0, 0, 0, y, 0, 0, 0, z, 0, 0, 0}
}

// Translate creates an affine transform representing translation by v.
func Translate(v Point3) Affine {
	return Affine{1, 0, 0, 0, 1, 0, 0, 0, 1, v.X(), v.Y(), v.Z()}
}

// RotateX creates a rotation of th radians about the x axis, turning the
// positive y axis into the positive z axis.
func RotateX(th float64) Affine {
	sin, cos := math.Sincos(th)
	return Affine{1, 0, 0, 0, cos, sin, 0, -sin, cos, 0, 0, 0}
}

// RotateY creates a rotation of th radians about the y axis, turning the
// positive z axis into the positive x axis.
func RotateY(th float64) Affine {
	sin, cos := math.Sincos(th)
	return Affine{cos, 0, -sin, 0, 1, 0, sin, 0, cos, 0, 0, 0}
}

// RotateZ creates a rotation of th radians about the z axis, turning the
// positive x axis into the positive y axis.
func RotateZ(th float64) Affine {
	sin, cos := math.Sincos(th)
	return Affine{cos, sin, 0, -sin, cos, 0, 0, 0, 1, 0, 0, 0}
}

// Coefficients returns the coefficients of the transform.
func (aff Affine) Coefficients() [12]float64 {
	return [12]float64{
		aff.N0, aff.N1, aff.N2, aff.N3, aff.N4, aff.N5,
		aff.N6, aff.N7, aff.N8, aff.N9, aff.N10, aff.N11,
	}
}

// NewAffine creates a new affine transformation from an array of coefficients.
func NewAffine(n [12]float64) Affine {
	return Affine{n[0], n[1], n[2], n[3], n[4], n[5], n[6], n[7], n[8], n[9], n[10], n[11]}
}

// Mul returns aff * o, the transform that applies o first and aff second.
func (aff Affine) Mul(o Affine) Affine {
	a := aff.Coefficients()
	b := o.Coefficients()
	var r [12]float64
	for col := range 4 {
		for row := range 3 {
			var s float64
			for k := range 3 {
				s += a[3*k+row] * b[3*col+k]
			}
			if col == 3 {
				s += a[9+row]
			}
			r[3*col+row] = s
		}
	}
	return NewAffine(r)
}

// Then returns the transform that applies aff first and o second.
//
// Equivalent to "o * aff"
func (aff Affine) Then(o Affine) Affine {
	return o.Mul(aff)
}

// Determinant returns the determinant of the linear part of the transform.
func (aff Affine) Determinant() float64 {
	return aff.N0*(aff.N4*aff.N8-aff.N7*aff.N5) -
		aff.N3*(aff.N1*aff.N8-aff.N7*aff.N2) +
		aff.N6*(aff.N1*aff.N5-aff.N4*aff.N2)
}

// Inverse returns the inverse transform. The result is undefined (and contains
// infinities or NaN) if the determinant is zero.
func (aff Affine) Inverse() Affine {
	invDet := 1 / aff.Determinant()
	inv := Affine{
		N0: (aff.N4*aff.N8 - aff.N7*aff.N5) * invDet,
		N1: (aff.N7*aff.N2 - aff.N1*aff.N8) * invDet,
		N2: (aff.N1*aff.N5 - aff.N4*aff.N2) * invDet,
		N3: (aff.N6*aff.N5 - aff.N3*aff.N8) * invDet,
		N4: (aff.N0*aff.N8 - aff.N6*aff.N2) * invDet,
		N5: (aff.N3*aff.N2 - aff.N0*aff.N5) * invDet,
		N6: (aff.N3*aff.N7 - aff.N6*aff.N4) * invDet,
		N7: (aff.N6*aff.N1 - aff.N0*aff.N7) * invDet,
		N8: (aff.N0*aff.N4 - aff.N3*aff.N1) * invDet,
	}
	t := inv.ApplyHomogeneous(P4(aff.N9, aff.N10, aff.N11, 0))
	inv.N9, inv.N10, inv.N11 = -t.X(), -t.Y(), -t.Z()
	return inv
}

// ApplyHomogeneous transforms a point given in homogeneous coordinates. The
// weight is left unchanged.
func (aff Affine) ApplyHomogeneous(h Point4) Point4 {
	x, y, z, w := h.X(), h.Y(), h.Z(), h.Value(3)
	return P4(
		aff.N0*x+aff.N3*y+aff.N6*z+aff.N9*w,
		aff.N1*x+aff.N4*y+aff.N7*z+aff.N10*w,
		aff.N2*x+aff.N5*y+aff.N8*z+aff.N11*w,
		w,
	)
}

// Apply transforms pt.
func (aff Affine) Apply(pt Point3) Point3 {
	h := ToHomogeneous[[4]float64](pt, 1)
	return ToCartesian[[3]float64](aff.ApplyHomogeneous(h))
}

// IsFinite reports whether all coefficients are finite.
func (aff Affine) IsFinite() bool {
	for _, n := range aff.Coefficients() {
		if math.IsInf(n, 0) || math.IsNaN(n) {
			return false
		}
	}
	return true
}

// Transform returns the curve with aff applied to its control points. Bézier
// curves are affine invariant: the transformed curve evaluates to the
// transformed points of c.
func (c Curve) Transform(aff Affine) Curve {
	p := make([]Point3, len(c.P))
	for i, pt := range c.P {
		p[i] = aff.Apply(pt)
	}
	return Curve{P: p}
}

// Transform returns the surface with aff applied to its control points.
func (s Surface) Transform(aff Affine) Surface {
	p := make([][]Point3, len(s.P))
	for i, row := range s.P {
		p[i] = Curve{P: row}.Transform(aff).P
	}
	return Surface{P: p}
}
