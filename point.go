package bezier

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"golang.org/x/exp/constraints"
)

// Scalar is the set of coordinate types a [Point] can hold.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// Coords is the set of arrays that can back a [Point]. The length of the array
// is the dimension of the point.
type Coords[T Scalar] interface {
	~[1]T | ~[2]T | ~[3]T | ~[4]T
}

// Point is a point in an N-dimensional space, where N is the length of C.
//
// Because the dimension is part of the type, arithmetic between points of
// different dimensions does not compile. Points are values and can be compared
// with ==.
//
// Reading a coordinate beyond the point's dimension yields zero, and writing
// one is a no-op. Conversions between cartesian and homogeneous coordinates
// rely on this.
type Point[T Scalar, C Coords[T]] struct {
	c C
}

type (
	Point1 = Point[float64, [1]float64]
	Point2 = Point[float64, [2]float64]
	Point3 = Point[float64, [3]float64]
	Point4 = Point[float64, [4]float64]

	IntPoint2 = Point[int, [2]int]
	IntPoint3 = Point[int, [3]int]
)

var (
	// ErrInvalidPlane is reported when converting a homogeneous point whose
	// weight is zero.
	ErrInvalidPlane = errors.New("invalid plane")
	// ErrDimension is reported when the target of a conversion has the wrong
	// dimension.
	ErrDimension = errors.New("invalid target dimension")
)

// ConversionError describes a failed conversion between cartesian and
// homogeneous coordinates.
type ConversionError struct {
	// Op is either "homogeneous" or "cartesian".
	Op   string
	From int
	To   int
	Err  error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("invalid conversion to %s coordinates (dimension %d to %d): %s", e.Op, e.From, e.To, e.Err)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

// Origin returns the point whose coordinates are all zero.
func Origin[T Scalar, C Coords[T]]() Point[T, C] {
	return Point[T, C]{}
}

// FromCoords returns the point with the given coordinates.
func FromCoords[T Scalar, C Coords[T]](c C) Point[T, C] {
	return Point[T, C]{c: c}
}

// Pt1 returns the point (x) on a line.
func Pt1[T Scalar](x T) Point[T, [1]T] {
	return Point[T, [1]T]{c: [1]T{x}}
}

// Pt2 returns the point (x, y).
func Pt2[T Scalar](x, y T) Point[T, [2]T] {
	return Point[T, [2]T]{c: [2]T{x, y}}
}

// Pt3 returns the point (x, y, z).
func Pt3[T Scalar](x, y, z T) Point[T, [3]T] {
	return Point[T, [3]T]{c: [3]T{x, y, z}}
}

// Pt4 returns the point (x, y, z, w).
func Pt4[T Scalar](x, y, z, w T) Point[T, [4]T] {
	return Point[T, [4]T]{c: [4]T{x, y, z, w}}
}

func P1(x float64) Point1          { return Pt1(x) }
func P2(x, y float64) Point2       { return Pt2(x, y) }
func P3(x, y, z float64) Point3    { return Pt3(x, y, z) }
func P4(x, y, z, w float64) Point4 { return Pt4(x, y, z, w) }

// Dim returns the dimension of the space containing the point.
func (p Point[T, C]) Dim() int {
	return len(p.c)
}

// Coords returns the coordinates of the point.
func (p Point[T, C]) Coords() C {
	return p.c
}

// Value returns the idx-th coordinate, or zero if idx is out of range.
func (p Point[T, C]) Value(idx int) T {
	if idx < 0 || idx >= len(p.c) {
		var zero T
		return zero
	}
	return p.c[idx]
}

// SetValue sets the idx-th coordinate. It does nothing if idx is out of range.
func (p *Point[T, C]) SetValue(idx int, v T) *Point[T, C] {
	if idx >= 0 && idx < len(p.c) {
		p.c[idx] = v
	}
	return p
}

// Reset sets all coordinates to zero.
func (p *Point[T, C]) Reset() {
	*p = Point[T, C]{}
}

// X, Y and Z are shorthands for the first three coordinates. Like [Point.Value]
// they return zero for coordinates the point doesn't have.

func (p Point[T, C]) X() T { return p.Value(0) }
func (p Point[T, C]) Y() T { return p.Value(1) }
func (p Point[T, C]) Z() T { return p.Value(2) }

func (p *Point[T, C]) SetX(v T) { p.SetValue(0, v) }
func (p *Point[T, C]) SetY(v T) { p.SetValue(1, v) }
func (p *Point[T, C]) SetZ(v T) { p.SetValue(2, v) }

func (p Point[T, C]) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i := 0; i < len(p.c); i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v", p.c[i])
	}
	sb.WriteByte(')')
	return sb.String()
}

// Equal reports whether p and o have identical coordinates.
func (p Point[T, C]) Equal(o Point[T, C]) bool {
	for i := 0; i < len(p.c); i++ {
		if p.c[i] != o.c[i] {
			return false
		}
	}
	return true
}

// Add returns p+o.
func (p Point[T, C]) Add(o Point[T, C]) Point[T, C] {
	for i := 0; i < len(p.c); i++ {
		p.c[i] += o.c[i]
	}
	return p
}

// Sub returns p−o.
func (p Point[T, C]) Sub(o Point[T, C]) Point[T, C] {
	for i := 0; i < len(p.c); i++ {
		p.c[i] -= o.c[i]
	}
	return p
}

// Mul returns p scaled by f.
func (p Point[T, C]) Mul(f T) Point[T, C] {
	for i := 0; i < len(p.c); i++ {
		p.c[i] *= f
	}
	return p
}

// Lerp linearly interpolates between two points, computing (1−t)·p + t·o.
func (p Point[T, C]) Lerp(o Point[T, C], t T) Point[T, C] {
	return p.Mul(1 - t).Add(o.Mul(t))
}

func (p *Point[T, C]) AddAssign(o Point[T, C]) { *p = p.Add(o) }
func (p *Point[T, C]) SubAssign(o Point[T, C]) { *p = p.Sub(o) }
func (p *Point[T, C]) MulAssign(f T)           { *p = p.Mul(f) }

// Distance returns the euclidean distance between two points.
func (p Point[T, C]) Distance(o Point[T, C]) float64 {
	var sum float64
	for i := 0; i < len(p.c); i++ {
		d := float64(p.c[i]) - float64(o.c[i])
		sum += d * d
	}
	return math.Sqrt(sum)
}

// IsInf reports whether at least one coordinate is infinite.
func (p Point[T, C]) IsInf() bool {
	for i := 0; i < len(p.c); i++ {
		if math.IsInf(float64(p.c[i]), 0) {
			return true
		}
	}
	return false
}

// IsNaN reports whether at least one coordinate is NaN.
func (p Point[T, C]) IsNaN() bool {
	for i := 0; i < len(p.c); i++ {
		if math.IsNaN(float64(p.c[i])) {
			return true
		}
	}
	return false
}

// ToHomogeneous converts p to homogeneous coordinates on the plane w. Every
// coordinate is scaled by w, and w is appended as the last coordinate.
//
// H must have exactly one more coordinate than p; ToHomogeneous panics with a
// [*ConversionError] otherwise.
//
//	h := ToHomogeneous[[3]float64](P2(1, 2), 1.1) // (1.1, 2.2, 1.1)
func ToHomogeneous[H Coords[T], T Scalar, C Coords[T]](p Point[T, C], w T) Point[T, H] {
	var res Point[T, H]
	if len(res.c) != len(p.c)+1 {
		panic(&ConversionError{Op: "homogeneous", From: len(p.c), To: len(res.c), Err: ErrDimension})
	}
	for i := 0; i < len(p.c); i++ {
		res.c[i] = p.c[i] * w
	}
	res.c[len(p.c)] = w
	return res
}

// ToCartesian converts the homogeneous point p to cartesian coordinates by
// dividing all coordinates but the last by the last one, and dropping the
// last one.
//
// K must have exactly one fewer coordinate than p. ToCartesian panics with a
// [*ConversionError] if that isn't the case, or if the weight of p is zero.
// Use [TryToCartesian] to handle the latter as an error.
func ToCartesian[K Coords[T], T Scalar, C Coords[T]](p Point[T, C]) Point[T, K] {
	res, err := TryToCartesian[K](p)
	if err != nil {
		panic(err)
	}
	return res
}

// TryToCartesian is like [ToCartesian] but returns a [*ConversionError]
// instead of panicking.
func TryToCartesian[K Coords[T], T Scalar, C Coords[T]](p Point[T, C]) (Point[T, K], error) {
	var res Point[T, K]
	if len(res.c) != len(p.c)-1 {
		return res, &ConversionError{Op: "cartesian", From: len(p.c), To: len(res.c), Err: ErrDimension}
	}
	w := p.c[len(p.c)-1]
	if w == 0 {
		return res, &ConversionError{Op: "cartesian", From: len(p.c), To: len(res.c), Err: ErrInvalidPlane}
	}
	for i := 0; i < len(res.c); i++ {
		res.c[i] = p.c[i] / w
	}
	return res, nil
}
