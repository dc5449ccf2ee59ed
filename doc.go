// Package bezier evaluates Bézier curves and tensor-product Bézier surface
// patches in ℝ³, built on a small generic point algebra.
//
// # Points
//
// [Point] is a fixed-dimension coordinate tuple. Its dimension is part of its
// type, so adding a 2D point to a 3D point doesn't compile, and points are
// backed by small arrays rather than heap allocations. The coordinates can be
// integers or floating point numbers. [Point1], [Point2], [Point3] and
// [Point4] are the float64 points used throughout the package.
//
// Reading a coordinate beyond a point's dimension yields zero rather than
// panicking. [ToHomogeneous] and [ToCartesian] convert between cartesian and
// homogeneous coordinates; both take the target coordinate array as their
// first type argument:
//
//	h := bezier.ToHomogeneous[[3]float64](bezier.P2(1, 2), 1.1)
//	p := bezier.ToCartesian[[2]float64](h)
//
// Converting a point whose weight is zero panics with a [*ConversionError]
// instead of producing infinities.
//
// # Evaluation
//
// A [Curve] of degree n has n+1 control points. It can be evaluated with two
// algorithms that agree up to rounding errors:
//
//   - [Curve.EvalDirect] sums the control points weighted by the [Bernstein]
//     basis polynomials. The binomial coefficients grow quickly with the
//     degree and the sum suffers from cancellation, so this algorithm is
//     numerically unstable. It is kept as a reference.
//   - [Curve.EvalDeCasteljau] repeatedly interpolates between neighboring
//     control points until a single point remains. It is numerically stable
//     and is what [Curve.Eval] uses.
//
// [Curve.EvalExact] evaluates with arbitrary precision arithmetic and
// [Compare] measures how far the two algorithms drift from it.
//
// [Surface] is a tensor-product patch over a rectangular grid of control
// points. [FromIndexedVertices] builds bicubic patches from a shared vertex
// table and one-based index lists, as used by the [Teaspoon] model.
//
// # Concurrency
//
// All types are values without shared state. Evaluation doesn't modify its
// receiver, so curves and surfaces can be evaluated from multiple goroutines
// concurrently.
//
// # Literature
//
//   - [A Primer on Bézier Curves]
//   - [Bernstein polynomial]
//   - [De Casteljau's algorithm]
//   - [Homogeneous coordinates]
//
// [A Primer on Bézier Curves]: https://pomax.github.io/bezierinfo/
// [Bernstein polynomial]: https://en.wikipedia.org/wiki/Bernstein_polynomial
// [De Casteljau's algorithm]: https://en.wikipedia.org/wiki/De_Casteljau%27s_algorithm
// [Homogeneous coordinates]: https://en.wikipedia.org/wiki/Homogeneous_coordinates
package bezier
