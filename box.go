package bezier

import (
	"fmt"
	"math"
)

// Box is an axis-aligned box in ℝ³, spanning from Min to Max.
type Box struct {
	Min Point3
	Max Point3
}

// NewBoxFromPoints returns the smallest box containing all points. It returns
// the zero box if there are no points.
func NewBoxFromPoints(pts ...Point3) Box {
	if len(pts) == 0 {
		return Box{}
	}
	b := Box{Min: pts[0], Max: pts[0]}
	for _, pt := range pts[1:] {
		b = b.UnionPoint(pt)
	}
	return b
}

func (b Box) String() string {
	return fmt.Sprintf("%s–%s", b.Min, b.Max)
}

// UnionPoint returns the smallest box containing b and pt.
func (b Box) UnionPoint(pt Point3) Box {
	for k := range 3 {
		b.Min.SetValue(k, min(b.Min.Value(k), pt.Value(k)))
		b.Max.SetValue(k, max(b.Max.Value(k), pt.Value(k)))
	}
	return b
}

// Union returns the smallest box containing b and o.
func (b Box) Union(o Box) Box {
	return b.UnionPoint(o.Min).UnionPoint(o.Max)
}

// Size returns the extents of the box along each axis.
func (b Box) Size() Point3 {
	return b.Max.Sub(b.Min)
}

// Center returns the center point of the box.
func (b Box) Center() Point3 {
	return b.Min.Lerp(b.Max, 0.5)
}

// Contains reports whether pt lies within the box, allowing for an error of
// eps along each axis.
func (b Box) Contains(pt Point3, eps float64) bool {
	for k := range 3 {
		v := pt.Value(k)
		if v < b.Min.Value(k)-eps || v > b.Max.Value(k)+eps {
			return false
		}
	}
	return true
}

// Volume returns the volume of the box.
func (b Box) Volume() float64 {
	sz := b.Size()
	return math.Abs(sz.X() * sz.Y() * sz.Z())
}

// BoundingBox returns the bounding box of the control points. By the convex
// hull property of Bézier curves, it contains the curve for t ∈ [0, 1].
func (c Curve) BoundingBox() Box {
	return NewBoxFromPoints(c.P...)
}

// BoundingBox returns the bounding box of the control points, which contains
// the surface for u, v ∈ [0, 1].
func (s Surface) BoundingBox() Box {
	var b Box
	for i, row := range s.P {
		rb := NewBoxFromPoints(row...)
		if i == 0 {
			b = rb
		} else {
			b = b.Union(rb)
		}
	}
	return b
}
