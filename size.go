package bezier

import (
	"fmt"
)

// Size is the size of a matrix, measured in columns (Width) and rows (Height).
type Size struct {
	Width  int
	Height int
}

// Sz returns the size w×h.
func Sz(w, h int) Size {
	return Size{
		Width:  w,
		Height: h,
	}
}

func (sz Size) String() string {
	return fmt.Sprintf("%d×%d", sz.Width, sz.Height)
}

// Area returns the number of elements of a matrix of this size.
func (sz Size) Area() int {
	return sz.Width * sz.Height
}

// IsEmpty reports whether a matrix of this size has no elements.
func (sz Size) IsEmpty() bool {
	return sz.Width <= 0 || sz.Height <= 0
}
