package bezier

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Matrix2 is a dense, row-major matrix of float64 values. Its rows can be read
// and written as points, which is how [Curve.EvalDeCasteljau] uses it as
// working storage.
//
// The zero value is an empty matrix.
type Matrix2 struct {
	data *mat.Dense
}

// NewMatrix2 returns a rows×cols matrix filled with zeros.
func NewMatrix2(rows, cols int) Matrix2 {
	if rows <= 0 || cols <= 0 {
		return Matrix2{}
	}
	return Matrix2{data: mat.NewDense(rows, cols, nil)}
}

// Matrix2FromRows builds a matrix from a slice of rows, copying the data. All
// rows must have the same length.
func Matrix2FromRows(rows [][]float64) Matrix2 {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return Matrix2{}
	}
	cols := len(rows[0])
	flat := make([]float64, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			panic(fmt.Sprintf("row %d has %d columns, expected %d", i, len(row), cols))
		}
		flat = append(flat, row...)
	}
	return Matrix2{data: mat.NewDense(len(rows), cols, flat)}
}

// matrixFromPoints builds a matrix with one row per point.
func matrixFromPoints[T Scalar, C Coords[T]](pts []Point[T, C]) Matrix2 {
	if len(pts) == 0 {
		return Matrix2{}
	}
	m := NewMatrix2(len(pts), pts[0].Dim())
	for i, pt := range pts {
		setRowPoint(m, i, pt)
	}
	return m
}

// Value returns the element at row and col.
func (m Matrix2) Value(row, col int) float64 {
	return m.data.At(row, col)
}

// SetValue sets the element at row and col.
func (m Matrix2) SetValue(row, col int, v float64) {
	m.data.Set(row, col, v)
}

// Rows returns the number of rows.
func (m Matrix2) Rows() int {
	if m.data == nil {
		return 0
	}
	r, _ := m.data.Dims()
	return r
}

// Cols returns the number of columns.
func (m Matrix2) Cols() int {
	if m.data == nil {
		return 0
	}
	_, c := m.data.Dims()
	return c
}

// Size returns the size of the matrix.
func (m Matrix2) Size() Size {
	return Size{
		Width:  m.Cols(),
		Height: m.Rows(),
	}
}

// Clone returns a deep copy of m.
func (m Matrix2) Clone() Matrix2 {
	if m.data == nil {
		return Matrix2{}
	}
	return Matrix2{data: mat.DenseCopyOf(m.data)}
}

// Add adds o to m in place. It panics if the sizes of the matrices differ.
func (m Matrix2) Add(o Matrix2) Matrix2 {
	if m.Size() != o.Size() {
		panic(fmt.Sprintf("cannot add matrices of sizes %s and %s", m.Size(), o.Size()))
	}
	if m.data == nil {
		return m
	}
	m.data.Add(m.data, o.data)
	return m
}

// Equal reports whether m and o have the same size and elements.
func (m Matrix2) Equal(o Matrix2) bool {
	if m.Size() != o.Size() {
		return false
	}
	if m.data == nil {
		return true
	}
	return mat.Equal(m.data, o.data)
}

// RowPoint3 returns the first three columns of a row as a point. Missing
// columns read as zero.
func (m Matrix2) RowPoint3(row int) Point3 {
	return rowPoint[float64, [3]float64](m, row)
}

// SetRowPoint3 writes pt into a row. Coordinates beyond the matrix's columns
// are dropped.
func (m Matrix2) SetRowPoint3(row int, pt Point3) {
	setRowPoint(m, row, pt)
}

func rowPoint[T Scalar, C Coords[T]](m Matrix2, row int) Point[T, C] {
	var pt Point[T, C]
	cols := m.Cols()
	for j := 0; j < pt.Dim() && j < cols; j++ {
		pt.SetValue(j, T(m.data.At(row, j)))
	}
	return pt
}

func setRowPoint[T Scalar, C Coords[T]](m Matrix2, row int, pt Point[T, C]) {
	cols := m.Cols()
	for j := 0; j < cols; j++ {
		m.data.Set(row, j, float64(pt.Value(j)))
	}
}
