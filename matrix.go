package geom

import "fmt"

// Mat3 is a 3×3 linear transform in row-major layout. The zero value is
// the all-zeroes matrix; use [Identity3] for the identity transform.
//
// Mat3 is an array, not a slice: assignment and passing by value copy
// the whole grid, so instances never alias each other or the buffers
// they were built from.
type Mat3 [3][3]float64

// Identity3 is the 3×3 identity transform.
var Identity3 = Mat3{
	{1, 0, 0},
	{0, 1, 0},
	{0, 0, 1},
}

// NewMat3FromRows builds a matrix from a 3×3 grid of rows, copying the
// entries. It fails with [ErrShape] unless rows is exactly 3 rows of 3.
func NewMat3FromRows(rows [][]float64) (Mat3, error) {
	var m Mat3
	if len(rows) != 3 {
		return Mat3{}, fmt.Errorf("%w: 3x3 matrix needs 3 rows, got %d", ErrShape, len(rows))
	}
	for i, row := range rows {
		if len(row) != 3 {
			return Mat3{}, fmt.Errorf("%w: 3x3 matrix row %d has %d entries", ErrShape, i, len(row))
		}
		copy(m[i][:], row)
	}
	return m, nil
}

// Mul returns the matrix product m·o.
func (m Mat3) Mul(o Mat3) Mat3 {
	var out Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = m[i][0]*o[0][j] + m[i][1]*o[1][j] + m[i][2]*o[2][j]
		}
	}
	return out
}

// MulVec applies the linear transform to a vector.
func (m Mat3) MulVec(v Vec3) Vec3 {
	return V3(
		m[0][0]*v.X+m[0][1]*v.Y+m[0][2]*v.Z,
		m[1][0]*v.X+m[1][1]*v.Y+m[1][2]*v.Z,
		m[2][0]*v.X+m[2][1]*v.Y+m[2][2]*v.Z,
	)
}

// Flatten returns the nine entries in row-major order.
func (m Mat3) Flatten() [9]float64 {
	var out [9]float64
	for i := 0; i < 3; i++ {
		copy(out[i*3:], m[i][:])
	}
	return out
}

// Equal reports whether two matrices coincide within [LengthAccuracy],
// entry by entry.
func (m Mat3) Equal(o Mat3) bool {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if !WithinTolerance(m[i][j], o[i][j], LengthAccuracy, LengthAccuracy) {
				return false
			}
		}
	}
	return true
}

// Mat4 is a 4×4 affine transform in row-major layout: a 3×3
// rotation/scale block, a translation column, and a homogeneous bottom
// row. It applies to 3D points and vectors with an implicit fourth
// coordinate of 1.
type Mat4 [4][4]float64

// Identity4 is the 4×4 identity transform.
var Identity4 = Mat4{
	{1, 0, 0, 0},
	{0, 1, 0, 0},
	{0, 0, 1, 0},
	{0, 0, 0, 1},
}

// NewMat4FromRows builds a matrix from a 4×4 grid of rows, copying the
// entries. It fails with [ErrShape] unless rows is exactly 4 rows of 4.
func NewMat4FromRows(rows [][]float64) (Mat4, error) {
	var m Mat4
	if len(rows) != 4 {
		return Mat4{}, fmt.Errorf("%w: 4x4 matrix needs 4 rows, got %d", ErrShape, len(rows))
	}
	for i, row := range rows {
		if len(row) != 4 {
			return Mat4{}, fmt.Errorf("%w: 4x4 matrix row %d has %d entries", ErrShape, i, len(row))
		}
		copy(m[i][:], row)
	}
	return m, nil
}

// NewMat4FromSlice builds a matrix from 16 entries in row-major order,
// the layout used at the wire boundary. It does not alias entries.
func NewMat4FromSlice(entries []float64) (Mat4, error) {
	if len(entries) != 16 {
		return Mat4{}, fmt.Errorf("%w: 4x4 matrix needs 16 entries, got %d", ErrShape, len(entries))
	}
	var m Mat4
	for i := 0; i < 4; i++ {
		copy(m[i][:], entries[i*4:])
	}
	return m, nil
}

// Translate4 returns the affine transform that displaces by v.
func Translate4(v Vec3) Mat4 {
	return Mat4{
		{1, 0, 0, v.X},
		{0, 1, 0, v.Y},
		{0, 0, 1, v.Z},
		{0, 0, 0, 1},
	}
}

// Scale4 returns the affine transform that scales each axis
// independently about the origin.
func Scale4(x, y, z float64) Mat4 {
	return Mat4{
		{x, 0, 0, 0},
		{0, y, 0, 0},
		{0, 0, z, 0},
		{0, 0, 0, 1},
	}
}

// Mul returns the matrix product m·o, the transform that applies o
// first and m second.
func (m Mat4) Mul(o Mat4) Mat4 {
	var out Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			out[i][j] = m[i][0]*o[0][j] + m[i][1]*o[1][j] + m[i][2]*o[2][j] + m[i][3]*o[3][j]
		}
	}
	return out
}

// Linear returns the upper-left 3×3 rotation/scale block.
func (m Mat4) Linear() Mat3 {
	return Mat3{
		{m[0][0], m[0][1], m[0][2]},
		{m[1][0], m[1][1], m[1][2]},
		{m[2][0], m[2][1], m[2][2]},
	}
}

// Translation returns the translation column as a vector.
func (m Mat4) Translation() Vec3 {
	return V3(m[0][3], m[1][3], m[2][3])
}

// Flatten returns the sixteen entries in row-major order, the layout
// used at the wire boundary.
func (m Mat4) Flatten() [16]float64 {
	var out [16]float64
	for i := 0; i < 4; i++ {
		copy(out[i*4:], m[i][:])
	}
	return out
}

// Equal reports whether two matrices coincide within [LengthAccuracy],
// entry by entry.
func (m Mat4) Equal(o Mat4) bool {
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if !WithinTolerance(m[i][j], o[i][j], LengthAccuracy, LengthAccuracy) {
				return false
			}
		}
	}
	return true
}
