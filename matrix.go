package fix

import "golang.org/x/image/math/f64"

// Matrix represents a 2D affine transformation matrix in fixed point.
// It uses a 2x3 matrix in row-major order:
//
//	| a  b  c |
//	| d  e  f |
//
// This represents the transformation:
//
//	x' = a*x + b*y + c
//	y' = d*x + e*y + f
//
// Products and sums go through Mul and Add, so a matrix operation that
// overflows saturates the affected elements and reports ErrRange.
type Matrix struct {
	A, B, C Fixed
	D, E, F Fixed
}

// Identity returns the identity transformation matrix.
func Identity() Matrix {
	return Matrix{
		A: One, B: 0, C: 0,
		D: 0, E: One, F: 0,
	}
}

// Translate creates a translation matrix.
func Translate(x, y Fixed) Matrix {
	return Matrix{
		A: One, B: 0, C: x,
		D: 0, E: One, F: y,
	}
}

// Scaling creates a scaling matrix.
func Scaling(x, y Fixed) Matrix {
	return Matrix{
		A: x, B: 0, C: 0,
		D: 0, E: y, F: 0,
	}
}

// Rotate creates a rotation matrix for a binary angle, using the
// table-driven Cos and Sin.
func Rotate(angle Fixed) Matrix {
	cos := Cos(angle)
	sin := Sin(angle)
	return Matrix{
		A: cos, B: -sin, C: 0,
		D: sin, E: cos, F: 0,
	}
}

// Multiply multiplies two matrices (m * other).
// The first fault met is returned with the saturated result.
func (m Matrix) Multiply(other Matrix) (Matrix, error) {
	var c calc
	r := Matrix{
		A: c.add(c.mul(m.A, other.A), c.mul(m.B, other.D)),
		B: c.add(c.mul(m.A, other.B), c.mul(m.B, other.E)),
		C: c.add(c.add(c.mul(m.A, other.C), c.mul(m.B, other.F)), m.C),
		D: c.add(c.mul(m.D, other.A), c.mul(m.E, other.D)),
		E: c.add(c.mul(m.D, other.B), c.mul(m.E, other.E)),
		F: c.add(c.add(c.mul(m.D, other.C), c.mul(m.E, other.F)), m.F),
	}
	return r, c.err
}

// TransformPoint applies the transformation to the point (x, y).
func (m Matrix) TransformPoint(x, y Fixed) (Fixed, Fixed, error) {
	var c calc
	tx := c.add(c.add(c.mul(m.A, x), c.mul(m.B, y)), m.C)
	ty := c.add(c.add(c.mul(m.D, x), c.mul(m.E, y)), m.F)
	return tx, ty, c.err
}

// IsIdentity returns true if the matrix is the identity matrix.
func (m Matrix) IsIdentity() bool {
	return m == Identity()
}

// Aff3 converts m to a float64 affine matrix.
func (m Matrix) Aff3() f64.Aff3 {
	return f64.Aff3{
		m.A.Float(), m.B.Float(), m.C.Float(),
		m.D.Float(), m.E.Float(), m.F.Float(),
	}
}

// MatrixFromAff3 converts a float64 affine matrix to fixed point.
// Elements beyond ±32767.0 saturate and ErrRange is returned.
func MatrixFromAff3(a f64.Aff3) (Matrix, error) {
	var c calc
	m := Matrix{
		A: c.keep(FromFloat(a[0])), B: c.keep(FromFloat(a[1])), C: c.keep(FromFloat(a[2])),
		D: c.keep(FromFloat(a[3])), E: c.keep(FromFloat(a[4])), F: c.keep(FromFloat(a[5])),
	}
	return m, c.err
}

// calc chains faulting operations, keeping the first error.
type calc struct {
	err error
}

func (c *calc) keep(v Fixed, err error) Fixed {
	if c.err == nil {
		c.err = err
	}
	return v
}

func (c *calc) add(a, b Fixed) Fixed { return c.keep(Add(a, b)) }
func (c *calc) mul(a, b Fixed) Fixed { return c.keep(Mul(a, b)) }
