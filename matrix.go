package easel

import "math"

// Matrix represents a 2D affine transformation matrix.
// It uses a 2x3 matrix in row-major order:
//
//	| A  B  C |
//	| D  E  F |
//
// This represents the transformation:
//
//	x' = A*x + B*y + C
//	y' = D*x + E*y + F
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the identity transformation matrix.
// The identity matrix performs no transformation.
func Identity() Matrix {
	return Matrix{
		A: 1, B: 0, C: 0,
		D: 0, E: 1, F: 0,
	}
}

// Translate creates a translation matrix.
func Translate(x, y float64) Matrix {
	return Matrix{
		A: 1, B: 0, C: x,
		D: 0, E: 1, F: y,
	}
}

// Scale creates a scaling matrix.
func Scale(sx, sy float64) Matrix {
	return Matrix{
		A: sx, B: 0, C: 0,
		D: 0, E: sy, F: 0,
	}
}

// Rotate creates a rotation matrix (angle in radians).
func Rotate(angle float64) Matrix {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Matrix{
		A: cos, B: -sin, C: 0,
		D: sin, E: cos, F: 0,
	}
}

// Shear creates a shear matrix.
func Shear(x, y float64) Matrix {
	return Matrix{
		A: 1, B: x, C: 0,
		D: y, E: 1, F: 0,
	}
}

// Multiply multiplies two matrices (m * other).
// The resulting transformation applies `other` first, then `m`.
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.B*other.D,
		B: m.A*other.B + m.B*other.E,
		C: m.A*other.C + m.B*other.F + m.C,
		D: m.D*other.A + m.E*other.D,
		E: m.D*other.B + m.E*other.E,
		F: m.D*other.C + m.E*other.F + m.F,
	}
}

// TransformPoint applies the transformation to a point.
func (m Matrix) TransformPoint(x, y float64) (float64, float64) {
	return m.A*x + m.B*y + m.C, m.D*x + m.E*y + m.F
}

// TransformVector applies the transformation to a vector (no translation).
func (m Matrix) TransformVector(x, y float64) (float64, float64) {
	return m.A*x + m.B*y, m.D*x + m.E*y
}

// TransformRect returns the bounding box of the transformed rectangle.
// For rotated or sheared transforms the result is the axis-aligned hull
// of the four transformed corners, not the transformed shape itself.
func (m Matrix) TransformRect(r Rect) Rect {
	x1, y1 := m.TransformPoint(r.MinX, r.MinY)
	x2, y2 := m.TransformPoint(r.MaxX, r.MinY)
	x3, y3 := m.TransformPoint(r.MaxX, r.MaxY)
	x4, y4 := m.TransformPoint(r.MinX, r.MaxY)
	return Rect{
		MinX: math.Min(math.Min(x1, x2), math.Min(x3, x4)),
		MinY: math.Min(math.Min(y1, y2), math.Min(y3, y4)),
		MaxX: math.Max(math.Max(x1, x2), math.Max(x3, x4)),
		MaxY: math.Max(math.Max(y1, y2), math.Max(y3, y4)),
	}
}

// Invert returns the inverse matrix.
// Returns the identity matrix if the matrix is not invertible.
func (m Matrix) Invert() Matrix {
	det := m.A*m.E - m.B*m.D
	if math.Abs(det) < 1e-10 {
		return Identity()
	}

	invDet := 1.0 / det
	return Matrix{
		A: m.E * invDet,
		B: -m.B * invDet,
		C: (m.B*m.F - m.C*m.E) * invDet,
		D: -m.D * invDet,
		E: m.A * invDet,
		F: (m.C*m.D - m.A*m.F) * invDet,
	}
}

// IsIdentity returns true if the matrix is the identity matrix.
func (m Matrix) IsIdentity() bool {
	const eps = 1e-10
	return math.Abs(m.A-1) < eps && math.Abs(m.B) < eps && math.Abs(m.C) < eps &&
		math.Abs(m.D) < eps && math.Abs(m.E-1) < eps && math.Abs(m.F) < eps
}

// IsTranslation returns true if the matrix is only a translation.
func (m Matrix) IsTranslation() bool {
	const eps = 1e-10
	return math.Abs(m.A-1) < eps && math.Abs(m.B) < eps &&
		math.Abs(m.D) < eps && math.Abs(m.E-1) < eps
}

// IsScaleTranslation returns true if the matrix only scales and translates,
// meaning axis-aligned rectangles stay axis-aligned after transformation.
func (m Matrix) IsScaleTranslation() bool {
	const eps = 1e-10
	return math.Abs(m.B) < eps && math.Abs(m.D) < eps
}

// ScaleFactor returns the maximum scale factor of the transformation.
// This is useful for determining effective stroke width after transform.
func (m Matrix) ScaleFactor() float64 {
	// Calculate the two singular values of the 2x2 part.
	sx := math.Sqrt(m.A*m.A + m.D*m.D)
	sy := math.Sqrt(m.B*m.B + m.E*m.E)
	if sx > sy {
		return sx
	}
	return sy
}

// Determinant returns the determinant of the 2x2 part of the matrix.
// A determinant of zero means the matrix is not invertible.
// A negative determinant means the transformation flips orientation.
func (m Matrix) Determinant() float64 {
	return m.A*m.E - m.B*m.D
}

// Translation returns the translation components of the matrix.
func (m Matrix) Translation() (x, y float64) {
	return m.C, m.F
}
