package geom

import "math"

// Matrix22 is a 2x2 rotation matrix, stored row major:
//
//	| A B |
//	| C D |
type Matrix22 struct {
	A, B float64
	C, D float64
}

// NewMatrix22 builds the standard CCW rotation matrix for angle (radians).
func NewMatrix22(angle float64) Matrix22 {
	c, s := math.Cos(angle), math.Sin(angle)
	return Matrix22{A: c, B: -s, C: s, D: c}
}

// Apply returns m * v.
func (m Matrix22) Apply(v Vector) Vector {
	return Vector{
		X: m.A*v.X + m.B*v.Y,
		Y: m.C*v.X + m.D*v.Y,
	}
}

// Mul returns the matrix product m * a.
func (m Matrix22) Mul(a Matrix22) Matrix22 {
	return Matrix22{
		A: m.A*a.A + m.B*a.C,
		B: m.A*a.B + m.B*a.D,
		C: m.C*a.A + m.D*a.C,
		D: m.C*a.B + m.D*a.D,
	}
}

// Transpose returns the transpose of m, which for a pure rotation matrix is
// also its inverse.
func (m Matrix22) Transpose() Matrix22 {
	return Matrix22{A: m.A, B: m.C, C: m.B, D: m.D}
}
