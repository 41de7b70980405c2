package pixelcam

import "math"

// identityTransform is the identity affine matrix.
var identityTransform = [6]float64{1, 0, 0, 1, 0, 0}

// View is the placement of a camera in world space. World space is Y-up,
// matching the bottom/top convention of Projection.
type View struct {
	X, Y     float64
	Rotation float64 // radians, counter-clockwise
}

// transform returns the camera-to-world affine matrix:
//
//	Translate(X, Y) * Rotate(Rotation)
func (v View) transform() [6]float64 {
	sin, cos := math.Sincos(v.Rotation)
	return [6]float64{cos, sin, -sin, cos, v.X, v.Y}
}

// inverse returns the world-to-camera affine matrix.
func (v View) inverse() [6]float64 {
	return invertAffine(v.transform())
}

// ToWorld converts a camera-local point to world space.
func (v View) ToWorld(x, y float64) (wx, wy float64) {
	return transformPoint(v.transform(), x, y)
}

// ToLocal converts a world-space point to camera-local space.
func (v View) ToLocal(wx, wy float64) (x, y float64) {
	return transformPoint(v.inverse(), wx, wy)
}

// Matrix returns the 4x4 view matrix (world to camera), column-major.
func (v View) Matrix() Mat4 {
	return affineToMat4(v.inverse())
}

// multiplyAffine multiplies two 2D affine matrices: result = parent * child.
//
//	Matrix layout: [a, b, c, d, tx, ty]
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
func multiplyAffine(p, c [6]float64) [6]float64 {
	return [6]float64{
		p[0]*c[0] + p[2]*c[1],
		p[1]*c[0] + p[3]*c[1],
		p[0]*c[2] + p[2]*c[3],
		p[1]*c[2] + p[3]*c[3],
		p[0]*c[4] + p[2]*c[5] + p[4],
		p[1]*c[4] + p[3]*c[5] + p[5],
	}
}

// invertAffine computes the inverse of a 2D affine matrix.
// Returns the identity matrix if the matrix is singular (determinant ~ 0).
func invertAffine(m [6]float64) [6]float64 {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return identityTransform
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return [6]float64{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// Mat4 is a column-major 4x4 matrix, laid out the way GPU uniforms expect.
type Mat4 [16]float64

// Mul returns m * o.
func (m Mat4) Mul(o Mat4) Mat4 {
	var r Mat4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			var sum float64
			for k := 0; k < 4; k++ {
				sum += m[k*4+row] * o[col*4+k]
			}
			r[col*4+row] = sum
		}
	}
	return r
}

// Transform applies m to the point (x, y, z, 1) and returns the result
// after the perspective divide.
func (m Mat4) Transform(x, y, z float64) (float64, float64, float64) {
	rx := m[0]*x + m[4]*y + m[8]*z + m[12]
	ry := m[1]*x + m[5]*y + m[9]*z + m[13]
	rz := m[2]*x + m[6]*y + m[10]*z + m[14]
	rw := m[3]*x + m[7]*y + m[11]*z + m[15]
	if rw != 0 && rw != 1 {
		rx, ry, rz = rx/rw, ry/rw, rz/rw
	}
	return rx, ry, rz
}

// affineToMat4 lifts a 2D affine matrix into 4x4 form with an identity Z axis.
func affineToMat4(m [6]float64) Mat4 {
	return Mat4{
		m[0], m[1], 0, 0,
		m[2], m[3], 0, 0,
		0, 0, 1, 0,
		m[4], m[5], 0, 1,
	}
}
