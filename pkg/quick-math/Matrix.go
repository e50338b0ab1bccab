package quickmath

import "math"

// Matrix is a 4x4 matrix for row vectors (v * M). M41, M42 and M43 hold the
// translation. Value type for zero heap allocation.
type Matrix struct {
	M11, M12, M13, M14 float64
	M21, M22, M23, M24 float64
	M31, M32, M33, M34 float64
	M41, M42, M43, M44 float64
}

var MatrixIdentity = Matrix{
	M11: 1,
	M22: 1,
	M33: 1,
	M44: 1,
}

func MatrixTranslation(x, y, z float64) Matrix {
	m := MatrixIdentity
	m.M41 = x
	m.M42 = y
	m.M43 = z
	return m
}

func MatrixScale(x, y, z float64) Matrix {
	return Matrix{M11: x, M22: y, M33: z, M44: 1}
}

// MatrixRotationX returns a rotation around the X axis. Angle in radians.
func MatrixRotationX(radians float64) Matrix {
	s, c := math.Sincos(radians)
	m := MatrixIdentity
	m.M22 = c
	m.M23 = s
	m.M32 = -s
	m.M33 = c
	return m
}

// MatrixRotationY returns a rotation around the Y axis.
func MatrixRotationY(radians float64) Matrix {
	s, c := math.Sincos(radians)
	m := MatrixIdentity
	m.M11 = c
	m.M13 = -s
	m.M31 = s
	m.M33 = c
	return m
}

// MatrixRotationZ returns a rotation around the Z axis.
func MatrixRotationZ(radians float64) Matrix {
	s, c := math.Sincos(radians)
	m := MatrixIdentity
	m.M11 = c
	m.M12 = s
	m.M21 = -s
	m.M22 = c
	return m
}

// MatrixFromQuaternion builds the rotation matrix of q, q is expected to be
// unit length.
func MatrixFromQuaternion(q Quaternion) Matrix {
	xx, yy, zz := q.X*q.X, q.Y*q.Y, q.Z*q.Z
	xy, zw, zx := q.X*q.Y, q.Z*q.W, q.Z*q.X
	yw, yz, xw := q.Y*q.W, q.Y*q.Z, q.X*q.W

	return Matrix{
		M11: 1.0 - (2.0 * (yy + zz)),
		M12: 2.0 * (xy + zw),
		M13: 2.0 * (zx - yw),
		M21: 2.0 * (xy - zw),
		M22: 1.0 - (2.0 * (zz + xx)),
		M23: 2.0 * (yz + xw),
		M31: 2.0 * (zx + yw),
		M32: 2.0 * (yz - xw),
		M33: 1.0 - (2.0 * (yy + xx)),
		M44: 1,
	}
}

// Mul returns m × other: transforming by the result is transforming by m
// and then by other.
func (m Matrix) Mul(other Matrix) Matrix {
	a := m.rows()
	b := other.rows()
	var out [16]float64
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out[r*4+c] = a[r*4+0]*b[0*4+c] + a[r*4+1]*b[1*4+c] +
				a[r*4+2]*b[2*4+c] + a[r*4+3]*b[3*4+c]
		}
	}
	return matrixFromRows(out)
}

func (m Matrix) Translation() Vector3 {
	return Vector3{X: m.M41, Y: m.M42, Z: m.M43}
}

func (m Matrix) Equals(other Matrix) bool {
	return m == other
}

func (m Matrix) rows() [16]float64 {
	return [16]float64{
		m.M11, m.M12, m.M13, m.M14,
		m.M21, m.M22, m.M23, m.M24,
		m.M31, m.M32, m.M33, m.M34,
		m.M41, m.M42, m.M43, m.M44,
	}
}

func matrixFromRows(r [16]float64) Matrix {
	return Matrix{
		M11: r[0], M12: r[1], M13: r[2], M14: r[3],
		M21: r[4], M22: r[5], M23: r[6], M24: r[7],
		M31: r[8], M32: r[9], M33: r[10], M34: r[11],
		M41: r[12], M42: r[13], M43: r[14], M44: r[15],
	}
}
