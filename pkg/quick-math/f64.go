package quickmath

import "golang.org/x/image/math/f64"

// Conversions to the array types of golang.org/x/image/math/f64, for
// handing values to code built on that package.

func (v Vector2) F64() f64.Vec2 {
	return f64.Vec2{v.X, v.Y}
}

func Vector2FromF64(v f64.Vec2) Vector2 {
	return Vector2{X: v[0], Y: v[1]}
}

func (v Vector3) F64() f64.Vec3 {
	return f64.Vec3{v.X, v.Y, v.Z}
}

func Vector3FromF64(v f64.Vec3) Vector3 {
	return Vector3{X: v[0], Y: v[1], Z: v[2]}
}

func (v Vector4) F64() f64.Vec4 {
	return f64.Vec4{v.X, v.Y, v.Z, v.W}
}

func Vector4FromF64(v f64.Vec4) Vector4 {
	return Vector4{X: v[0], Y: v[1], Z: v[2], W: v[3]}
}

// F64 copies m in row major order, m[4*r+c] is M(r+1)(c+1).
func (m Matrix) F64() f64.Mat4 {
	return f64.Mat4(m.rows())
}

func MatrixFromF64(m f64.Mat4) Matrix {
	return matrixFromRows([16]float64(m))
}
