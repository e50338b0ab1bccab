package quickmath

import (
	"fmt"
	"math"
)

type Vector4 struct {
	X, Y, Z, W float64
}

var (
	Vector4Zero  = Vector4{}
	Vector4One   = Vector4{X: 1, Y: 1, Z: 1, W: 1}
	Vector4UnitX = Vector4{X: 1}
	Vector4UnitY = Vector4{Y: 1}
	Vector4UnitZ = Vector4{Z: 1}
	Vector4UnitW = Vector4{W: 1}
)

func NewVector4(x, y, z, w float64) Vector4 {
	return Vector4{X: x, Y: y, Z: z, W: w}
}

func Vector4Splat(v float64) Vector4 {
	return Vector4{X: v, Y: v, Z: v, W: v}
}

func Vector4FromVector2(v Vector2, z, w float64) Vector4 {
	return Vector4{X: v.X, Y: v.Y, Z: z, W: w}
}

func Vector4FromVector3(v Vector3, w float64) Vector4 {
	return Vector4{X: v.X, Y: v.Y, Z: v.Z, W: w}
}

func (v Vector4) Add(other Vector4) Vector4 {
	return Vector4{X: v.X + other.X, Y: v.Y + other.Y, Z: v.Z + other.Z, W: v.W + other.W}
}

func (v Vector4) Sub(other Vector4) Vector4 {
	return Vector4{X: v.X - other.X, Y: v.Y - other.Y, Z: v.Z - other.Z, W: v.W - other.W}
}

func (v Vector4) Mul(other Vector4) Vector4 {
	return Vector4{X: v.X * other.X, Y: v.Y * other.Y, Z: v.Z * other.Z, W: v.W * other.W}
}

func (v Vector4) Scale(scalar float64) Vector4 {
	return Vector4{X: v.X * scalar, Y: v.Y * scalar, Z: v.Z * scalar, W: v.W * scalar}
}

func (v Vector4) Div(other Vector4) Vector4 {
	return Vector4{
		X: safeDiv(v.X, other.X),
		Y: safeDiv(v.Y, other.Y),
		Z: safeDiv(v.Z, other.Z),
		W: safeDiv(v.W, other.W),
	}
}

func (v Vector4) DivScalar(d float64) Vector4 {
	if d == 0 {
		return Vector4{}
	}
	return Vector4{X: v.X / d, Y: v.Y / d, Z: v.Z / d, W: v.W / d}
}

func (v Vector4) Negate() Vector4 {
	return Vector4{X: -v.X, Y: -v.Y, Z: -v.Z, W: -v.W}
}

func (v Vector4) Barycentric(v2, v3 Vector4, amount1, amount2 float64) Vector4 {
	return Vector4{
		X: Barycentric(v.X, v2.X, v3.X, amount1, amount2),
		Y: Barycentric(v.Y, v2.Y, v3.Y, amount1, amount2),
		Z: Barycentric(v.Z, v2.Z, v3.Z, amount1, amount2),
		W: Barycentric(v.W, v2.W, v3.W, amount1, amount2),
	}
}

func (v Vector4) CatmullRom(v2, v3, v4 Vector4, amount float64) Vector4 {
	return Vector4{
		X: CatmullRom(v.X, v2.X, v3.X, v4.X, amount),
		Y: CatmullRom(v.Y, v2.Y, v3.Y, v4.Y, amount),
		Z: CatmullRom(v.Z, v2.Z, v3.Z, v4.Z, amount),
		W: CatmullRom(v.W, v2.W, v3.W, v4.W, amount),
	}
}

func (v Vector4) Hermite(tan1, v2, tan2 Vector4, amount float64) Vector4 {
	return Vector4{
		X: Hermite(v.X, tan1.X, v2.X, tan2.X, amount),
		Y: Hermite(v.Y, tan1.Y, v2.Y, tan2.Y, amount),
		Z: Hermite(v.Z, tan1.Z, v2.Z, tan2.Z, amount),
		W: Hermite(v.W, tan1.W, v2.W, tan2.W, amount),
	}
}

func (v Vector4) Lerp(to Vector4, amount float64) Vector4 {
	return Vector4{
		X: Lerp(v.X, to.X, amount),
		Y: Lerp(v.Y, to.Y, amount),
		Z: Lerp(v.Z, to.Z, amount),
		W: Lerp(v.W, to.W, amount),
	}
}

func (v Vector4) LerpPrecise(to Vector4, amount float64) Vector4 {
	return Vector4{
		X: LerpPrecise(v.X, to.X, amount),
		Y: LerpPrecise(v.Y, to.Y, amount),
		Z: LerpPrecise(v.Z, to.Z, amount),
		W: LerpPrecise(v.W, to.W, amount),
	}
}

func (v Vector4) SmoothStep(to Vector4, amount float64) Vector4 {
	return Vector4{
		X: SmoothStep(v.X, to.X, amount),
		Y: SmoothStep(v.Y, to.Y, amount),
		Z: SmoothStep(v.Z, to.Z, amount),
		W: SmoothStep(v.W, to.W, amount),
	}
}

func (v Vector4) Clamp(min, max Vector4) Vector4 {
	return Vector4{
		X: Clamp(v.X, min.X, max.X),
		Y: Clamp(v.Y, min.Y, max.Y),
		Z: Clamp(v.Z, min.Z, max.Z),
		W: Clamp(v.W, min.W, max.W),
	}
}

func (v Vector4) Max(other Vector4) Vector4 {
	return Vector4{
		X: Max(v.X, other.X),
		Y: Max(v.Y, other.Y),
		Z: Max(v.Z, other.Z),
		W: Max(v.W, other.W),
	}
}

func (v Vector4) Min(other Vector4) Vector4 {
	return Vector4{
		X: Min(v.X, other.X),
		Y: Min(v.Y, other.Y),
		Z: Min(v.Z, other.Z),
		W: Min(v.W, other.W),
	}
}

func (v Vector4) Round() Vector4 {
	return Vector4{X: math.Round(v.X), Y: math.Round(v.Y), Z: math.Round(v.Z), W: math.Round(v.W)}
}

func (v Vector4) Floor() Vector4 {
	return Vector4{X: math.Floor(v.X), Y: math.Floor(v.Y), Z: math.Floor(v.Z), W: math.Floor(v.W)}
}

func (v Vector4) Ceiling() Vector4 {
	return Vector4{X: math.Ceil(v.X), Y: math.Ceil(v.Y), Z: math.Ceil(v.Z), W: math.Ceil(v.W)}
}

// Normalize is unguarded, see Vector3.Normalize.
func (v Vector4) Normalize() Vector4 {
	factor := 1.0 / math.Sqrt((v.X*v.X)+(v.Y*v.Y)+(v.Z*v.Z)+(v.W*v.W))
	return Vector4{X: v.X * factor, Y: v.Y * factor, Z: v.Z * factor, W: v.W * factor}
}

func (v Vector4) Dot(other Vector4) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z + v.W*other.W
}

func (v Vector4) Distance(other Vector4) float64 {
	return math.Sqrt(v.DistanceSquared(other))
}

func (v Vector4) DistanceSquared(other Vector4) float64 {
	return (v.W-other.W)*(v.W-other.W) +
		(v.X-other.X)*(v.X-other.X) +
		(v.Y-other.Y)*(v.Y-other.Y) +
		(v.Z-other.Z)*(v.Z-other.Z)
}

func (v Vector4) Length() float64 {
	return math.Sqrt(v.LengthSquared())
}

func (v Vector4) LengthSquared() float64 {
	return (v.X * v.X) + (v.Y * v.Y) + (v.Z * v.Z) + (v.W * v.W)
}

// Transform is the full row-vector by matrix product.
func (v Vector4) Transform(m Matrix) Vector4 {
	return Vector4{
		X: (v.X * m.M11) + (v.Y * m.M21) + (v.Z * m.M31) + (v.W * m.M41),
		Y: (v.X * m.M12) + (v.Y * m.M22) + (v.Z * m.M32) + (v.W * m.M42),
		Z: (v.X * m.M13) + (v.Y * m.M23) + (v.Z * m.M33) + (v.W * m.M43),
		W: (v.X * m.M14) + (v.Y * m.M24) + (v.Z * m.M34) + (v.W * m.M44),
	}
}

// TransformQuaternion rotates the XYZ part by q, W is carried over unchanged.
func (v Vector4) TransformQuaternion(q Quaternion) Vector4 {
	return Vector4FromVector3(v.ToVector3().TransformQuaternion(q), v.W)
}

func (v *Vector4) NormalizeInPlace() {
	*v = v.Normalize()
}

func (v *Vector4) RoundInPlace() {
	*v = v.Round()
}

func (v *Vector4) FloorInPlace() {
	*v = v.Floor()
}

func (v *Vector4) CeilingInPlace() {
	*v = v.Ceiling()
}

func (v Vector4) ToVector2() Vector2 {
	return Vector2{X: v.X, Y: v.Y}
}

func (v Vector4) ToVector3() Vector3 {
	return Vector3{X: v.X, Y: v.Y, Z: v.Z}
}

func (v Vector4) Deconstruct() (float64, float64, float64, float64) {
	return v.X, v.Y, v.Z, v.W
}

func (v Vector4) Equals(other Vector4) bool {
	return v.X == other.X && v.Y == other.Y && v.Z == other.Z && v.W == other.W
}

func (v Vector4) String() string {
	return fmt.Sprintf("{X:%v Y:%v Z:%v W:%v}", v.X, v.Y, v.Z, v.W)
}
