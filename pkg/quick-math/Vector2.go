package quickmath

import (
	"fmt"
	"math"
)

type Vector2 struct {
	X, Y float64
}

var (
	Vector2Zero  = Vector2{}
	Vector2One   = Vector2{X: 1, Y: 1}
	Vector2UnitX = Vector2{X: 1, Y: 0}
	Vector2UnitY = Vector2{X: 0, Y: 1}
)

func NewVector2(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

func Vector2Splat(v float64) Vector2 {
	return Vector2{X: v, Y: v}
}

func (v Vector2) Add(other Vector2) Vector2 {
	return Vector2{X: v.X + other.X, Y: v.Y + other.Y}
}

func (v Vector2) Sub(other Vector2) Vector2 {
	return Vector2{X: v.X - other.X, Y: v.Y - other.Y}
}

func (v Vector2) Mul(other Vector2) Vector2 {
	return Vector2{X: v.X * other.X, Y: v.Y * other.Y}
}

func (v Vector2) Scale(scalar float64) Vector2 {
	return Vector2{X: v.X * scalar, Y: v.Y * scalar}
}

// Div divides component-wise. A zero divisor component yields 0 for that
// component instead of Inf/NaN.
func (v Vector2) Div(other Vector2) Vector2 {
	return Vector2{X: safeDiv(v.X, other.X), Y: safeDiv(v.Y, other.Y)}
}

// DivScalar returns the zero vector when d is 0.
func (v Vector2) DivScalar(d float64) Vector2 {
	if d == 0 {
		return Vector2{}
	}
	return Vector2{X: v.X / d, Y: v.Y / d}
}

func (v Vector2) Negate() Vector2 {
	return Vector2{X: -v.X, Y: -v.Y}
}

func (v Vector2) Barycentric(v2, v3 Vector2, amount1, amount2 float64) Vector2 {
	return Vector2{
		X: Barycentric(v.X, v2.X, v3.X, amount1, amount2),
		Y: Barycentric(v.Y, v2.Y, v3.Y, amount1, amount2),
	}
}

func (v Vector2) CatmullRom(v2, v3, v4 Vector2, amount float64) Vector2 {
	return Vector2{
		X: CatmullRom(v.X, v2.X, v3.X, v4.X, amount),
		Y: CatmullRom(v.Y, v2.Y, v3.Y, v4.Y, amount),
	}
}

func (v Vector2) Hermite(tan1, v2, tan2 Vector2, amount float64) Vector2 {
	return Vector2{
		X: Hermite(v.X, tan1.X, v2.X, tan2.X, amount),
		Y: Hermite(v.Y, tan1.Y, v2.Y, tan2.Y, amount),
	}
}

func (v Vector2) Lerp(to Vector2, amount float64) Vector2 {
	return Vector2{X: Lerp(v.X, to.X, amount), Y: Lerp(v.Y, to.Y, amount)}
}

func (v Vector2) LerpPrecise(to Vector2, amount float64) Vector2 {
	return Vector2{X: LerpPrecise(v.X, to.X, amount), Y: LerpPrecise(v.Y, to.Y, amount)}
}

func (v Vector2) SmoothStep(to Vector2, amount float64) Vector2 {
	return Vector2{X: SmoothStep(v.X, to.X, amount), Y: SmoothStep(v.Y, to.Y, amount)}
}

func (v Vector2) Clamp(min, max Vector2) Vector2 {
	return Vector2{X: Clamp(v.X, min.X, max.X), Y: Clamp(v.Y, min.Y, max.Y)}
}

func (v Vector2) Max(other Vector2) Vector2 {
	return Vector2{X: Max(v.X, other.X), Y: Max(v.Y, other.Y)}
}

func (v Vector2) Min(other Vector2) Vector2 {
	return Vector2{X: Min(v.X, other.X), Y: Min(v.Y, other.Y)}
}

func (v Vector2) Round() Vector2 {
	return Vector2{X: math.Round(v.X), Y: math.Round(v.Y)}
}

func (v Vector2) Floor() Vector2 {
	return Vector2{X: math.Floor(v.X), Y: math.Floor(v.Y)}
}

func (v Vector2) Ceiling() Vector2 {
	return Vector2{X: math.Ceil(v.X), Y: math.Ceil(v.Y)}
}

// Normalize does not guard against a zero length vector, the result is NaN.
func (v Vector2) Normalize() Vector2 {
	factor := 1.0 / math.Sqrt((v.X*v.X)+(v.Y*v.Y))
	return Vector2{X: v.X * factor, Y: v.Y * factor}
}

// Reflect expects normal to be unit length.
func (v Vector2) Reflect(normal Vector2) Vector2 {
	d := 2.0 * ((v.X * normal.X) + (v.Y * normal.Y))
	return Vector2{X: v.X - (normal.X * d), Y: v.Y - (normal.Y * d)}
}

func (v Vector2) Dot(other Vector2) float64 {
	return (v.X * other.X) + (v.Y * other.Y)
}

func (v Vector2) Distance(other Vector2) float64 {
	return math.Sqrt(v.DistanceSquared(other))
}

func (v Vector2) DistanceSquared(other Vector2) float64 {
	dx := v.X - other.X
	dy := v.Y - other.Y
	return (dx * dx) + (dy * dy)
}

func (v Vector2) Length() float64 {
	return math.Sqrt(v.LengthSquared())
}

func (v Vector2) LengthSquared() float64 {
	return (v.X * v.X) + (v.Y * v.Y)
}

// Transform applies the 2D part of m (rows 1 and 2) plus the M41/M42 translation.
func (v Vector2) Transform(m Matrix) Vector2 {
	return Vector2{
		X: (v.X * m.M11) + (v.Y * m.M21) + m.M41,
		Y: (v.X * m.M12) + (v.Y * m.M22) + m.M42,
	}
}

// TransformNormal is Transform without the translation row.
func (v Vector2) TransformNormal(m Matrix) Vector2 {
	return Vector2{
		X: (v.X * m.M11) + (v.Y * m.M21),
		Y: (v.X * m.M12) + (v.Y * m.M22),
	}
}

// TransformVector4 treats v as (X, Y, 0, 1) and returns the full 4D product.
func (v Vector2) TransformVector4(m Matrix) Vector4 {
	return Vector4{
		X: (v.X * m.M11) + (v.Y * m.M21) + m.M41,
		Y: (v.X * m.M12) + (v.Y * m.M22) + m.M42,
		Z: (v.X * m.M13) + (v.Y * m.M23) + m.M43,
		W: (v.X * m.M14) + (v.Y * m.M24) + m.M44,
	}
}

// TransformQuaternion rotates v, taken as lying in the Z=0 plane, by q and
// drops the resulting Z.
func (v Vector2) TransformQuaternion(q Quaternion) Vector2 {
	rot1 := Vector3{X: q.X + q.X, Y: q.Y + q.Y, Z: q.Z + q.Z}
	rot2 := Vector3{X: q.X, Y: q.X, Z: q.W}
	rot3 := Vector3{X: 1, Y: q.Y, Z: q.Z}
	rot4 := rot1.Mul(rot2)
	rot5 := rot1.Mul(rot3)

	return Vector2{
		X: v.X*(1.0-rot5.Y-rot5.Z) + v.Y*(rot4.Y-rot4.Z),
		Y: v.X*(rot4.Y+rot4.Z) + v.Y*(1.0-rot4.X-rot5.Z),
	}
}

func (v *Vector2) NormalizeInPlace() {
	*v = v.Normalize()
}

func (v *Vector2) RoundInPlace() {
	*v = v.Round()
}

func (v *Vector2) FloorInPlace() {
	*v = v.Floor()
}

func (v *Vector2) CeilingInPlace() {
	*v = v.Ceiling()
}

// ToPoint truncates toward zero.
func (v Vector2) ToPoint() Point {
	return PointFromVector2(v)
}

func (v Vector2) ToVector3() Vector3 {
	return Vector3{X: v.X, Y: v.Y}
}

func (v Vector2) Deconstruct() (float64, float64) {
	return v.X, v.Y
}

// Equals is exact component equality.
func (v Vector2) Equals(other Vector2) bool {
	return v.X == other.X && v.Y == other.Y
}

func (v Vector2) String() string {
	return fmt.Sprintf("{X:%v Y:%v}", v.X, v.Y)
}

func safeDiv(n, d float64) float64 {
	if d == 0 {
		return 0
	}
	return n / d
}
