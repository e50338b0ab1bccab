package quickmath

import (
	"fmt"
	"math"
)

type Vector3 struct {
	X, Y, Z float64
}

var (
	Vector3Zero     = Vector3{}
	Vector3One      = Vector3{X: 1, Y: 1, Z: 1}
	Vector3UnitX    = Vector3{X: 1}
	Vector3UnitY    = Vector3{Y: 1}
	Vector3UnitZ    = Vector3{Z: 1}
	Vector3Up       = Vector3{Y: 1}
	Vector3Down     = Vector3{Y: -1}
	Vector3Right    = Vector3{X: 1}
	Vector3Left     = Vector3{X: -1}
	Vector3Forward  = Vector3{Z: -1}
	Vector3Backward = Vector3{Z: 1}
)

func NewVector3(x, y, z float64) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

func Vector3Splat(v float64) Vector3 {
	return Vector3{X: v, Y: v, Z: v}
}

func Vector3FromVector2(v Vector2, z float64) Vector3 {
	return Vector3{X: v.X, Y: v.Y, Z: z}
}

func (v Vector3) Add(other Vector3) Vector3 {
	return Vector3{X: v.X + other.X, Y: v.Y + other.Y, Z: v.Z + other.Z}
}

func (v Vector3) Sub(other Vector3) Vector3 {
	return Vector3{X: v.X - other.X, Y: v.Y - other.Y, Z: v.Z - other.Z}
}

func (v Vector3) Mul(other Vector3) Vector3 {
	return Vector3{X: v.X * other.X, Y: v.Y * other.Y, Z: v.Z * other.Z}
}

func (v Vector3) Scale(scalar float64) Vector3 {
	return Vector3{X: v.X * scalar, Y: v.Y * scalar, Z: v.Z * scalar}
}

// Div divides component-wise, zero divisor components give 0.
func (v Vector3) Div(other Vector3) Vector3 {
	return Vector3{
		X: safeDiv(v.X, other.X),
		Y: safeDiv(v.Y, other.Y),
		Z: safeDiv(v.Z, other.Z),
	}
}

func (v Vector3) DivScalar(d float64) Vector3 {
	if d == 0 {
		return Vector3{}
	}
	return Vector3{X: v.X / d, Y: v.Y / d, Z: v.Z / d}
}

func (v Vector3) Negate() Vector3 {
	return Vector3{X: -v.X, Y: -v.Y, Z: -v.Z}
}

func (v Vector3) Barycentric(v2, v3 Vector3, amount1, amount2 float64) Vector3 {
	return Vector3{
		X: Barycentric(v.X, v2.X, v3.X, amount1, amount2),
		Y: Barycentric(v.Y, v2.Y, v3.Y, amount1, amount2),
		Z: Barycentric(v.Z, v2.Z, v3.Z, amount1, amount2),
	}
}

func (v Vector3) CatmullRom(v2, v3, v4 Vector3, amount float64) Vector3 {
	return Vector3{
		X: CatmullRom(v.X, v2.X, v3.X, v4.X, amount),
		Y: CatmullRom(v.Y, v2.Y, v3.Y, v4.Y, amount),
		Z: CatmullRom(v.Z, v2.Z, v3.Z, v4.Z, amount),
	}
}

func (v Vector3) Hermite(tan1, v2, tan2 Vector3, amount float64) Vector3 {
	return Vector3{
		X: Hermite(v.X, tan1.X, v2.X, tan2.X, amount),
		Y: Hermite(v.Y, tan1.Y, v2.Y, tan2.Y, amount),
		Z: Hermite(v.Z, tan1.Z, v2.Z, tan2.Z, amount),
	}
}

func (v Vector3) Lerp(to Vector3, amount float64) Vector3 {
	return Vector3{
		X: Lerp(v.X, to.X, amount),
		Y: Lerp(v.Y, to.Y, amount),
		Z: Lerp(v.Z, to.Z, amount),
	}
}

func (v Vector3) LerpPrecise(to Vector3, amount float64) Vector3 {
	return Vector3{
		X: LerpPrecise(v.X, to.X, amount),
		Y: LerpPrecise(v.Y, to.Y, amount),
		Z: LerpPrecise(v.Z, to.Z, amount),
	}
}

func (v Vector3) SmoothStep(to Vector3, amount float64) Vector3 {
	return Vector3{
		X: SmoothStep(v.X, to.X, amount),
		Y: SmoothStep(v.Y, to.Y, amount),
		Z: SmoothStep(v.Z, to.Z, amount),
	}
}

func (v Vector3) Clamp(min, max Vector3) Vector3 {
	return Vector3{
		X: Clamp(v.X, min.X, max.X),
		Y: Clamp(v.Y, min.Y, max.Y),
		Z: Clamp(v.Z, min.Z, max.Z),
	}
}

func (v Vector3) Max(other Vector3) Vector3 {
	return Vector3{X: Max(v.X, other.X), Y: Max(v.Y, other.Y), Z: Max(v.Z, other.Z)}
}

func (v Vector3) Min(other Vector3) Vector3 {
	return Vector3{X: Min(v.X, other.X), Y: Min(v.Y, other.Y), Z: Min(v.Z, other.Z)}
}

func (v Vector3) Round() Vector3 {
	return Vector3{X: math.Round(v.X), Y: math.Round(v.Y), Z: math.Round(v.Z)}
}

func (v Vector3) Floor() Vector3 {
	return Vector3{X: math.Floor(v.X), Y: math.Floor(v.Y), Z: math.Floor(v.Z)}
}

func (v Vector3) Ceiling() Vector3 {
	return Vector3{X: math.Ceil(v.X), Y: math.Ceil(v.Y), Z: math.Ceil(v.Z)}
}

func (v Vector3) Cross(other Vector3) Vector3 {
	return Vector3{
		X: v.Y*other.Z - other.Y*v.Z,
		Y: -(v.X*other.Z - other.X*v.Z),
		Z: v.X*other.Y - other.X*v.Y,
	}
}

// Normalize is unguarded, a zero vector comes back as NaN.
func (v Vector3) Normalize() Vector3 {
	factor := 1.0 / math.Sqrt((v.X*v.X)+(v.Y*v.Y)+(v.Z*v.Z))
	return Vector3{X: v.X * factor, Y: v.Y * factor, Z: v.Z * factor}
}

// Reflect expects normal to be unit length.
func (v Vector3) Reflect(normal Vector3) Vector3 {
	d := ((v.X * normal.X) + (v.Y * normal.Y)) + (v.Z * normal.Z)
	return Vector3{
		X: v.X - (2.0*normal.X)*d,
		Y: v.Y - (2.0*normal.Y)*d,
		Z: v.Z - (2.0*normal.Z)*d,
	}
}

func (v Vector3) Dot(other Vector3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

func (v Vector3) Distance(other Vector3) float64 {
	return math.Sqrt(v.DistanceSquared(other))
}

func (v Vector3) DistanceSquared(other Vector3) float64 {
	return (v.X-other.X)*(v.X-other.X) +
		(v.Y-other.Y)*(v.Y-other.Y) +
		(v.Z-other.Z)*(v.Z-other.Z)
}

func (v Vector3) Length() float64 {
	return math.Sqrt(v.LengthSquared())
}

func (v Vector3) LengthSquared() float64 {
	return (v.X * v.X) + (v.Y * v.Y) + (v.Z * v.Z)
}

// Transform treats v as a position: rows 1-3 of m plus the M41..M43 translation.
func (v Vector3) Transform(m Matrix) Vector3 {
	return Vector3{
		X: (v.X * m.M11) + (v.Y * m.M21) + (v.Z * m.M31) + m.M41,
		Y: (v.X * m.M12) + (v.Y * m.M22) + (v.Z * m.M32) + m.M42,
		Z: (v.X * m.M13) + (v.Y * m.M23) + (v.Z * m.M33) + m.M43,
	}
}

// TransformNormal treats v as a direction and ignores translation.
func (v Vector3) TransformNormal(m Matrix) Vector3 {
	return Vector3{
		X: (v.X * m.M11) + (v.Y * m.M21) + (v.Z * m.M31),
		Y: (v.X * m.M12) + (v.Y * m.M22) + (v.Z * m.M32),
		Z: (v.X * m.M13) + (v.Y * m.M23) + (v.Z * m.M33),
	}
}

// TransformVector4 treats v as (X, Y, Z, 1).
func (v Vector3) TransformVector4(m Matrix) Vector4 {
	return Vector4{
		X: (v.X * m.M11) + (v.Y * m.M21) + (v.Z * m.M31) + m.M41,
		Y: (v.X * m.M12) + (v.Y * m.M22) + (v.Z * m.M32) + m.M42,
		Z: (v.X * m.M13) + (v.Y * m.M23) + (v.Z * m.M33) + m.M43,
		W: (v.X * m.M14) + (v.Y * m.M24) + (v.Z * m.M34) + m.M44,
	}
}

// TransformQuaternion rotates v by q as v + w*t + q×t with t = 2(q×v).
// Keep the term grouping as is, results are compared bit for bit.
func (v Vector3) TransformQuaternion(q Quaternion) Vector3 {
	x := 2 * (q.Y*v.Z - q.Z*v.Y)
	y := 2 * (q.Z*v.X - q.X*v.Z)
	z := 2 * (q.X*v.Y - q.Y*v.X)

	return Vector3{
		X: v.X + x*q.W + (q.Y*z - q.Z*y),
		Y: v.Y + y*q.W + (q.Z*x - q.X*z),
		Z: v.Z + z*q.W + (q.X*y - q.Y*x),
	}
}

func (v *Vector3) NormalizeInPlace() {
	*v = v.Normalize()
}

func (v *Vector3) RoundInPlace() {
	*v = v.Round()
}

func (v *Vector3) FloorInPlace() {
	*v = v.Floor()
}

func (v *Vector3) CeilingInPlace() {
	*v = v.Ceiling()
}

// ToVector2 drops Z.
func (v Vector3) ToVector2() Vector2 {
	return Vector2{X: v.X, Y: v.Y}
}

func (v Vector3) ToVector4() Vector4 {
	return Vector4{X: v.X, Y: v.Y, Z: v.Z}
}

func (v Vector3) Deconstruct() (float64, float64, float64) {
	return v.X, v.Y, v.Z
}

func (v Vector3) Equals(other Vector3) bool {
	return v.X == other.X && v.Y == other.Y && v.Z == other.Z
}

func (v Vector3) String() string {
	return fmt.Sprintf("{X:%v Y:%v Z:%v}", v.X, v.Y, v.Z)
}
