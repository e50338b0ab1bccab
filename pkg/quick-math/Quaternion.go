package quickmath

import (
	"fmt"
	"math"
)

// Quaternion is a rotation (X, Y, Z) vector part and W scalar part.
// Unit length is expected by the rotation functions but never enforced.
type Quaternion struct {
	X, Y, Z, W float64
}

var QuaternionIdentity = Quaternion{W: 1}

// slerpLinearThreshold is the |dot| above which SLerp blends linearly,
// sin(theta) is too close to zero past it.
const slerpLinearThreshold = 0.999999

func NewQuaternion(x, y, z, w float64) Quaternion {
	return Quaternion{X: x, Y: y, Z: z, W: w}
}

func QuaternionFromVector3(v Vector3, w float64) Quaternion {
	return Quaternion{X: v.X, Y: v.Y, Z: v.Z, W: w}
}

func QuaternionFromVector4(v Vector4) Quaternion {
	return Quaternion{X: v.X, Y: v.Y, Z: v.Z, W: v.W}
}

// QuaternionFromAxisAngle expects a normalized axis.
func QuaternionFromAxisAngle(axis Vector3, angle float64) Quaternion {
	half := angle * 0.5
	sin := math.Sin(half)
	cos := math.Cos(half)
	return Quaternion{X: axis.X * sin, Y: axis.Y * sin, Z: axis.Z * sin, W: cos}
}

// QuaternionFromRotationMatrix reads the upper 3x3 block of m. The branch
// is picked on the trace first, then on the largest diagonal element with
// M11 winning ties.
func QuaternionFromRotationMatrix(m Matrix) Quaternion {
	var q Quaternion
	scale := m.M11 + m.M22 + m.M33

	if scale > 0 {
		sqrt := math.Sqrt(scale + 1.0)
		q.W = sqrt * 0.5
		sqrt = 0.5 / sqrt

		q.X = (m.M23 - m.M32) * sqrt
		q.Y = (m.M31 - m.M13) * sqrt
		q.Z = (m.M12 - m.M21) * sqrt
		return q
	}

	if m.M11 >= m.M22 && m.M11 >= m.M33 {
		sqrt := math.Sqrt(1.0 + m.M11 - m.M22 - m.M33)
		half := 0.5 / sqrt

		q.X = 0.5 * sqrt
		q.Y = (m.M12 + m.M21) * half
		q.Z = (m.M13 + m.M31) * half
		q.W = (m.M23 - m.M32) * half
		return q
	}

	if m.M22 > m.M33 {
		sqrt := math.Sqrt(1.0 + m.M22 - m.M11 - m.M33)
		half := 0.5 / sqrt

		q.X = (m.M21 + m.M12) * half
		q.Y = 0.5 * sqrt
		q.Z = (m.M32 + m.M23) * half
		q.W = (m.M31 - m.M13) * half
		return q
	}

	sqrt := math.Sqrt(1.0 + m.M33 - m.M11 - m.M22)
	half := 0.5 / sqrt

	q.X = (m.M31 + m.M13) * half
	q.Y = (m.M32 + m.M23) * half
	q.Z = 0.5 * sqrt
	q.W = (m.M12 - m.M21) * half
	return q
}

// QuaternionFromYawPitchRoll composes yaw around Y, pitch around X and
// roll around Z.
func QuaternionFromYawPitchRoll(yaw, pitch, roll float64) Quaternion {
	sinRoll, cosRoll := math.Sincos(roll * 0.5)
	sinPitch, cosPitch := math.Sincos(pitch * 0.5)
	sinYaw, cosYaw := math.Sincos(yaw * 0.5)

	return Quaternion{
		X: (cosYaw * sinPitch * cosRoll) + (sinYaw * cosPitch * sinRoll),
		Y: (sinYaw * cosPitch * cosRoll) - (cosYaw * sinPitch * sinRoll),
		Z: (cosYaw * cosPitch * sinRoll) - (sinYaw * sinPitch * cosRoll),
		W: (cosYaw * cosPitch * cosRoll) + (sinYaw * sinPitch * sinRoll),
	}
}

func (q Quaternion) Add(other Quaternion) Quaternion {
	return Quaternion{X: q.X + other.X, Y: q.Y + other.Y, Z: q.Z + other.Z, W: q.W + other.W}
}

func (q Quaternion) Sub(other Quaternion) Quaternion {
	return Quaternion{X: q.X - other.X, Y: q.Y - other.Y, Z: q.Z - other.Z, W: q.W - other.W}
}

// Mul is the Hamilton product q * other.
func (q Quaternion) Mul(other Quaternion) Quaternion {
	x, y, z, w := q.X, q.Y, q.Z, q.W
	ox, oy, oz, ow := other.X, other.Y, other.Z, other.W

	cx := (y * oz) - (z * oy)
	cy := (z * ox) - (x * oz)
	cz := (x * oy) - (y * ox)
	dot := ((x * ox) + (y * oy)) + (z * oz)

	return Quaternion{
		X: ((x * ow) + (ox * w)) + cx,
		Y: ((y * ow) + (oy * w)) + cy,
		Z: ((z * ow) + (oz * w)) + cz,
		W: (w * ow) - dot,
	}
}

func (q Quaternion) Scale(scalar float64) Quaternion {
	return Quaternion{X: q.X * scalar, Y: q.Y * scalar, Z: q.Z * scalar, W: q.W * scalar}
}

// Div is q * other⁻¹ with the inverse expanded inline. A zero other gives
// Inf/NaN.
func (q Quaternion) Div(other Quaternion) Quaternion {
	x, y, z, w := q.X, q.Y, q.Z, q.W

	norm := (((other.X * other.X) + (other.Y * other.Y)) + (other.Z * other.Z)) + (other.W * other.W)
	inv := 1.0 / norm
	ix := -other.X * inv
	iy := -other.Y * inv
	iz := -other.Z * inv
	iw := other.W * inv

	cx := (y * iz) - (z * iy)
	cy := (z * ix) - (x * iz)
	cz := (x * iy) - (y * ix)
	dot := ((x * ix) + (y * iy)) + (z * iz)

	return Quaternion{
		X: ((x * iw) + (ix * w)) + cx,
		Y: ((y * iw) + (iy * w)) + cy,
		Z: ((z * iw) + (iz * w)) + cz,
		W: (w * iw) - dot,
	}
}

// Concatenate returns the rotation q followed by other, i.e. other * q.
// Mul composes the other way around.
func (q Quaternion) Concatenate(other Quaternion) Quaternion {
	return Quaternion{
		X: ((other.X * q.W) + (q.X * other.W)) + ((other.Y * q.Z) - (other.Z * q.Y)),
		Y: ((other.Y * q.W) + (q.Y * other.W)) + ((other.Z * q.X) - (other.X * q.Z)),
		Z: ((other.Z * q.W) + (q.Z * other.W)) + ((other.X * q.Y) - (other.Y * q.X)),
		W: (other.W * q.W) - (((other.X * q.X) + (other.Y * q.Y)) + (other.Z * q.Z)),
	}
}

func (q Quaternion) Conjugate() Quaternion {
	return Quaternion{X: -q.X, Y: -q.Y, Z: -q.Z, W: q.W}
}

// Inverse is unguarded, the zero quaternion yields NaN.
func (q Quaternion) Inverse() Quaternion {
	norm := (((q.X * q.X) + (q.Y * q.Y)) + (q.Z * q.Z)) + (q.W * q.W)
	inv := 1.0 / norm
	return Quaternion{X: -q.X * inv, Y: -q.Y * inv, Z: -q.Z * inv, W: q.W * inv}
}

func (q Quaternion) Negate() Quaternion {
	return Quaternion{X: -q.X, Y: -q.Y, Z: -q.Z, W: -q.W}
}

func (q Quaternion) Normalize() Quaternion {
	inv := 1.0 / math.Sqrt((q.X*q.X)+(q.Y*q.Y)+(q.Z*q.Z)+(q.W*q.W))
	return Quaternion{X: q.X * inv, Y: q.Y * inv, Z: q.Z * inv, W: q.W * inv}
}

func (q Quaternion) Dot(other Quaternion) float64 {
	return (((q.X * other.X) + (q.Y * other.Y)) + (q.Z * other.Z)) + (q.W * other.W)
}

func (q Quaternion) Length() float64 {
	return math.Sqrt(q.LengthSquared())
}

func (q Quaternion) LengthSquared() float64 {
	return (q.X * q.X) + (q.Y * q.Y) + (q.Z * q.Z) + (q.W * q.W)
}

// Lerp blends component-wise along the shorter arc (other is negated when
// the dot product is negative) and renormalizes the result.
func (q Quaternion) Lerp(other Quaternion, amount float64) Quaternion {
	inv := 1.0 - amount
	var out Quaternion

	if q.Dot(other) >= 0 {
		out.X = (inv * q.X) + (amount * other.X)
		out.Y = (inv * q.Y) + (amount * other.Y)
		out.Z = (inv * q.Z) + (amount * other.Z)
		out.W = (inv * q.W) + (amount * other.W)
	} else {
		out.X = (inv * q.X) - (amount * other.X)
		out.Y = (inv * q.Y) - (amount * other.Y)
		out.Z = (inv * q.Z) - (amount * other.Z)
		out.W = (inv * q.W) - (amount * other.W)
	}

	return out.Normalize()
}

// SLerp interpolates along the great arc. Nearly parallel inputs fall back
// to linear weights. Like Lerp it takes the shorter arc.
func (q Quaternion) SLerp(other Quaternion, amount float64) Quaternion {
	var w1, w2 float64
	cos := q.Dot(other)
	flip := false

	if cos < 0 {
		flip = true
		cos = -cos
	}

	if cos > slerpLinearThreshold {
		w1 = 1.0 - amount
		w2 = amount
	} else {
		theta := math.Acos(cos)
		invSin := 1.0 / math.Sin(theta)
		w1 = math.Sin((1.0-amount)*theta) * invSin
		w2 = math.Sin(amount*theta) * invSin
	}

	if flip {
		w2 = -w2
	}

	return Quaternion{
		X: (w1 * q.X) + (w2 * other.X),
		Y: (w1 * q.Y) + (w2 * other.Y),
		Z: (w1 * q.Z) + (w2 * other.Z),
		W: (w1 * q.W) + (w2 * other.W),
	}
}

func (q *Quaternion) ConjugateInPlace() {
	*q = q.Conjugate()
}

func (q *Quaternion) NormalizeInPlace() {
	*q = q.Normalize()
}

func (q Quaternion) ToVector4() Vector4 {
	return Vector4{X: q.X, Y: q.Y, Z: q.Z, W: q.W}
}

func (q Quaternion) Deconstruct() (float64, float64, float64, float64) {
	return q.X, q.Y, q.Z, q.W
}

func (q Quaternion) Equals(other Quaternion) bool {
	return q.X == other.X && q.Y == other.Y && q.Z == other.Z && q.W == other.W
}

func (q Quaternion) String() string {
	return fmt.Sprintf("{X:%v Y:%v Z:%v W:%v}", q.X, q.Y, q.Z, q.W)
}
