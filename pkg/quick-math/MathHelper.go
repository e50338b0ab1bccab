package quickmath

import "math"

const (
	E       = math.E
	Log10E  = 0.434294481903251827651
	Log2E   = 1.442695040888963407359
	Pi      = math.Pi
	PiOver2 = math.Pi / 2
	PiOver4 = math.Pi / 4
	TwoPi   = math.Pi * 2
	Tau     = TwoPi
)

// Barycentric returns the coordinate of a point given in barycentric
// (areal) coordinates relative to a triangle v1, v2, v3.
func Barycentric(v1, v2, v3, amount1, amount2 float64) float64 {
	return v1 + (v2-v1)*amount1 + (v3-v1)*amount2
}

// CatmullRom interpolates between v2 and v3 using v1 and v4 as control points.
func CatmullRom(v1, v2, v3, v4, amount float64) float64 {
	amountSquared := amount * amount
	amountCubed := amountSquared * amount

	return 0.5 * (2.0*v2 +
		(v3-v1)*amount +
		(2.0*v1-5.0*v2+4.0*v3-v4)*amountSquared +
		(3.0*v2-v1-3.0*v3+v4)*amountCubed)
}

// Clamp restricts v to [min, max]. The bounds are not validated: the lower
// bound is applied first and the upper bound last, so when min > max the
// result is max.
func Clamp(v, min, max float64) float64 {
	if v < min {
		v = min
	}
	if v > max {
		v = max
	}
	return v
}

func ClampInt(v, min, max int32) int32 {
	if v < min {
		v = min
	}
	if v > max {
		v = max
	}
	return v
}

func Distance(v1, v2 float64) float64 {
	return math.Abs(v1 - v2)
}

// Hermite evaluates a cubic Hermite spline between v1 and v2 with the given
// tangents. amount 0 and 1 return the end points exactly.
func Hermite(v1, tan1, v2, tan2, amount float64) float64 {
	if amount == 0 {
		return v1
	}
	if amount == 1 {
		return v2
	}

	aSquared := amount * amount
	aCubed := aSquared * amount

	return (2*v1-2*v2+tan2+tan1)*aCubed +
		(3*v2-3*v1-2*tan1-tan2)*aSquared +
		tan1*amount +
		v1
}

// Lerp is the fast linear interpolation. It may be off by rounding at
// amount == 1, use LerpPrecise when the end point has to be hit.
func Lerp(v1, v2, amount float64) float64 {
	return v1 + (v2-v1)*amount
}

func LerpPrecise(v1, v2, amount float64) float64 {
	return ((1.0 - amount) * v1) + (v2 * amount)
}

func Max(v1, v2 float64) float64 {
	if v1 > v2 {
		return v1
	}
	return v2
}

func MaxInt(v1, v2 int32) int32 {
	if v1 > v2 {
		return v1
	}
	return v2
}

func Min(v1, v2 float64) float64 {
	if v1 < v2 {
		return v1
	}
	return v2
}

func MinInt(v1, v2 int32) int32 {
	if v1 < v2 {
		return v1
	}
	return v2
}

// SmoothStep clamps amount to [0, 1] and runs a Hermite with flat tangents.
func SmoothStep(v1, v2, amount float64) float64 {
	return Hermite(v1, 0, v2, 0, Clamp(amount, 0, 1))
}

func ToDegrees(radians float64) float64 {
	return radians * 57.295779513082320876798154814105
}

func ToRadians(degrees float64) float64 {
	return degrees * 0.017453292519943295769236907684886
}

// WrapAngle reduces angle to (-Pi, Pi].
func WrapAngle(angle float64) float64 {
	if angle > -Pi && angle <= Pi {
		return angle
	}

	angle = math.Mod(angle, TwoPi)
	if angle <= -Pi {
		return angle + TwoPi
	}
	if angle > Pi {
		return angle - TwoPi
	}
	return angle
}

func IsPowerOfTwo(v int32) bool {
	return v > 0 && v&(v-1) == 0
}

// Sign returns -1, 0 or 1.
func Sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	if v > 0 {
		return 1
	}
	return 0
}
