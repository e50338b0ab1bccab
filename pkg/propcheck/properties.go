package propcheck

import (
	"math"
	"math/rand"

	quickmath "xnamath.theprimeagen.com/pkg/quick-math"
)

// property checks one sample. It returns the observed error (0 for exact
// properties) and whether the sample passed.
type property struct {
	name  string
	check func(r *rand.Rand, tolerance float64) (float64, bool)
}

func randomScalar(r *rand.Rand) float64 {
	return r.Float64()*2000 - 1000
}

func randomVector2(r *rand.Rand) quickmath.Vector2 {
	return quickmath.NewVector2(randomScalar(r), randomScalar(r))
}

func randomVector3(r *rand.Rand) quickmath.Vector3 {
	return quickmath.NewVector3(randomScalar(r), randomScalar(r), randomScalar(r))
}

func randomVector4(r *rand.Rand) quickmath.Vector4 {
	return quickmath.NewVector4(randomScalar(r), randomScalar(r), randomScalar(r), randomScalar(r))
}

func randomUnitQuaternion(r *rand.Rand) quickmath.Quaternion {
	for {
		q := quickmath.NewQuaternion(r.NormFloat64(), r.NormFloat64(), r.NormFloat64(), r.NormFloat64())
		if q.LengthSquared() > 1e-6 {
			return q.Normalize()
		}
	}
}

// randomAffine is a rotation, scale and translation, the usual world matrix.
func randomAffine(r *rand.Rand) quickmath.Matrix {
	rot := quickmath.MatrixFromQuaternion(randomUnitQuaternion(r))
	scale := quickmath.MatrixScale(r.Float64()*4+0.1, r.Float64()*4+0.1, r.Float64()*4+0.1)
	move := quickmath.MatrixTranslation(randomScalar(r), randomScalar(r), randomScalar(r))
	return scale.Mul(rot).Mul(move)
}

// exact properties report an error of 1 on failure
func exact(ok bool) (float64, bool) {
	if ok {
		return 0, true
	}
	return 1, false
}

func within(err, tolerance float64) (float64, bool) {
	return err, err <= tolerance
}

var properties = []property{
	{
		name: "identity transform is exact",
		check: func(r *rand.Rand, _ float64) (float64, bool) {
			v2, v3, v4 := randomVector2(r), randomVector3(r), randomVector4(r)
			id := quickmath.MatrixIdentity
			return exact(v2.Transform(id) == v2 &&
				v3.Transform(id) == v3 &&
				v3.TransformNormal(id) == v3 &&
				v4.Transform(id) == v4 &&
				v3.TransformQuaternion(quickmath.QuaternionIdentity) == v3)
		},
	},
	{
		name: "unit quaternion rotation preserves length",
		check: func(r *rand.Rand, tolerance float64) (float64, bool) {
			v := randomVector3(r)
			q := randomUnitQuaternion(r)
			length := v.Length()
			return within(math.Abs(v.TransformQuaternion(q).Length()-length)/length, tolerance)
		},
	},
	{
		name: "quaternion rotation matches its matrix",
		check: func(r *rand.Rand, tolerance float64) (float64, bool) {
			v := randomVector3(r)
			q := randomUnitQuaternion(r)
			expected := v.Transform(quickmath.MatrixFromQuaternion(q))
			return within(expected.Distance(v.TransformQuaternion(q))/v.Length(), tolerance)
		},
	},
	{
		name: "lerp end points",
		check: func(r *rand.Rand, _ float64) (float64, bool) {
			a, b := randomScalar(r), randomScalar(r)
			va, vb := randomVector3(r), randomVector3(r)
			return exact(quickmath.LerpPrecise(a, b, 0) == a &&
				quickmath.LerpPrecise(a, b, 1) == b &&
				quickmath.Lerp(a, b, 0) == a &&
				va.LerpPrecise(vb, 0) == va &&
				va.LerpPrecise(vb, 1) == vb &&
				va.Lerp(vb, 0) == va)
		},
	},
	{
		name: "hermite end points",
		check: func(r *rand.Rand, _ float64) (float64, bool) {
			v1, t1, v2, t2 := randomScalar(r), randomScalar(r), randomScalar(r), randomScalar(r)
			return exact(quickmath.Hermite(v1, t1, v2, t2, 0) == v1 &&
				quickmath.Hermite(v1, t1, v2, t2, 1) == v2)
		},
	},
	{
		name: "slerp stays on the unit sphere",
		check: func(r *rand.Rand, tolerance float64) (float64, bool) {
			a, b := randomUnitQuaternion(r), randomUnitQuaternion(r)
			// the linear fallback leaves the sphere by up to ~2.5e-7
			tol := math.Max(tolerance, 1e-6)
			return within(math.Abs(a.SLerp(b, r.Float64()).Length()-1), tol)
		},
	},
	{
		name: "aliased batch equals disjoint batch",
		check: func(r *rand.Rand, _ float64) (float64, bool) {
			m := randomAffine(r)
			src := []quickmath.Vector3{randomVector3(r), randomVector3(r), randomVector3(r), randomVector3(r)}
			disjoint := make([]quickmath.Vector3, len(src))
			if quickmath.TransformVector3Slice(src, m, disjoint) != nil {
				return exact(false)
			}
			if quickmath.TransformVector3Slice(src, m, src) != nil {
				return exact(false)
			}
			for i := range src {
				if src[i] != disjoint[i] {
					return exact(false)
				}
			}
			return exact(true)
		},
	},
	{
		name: "divide by zero yields zero",
		check: func(r *rand.Rand, _ float64) (float64, bool) {
			v := randomVector2(r)
			d := quickmath.NewVector2(0, randomScalar(r))
			got := v.Div(d)
			return exact(got.X == 0 && got.Y == v.Y/d.Y && v.DivScalar(0) == quickmath.Vector2Zero)
		},
	},
	{
		name: "clamp applies max last",
		check: func(r *rand.Rand, _ float64) (float64, bool) {
			v, lo, hi := randomScalar(r), randomScalar(r), randomScalar(r)
			got := quickmath.Clamp(v, lo, hi)
			if lo <= hi {
				return exact(got >= lo && got <= hi)
			}
			return exact(got == hi)
		},
	},
	{
		name: "axis angle rotation",
		check: func(r *rand.Rand, tolerance float64) (float64, bool) {
			angle := r.Float64()*4*math.Pi - 2*math.Pi
			q := quickmath.QuaternionFromAxisAngle(quickmath.Vector3UnitY, angle)
			m := quickmath.MatrixRotationY(angle)
			v := quickmath.Vector3UnitX
			return within(v.TransformQuaternion(q).Distance(v.Transform(m)), tolerance)
		},
	},
}
