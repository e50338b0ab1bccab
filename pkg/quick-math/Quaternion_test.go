package quickmath_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	quickmath "xnamath.theprimeagen.com/pkg/quick-math"
)

var (
	qi = Quat(1, 0, 0, 0)
	qj = Quat(0, 1, 0, 0)
	qk = Quat(0, 0, 1, 0)
)

func TestQuaternionHamilton(t *testing.T) {
	require.Equal(t, qk, qi.Mul(qj))
	require.Equal(t, qi, qj.Mul(qk))
	require.Equal(t, qj, qk.Mul(qi))
	require.Equal(t, qk.Negate(), qj.Mul(qi))
	require.Equal(t, Quat(0, 0, 0, -1), qi.Mul(qi))
	require.Equal(t, Quat(0, 0, 0, -1), qi.Mul(qj).Mul(qk))

	r := rand.New(rand.NewSource(11))
	for range 50 {
		q := randomUnitQuaternion(r)
		require.Equal(t, q, q.Mul(quickmath.QuaternionIdentity))
		require.Equal(t, q, quickmath.QuaternionIdentity.Mul(q))
	}
}

func TestQuaternionConcatenate(t *testing.T) {
	r := rand.New(rand.NewSource(12))
	for range 100 {
		a := randomUnitQuaternion(r)
		b := randomUnitQuaternion(r)
		require.Equal(t, b.Mul(a), a.Concatenate(b))
	}

	// rotate around Y then around X
	v := quickmath.Vector3UnitZ
	y := quickmath.QuaternionFromAxisAngle(quickmath.Vector3UnitY, math.Pi/2)
	x := quickmath.QuaternionFromAxisAngle(quickmath.Vector3UnitX, math.Pi/2)
	requireVector3Near(t, v.TransformQuaternion(y).TransformQuaternion(x), v.TransformQuaternion(y.Concatenate(x)))
}

func TestQuaternionYawPitchRoll(t *testing.T) {
	r := rand.New(rand.NewSource(13))
	for range 100 {
		yaw := r.Float64()*4 - 2
		pitch := r.Float64()*4 - 2
		roll := r.Float64()*4 - 2

		expected := quickmath.QuaternionFromAxisAngle(quickmath.Vector3UnitY, yaw).
			Mul(quickmath.QuaternionFromAxisAngle(quickmath.Vector3UnitX, pitch)).
			Mul(quickmath.QuaternionFromAxisAngle(quickmath.Vector3UnitZ, roll))

		requireQuaternionNear(t, expected, quickmath.QuaternionFromYawPitchRoll(yaw, pitch, roll))
	}

	require.Equal(t, quickmath.QuaternionIdentity, quickmath.QuaternionFromYawPitchRoll(0, 0, 0))
}

func TestQuaternionDivide(t *testing.T) {
	r := rand.New(rand.NewSource(14))
	for range 100 {
		a := randomUnitQuaternion(r).Scale(r.Float64()*3 + 0.5)
		b := randomUnitQuaternion(r).Scale(r.Float64()*3 + 0.5)
		require.Equal(t, a.Mul(b.Inverse()), a.Div(b))
		requireQuaternionNear(t, a, a.Div(b).Mul(b))
	}

	requireQuaternionNear(t, quickmath.QuaternionIdentity, qi.Div(qi))
}

func TestQuaternionInverse(t *testing.T) {
	r := rand.New(rand.NewSource(15))
	for range 50 {
		q := randomUnitQuaternion(r)
		requireQuaternionNear(t, quickmath.QuaternionIdentity, q.Mul(q.Inverse()))
		requireQuaternionNear(t, q.Conjugate(), q.Inverse())
	}

	require.Equal(t, Quat(-0.5, 0, 0, 0), Quat(2, 0, 0, 0).Inverse())

	zero := Quat(0, 0, 0, 0).Inverse()
	require.True(t, math.IsNaN(zero.X) && math.IsNaN(zero.W), "inverse is unguarded")
	zero = Quat(0, 0, 0, 0).Normalize()
	require.True(t, math.IsNaN(zero.W), "normalize is unguarded")
}

func TestQuaternionBasics(t *testing.T) {
	q := Quat(1, 2, 3, 4)

	require.Equal(t, Quat(2, 4, 6, 8), q.Add(q))
	require.Equal(t, Quat(0, 0, 0, 0), q.Sub(q))
	require.Equal(t, Quat(2, 4, 6, 8), q.Scale(2))
	require.Equal(t, Quat(-1, -2, -3, 4), q.Conjugate())
	require.Equal(t, Quat(-1, -2, -3, -4), q.Negate())
	require.Equal(t, 30.0, q.Dot(q))
	require.Equal(t, 30.0, q.LengthSquared())
	require.Equal(t, math.Sqrt(30), q.Length())
	require.InDelta(t, 1.0, q.Normalize().Length(), delta)
	require.Equal(t, Vec4(1, 2, 3, 4), q.ToVector4())
	require.Equal(t, q, quickmath.QuaternionFromVector4(q.ToVector4()))
	require.Equal(t, q, quickmath.QuaternionFromVector3(Vec3(1, 2, 3), 4))
	require.Equal(t, "{X:1 Y:2 Z:3 W:4}", q.String())
	require.True(t, q.Equals(Quat(1, 2, 3, 4)))
	require.False(t, q.Equals(q.Conjugate()))

	x, y, z, w := q.Deconstruct()
	require.Equal(t, q, Quat(x, y, z, w))

	c := q
	c.ConjugateInPlace()
	require.Equal(t, q.Conjugate(), c)

	n := q
	n.NormalizeInPlace()
	require.Equal(t, q.Normalize(), n)
}

func TestQuaternionAxisAngle(t *testing.T) {
	q := quickmath.QuaternionFromAxisAngle(quickmath.Vector3UnitZ, math.Pi)
	requireQuaternionNear(t, Quat(0, 0, 1, 0), q)
	require.Equal(t, quickmath.QuaternionIdentity, quickmath.QuaternionFromAxisAngle(quickmath.Vector3UnitX, 0))
}

func TestQuaternionLerp(t *testing.T) {
	r := rand.New(rand.NewSource(16))

	t.Run("result is normalized", func(t *testing.T) {
		for range 100 {
			a := randomUnitQuaternion(r)
			b := randomUnitQuaternion(r)
			require.InDelta(t, 1.0, a.Lerp(b, r.Float64()).Length(), delta)
		}
	})

	t.Run("takes the shorter arc", func(t *testing.T) {
		for range 50 {
			q := randomUnitQuaternion(r)
			requireQuaternionNear(t, q, q.Lerp(q.Negate(), 0.5))
			requireQuaternionNear(t, q, q.Lerp(q.Negate(), 1))
		}
	})

	t.Run("end points", func(t *testing.T) {
		a := quickmath.QuaternionFromAxisAngle(quickmath.Vector3UnitY, 0.3)
		b := quickmath.QuaternionFromAxisAngle(quickmath.Vector3UnitY, 1.1)
		requireQuaternionNear(t, a, a.Lerp(b, 0))
		requireQuaternionNear(t, b, a.Lerp(b, 1))
	})
}

func TestQuaternionSLerp(t *testing.T) {
	r := rand.New(rand.NewSource(17))

	t.Run("end points", func(t *testing.T) {
		for range 100 {
			a := randomUnitQuaternion(r)
			b := randomUnitQuaternion(r)
			if a.Dot(b) < 0 {
				b = b.Negate()
			}
			requireQuaternionNear(t, a, a.SLerp(b, 0))
			requireQuaternionNear(t, b, a.SLerp(b, 1))
		}
	})

	t.Run("stays on the unit sphere", func(t *testing.T) {
		for range 200 {
			a := randomUnitQuaternion(r)
			b := randomUnitQuaternion(r)
			require.InDelta(t, 1.0, a.SLerp(b, r.Float64()).Length(), 1e-9)
		}
	})

	t.Run("halfway angle", func(t *testing.T) {
		a := quickmath.QuaternionIdentity
		b := quickmath.QuaternionFromAxisAngle(quickmath.Vector3UnitZ, math.Pi/2)
		requireQuaternionNear(t, quickmath.QuaternionFromAxisAngle(quickmath.Vector3UnitZ, math.Pi/4), a.SLerp(b, 0.5))
		requireQuaternionNear(t, quickmath.QuaternionFromAxisAngle(quickmath.Vector3UnitZ, math.Pi/8), a.SLerp(b, 0.25))
	})

	t.Run("same input is exact", func(t *testing.T) {
		for range 50 {
			q := randomUnitQuaternion(r)
			require.Equal(t, q, q.SLerp(q, 0.5))
		}
	})

	t.Run("nearly parallel falls back to linear weights", func(t *testing.T) {
		a := quickmath.QuaternionFromAxisAngle(quickmath.Vector3UnitX, 0)
		b := quickmath.QuaternionFromAxisAngle(quickmath.Vector3UnitX, 1e-4)
		out := a.SLerp(b, 0.5)
		require.Equal(t, a.Scale(0.5).Add(b.Scale(0.5)), out)
	})

	t.Run("negative dot takes the shorter arc", func(t *testing.T) {
		a := quickmath.QuaternionFromAxisAngle(quickmath.Vector3UnitZ, 0.2)
		b := quickmath.QuaternionFromAxisAngle(quickmath.Vector3UnitZ, 0.8).Negate()
		requireQuaternionNear(t, quickmath.QuaternionFromAxisAngle(quickmath.Vector3UnitZ, 0.5), a.SLerp(b, 0.5))
	})
}

func TestQuaternionFromRotationMatrix(t *testing.T) {
	t.Run("trace branch", func(t *testing.T) {
		require.Equal(t, quickmath.QuaternionIdentity, quickmath.QuaternionFromRotationMatrix(quickmath.MatrixIdentity))
	})

	t.Run("X branch", func(t *testing.T) {
		q := quickmath.QuaternionFromRotationMatrix(quickmath.MatrixScale(1, -1, -1))
		require.Equal(t, Quat(1, 0, 0, 0), q)
	})

	t.Run("Y branch", func(t *testing.T) {
		q := quickmath.QuaternionFromRotationMatrix(quickmath.MatrixScale(-1, 1, -1))
		require.Equal(t, Quat(0, 1, 0, 0), q)
	})

	t.Run("Z branch", func(t *testing.T) {
		q := quickmath.QuaternionFromRotationMatrix(quickmath.MatrixScale(-1, -1, 1))
		require.Equal(t, Quat(0, 0, 1, 0), q)
	})

	// not a rotation, but it pins the tie break on the first branch
	t.Run("all equal diagonal picks X", func(t *testing.T) {
		q := quickmath.QuaternionFromRotationMatrix(quickmath.MatrixScale(-1, -1, -1))
		require.Equal(t, 0.5*math.Sqrt(2), q.X)
		require.Equal(t, 0.0, q.Y)
		require.Equal(t, 0.0, q.Z)
		require.Equal(t, 0.0, q.W)
	})

	t.Run("round trips through MatrixFromQuaternion", func(t *testing.T) {
		r := rand.New(rand.NewSource(18))
		for range 200 {
			q := randomUnitQuaternion(r)
			back := quickmath.QuaternionFromRotationMatrix(quickmath.MatrixFromQuaternion(q))
			if back.Dot(q) < 0 {
				back = back.Negate()
			}
			requireQuaternionNear(t, q, back, "q=%v", q)
		}
	})

	t.Run("axis rotations", func(t *testing.T) {
		requireQuaternionNear(t,
			quickmath.QuaternionFromAxisAngle(quickmath.Vector3UnitX, 0.7),
			quickmath.QuaternionFromRotationMatrix(quickmath.MatrixRotationX(0.7)))
		requireQuaternionNear(t,
			quickmath.QuaternionFromAxisAngle(quickmath.Vector3UnitY, -2.5),
			quickmath.QuaternionFromRotationMatrix(quickmath.MatrixRotationY(-2.5)).Negate())
		requireQuaternionNear(t,
			quickmath.QuaternionFromAxisAngle(quickmath.Vector3UnitZ, 3),
			quickmath.QuaternionFromRotationMatrix(quickmath.MatrixRotationZ(3)))
	})
}
