package quickmath_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	quickmath "xnamath.theprimeagen.com/pkg/quick-math"
)

func TestVector2Init(t *testing.T) {
	vec := Vec2(1.0, 2.0)
	require.Equal(t, vec, Vector2{X: 1, Y: 2})
	require.Equal(t, quickmath.Vector2Splat(3), Vec2(3, 3))
	require.Equal(t, quickmath.Vector2One, Vec2(1, 1))
	require.Equal(t, "{X:1 Y:2}", vec.String())

	x, y := vec.Deconstruct()
	require.Equal(t, 1.0, x)
	require.Equal(t, 2.0, y)
}

func TestVector2Operations(t *testing.T) {
	vec := Vec2(1.0, 2.0)
	vecLen := math.Sqrt(1 + 4)
	require.Equal(t, vec.Add(Vec2(68.0, 67.0)), Vec2(69, 69))
	require.Equal(t, vec.Mul(Vec2(3.5, 4.345)), Vec2(3.5, 8.69))
	require.Equal(t, vec.Scale(4), Vec2(4, 8))
	require.Equal(t, vec.Sub(Vec2(4, 3.5)), Vec2(-3.0, -1.5))
	require.Equal(t, vec.Negate(), Vec2(-1, -2))
	require.Equal(t, vec.Length(), vecLen)
	require.Equal(t, Vec2(0, 0).Length(), 0.0)
	require.Equal(t, vec.LengthSquared(), 5.0)
	require.Equal(t, vec.Dot(Vec2(3, -1)), 1.0)
	require.Equal(t, vec.DistanceSquared(Vec2(4, 6)), 25.0)
	require.Equal(t, vec.Distance(Vec2(4, 6)), 5.0)
	require.Equal(t, vec.Normalize(), Vec2(1.0*(1.0/vecLen), 2.0*(1.0/vecLen)))
	require.Equal(t, Vec2(1, -1).Reflect(quickmath.Vector2UnitY), Vec2(1, 1))
	require.Equal(t, Vec2(1, 5).Max(Vec2(3, 2)), Vec2(3, 5))
	require.Equal(t, Vec2(1, 5).Min(Vec2(3, 2)), Vec2(1, 2))
	require.Equal(t, Vec2(-4, 5).Clamp(Vec2(0, 0), Vec2(3, 3)), Vec2(0, 3))
	require.Equal(t, Vec2(1.5, -2.5).Round(), Vec2(2, -3))
	require.Equal(t, Vec2(1.5, -2.5).Floor(), Vec2(1, -3))
	require.Equal(t, Vec2(1.5, -2.5).Ceiling(), Vec2(2, -2))
}

func TestVector2Divide(t *testing.T) {
	require.Equal(t, Vec2(4, 5).Div(Vec2(0, 2)), Vec2(0, 2.5))
	require.Equal(t, Vec2(4, 5).Div(Vec2(2, 0)), Vec2(2, 0))
	require.Equal(t, Vec2(4, 5).DivScalar(0), Vec2(0, 0))
	require.Equal(t, Vec2(4, 5).DivScalar(2), Vec2(2, 2.5))
}

// Divide degrades to zero but Normalize does not guard a zero length vector.
// The asymmetry is part of the contract.
func TestVector2NormalizeZeroIsNaN(t *testing.T) {
	n := quickmath.Vector2Zero.Normalize()
	require.True(t, math.IsNaN(n.X))
	require.True(t, math.IsNaN(n.Y))
}

func TestVector2Interpolation(t *testing.T) {
	a := Vec2(0.1, -3)
	b := Vec2(0.7, 9)

	require.Equal(t, a, a.Lerp(b, 0))
	require.Equal(t, a, a.LerpPrecise(b, 0))
	require.Equal(t, b, a.LerpPrecise(b, 1))
	require.Equal(t, a, a.Hermite(Vec2(1, 1), b, Vec2(-1, 2), 0))
	require.Equal(t, b, a.Hermite(Vec2(1, 1), b, Vec2(-1, 2), 1))
	require.Equal(t, Vec2(5, 5), Vec2(0, 0).SmoothStep(Vec2(10, 10), 0.5))
	require.Equal(t, Vec2(1.5, 1.5), Vec2(0, 0).CatmullRom(Vec2(1, 1), Vec2(2, 2), Vec2(3, 3), 0.5))
	require.Equal(t, Vec2(2, 2), Vec2(1, 1).Barycentric(Vec2(2, 2), Vec2(3, 3), 0.5, 0.25))
}

func TestVector2Transform(t *testing.T) {
	t.Run("identity is exact", func(t *testing.T) {
		v := Vec2(0.1, -123.456)
		require.Equal(t, v, v.Transform(quickmath.MatrixIdentity))
		require.Equal(t, v, v.TransformNormal(quickmath.MatrixIdentity))
		require.Equal(t, v, v.TransformQuaternion(quickmath.QuaternionIdentity))
	})

	t.Run("translation only moves positions", func(t *testing.T) {
		m := quickmath.MatrixTranslation(3, 4, 5)
		require.Equal(t, Vec2(4, 6), Vec2(1, 2).Transform(m))
		require.Equal(t, Vec2(1, 2), Vec2(1, 2).TransformNormal(m))
		require.Equal(t, Vec4(4, 6, 5, 1), Vec2(1, 2).TransformVector4(m))
	})

	t.Run("quaternion around Z", func(t *testing.T) {
		q := quickmath.QuaternionFromAxisAngle(quickmath.Vector3UnitZ, math.Pi/2)
		requireVector2Near(t, quickmath.Vector2UnitY, quickmath.Vector2UnitX.TransformQuaternion(q))
		requireVector2Near(t, Vec2(-1, 0), quickmath.Vector2UnitY.TransformQuaternion(q))

		m := quickmath.MatrixRotationZ(math.Pi / 2)
		requireVector2Near(t, quickmath.Vector2UnitY, quickmath.Vector2UnitX.Transform(m))
	})
}

func TestVector2InPlace(t *testing.T) {
	v := Vec2(1.5, -2.5)
	v.RoundInPlace()
	require.Equal(t, Vec2(1.5, -2.5).Round(), v)

	v = Vec2(1.5, -2.5)
	v.FloorInPlace()
	require.Equal(t, Vec2(1.5, -2.5).Floor(), v)

	v = Vec2(1.5, -2.5)
	v.CeilingInPlace()
	require.Equal(t, Vec2(1.5, -2.5).Ceiling(), v)

	v = Vec2(3, 4)
	v.NormalizeInPlace()
	require.Equal(t, Vec2(3, 4).Normalize(), v)
}

func TestVector2Conversions(t *testing.T) {
	require.Equal(t, Point{X: 1, Y: -1}, Vec2(1.9, -1.9).ToPoint())
	require.Equal(t, Vec3(1, 2, 0), Vec2(1, 2).ToVector3())
	require.True(t, Vec2(1, 2).Equals(Vec2(1, 2)))
	require.False(t, Vec2(1, 2).Equals(Vec2(1, 2.0000001)))
}
