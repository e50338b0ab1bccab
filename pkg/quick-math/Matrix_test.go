package quickmath_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	quickmath "xnamath.theprimeagen.com/pkg/quick-math"
)

func TestMatrixMul(t *testing.T) {
	m := Matrix{
		M11: 1, M12: 2, M13: 3, M14: 4,
		M21: 5, M22: 6, M23: 7, M24: 8,
		M31: 9, M32: 10, M33: 11, M34: 12,
		M41: 13, M42: 14, M43: 15, M44: 16,
	}

	require.Equal(t, m, m.Mul(quickmath.MatrixIdentity))
	require.Equal(t, m, quickmath.MatrixIdentity.Mul(m))

	sq := m.Mul(m)
	require.Equal(t, 90.0, sq.M11)
	require.Equal(t, 100.0, sq.M12)
	require.Equal(t, 110.0, sq.M13)
	require.Equal(t, 120.0, sq.M14)
	require.Equal(t, 426.0, sq.M41)
	require.Equal(t, 600.0, sq.M44)
}

func TestMatrixComposition(t *testing.T) {
	r := rand.New(rand.NewSource(21))
	for range 50 {
		a := quickmath.MatrixFromQuaternion(randomUnitQuaternion(r))
		b := quickmath.MatrixTranslation(r.Float64(), r.Float64(), r.Float64())
		v := randomVector3(r)

		// v * (a * b) == (v * a) * b
		requireVector3Near(t, v.Transform(a).Transform(b), v.Transform(a.Mul(b)))
	}

	m := quickmath.MatrixTranslation(1, 2, 3).Mul(quickmath.MatrixTranslation(10, 20, 30))
	require.Equal(t, Vec3(11, 22, 33), m.Translation())
}

func TestMatrixRotations(t *testing.T) {
	requireVector3Near(t, quickmath.Vector3UnitZ, quickmath.Vector3UnitY.Transform(quickmath.MatrixRotationX(math.Pi/2)))
	requireVector3Near(t, Vec3(0, 0, -1), quickmath.Vector3UnitX.Transform(quickmath.MatrixRotationY(math.Pi/2)))
	requireVector3Near(t, quickmath.Vector3UnitY, quickmath.Vector3UnitX.Transform(quickmath.MatrixRotationZ(math.Pi/2)))

	require.Equal(t, quickmath.MatrixIdentity, quickmath.MatrixRotationX(0))
	require.Equal(t, quickmath.MatrixIdentity, quickmath.MatrixFromQuaternion(quickmath.QuaternionIdentity))
	require.Equal(t, quickmath.MatrixIdentity, quickmath.MatrixScale(1, 1, 1))
}

func TestMatrixFromQuaternionMatchesAxisRotations(t *testing.T) {
	for _, angle := range []float64{-2, -0.5, 0.25, 1, 3} {
		pairs := []struct {
			axis Vector3
			m    Matrix
		}{
			{quickmath.Vector3UnitX, quickmath.MatrixRotationX(angle)},
			{quickmath.Vector3UnitY, quickmath.MatrixRotationY(angle)},
			{quickmath.Vector3UnitZ, quickmath.MatrixRotationZ(angle)},
		}
		for _, p := range pairs {
			got := quickmath.MatrixFromQuaternion(quickmath.QuaternionFromAxisAngle(p.axis, angle))
			a := got.F64()
			b := p.m.F64()
			for i := range a {
				require.InDelta(t, b[i], a[i], delta, "axis=%v angle=%v element %d", p.axis, angle, i)
			}
		}
	}
}

func TestMatrixEquals(t *testing.T) {
	a := quickmath.MatrixTranslation(1, 2, 3)
	b := quickmath.MatrixTranslation(1, 2, 3)
	require.True(t, a.Equals(b))
	b.M44 = 2
	require.False(t, a.Equals(b))
}
