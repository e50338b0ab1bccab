package quickmath_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	quickmath "xnamath.theprimeagen.com/pkg/quick-math"
)

type Vector2 = quickmath.Vector2
type Vector3 = quickmath.Vector3
type Vector4 = quickmath.Vector4
type Quaternion = quickmath.Quaternion
type Matrix = quickmath.Matrix
type Point = quickmath.Point
type Rectangle = quickmath.Rectangle
type AABB = quickmath.AABB

var Vec2 = quickmath.NewVector2
var Vec3 = quickmath.NewVector3
var Vec4 = quickmath.NewVector4
var Quat = quickmath.NewQuaternion

const delta = 1e-9

func requireVector2Near(t *testing.T, expected, actual Vector2, msg ...any) {
	t.Helper()
	require.InDelta(t, expected.X, actual.X, delta, msg...)
	require.InDelta(t, expected.Y, actual.Y, delta, msg...)
}

func requireVector3Near(t *testing.T, expected, actual Vector3, msg ...any) {
	t.Helper()
	require.InDelta(t, expected.X, actual.X, delta, msg...)
	require.InDelta(t, expected.Y, actual.Y, delta, msg...)
	require.InDelta(t, expected.Z, actual.Z, delta, msg...)
}

func requireQuaternionNear(t *testing.T, expected, actual Quaternion, msg ...any) {
	t.Helper()
	require.InDelta(t, expected.X, actual.X, delta, msg...)
	require.InDelta(t, expected.Y, actual.Y, delta, msg...)
	require.InDelta(t, expected.Z, actual.Z, delta, msg...)
	require.InDelta(t, expected.W, actual.W, delta, msg...)
}

// randomUnitQuaternion is good enough for tests, it is not uniform on the sphere.
func randomUnitQuaternion(r *rand.Rand) Quaternion {
	return Quat(r.Float64()*2-1, r.Float64()*2-1, r.Float64()*2-1, r.Float64()*2-1).Normalize()
}

func randomVector3(r *rand.Rand) Vector3 {
	return Vec3(r.Float64()*200-100, r.Float64()*200-100, r.Float64()*200-100)
}
