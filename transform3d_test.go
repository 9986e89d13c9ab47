package gee

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func requireTransform3dInDelta(t *testing.T, expected, actual Transform3d64, delta float64) {
	t.Helper()

	for i, pair := range [][2]float64{
		{expected.M11, actual.M11}, {expected.M12, actual.M12},
		{expected.M13, actual.M13}, {expected.M14, actual.M14},
		{expected.M21, actual.M21}, {expected.M22, actual.M22},
		{expected.M23, actual.M23}, {expected.M24, actual.M24},
		{expected.M31, actual.M31}, {expected.M32, actual.M32},
		{expected.M33, actual.M33}, {expected.M34, actual.M34},
		{expected.M41, actual.M41}, {expected.M42, actual.M42},
		{expected.M43, actual.M43}, {expected.M44, actual.M44},
	} {
		require.InDelta(t, pair[0], pair[1], delta, "element %d", i)
	}
}

func TestTransform3d_Identity(t *testing.T) {
	id := IdentityTransform3d[float64]()

	require.True(t, id.IsIdentity())
	require.True(t, id.IsAffine())

	p := PointOf(3.0, -4.0)
	require.Equal(t, p, id.TransformPoint(p))
}

func TestTransform3d_ScaleTranslate(t *testing.T) {
	tr := Scale3d(2.0, 3.0, 4.0)
	require.Equal(t, PointOf(2.0, 6.0), tr.TransformPoint(PointOf(1.0, 2.0)))

	tr = Translation3d(10.0, 20.0, 30.0)
	require.Equal(t, PointOf(11.0, 22.0), tr.TransformPoint(PointOf(1.0, 2.0)))

	// the z translation is invisible to a 2d point
	require.Equal(t, PointOf(1.0, 2.0), Translation3d(0.0, 0.0, 5.0).TransformPoint(PointOf(1.0, 2.0)))
}

func TestTransform3d_RotationZMatches2d(t *testing.T) {
	theta := Degrees(73.0)

	expected := RotationTransform(theta, Point64{})
	actual := RotationZ3d(theta)

	for _, p := range []Point64{
		PointOf(1.0, 0.0),
		PointOf(1.0, 1.0),
		PointOf(-2.5, 3.5),
	} {
		e := expected.TransformPoint(p)
		a := actual.TransformPoint(p)
		require.InDelta(t, e.X, a.X, 1e-9)
		require.InDelta(t, e.Y, a.Y, 1e-9)
	}
}

func TestTransform3d_RotationXY(t *testing.T) {
	t.Run("x rotation leaves x alone", func(t *testing.T) {
		p := RotationX3d(Degrees(90.0)).TransformPoint(PointOf(1.0, 1.0))
		require.InDelta(t, 1.0, p.X, 1e-9)
		// y rotates into z, which is dropped
		require.InDelta(t, 0.0, p.Y, 1e-9)
	})

	t.Run("y rotation leaves y alone", func(t *testing.T) {
		p := RotationY3d(Degrees(90.0)).TransformPoint(PointOf(1.0, 1.0))
		require.InDelta(t, 0.0, p.X, 1e-9)
		require.InDelta(t, 1.0, p.Y, 1e-9)
	})
}

func TestAxisAngleRotation3d(t *testing.T) {
	theta := Degrees(42.0)

	t.Run("z axis matches RotationZ3d", func(t *testing.T) {
		requireTransform3dInDelta(t, RotationZ3d(theta), AxisAngleRotation3d(0.0, 0.0, 1.0, theta), 1e-9)
	})

	t.Run("axis is normalized", func(t *testing.T) {
		requireTransform3dInDelta(t,
			AxisAngleRotation3d(0.0, 0.0, 1.0, theta),
			AxisAngleRotation3d(0.0, 0.0, 7.5, theta), 1e-9)
	})

	t.Run("zero axis is the identity", func(t *testing.T) {
		require.True(t, AxisAngleRotation3d(0.0, 0.0, 0.0, theta).IsIdentity())
	})
}

func TestTransform3dFrom2d(t *testing.T) {
	tr := ScaleTransform(2.0, 3.0).
		PostRotate(Degrees(31.0), PointOf(1.0, -1.0)).
		PostTranslate(VectorOf(5.0, 7.0))

	embedded := Transform3dFrom2d(tr)
	require.True(t, embedded.IsAffine())

	for _, p := range []Point64{
		PointOf(0.0, 0.0),
		PointOf(1.0, 2.0),
		PointOf(-3.5, 4.5),
	} {
		e := tr.TransformPoint(p)
		a := embedded.TransformPoint(p)
		require.InDelta(t, e.X, a.X, 1e-9)
		require.InDelta(t, e.Y, a.Y, 1e-9)
	}

	// embedding respects composition
	other := TranslationTransform(1.0, 2.0)
	requireTransform3dInDelta(t,
		Transform3dFrom2d(tr.PostMul(other)),
		Transform3dFrom2d(tr).PostMul(Transform3dFrom2d(other)), 1e-9)
}

func TestTransform3d_Mul(t *testing.T) {
	a := Scale3d(2.0, 3.0, 4.0).PostMul(RotationX3d(Degrees(30.0)))
	b := Translation3d(5.0, -7.0, 2.0).PostMul(RotationY3d(Degrees(45.0)))

	requireTransform3dInDelta(t, a.PostMul(b), b.PreMul(a), 1e-12)

	t.Run("identity is neutral", func(t *testing.T) {
		id := IdentityTransform3d[float64]()
		requireTransform3dInDelta(t, a, a.PostMul(id), 1e-12)
		requireTransform3dInDelta(t, a, id.PostMul(a), 1e-12)
	})
}

func TestTransform3d_TransformRect(t *testing.T) {
	r := RectOf(0.0, 2.0, 1.0, 0.0)

	q := RotationZ3d(Degrees(90.0)).TransformRect(r)

	require.InDelta(t, 0.0, q.A.X, 1e-9)
	require.InDelta(t, 0.0, q.A.Y, 1e-9)
	require.InDelta(t, 0.0, q.B.X, 1e-9)
	require.InDelta(t, -2.0, q.B.Y, 1e-9)

	bounds := q.Aabb()
	require.InDelta(t, -2.0, bounds.Top, 1e-9)
	require.InDelta(t, 1.0, bounds.Right, 1e-9)
}

func TestTransform3d_Projections(t *testing.T) {
	t.Run("ortho maps the rect onto the unit box", func(t *testing.T) {
		r := RectOf(0.0, 800.0, 600.0, 0.0)
		tr := OrthoRect3d(r)

		topLeft := tr.TransformPoint(r.TopLeft())
		require.InDelta(t, -1.0, topLeft.X, 1e-9)
		require.InDelta(t, -1.0, topLeft.Y, 1e-9)

		bottomRight := tr.TransformPoint(r.BottomRight())
		require.InDelta(t, 1.0, bottomRight.X, 1e-9)
		require.InDelta(t, 1.0, bottomRight.Y, 1e-9)

		center := tr.TransformPoint(r.Center())
		require.InDelta(t, 0.0, center.X, 1e-9)
		require.InDelta(t, 0.0, center.Y, 1e-9)
	})

	t.Run("persp", func(t *testing.T) {
		tr := Persp3d(SizeOf(800.0, 600.0), Degrees(90.0), 0.1, 100.0)

		require.InDelta(t, 1.0, tr.M22, 1e-9)
		require.InDelta(t, 600.0/800.0, tr.M11, 1e-9)
		require.EqualValues(t, -1, tr.M34)
		require.False(t, tr.IsAffine())
	})
}

func TestTransform3d_Inverse(t *testing.T) {
	tr := Scale3d(2.0, 3.0, 4.0).
		PostMul(RotationX3d(Degrees(25.0))).
		PostMul(RotationY3d(Degrees(-40.0))).
		PostMul(Translation3d(1.0, 2.0, 3.0))

	t.Run("round trip", func(t *testing.T) {
		id := IdentityTransform3d[float64]()
		requireTransform3dInDelta(t, id, tr.PostMul(tr.Inverse()), 1e-9)
		requireTransform3dInDelta(t, id, tr.Inverse().PostMul(tr), 1e-9)
	})

	t.Run("determinant", func(t *testing.T) {
		require.InDelta(t, 24.0, tr.Determinant(), 1e-9)
		require.InDelta(t, 1.0/24.0, tr.Inverse().Determinant(), 1e-9)
	})

	t.Run("singular", func(t *testing.T) {
		singular := Scale3d(0.0, 1.0, 1.0)

		_, ok := singular.TryInverse()
		require.False(t, ok)
		require.Panics(t, func() { singular.Inverse() })
	})
}
