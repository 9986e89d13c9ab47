package interop

import (
	"testing"

	cp "github.com/jakecoffman/cp/v2"
	"github.com/oliverbestmann/gee"
	"github.com/stretchr/testify/require"
)

func TestGeoM(t *testing.T) {
	tr := gee.ScaleTransform(2.0, 3.0).
		PostRotate(gee.Degrees(35.0), gee.PointOf(1.0, -2.0)).
		PostTranslate(gee.VectorOf(10.0, -5.0))

	g := GeoM(tr)

	t.Run("applies like the transform", func(t *testing.T) {
		for _, p := range []gee.Point64{
			gee.PointOf(0.0, 0.0),
			gee.PointOf(1.0, 2.0),
			gee.PointOf(-3.5, 4.5),
		} {
			expected := tr.TransformPoint(p)

			x, y := g.Apply(p.X, p.Y)
			require.InDelta(t, expected.X, x, 1e-9)
			require.InDelta(t, expected.Y, y, 1e-9)
		}
	})

	t.Run("round trip", func(t *testing.T) {
		back := TransformOfGeoM(g)

		require.InDelta(t, tr.M11, back.M11, 1e-12)
		require.InDelta(t, tr.M12, back.M12, 1e-12)
		require.InDelta(t, tr.M21, back.M21, 1e-12)
		require.InDelta(t, tr.M22, back.M22, 1e-12)
		require.InDelta(t, tr.M31, back.M31, 1e-12)
		require.InDelta(t, tr.M32, back.M32, 1e-12)
	})
}

func TestCPVec(t *testing.T) {
	v := gee.VectorOf(1.5, -2.5)
	require.Equal(t, cp.Vector{X: 1.5, Y: -2.5}, CPVecOf(v))
	require.Equal(t, v, VecOfCP(CPVecOf(v)))

	p := gee.PointOf(3.0, 4.0)
	require.Equal(t, cp.Vector{X: 3, Y: 4}, CPVecOfPoint(p))
	require.Equal(t, p, PointOfCP(CPVecOfPoint(p)))
}
