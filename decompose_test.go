package gee

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTransform_Decompose(t *testing.T) {
	t.Run("identity", func(t *testing.T) {
		d, ok := IdentityTransform[float64]().Decompose()
		require.True(t, ok)

		require.Equal(t, VectorOf(0.0, 0.0), d.Translation)
		require.EqualValues(t, 0, d.Rotation.Radians())
		require.EqualValues(t, 0, d.Skew.Radians())
		require.Equal(t, VectorOf(1.0, 1.0), d.Scale)
	})

	t.Run("recovers known factors", func(t *testing.T) {
		expected := Decomposition64{
			Translation: VectorOf(5.0, -2.0),
			Rotation:    Radians(0.7),
			Skew:        Radians(0.3),
			Scale:       VectorOf(2.0, 3.0),
		}

		d, ok := expected.Transform().Decompose()
		require.True(t, ok)

		require.InDelta(t, expected.Translation.X, d.Translation.X, 1e-9)
		require.InDelta(t, expected.Translation.Y, d.Translation.Y, 1e-9)
		require.InDelta(t, expected.Rotation.Radians(), d.Rotation.Radians(), 1e-9)
		require.InDelta(t, expected.Skew.Radians(), d.Skew.Radians(), 1e-9)
		require.InDelta(t, expected.Scale.X, d.Scale.X, 1e-9)
		require.InDelta(t, expected.Scale.Y, d.Scale.Y, 1e-9)
	})

	t.Run("pure rotation", func(t *testing.T) {
		d, ok := RotationTransform(Degrees(30.0), Point64{}).Decompose()
		require.True(t, ok)

		require.InDelta(t, Degrees(30.0).Radians(), d.Rotation.Radians(), 1e-9)
		require.InDelta(t, 0.0, d.Skew.Radians(), 1e-9)
		require.InDelta(t, 1.0, d.Scale.X, 1e-9)
		require.InDelta(t, 1.0, d.Scale.Y, 1e-9)
	})

	t.Run("negative determinant flips scale.y", func(t *testing.T) {
		d, ok := ScaleTransform(2.0, -3.0).Decompose()
		require.True(t, ok)

		require.InDelta(t, 2.0, d.Scale.X, 1e-9)
		require.InDelta(t, -3.0, d.Scale.Y, 1e-9)
	})

	t.Run("singular transform has no decomposition", func(t *testing.T) {
		_, ok := ScaleTransform(0.0, 1.0).Decompose()
		require.False(t, ok)
	})
}

func TestTransform_DecomposeRoundTrip(t *testing.T) {
	for range 100 {
		tr := ScaleTransform(RandomIn(0.1, 5.0), RandomIn(0.1, 5.0)).
			PostMul(SkewTransform(Radians(RandomIn(-1.0, 1.0)), Angle64{})).
			PostRotate(RandomAngle[float64](), Point64{}).
			PostTranslate(RandomVec[float64]().Mul(100))

		d, ok := tr.Decompose()
		require.True(t, ok)

		requireTransformInDelta(t, tr, d.Transform(), 1e-6)
	}
}
