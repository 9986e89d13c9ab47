package gee

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEllipse_Contains(t *testing.T) {
	e := EllipseOf(PointOf(0.0, 0.0), SizeOf(2.0, 3.0))

	require.True(t, e.Contains(PointOf(0.0, 0.0)))

	// the axis endpoints lie on the boundary and are contained
	require.True(t, e.Contains(PointOf(2.0, 0.0)))
	require.True(t, e.Contains(PointOf(-2.0, 0.0)))
	require.True(t, e.Contains(PointOf(0.0, 3.0)))

	// the corner of the bounding rect is outside
	require.False(t, e.Contains(PointOf(2.0, 3.0)))
	require.False(t, e.Contains(PointOf(2.1, 0.0)))
}

func TestEllipse_IntegerElements(t *testing.T) {
	e := EllipseOf(PointOf(0, 0), SizeOf(2, 3))

	require.True(t, e.Contains(PointOf(2, 0)))
	require.False(t, e.Contains(PointOf(2, 1)))

	// the area truncates towards zero for integer elements
	require.Equal(t, 18, e.Area())
}

func TestEllipse_BoundingRect(t *testing.T) {
	e := EllipseOf(PointOf(1.0, 2.0), SizeOf(2.0, 3.0))
	require.Equal(t, RectOf(-1.0, 3.0, 5.0, -1.0), e.BoundingRect())
}

func TestEllipseOfCircle(t *testing.T) {
	c := CircleOf(PointOf(1.0, 2.0), 3.0)
	e := EllipseOfCircle(c)

	require.Equal(t, c.BoundingRect(), e.BoundingRect())

	for _, p := range []Point64{
		PointOf(1.0, 2.0),
		PointOf(4.0, 2.0),
		PointOf(3.0, 4.0),
		PointOf(4.0, 5.0),
	} {
		require.Equal(t, c.Contains(p), e.Contains(p))
	}
}

func TestEllipse_Modifiers(t *testing.T) {
	e := EllipseOf(PointOf(1.0, 2.0), SizeOf(2.0, 3.0))

	require.Equal(t, EllipseOf(PointOf(2.0, 4.0), SizeOf(2.0, 3.0)), e.Translate(VectorOf(1.0, 2.0)))
	require.Equal(t, EllipseOf(PointOf(1.0, 2.0), SizeOf(4.0, 3.0)), e.ScaleRadius(VectorOf(2.0, 1.0)))
	require.Equal(t, EllipseOf(PointOf(1.0, 2.0), SizeOf(3.0, 5.0)), e.AddRadius(SizeOf(1.0, 2.0)))
}

func TestArcPoints(t *testing.T) {
	e := EllipseOf(PointOf(1.0, 1.0), SizeOf(2.0, 3.0))

	points := ArcPoints(e, 2, Degrees(0.0), Degrees(180.0))
	require.Len(t, points, 2)

	// the first point lies at the start angle
	require.InDelta(t, 3.0, points[0].X, 1e-6)
	require.InDelta(t, 1.0, points[0].Y, 1e-6)

	// the second one halfway to the end angle
	require.InDelta(t, 1.0, points[1].X, 1e-6)
	require.InDelta(t, 4.0, points[1].Y, 1e-6)

	require.Empty(t, ArcPoints(e, 0, Degrees(0.0), Degrees(180.0)))
}

func TestEllipsePoints(t *testing.T) {
	e := EllipseOfCircle(CircleOf(PointOf(0.0, 0.0), 1.0))

	points := EllipsePoints(e, 4, Degrees(0.0))
	require.Len(t, points, 4)

	expected := []Point64{
		PointOf(1.0, 0.0),
		PointOf(0.0, 1.0),
		PointOf(-1.0, 0.0),
		PointOf(0.0, -1.0),
	}

	for i, p := range points {
		require.InDelta(t, expected[i].X, p.X, 1e-6)
		require.InDelta(t, expected[i].Y, p.Y, 1e-6)
	}
}
