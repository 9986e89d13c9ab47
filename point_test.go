package gee

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPoint_Arithmetic(t *testing.T) {
	p := PointOf(1.0, 2.0)
	v := VectorOf(3.0, -4.0)

	require.Equal(t, PointOf(4.0, -2.0), p.Add(v))
	require.Equal(t, PointOf(-2.0, 6.0), p.SubVec(v))

	// point minus point is the displacement between them
	require.Equal(t, v, p.Add(v).Sub(p))
}

func TestPoint_With(t *testing.T) {
	p := PointOf(1.0, 2.0)
	require.Equal(t, PointOf(9.0, 2.0), p.WithX(9))
	require.Equal(t, PointOf(1.0, 9.0), p.WithY(9))
}

func TestPoint_Distance(t *testing.T) {
	a := PointOf(0.0, 0.0)
	b := PointOf(3.0, 4.0)

	require.EqualValues(t, 5, a.DistanceTo(b))
	require.EqualValues(t, 5, b.DistanceTo(a))
	require.EqualValues(t, 25, a.DistanceSqTo(b))
}

func TestPoint_MoveToBy(t *testing.T) {
	a := PointOf(0.0, 0.0)
	b := PointOf(10.0, 0.0)

	require.Equal(t, PointOf(4.0, 0.0), a.MoveToBy(b, 4))

	// moving by more than the distance overshoots
	require.Equal(t, PointOf(20.0, 0.0), a.MoveToBy(b, 20))
}

func TestPoint_Lerp(t *testing.T) {
	a := PointOf(0.0, 10.0)
	b := PointOf(10.0, 20.0)

	require.Equal(t, a, a.Lerp(b, 0))
	require.Equal(t, b, a.Lerp(b, 1))
	require.Equal(t, PointOf(5.0, 15.0), a.Lerp(b, 0.5))
}

func TestPoint_Rounding(t *testing.T) {
	p := PointOf(1.5, -2.4)

	require.Equal(t, PointOf(2.0, -2.0), RoundPoint(p))
	require.Equal(t, PointOf(1.0, -3.0), FloorPoint(p))
	require.Equal(t, PointOf(2.0, -2.0), CeilPoint(p))
}

func TestCastPoint(t *testing.T) {
	p := PointOf(1.9, -2.9)
	require.Equal(t, PointOf(1, -2), CastPoint[int](p))
}
