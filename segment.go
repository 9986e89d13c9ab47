package gee

import "fmt"

type LineSegment32 = lineSegment[float32]
type LineSegment64 = lineSegment[float64]

// LineSegment is the default line segment type, holding float32
// elements.
type LineSegment = LineSegment32

// LineSegmentType is the generic line segment type.
type LineSegmentType[F Float] = lineSegment[F]

// LineSegmentOf returns the segment between the two points.
func LineSegmentOf[F Float](from, to point[F]) lineSegment[F] {
	return lineSegment[F]{From: from, To: to}
}

// lineSegment is a straight line of finite length between two points.
type lineSegment[F Float] struct {
	From, To point[F]
}

// Vector returns the displacement from From to To.
func (s lineSegment[F]) Vector() vector[F] {
	return s.To.Sub(s.From)
}

func (s lineSegment[F]) Length() F {
	return s.Vector().Length()
}

func (s lineSegment[F]) Midpoint() point[F] {
	return s.From.Lerp(s.To, 0.5)
}

func (s lineSegment[F]) Translate(offset vector[F]) lineSegment[F] {
	s.From = s.From.Add(offset)
	s.To = s.To.Add(offset)
	return s
}

// Ray returns the ray starting at From and pointing through To.
func (s lineSegment[F]) Ray() ray[F] {
	return ray[F]{Origin: s.From, Direction: DirectionOf(s.Vector())}
}

func (s lineSegment[F]) String() string {
	return fmt.Sprintf("segment(from=%s, to=%s)", s.From, s.To)
}

// CastLineSegment converts the element type of s to U.
func CastLineSegment[U, F Float](s lineSegment[F]) lineSegment[U] {
	return lineSegment[U]{From: CastPoint[U](s.From), To: CastPoint[U](s.To)}
}
