package gee

import "fmt"

type Ray32 = ray[float32]
type Ray64 = ray[float64]

// Ray is the default ray type, holding float32 elements.
type Ray = Ray32

// RayType is the generic ray type.
type RayType[F Float] = ray[F]

// RayOf returns the ray starting at origin and pointing into the given
// direction.
func RayOf[F Float](origin point[F], direction angle[F]) ray[F] {
	return ray[F]{Origin: origin, Direction: direction}
}

// ray is a half line starting at a point and extending infinitely into
// one direction.
type ray[F Float] struct {
	Origin    point[F]
	Direction angle[F]
}

// UnitVector returns the vector of length one pointing into the
// direction of the ray.
func (r ray[F]) UnitVector() vector[F] {
	return r.Direction.UnitVector()
}

// Intersection returns the point where the two rays cross. Parallel rays
// do not intersect, and neither do rays whose lines cross behind either
// origin.
func (r ray[F]) Intersection(other ray[F]) (p point[F], ok bool) {
	d := other.Origin.Sub(r.Origin)
	ru := r.UnitVector()
	ou := other.UnitVector()

	det := ou.X*ru.Y - ou.Y*ru.X
	if det == 0 {
		return point[F]{}, false
	}

	u := (d.Y*ou.X - d.X*ou.Y) / det
	v := (d.Y*ru.X - d.X*ru.Y) / det
	if u < 0 || v < 0 {
		return point[F]{}, false
	}

	return r.Origin.Add(ru.Mul(u)), true
}

// SegmentIntersection returns the point where the ray crosses the
// segment. The crossing must lie between the segment's endpoints.
func (r ray[F]) SegmentIntersection(s lineSegment[F]) (p point[F], ok bool) {
	p, ok = r.Intersection(s.Ray())
	if !ok {
		return point[F]{}, false
	}

	if s.From.DistanceSqTo(p) > s.Vector().LengthSq() {
		return point[F]{}, false
	}

	return p, true
}

func (r ray[F]) Translate(offset vector[F]) ray[F] {
	r.Origin = r.Origin.Add(offset)
	return r
}

func (r ray[F]) String() string {
	return fmt.Sprintf("ray(origin=%s, direction=%s)", r.Origin, r.Direction)
}

// CastRay converts the element type of r to U.
func CastRay[U, F Float](r ray[F]) ray[U] {
	return ray[U]{Origin: CastPoint[U](r.Origin), Direction: CastAngle[U](r.Direction)}
}
