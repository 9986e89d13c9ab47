package gee

import "fmt"

type Point32 = point[float32]
type Point64 = point[float64]

// Point is the default point type, holding float32 elements.
type Point = Point32

// PointType is the generic point type.
type PointType[S Scalar] = point[S]

// PointOf returns the point (x, y).
func PointOf[S Scalar](x, y S) point[S] {
	return point[S]{X: x, Y: y}
}

// point is a position in 2d space. The arithmetic keeps points and
// vectors apart: point plus vector is a point, point minus point is a
// vector.
type point[S Scalar] struct {
	X, Y S
}

// Add returns the point moved by the given vector.
func (p point[S]) Add(v vector[S]) point[S] {
	p.X += v.X
	p.Y += v.Y
	return p
}

// Sub returns the displacement from other to p.
func (p point[S]) Sub(other point[S]) vector[S] {
	return vector[S]{X: p.X - other.X, Y: p.Y - other.Y}
}

// SubVec returns the point moved against the given vector.
func (p point[S]) SubVec(v vector[S]) point[S] {
	p.X -= v.X
	p.Y -= v.Y
	return p
}

func (p point[S]) Mul(scalar S) point[S] {
	p.X *= scalar
	p.Y *= scalar
	return p
}

func (p point[S]) Div(scalar S) point[S] {
	p.X /= scalar
	p.Y /= scalar
	return p
}

// WithX returns the point with its x component replaced.
func (p point[S]) WithX(x S) point[S] {
	p.X = x
	return p
}

// WithY returns the point with its y component replaced.
func (p point[S]) WithY(y S) point[S] {
	p.Y = y
	return p
}

// Map applies f to both components and returns the resulting point.
func (p point[S]) Map(f func(S) S) point[S] {
	return point[S]{X: f(p.X), Y: f(p.Y)}
}

func (p point[S]) DistanceTo(other point[S]) S {
	return other.Sub(p).Length()
}

func (p point[S]) DistanceSqTo(other point[S]) S {
	return other.Sub(p).LengthSq()
}

// MoveToBy returns the point moved towards to by the given distance.
// Moving by more than the distance to the target overshoots it.
func (p point[S]) MoveToBy(to point[S], by S) point[S] {
	return p.Add(to.Sub(p).Normalized().Mul(by))
}

func (p point[S]) Lerp(other point[S], f S) point[S] {
	return point[S]{
		X: p.X + (other.X-p.X)*f,
		Y: p.Y + (other.Y-p.Y)*f,
	}
}

func (p point[S]) ToVector() vector[S] {
	return vector[S]{X: p.X, Y: p.Y}
}

func (p point[S]) String() string {
	return fmt.Sprintf("point(x=%v, y=%v)", p.X, p.Y)
}

// CastPoint converts the element type of p to U using Go's native
// numeric conversion.
func CastPoint[U, S Scalar](p point[S]) point[U] {
	return point[U]{X: U(p.X), Y: U(p.Y)}
}

// RoundPoint rounds both components to the nearest integer value.
func RoundPoint[F Float](p point[F]) point[F] {
	return p.Map(round[F])
}

func FloorPoint[F Float](p point[F]) point[F] {
	return p.Map(floor[F])
}

func CeilPoint[F Float](p point[F]) point[F] {
	return p.Map(ceil[F])
}
