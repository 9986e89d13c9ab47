package gee

import (
	"fmt"
	"math"

	"github.com/oliverbestmann/gee/internal/assert"
)

type Circle32 = circle[float32]
type Circle64 = circle[float64]

// Circle is the default circle type, holding float32 elements.
type Circle = Circle32

// CircleType is the generic circle type.
type CircleType[S Scalar] = circle[S]

// CircleOf returns the circle around center with the given radius. It
// panics if the radius is negative. Use TryCircleOf where negative
// inputs are expected.
func CircleOf[S Scalar](center point[S], radius S) circle[S] {
	assert.NotNegative(radius, "radius")
	return circle[S]{Center: center, Radius: radius}
}

// TryCircleOf returns the circle around center if the radius is
// non-negative.
func TryCircleOf[S Scalar](center point[S], radius S) (c circle[S], ok bool) {
	if radius < 0 {
		return circle[S]{}, false
	}
	return circle[S]{Center: center, Radius: radius}, true
}

// circle is a circle described by its center point and radius. The
// radius is never negative.
type circle[S Scalar] struct {
	Center point[S]
	Radius S
}

// Contains reports whether the point lies within the circle. Points on
// the boundary are contained.
func (c circle[S]) Contains(p point[S]) bool {
	return c.Center.DistanceSqTo(p) <= c.Radius*c.Radius
}

// BoundingRect returns the smallest rect containing the circle.
func (c circle[S]) BoundingRect() rect[S] {
	return rect[S]{
		Top:    c.Center.Y - c.Radius,
		Right:  c.Center.X + c.Radius,
		Bottom: c.Center.Y + c.Radius,
		Left:   c.Center.X - c.Radius,
	}
}

// Area returns the area of the circle, truncated for integer elements.
func (c circle[S]) Area() S {
	return S(math.Pi * float64(c.Radius) * float64(c.Radius))
}

// Circumference returns the circumference of the circle, truncated for
// integer elements.
func (c circle[S]) Circumference() S {
	return S(2 * math.Pi * float64(c.Radius))
}

func (c circle[S]) Translate(offset vector[S]) circle[S] {
	c.Center = c.Center.Add(offset)
	return c
}

// Scale scales the radius by the given factor, which must not be
// negative.
func (c circle[S]) Scale(factor S) circle[S] {
	assert.NotNegative(factor, "factor")
	c.Radius *= factor
	return c
}

// Map applies f to the center components and the radius and returns the
// resulting circle. It panics if f turns the radius negative.
func (c circle[S]) Map(f func(S) S) circle[S] {
	radius := f(c.Radius)
	assert.NotNegative(radius, "radius")
	return circle[S]{Center: c.Center.Map(f), Radius: radius}
}

func (c circle[S]) String() string {
	return fmt.Sprintf("circle(center=%s, radius=%v)", c.Center, c.Radius)
}

// CastCircle converts the element type of c to U using Go's native
// numeric conversion.
func CastCircle[U, S Scalar](c circle[S]) circle[U] {
	return circle[U]{Center: CastPoint[U](c.Center), Radius: U(c.Radius)}
}
