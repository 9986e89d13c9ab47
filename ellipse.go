package gee

import (
	"fmt"
	"math"
)

type Ellipse32 = ellipse[float32]
type Ellipse64 = ellipse[float64]

// Ellipse is the default ellipse type, holding float32 elements.
type Ellipse = Ellipse32

// EllipseType is the generic ellipse type.
type EllipseType[S Scalar] = ellipse[S]

// EllipseOf returns the ellipse around center with the given per-axis
// radii.
func EllipseOf[S Scalar](center point[S], radius size[S]) ellipse[S] {
	return ellipse[S]{Center: center, Radius: radius}
}

// EllipseOfCircle returns the ellipse with both radii equal to the
// radius of the circle.
func EllipseOfCircle[S Scalar](c circle[S]) ellipse[S] {
	return ellipse[S]{Center: c.Center, Radius: SquareOf(c.Radius)}
}

// ellipse is an axis aligned ellipse described by its center point and
// one radius per axis. The size invariant keeps both radii non-negative.
type ellipse[S Scalar] struct {
	Center point[S]
	Radius size[S]
}

// Contains reports whether the point lies within the ellipse. Points on
// the boundary are contained. The check cross-multiplies the ellipse
// equation, so it stays exact for integer elements.
func (e ellipse[S]) Contains(p point[S]) bool {
	d := p.Sub(e.Center)
	rx, ry := e.Radius.Width, e.Radius.Height
	return d.X*d.X*ry*ry+d.Y*d.Y*rx*rx <= rx*rx*ry*ry
}

// BoundingRect returns the smallest rect containing the ellipse.
func (e ellipse[S]) BoundingRect() rect[S] {
	return RectWithCenterAndSize(e.Center, e.Radius.Mul(2))
}

// Area returns the area of the ellipse, truncated for integer elements.
func (e ellipse[S]) Area() S {
	return S(math.Pi * float64(e.Radius.Width) * float64(e.Radius.Height))
}

func (e ellipse[S]) Translate(offset vector[S]) ellipse[S] {
	e.Center = e.Center.Add(offset)
	return e
}

// ScaleRadius scales the radii by the components of the given vector.
func (e ellipse[S]) ScaleRadius(scale vector[S]) ellipse[S] {
	e.Radius = e.Radius.Scale(scale)
	return e
}

// AddRadius grows the radii by the given size.
func (e ellipse[S]) AddRadius(by size[S]) ellipse[S] {
	e.Radius = e.Radius.Add(by)
	return e
}

func (e ellipse[S]) String() string {
	return fmt.Sprintf("ellipse(center=%s, radius=%s)", e.Center, e.Radius)
}

// CastEllipse converts the element type of e to U using Go's native
// numeric conversion.
func CastEllipse[U, S Scalar](e ellipse[S]) ellipse[U] {
	return ellipse[U]{Center: CastPoint[U](e.Center), Radius: CastSize[U](e.Radius)}
}

// ArcPoints samples count points on the arc of the ellipse between the
// two angles. The first point lies at start, the last one increment
// short of end, so a full sweep has no duplicated seam point.
func ArcPoints[F Float](e ellipse[F], count int, start, end angle[F]) []point[F] {
	if count <= 0 {
		return nil
	}

	increment := end.Sub(start).Mul(1 / F(count))
	radius := e.Radius.ToVector()

	points := make([]point[F], 0, count)
	for i := range count {
		unit := start.Add(increment.Mul(F(i))).UnitVector()
		points = append(points, e.Center.Add(unit.MulEach(radius)))
	}

	return points
}

// EllipsePoints samples count points along the full ellipse, starting at
// the given angle.
func EllipsePoints[F Float](e ellipse[F], count int, start angle[F]) []point[F] {
	return ArcPoints(e, count, start, start.Add(Radians(2*F(math.Pi))))
}
