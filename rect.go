package gee

import (
	"fmt"

	"github.com/oliverbestmann/gee/internal/assert"
)

type Rect32 = rect[float32]
type Rect64 = rect[float64]

// Rect is the default rect type, holding float32 elements.
type Rect = Rect32

// RectType is the generic rect type.
type RectType[S Scalar] = rect[S]

// RectOf returns the rect with the given edges. The edges are normalized
// so that top <= bottom and left <= right.
func RectOf[S Scalar](top, right, bottom, left S) rect[S] {
	return rect[S]{
		Top:    min(top, bottom),
		Right:  max(left, right),
		Bottom: max(top, bottom),
		Left:   min(left, right),
	}
}

// RectWithPoints returns the smallest rect containing both points.
func RectWithPoints[S Scalar](a, b point[S]) rect[S] {
	return RectOf(a.Y, b.X, b.Y, a.X)
}

// RectWithOriginAndSize returns the rect with the given top left corner
// and size.
func RectWithOriginAndSize[S Scalar](origin point[S], sz size[S]) rect[S] {
	return rect[S]{
		Top:    origin.Y,
		Right:  origin.X + sz.Width,
		Bottom: origin.Y + sz.Height,
		Left:   origin.X,
	}
}

// RectWithCenterAndSize returns the rect with the given center and size.
func RectWithCenterAndSize[S Scalar](center point[S], sz size[S]) rect[S] {
	return rect[S]{
		Top:    center.Y - sz.Height/2,
		Right:  center.X + sz.Width/2,
		Bottom: center.Y + sz.Height/2,
		Left:   center.X - sz.Width/2,
	}
}

// RectFromPoints returns the bounding rect of the given points. The
// zero rect is returned for an empty slice.
func RectFromPoints[S Scalar](points ...point[S]) rect[S] {
	if len(points) == 0 {
		return rect[S]{}
	}

	r := rect[S]{
		Top:    points[0].Y,
		Right:  points[0].X,
		Bottom: points[0].Y,
		Left:   points[0].X,
	}

	for _, p := range points[1:] {
		r.Top = min(r.Top, p.Y)
		r.Right = max(r.Right, p.X)
		r.Bottom = max(r.Bottom, p.Y)
		r.Left = min(r.Left, p.X)
	}

	return r
}

// rect is an axis aligned rectangle described by its four edges. The
// coordinate system has its origin in the top left corner with the y
// axis growing downwards, so top <= bottom for any normalized rect.
type rect[S Scalar] struct {
	Top, Right, Bottom, Left S
}

func (r rect[S]) Width() S {
	return r.Right - r.Left
}

func (r rect[S]) Height() S {
	return r.Bottom - r.Top
}

func (r rect[S]) Size() size[S] {
	return size[S]{Width: r.Width(), Height: r.Height()}
}

func (r rect[S]) Area() S {
	return r.Width() * r.Height()
}

// HasArea reports whether the rect covers a non-empty region. A rect
// with zero width or height has no area.
func (r rect[S]) HasArea() bool {
	return r.Right > r.Left && r.Bottom > r.Top
}

func (r rect[S]) Center() point[S] {
	return point[S]{X: (r.Left + r.Right) / 2, Y: (r.Top + r.Bottom) / 2}
}

func (r rect[S]) TopLeft() point[S] {
	return point[S]{X: r.Left, Y: r.Top}
}

func (r rect[S]) TopRight() point[S] {
	return point[S]{X: r.Right, Y: r.Top}
}

func (r rect[S]) BottomLeft() point[S] {
	return point[S]{X: r.Left, Y: r.Bottom}
}

func (r rect[S]) BottomRight() point[S] {
	return point[S]{X: r.Right, Y: r.Bottom}
}

func (r rect[S]) Translate(offset vector[S]) rect[S] {
	r.Top += offset.Y
	r.Right += offset.X
	r.Bottom += offset.Y
	r.Left += offset.X
	return r
}

func (r rect[S]) ContainsPoint(p point[S]) bool {
	return r.Left <= p.X && p.X <= r.Right &&
		r.Top <= p.Y && p.Y <= r.Bottom
}

func (r rect[S]) ContainsRect(other rect[S]) bool {
	return r.Left <= other.Left && other.Right <= r.Right &&
		r.Top <= other.Top && other.Bottom <= r.Bottom
}

// Intersection returns the overlap of the two rects. If the rects do not
// overlap in a region with area, the zero rect is returned.
func (r rect[S]) Intersection(other rect[S]) rect[S] {
	out := rect[S]{
		Top:    max(r.Top, other.Top),
		Right:  min(r.Right, other.Right),
		Bottom: min(r.Bottom, other.Bottom),
		Left:   max(r.Left, other.Left),
	}

	if !out.HasArea() {
		return rect[S]{}
	}

	return out
}

// Intersects reports whether the overlap of the two rects has area.
func (r rect[S]) Intersects(other rect[S]) bool {
	return r.Intersection(other).HasArea()
}

// Union returns the smallest rect containing both rects.
func (r rect[S]) Union(other rect[S]) rect[S] {
	return rect[S]{
		Top:    min(r.Top, other.Top),
		Right:  max(r.Right, other.Right),
		Bottom: max(r.Bottom, other.Bottom),
		Left:   min(r.Left, other.Left),
	}
}

// SplitAtRatioWidth splits the rect along a vertical line at the given
// fraction of its width. The two rects share the split edge, leaving no
// gap or overlap, and together cover the original area. It panics if the
// ratio is outside of [0, 1].
func (r rect[S]) SplitAtRatioWidth(ratio S) (left, right rect[S]) {
	assert.InUnitInterval(ratio, "ratio")

	x := r.Left + r.Width()*ratio

	left = r
	left.Right = x

	right = r
	right.Left = x

	return left, right
}

// SplitAtRatioHeight splits the rect along a horizontal line at the
// given fraction of its height. It panics if the ratio is outside of
// [0, 1].
func (r rect[S]) SplitAtRatioHeight(ratio S) (top, bottom rect[S]) {
	assert.InUnitInterval(ratio, "ratio")

	y := r.Top + r.Height()*ratio

	top = r
	top.Bottom = y

	bottom = r
	bottom.Top = y

	return top, bottom
}

// Inset returns the rect shrunk by the given amount on all four edges.
// A negative amount grows the rect. Insetting by more than half of a
// dimension collapses the rect onto its center line.
func (r rect[S]) Inset(amount S) rect[S] {
	c := r.Center()
	return rect[S]{
		Top:    min(r.Top+amount, c.Y),
		Right:  max(r.Right-amount, c.X),
		Bottom: max(r.Bottom-amount, c.Y),
		Left:   min(r.Left+amount, c.X),
	}
}

// Lerp interpolates all four edges towards the other rect.
func (r rect[S]) Lerp(other rect[S], f S) rect[S] {
	return rect[S]{
		Top:    r.Top + (other.Top-r.Top)*f,
		Right:  r.Right + (other.Right-r.Right)*f,
		Bottom: r.Bottom + (other.Bottom-r.Bottom)*f,
		Left:   r.Left + (other.Left-r.Left)*f,
	}
}

// Map applies f to all four edges and returns the resulting rect.
func (r rect[S]) Map(f func(S) S) rect[S] {
	return rect[S]{
		Top:    f(r.Top),
		Right:  f(r.Right),
		Bottom: f(r.Bottom),
		Left:   f(r.Left),
	}
}

func (r rect[S]) String() string {
	return fmt.Sprintf("rect(t=%v, r=%v, b=%v, l=%v)", r.Top, r.Right, r.Bottom, r.Left)
}

// CastRect converts the element type of r to U using Go's native numeric
// conversion.
func CastRect[U, S Scalar](r rect[S]) rect[U] {
	return rect[U]{
		Top:    U(r.Top),
		Right:  U(r.Right),
		Bottom: U(r.Bottom),
		Left:   U(r.Left),
	}
}

// RoundRect rounds all four edges to the nearest integer value.
func RoundRect[F Float](r rect[F]) rect[F] {
	return r.Map(round[F])
}
