package gee

import (
	"image"

	"golang.org/x/image/math/fixed"
)

// Conversions to and from the stdlib image types and the fixed point
// coordinates used by the x/image font machinery.

// ToImagePoint converts the point to an image.Point, truncating float
// components towards zero.
func (p point[S]) ToImagePoint() image.Point {
	return image.Pt(int(p.X), int(p.Y))
}

// ToImagePoint converts the vector to an image.Point, truncating float
// components towards zero.
func (v vector[S]) ToImagePoint() image.Point {
	return image.Pt(int(v.X), int(v.Y))
}

// ToImageRectangle converts the rect to an image.Rectangle, truncating
// float components towards zero.
func (r rect[S]) ToImageRectangle() image.Rectangle {
	return image.Rect(int(r.Left), int(r.Top), int(r.Right), int(r.Bottom))
}

// PointFromImage converts an image.Point.
func PointFromImage[S Scalar](p image.Point) point[S] {
	return point[S]{X: S(p.X), Y: S(p.Y)}
}

// RectFromImage converts an image.Rectangle.
func RectFromImage[S Scalar](r image.Rectangle) rect[S] {
	return rect[S]{
		Top:    S(r.Min.Y),
		Right:  S(r.Max.X),
		Bottom: S(r.Max.Y),
		Left:   S(r.Min.X),
	}
}

// PointFromFixed converts a fixed point 26.6 coordinate.
func PointFromFixed[F Float](p fixed.Point26_6) point[F] {
	return point[F]{X: F(p.X) / 64, Y: F(p.Y) / 64}
}

// ToFixed converts the point to a fixed point 26.6 coordinate.
func (p point[S]) ToFixed() fixed.Point26_6 {
	return fixed.Point26_6{
		X: fixed.Int26_6(p.X * 64),
		Y: fixed.Int26_6(p.Y * 64),
	}
}
