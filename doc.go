// Package gee provides 2d and 3d geometry primitives.
//
// It includes the usual 2d value types Point, Vector, Size, Rect,
// Circle, Ellipse, LineSegment, Ray and Angle, a 2d affine transform
// named Transform and a 4x4 matrix type named Transform3d.
//
// All types are generic over their element type. The exported names
// (Point, Vector, Transform, ...) are aliases for the float32
// instantiations, with Point64, Vector64, ... for float64 and
// PointType[T], VectorType[T], ... to write code that is itself generic.
//
// Everything is an immutable value: methods never mutate the receiver,
// they return a new value instead. Rect uses a top-left origin with the
// y axis growing downwards.
package gee
