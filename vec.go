package gee

import "fmt"

type Vector32 = vector[float32]
type Vector64 = vector[float64]

// Vector is the default vector type, holding float32 elements.
type Vector = Vector32

// VectorType is the generic vector type. Use this alias to write code
// that is generic over the element type.
type VectorType[S Scalar] = vector[S]

// VectorOf returns the vector (x, y).
func VectorOf[S Scalar](x, y S) vector[S] {
	return vector[S]{X: x, Y: y}
}

// vector is a displacement in 2d space. It is distinct from Point: a
// vector describes a direction and magnitude, a point a position.
type vector[S Scalar] struct {
	X, Y S
}

func (v vector[S]) Add(other vector[S]) vector[S] {
	v.X += other.X
	v.Y += other.Y
	return v
}

func (v vector[S]) Sub(other vector[S]) vector[S] {
	v.X -= other.X
	v.Y -= other.Y
	return v
}

func (v vector[S]) Neg() vector[S] {
	v.X = -v.X
	v.Y = -v.Y
	return v
}

func (v vector[S]) Mul(scalar S) vector[S] {
	v.X *= scalar
	v.Y *= scalar
	return v
}

func (v vector[S]) Div(scalar S) vector[S] {
	v.X /= scalar
	v.Y /= scalar
	return v
}

func (v vector[S]) MulEach(other vector[S]) vector[S] {
	v.X *= other.X
	v.Y *= other.Y
	return v
}

func (v vector[S]) DivEach(other vector[S]) vector[S] {
	v.X /= other.X
	v.Y /= other.Y
	return v
}

func (v vector[S]) Dot(other vector[S]) S {
	return v.X*other.X + v.Y*other.Y
}

// Cross returns the z component of the cross product of the two vectors
// extended into 3d space with z=0.
func (v vector[S]) Cross(other vector[S]) S {
	return v.X*other.Y - v.Y*other.X
}

func (v vector[S]) Length() S {
	return sqrt(v.LengthSq())
}

func (v vector[S]) LengthSq() S {
	return v.X*v.X + v.Y*v.Y
}

func (v vector[S]) Normalized() vector[S] {
	length := v.Length()
	v.X /= length
	v.Y /= length
	return v
}

// Perp returns the vector rotated by a quarter turn.
func (v vector[S]) Perp() vector[S] {
	return vector[S]{X: -v.Y, Y: v.X}
}

// Map applies f to both components and returns the resulting vector.
func (v vector[S]) Map(f func(S) S) vector[S] {
	return vector[S]{X: f(v.X), Y: f(v.Y)}
}

func (v vector[S]) Lerp(other vector[S], f S) vector[S] {
	return vector[S]{
		X: v.X + (other.X-v.X)*f,
		Y: v.Y + (other.Y-v.Y)*f,
	}
}

func (v vector[S]) ToPoint() point[S] {
	return point[S]{X: v.X, Y: v.Y}
}

func (v vector[S]) ToSize() size[S] {
	return size[S]{Width: v.X, Height: v.Y}
}

func (v vector[S]) String() string {
	return fmt.Sprintf("vector(x=%v, y=%v)", v.X, v.Y)
}

// CastVector converts the element type of v to U using Go's native
// numeric conversion, truncating towards zero when converting a float
// to an integer type.
func CastVector[U, S Scalar](v vector[S]) vector[U] {
	return vector[U]{X: U(v.X), Y: U(v.Y)}
}

// RoundVector rounds both components to the nearest integer value,
// rounding half away from zero.
func RoundVector[F Float](v vector[F]) vector[F] {
	return v.Map(round[F])
}

func FloorVector[F Float](v vector[F]) vector[F] {
	return v.Map(floor[F])
}

func CeilVector[F Float](v vector[F]) vector[F] {
	return v.Map(ceil[F])
}

// DirectionOf returns the direction of v as an angle, measured from the
// positive x axis.
func DirectionOf[F Float](v vector[F]) angle[F] {
	return angle[F]{radians: atan2(v.Y, v.X)}
}
