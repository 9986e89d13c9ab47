package gee

import "fmt"

type Vector3d32 = vector3d[float32]
type Vector3d64 = vector3d[float64]

// Vector3d is the default 3d vector type, holding float32 elements.
type Vector3d = Vector3d32

// Vector3dType is the generic 3d vector type.
type Vector3dType[S Scalar] = vector3d[S]

// Vector3dOf returns the vector (x, y, z).
func Vector3dOf[S Scalar](x, y, z S) vector3d[S] {
	return vector3d[S]{X: x, Y: y, Z: z}
}

// vector3d is a displacement in 3d space.
type vector3d[S Scalar] struct {
	X, Y, Z S
}

func (v vector3d[S]) Add(other vector3d[S]) vector3d[S] {
	v.X += other.X
	v.Y += other.Y
	v.Z += other.Z
	return v
}

func (v vector3d[S]) Sub(other vector3d[S]) vector3d[S] {
	v.X -= other.X
	v.Y -= other.Y
	v.Z -= other.Z
	return v
}

func (v vector3d[S]) Neg() vector3d[S] {
	v.X = -v.X
	v.Y = -v.Y
	v.Z = -v.Z
	return v
}

func (v vector3d[S]) Mul(scalar S) vector3d[S] {
	v.X *= scalar
	v.Y *= scalar
	v.Z *= scalar
	return v
}

func (v vector3d[S]) Div(scalar S) vector3d[S] {
	v.X /= scalar
	v.Y /= scalar
	v.Z /= scalar
	return v
}

func (v vector3d[S]) Dot(other vector3d[S]) S {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

func (v vector3d[S]) Cross(other vector3d[S]) vector3d[S] {
	return vector3d[S]{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

func (v vector3d[S]) Length() S {
	return sqrt(v.LengthSq())
}

func (v vector3d[S]) LengthSq() S {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

func (v vector3d[S]) Normalized() vector3d[S] {
	return v.Div(v.Length())
}

// Truncate drops the z component.
func (v vector3d[S]) Truncate() vector[S] {
	return vector[S]{X: v.X, Y: v.Y}
}

func (v vector3d[S]) String() string {
	return fmt.Sprintf("vector3d(x=%v, y=%v, z=%v)", v.X, v.Y, v.Z)
}

// CastVector3d converts the element type of v to U using Go's native
// numeric conversion.
func CastVector3d[U, S Scalar](v vector3d[S]) vector3d[U] {
	return vector3d[U]{X: U(v.X), Y: U(v.Y), Z: U(v.Z)}
}
