package gee

import "fmt"

type Transform3d32 = transform3d[float32]
type Transform3d64 = transform3d[float64]

// Transform3d is the default 3d transform type, holding float32
// elements.
type Transform3d = Transform3d32

// Transform3dType is the generic 3d transform type.
type Transform3dType[F Float] = transform3d[F]

// transform3d is a 4x4 matrix in row major order. Points transform as
// row vectors, so the translation lives in the fourth row (M41..M43)
// and the perspective terms in the fourth column (M14..M44).
//
// 2d points and vectors are transformed by embedding them with z=0 and
// w=1 and truncating the result.
type transform3d[F Float] struct {
	M11, M12, M13, M14 F
	M21, M22, M23, M24 F
	M31, M32, M33, M34 F
	M41, M42, M43, M44 F
}

// Transform3dRowMajor returns the transform with the given elements.
func Transform3dRowMajor[F Float](
	m11, m12, m13, m14 F,
	m21, m22, m23, m24 F,
	m31, m32, m33, m34 F,
	m41, m42, m43, m44 F,
) transform3d[F] {
	return transform3d[F]{
		M11: m11, M12: m12, M13: m13, M14: m14,
		M21: m21, M22: m22, M23: m23, M24: m24,
		M31: m31, M32: m32, M33: m33, M34: m34,
		M41: m41, M42: m42, M43: m43, M44: m44,
	}
}

// IdentityTransform3d returns the identity transformation.
func IdentityTransform3d[F Float]() transform3d[F] {
	return transform3d[F]{M11: 1, M22: 1, M33: 1, M44: 1}
}

// Scale3d returns the transform scaling by x, y and z.
func Scale3d[F Float](x, y, z F) transform3d[F] {
	return transform3d[F]{M11: x, M22: y, M33: z, M44: 1}
}

// Translation3d returns the transform translating by (x, y, z).
func Translation3d[F Float](x, y, z F) transform3d[F] {
	return transform3d[F]{M11: 1, M22: 1, M33: 1, M41: x, M42: y, M43: z, M44: 1}
}

// RotationX3d returns the rotation around the x axis.
func RotationX3d[F Float](theta angle[F]) transform3d[F] {
	sin, cos := theta.SinCos()
	out := IdentityTransform3d[F]()
	out.M22, out.M23 = cos, -sin
	out.M32, out.M33 = sin, cos
	return out
}

// RotationY3d returns the rotation around the y axis.
func RotationY3d[F Float](theta angle[F]) transform3d[F] {
	sin, cos := theta.SinCos()
	out := IdentityTransform3d[F]()
	out.M11, out.M13 = cos, sin
	out.M31, out.M33 = -sin, cos
	return out
}

// RotationZ3d returns the rotation around the z axis. It matches the 2d
// RotationTransform around the origin.
func RotationZ3d[F Float](theta angle[F]) transform3d[F] {
	sin, cos := theta.SinCos()
	out := IdentityTransform3d[F]()
	out.M11, out.M12 = cos, -sin
	out.M21, out.M22 = sin, cos
	return out
}

// AxisAngleRotation3d returns the rotation by theta around the given
// axis. The axis does not need to be normalized; a zero axis yields the
// identity.
func AxisAngleRotation3d[F Float](axisX, axisY, axisZ F, theta angle[F]) transform3d[F] {
	length := sqrt(axisX*axisX + axisY*axisY + axisZ*axisZ)
	if length == 0 {
		return IdentityTransform3d[F]()
	}

	x, y, z := axisX/length, axisY/length, axisZ/length
	sin, cos := theta.SinCos()
	k := 1 - cos

	return transform3d[F]{
		M11: cos + x*x*k, M12: x*y*k - z*sin, M13: x*z*k + y*sin,
		M21: y*x*k + z*sin, M22: cos + y*y*k, M23: y*z*k - x*sin,
		M31: z*x*k - y*sin, M32: z*y*k + x*sin, M33: cos + z*z*k,
		M44: 1,
	}
}

// Shear3d returns the shear transform with the given factors. xy shears
// y into x, xz shears z into x and yz shears z into y.
func Shear3d[F Float](xy, xz, yz F) transform3d[F] {
	out := IdentityTransform3d[F]()
	out.M21 = xy
	out.M31 = xz
	out.M32 = yz
	return out
}

// Ortho3d returns an orthographic projection matrix with all of those
// standard arguments you can never remember.
func Ortho3d[F Float](left, right, bottom, top, near, far F) transform3d[F] {
	return Scale3d(2/(right-left), 2/(bottom-top), -2/(far-near)).
		PostMul(Translation3d(
			-(right+left)/(right-left),
			-(bottom+top)/(bottom-top),
			-(far+near)/(far-near),
		))
}

// OrthoRect3d returns an orthographic projection matrix with the
// defaults you almost always want.
func OrthoRect3d[F Float](r rect[F]) transform3d[F] {
	return Ortho3d(r.Left, r.Right, r.Bottom, r.Top, 1, -1)
}

// Persp3d returns a perspective projection matrix for the given viewport
// size, vertical field of view and clipping planes.
func Persp3d[F Float](sz size[F], fov angle[F], near, far F) transform3d[F] {
	f := 1 / tan(fov.radians/2)
	depth := near - far

	return transform3d[F]{
		M11: f / sz.AspectRatio(),
		M22: f,
		M33: far / depth, M34: -1,
		M43: near * far / depth,
	}
}

// Transform3dFrom2d embeds the 2d affine transform into 3d, leaving the
// z axis untouched.
func Transform3dFrom2d[F Float](t transform[F]) transform3d[F] {
	out := IdentityTransform3d[F]()
	out.M11, out.M12 = t.M11, t.M12
	out.M21, out.M22 = t.M21, t.M22
	out.M41, out.M42 = t.M31, t.M32
	return out
}

// PostMul returns the composition of the two transforms. The resulting
// transform maps a point by first applying t and then other.
func (t transform3d[F]) PostMul(o transform3d[F]) transform3d[F] {
	return transform3d[F]{
		M11: t.M11*o.M11 + t.M12*o.M21 + t.M13*o.M31 + t.M14*o.M41,
		M12: t.M11*o.M12 + t.M12*o.M22 + t.M13*o.M32 + t.M14*o.M42,
		M13: t.M11*o.M13 + t.M12*o.M23 + t.M13*o.M33 + t.M14*o.M43,
		M14: t.M11*o.M14 + t.M12*o.M24 + t.M13*o.M34 + t.M14*o.M44,

		M21: t.M21*o.M11 + t.M22*o.M21 + t.M23*o.M31 + t.M24*o.M41,
		M22: t.M21*o.M12 + t.M22*o.M22 + t.M23*o.M32 + t.M24*o.M42,
		M23: t.M21*o.M13 + t.M22*o.M23 + t.M23*o.M33 + t.M24*o.M43,
		M24: t.M21*o.M14 + t.M22*o.M24 + t.M23*o.M34 + t.M24*o.M44,

		M31: t.M31*o.M11 + t.M32*o.M21 + t.M33*o.M31 + t.M34*o.M41,
		M32: t.M31*o.M12 + t.M32*o.M22 + t.M33*o.M32 + t.M34*o.M42,
		M33: t.M31*o.M13 + t.M32*o.M23 + t.M33*o.M33 + t.M34*o.M43,
		M34: t.M31*o.M14 + t.M32*o.M24 + t.M33*o.M34 + t.M34*o.M44,

		M41: t.M41*o.M11 + t.M42*o.M21 + t.M43*o.M31 + t.M44*o.M41,
		M42: t.M41*o.M12 + t.M42*o.M22 + t.M43*o.M32 + t.M44*o.M42,
		M43: t.M41*o.M13 + t.M42*o.M23 + t.M43*o.M33 + t.M44*o.M43,
		M44: t.M41*o.M14 + t.M42*o.M24 + t.M43*o.M34 + t.M44*o.M44,
	}
}

// PreMul returns the composition of the two transforms. The resulting
// transform maps a point by first applying other and then t.
func (t transform3d[F]) PreMul(other transform3d[F]) transform3d[F] {
	return other.PostMul(t)
}

// TransformPoint applies the transform to the given 2d point by
// embedding it with z=0 and w=1. The z and w components of the result
// are dropped without a perspective divide.
func (t transform3d[F]) TransformPoint(p point[F]) point[F] {
	return point[F]{
		X: p.X*t.M11 + p.Y*t.M21 + t.M41,
		Y: p.X*t.M12 + p.Y*t.M22 + t.M42,
	}
}

// TransformVector applies the transform to the given vector. The
// translation row does not apply to vectors.
func (t transform3d[F]) TransformVector(v vector[F]) vector[F] {
	return vector[F]{
		X: v.X*t.M11 + v.Y*t.M21,
		Y: v.X*t.M12 + v.Y*t.M22,
	}
}

// TransformRect returns the quad of the four transformed corners of r.
// The result is a quad since a 3d transform need not keep the rect axis
// aligned.
func (t transform3d[F]) TransformRect(r rect[F]) quad[F] {
	return quad[F]{
		A: t.TransformPoint(r.TopLeft()),
		B: t.TransformPoint(r.TopRight()),
		C: t.TransformPoint(r.BottomRight()),
		D: t.TransformPoint(r.BottomLeft()),
	}
}

// IsAffine reports whether the transform has no perspective terms.
func (t transform3d[F]) IsAffine() bool {
	return t.M14 == 0 && t.M24 == 0 && t.M34 == 0 && t.M44 == 1
}

func (t transform3d[F]) IsIdentity() bool {
	return t == IdentityTransform3d[F]()
}

// Map applies f to all sixteen elements and returns the resulting
// transform.
func (t transform3d[F]) Map(f func(F) F) transform3d[F] {
	return transform3d[F]{
		M11: f(t.M11), M12: f(t.M12), M13: f(t.M13), M14: f(t.M14),
		M21: f(t.M21), M22: f(t.M22), M23: f(t.M23), M24: f(t.M24),
		M31: f(t.M31), M32: f(t.M32), M33: f(t.M33), M34: f(t.M34),
		M41: f(t.M41), M42: f(t.M42), M43: f(t.M43), M44: f(t.M44),
	}
}

// Determinant returns the determinant of the full 4x4 matrix.
func (t transform3d[F]) Determinant() F {
	b00 := t.M11*t.M22 - t.M12*t.M21
	b01 := t.M11*t.M23 - t.M13*t.M21
	b02 := t.M11*t.M24 - t.M14*t.M21
	b03 := t.M12*t.M23 - t.M13*t.M22
	b04 := t.M12*t.M24 - t.M14*t.M22
	b05 := t.M13*t.M24 - t.M14*t.M23
	b06 := t.M31*t.M42 - t.M32*t.M41
	b07 := t.M31*t.M43 - t.M33*t.M41
	b08 := t.M31*t.M44 - t.M34*t.M41
	b09 := t.M32*t.M43 - t.M33*t.M42
	b10 := t.M32*t.M44 - t.M34*t.M42
	b11 := t.M33*t.M44 - t.M34*t.M43

	return b00*b11 - b01*b10 + b02*b09 + b03*b08 - b04*b07 + b05*b06
}

// Inverse returns the inverse of the transform. This method panics if
// the transform is singular. Use TryInverse where singular inputs are
// expected.
func (t transform3d[F]) Inverse() transform3d[F] {
	inverse, ok := t.TryInverse()
	if !ok {
		panic("transform3d is not invertible")
	}
	return inverse
}

// TryInverse returns the inverse of the transform if possible. A
// transform whose determinant is zero has no inverse.
func (t transform3d[F]) TryInverse() (inverse transform3d[F], ok bool) {
	b00 := t.M11*t.M22 - t.M12*t.M21
	b01 := t.M11*t.M23 - t.M13*t.M21
	b02 := t.M11*t.M24 - t.M14*t.M21
	b03 := t.M12*t.M23 - t.M13*t.M22
	b04 := t.M12*t.M24 - t.M14*t.M22
	b05 := t.M13*t.M24 - t.M14*t.M23
	b06 := t.M31*t.M42 - t.M32*t.M41
	b07 := t.M31*t.M43 - t.M33*t.M41
	b08 := t.M31*t.M44 - t.M34*t.M41
	b09 := t.M32*t.M43 - t.M33*t.M42
	b10 := t.M32*t.M44 - t.M34*t.M42
	b11 := t.M33*t.M44 - t.M34*t.M43

	det := b00*b11 - b01*b10 + b02*b09 + b03*b08 - b04*b07 + b05*b06
	if det == 0 {
		return transform3d[F]{}, false
	}

	f := 1 / det
	return transform3d[F]{
		M11: f * (t.M22*b11 - t.M23*b10 + t.M24*b09),
		M12: f * (t.M13*b10 - t.M12*b11 - t.M14*b09),
		M13: f * (t.M42*b05 - t.M43*b04 + t.M44*b03),
		M14: f * (t.M33*b04 - t.M32*b05 - t.M34*b03),

		M21: f * (t.M23*b08 - t.M21*b11 - t.M24*b07),
		M22: f * (t.M11*b11 - t.M13*b08 + t.M14*b07),
		M23: f * (t.M43*b02 - t.M41*b05 - t.M44*b01),
		M24: f * (t.M31*b05 - t.M33*b02 + t.M34*b01),

		M31: f * (t.M21*b10 - t.M22*b08 + t.M24*b06),
		M32: f * (t.M12*b08 - t.M11*b10 - t.M14*b06),
		M33: f * (t.M41*b04 - t.M42*b02 + t.M44*b00),
		M34: f * (t.M32*b02 - t.M31*b04 - t.M34*b00),

		M41: f * (t.M22*b07 - t.M21*b09 - t.M23*b06),
		M42: f * (t.M11*b09 - t.M12*b07 + t.M13*b06),
		M43: f * (t.M42*b01 - t.M41*b03 - t.M43*b00),
		M44: f * (t.M31*b03 - t.M32*b01 + t.M33*b00),
	}, true
}

func (t transform3d[F]) String() string {
	return fmt.Sprintf("transform3d(%v, %v, %v, %v; %v, %v, %v, %v; %v, %v, %v, %v; %v, %v, %v, %v)",
		t.M11, t.M12, t.M13, t.M14,
		t.M21, t.M22, t.M23, t.M24,
		t.M31, t.M32, t.M33, t.M34,
		t.M41, t.M42, t.M43, t.M44)
}

// CastTransform3d converts the element type of t to U.
func CastTransform3d[U, F Float](t transform3d[F]) transform3d[U] {
	return transform3d[U]{
		M11: U(t.M11), M12: U(t.M12), M13: U(t.M13), M14: U(t.M14),
		M21: U(t.M21), M22: U(t.M22), M23: U(t.M23), M24: U(t.M24),
		M31: U(t.M31), M32: U(t.M32), M33: U(t.M33), M34: U(t.M34),
		M41: U(t.M41), M42: U(t.M42), M43: U(t.M43), M44: U(t.M44),
	}
}
