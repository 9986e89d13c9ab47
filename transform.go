package gee

import "fmt"

type Transform32 = transform[float32]
type Transform64 = transform[float64]

// Transform is the default transform type, holding float32 elements.
type Transform = Transform32

// TransformType is the generic transform type.
type TransformType[F Float] = transform[F]

// transform is a 2d affine transformation, stored as a 3x2 matrix in
// row major order:
//
//	| M11 M12 |
//	| M21 M22 |
//	| M31 M32 |
//
// Points transform as row vectors:
//
//	x' = x*M11 + y*M21 + M31
//	y' = x*M12 + y*M22 + M32
//
// The upper 2x2 part describes rotation, scale and skew, the last row
// the translation.
type transform[F Float] struct {
	M11, M12 F
	M21, M22 F
	M31, M32 F
}

// TransformRowMajor returns the transform with the given elements.
func TransformRowMajor[F Float](m11, m12, m21, m22, m31, m32 F) transform[F] {
	return transform[F]{
		M11: m11, M12: m12,
		M21: m21, M22: m22,
		M31: m31, M32: m32,
	}
}

// IdentityTransform returns the identity transformation.
func IdentityTransform[F Float]() transform[F] {
	return transform[F]{M11: 1, M22: 1}
}

// ScaleTransform returns the transform scaling by x and y.
func ScaleTransform[F Float](x, y F) transform[F] {
	return transform[F]{M11: x, M22: y}
}

// TranslationTransform returns the transform translating by (x, y).
func TranslationTransform[F Float](x, y F) transform[F] {
	return transform[F]{M11: 1, M22: 1, M31: x, M32: y}
}

// RotationTransform returns the transform rotating by the given angle
// around the center point. Passing the zero point rotates around the
// origin.
//
// In the y-down coordinate system a positive angle maps (1, 1) to
// (1, -1) at a quarter turn.
func RotationTransform[F Float](theta angle[F], center point[F]) transform[F] {
	sin, cos := theta.SinCos()

	// p' = (p - c)·R + c, folded into the translation row
	return transform[F]{
		M11: cos, M12: -sin,
		M21: sin, M22: cos,
		M31: center.X - (center.X*cos + center.Y*sin),
		M32: center.Y - (center.Y*cos - center.X*sin),
	}
}

// SkewTransform returns the transform shearing by the angle ax along the
// x axis and ay along the y axis:
//
//	x' = x + y*tan(ax)
//	y' = y + x*tan(ay)
func SkewTransform[F Float](ax, ay angle[F]) transform[F] {
	return transform[F]{
		M11: 1, M12: tan(ay.radians),
		M21: tan(ax.radians), M22: 1,
	}
}

// PostMul returns the composition of the two transforms. The resulting
// transform maps a point by first applying t and then other.
func (t transform[F]) PostMul(other transform[F]) transform[F] {
	return transform[F]{
		M11: t.M11*other.M11 + t.M12*other.M21,
		M12: t.M11*other.M12 + t.M12*other.M22,
		M21: t.M21*other.M11 + t.M22*other.M21,
		M22: t.M21*other.M12 + t.M22*other.M22,
		M31: t.M31*other.M11 + t.M32*other.M21 + other.M31,
		M32: t.M31*other.M12 + t.M32*other.M22 + other.M32,
	}
}

// PreMul returns the composition of the two transforms. The resulting
// transform maps a point by first applying other and then t.
func (t transform[F]) PreMul(other transform[F]) transform[F] {
	return other.PostMul(t)
}

// PostTranslate composes a translation after the transform.
func (t transform[F]) PostTranslate(offset vector[F]) transform[F] {
	return t.PostMul(TranslationTransform(offset.X, offset.Y))
}

// PreTranslate composes a translation before the transform.
func (t transform[F]) PreTranslate(offset vector[F]) transform[F] {
	return t.PreMul(TranslationTransform(offset.X, offset.Y))
}

// PostScale composes a scale after the transform.
func (t transform[F]) PostScale(x, y F) transform[F] {
	return t.PostMul(ScaleTransform(x, y))
}

// PreScale composes a scale before the transform.
func (t transform[F]) PreScale(x, y F) transform[F] {
	return t.PreMul(ScaleTransform(x, y))
}

// PostRotate composes a rotation around center after the transform.
func (t transform[F]) PostRotate(theta angle[F], center point[F]) transform[F] {
	return t.PostMul(RotationTransform(theta, center))
}

// PreRotate composes a rotation around center before the transform.
func (t transform[F]) PreRotate(theta angle[F], center point[F]) transform[F] {
	return t.PreMul(RotationTransform(theta, center))
}

// TransformPoint applies the transform to the given point.
func (t transform[F]) TransformPoint(p point[F]) point[F] {
	return point[F]{
		X: p.X*t.M11 + p.Y*t.M21 + t.M31,
		Y: p.X*t.M12 + p.Y*t.M22 + t.M32,
	}
}

// TransformVector applies the transform to the given vector. Unlike a
// point, a vector is only rotated, scaled and skewed, the translation
// does not apply.
func (t transform[F]) TransformVector(v vector[F]) vector[F] {
	return vector[F]{
		X: v.X*t.M11 + v.Y*t.M21,
		Y: v.X*t.M12 + v.Y*t.M22,
	}
}

// TransformRect returns the bounding rect of the four transformed
// corners of r.
func (t transform[F]) TransformRect(r rect[F]) rect[F] {
	return t.TransformQuad(quad[F]{
		A: r.TopLeft(),
		B: r.TopRight(),
		C: r.BottomRight(),
		D: r.BottomLeft(),
	}).Aabb()
}

// TransformQuad applies the transform to all four corners of q.
func (t transform[F]) TransformQuad(q quad[F]) quad[F] {
	return quad[F]{
		A: t.TransformPoint(q.A),
		B: t.TransformPoint(q.B),
		C: t.TransformPoint(q.C),
		D: t.TransformPoint(q.D),
	}
}

// Determinant returns the determinant of the linear 2x2 part.
func (t transform[F]) Determinant() F {
	return t.M11*t.M22 - t.M12*t.M21
}

func (t transform[F]) IsIdentity() bool {
	return t == IdentityTransform[F]()
}

// IsTranslation reports whether the transform only translates.
func (t transform[F]) IsTranslation() bool {
	return t.M11 == 1 && t.M12 == 0 && t.M21 == 0 && t.M22 == 1
}

// Inverse returns the inverse of the transform. This method panics if
// the transform is singular. Use TryInverse where singular inputs are
// expected.
func (t transform[F]) Inverse() transform[F] {
	inverse, ok := t.TryInverse()
	if !ok {
		panic("transform is not invertible")
	}
	return inverse
}

// TryInverse returns the inverse of the transform if possible. A
// transform whose determinant is zero has no inverse.
func (t transform[F]) TryInverse() (inverse transform[F], ok bool) {
	det := t.Determinant()
	if det == 0 {
		return transform[F]{}, false
	}

	f := 1 / det
	return transform[F]{
		M11: f * t.M22,
		M12: f * -t.M12,
		M21: f * -t.M21,
		M22: f * t.M11,
		M31: f * (t.M21*t.M32 - t.M22*t.M31),
		M32: f * (t.M31*t.M12 - t.M11*t.M32),
	}, true
}

func (t transform[F]) String() string {
	return fmt.Sprintf("transform(%v, %v, %v, %v, %v, %v)",
		t.M11, t.M12, t.M21, t.M22, t.M31, t.M32)
}

// CastTransform converts the element type of t to U.
func CastTransform[U, F Float](t transform[F]) transform[U] {
	return transform[U]{
		M11: U(t.M11), M12: U(t.M12),
		M21: U(t.M21), M22: U(t.M22),
		M31: U(t.M31), M32: U(t.M32),
	}
}
