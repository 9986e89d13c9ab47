package gee

type Decomposition32 = decomposition[float32]
type Decomposition64 = decomposition[float64]

// Decomposition is the default decomposition type, holding float32
// elements.
type Decomposition = Decomposition32

// DecompositionType is the generic decomposition type.
type DecompositionType[F Float] = decomposition[F]

// decomposition describes an affine transform as a fixed-order chain of
// primitive transforms. Applied to a point, the order is scale first,
// then skew along the x axis, then rotation, then translation:
//
//	t = ScaleTransform(Scale.X, Scale.Y).
//		PostMul(SkewTransform(Skew, 0)).
//		PostMul(RotationTransform(Rotation, origin)).
//		PostMul(TranslationTransform(Translation.X, Translation.Y))
//
// Decomposing a transform is ambiguous in general; this canonical order
// makes it unique up to the sign of the scale.
type decomposition[F Float] struct {
	Translation vector[F]
	Rotation    angle[F]
	Skew        angle[F]
	Scale       vector[F]
}

// Decompose extracts translation, rotation, skew and scale from the
// transform so that d.Transform() reproduces t up to floating point
// rounding. A singular transform has no decomposition in the canonical
// form, in which case ok is false.
func (t transform[F]) Decompose() (d decomposition[F], ok bool) {
	det := t.Determinant()
	if det == 0 {
		return decomposition[F]{}, false
	}

	// QR-style extraction: the first basis row pins scale.x and the
	// rotation, the determinant pins scale.y, the rest is skew.
	sx := hypot(t.M11, t.M12)
	sy := det / sx

	rotation := atan2(-t.M12, t.M11)
	skew := atan((t.M11*t.M21 + t.M12*t.M22) / det)

	return decomposition[F]{
		Translation: vector[F]{X: t.M31, Y: t.M32},
		Rotation:    angle[F]{radians: rotation},
		Skew:        angle[F]{radians: skew},
		Scale:       vector[F]{X: sx, Y: sy},
	}, true
}

// Transform recomposes the decomposition into a single transform,
// applying scale, skew, rotation and translation in the documented
// canonical order.
func (d decomposition[F]) Transform() transform[F] {
	return ScaleTransform(d.Scale.X, d.Scale.Y).
		PostMul(SkewTransform(d.Skew, angle[F]{})).
		PostMul(RotationTransform(d.Rotation, point[F]{})).
		PostMul(TranslationTransform(d.Translation.X, d.Translation.Y))
}
