package gee

type Decomposition3d32 = decomposition3d[float32]
type Decomposition3d64 = decomposition3d[float64]

// Decomposition3d is the default 3d decomposition type, holding float32
// elements.
type Decomposition3d = Decomposition3d32

// Decomposition3dType is the generic 3d decomposition type.
type Decomposition3dType[F Float] = decomposition3d[F]

// decomposition3d describes an affine 3d transform as a fixed-order
// chain of primitive transforms. Applied to a point, the order is scale
// first, then shear, then the rotations around the x, y and z axes, then
// translation:
//
//	t = Scale3d(Scale.X, Scale.Y, Scale.Z).
//		PostMul(Shear3d(ShearXY, ShearXZ, ShearYZ)).
//		PostMul(RotationX3d(RotationX)).
//		PostMul(RotationY3d(RotationY)).
//		PostMul(RotationZ3d(RotationZ)).
//		PostMul(Translation3d(Translation.X, Translation.Y, Translation.Z))
type decomposition3d[F Float] struct {
	Translation vector3d[F]

	// Euler angles of the rotation, applied around x, then y, then z.
	RotationX, RotationY, RotationZ angle[F]

	// Shear factors: xy shears y into x, xz shears z into x, yz shears
	// z into y.
	ShearXY, ShearXZ, ShearYZ F

	Scale vector3d[F]
}

// cosEps bounds the cosine below which the y rotation counts as a
// straight quarter turn and the x and z rotations collapse into one
// degree of freedom.
const cosEps = 1e-6

// Decompose extracts translation, rotation, shear and scale from the
// transform so that d.Transform3d() reproduces t up to floating point
// rounding.
//
// The extraction works on the rows of the upper 3x3 part: the norm of
// each row pins one scale factor, Gram-Schmidt orthonormalization peels
// off the shear, and what remains is the rotation, reported as Euler
// angles. A transform with perspective terms or a singular linear part
// has no decomposition in the canonical form, in which case ok is false.
func (t transform3d[F]) Decompose() (d decomposition3d[F], ok bool) {
	if !t.IsAffine() {
		return decomposition3d[F]{}, false
	}

	r1 := vector3d[F]{X: t.M11, Y: t.M12, Z: t.M13}
	r2 := vector3d[F]{X: t.M21, Y: t.M22, Z: t.M23}
	r3 := vector3d[F]{X: t.M31, Y: t.M32, Z: t.M33}

	sx := r1.Length()
	if sx == 0 {
		return decomposition3d[F]{}, false
	}
	r1 = r1.Div(sx)

	kxy := r1.Dot(r2)
	r2 = r2.Sub(r1.Mul(kxy))
	sy := r2.Length()
	if sy == 0 {
		return decomposition3d[F]{}, false
	}
	r2 = r2.Div(sy)
	kxy /= sy

	kxz := r1.Dot(r3)
	r3 = r3.Sub(r1.Mul(kxz))
	kyz := r2.Dot(r3)
	r3 = r3.Sub(r2.Mul(kyz))
	sz := r3.Length()
	if sz == 0 {
		return decomposition3d[F]{}, false
	}
	r3 = r3.Div(sz)
	kxz /= sz
	kyz /= sz

	// A left-handed frame means the scale carries a reflection. Flip
	// everything so the remaining rows form a proper rotation.
	if r1.Dot(r2.Cross(r3)) < 0 {
		sx, sy, sz = -sx, -sy, -sz
		r1, r2, r3 = r1.Neg(), r2.Neg(), r3.Neg()
	}

	// The rotation rows are Rx*Ry*Rz, so r1.Z = sin(ry).
	sinY := min(F(1), max(F(-1), r1.Z))
	cosY := sqrt(1 - sinY*sinY)

	var rx, ry, rz F
	ry = asin(sinY)
	if cosY > cosEps {
		rz = atan2(-r1.Y, r1.X)
		rx = atan2(-r2.Z, r3.Z)
	} else {
		// Quarter turn around y: x and z rotations act on the same
		// axis. Put everything into the x rotation.
		rz = 0
		rx = atan2(r2.X, r2.Y)
		if sinY < 0 {
			rx = -rx
		}
	}

	return decomposition3d[F]{
		Translation: vector3d[F]{X: t.M41, Y: t.M42, Z: t.M43},
		RotationX:   angle[F]{radians: rx},
		RotationY:   angle[F]{radians: ry},
		RotationZ:   angle[F]{radians: rz},
		ShearXY:     kxy,
		ShearXZ:     kxz,
		ShearYZ:     kyz,
		Scale:       vector3d[F]{X: sx, Y: sy, Z: sz},
	}, true
}

// Transform3d recomposes the decomposition into a single transform,
// applying scale, shear, rotation and translation in the documented
// canonical order.
func (d decomposition3d[F]) Transform3d() transform3d[F] {
	return Scale3d(d.Scale.X, d.Scale.Y, d.Scale.Z).
		PostMul(Shear3d(d.ShearXY, d.ShearXZ, d.ShearYZ)).
		PostMul(RotationX3d(d.RotationX)).
		PostMul(RotationY3d(d.RotationY)).
		PostMul(RotationZ3d(d.RotationZ)).
		PostMul(Translation3d(d.Translation.X, d.Translation.Y, d.Translation.Z))
}
