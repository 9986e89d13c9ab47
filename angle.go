package gee

import (
	"fmt"
	"math"
)

type Angle32 = angle[float32]
type Angle64 = angle[float64]

// Angle is the default angle type, backed by a float32.
type Angle = Angle32

// AngleType is the generic angle type.
type AngleType[F Float] = angle[F]

// Radians returns the angle of the given value in radians.
func Radians[F Float](radians F) angle[F] {
	return angle[F]{radians: radians}
}

// Degrees returns the angle of the given value in degrees.
func Degrees[F Float](degrees F) angle[F] {
	return angle[F]{radians: degrees * F(math.Pi) / 180}
}

// angle is an angle value. It is stored in radians; Degrees and
// MapDegrees convert on the fly.
type angle[F Float] struct {
	radians F
}

func (a angle[F]) Radians() F {
	return a.radians
}

func (a angle[F]) Degrees() F {
	return a.radians * 180 / F(math.Pi)
}

func (a angle[F]) Add(other angle[F]) angle[F] {
	a.radians += other.radians
	return a
}

func (a angle[F]) Sub(other angle[F]) angle[F] {
	a.radians -= other.radians
	return a
}

func (a angle[F]) Mul(scalar F) angle[F] {
	a.radians *= scalar
	return a
}

func (a angle[F]) Neg() angle[F] {
	a.radians = -a.radians
	return a
}

// MapRadians applies f to the value of the angle in radians and returns
// the resulting angle.
func (a angle[F]) MapRadians(f func(F) F) angle[F] {
	return angle[F]{radians: f(a.radians)}
}

// MapDegrees applies f to the value of the angle in degrees and returns
// the resulting angle.
func (a angle[F]) MapDegrees(f func(F) F) angle[F] {
	return Degrees(f(a.Degrees()))
}

func (a angle[F]) Sin() F {
	sin, _ := sincos(a.radians)
	return sin
}

func (a angle[F]) Cos() F {
	_, cos := sincos(a.radians)
	return cos
}

func (a angle[F]) SinCos() (sin, cos F) {
	return sincos(a.radians)
}

func (a angle[F]) Tan() F {
	return tan(a.radians)
}

// UnitVector returns the vector of length one pointing into the
// direction of the angle.
func (a angle[F]) UnitVector() vector[F] {
	sin, cos := sincos(a.radians)
	return vector[F]{X: cos, Y: sin}
}

// Normalized returns the angle normalized to the range [-π, π).
func (a angle[F]) Normalized() angle[F] {
	pi := F(math.Pi)

	value := mod(a.radians+pi, 2*pi)
	if value < 0 {
		value += 2 * pi
	}

	return angle[F]{radians: value - pi}
}

// DifferenceTo returns the smallest difference between two angles,
// normalized to the range [-π, π).
func (a angle[F]) DifferenceTo(other angle[F]) angle[F] {
	return a.Sub(other).Normalized()
}

func (a angle[F]) String() string {
	return fmt.Sprintf("%v rad", a.radians)
}

// CastAngle converts the element type of a to U.
func CastAngle[U, F Float](a angle[F]) angle[U] {
	return angle[U]{radians: U(a.radians)}
}
