package gee

import (
	"math"
	"math/rand/v2"
)

// RandomIn returns a random value uniformly sampled from the given
// range, excluding max.
func RandomIn[S Scalar](min, max S) S {
	return S(rand.Float64()*(float64(max)-float64(min))) + min
}

// RandomAngle returns a random angle uniformly sampled from the full
// circle.
func RandomAngle[F Float]() angle[F] {
	return angle[F]{radians: F(rand.Float64() * 2 * math.Pi)}
}

// RandomVec returns a vector uniformly sampled from within the unit
// circle.
func RandomVec[S Scalar]() vector[S] {
	for {
		v := vector[S]{
			X: S(RandomIn(-1.0, 1.0)),
			Y: S(RandomIn(-1.0, 1.0)),
		}

		if v.LengthSq() <= 1 {
			return v
		}
	}
}

// RandomPointIn returns a point uniformly sampled from within the given
// rect.
func RandomPointIn[S Scalar](r rect[S]) point[S] {
	return point[S]{
		X: RandomIn(r.Left, r.Right),
		Y: RandomIn(r.Top, r.Bottom),
	}
}
