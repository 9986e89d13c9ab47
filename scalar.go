package gee

import (
	"math"

	"github.com/chewxy/math32"
)

// Scalar is the set of element types the geometry types can be
// instantiated with.
type Scalar interface {
	int | int32 | int64 | float32 | float64
}

// Float is the floating point subset of Scalar. Operations that are only
// meaningful on floats, such as rounding, trigonometry and the transform
// types, are constrained to Float.
type Float interface {
	float32 | float64
}

// The helpers below route float32 values through the optimized
// implementations in chewxy/math32 instead of converting to float64
// and back.

func sqrt[S Scalar](v S) S {
	if f, ok := any(v).(float32); ok {
		return S(math32.Sqrt(f))
	}
	return S(math.Sqrt(float64(v)))
}

func hypot[F Float](x, y F) F {
	if fx, ok := any(x).(float32); ok {
		return F(math32.Hypot(fx, float32(y)))
	}
	return F(math.Hypot(float64(x), float64(y)))
}

func sincos[F Float](v F) (sin, cos F) {
	if f, ok := any(v).(float32); ok {
		s, c := math32.Sincos(f)
		return F(s), F(c)
	}
	s, c := math.Sincos(float64(v))
	return F(s), F(c)
}

func tan[F Float](v F) F {
	if f, ok := any(v).(float32); ok {
		return F(math32.Tan(f))
	}
	return F(math.Tan(float64(v)))
}

func atan[F Float](v F) F {
	if f, ok := any(v).(float32); ok {
		return F(math32.Atan(f))
	}
	return F(math.Atan(float64(v)))
}

func atan2[F Float](y, x F) F {
	if fy, ok := any(y).(float32); ok {
		return F(math32.Atan2(fy, float32(x)))
	}
	return F(math.Atan2(float64(y), float64(x)))
}

func asin[F Float](v F) F {
	if f, ok := any(v).(float32); ok {
		return F(math32.Asin(f))
	}
	return F(math.Asin(float64(v)))
}

func mod[F Float](x, y F) F {
	if fx, ok := any(x).(float32); ok {
		return F(math32.Mod(fx, float32(y)))
	}
	return F(math.Mod(float64(x), float64(y)))
}

func round[F Float](v F) F {
	if f, ok := any(v).(float32); ok {
		return F(math32.Round(f))
	}
	return F(math.Round(float64(v)))
}

func floor[F Float](v F) F {
	if f, ok := any(v).(float32); ok {
		return F(math32.Floor(f))
	}
	return F(math.Floor(float64(v)))
}

func ceil[F Float](v F) F {
	if f, ok := any(v).(float32); ok {
		return F(math32.Ceil(f))
	}
	return F(math.Ceil(float64(v)))
}
