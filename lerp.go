package gee

// Lerp linearly interpolates between a and b. f=0 returns a, f=1
// returns b. Values outside [0, 1] extrapolate.
func Lerp[F Float](a, b, f F) F {
	return (b-a)*f + a
}

// LerpHalf returns the value halfway between a and b.
func LerpHalf[F Float](a, b F) F {
	return (a + b) / 2
}
