package assert

import "fmt"

// NotNegative panics if v is negative. Constructors use this to guard
// invariants that the type system cannot express.
func NotNegative[S int | int32 | int64 | float32 | float64](v S, what string) {
	if v < 0 {
		panic(fmt.Sprintf("%s must not be negative, got %v", what, v))
	}
}

// InUnitInterval panics if v is outside of [0, 1].
func InUnitInterval[S int | int32 | int64 | float32 | float64](v S, what string) {
	if v < 0 || v > 1 {
		panic(fmt.Sprintf("%s must be in [0, 1], got %v", what, v))
	}
}
