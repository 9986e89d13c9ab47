package gee

import (
	"fmt"

	"github.com/oliverbestmann/gee/internal/assert"
)

type Size32 = size[float32]
type Size64 = size[float64]

// Size is the default size type, holding float32 elements.
type Size = Size32

// SizeType is the generic size type.
type SizeType[S Scalar] = size[S]

// SizeOf returns the size (width, height). It panics if either dimension
// is negative. Use TrySizeOf where negative inputs are expected.
func SizeOf[S Scalar](width, height S) size[S] {
	assert.NotNegative(width, "width")
	assert.NotNegative(height, "height")
	return size[S]{Width: width, Height: height}
}

// TrySizeOf returns the size (width, height) if both dimensions are
// non-negative.
func TrySizeOf[S Scalar](width, height S) (sz size[S], ok bool) {
	if width < 0 || height < 0 {
		return size[S]{}, false
	}
	return size[S]{Width: width, Height: height}, true
}

// SquareOf returns the size (dim, dim).
func SquareOf[S Scalar](dim S) size[S] {
	return SizeOf(dim, dim)
}

// size is a non-negative extent in 2d space.
type size[S Scalar] struct {
	Width, Height S
}

func (s size[S]) Area() S {
	return s.Width * s.Height
}

func (s size[S]) AspectRatio() S {
	return s.Width / s.Height
}

func (s size[S]) IsLandscape() bool {
	return s.Width > s.Height
}

func (s size[S]) IsPortrait() bool {
	return s.Width < s.Height
}

func (s size[S]) IsSquare() bool {
	return s.Width == s.Height
}

func (s size[S]) MinDim() S {
	return min(s.Width, s.Height)
}

func (s size[S]) MaxDim() S {
	return max(s.Width, s.Height)
}

func (s size[S]) Add(other size[S]) size[S] {
	s.Width += other.Width
	s.Height += other.Height
	return s
}

func (s size[S]) Mul(scalar S) size[S] {
	s.Width *= scalar
	s.Height *= scalar
	return s
}

func (s size[S]) Div(scalar S) size[S] {
	s.Width /= scalar
	s.Height /= scalar
	return s
}

// Scale scales width and height by the components of the given vector.
func (s size[S]) Scale(scale vector[S]) size[S] {
	s.Width *= scale.X
	s.Height *= scale.Y
	return s
}

// FitWidth scales the size so that its width matches the given value,
// preserving aspect ratio.
func (s size[S]) FitWidth(width S) size[S] {
	return size[S]{Width: width, Height: s.Height * width / s.Width}
}

// FitHeight scales the size so that its height matches the given value,
// preserving aspect ratio.
func (s size[S]) FitHeight(height S) size[S] {
	return size[S]{Width: s.Width * height / s.Height, Height: height}
}

// Fill scales the size uniformly so that it covers other completely.
func (s size[S]) Fill(other size[S]) size[S] {
	return s.Mul(max(other.Width/s.Width, other.Height/s.Height))
}

// Fit downscales the size to fit within other while preserving aspect
// ratio. A size that already fits is returned unchanged.
func (s size[S]) Fit(other size[S]) size[S] {
	return s.FillAndFit(size[S]{
		Width:  min(s.Width, other.Width),
		Height: min(s.Height, other.Height),
	})
}

// FillAndFit returns the largest size with the receiver's aspect ratio
// that fits within other.
func (s size[S]) FillAndFit(other size[S]) size[S] {
	ratio := s.AspectRatio()
	return size[S]{
		Width:  min(other.Width, other.Height*ratio),
		Height: min(other.Height, other.Width/ratio),
	}
}

// Map applies f to width and height and returns the resulting size.
func (s size[S]) Map(f func(S) S) size[S] {
	return size[S]{Width: f(s.Width), Height: f(s.Height)}
}

func (s size[S]) ToVector() vector[S] {
	return vector[S]{X: s.Width, Y: s.Height}
}

func (s size[S]) String() string {
	return fmt.Sprintf("size(w=%v, h=%v)", s.Width, s.Height)
}

// CastSize converts the element type of s to U using Go's native numeric
// conversion.
func CastSize[U, S Scalar](s size[S]) size[U] {
	return size[U]{Width: U(s.Width), Height: U(s.Height)}
}

// RoundSize rounds width and height to the nearest integer value.
func RoundSize[F Float](s size[F]) size[F] {
	return s.Map(round[F])
}
