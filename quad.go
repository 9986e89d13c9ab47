package gee

import "fmt"

type Quad32 = quad[float32]
type Quad64 = quad[float64]

// Quad is the default quad type, holding float32 elements.
type Quad = Quad32

// QuadType is the generic quad type.
type QuadType[S Scalar] = quad[S]

// QuadOf returns the quad with the four corners a, b, c, d.
func QuadOf[S Scalar](a, b, c, d point[S]) quad[S] {
	return quad[S]{A: a, B: b, C: c, D: d}
}

// quad is a set of four points with no guarantees about their
// relationship. Transforming a rect by an arbitrary transform produces a
// quad, since the result need not be axis aligned anymore.
type quad[S Scalar] struct {
	A, B, C, D point[S]
}

func (q quad[S]) Points() [4]point[S] {
	return [4]point[S]{q.A, q.B, q.C, q.D}
}

// Aabb returns the axis aligned bounding rect of the quad.
func (q quad[S]) Aabb() rect[S] {
	return RectFromPoints(q.A, q.B, q.C, q.D)
}

func (q quad[S]) Translate(offset vector[S]) quad[S] {
	q.A = q.A.Add(offset)
	q.B = q.B.Add(offset)
	q.C = q.C.Add(offset)
	q.D = q.D.Add(offset)
	return q
}

func (q quad[S]) String() string {
	return fmt.Sprintf("quad(a=%s, b=%s, c=%s, d=%s)", q.A, q.B, q.C, q.D)
}

// CastQuad converts the element type of q to U using Go's native numeric
// conversion.
func CastQuad[U, S Scalar](q quad[S]) quad[U] {
	return quad[U]{
		A: CastPoint[U](q.A),
		B: CastPoint[U](q.B),
		C: CastPoint[U](q.C),
		D: CastPoint[U](q.D),
	}
}
