package interop

import (
	cp "github.com/jakecoffman/cp/v2"
	"github.com/oliverbestmann/gee"
)

// CPVecOf converts a vector into a chipmunk vector.
func CPVecOf(v gee.Vector64) cp.Vector {
	return cp.Vector{X: v.X, Y: v.Y}
}

// CPVecOfPoint converts a point into a chipmunk vector. Chipmunk does
// not distinguish points from vectors.
func CPVecOfPoint(p gee.Point64) cp.Vector {
	return cp.Vector{X: p.X, Y: p.Y}
}

// VecOfCP converts a chipmunk vector into a vector.
func VecOfCP(v cp.Vector) gee.Vector64 {
	return gee.VectorOf(v.X, v.Y)
}

// PointOfCP converts a chipmunk vector into a point.
func PointOfCP(v cp.Vector) gee.Point64 {
	return gee.PointOf(v.X, v.Y)
}
