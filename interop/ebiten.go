package interop

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/oliverbestmann/gee"
)

// GeoM converts the transform into an ebiten.GeoM holding the same
// affine transformation.
func GeoM(t gee.Transform64) ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, t.M11)
	g.SetElement(0, 1, t.M21)
	g.SetElement(0, 2, t.M31)
	g.SetElement(1, 0, t.M12)
	g.SetElement(1, 1, t.M22)
	g.SetElement(1, 2, t.M32)
	return g
}

// TransformOfGeoM converts an ebiten.GeoM into the equivalent transform.
func TransformOfGeoM(g ebiten.GeoM) gee.Transform64 {
	return gee.TransformRowMajor(
		g.Element(0, 0), g.Element(1, 0),
		g.Element(0, 1), g.Element(1, 1),
		g.Element(0, 2), g.Element(1, 2),
	)
}
