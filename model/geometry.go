package model

import (
	"math"

	"seehuhn.de/go/geom/rect"

	"github.com/tsawler/slidekit/measure"
)

// Point is a position on a slide.
type Point struct {
	X, Y measure.Measure
}

// CalculateOffsets returns the top-left corner of the area covered by the
// shapes of c: the minimum X offset and the minimum Y offset over all
// members. The running minimum is seeded from the first member; nil
// members are skipped. An empty or nil container yields the zero Point.
func CalculateOffsets(c Container) Point {
	var p Point
	if c == nil {
		return p
	}

	seeded := false
	for _, s := range c.Shapes() {
		if s == nil {
			continue
		}
		x, y := s.OffsetX(), s.OffsetY()
		if !seeded {
			p.X, p.Y = x, y
			seeded = true
			continue
		}
		if measure.LowerThan(x, p.X) {
			p.X = x
		}
		if measure.LowerThan(y, p.Y) {
			p.Y = y
		}
	}
	return p
}

// CalculateExtents returns the bottom-right corner of the area covered by
// the shapes of c: the maximum of offset+size along each axis. Seeding and
// nil handling follow [CalculateOffsets].
func CalculateExtents(c Container) Point {
	var p Point
	if c == nil {
		return p
	}

	seeded := false
	for _, s := range c.Shapes() {
		if s == nil {
			continue
		}
		x := measure.Add(s.OffsetX(), s.Width())
		y := measure.Add(s.OffsetY(), s.Height())
		if !seeded {
			p.X, p.Y = x, y
			seeded = true
			continue
		}
		if measure.GreaterThan(x, p.X) {
			p.X = x
		}
		if measure.GreaterThan(y, p.Y) {
			p.Y = y
		}
	}
	return p
}

// Bounds returns the box covered by s in EMU. LLx/LLy hold the top-left
// corner and URx/URy the bottom-right corner in slide coordinates, so the
// y-axis points down. Negative sizes, as produced by lines drawn right to
// left, are normalised.
func Bounds(s Shape) rect.Rect {
	x0 := s.OffsetX().ValueForUnit(measure.EMU)
	y0 := s.OffsetY().ValueForUnit(measure.EMU)
	x1 := x0 + s.Width().ValueForUnit(measure.EMU)
	y1 := y0 + s.Height().ValueForUnit(measure.EMU)
	return rect.Rect{
		LLx: math.Min(x0, x1),
		LLy: math.Min(y0, y1),
		URx: math.Max(x0, x1),
		URy: math.Max(y0, y1),
	}
}

// Flips reports whether s is mirrored because its width or height is
// negative.
func Flips(s Shape) (horizontal, vertical bool) {
	return s.Width().Value() < 0, s.Height().Value() < 0
}
