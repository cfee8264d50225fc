package model

import "github.com/tsawler/slidekit/measure"

// Graphic is a Frame whose width and height can be kept in proportion.
// Charts, drawings and tables embed it. Proportional resizing is on by
// default.
type Graphic struct {
	Frame
	resizeProportional bool
}

func newGraphic() Graphic {
	return Graphic{resizeProportional: true}
}

// ResizeProportional reports whether aspect ratio is preserved on resize.
func (g *Graphic) ResizeProportional() bool { return g.resizeProportional }

// SetResizeProportional turns aspect-ratio preservation on or off.
func (g *Graphic) SetResizeProportional(on bool) { g.resizeProportional = on }

// SetWidth sets the width. With proportional resizing on and both the
// current and new width non-zero, the height is rescaled to keep the
// current height/width ratio.
func (g *Graphic) SetWidth(w measure.Measure) {
	if g.resizeProportional && !w.IsZero() && !g.width.IsZero() {
		ratio := measure.Ratio(g.height, g.width)
		g.height = inUnitOf(g.height, w.Scale(ratio))
	}
	g.width = w
	g.touch()
}

// SetHeight sets the height. It mirrors [Graphic.SetWidth].
func (g *Graphic) SetHeight(h measure.Measure) {
	if g.resizeProportional && !h.IsZero() && !g.height.IsZero() {
		ratio := measure.Ratio(g.width, g.height)
		g.width = inUnitOf(g.width, h.Scale(ratio))
	}
	g.height = h
	g.touch()
}

// SetWidthAndHeight resizes the graphic to fit inside a w x h box.
//
// With proportional resizing on, whichever requested dimension can be
// honoured exactly while the other, derived one stays within its bound is
// used; the other dimension is scaled by the same factor. The call is a
// no-op if any of the current or requested dimensions is zero. With
// proportional resizing off both values are committed as given.
func (g *Graphic) SetWidthAndHeight(w, h measure.Measure) {
	if !g.resizeProportional {
		g.width, g.height = w, h
		g.touch()
		return
	}
	if w.IsZero() || h.IsZero() || g.width.IsZero() || g.height.IsZero() {
		return
	}

	xratio := measure.Ratio(w, g.width)
	yratio := measure.Ratio(h, g.height)
	if scaled := g.height.Scale(xratio); measure.LowerThan(scaled, h) {
		g.height = scaled
		g.width = w
	} else {
		g.width = g.width.Scale(yratio)
		g.height = h
	}
	g.touch()
}

func (g *Graphic) hashParts() []string {
	parts := g.Frame.hashParts()
	if g.resizeProportional {
		return append(parts, "proportional")
	}
	return append(parts, "free")
}

// inUnitOf expresses v in the unit of ref. A reference without a unit
// (the zero Measure) keeps v unchanged.
func inUnitOf(ref, v measure.Measure) measure.Measure {
	if ref.Unit() == "" || ref.Unit() == v.Unit() {
		return v
	}
	return v.In(ref.Unit())
}
