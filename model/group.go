package model

import "github.com/tsawler/slidekit/measure"

// Group is a shape made of other shapes. Its position and size are
// derived from its members and cannot be set directly.
//
// The derived geometry is cached. Adding, removing or reordering members
// and changing the geometry of any member (at any depth) marks the cache
// dirty; the next read recomputes it.
type Group struct {
	Frame
	members shapeList

	dirty   bool
	offsetX measure.Measure
	offsetY measure.Measure
	extentX measure.Measure
	extentY measure.Measure
}

// NewGroup returns an empty group.
func NewGroup() *Group {
	return &Group{dirty: true}
}

func (g *Group) Kind() Kind { return KindGroup }

// Shapes returns a copy of the member sequence.
func (g *Group) Shapes() []Shape { return g.members.list() }

// Len returns the number of members.
func (g *Group) Len() int { return len(g.members.shapes) }

// AddShape appends s to the group and makes the group its container. A
// shape held by another container is removed from it first. Adding nil is
// ignored. Adding a group to itself or to one of its own descendants
// panics.
func (g *Group) AddShape(s Shape) Shape {
	if s == nil {
		return nil
	}
	if sub, ok := s.(*Group); ok && sub.contains(g) {
		panic("model: group cycle")
	}
	attach(g, s)
	g.members.shapes = append(g.members.shapes, s)
	g.invalidate()
	return s
}

// RemoveShape removes s from the group. It reports whether s was a member.
func (g *Group) RemoveShape(s Shape) bool {
	if !g.members.remove(s) {
		return false
	}
	g.invalidate()
	return true
}

// MoveShape moves the member at index from to index to.
func (g *Group) MoveShape(from, to int) bool {
	if !g.members.move(from, to) {
		return false
	}
	g.invalidate()
	return true
}

// contains reports whether other is g or nested anywhere below g.
func (g *Group) contains(other *Group) bool {
	if g == other {
		return true
	}
	for _, s := range g.members.shapes {
		if sub, ok := s.(*Group); ok && sub.contains(other) {
			return true
		}
	}
	return false
}

func (g *Group) invalidate() {
	g.dirty = true
	g.touch()
}

func (g *Group) refresh() {
	if !g.dirty {
		return
	}
	off := CalculateOffsets(g)
	ext := CalculateExtents(g)
	g.offsetX, g.offsetY = off.X, off.Y
	g.extentX = measure.Subtract(ext.X, off.X)
	g.extentY = measure.Subtract(ext.Y, off.Y)
	g.dirty = false
}

// OffsetX returns the smallest X offset of the members.
func (g *Group) OffsetX() measure.Measure {
	g.refresh()
	return g.offsetX
}

// OffsetY returns the smallest Y offset of the members.
func (g *Group) OffsetY() measure.Measure {
	g.refresh()
	return g.offsetY
}

// ExtentX returns the width of the area covered by the members.
func (g *Group) ExtentX() measure.Measure {
	g.refresh()
	return g.extentX
}

// ExtentY returns the height of the area covered by the members.
func (g *Group) ExtentY() measure.Measure {
	g.refresh()
	return g.extentY
}

func (g *Group) Width() measure.Measure  { return g.ExtentX() }
func (g *Group) Height() measure.Measure { return g.ExtentY() }

// SetOffsetX does nothing; a group's position is derived.
func (g *Group) SetOffsetX(measure.Measure) {}

// SetOffsetY does nothing; a group's position is derived.
func (g *Group) SetOffsetY(measure.Measure) {}

// SetPosition does nothing; a group's position is derived.
func (g *Group) SetPosition(_, _ measure.Measure) {}

// SetWidth does nothing; a group's size is derived.
func (g *Group) SetWidth(measure.Measure) {}

// SetHeight does nothing; a group's size is derived.
func (g *Group) SetHeight(measure.Measure) {}

// HashCode hashes the group's identity, derived geometry and members.
func (g *Group) HashCode() string {
	parts := []string{
		g.name,
		g.description,
		g.OffsetX().HashCode(),
		g.OffsetY().HashCode(),
		g.ExtentX().HashCode(),
		g.ExtentY().HashCode(),
	}
	parts = append(parts, g.members.hashParts()...)
	return hashOf(append(parts, "model.Group")...)
}

// CreateRichTextShape adds a new text box to the group.
func (g *Group) CreateRichTextShape() *RichText { return create(g, NewRichText()) }

// CreateCustomShape adds a text box with the given preset outline.
func (g *Group) CreateCustomShape(preset string) *CustomShape {
	return create(g, NewCustomShape(preset))
}

// CreateLineShape adds a line from (fromX, fromY) to (toX, toY).
func (g *Group) CreateLineShape(fromX, fromY, toX, toY float64, unit measure.Unit) *Line {
	return create(g, NewLine(fromX, fromY, toX, toY, unit))
}

// CreateChartShape adds a new chart to the group.
func (g *Group) CreateChartShape() *Chart { return create(g, NewChart()) }

// CreateDrawingShape adds a new, empty drawing to the group.
func (g *Group) CreateDrawingShape() *Drawing { return create(g, NewDrawing()) }

// CreateTableShape adds a new table with the given number of columns.
func (g *Group) CreateTableShape(columns int) *Table { return create(g, NewTable(columns)) }

// CreateGroup adds a nested group.
func (g *Group) CreateGroup() *Group { return create(g, NewGroup()) }
