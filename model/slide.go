package model

import (
	"strings"

	"github.com/tsawler/slidekit/measure"
)

// Slide is one page of a presentation. It holds shapes but is not itself a
// shape.
type Slide struct {
	Number int // 1-indexed position in the presentation
	Name   string
	Notes  string // speaker notes

	members shapeList
}

// NewSlide creates a new empty slide
func NewSlide() *Slide {
	return &Slide{}
}

// Shapes returns a copy of the shapes in z-order.
func (s *Slide) Shapes() []Shape { return s.members.list() }

// Len returns the number of top-level shapes.
func (s *Slide) Len() int { return len(s.members.shapes) }

// AddShape appends sh to the slide. A shape held by another container is
// removed from it first. Adding nil is ignored.
func (s *Slide) AddShape(sh Shape) Shape {
	if sh == nil {
		return nil
	}
	attach(s, sh)
	s.members.shapes = append(s.members.shapes, sh)
	return sh
}

// RemoveShape removes sh from the slide. It reports whether sh was present.
func (s *Slide) RemoveShape(sh Shape) bool { return s.members.remove(sh) }

// MoveShape moves the shape at index from to index to.
func (s *Slide) MoveShape(from, to int) bool { return s.members.move(from, to) }

// CreateRichTextShape adds a new text box to the slide.
func (s *Slide) CreateRichTextShape() *RichText { return create(s, NewRichText()) }

// CreateCustomShape adds a text box with the given preset outline.
func (s *Slide) CreateCustomShape(preset string) *CustomShape {
	return create(s, NewCustomShape(preset))
}

// CreateLineShape adds a line from (fromX, fromY) to (toX, toY).
func (s *Slide) CreateLineShape(fromX, fromY, toX, toY float64, unit measure.Unit) *Line {
	return create(s, NewLine(fromX, fromY, toX, toY, unit))
}

// CreateChartShape adds a new chart to the slide.
func (s *Slide) CreateChartShape() *Chart { return create(s, NewChart()) }

// CreateDrawingShape adds a new, empty drawing to the slide.
func (s *Slide) CreateDrawingShape() *Drawing { return create(s, NewDrawing()) }

// CreateTableShape adds a new table with the given number of columns.
func (s *Slide) CreateTableShape(columns int) *Table { return create(s, NewTable(columns)) }

// CreateGroup adds an empty group.
func (s *Slide) CreateGroup() *Group { return create(s, NewGroup()) }

// ExtractText returns the text of every text-bearing shape on the slide,
// walking into groups, one shape per line.
func (s *Slide) ExtractText() string {
	var lines []string
	Walk(s, func(sh Shape) {
		if t, ok := sh.(interface{ PlainText() string }); ok {
			if txt := strings.TrimRight(t.PlainText(), "\n"); txt != "" {
				lines = append(lines, txt)
			}
		}
	})
	return strings.Join(lines, "\n")
}

// Drawings returns every drawing on the slide, including those in groups.
func (s *Slide) Drawings() []*Drawing {
	var out []*Drawing
	Walk(s, func(sh Shape) {
		if d, ok := sh.(*Drawing); ok {
			out = append(out, d)
		}
	})
	return out
}

func (s *Slide) HashCode() string {
	parts := append([]string{s.Name, s.Notes}, s.members.hashParts()...)
	return hashOf(append(parts, "model.Slide")...)
}

// Walk calls fn for every shape in c in z-order, descending into groups
// after visiting the group itself.
func Walk(c Container, fn func(Shape)) {
	if c == nil {
		return
	}
	for _, sh := range c.Shapes() {
		if sh == nil {
			continue
		}
		fn(sh)
		if g, ok := sh.(*Group); ok {
			Walk(g, fn)
		}
	}
}
