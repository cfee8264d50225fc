package model

import (
	"strings"
	"time"

	"github.com/tsawler/slidekit/layout"
)

// Presentation is a complete slide deck.
type Presentation struct {
	Metadata Metadata
	Layout   *layout.Layout

	slides []*Slide
	fonts  []*FontFace
}

// Metadata contains document-level information
type Metadata struct {
	Title        string
	Author       string
	Subject      string
	Keywords     []string
	Creator      string
	Company      string
	Category     string
	Description  string
	CreationDate time.Time
	ModDate      time.Time
	// Custom metadata
	Custom map[string]string
}

// NewPresentation creates a new empty presentation using the default
// layout.
func NewPresentation() *Presentation {
	return &Presentation{
		Metadata: Metadata{
			Custom: make(map[string]string),
		},
		Layout: layout.New(),
	}
}

// PageLayout returns the slide size, or the default layout when Layout
// is nil.
func (p *Presentation) PageLayout() *layout.Layout {
	if p.Layout == nil {
		return layout.New()
	}
	return p.Layout
}

// CreateSlide appends a new empty slide and returns it.
func (p *Presentation) CreateSlide() *Slide {
	s := NewSlide()
	p.AddSlide(s)
	return s
}

// AddSlide adds a slide to the presentation
func (p *Presentation) AddSlide(s *Slide) {
	s.Number = len(p.slides) + 1
	p.slides = append(p.slides, s)
}

// RemoveSlide removes the slide at the given number (1-indexed) and
// renumbers the rest. It reports whether a slide was removed.
func (p *Presentation) RemoveSlide(number int) bool {
	if number < 1 || number > len(p.slides) {
		return false
	}
	p.slides = append(p.slides[:number-1], p.slides[number:]...)
	for i, s := range p.slides {
		s.Number = i + 1
	}
	return true
}

// Slide returns a slide by number (1-indexed)
func (p *Presentation) Slide(number int) *Slide {
	if number < 1 || number > len(p.slides) {
		return nil
	}
	return p.slides[number-1]
}

// Slides returns the slides in order.
func (p *Presentation) Slides() []*Slide { return p.slides }

// SlideCount returns the total number of slides
func (p *Presentation) SlideCount() int {
	return len(p.slides)
}

// AddFontFace registers a font used by the presentation. A face with the
// same hash as one already registered is not added again; the registered
// face is returned instead.
func (p *Presentation) AddFontFace(f *FontFace) *FontFace {
	h := f.HashCode()
	for _, existing := range p.fonts {
		if existing.HashCode() == h {
			return existing
		}
	}
	p.fonts = append(p.fonts, f)
	return f
}

// FontFaces returns the registered fonts in order of registration.
func (p *Presentation) FontFaces() []*FontFace { return p.fonts }

// ExtractText returns all text content, slides separated by blank lines.
func (p *Presentation) ExtractText() string {
	parts := make([]string, 0, len(p.slides))
	for _, s := range p.slides {
		parts = append(parts, s.ExtractText())
	}
	return strings.Join(parts, "\n\n")
}

// ExtractTables returns all tables from all slides
func (p *Presentation) ExtractTables() []*Table {
	var tables []*Table
	for _, s := range p.slides {
		Walk(s, func(sh Shape) {
			if t, ok := sh.(*Table); ok {
				tables = append(tables, t)
			}
		})
	}
	return tables
}

func (p *Presentation) HashCode() string {
	l := p.PageLayout()
	parts := []string{p.Metadata.Title, string(l.Name()), l.CX().HashCode(), l.CY().HashCode()}
	for _, s := range p.slides {
		parts = append(parts, s.HashCode())
	}
	return hashOf(append(parts, "model.Presentation")...)
}
